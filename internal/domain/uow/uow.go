package uow

import (
	"context"

	"greentracker-backend/internal/domain/activity"
	"greentracker-backend/internal/domain/category"
	"greentracker-backend/internal/domain/criterion"
	"greentracker-backend/internal/domain/evidence"
	"greentracker-backend/internal/domain/feedback"
	"greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/domain/uploadperiod"
	"greentracker-backend/internal/domain/user"
)

// Repos is the transaction handle: every repository in it is bound to the same tx.
// Services pass it explicitly to every composed call instead of opening a new tx.
type Repos struct {
	Users                 user.Repository
	Admins                user.AdminRepository
	Units                 user.UnitRepository
	Indicators            indicator.Repository
	Categories            category.Repository
	RecommendedCategories category.RecommendedRepository
	Criteria              criterion.Repository
	Activities            activity.Repository
	Evidence              evidence.Repository
	Feedback              feedback.Repository
	UploadPeriods         uploadperiod.Repository
}

type UnitOfWork interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
