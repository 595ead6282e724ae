package mysql

import (
	"context"

	"greentracker-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepos(tx))
	})
}

// NewRepos binds every repository to db, which is usually a transaction.
func NewRepos(db *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:                 NewUserRepository(db),
		Admins:                NewAdminRepository(db),
		Units:                 NewUnitRepository(db),
		Indicators:            NewIndicatorRepository(db),
		Categories:            NewCategoryRepository(db),
		RecommendedCategories: NewRecommendedCategoryRepository(db),
		Criteria:              NewCriterionRepository(db),
		Activities:            NewActivityRepository(db),
		Evidence:              NewEvidenceRepository(db),
		Feedback:              NewFeedbackRepository(db),
		UploadPeriods:         NewUploadPeriodRepository(db),
	}
}
