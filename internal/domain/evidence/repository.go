package evidence

import (
	"context"

	"greentracker-backend/internal/domain/page"
)

// Repository persists Records across the evidence and image_evidence tables.
type Repository interface {
	Create(ctx context.Context, rec *Record) error
	FindOne(ctx context.Context, key Key) (*Record, error)
	FindPage(ctx context.Context, p page.Pagination, f Filter) (page.Page[Record], error)
	FindAll(ctx context.Context, f Filter) ([]Record, error)
	Replace(ctx context.Context, key Key, rec *Record) error
	Delete(ctx context.Context, key Key) error

	// NextNumber returns max(evidence_number)+1 for the activity.
	NextNumber(ctx context.Context, activityID string) (int, error)
	// DeleteByActivity removes every record of the activity and returns what was removed.
	DeleteByActivity(ctx context.Context, activityID string) ([]Record, error)
}
