package feedback

import (
	"context"

	"greentracker-backend/internal/domain/page"
)

type Repository interface {
	Create(ctx context.Context, f *EvidenceFeedback) error
	FindOne(ctx context.Context, key Key) (*EvidenceFeedback, error)
	FindPage(ctx context.Context, p page.Pagination, f Filter) (page.Page[EvidenceFeedback], error)
	FindAll(ctx context.Context, f Filter) ([]EvidenceFeedback, error)
	Replace(ctx context.Context, key Key, f *EvidenceFeedback) error
	Delete(ctx context.Context, key Key) error

	DeleteByEvidence(ctx context.Context, activityID string, evidenceNumber int) error
	DeleteByActivity(ctx context.Context, activityID string) error
}
