package activity

import (
	"context"

	"greentracker-backend/internal/domain/page"
)

type Repository interface {
	Create(ctx context.Context, a *Activity) error
	FindOne(ctx context.Context, id string) (*Activity, error)
	FindPage(ctx context.Context, p page.Pagination, f Filter) (page.Page[Activity], error)
	FindAll(ctx context.Context, f Filter) ([]Activity, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Replace(ctx context.Context, id string, a *Activity) error
	Delete(ctx context.Context, id string) error
}
