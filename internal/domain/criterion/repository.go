package criterion

import (
	"context"

	"greentracker-backend/internal/domain/page"
)

type Repository interface {
	Create(ctx context.Context, c *Criterion) error
	FindOne(ctx context.Context, key Key) (*Criterion, error)
	FindPage(ctx context.Context, p page.Pagination, f Filter) (page.Page[Criterion], error)
	FindAll(ctx context.Context, f Filter) ([]Criterion, error)
	Replace(ctx context.Context, key Key, c *Criterion) error
	Delete(ctx context.Context, key Key) error

	// ClearCategory nulls category_name on every criterion assigned to the category.
	ClearCategory(ctx context.Context, indicatorIndex int, categoryName string) (int64, error)
	AssignCategory(ctx context.Context, key Key, categoryName *string) error
}
