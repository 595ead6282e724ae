package category

import (
	"context"

	"greentracker-backend/internal/domain/page"
)

type Repository interface {
	Create(ctx context.Context, c *Category) error
	FindOne(ctx context.Context, key Key) (*Category, error)
	FindPage(ctx context.Context, p page.Pagination, indicatorIndex int) (page.Page[Category], error)
	FindAll(ctx context.Context, indicatorIndex int) ([]Category, error)
	Replace(ctx context.Context, key Key, c *Category) error
	Delete(ctx context.Context, key Key) error
}

type RecommendedRepository interface {
	FindAllForUnit(ctx context.Context, unitID string) ([]RecommendedCategory, error)
	// ReplaceForUnit drops the unit's current rows and inserts list.
	ReplaceForUnit(ctx context.Context, unitID string, list []RecommendedCategory) error
	DeleteForUnit(ctx context.Context, unitID string) error
	DeleteByCategory(ctx context.Context, key Key) error
}
