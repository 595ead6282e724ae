package indicator

import (
	"context"

	"greentracker-backend/internal/domain/page"
)

type Repository interface {
	Create(ctx context.Context, i *Indicator) error
	FindOne(ctx context.Context, index int) (*Indicator, error)
	FindPage(ctx context.Context, p page.Pagination) (page.Page[Indicator], error)
	FindAll(ctx context.Context) ([]Indicator, error)
	Replace(ctx context.Context, index int, i *Indicator) error
	Delete(ctx context.Context, index int) error
}
