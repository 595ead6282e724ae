package indicatormock

import (
	"context"

	domain "greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/domain/page"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return domain.ErrNotFound; unset writes succeed.
type Repo struct {
	CreateFn   func(ctx context.Context, i *domain.Indicator) error
	FindOneFn  func(ctx context.Context, index int) (*domain.Indicator, error)
	FindPageFn func(ctx context.Context, p page.Pagination) (page.Page[domain.Indicator], error)
	FindAllFn  func(ctx context.Context) ([]domain.Indicator, error)
	ReplaceFn  func(ctx context.Context, index int, i *domain.Indicator) error
	DeleteFn   func(ctx context.Context, index int) error
}

func (m *Repo) Create(ctx context.Context, i *domain.Indicator) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, i)
	}
	return nil
}

func (m *Repo) FindOne(ctx context.Context, index int) (*domain.Indicator, error) {
	if m.FindOneFn != nil {
		return m.FindOneFn(ctx, index)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) FindPage(ctx context.Context, p page.Pagination) (page.Page[domain.Indicator], error) {
	if m.FindPageFn != nil {
		return m.FindPageFn(ctx, p)
	}
	return page.New[domain.Indicator](nil, p.Normalize(), 0), nil
}

func (m *Repo) FindAll(ctx context.Context) ([]domain.Indicator, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Replace(ctx context.Context, index int, i *domain.Indicator) error {
	if m.ReplaceFn != nil {
		return m.ReplaceFn(ctx, index, i)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, index int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, index)
	}
	return nil
}
