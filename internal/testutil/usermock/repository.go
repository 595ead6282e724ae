package usermock

import (
	"context"

	"greentracker-backend/internal/domain/page"
	domain "greentracker-backend/internal/domain/user"
)

var (
	_ domain.Repository      = (*Repo)(nil)
	_ domain.AdminRepository = (*AdminRepo)(nil)
	_ domain.UnitRepository  = (*UnitRepo)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return domain.ErrNotFound; unset writes succeed.
type Repo struct {
	CreateFn  func(ctx context.Context, u *domain.User) error
	FindOneFn func(ctx context.Context, id string) (*domain.User, error)
	ReplaceFn func(ctx context.Context, id string, u *domain.User) error
	DeleteFn  func(ctx context.Context, id string) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) FindOne(ctx context.Context, id string) (*domain.User, error) {
	if m.FindOneFn != nil {
		return m.FindOneFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Replace(ctx context.Context, id string, u *domain.User) error {
	if m.ReplaceFn != nil {
		return m.ReplaceFn(ctx, id, u)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// AdminRepo and UnitRepo only stub lookups; writes succeed.
type AdminRepo struct {
	FindOneFn func(ctx context.Context, id string) (*domain.Admin, error)
}

func (m *AdminRepo) Create(context.Context, *domain.Admin) error { return nil }

func (m *AdminRepo) FindOne(ctx context.Context, id string) (*domain.Admin, error) {
	if m.FindOneFn != nil {
		return m.FindOneFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *AdminRepo) FindPage(_ context.Context, p page.Pagination) (page.Page[domain.Admin], error) {
	return page.New[domain.Admin](nil, p.Normalize(), 0), nil
}

func (m *AdminRepo) FindAll(context.Context) ([]domain.Admin, error)      { return nil, nil }
func (m *AdminRepo) Replace(context.Context, string, *domain.Admin) error { return nil }
func (m *AdminRepo) Delete(context.Context, string) error                 { return nil }

type UnitRepo struct {
	FindOneFn func(ctx context.Context, id string) (*domain.Unit, error)
}

func (m *UnitRepo) Create(context.Context, *domain.Unit) error { return nil }

func (m *UnitRepo) FindOne(ctx context.Context, id string) (*domain.Unit, error) {
	if m.FindOneFn != nil {
		return m.FindOneFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *UnitRepo) FindPage(_ context.Context, p page.Pagination) (page.Page[domain.Unit], error) {
	return page.New[domain.Unit](nil, p.Normalize(), 0), nil
}

func (m *UnitRepo) FindAll(context.Context) ([]domain.Unit, error)      { return nil, nil }
func (m *UnitRepo) Replace(context.Context, string, *domain.Unit) error { return nil }
func (m *UnitRepo) Delete(context.Context, string) error                { return nil }
