package user

import (
	"context"

	"greentracker-backend/internal/domain/page"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindOne(ctx context.Context, id string) (*User, error)
	Replace(ctx context.Context, id string, u *User) error
	Delete(ctx context.Context, id string) error
}

type AdminRepository interface {
	Create(ctx context.Context, a *Admin) error
	FindOne(ctx context.Context, id string) (*Admin, error)
	FindPage(ctx context.Context, p page.Pagination) (page.Page[Admin], error)
	FindAll(ctx context.Context) ([]Admin, error)
	Replace(ctx context.Context, id string, a *Admin) error
	Delete(ctx context.Context, id string) error
}

type UnitRepository interface {
	Create(ctx context.Context, u *Unit) error
	FindOne(ctx context.Context, id string) (*Unit, error)
	FindPage(ctx context.Context, p page.Pagination) (page.Page[Unit], error)
	FindAll(ctx context.Context) ([]Unit, error)
	Replace(ctx context.Context, id string, u *Unit) error
	Delete(ctx context.Context, id string) error
}
