package usermock

import (
	"context"
	"errors"
	"testing"

	domain "greentracker-backend/internal/domain/user"
)

func TestRepo_FindOne(t *testing.T) {
	ctx := context.Background()
	want := &domain.User{ID: "u-1", Role: domain.RoleUnit}

	m := &Repo{
		FindOneFn: func(gotCtx context.Context, id string) (*domain.User, error) {
			if gotCtx != ctx {
				t.Fatalf("ctx mismatch")
			}
			if id != "u-1" {
				t.Fatalf("id mismatch: got %s", id)
			}
			return want, nil
		},
	}
	got, err := m.FindOne(ctx, "u-1")
	if err != nil || got != want {
		t.Fatalf("FindOne: got %+v, %v", got, err)
	}

	// default (nil func) → ErrNotFound
	m = &Repo{}
	if got, err := m.FindOne(ctx, "u-1"); !errors.Is(err, domain.ErrNotFound) || got != nil {
		t.Fatalf("FindOne default: got %+v, %v", got, err)
	}
}

func TestAdminAndUnitRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	if _, err := (&AdminRepo{}).FindOne(ctx, "a"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("AdminRepo default: %v", err)
	}
	u := &UnitRepo{FindOneFn: func(context.Context, string) (*domain.Unit, error) {
		return &domain.Unit{ID: "u", Name: "Engineering"}, nil
	}}
	got, err := u.FindOne(ctx, "u")
	if err != nil || got.Name != "Engineering" {
		t.Fatalf("UnitRepo FindOne: %+v, %v", got, err)
	}
}
