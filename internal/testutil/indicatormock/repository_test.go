package indicatormock

import (
	"context"
	"errors"
	"testing"

	domain "greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/domain/page"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	in := &domain.Indicator{Index: 1, EnglishName: "Setting & Infrastructure"}

	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Indicator) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("ctx mismatch")
			}
			if got != in {
				t.Fatalf("arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, in); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// default (nil func) is a no-op
	m = &Repo{}
	if err := m.Create(ctx, in); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	got, err := m.FindOne(ctx, 9)
	if !errors.Is(err, domain.ErrNotFound) || got != nil {
		t.Fatalf("FindOne default: got %+v, %v", got, err)
	}
	pg, err := m.FindPage(ctx, page.Pagination{})
	if err != nil || pg.PageIndex != 1 || pg.ItemsPerPage != 10 || len(pg.Items) != 0 {
		t.Fatalf("FindPage default: got %+v, %v", pg, err)
	}
	if err := m.Replace(ctx, 1, &domain.Indicator{}); err != nil {
		t.Fatalf("Replace default: %v", err)
	}
	if err := m.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete default: %v", err)
	}
}

func TestRepo_FindOne(t *testing.T) {
	ctx := context.Background()
	want := &domain.Indicator{Index: 3, EnglishName: "Water"}
	m := &Repo{
		FindOneFn: func(_ context.Context, index int) (*domain.Indicator, error) {
			if index != 3 {
				t.Fatalf("index mismatch: got %d", index)
			}
			return want, nil
		},
	}
	got, err := m.FindOne(ctx, 3)
	if err != nil || got != want {
		t.Fatalf("FindOne: got %+v, %v", got, err)
	}
}
