package mysql

import (
	"context"
	"errors"
	"math"
	"testing"

	indicatorDomain "greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/domain/page"
)

func TestIndicator_CreateAndFindOne(t *testing.T) {
	repo := NewIndicatorRepository(openTestDB(t))
	ctx := context.Background()

	in := &indicatorDomain.Indicator{Index: 1, EnglishName: "Setting & Infrastructure", SpanishAlias: "Entorno"}
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.FindOne(ctx, 1)
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if *got != *in {
		t.Fatalf("got %+v, want %+v", got, in)
	}
}

func TestIndicator_DuplicateIndex(t *testing.T) {
	repo := NewIndicatorRepository(openTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, &indicatorDomain.Indicator{Index: 2, EnglishName: "Energy", SpanishAlias: "Energía"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, &indicatorDomain.Indicator{Index: 2, EnglishName: "Again", SpanishAlias: "Otra vez"})
	if !errors.Is(err, indicatorDomain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestIndicator_NotFound(t *testing.T) {
	repo := NewIndicatorRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.FindOne(ctx, 99); !errors.Is(err, indicatorDomain.ErrNotFound) {
		t.Fatalf("FindOne: expected ErrNotFound, got %v", err)
	}
	if err := repo.Replace(ctx, 99, &indicatorDomain.Indicator{Index: 99}); !errors.Is(err, indicatorDomain.ErrNotFound) {
		t.Fatalf("Replace: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 99); !errors.Is(err, indicatorDomain.ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestIndicator_ReplaceMovesIndex(t *testing.T) {
	repo := NewIndicatorRepository(openTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, &indicatorDomain.Indicator{Index: 3, EnglishName: "Waste", SpanishAlias: "Residuos"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Replace(ctx, 3, &indicatorDomain.Indicator{Index: 4, EnglishName: "Water", SpanishAlias: "Agua"}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if _, err := repo.FindOne(ctx, 3); !errors.Is(err, indicatorDomain.ErrNotFound) {
		t.Fatalf("old index still present: %v", err)
	}
	got, err := repo.FindOne(ctx, 4)
	if err != nil || got.EnglishName != "Water" {
		t.Fatalf("FindOne(4) = %+v, %v", got, err)
	}
}

func TestIndicator_FindPage(t *testing.T) {
	repo := NewIndicatorRepository(openTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		if err := repo.Create(ctx, &indicatorDomain.Indicator{Index: i, EnglishName: "I", SpanishAlias: "I"}); err != nil {
			t.Fatal(err)
		}
	}
	pg, err := repo.FindPage(ctx, page.Pagination{PageIndex: 3, ItemsPerPage: 3})
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if pg.ItemCount != 7 || pg.PageCount != 3 {
		t.Fatalf("counts = %d/%d, want 7/3", pg.ItemCount, pg.PageCount)
	}
	if len(pg.Items) != 1 || pg.Items[0].Index != 7 {
		t.Fatalf("last page = %+v", pg.Items)
	}

	all, err := repo.FindAll(ctx)
	if err != nil || len(all) != 7 {
		t.Fatalf("FindAll = %d, %v", len(all), err)
	}
}

func TestIndicator_FindPageBeyondLastWithHugeIndex(t *testing.T) {
	repo := NewIndicatorRepository(openTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if err := repo.Create(ctx, &indicatorDomain.Indicator{Index: i, EnglishName: "I", SpanishAlias: "I"}); err != nil {
			t.Fatal(err)
		}
	}
	pg, err := repo.FindPage(ctx, page.Pagination{PageIndex: math.MaxInt / 5, ItemsPerPage: 10})
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if len(pg.Items) != 0 {
		t.Fatalf("page %d returned %d items, want none", pg.PageIndex, len(pg.Items))
	}
	if pg.PageCount != 1 || pg.ItemCount != 3 {
		t.Fatalf("counts = %d/%d, want 3/1", pg.ItemCount, pg.PageCount)
	}
}
