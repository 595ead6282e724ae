package indicator

import (
	"context"
	"errors"
	"testing"

	domainActivity "greentracker-backend/internal/domain/activity"
	domainIndicator "greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/domain/page"
	"greentracker-backend/internal/domain/uow"
	"greentracker-backend/internal/testutil/indicatormock"
	"greentracker-backend/internal/testutil/sqlitedb"
	"greentracker-backend/internal/testutil/uowmock"
	"greentracker-backend/internal/usecase/apperr"
	"greentracker-backend/internal/usecase/category"
	"greentracker-backend/internal/usecase/criterion"
	"greentracker-backend/pkg/id"
)

func TestCreate_TranslatesDuplicate(t *testing.T) {
	inds := &indicatormock.Repo{
		CreateFn: func(context.Context, *domainIndicator.Indicator) error {
			return domainIndicator.ErrAlreadyExists
		},
	}
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Indicators: inds}))

	_, err := uc.Create(context.Background(), Input{Index: 1, EnglishName: "SI", SpanishAlias: "EI"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("kind = %v, want conflict", apperr.KindOf(err))
	}
}

func TestGet_NotFound(t *testing.T) {
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Indicators: &indicatormock.Repo{}}))
	if _, err := uc.Get(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCreateThenCategoryWithMissingCriterion(t *testing.T) {
	tx, _ := sqlitedb.UoW(t)
	ctx := context.Background()
	inds := NewUsecase(tx)
	cats := category.NewUsecase(tx)

	dto, err := inds.Create(ctx, Input{Index: 1, EnglishName: "Setting & Infrastructure", SpanishAlias: "Entorno"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.Categories == nil || len(dto.Categories) != 0 {
		t.Fatalf("new indicator must carry an empty category list, got %+v", dto.Categories)
	}

	_, err = cats.Create(ctx, 1, category.Input{Name: "Buildings", Criteria: []int{7}})
	var cnf *category.CriterionNotFoundError
	if !errors.As(err, &cnf) || cnf.Subindex != 7 {
		t.Fatalf("want CriterionNotFoundError{7}, got %v", err)
	}

	got, err := inds.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Categories) != 0 {
		t.Fatalf("category insert was not rolled back: %+v", got.Categories)
	}
}

func TestGetAndListAssembleTree(t *testing.T) {
	tx, _ := sqlitedb.UoW(t)
	ctx := context.Background()
	inds := NewUsecase(tx)
	crits := criterion.NewUsecase(tx)
	cats := category.NewUsecase(tx)

	for i := 1; i <= 3; i++ {
		if _, err := inds.Create(ctx, Input{Index: i, EnglishName: "I", SpanishAlias: "I"}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := crits.Create(ctx, 1, criterion.Input{Subindex: 1, EnglishName: "Ratio of open space", SpanishAlias: "Espacio"}); err != nil {
		t.Fatal(err)
	}
	if _, err := cats.Create(ctx, 1, category.Input{Name: "Campus", Criteria: []int{1}}); err != nil {
		t.Fatal(err)
	}

	got, err := inds.Get(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Categories) != 1 || len(got.Categories[0].Criteria) != 1 || got.Categories[0].Criteria[0].Subindex != 1 {
		t.Fatalf("tree = %+v", got)
	}

	pg, err := inds.List(ctx, page.Pagination{PageIndex: 2, ItemsPerPage: 2})
	if err != nil {
		t.Fatal(err)
	}
	if pg.ItemCount != 3 || pg.PageCount != 2 || len(pg.Items) != 1 || pg.Items[0].Index != 3 {
		t.Fatalf("page = %+v", pg)
	}
}

func TestReplaceAndDelete(t *testing.T) {
	tx, repos := sqlitedb.UoW(t)
	ctx := context.Background()
	inds := NewUsecase(tx)

	if _, err := inds.Create(ctx, Input{Index: 1, EnglishName: "Energy", SpanishAlias: "Energía"}); err != nil {
		t.Fatal(err)
	}
	// no children: the index may move
	dto, err := inds.Replace(ctx, 1, Input{Index: 2, EnglishName: "Energy & Climate", SpanishAlias: "Energía"})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if dto.Index != 2 || dto.EnglishName != "Energy & Climate" {
		t.Fatalf("dto = %+v", dto)
	}

	if _, err := category.NewUsecase(tx).Create(ctx, 2, category.Input{Name: "Solar"}); err != nil {
		t.Fatal(err)
	}
	if _, err := inds.Replace(ctx, 2, Input{Index: 3, EnglishName: "x", SpanishAlias: "x"}); !errors.Is(err, ErrHasChildren) {
		t.Fatalf("want ErrHasChildren, got %v", err)
	}

	// an activity pins the indicator
	act := &domainActivity.Activity{ID: id.New(), Name: "Panels", IndicatorIndex: 2, CategoryName: "Solar", UnitID: id.New()}
	if err := repos.Activities.Create(ctx, act); err != nil {
		t.Fatal(err)
	}
	if err := inds.Delete(ctx, 2); !errors.Is(err, ErrInUse) {
		t.Fatalf("want ErrInUse, got %v", err)
	}
	if err := repos.Activities.Delete(ctx, act.ID); err != nil {
		t.Fatal(err)
	}

	if err := inds.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := inds.Get(ctx, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
	if cats, _ := repos.Categories.FindAll(ctx, 2); len(cats) != 0 {
		t.Fatalf("categories left behind: %+v", cats)
	}
}

func TestList_StoreUnavailable(t *testing.T) {
	tx := uowmock.Failing(errors.New("dial tcp: connection refused"))
	uc := NewUsecase(tx)

	_, err := uc.List(context.Background(), page.Pagination{PageIndex: 1, ItemsPerPage: 10})
	if apperr.KindOf(err) != apperr.KindInternal {
		t.Fatalf("kind = %v, want internal (err=%v)", apperr.KindOf(err), err)
	}
	if tx.Calls != 1 {
		t.Fatalf("WithinTx calls = %d, want 1", tx.Calls)
	}
}
