package unit

import (
	"context"
	"errors"
	"testing"

	domainActivity "greentracker-backend/internal/domain/activity"
	domainCategory "greentracker-backend/internal/domain/category"
	domainIndicator "greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/domain/page"
	"greentracker-backend/internal/domain/uow"
	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/testutil/sqlitedb"
	"greentracker-backend/internal/usecase/apperr"
	"greentracker-backend/internal/usecase/auth"
	"greentracker-backend/internal/usecase/ownership"
)

func setup(t *testing.T) (*Usecase, uow.Repos) {
	t.Helper()
	tx, repos := sqlitedb.UoW(t)
	ctx := context.Background()
	if err := repos.Indicators.Create(ctx, &domainIndicator.Indicator{Index: 2, EnglishName: "Energy", SpanishAlias: "Energía"}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"solar", "lighting"} {
		if err := repos.Categories.Create(ctx, &domainCategory.Category{IndicatorIndex: 2, Name: name}); err != nil {
			t.Fatal(err)
		}
	}
	return NewUsecase(tx), repos
}

func TestCreate(t *testing.T) {
	uc, repos := setup(t)
	ctx := context.Background()

	in := Input{
		Name:     "Engineering",
		Email:    "eng@uni.test",
		Password: "password-1",
		RecommendedCategories: []CategoryRef{
			{IndicatorIndex: 2, CategoryName: "solar"},
			{IndicatorIndex: 2, CategoryName: "solar"},
			{IndicatorIndex: 2, CategoryName: "lighting"},
		},
	}
	dto, err := uc.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(dto.ID) != 36 || len(dto.RecommendedCategories) != 2 {
		t.Fatalf("created = %+v", dto)
	}
	usr, err := repos.Users.FindOne(ctx, dto.ID)
	if err != nil || usr.Role != domainUser.RoleUnit || !auth.CheckPassword(usr.PasswordHash, "password-1") {
		t.Fatalf("user row = %+v, %v", usr, err)
	}

	in.Password = ""
	if _, err := uc.Create(ctx, in); !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("want ErrPasswordRequired, got %v", err)
	}
}

func TestCreate_UnknownCategoryRollsBack(t *testing.T) {
	uc, repos := setup(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, Input{
		Name:                  "Law",
		Password:              "password-1",
		RecommendedCategories: []CategoryRef{{IndicatorIndex: 2, CategoryName: "wind"}},
	})
	var nf *CategoryNotFoundError
	if !errors.As(err, &nf) || nf.CategoryName != "wind" {
		t.Fatalf("want CategoryNotFoundError, got %v", err)
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("kind = %v", apperr.KindOf(err))
	}
	units, err := repos.Units.FindAll(ctx)
	if err != nil || len(units) != 0 {
		t.Fatalf("units after rollback = %d, %v", len(units), err)
	}
}

func TestReplaceAndMe(t *testing.T) {
	uc, repos := setup(t)
	ctx := context.Background()

	dto, err := uc.Create(ctx, Input{Name: "Science", Password: "password-1", RecommendedCategories: []CategoryRef{{IndicatorIndex: 2, CategoryName: "solar"}}})
	if err != nil {
		t.Fatal(err)
	}
	hashBefore := mustUser(t, repos, dto.ID).PasswordHash

	repl, err := uc.Replace(ctx, dto.ID, Input{Name: "Sciences", Email: "sci@uni.test"})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if repl.Name != "Sciences" || len(repl.RecommendedCategories) != 0 {
		t.Fatalf("replaced = %+v", repl)
	}
	if got := mustUser(t, repos, dto.ID).PasswordHash; got != hashBefore {
		t.Fatalf("empty password must keep the hash")
	}
	if _, err := uc.Replace(ctx, "missing", Input{Name: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	me := domainUser.Actor{ID: dto.ID, Role: domainUser.RoleUnit}
	if _, err := uc.ReplaceMe(ctx, me, MeInput{Name: "Faculty of Science", Password: "password-2"}); err != nil {
		t.Fatalf("ReplaceMe: %v", err)
	}
	if !auth.CheckPassword(mustUser(t, repos, dto.ID).PasswordHash, "password-2") {
		t.Fatalf("password not updated")
	}
	got, err := uc.Me(ctx, me)
	if err != nil || got.Name != "Faculty of Science" {
		t.Fatalf("Me = %+v, %v", got, err)
	}
	if _, err := uc.Me(ctx, domainUser.Actor{ID: "a", Role: domainUser.RoleAdmin}); !errors.Is(err, ownership.ErrUnitsOnly) {
		t.Fatalf("admin Me: want ErrUnitsOnly, got %v", err)
	}

	pg, err := uc.List(ctx, page.Pagination{})
	if err != nil || pg.ItemCount != 1 {
		t.Fatalf("List = %+v, %v", pg, err)
	}
}

func TestDelete(t *testing.T) {
	uc, repos := setup(t)
	ctx := context.Background()

	dto, err := uc.Create(ctx, Input{Name: "Arts", Password: "password-1", RecommendedCategories: []CategoryRef{{IndicatorIndex: 2, CategoryName: "solar"}}})
	if err != nil {
		t.Fatal(err)
	}
	if err := repos.Activities.Create(ctx, &domainActivity.Activity{ID: "act-1", Name: "n", IndicatorIndex: 2, CategoryName: "solar", UnitID: dto.ID}); err != nil {
		t.Fatal(err)
	}
	if err := uc.Delete(ctx, dto.ID); !errors.Is(err, ErrHasActivities) {
		t.Fatalf("want ErrHasActivities, got %v", err)
	}
	if err := repos.Activities.Delete(ctx, "act-1"); err != nil {
		t.Fatal(err)
	}
	if err := uc.Delete(ctx, dto.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repos.Users.FindOne(ctx, dto.ID); !errors.Is(err, domainUser.ErrNotFound) {
		t.Fatalf("user row left: %v", err)
	}
	recs, err := repos.RecommendedCategories.FindAllForUnit(ctx, dto.ID)
	if err != nil || len(recs) != 0 {
		t.Fatalf("recommended left = %d, %v", len(recs), err)
	}
	if err := uc.Delete(ctx, dto.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func mustUser(t *testing.T, repos uow.Repos, id string) *domainUser.User {
	t.Helper()
	usr, err := repos.Users.FindOne(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	return usr
}
