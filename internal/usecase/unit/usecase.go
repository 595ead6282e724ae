package unit

import (
	"context"
	"errors"

	domainActivity "greentracker-backend/internal/domain/activity"
	domainCategory "greentracker-backend/internal/domain/category"
	"greentracker-backend/internal/domain/page"
	"greentracker-backend/internal/domain/uow"
	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/usecase/auth"
	"greentracker-backend/internal/usecase/ownership"
	"greentracker-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Create inserts the user row, its unit row and the recommended categories in one transaction.
func (u *Usecase) Create(ctx context.Context, in Input) (*DTO, error) {
	if in.Password == "" {
		return nil, ErrPasswordRequired
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	var dto *DTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr := &domainUser.User{ID: id.New(), PasswordHash: hash, Role: domainUser.RoleUnit}
		if err := r.Users.Create(ctx, usr); err != nil {
			return translate(err)
		}
		un := &domainUser.Unit{ID: usr.ID, Name: in.Name, Email: in.Email}
		if err := r.Units.Create(ctx, un); err != nil {
			return translate(err)
		}
		recs, err := recommendWith(ctx, r, un.ID, in.RecommendedCategories)
		if err != nil {
			return err
		}
		out := toDTO(*un, recs)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, unitID string) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		out, err := AssembleWith(ctx, r, unitID)
		dto = out
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context, p page.Pagination) (page.Page[DTO], error) {
	var out page.Page[DTO]
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		pg, err := r.Units.FindPage(ctx, p)
		if err != nil {
			return err
		}
		items := make([]DTO, 0, len(pg.Items))
		for _, un := range pg.Items {
			recs, err := r.RecommendedCategories.FindAllForUnit(ctx, un.ID)
			if err != nil {
				return err
			}
			items = append(items, toDTO(un, recs))
		}
		out = page.Page[DTO]{
			Items:        items,
			PageIndex:    pg.PageIndex,
			ItemsPerPage: pg.ItemsPerPage,
			PageCount:    pg.PageCount,
			ItemCount:    pg.ItemCount,
		}
		return nil
	})
	return out, err
}

// Replace rewrites the profile and the recommended categories; an empty password keeps the current one.
func (u *Usecase) Replace(ctx context.Context, unitID string, in Input) (*DTO, error) {
	hash, err := hashOptional(in.Password)
	if err != nil {
		return nil, err
	}
	var dto *DTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := replaceWith(ctx, r, unitID, in.Name, in.Email, hash); err != nil {
			return err
		}
		if _, err := recommendWith(ctx, r, unitID, in.RecommendedCategories); err != nil {
			return err
		}
		out, err := AssembleWith(ctx, r, unitID)
		dto = out
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Delete is refused while the unit still owns activities.
func (u *Usecase) Delete(ctx context.Context, unitID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Units.FindOne(ctx, unitID); err != nil {
			return translate(err)
		}
		n, err := r.Activities.Count(ctx, domainActivity.Filter{UnitID: unitID})
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrHasActivities
		}
		if err := r.RecommendedCategories.DeleteForUnit(ctx, unitID); err != nil {
			return err
		}
		if err := r.Units.Delete(ctx, unitID); err != nil {
			return translate(err)
		}
		return translate(r.Users.Delete(ctx, unitID))
	})
}

func (u *Usecase) Me(ctx context.Context, actor domainUser.Actor) (*DTO, error) {
	if actor.Role != domainUser.RoleUnit {
		return nil, ownership.ErrUnitsOnly
	}
	return u.Get(ctx, actor.ID)
}

// ReplaceMe lets a unit edit its own profile. Recommended categories are left untouched.
func (u *Usecase) ReplaceMe(ctx context.Context, actor domainUser.Actor, in MeInput) (*DTO, error) {
	if actor.Role != domainUser.RoleUnit {
		return nil, ownership.ErrUnitsOnly
	}
	hash, err := hashOptional(in.Password)
	if err != nil {
		return nil, err
	}
	var dto *DTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := replaceWith(ctx, r, actor.ID, in.Name, in.Email, hash); err != nil {
			return err
		}
		out, err := AssembleWith(ctx, r, actor.ID)
		dto = out
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func AssembleWith(ctx context.Context, r uow.Repos, unitID string) (*DTO, error) {
	un, err := r.Units.FindOne(ctx, unitID)
	if err != nil {
		return nil, translate(err)
	}
	recs, err := r.RecommendedCategories.FindAllForUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	out := toDTO(*un, recs)
	return &out, nil
}

func replaceWith(ctx context.Context, r uow.Repos, unitID, name, email, hash string) error {
	if err := r.Units.Replace(ctx, unitID, &domainUser.Unit{Name: name, Email: email}); err != nil {
		return translate(err)
	}
	if hash == "" {
		return nil
	}
	return translate(r.Users.Replace(ctx, unitID, &domainUser.User{PasswordHash: hash, Role: domainUser.RoleUnit}))
}

// recommendWith validates refs, drops duplicates and stores them as the unit's full set.
func recommendWith(ctx context.Context, r uow.Repos, unitID string, refs []CategoryRef) ([]domainCategory.RecommendedCategory, error) {
	seen := make(map[CategoryRef]bool, len(refs))
	list := make([]domainCategory.RecommendedCategory, 0, len(refs))
	for _, ref := range refs {
		if seen[ref] {
			continue
		}
		seen[ref] = true
		_, err := r.Categories.FindOne(ctx, domainCategory.Key{IndicatorIndex: ref.IndicatorIndex, Name: ref.CategoryName})
		if errors.Is(err, domainCategory.ErrNotFound) {
			return nil, &CategoryNotFoundError{IndicatorIndex: ref.IndicatorIndex, CategoryName: ref.CategoryName}
		}
		if err != nil {
			return nil, err
		}
		list = append(list, domainCategory.RecommendedCategory{
			IndicatorIndex: ref.IndicatorIndex,
			CategoryName:   ref.CategoryName,
			UnitID:         unitID,
		})
	}
	if err := r.RecommendedCategories.ReplaceForUnit(ctx, unitID, list); err != nil {
		return nil, err
	}
	return list, nil
}

func hashOptional(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	return auth.HashPassword(password)
}

func translate(err error) error {
	switch {
	case errors.Is(err, domainUser.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, domainUser.ErrAlreadyExists):
		return ErrAlreadyExists
	}
	return err
}
