package category

import (
	"context"
	"errors"

	domainActivity "greentracker-backend/internal/domain/activity"
	domainCategory "greentracker-backend/internal/domain/category"
	domainCriterion "greentracker-backend/internal/domain/criterion"
	domainIndicator "greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/domain/page"
	"greentracker-backend/internal/domain/uow"
	"greentracker-backend/internal/usecase/criterion"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func (u *Usecase) Create(ctx context.Context, indicatorIndex int, in Input) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Indicators.FindOne(ctx, indicatorIndex); err != nil {
			return translateIndicator(err)
		}
		c := &domainCategory.Category{IndicatorIndex: indicatorIndex, Name: in.Name, HelpText: in.HelpText}
		if err := r.Categories.Create(ctx, c); err != nil {
			return translate(err)
		}
		if err := assignCriteria(ctx, r, c.Key(), in.Criteria); err != nil {
			return err
		}
		out, err := AssembleWith(ctx, r, c.Key())
		dto = out
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, key domainCategory.Key) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		out, err := AssembleWith(ctx, r, key)
		dto = out
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context, indicatorIndex int, p page.Pagination) (page.Page[DTO], error) {
	var out page.Page[DTO]
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Indicators.FindOne(ctx, indicatorIndex); err != nil {
			return translateIndicator(err)
		}
		pg, err := r.Categories.FindPage(ctx, p, indicatorIndex)
		if err != nil {
			return err
		}
		items := make([]DTO, 0, len(pg.Items))
		for _, c := range pg.Items {
			crits, err := criterion.ListByCategoryWith(ctx, r, c.Key())
			if err != nil {
				return err
			}
			items = append(items, toDTO(c, crits))
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

// Replace unassigns every criterion of the category before rewriting it and assigning in.Criteria.
func (u *Usecase) Replace(ctx context.Context, key domainCategory.Key, in Input) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Categories.FindOne(ctx, key); err != nil {
			return translate(err)
		}
		renamed := in.Name != key.Name
		if renamed {
			if err := checkUnused(ctx, r, key); err != nil {
				return err
			}
		}
		if _, err := r.Criteria.ClearCategory(ctx, key.IndicatorIndex, key.Name); err != nil {
			return err
		}
		if renamed {
			if err := r.RecommendedCategories.DeleteByCategory(ctx, key); err != nil {
				return err
			}
		}
		c := &domainCategory.Category{IndicatorIndex: key.IndicatorIndex, Name: in.Name, HelpText: in.HelpText}
		if err := r.Categories.Replace(ctx, key, c); err != nil {
			return translate(err)
		}
		if err := assignCriteria(ctx, r, c.Key(), in.Criteria); err != nil {
			return err
		}
		out, err := AssembleWith(ctx, r, c.Key())
		dto = out
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Delete(ctx context.Context, key domainCategory.Key) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return DeleteWith(ctx, r, key)
	})
}

// DeleteWith clears the category's criteria, drops its recommendations and deletes it.
func DeleteWith(ctx context.Context, r uow.Repos, key domainCategory.Key) error {
	if _, err := r.Categories.FindOne(ctx, key); err != nil {
		return translate(err)
	}
	if err := checkUnused(ctx, r, key); err != nil {
		return err
	}
	if _, err := r.Criteria.ClearCategory(ctx, key.IndicatorIndex, key.Name); err != nil {
		return err
	}
	if err := r.RecommendedCategories.DeleteByCategory(ctx, key); err != nil {
		return err
	}
	return translate(r.Categories.Delete(ctx, key))
}

// AssembleWith loads a category with its criteria on the caller's transaction.
func AssembleWith(ctx context.Context, r uow.Repos, key domainCategory.Key) (*DTO, error) {
	c, err := r.Categories.FindOne(ctx, key)
	if err != nil {
		return nil, translate(err)
	}
	crits, err := criterion.ListByCategoryWith(ctx, r, key)
	if err != nil {
		return nil, err
	}
	out := toDTO(*c, crits)
	return &out, nil
}

// ListWith assembles every category of an indicator on the caller's transaction.
func ListWith(ctx context.Context, r uow.Repos, indicatorIndex int) ([]DTO, error) {
	list, err := r.Categories.FindAll(ctx, indicatorIndex)
	if err != nil {
		return nil, err
	}
	out := make([]DTO, 0, len(list))
	for _, c := range list {
		crits, err := criterion.ListByCategoryWith(ctx, r, c.Key())
		if err != nil {
			return nil, err
		}
		out = append(out, toDTO(c, crits))
	}
	return out, nil
}

func assignCriteria(ctx context.Context, r uow.Repos, key domainCategory.Key, subindexes []int) error {
	name := key.Name
	for _, s := range subindexes {
		ck := domainCriterion.Key{IndicatorIndex: key.IndicatorIndex, Subindex: s}
		err := r.Criteria.AssignCategory(ctx, ck, &name)
		if errors.Is(err, domainCriterion.ErrNotFound) {
			return &CriterionNotFoundError{Subindex: s}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func checkUnused(ctx context.Context, r uow.Repos, key domainCategory.Key) error {
	idx := key.IndicatorIndex
	n, err := r.Activities.Count(ctx, domainActivity.Filter{IndicatorIndex: &idx, CategoryName: key.Name})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, domainCategory.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, domainCategory.ErrAlreadyExists):
		return ErrAlreadyExists
	}
	return err
}

func translateIndicator(err error) error {
	if errors.Is(err, domainIndicator.ErrNotFound) {
		return ErrIndicatorNotFound
	}
	return err
}
