package criterion

import (
	"context"
	"errors"

	domainCategory "greentracker-backend/internal/domain/category"
	domainCriterion "greentracker-backend/internal/domain/criterion"
	domainIndicator "greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/domain/page"
	"greentracker-backend/internal/domain/uow"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func (u *Usecase) Create(ctx context.Context, indicatorIndex int, in Input) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := checkParents(ctx, r, indicatorIndex, in.CategoryName); err != nil {
			return err
		}
		c := toEntity(indicatorIndex, in)
		if err := r.Criteria.Create(ctx, c); err != nil {
			return translate(err)
		}
		out := ToDTO(*c)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, key domainCriterion.Key) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Criteria.FindOne(ctx, key)
		if err != nil {
			return translate(err)
		}
		out := ToDTO(*c)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// List pages the criteria of an indicator; a non-nil categoryName keeps only that category's.
func (u *Usecase) List(ctx context.Context, indicatorIndex int, categoryName *string, p page.Pagination) (page.Page[DTO], error) {
	var out page.Page[DTO]
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Indicators.FindOne(ctx, indicatorIndex); err != nil {
			return translateIndicator(err)
		}
		pg, err := r.Criteria.FindPage(ctx, p, domainCriterion.Filter{IndicatorIndex: indicatorIndex, CategoryName: categoryName})
		if err != nil {
			return err
		}
		out = page.Map(pg, ToDTO)
		return nil
	})
	return out, err
}

func (u *Usecase) Replace(ctx context.Context, key domainCriterion.Key, in Input) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Criteria.FindOne(ctx, key); err != nil {
			return translate(err)
		}
		if err := checkParents(ctx, r, key.IndicatorIndex, in.CategoryName); err != nil {
			return err
		}
		c := toEntity(key.IndicatorIndex, in)
		if err := r.Criteria.Replace(ctx, key, c); err != nil {
			return translate(err)
		}
		out := ToDTO(*c)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Delete(ctx context.Context, key domainCriterion.Key) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return translate(r.Criteria.Delete(ctx, key))
	})
}

// ListByCategoryWith returns the criteria assigned to a category, on the caller's transaction.
func ListByCategoryWith(ctx context.Context, r uow.Repos, key domainCategory.Key) ([]DTO, error) {
	name := key.Name
	list, err := r.Criteria.FindAll(ctx, domainCriterion.Filter{IndicatorIndex: key.IndicatorIndex, CategoryName: &name})
	if err != nil {
		return nil, err
	}
	out := make([]DTO, 0, len(list))
	for _, c := range list {
		out = append(out, ToDTO(c))
	}
	return out, nil
}

func checkParents(ctx context.Context, r uow.Repos, indicatorIndex int, categoryName *string) error {
	if _, err := r.Indicators.FindOne(ctx, indicatorIndex); err != nil {
		return translateIndicator(err)
	}
	if categoryName == nil {
		return nil
	}
	_, err := r.Categories.FindOne(ctx, domainCategory.Key{IndicatorIndex: indicatorIndex, Name: *categoryName})
	if errors.Is(err, domainCategory.ErrNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

func toEntity(indicatorIndex int, in Input) *domainCriterion.Criterion {
	return &domainCriterion.Criterion{
		IndicatorIndex: indicatorIndex,
		Subindex:       in.Subindex,
		EnglishName:    in.EnglishName,
		SpanishAlias:   in.SpanishAlias,
		CategoryName:   in.CategoryName,
	}
}

func translate(err error) error {
	switch {
	case errors.Is(err, domainCriterion.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, domainCriterion.ErrAlreadyExists):
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
