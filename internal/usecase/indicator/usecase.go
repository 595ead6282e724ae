package indicator

import (
	"context"
	"errors"

	domainActivity "greentracker-backend/internal/domain/activity"
	domainCriterion "greentracker-backend/internal/domain/criterion"
	domainIndicator "greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/domain/page"
	"greentracker-backend/internal/domain/uow"
	"greentracker-backend/internal/usecase/category"

	"gorm.io/gorm"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func (u *Usecase) Create(ctx context.Context, in Input) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		i := &domainIndicator.Indicator{Index: in.Index, EnglishName: in.EnglishName, SpanishAlias: in.SpanishAlias}
		if err := r.Indicators.Create(ctx, i); err != nil {
			return translate(err)
		}
		out := toDTO(*i, nil)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, index int) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		out, err := AssembleWith(ctx, r, index)
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
		pg, err := r.Indicators.FindPage(ctx, p)
		if err != nil {
			return err
		}
		items := make([]DTO, 0, len(pg.Items))
		for _, i := range pg.Items {
			cats, err := category.ListWith(ctx, r, i.Index)
			if err != nil {
				return err
			}
			items = append(items, toDTO(i, cats))
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

// Replace rewrites the indicator; moving it to another index requires it to have no children.
func (u *Usecase) Replace(ctx context.Context, index int, in Input) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Indicators.FindOne(ctx, index); err != nil {
			return translate(err)
		}
		if in.Index != index {
			if err := checkNoChildren(ctx, r, index); err != nil {
				return err
			}
		}
		i := &domainIndicator.Indicator{Index: in.Index, EnglishName: in.EnglishName, SpanishAlias: in.SpanishAlias}
		if err := r.Indicators.Replace(ctx, index, i); err != nil {
			return translate(err)
		}
		out, err := AssembleWith(ctx, r, in.Index)
		dto = out
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Delete removes the indicator with its categories and criteria. Indicators with activities are kept.
func (u *Usecase) Delete(ctx context.Context, index int) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Indicators.FindOne(ctx, index); err != nil {
			return translate(err)
		}
		n, err := r.Activities.Count(ctx, domainActivity.Filter{IndicatorIndex: &index})
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrInUse
		}
		cats, err := r.Categories.FindAll(ctx, index)
		if err != nil {
			return err
		}
		for _, c := range cats {
			if err := category.DeleteWith(ctx, r, c.Key()); err != nil {
				return err
			}
		}
		crits, err := r.Criteria.FindAll(ctx, domainCriterion.Filter{IndicatorIndex: index})
		if err != nil {
			return err
		}
		for _, c := range crits {
			if err := r.Criteria.Delete(ctx, c.Key()); err != nil {
				return err
			}
		}
		return translate(r.Indicators.Delete(ctx, index))
	})
}

// AssembleWith loads an indicator with its categories and their criteria on the caller's transaction.
func AssembleWith(ctx context.Context, r uow.Repos, index int) (*DTO, error) {
	i, err := r.Indicators.FindOne(ctx, index)
	if err != nil {
		return nil, translate(err)
	}
	cats, err := category.ListWith(ctx, r, index)
	if err != nil {
		return nil, err
	}
	out := toDTO(*i, cats)
	return &out, nil
}

func checkNoChildren(ctx context.Context, r uow.Repos, index int) error {
	cats, err := r.Categories.FindAll(ctx, index)
	if err != nil {
		return err
	}
	crits, err := r.Criteria.FindAll(ctx, domainCriterion.Filter{IndicatorIndex: index})
	if err != nil {
		return err
	}
	if len(cats) > 0 || len(crits) > 0 {
		return ErrHasChildren
	}
	n, err := r.Activities.Count(ctx, domainActivity.Filter{IndicatorIndex: &index})
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
	case errors.Is(err, domainIndicator.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, domainIndicator.ErrAlreadyExists):
		return ErrAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInUse
	}
	return err
}
