package uploadperiod

import (
	"context"
	"errors"
	"time"

	"greentracker-backend/internal/domain/uow"
	domainUploadPeriod "greentracker-backend/internal/domain/uploadperiod"
	domainUser "greentracker-backend/internal/domain/user"
)

// Usecase manages the single upload period row identified by periodID.
type Usecase struct {
	uow      uow.UnitOfWork
	periodID int
	now      func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, periodID int) *Usecase {
	return &Usecase{uow: tx, periodID: periodID, now: time.Now}
}

// WithClock replaces the time source; tests only.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

func (u *Usecase) Now() time.Time { return u.now().UTC() }

func (u *Usecase) Get(ctx context.Context) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := u.FindWith(ctx, r)
		if err != nil {
			return err
		}
		out := toDTO(*p, u.Now())
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Replace(ctx context.Context, in Input) (*DTO, error) {
	if !in.StartTimestamp.Before(in.EndTimestamp) {
		return nil, ErrInvalidRange
	}
	p := &domainUploadPeriod.UploadPeriod{
		ID:             u.periodID,
		StartTimestamp: in.StartTimestamp.UTC(),
		EndTimestamp:   in.EndTimestamp.UTC(),
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.UploadPeriods.Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	out := toDTO(*p, u.Now())
	return &out, nil
}

func (u *Usecase) FindWith(ctx context.Context, r uow.Repos) (*domainUploadPeriod.UploadPeriod, error) {
	p, err := r.UploadPeriods.FindOne(ctx, u.periodID)
	if errors.Is(err, domainUploadPeriod.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// IsOpenWith reports whether now falls in the period. A missing period is closed.
func (u *Usecase) IsOpenWith(ctx context.Context, r uow.Repos) (bool, error) {
	p, err := u.FindWith(ctx, r)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.Contains(u.Now()), nil
}

// CheckSubmissionWith rejects unit submissions outside the period. Staff are never gated.
func (u *Usecase) CheckSubmissionWith(ctx context.Context, r uow.Repos, actor domainUser.Actor) error {
	if actor.Role != domainUser.RoleUnit {
		return nil
	}
	open, err := u.IsOpenWith(ctx, r)
	if err != nil {
		return err
	}
	if !open {
		return ErrClosed
	}
	return nil
}
