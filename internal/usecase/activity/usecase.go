package activity

import (
	"context"
	"errors"

	domainActivity "greentracker-backend/internal/domain/activity"
	domainCategory "greentracker-backend/internal/domain/category"
	domainEvidence "greentracker-backend/internal/domain/evidence"
	"greentracker-backend/internal/domain/page"
	"greentracker-backend/internal/domain/uow"
	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/usecase/evidence"
	"greentracker-backend/internal/usecase/ownership"
	"greentracker-backend/internal/usecase/uploadperiod"
	"greentracker-backend/pkg/id"
)

type Usecase struct {
	uow      uow.UnitOfWork
	periods  *uploadperiod.Usecase
	evidence *evidence.Usecase
}

func NewUsecase(tx uow.UnitOfWork, periods *uploadperiod.Usecase, ev *evidence.Usecase) *Usecase {
	return &Usecase{uow: tx, periods: periods, evidence: ev}
}

// Create files a new activity for the calling unit while the upload period is open.
func (u *Usecase) Create(ctx context.Context, actor domainUser.Actor, in Input) (*DTO, error) {
	if actor.Role != domainUser.RoleUnit {
		return nil, ownership.ErrUnitsOnly
	}
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := u.periods.CheckSubmissionWith(ctx, r, actor); err != nil {
			return err
		}
		if err := categoryExists(ctx, r, in); err != nil {
			return err
		}
		a := &domainActivity.Activity{
			ID:              id.New(),
			Name:            in.Name,
			Summary:         in.Summary,
			IndicatorIndex:  in.IndicatorIndex,
			CategoryName:    in.CategoryName,
			UnitID:          actor.ID,
			UploadTimestamp: u.periods.Now(),
		}
		if err := r.Activities.Create(ctx, a); err != nil {
			return err
		}
		out := ToDTO(*a)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, actor domainUser.Actor, activityID string) (*DetailDTO, error) {
	var dto *DetailDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := ownership.ActivityWith(ctx, r, actor, activityID)
		if err != nil {
			return err
		}
		ev, err := evidence.ListWith(ctx, r, a.ID)
		if err != nil {
			return err
		}
		dto = &DetailDTO{DTO: ToDTO(*a), Evidence: ev}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// List pages activities newest first. Units only ever see their own.
func (u *Usecase) List(ctx context.Context, actor domainUser.Actor, q Query, p page.Pagination) (page.Page[DTO], error) {
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return page.Page[DTO]{}, ErrInvalidRange
	}
	if actor.Role == domainUser.RoleUnit {
		q.UnitID = actor.ID
	}
	var out page.Page[DTO]
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		pg, err := r.Activities.FindPage(ctx, p, q.filter())
		if err != nil {
			return err
		}
		out = page.Map(pg, ToDTO)
		return nil
	})
	return out, err
}

// Replace rewrites an activity of the calling unit; id, owner and upload time are kept.
func (u *Usecase) Replace(ctx context.Context, actor domainUser.Actor, activityID string, in Input) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cur, err := ownership.OwnedActivityWith(ctx, r, actor, activityID)
		if err != nil {
			return err
		}
		if err := u.periods.CheckSubmissionWith(ctx, r, actor); err != nil {
			return err
		}
		if err := categoryExists(ctx, r, in); err != nil {
			return err
		}
		a := &domainActivity.Activity{
			ID:              cur.ID,
			Name:            in.Name,
			Summary:         in.Summary,
			IndicatorIndex:  in.IndicatorIndex,
			CategoryName:    in.CategoryName,
			UnitID:          cur.UnitID,
			UploadTimestamp: cur.UploadTimestamp,
		}
		if err := r.Activities.Replace(ctx, activityID, a); err != nil {
			return translate(err)
		}
		out := ToDTO(*a)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Delete removes the activity with its feedback and evidence; files go once the transaction commits.
// Units may delete their own activities while the period is open, staff may delete any.
func (u *Usecase) Delete(ctx context.Context, actor domainUser.Actor, activityID string) error {
	var removed []domainEvidence.Record
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := ownership.ActivityWith(ctx, r, actor, activityID); err != nil {
			return err
		}
		if err := u.periods.CheckSubmissionWith(ctx, r, actor); err != nil {
			return err
		}
		recs, err := DeleteWith(ctx, r, activityID)
		removed = recs
		return err
	})
	if err != nil {
		return err
	}
	u.evidence.RemoveFiles(removed)
	return nil
}

// DeleteWith removes the activity and everything hanging off it on the caller's transaction.
// It returns the evidence records whose files the caller must remove after commit.
func DeleteWith(ctx context.Context, r uow.Repos, activityID string) ([]domainEvidence.Record, error) {
	if err := r.Feedback.DeleteByActivity(ctx, activityID); err != nil {
		return nil, err
	}
	recs, err := r.Evidence.DeleteByActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if err := r.Activities.Delete(ctx, activityID); err != nil {
		return nil, translate(err)
	}
	return recs, nil
}

func categoryExists(ctx context.Context, r uow.Repos, in Input) error {
	_, err := r.Categories.FindOne(ctx, domainCategory.Key{IndicatorIndex: in.IndicatorIndex, Name: in.CategoryName})
	if errors.Is(err, domainCategory.ErrNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

func translate(err error) error {
	if errors.Is(err, domainActivity.ErrNotFound) {
		return ownership.ErrActivityNotFound
	}
	return err
}
