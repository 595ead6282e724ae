package feedback

import (
	"context"
	"errors"

	domainEvidence "greentracker-backend/internal/domain/evidence"
	domainFeedback "greentracker-backend/internal/domain/feedback"
	"greentracker-backend/internal/domain/page"
	"greentracker-backend/internal/domain/uow"
	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/usecase/ownership"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Create records the caller's review of one evidence item.
func (u *Usecase) Create(ctx context.Context, actor domainUser.Actor, ev domainEvidence.Key, in Input) (*DTO, error) {
	if !in.Feedback.Valid() {
		return nil, ErrInvalidValue
	}
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := evidenceWith(ctx, r, actor, ev); err != nil {
			return err
		}
		f := &domainFeedback.EvidenceFeedback{
			ActivityID:     ev.ActivityID,
			EvidenceNumber: ev.EvidenceNumber,
			Feedback:       in.Feedback,
			AdminID:        actor.ID,
		}
		if err := r.Feedback.Create(ctx, f); err != nil {
			return translate(err)
		}
		out := ToDTO(*f)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, actor domainUser.Actor, key domainFeedback.Key) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := evidenceWith(ctx, r, actor, evidenceKey(key)); err != nil {
			return err
		}
		f, err := r.Feedback.FindOne(ctx, key)
		if err != nil {
			return translate(err)
		}
		out := ToDTO(*f)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context, actor domainUser.Actor, ev domainEvidence.Key, p page.Pagination) (page.Page[DTO], error) {
	var out page.Page[DTO]
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := evidenceWith(ctx, r, actor, ev); err != nil {
			return err
		}
		pg, err := r.Feedback.FindPage(ctx, p, domainFeedback.Filter{ActivityID: ev.ActivityID, EvidenceNumber: ev.EvidenceNumber})
		if err != nil {
			return err
		}
		out = page.Map(pg, ToDTO)
		return nil
	})
	return out, err
}

// Replace swaps the feedback value; the caller becomes its author.
func (u *Usecase) Replace(ctx context.Context, actor domainUser.Actor, key domainFeedback.Key, in Input) (*DTO, error) {
	if !in.Feedback.Valid() {
		return nil, ErrInvalidValue
	}
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := evidenceWith(ctx, r, actor, evidenceKey(key)); err != nil {
			return err
		}
		f := &domainFeedback.EvidenceFeedback{
			ActivityID:     key.ActivityID,
			EvidenceNumber: key.EvidenceNumber,
			Feedback:       in.Feedback,
			AdminID:        actor.ID,
		}
		if err := r.Feedback.Replace(ctx, key, f); err != nil {
			return translate(err)
		}
		out := ToDTO(*f)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Delete(ctx context.Context, actor domainUser.Actor, key domainFeedback.Key) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := evidenceWith(ctx, r, actor, evidenceKey(key)); err != nil {
			return err
		}
		return translate(r.Feedback.Delete(ctx, key))
	})
}

// ListWith returns all feedback of one evidence item on the caller's transaction.
func ListWith(ctx context.Context, r uow.Repos, ev domainEvidence.Key) ([]DTO, error) {
	list, err := r.Feedback.FindAll(ctx, domainFeedback.Filter{ActivityID: ev.ActivityID, EvidenceNumber: ev.EvidenceNumber})
	if err != nil {
		return nil, err
	}
	out := make([]DTO, 0, len(list))
	for _, f := range list {
		out = append(out, ToDTO(f))
	}
	return out, nil
}

func evidenceWith(ctx context.Context, r uow.Repos, actor domainUser.Actor, ev domainEvidence.Key) error {
	if _, err := ownership.ActivityWith(ctx, r, actor, ev.ActivityID); err != nil {
		return err
	}
	_, err := r.Evidence.FindOne(ctx, ev)
	if errors.Is(err, domainEvidence.ErrNotFound) {
		return ErrEvidenceNotFound
	}
	return err
}

func evidenceKey(k domainFeedback.Key) domainEvidence.Key {
	return domainEvidence.Key{ActivityID: k.ActivityID, EvidenceNumber: k.EvidenceNumber}
}

func translate(err error) error {
	switch {
	case errors.Is(err, domainFeedback.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, domainFeedback.ErrAlreadyExists):
		return ErrAlreadyExists
	}
	return err
}
