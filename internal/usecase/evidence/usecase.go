package evidence

import (
	"context"
	"errors"
	"io"

	domainEvidence "greentracker-backend/internal/domain/evidence"
	"greentracker-backend/internal/domain/page"
	"greentracker-backend/internal/domain/uow"
	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/usecase/feedback"
	"greentracker-backend/internal/usecase/ownership"
	"greentracker-backend/internal/usecase/uploadperiod"

	"github.com/sirupsen/logrus"
)

// FileStore keeps evidence files outside the database.
type FileStore interface {
	Save(originalName string, content io.Reader) (link string, err error)
	Delete(link string) error
}

type Usecase struct {
	uow     uow.UnitOfWork
	periods *uploadperiod.Usecase
	files   FileStore
	log     logrus.FieldLogger
}

func NewUsecase(tx uow.UnitOfWork, periods *uploadperiod.Usecase, files FileStore, log logrus.FieldLogger) *Usecase {
	return &Usecase{uow: tx, periods: periods, files: files, log: log}
}

// CreateFile stores the file, then inserts the row; the file is removed again if the insert fails.
func (u *Usecase) CreateFile(ctx context.Context, actor domainUser.Actor, activityID string, typ domainEvidence.Type, in FileInput, file Upload) (*DTO, error) {
	variant, err := fileVariant(typ, in)
	if err != nil {
		return nil, err
	}
	if file.Content == nil {
		return nil, ErrMissingFile
	}
	link, err := u.files.Save(file.Name, file.Content)
	if err != nil {
		return nil, err
	}
	dto, err := u.create(ctx, actor, activityID, link, in.Description, variant)
	if err != nil {
		u.removeFile(link)
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) CreateLink(ctx context.Context, actor domainUser.Actor, activityID string, in LinkInput) (*DTO, error) {
	return u.create(ctx, actor, activityID, in.Link, in.Description, domainEvidence.LinkVariant{})
}

func (u *Usecase) create(ctx context.Context, actor domainUser.Actor, activityID, link, description string, variant domainEvidence.Variant) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := ownership.OwnedActivityWith(ctx, r, actor, activityID); err != nil {
			return err
		}
		if err := u.periods.CheckSubmissionWith(ctx, r, actor); err != nil {
			return err
		}
		n, err := r.Evidence.NextNumber(ctx, activityID)
		if err != nil {
			return err
		}
		rec := &domainEvidence.Record{
			Evidence: domainEvidence.Evidence{
				ActivityID:      activityID,
				EvidenceNumber:  n,
				Link:            link,
				Description:     description,
				UploadTimestamp: u.periods.Now(),
			},
			Variant: variant,
		}
		if err := r.Evidence.Create(ctx, rec); err != nil {
			return translate(err)
		}
		out := toDTO(*rec, nil)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ReplaceFile stores the new file and rewrites the row; the old file is removed only after commit.
func (u *Usecase) ReplaceFile(ctx context.Context, actor domainUser.Actor, key domainEvidence.Key, typ domainEvidence.Type, in FileInput, file Upload) (*DTO, error) {
	variant, err := fileVariant(typ, in)
	if err != nil {
		return nil, err
	}
	if file.Content == nil {
		return nil, ErrMissingFile
	}
	link, err := u.files.Save(file.Name, file.Content)
	if err != nil {
		return nil, err
	}
	dto, old, err := u.replace(ctx, actor, key, link, in.Description, variant)
	if err != nil {
		u.removeFile(link)
		return nil, err
	}
	u.removeFile(old.Link)
	return dto, nil
}

func (u *Usecase) ReplaceLink(ctx context.Context, actor domainUser.Actor, key domainEvidence.Key, in LinkInput) (*DTO, error) {
	dto, _, err := u.replace(ctx, actor, key, in.Link, in.Description, domainEvidence.LinkVariant{})
	return dto, err
}

func (u *Usecase) replace(ctx context.Context, actor domainUser.Actor, key domainEvidence.Key, link, description string, variant domainEvidence.Variant) (*DTO, *domainEvidence.Record, error) {
	var dto *DTO
	var old *domainEvidence.Record
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := ownership.OwnedActivityWith(ctx, r, actor, key.ActivityID); err != nil {
			return err
		}
		if err := u.periods.CheckSubmissionWith(ctx, r, actor); err != nil {
			return err
		}
		cur, err := r.Evidence.FindOne(ctx, key)
		if err != nil {
			return translate(err)
		}
		if cur.Variant.Type() != variant.Type() {
			return ErrTypeMismatch
		}
		rec := &domainEvidence.Record{
			Evidence: domainEvidence.Evidence{
				ActivityID:      key.ActivityID,
				EvidenceNumber:  key.EvidenceNumber,
				Link:            link,
				Description:     description,
				UploadTimestamp: u.periods.Now(),
			},
			Variant: variant,
		}
		if err := r.Evidence.Replace(ctx, key, rec); err != nil {
			return translate(err)
		}
		fb, err := feedback.ListWith(ctx, r, key)
		if err != nil {
			return err
		}
		out := toDTO(*rec, fb)
		dto, old = &out, cur
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return dto, old, nil
}

// Get reads one evidence item; typ must match the stored variant.
func (u *Usecase) Get(ctx context.Context, actor domainUser.Actor, key domainEvidence.Key, typ domainEvidence.Type) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := ownership.ActivityWith(ctx, r, actor, key.ActivityID); err != nil {
			return err
		}
		rec, err := findTyped(ctx, r, key, typ)
		if err != nil {
			return err
		}
		fb, err := feedback.ListWith(ctx, r, key)
		if err != nil {
			return err
		}
		out := toDTO(*rec, fb)
		dto = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// List pages the evidence of an activity; an empty typ lists every variant.
func (u *Usecase) List(ctx context.Context, actor domainUser.Actor, activityID string, typ domainEvidence.Type, p page.Pagination) (page.Page[DTO], error) {
	var out page.Page[DTO]
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := ownership.ActivityWith(ctx, r, actor, activityID); err != nil {
			return err
		}
		pg, err := r.Evidence.FindPage(ctx, p, domainEvidence.Filter{ActivityID: activityID, Type: typ})
		if err != nil {
			return err
		}
		items := make([]DTO, 0, len(pg.Items))
		for _, rec := range pg.Items {
			fb, err := feedback.ListWith(ctx, r, rec.Key())
			if err != nil {
				return err
			}
			items = append(items, toDTO(rec, fb))
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

// Delete removes the feedback and the row, then the file once committed.
// Units delete only inside the upload period; staff may always delete.
func (u *Usecase) Delete(ctx context.Context, actor domainUser.Actor, key domainEvidence.Key, typ domainEvidence.Type) error {
	var removed *domainEvidence.Record
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := ownership.ActivityWith(ctx, r, actor, key.ActivityID); err != nil {
			return err
		}
		if err := u.periods.CheckSubmissionWith(ctx, r, actor); err != nil {
			return err
		}
		rec, err := findTyped(ctx, r, key, typ)
		if err != nil {
			return err
		}
		if err := r.Feedback.DeleteByEvidence(ctx, key.ActivityID, key.EvidenceNumber); err != nil {
			return err
		}
		if err := r.Evidence.Delete(ctx, key); err != nil {
			return translate(err)
		}
		removed = rec
		return nil
	})
	if err != nil {
		return err
	}
	u.RemoveFiles([]domainEvidence.Record{*removed})
	return nil
}

// ListWith assembles every evidence item of an activity with its feedback on the caller's transaction.
func ListWith(ctx context.Context, r uow.Repos, activityID string) ([]DTO, error) {
	recs, err := r.Evidence.FindAll(ctx, domainEvidence.Filter{ActivityID: activityID})
	if err != nil {
		return nil, err
	}
	out := make([]DTO, 0, len(recs))
	for _, rec := range recs {
		fb, err := feedback.ListWith(ctx, r, rec.Key())
		if err != nil {
			return nil, err
		}
		out = append(out, toDTO(rec, fb))
	}
	return out, nil
}

// RemoveFiles deletes the stored files of already-deleted records. Failures are only logged.
func (u *Usecase) RemoveFiles(recs []domainEvidence.Record) {
	for _, rec := range recs {
		if domainEvidence.HasFile(rec.Variant) {
			u.removeFile(rec.Link)
		}
	}
}

func (u *Usecase) removeFile(link string) {
	if err := u.files.Delete(link); err != nil {
		u.log.WithError(err).WithField("link", link).Warn("evidence file not removed")
	}
}

func findTyped(ctx context.Context, r uow.Repos, key domainEvidence.Key, typ domainEvidence.Type) (*domainEvidence.Record, error) {
	rec, err := r.Evidence.FindOne(ctx, key)
	if err != nil {
		return nil, translate(err)
	}
	if typ != "" && rec.Variant.Type() != typ {
		return nil, ErrNotFound
	}
	return rec, nil
}

func fileVariant(typ domainEvidence.Type, in FileInput) (domainEvidence.Variant, error) {
	switch typ {
	case domainEvidence.TypeImage:
		return domainEvidence.ImageVariant{LinkToRelatedResource: in.LinkToRelatedResource}, nil
	case domainEvidence.TypeDocument:
		return domainEvidence.DocumentVariant{}, nil
	default:
		return nil, ErrUnsupportedType
	}
}

func translate(err error) error {
	switch {
	case errors.Is(err, domainEvidence.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, domainEvidence.ErrAlreadyExists):
		return ErrNumberTaken
	}
	return err
}
