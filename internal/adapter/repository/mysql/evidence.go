package mysql

import (
	"context"
	"fmt"

	evidenceDomain "greentracker-backend/internal/domain/evidence"
	"greentracker-backend/internal/domain/page"

	"gorm.io/gorm"
)

type EvidenceRepository struct{ db *gorm.DB }

func NewEvidenceRepository(db *gorm.DB) *EvidenceRepository { return &EvidenceRepository{db: db} }

func (r *EvidenceRepository) byKey(ctx context.Context, key evidenceDomain.Key) *gorm.DB {
	return r.db.WithContext(ctx).Where("activity_id = ? AND evidence_number = ?", key.ActivityID, key.EvidenceNumber)
}

func (r *EvidenceRepository) filtered(ctx context.Context, f evidenceDomain.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Where("activity_id = ?", f.ActivityID)
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	return q
}

func (r *EvidenceRepository) Create(ctx context.Context, rec *evidenceDomain.Record) error {
	rec.Type = rec.Variant.Type()
	if err := r.db.WithContext(ctx).Create(&rec.Evidence).Error; err != nil {
		return translate(err, evidenceDomain.ErrNotFound, evidenceDomain.ErrAlreadyExists)
	}
	return r.createExtension(ctx, rec)
}

func (r *EvidenceRepository) createExtension(ctx context.Context, rec *evidenceDomain.Record) error {
	switch v := rec.Variant.(type) {
	case evidenceDomain.ImageVariant:
		return r.db.WithContext(ctx).Create(&evidenceDomain.ImageEvidence{
			ActivityID:            rec.ActivityID,
			EvidenceNumber:        rec.EvidenceNumber,
			LinkToRelatedResource: v.LinkToRelatedResource,
		}).Error
	case evidenceDomain.DocumentVariant, evidenceDomain.LinkVariant:
		return nil
	default:
		return fmt.Errorf("evidence: unknown variant %T", v)
	}
}

func (r *EvidenceRepository) FindOne(ctx context.Context, key evidenceDomain.Key) (*evidenceDomain.Record, error) {
	var base evidenceDomain.Evidence
	if err := r.byKey(ctx, key).First(&base).Error; err != nil {
		return nil, translate(err, evidenceDomain.ErrNotFound, nil)
	}
	images, err := r.images(ctx, base.ActivityID, []evidenceDomain.Evidence{base})
	if err != nil {
		return nil, err
	}
	rec, err := toRecord(base, images)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *EvidenceRepository) FindPage(ctx context.Context, p page.Pagination, f evidenceDomain.Filter) (page.Page[evidenceDomain.Record], error) {
	pg, err := findPage[evidenceDomain.Evidence](r.filtered(ctx, f), p, "evidence_number")
	if err != nil {
		return page.Page[evidenceDomain.Record]{}, err
	}
	recs, err := r.toRecords(ctx, f.ActivityID, pg.Items)
	if err != nil {
		return page.Page[evidenceDomain.Record]{}, err
	}
	return page.Page[evidenceDomain.Record]{
		Items:        recs,
		PageIndex:    pg.PageIndex,
		ItemsPerPage: pg.ItemsPerPage,
		PageCount:    pg.PageCount,
		ItemCount:    pg.ItemCount,
	}, nil
}

func (r *EvidenceRepository) FindAll(ctx context.Context, f evidenceDomain.Filter) ([]evidenceDomain.Record, error) {
	var base []evidenceDomain.Evidence
	if err := r.filtered(ctx, f).Order("evidence_number").Find(&base).Error; err != nil {
		return nil, err
	}
	return r.toRecords(ctx, f.ActivityID, base)
}

// Replace rewrites the base row and swaps the extension row to match the new variant.
func (r *EvidenceRepository) Replace(ctx context.Context, key evidenceDomain.Key, rec *evidenceDomain.Record) error {
	rec.ActivityID, rec.EvidenceNumber = key.ActivityID, key.EvidenceNumber
	rec.Type = rec.Variant.Type()
	res := r.byKey(ctx, key).Model(&evidenceDomain.Evidence{}).Updates(map[string]any{
		"link":             rec.Link,
		"description":      rec.Description,
		"upload_timestamp": rec.UploadTimestamp,
		"type":             rec.Type,
	})
	if err := affected(res, evidenceDomain.ErrNotFound, nil); err != nil {
		return err
	}
	if err := r.byKey(ctx, key).Delete(&evidenceDomain.ImageEvidence{}).Error; err != nil {
		return err
	}
	return r.createExtension(ctx, rec)
}

func (r *EvidenceRepository) Delete(ctx context.Context, key evidenceDomain.Key) error {
	if err := r.byKey(ctx, key).Delete(&evidenceDomain.ImageEvidence{}).Error; err != nil {
		return err
	}
	res := r.byKey(ctx, key).Delete(&evidenceDomain.Evidence{})
	return affected(res, evidenceDomain.ErrNotFound, nil)
}

func (r *EvidenceRepository) NextNumber(ctx context.Context, activityID string) (int, error) {
	var n int
	err := r.db.WithContext(ctx).Model(&evidenceDomain.Evidence{}).
		Select("COALESCE(MAX(evidence_number), 0)").
		Where("activity_id = ?", activityID).
		Scan(&n).Error
	return n + 1, err
}

func (r *EvidenceRepository) DeleteByActivity(ctx context.Context, activityID string) ([]evidenceDomain.Record, error) {
	recs, err := r.FindAll(ctx, evidenceDomain.Filter{ActivityID: activityID})
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("activity_id = ?", activityID).Delete(&evidenceDomain.ImageEvidence{}).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("activity_id = ?", activityID).Delete(&evidenceDomain.Evidence{}).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// images loads the extension rows for the image items of base, keyed by evidence number.
func (r *EvidenceRepository) images(ctx context.Context, activityID string, base []evidenceDomain.Evidence) (map[int]evidenceDomain.ImageEvidence, error) {
	var numbers []int
	for _, e := range base {
		if e.Type == evidenceDomain.TypeImage {
			numbers = append(numbers, e.EvidenceNumber)
		}
	}
	out := make(map[int]evidenceDomain.ImageEvidence, len(numbers))
	if len(numbers) == 0 {
		return out, nil
	}
	var rows []evidenceDomain.ImageEvidence
	if err := r.db.WithContext(ctx).
		Where("activity_id = ? AND evidence_number IN ?", activityID, numbers).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.EvidenceNumber] = row
	}
	return out, nil
}

func (r *EvidenceRepository) toRecords(ctx context.Context, activityID string, base []evidenceDomain.Evidence) ([]evidenceDomain.Record, error) {
	images, err := r.images(ctx, activityID, base)
	if err != nil {
		return nil, err
	}
	out := make([]evidenceDomain.Record, 0, len(base))
	for _, e := range base {
		rec, err := toRecord(e, images)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func toRecord(e evidenceDomain.Evidence, images map[int]evidenceDomain.ImageEvidence) (evidenceDomain.Record, error) {
	switch e.Type {
	case evidenceDomain.TypeImage:
		img := images[e.EvidenceNumber]
		return evidenceDomain.Record{Evidence: e, Variant: evidenceDomain.ImageVariant{LinkToRelatedResource: img.LinkToRelatedResource}}, nil
	case evidenceDomain.TypeDocument:
		return evidenceDomain.Record{Evidence: e, Variant: evidenceDomain.DocumentVariant{}}, nil
	case evidenceDomain.TypeLink:
		return evidenceDomain.Record{Evidence: e, Variant: evidenceDomain.LinkVariant{}}, nil
	default:
		return evidenceDomain.Record{}, fmt.Errorf("evidence %s/%d: unknown type %q", e.ActivityID, e.EvidenceNumber, e.Type)
	}
}
