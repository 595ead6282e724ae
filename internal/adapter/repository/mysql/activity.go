package mysql

import (
	"context"

	activityDomain "greentracker-backend/internal/domain/activity"
	"greentracker-backend/internal/domain/page"

	"gorm.io/gorm"
)

type ActivityRepository struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository { return &ActivityRepository{db: db} }

func (r *ActivityRepository) filtered(ctx context.Context, f activityDomain.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&activityDomain.Activity{})
	if f.UnitID != "" {
		q = q.Where("unit_id = ?", f.UnitID)
	}
	if f.IndicatorIndex != nil {
		q = q.Where("indicator_index = ?", *f.IndicatorIndex)
	}
	if f.CategoryName != "" {
		q = q.Where("category_name = ?", f.CategoryName)
	}
	if f.UploadedFrom != nil {
		q = q.Where("upload_timestamp >= ?", *f.UploadedFrom)
	}
	if f.UploadedTo != nil {
		q = q.Where("upload_timestamp <= ?", *f.UploadedTo)
	}
	return q
}

func (r *ActivityRepository) Create(ctx context.Context, a *activityDomain.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ActivityRepository) FindOne(ctx context.Context, id string) (*activityDomain.Activity, error) {
	var out activityDomain.Activity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, activityDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *ActivityRepository) FindPage(ctx context.Context, p page.Pagination, f activityDomain.Filter) (page.Page[activityDomain.Activity], error) {
	return findPage[activityDomain.Activity](r.filtered(ctx, f), p, "upload_timestamp DESC, id")
}

func (r *ActivityRepository) FindAll(ctx context.Context, f activityDomain.Filter) ([]activityDomain.Activity, error) {
	var out []activityDomain.Activity
	err := r.filtered(ctx, f).Order("upload_timestamp DESC, id").Find(&out).Error
	return out, err
}

func (r *ActivityRepository) Count(ctx context.Context, f activityDomain.Filter) (int64, error) {
	var n int64
	err := r.filtered(ctx, f).Count(&n).Error
	return n, err
}

// Replace keeps the owner and the upload timestamp.
func (r *ActivityRepository) Replace(ctx context.Context, id string, a *activityDomain.Activity) error {
	res := r.db.WithContext(ctx).Model(&activityDomain.Activity{}).Where("id = ?", id).Updates(map[string]any{
		"name":            a.Name,
		"summary":         a.Summary,
		"indicator_index": a.IndicatorIndex,
		"category_name":   a.CategoryName,
	})
	return affected(res, activityDomain.ErrNotFound, nil)
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&activityDomain.Activity{})
	return affected(res, activityDomain.ErrNotFound, nil)
}
