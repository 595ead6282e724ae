package mysql

import (
	"context"

	criterionDomain "greentracker-backend/internal/domain/criterion"
	"greentracker-backend/internal/domain/page"

	"gorm.io/gorm"
)

type CriterionRepository struct{ db *gorm.DB }

func NewCriterionRepository(db *gorm.DB) *CriterionRepository { return &CriterionRepository{db: db} }

func (r *CriterionRepository) byKey(ctx context.Context, key criterionDomain.Key) *gorm.DB {
	return r.db.WithContext(ctx).Where("indicator_index = ? AND subindex = ?", key.IndicatorIndex, key.Subindex)
}

func (r *CriterionRepository) filtered(ctx context.Context, f criterionDomain.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Where("indicator_index = ?", f.IndicatorIndex)
	if f.CategoryName != nil {
		q = q.Where("category_name = ?", *f.CategoryName)
	}
	return q
}

func (r *CriterionRepository) Create(ctx context.Context, c *criterionDomain.Criterion) error {
	err := r.db.WithContext(ctx).Create(c).Error
	return translate(err, criterionDomain.ErrNotFound, criterionDomain.ErrAlreadyExists)
}

func (r *CriterionRepository) FindOne(ctx context.Context, key criterionDomain.Key) (*criterionDomain.Criterion, error) {
	var out criterionDomain.Criterion
	if err := r.byKey(ctx, key).First(&out).Error; err != nil {
		return nil, translate(err, criterionDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *CriterionRepository) FindPage(ctx context.Context, p page.Pagination, f criterionDomain.Filter) (page.Page[criterionDomain.Criterion], error) {
	return findPage[criterionDomain.Criterion](r.filtered(ctx, f), p, "subindex")
}

func (r *CriterionRepository) FindAll(ctx context.Context, f criterionDomain.Filter) ([]criterionDomain.Criterion, error) {
	var out []criterionDomain.Criterion
	err := r.filtered(ctx, f).Order("subindex").Find(&out).Error
	return out, err
}

func (r *CriterionRepository) Replace(ctx context.Context, key criterionDomain.Key, c *criterionDomain.Criterion) error {
	res := r.byKey(ctx, key).Model(&criterionDomain.Criterion{}).Updates(map[string]any{
		"subindex":      c.Subindex,
		"english_name":  c.EnglishName,
		"spanish_alias": c.SpanishAlias,
		"category_name": c.CategoryName,
	})
	return affected(res, criterionDomain.ErrNotFound, criterionDomain.ErrAlreadyExists)
}

func (r *CriterionRepository) Delete(ctx context.Context, key criterionDomain.Key) error {
	res := r.byKey(ctx, key).Delete(&criterionDomain.Criterion{})
	return affected(res, criterionDomain.ErrNotFound, nil)
}

func (r *CriterionRepository) ClearCategory(ctx context.Context, indicatorIndex int, categoryName string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&criterionDomain.Criterion{}).
		Where("indicator_index = ? AND category_name = ?", indicatorIndex, categoryName).
		Update("category_name", nil)
	return res.RowsAffected, res.Error
}

func (r *CriterionRepository) AssignCategory(ctx context.Context, key criterionDomain.Key, categoryName *string) error {
	res := r.byKey(ctx, key).Model(&criterionDomain.Criterion{}).Update("category_name", categoryName)
	return affected(res, criterionDomain.ErrNotFound, nil)
}
