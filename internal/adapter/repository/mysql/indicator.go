package mysql

import (
	"context"

	indicatorDomain "greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/domain/page"

	"gorm.io/gorm"
)

type IndicatorRepository struct{ db *gorm.DB }

func NewIndicatorRepository(db *gorm.DB) *IndicatorRepository {
	return &IndicatorRepository{db: db}
}

func (r *IndicatorRepository) Create(ctx context.Context, i *indicatorDomain.Indicator) error {
	err := r.db.WithContext(ctx).Create(i).Error
	return translate(err, indicatorDomain.ErrNotFound, indicatorDomain.ErrAlreadyExists)
}

func (r *IndicatorRepository) FindOne(ctx context.Context, index int) (*indicatorDomain.Indicator, error) {
	var out indicatorDomain.Indicator
	if err := r.db.WithContext(ctx).Where("`index` = ?", index).First(&out).Error; err != nil {
		return nil, translate(err, indicatorDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *IndicatorRepository) FindPage(ctx context.Context, p page.Pagination) (page.Page[indicatorDomain.Indicator], error) {
	return findPage[indicatorDomain.Indicator](r.db.WithContext(ctx), p, "`index`")
}

func (r *IndicatorRepository) FindAll(ctx context.Context) ([]indicatorDomain.Indicator, error) {
	var out []indicatorDomain.Indicator
	err := r.db.WithContext(ctx).Order("`index`").Find(&out).Error
	return out, err
}

// Replace may move the row to a new index.
func (r *IndicatorRepository) Replace(ctx context.Context, index int, i *indicatorDomain.Indicator) error {
	res := r.db.WithContext(ctx).Model(&indicatorDomain.Indicator{}).Where("`index` = ?", index).Updates(map[string]any{
		"index":         i.Index,
		"english_name":  i.EnglishName,
		"spanish_alias": i.SpanishAlias,
	})
	return affected(res, indicatorDomain.ErrNotFound, indicatorDomain.ErrAlreadyExists)
}

func (r *IndicatorRepository) Delete(ctx context.Context, index int) error {
	res := r.db.WithContext(ctx).Where("`index` = ?", index).Delete(&indicatorDomain.Indicator{})
	return affected(res, indicatorDomain.ErrNotFound, nil)
}
