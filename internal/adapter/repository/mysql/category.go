package mysql

import (
	"context"

	categoryDomain "greentracker-backend/internal/domain/category"
	"greentracker-backend/internal/domain/page"

	"gorm.io/gorm"
)

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{db: db} }

func (r *CategoryRepository) byKey(ctx context.Context, key categoryDomain.Key) *gorm.DB {
	return r.db.WithContext(ctx).Where("indicator_index = ? AND name = ?", key.IndicatorIndex, key.Name)
}

func (r *CategoryRepository) Create(ctx context.Context, c *categoryDomain.Category) error {
	err := r.db.WithContext(ctx).Create(c).Error
	return translate(err, categoryDomain.ErrNotFound, categoryDomain.ErrAlreadyExists)
}

func (r *CategoryRepository) FindOne(ctx context.Context, key categoryDomain.Key) (*categoryDomain.Category, error) {
	var out categoryDomain.Category
	if err := r.byKey(ctx, key).First(&out).Error; err != nil {
		return nil, translate(err, categoryDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *CategoryRepository) FindPage(ctx context.Context, p page.Pagination, indicatorIndex int) (page.Page[categoryDomain.Category], error) {
	q := r.db.WithContext(ctx).Where("indicator_index = ?", indicatorIndex)
	return findPage[categoryDomain.Category](q, p, "name")
}

func (r *CategoryRepository) FindAll(ctx context.Context, indicatorIndex int) ([]categoryDomain.Category, error) {
	var out []categoryDomain.Category
	err := r.db.WithContext(ctx).Where("indicator_index = ?", indicatorIndex).Order("name").Find(&out).Error
	return out, err
}

// Replace may rename the category; the indicator stays the same.
func (r *CategoryRepository) Replace(ctx context.Context, key categoryDomain.Key, c *categoryDomain.Category) error {
	res := r.byKey(ctx, key).Model(&categoryDomain.Category{}).Updates(map[string]any{
		"name":      c.Name,
		"help_text": c.HelpText,
	})
	return affected(res, categoryDomain.ErrNotFound, categoryDomain.ErrAlreadyExists)
}

func (r *CategoryRepository) Delete(ctx context.Context, key categoryDomain.Key) error {
	res := r.byKey(ctx, key).Delete(&categoryDomain.Category{})
	return affected(res, categoryDomain.ErrNotFound, nil)
}

type RecommendedCategoryRepository struct{ db *gorm.DB }

func NewRecommendedCategoryRepository(db *gorm.DB) *RecommendedCategoryRepository {
	return &RecommendedCategoryRepository{db: db}
}

func (r *RecommendedCategoryRepository) FindAllForUnit(ctx context.Context, unitID string) ([]categoryDomain.RecommendedCategory, error) {
	var out []categoryDomain.RecommendedCategory
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("indicator_index, category_name").
		Find(&out).Error
	return out, err
}

func (r *RecommendedCategoryRepository) ReplaceForUnit(ctx context.Context, unitID string, list []categoryDomain.RecommendedCategory) error {
	if err := r.DeleteForUnit(ctx, unitID); err != nil {
		return err
	}
	if len(list) == 0 {
		return nil
	}
	for i := range list {
		list[i].UnitID = unitID
	}
	return r.db.WithContext(ctx).Create(&list).Error
}

func (r *RecommendedCategoryRepository) DeleteForUnit(ctx context.Context, unitID string) error {
	return r.db.WithContext(ctx).Where("unit_id = ?", unitID).Delete(&categoryDomain.RecommendedCategory{}).Error
}

func (r *RecommendedCategoryRepository) DeleteByCategory(ctx context.Context, key categoryDomain.Key) error {
	return r.db.WithContext(ctx).
		Where("indicator_index = ? AND category_name = ?", key.IndicatorIndex, key.Name).
		Delete(&categoryDomain.RecommendedCategory{}).Error
}
