package mysql

import (
	"context"

	uploadperiodDomain "greentracker-backend/internal/domain/uploadperiod"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UploadPeriodRepository struct{ db *gorm.DB }

func NewUploadPeriodRepository(db *gorm.DB) *UploadPeriodRepository {
	return &UploadPeriodRepository{db: db}
}

func (r *UploadPeriodRepository) FindOne(ctx context.Context, id int) (*uploadperiodDomain.UploadPeriod, error) {
	var out uploadperiodDomain.UploadPeriod
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, uploadperiodDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *UploadPeriodRepository) Save(ctx context.Context, p *uploadperiodDomain.UploadPeriod) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}
