package mysql

import (
	"errors"

	"greentracker-backend/internal/domain/activity"
	"greentracker-backend/internal/domain/category"
	"greentracker-backend/internal/domain/criterion"
	"greentracker-backend/internal/domain/evidence"
	"greentracker-backend/internal/domain/feedback"
	"greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/domain/page"
	"greentracker-backend/internal/domain/uploadperiod"
	"greentracker-backend/internal/domain/user"

	"gorm.io/gorm"
)

// Models lists every table owned by the repositories, in dependency order.
func Models() []any {
	return []any{
		&user.User{}, &user.Admin{}, &user.Unit{},
		&indicator.Indicator{}, &category.Category{}, &criterion.Criterion{},
		&category.RecommendedCategory{},
		&activity.Activity{}, &evidence.Evidence{}, &evidence.ImageEvidence{},
		&feedback.EvidenceFeedback{},
		&uploadperiod.UploadPeriod{},
	}
}

// translate maps gorm outcomes onto a domain's repository errors.
// A nil exists leaves duplicate-key errors untouched.
func translate(err, notFound, exists error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case exists != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return exists
	}
	return err
}

// affected turns a zero-row mutation into notFound.
func affected(res *gorm.DB, notFound, exists error) error {
	if res.Error != nil {
		return translate(res.Error, notFound, exists)
	}
	if res.RowsAffected == 0 {
		return notFound
	}
	return nil
}

// findPage runs the count and the page query with the same predicate on the same handle.
func findPage[T any](q *gorm.DB, p page.Pagination, order string) (page.Page[T], error) {
	p = p.Normalize()

	var total int64
	if err := q.Session(&gorm.Session{}).Model(new(T)).Count(&total).Error; err != nil {
		return page.Page[T]{}, err
	}
	var items []T
	if err := q.Session(&gorm.Session{}).
		Order(order).
		Offset(p.Offset()).
		Limit(p.ItemsPerPage).
		Find(&items).Error; err != nil {
		return page.Page[T]{}, err
	}
	return page.New(items, p, total), nil
}
