package mysql

import (
	"context"

	feedbackDomain "greentracker-backend/internal/domain/feedback"
	"greentracker-backend/internal/domain/page"

	"gorm.io/gorm"
)

type FeedbackRepository struct{ db *gorm.DB }

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository { return &FeedbackRepository{db: db} }

func (r *FeedbackRepository) byKey(ctx context.Context, key feedbackDomain.Key) *gorm.DB {
	return r.db.WithContext(ctx).Where("activity_id = ? AND evidence_number = ? AND feedback = ?",
		key.ActivityID, key.EvidenceNumber, key.Feedback)
}

func (r *FeedbackRepository) filtered(ctx context.Context, f feedbackDomain.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Where("activity_id = ?", f.ActivityID)
	if f.EvidenceNumber != 0 {
		q = q.Where("evidence_number = ?", f.EvidenceNumber)
	}
	return q
}

func (r *FeedbackRepository) Create(ctx context.Context, f *feedbackDomain.EvidenceFeedback) error {
	err := r.db.WithContext(ctx).Create(f).Error
	return translate(err, feedbackDomain.ErrNotFound, feedbackDomain.ErrAlreadyExists)
}

func (r *FeedbackRepository) FindOne(ctx context.Context, key feedbackDomain.Key) (*feedbackDomain.EvidenceFeedback, error) {
	var out feedbackDomain.EvidenceFeedback
	if err := r.byKey(ctx, key).First(&out).Error; err != nil {
		return nil, translate(err, feedbackDomain.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *FeedbackRepository) FindPage(ctx context.Context, p page.Pagination, f feedbackDomain.Filter) (page.Page[feedbackDomain.EvidenceFeedback], error) {
	return findPage[feedbackDomain.EvidenceFeedback](r.filtered(ctx, f), p, "evidence_number, feedback")
}

func (r *FeedbackRepository) FindAll(ctx context.Context, f feedbackDomain.Filter) ([]feedbackDomain.EvidenceFeedback, error) {
	var out []feedbackDomain.EvidenceFeedback
	err := r.filtered(ctx, f).Order("evidence_number, feedback").Find(&out).Error
	return out, err
}

func (r *FeedbackRepository) Replace(ctx context.Context, key feedbackDomain.Key, f *feedbackDomain.EvidenceFeedback) error {
	res := r.byKey(ctx, key).Model(&feedbackDomain.EvidenceFeedback{}).Updates(map[string]any{
		"feedback": f.Feedback,
		"admin_id": f.AdminID,
	})
	return affected(res, feedbackDomain.ErrNotFound, feedbackDomain.ErrAlreadyExists)
}

func (r *FeedbackRepository) Delete(ctx context.Context, key feedbackDomain.Key) error {
	res := r.byKey(ctx, key).Delete(&feedbackDomain.EvidenceFeedback{})
	return affected(res, feedbackDomain.ErrNotFound, nil)
}

func (r *FeedbackRepository) DeleteByEvidence(ctx context.Context, activityID string, evidenceNumber int) error {
	return r.db.WithContext(ctx).
		Where("activity_id = ? AND evidence_number = ?", activityID, evidenceNumber).
		Delete(&feedbackDomain.EvidenceFeedback{}).Error
}

func (r *FeedbackRepository) DeleteByActivity(ctx context.Context, activityID string) error {
	return r.db.WithContext(ctx).Where("activity_id = ?", activityID).Delete(&feedbackDomain.EvidenceFeedback{}).Error
}
