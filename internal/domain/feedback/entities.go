package feedback

import "errors"

var (
	ErrNotFound      = errors.New("feedback not found")
	ErrAlreadyExists = errors.New("feedback already exists")
)

// Value is the review outcome an admin attaches to an evidence item.
type Value string

const (
	Approved      Value = "approved"
	Incomplete    Value = "incomplete"
	Irrelevant    Value = "irrelevant"
	Illegible     Value = "illegible"
	WrongCategory Value = "wrong_category"
)

var Values = []Value{Approved, Incomplete, Irrelevant, Illegible, WrongCategory}

func (v Value) Valid() bool {
	for _, known := range Values {
		if v == known {
			return true
		}
	}
	return false
}

type Key struct {
	ActivityID     string
	EvidenceNumber int
	Feedback       Value
}

// Table: evidence_feedback.
type EvidenceFeedback struct {
	ActivityID     string `gorm:"column:activity_id;type:char(36);primaryKey"`
	EvidenceNumber int    `gorm:"column:evidence_number;primaryKey;autoIncrement:false"`
	Feedback       Value  `gorm:"column:feedback;size:32;primaryKey"`
	AdminID        string `gorm:"column:admin_id;type:char(36);not null;index"`
}

func (EvidenceFeedback) TableName() string { return "evidence_feedback" }

func (f EvidenceFeedback) Key() Key {
	return Key{ActivityID: f.ActivityID, EvidenceNumber: f.EvidenceNumber, Feedback: f.Feedback}
}

// Filter: zero EvidenceNumber lists the whole activity.
type Filter struct {
	ActivityID     string
	EvidenceNumber int
}
