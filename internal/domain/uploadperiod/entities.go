package uploadperiod

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("upload period not found")

// Table: upload_periods. A single row (the configured id) is used.
type UploadPeriod struct {
	ID             int       `gorm:"column:id;primaryKey;autoIncrement:false"`
	StartTimestamp time.Time `gorm:"column:start_timestamp;not null"`
	EndTimestamp   time.Time `gorm:"column:end_timestamp;not null"`
}

func (UploadPeriod) TableName() string { return "upload_periods" }

// Contains reports whether t falls inside [start, end].
func (p UploadPeriod) Contains(t time.Time) bool {
	return !t.Before(p.StartTimestamp) && !t.After(p.EndTimestamp)
}
