package activity

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("activity not found")

// Table: activities. Filed under (indicator, category) and owned by a unit.
type Activity struct {
	ID              string    `gorm:"column:id;type:char(36);primaryKey"`
	Name            string    `gorm:"column:name;size:255;not null"`
	Summary         string    `gorm:"column:summary;type:text"`
	IndicatorIndex  int       `gorm:"column:indicator_index;not null;index:idx_activities_category"`
	CategoryName    string    `gorm:"column:category_name;size:255;not null;index:idx_activities_category"`
	UnitID          string    `gorm:"column:unit_id;type:char(36);not null;index"`
	UploadTimestamp time.Time `gorm:"column:upload_timestamp;autoCreateTime;index"`
}

func (Activity) TableName() string { return "activities" }

// Filter fields left at their zero value do not constrain the result.
type Filter struct {
	UnitID         string
	IndicatorIndex *int
	CategoryName   string
	// UploadedFrom / UploadedTo bound upload_timestamp inclusively.
	UploadedFrom *time.Time
	UploadedTo   *time.Time
}
