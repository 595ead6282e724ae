package indicator

import "errors"

var (
	ErrNotFound      = errors.New("indicator not found")
	ErrAlreadyExists = errors.New("indicator already exists")
)

// Table: indicators. Top level of the GreenMetric classification.
type Indicator struct {
	Index        int    `gorm:"column:index;primaryKey;autoIncrement:false"`
	EnglishName  string `gorm:"column:english_name;size:255;not null"`
	SpanishAlias string `gorm:"column:spanish_alias;size:255;not null"`
}

func (Indicator) TableName() string { return "indicators" }
