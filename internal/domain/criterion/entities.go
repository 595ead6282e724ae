package criterion

import "errors"

var (
	ErrNotFound      = errors.New("criterion not found")
	ErrAlreadyExists = errors.New("criterion already exists")
)

type Key struct {
	IndicatorIndex int
	Subindex       int
}

// Table: criteria. CategoryName, when set, names a category of the same indicator.
type Criterion struct {
	IndicatorIndex int     `gorm:"column:indicator_index;primaryKey;autoIncrement:false"`
	Subindex       int     `gorm:"column:subindex;primaryKey;autoIncrement:false"`
	EnglishName    string  `gorm:"column:english_name;size:255;not null"`
	SpanishAlias   string  `gorm:"column:spanish_alias;size:255;not null"`
	CategoryName   *string `gorm:"column:category_name;size:255;index"`
}

func (Criterion) TableName() string { return "criteria" }

func (c Criterion) Key() Key { return Key{IndicatorIndex: c.IndicatorIndex, Subindex: c.Subindex} }

// Filter narrows criteria of one indicator. A nil CategoryName matches every criterion.
type Filter struct {
	IndicatorIndex int
	CategoryName   *string
}
