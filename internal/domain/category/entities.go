package category

import "errors"

var (
	ErrNotFound      = errors.New("category not found")
	ErrAlreadyExists = errors.New("category already exists")
)

type Key struct {
	IndicatorIndex int
	Name           string
}

// Table: categories. Belongs to one indicator.
type Category struct {
	IndicatorIndex int    `gorm:"column:indicator_index;primaryKey;autoIncrement:false"`
	Name           string `gorm:"column:name;size:255;primaryKey"`
	HelpText       string `gorm:"column:help_text;type:text"`
}

func (Category) TableName() string { return "categories" }

func (c Category) Key() Key { return Key{IndicatorIndex: c.IndicatorIndex, Name: c.Name} }

// Table: recommended_categories. Categories suggested to a unit.
type RecommendedCategory struct {
	IndicatorIndex int    `gorm:"column:indicator_index;primaryKey;autoIncrement:false"`
	CategoryName   string `gorm:"column:category_name;size:255;primaryKey"`
	UnitID         string `gorm:"column:unit_id;type:char(36);primaryKey;index"`
}

func (RecommendedCategory) TableName() string { return "recommended_categories" }
