package activity

import (
	"time"

	domainActivity "greentracker-backend/internal/domain/activity"
	"greentracker-backend/internal/usecase/evidence"
)

type Input struct {
	Name           string `json:"name" validate:"required,max=255"`
	Summary        string `json:"summary" validate:"max=4000"`
	IndicatorIndex int    `json:"indicatorIndex" validate:"required,min=1"`
	CategoryName   string `json:"categoryName" validate:"required,max=255"`
}

// Query filters a listing. From / To bound the upload timestamp inclusively.
type Query struct {
	UnitID         string
	IndicatorIndex *int
	CategoryName   string
	From           *time.Time
	To             *time.Time
}

type DTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Summary         string    `json:"summary"`
	IndicatorIndex  int       `json:"indicatorIndex"`
	CategoryName    string    `json:"categoryName"`
	UnitID          string    `json:"unitId"`
	UploadTimestamp time.Time `json:"uploadTimestamp"`
}

// DetailDTO is an activity with every evidence item and its feedback.
type DetailDTO struct {
	DTO
	Evidence []evidence.DTO `json:"evidence"`
}

func ToDTO(a domainActivity.Activity) DTO {
	return DTO{
		ID:              a.ID,
		Name:            a.Name,
		Summary:         a.Summary,
		IndicatorIndex:  a.IndicatorIndex,
		CategoryName:    a.CategoryName,
		UnitID:          a.UnitID,
		UploadTimestamp: a.UploadTimestamp,
	}
}

func (q Query) filter() domainActivity.Filter {
	return domainActivity.Filter{
		UnitID:         q.UnitID,
		IndicatorIndex: q.IndicatorIndex,
		CategoryName:   q.CategoryName,
		UploadedFrom:   q.From,
		UploadedTo:     q.To,
	}
}
