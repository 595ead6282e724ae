package category

import (
	domainCategory "greentracker-backend/internal/domain/category"
	"greentracker-backend/internal/usecase/criterion"
)

// Input.Criteria lists the subindexes (under the same indicator) assigned to the category.
type Input struct {
	Name     string `json:"name" validate:"required,max=255,nopathsep"`
	HelpText string `json:"helpText" validate:"max=4000"`
	Criteria []int  `json:"criteria" validate:"dive,min=1"`
}

type DTO struct {
	IndicatorIndex int             `json:"indicatorIndex"`
	Name           string          `json:"name"`
	HelpText       string          `json:"helpText"`
	Criteria       []criterion.DTO `json:"criteria"`
}

func toDTO(c domainCategory.Category, criteria []criterion.DTO) DTO {
	if criteria == nil {
		criteria = []criterion.DTO{}
	}
	return DTO{IndicatorIndex: c.IndicatorIndex, Name: c.Name, HelpText: c.HelpText, Criteria: criteria}
}
