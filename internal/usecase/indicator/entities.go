package indicator

import (
	domainIndicator "greentracker-backend/internal/domain/indicator"
	"greentracker-backend/internal/usecase/category"
)

type Input struct {
	Index        int    `json:"index" validate:"required,min=1"`
	EnglishName  string `json:"englishName" validate:"required,max=255"`
	SpanishAlias string `json:"spanishAlias" validate:"required,max=255"`
}

type DTO struct {
	Index        int            `json:"index"`
	EnglishName  string         `json:"englishName"`
	SpanishAlias string         `json:"spanishAlias"`
	Categories   []category.DTO `json:"categories"`
}

func toDTO(i domainIndicator.Indicator, cats []category.DTO) DTO {
	if cats == nil {
		cats = []category.DTO{}
	}
	return DTO{Index: i.Index, EnglishName: i.EnglishName, SpanishAlias: i.SpanishAlias, Categories: cats}
}
