package criterion

import domainCriterion "greentracker-backend/internal/domain/criterion"

type Input struct {
	Subindex     int     `json:"subindex" validate:"required,min=1"`
	EnglishName  string  `json:"englishName" validate:"required,max=255"`
	SpanishAlias string  `json:"spanishAlias" validate:"required,max=255"`
	CategoryName *string `json:"categoryName" validate:"omitempty,max=255"`
}

type DTO struct {
	IndicatorIndex int     `json:"indicatorIndex"`
	Subindex       int     `json:"subindex"`
	EnglishName    string  `json:"englishName"`
	SpanishAlias   string  `json:"spanishAlias"`
	CategoryName   *string `json:"categoryName"`
}

func ToDTO(c domainCriterion.Criterion) DTO {
	return DTO{
		IndicatorIndex: c.IndicatorIndex,
		Subindex:       c.Subindex,
		EnglishName:    c.EnglishName,
		SpanishAlias:   c.SpanishAlias,
		CategoryName:   c.CategoryName,
	}
}
