package unit

import (
	domainCategory "greentracker-backend/internal/domain/category"
	domainUser "greentracker-backend/internal/domain/user"
)

// Input.Password may be empty on Replace to keep the current one.
type Input struct {
	Name                  string        `json:"name" validate:"required,max=255"`
	Email                 string        `json:"email" validate:"omitempty,email,max=255"`
	Password              string        `json:"password" validate:"omitempty,min=8,max=72"`
	RecommendedCategories []CategoryRef `json:"recommendedCategories" validate:"dive"`
}

// MeInput is what a unit may change about itself.
type MeInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=8,max=72"`
}

type CategoryRef struct {
	IndicatorIndex int    `json:"indicatorIndex" validate:"required,min=1"`
	CategoryName   string `json:"categoryName" validate:"required,max=255"`
}

type DTO struct {
	ID                    string        `json:"id"`
	Name                  string        `json:"name"`
	Email                 string        `json:"email"`
	RecommendedCategories []CategoryRef `json:"recommendedCategories"`
}

func toDTO(u domainUser.Unit, recs []domainCategory.RecommendedCategory) DTO {
	refs := make([]CategoryRef, 0, len(recs))
	for _, rc := range recs {
		refs = append(refs, CategoryRef{IndicatorIndex: rc.IndicatorIndex, CategoryName: rc.CategoryName})
	}
	return DTO{ID: u.ID, Name: u.Name, Email: u.Email, RecommendedCategories: refs}
}
