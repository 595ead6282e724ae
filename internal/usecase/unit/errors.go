package unit

import (
	"fmt"

	"greentracker-backend/internal/usecase/apperr"
)

var (
	ErrNotFound         = apperr.NotFound("unit not found")
	ErrAlreadyExists    = apperr.Conflict("unit already exists")
	ErrPasswordRequired = apperr.Invalid("password is required")
	ErrHasActivities    = apperr.Conflict("unit has activities")
)

// CategoryNotFoundError names a recommended category that does not exist.
type CategoryNotFoundError struct {
	IndicatorIndex int
	CategoryName   string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category %q of indicator %d not found", e.CategoryName, e.IndicatorIndex)
}

func (e *CategoryNotFoundError) Kind() apperr.Kind { return apperr.KindNotFound }
