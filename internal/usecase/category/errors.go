package category

import (
	"fmt"

	"greentracker-backend/internal/usecase/apperr"
)

var (
	ErrNotFound          = apperr.NotFound("category not found")
	ErrAlreadyExists     = apperr.Conflict("category already exists")
	ErrIndicatorNotFound = apperr.NotFound("indicator not found")
	ErrInUse             = apperr.Conflict("category has activities filed under it")
)

// CriterionNotFoundError names a subindex that does not exist under the category's indicator.
type CriterionNotFoundError struct {
	Subindex int
}

func (e *CriterionNotFoundError) Error() string {
	return fmt.Sprintf("criterion with subindex %d not found", e.Subindex)
}

func (e *CriterionNotFoundError) Kind() apperr.Kind { return apperr.KindNotFound }
