package report

import "greentracker-backend/internal/usecase/apperr"

var (
	ErrInvalidCriteria   = apperr.Invalid("criteria must be <indicator>.<subindex>")
	ErrCriterionNotFound = apperr.NotFound("criterion not found")
)
