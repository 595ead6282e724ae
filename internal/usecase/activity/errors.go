package activity

import "greentracker-backend/internal/usecase/apperr"

var (
	ErrCategoryNotFound = apperr.NotFound("category not found")
	ErrInvalidRange     = apperr.Invalid("from must not be after to")
)
