package criterion

import "greentracker-backend/internal/usecase/apperr"

var (
	ErrNotFound          = apperr.NotFound("criterion not found")
	ErrAlreadyExists     = apperr.Conflict("criterion already exists")
	ErrIndicatorNotFound = apperr.NotFound("indicator not found")
	ErrCategoryNotFound  = apperr.NotFound("category not found")
)
