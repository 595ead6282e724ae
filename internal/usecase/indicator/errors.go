package indicator

import "greentracker-backend/internal/usecase/apperr"

var (
	ErrNotFound      = apperr.NotFound("indicator not found")
	ErrAlreadyExists = apperr.Conflict("indicator already exists")
	ErrInUse         = apperr.Conflict("indicator has activities filed under it")
	ErrHasChildren   = apperr.Conflict("indicator index cannot change while it has categories or criteria")
)
