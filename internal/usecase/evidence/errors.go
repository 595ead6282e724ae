package evidence

import "greentracker-backend/internal/usecase/apperr"

var (
	ErrNotFound        = apperr.NotFound("evidence not found")
	ErrNumberTaken     = apperr.Conflict("evidence number was taken by a concurrent upload, retry")
	ErrTypeMismatch    = apperr.Invalid("evidence is of a different type")
	ErrUnsupportedType = apperr.Invalid("evidence type does not carry a file")
	ErrMissingFile     = apperr.Invalid("a file is required")
)
