package feedback

import "greentracker-backend/internal/usecase/apperr"

var (
	ErrNotFound         = apperr.NotFound("feedback not found")
	ErrAlreadyExists    = apperr.Conflict("feedback already given for this evidence")
	ErrEvidenceNotFound = apperr.NotFound("evidence not found")
	ErrInvalidValue     = apperr.Invalid("unknown feedback value")
)
