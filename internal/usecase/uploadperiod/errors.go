package uploadperiod

import "greentracker-backend/internal/usecase/apperr"

var (
	ErrNotFound     = apperr.NotFound("upload period is not configured")
	ErrInvalidRange = apperr.Invalid("start timestamp must precede end timestamp")
	ErrClosed       = apperr.Forbidden("submissions are only accepted during the upload period")
)
