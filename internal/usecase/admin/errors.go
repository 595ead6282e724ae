package admin

import "greentracker-backend/internal/usecase/apperr"

var (
	ErrNotFound         = apperr.NotFound("admin not found")
	ErrAlreadyExists    = apperr.Conflict("admin already exists")
	ErrPasswordRequired = apperr.Invalid("password is required")
	ErrProtected        = apperr.Forbidden("the superadmin cannot be deleted")
	ErrStaffOnly        = apperr.Forbidden("only admins have an admin profile")
)
