package auth

import "greentracker-backend/internal/usecase/apperr"

var (
	ErrInvalidCredentials = apperr.Unauthenticated("invalid credentials")
	ErrInvalidToken       = apperr.Unauthenticated("invalid or expired token")
)
