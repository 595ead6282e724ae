package auth

import (
	domainUser "greentracker-backend/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

type LoginInput struct {
	ID       string `json:"id" validate:"required,max=36"`
	Password string `json:"password" validate:"required,max=72"`
}

type UserDTO struct {
	ID    string          `json:"id"`
	Role  domainUser.Role `json:"role"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
}

type LoginDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// Claims carries only the user id; the role is re-read from the store on every request.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}
