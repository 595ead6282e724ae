package admin

import domainUser "greentracker-backend/internal/domain/user"

// Input.Password may be empty on Replace to keep the current one.
type Input struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=8,max=72"`
}

// Seed describes the superadmin account kept in sync at startup.
type Seed struct {
	ID       string
	Password string
	Name     string
	Email    string
}

type DTO struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  domainUser.Role `json:"role"`
}

func toDTO(a domainUser.Admin, role domainUser.Role) DTO {
	return DTO{ID: a.ID, Name: a.Name, Email: a.Email, Role: role}
}
