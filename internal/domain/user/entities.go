package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
)

type Role string

const (
	RoleUnit       Role = "unit"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUnit, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsStaff reports whether the role reviews submissions (admin or superadmin).
func (r Role) IsStaff() bool { return r == RoleAdmin || r == RoleSuperadmin }

// Table: users. Base identity for every human actor.
type User struct {
	ID           string    `gorm:"column:id;type:char(36);primaryKey"`
	PasswordHash string    `gorm:"column:password_hash;size:72;not null"`
	Role         Role      `gorm:"column:role;size:16;not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string { return "users" }

// Table: admins. Shares its primary key with users (admin and superadmin roles).
type Admin struct {
	ID    string `gorm:"column:id;type:char(36);primaryKey"`
	Name  string `gorm:"column:name;size:255;not null"`
	Email string `gorm:"column:email;size:255"`
}

func (Admin) TableName() string { return "admins" }

// Table: units. Shares its primary key with users (unit role).
type Unit struct {
	ID    string `gorm:"column:id;type:char(36);primaryKey"`
	Name  string `gorm:"column:name;size:255;not null"`
	Email string `gorm:"column:email;size:255"`
}

func (Unit) TableName() string { return "units" }

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   string
	Role Role
}
