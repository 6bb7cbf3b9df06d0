package models

import (
	"gorm.io/gorm"
)

type Role string

const (
	RoleDonor     Role = "donor"
	RoleNGO       Role = "ngo"
	RoleVolunteer Role = "volunteer"
)

// Account is the login identity. Role-specific data lives in the
// profile row keyed by the account ID.
type Account struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"not null;index" json:"role"`
}
