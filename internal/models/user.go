package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the role hierarchy. Every non-superadmin user is
// created by a user one level above it (CreatedByID); the superadmin is
// seeded from configuration and has no creator.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	FirstName    string     `gorm:"not null;size:255" json:"first_name"`
	LastName     string     `gorm:"not null;size:255" json:"last_name"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         Role       `gorm:"size:20;not null;index" json:"role"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	CreatedByID  *uuid.UUID `gorm:"type:uuid;index" json:"created_by_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
