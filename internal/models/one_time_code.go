package models

import (
	"time"

	"github.com/google/uuid"
)

// OneTimeCode is a short-lived verification code tied to an email subject.
// Only the SHA-256 hash of the code is stored. A code is usable exactly
// once; issuing a new code for a subject consumes all prior ones.
type OneTimeCode struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Subject   string    `gorm:"not null;size:255;index" json:"subject"`
	CodeHash  string    `gorm:"not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Consumed  bool      `gorm:"default:false" json:"consumed"`
	CreatedAt time.Time `json:"created_at"`
}
