package models

import (
	"time"

	"github.com/google/uuid"
)

// Series is a dated sermon series. Dates are day-granular (the wire format
// is YYYY-MM-DD) and FromDate must not be after ToDate.
type Series struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string     `gorm:"not null;size:255" json:"title"`
	FromDate    time.Time  `gorm:"type:date;not null;index" json:"from_date"`
	ToDate      time.Time  `gorm:"type:date;not null;index" json:"to_date"`
	Passage     string     `gorm:"not null;size:255" json:"passage"`
	Description string     `gorm:"type:text;not null" json:"description"`
	CreatedByID *uuid.UUID `gorm:"type:uuid;index" json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
