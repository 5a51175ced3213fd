package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

// DateFormat is the wire format for series dates.
const DateFormat = "2006-01-02"

type CreateSeriesRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	FromDate    string `json:"from_date" validate:"required"`
	ToDate      string `json:"to_date" validate:"required"`
	Passage     string `json:"passage" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

type UpdateSeriesRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	FromDate    *string `json:"from_date"`
	ToDate      *string `json:"to_date"`
	Passage     *string `json:"passage" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

type SeriesResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	FromDate    string     `json:"from_date"`
	ToDate      string     `json:"to_date"`
	Passage     string     `json:"passage"`
	Description string     `json:"description"`
	CreatedByID *uuid.UUID `json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewSeriesResponse(s *models.Series) SeriesResponse {
	return SeriesResponse{
		ID:          s.ID,
		Title:       s.Title,
		FromDate:    s.FromDate.Format(DateFormat),
		ToDate:      s.ToDate.Format(DateFormat),
		Passage:     s.Passage,
		Description: s.Description,
		CreatedByID: s.CreatedByID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func NewSeriesListResponse(list []models.Series) []SeriesResponse {
	out := make([]SeriesResponse, 0, len(list))
	for i := range list {
		out = append(out, NewSeriesResponse(&list[i]))
	}
	return out
}

type SeriesCountResponse struct {
	Total int64 `json:"total"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
