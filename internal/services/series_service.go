package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gracechapel/pastor-mobile-api/internal/dto"
	"github.com/gracechapel/pastor-mobile-api/internal/models"
	"github.com/gracechapel/pastor-mobile-api/internal/store"
)

// SeriesService owns sermon series content. Write access is enforced at the
// route layer (admins only); reads are open to every authenticated role.
type SeriesService struct {
	series store.SeriesStore
}

func NewSeriesService(series store.SeriesStore) *SeriesService {
	return &SeriesService{series: series}
}

func (s *SeriesService) Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateSeriesRequest) (*models.Series, error) {
	from, to, err := parseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	series := &models.Series{
		Title:       req.Title,
		FromDate:    from,
		ToDate:      to,
		Passage:     req.Passage,
		Description: req.Description,
		CreatedByID: &callerID,
	}
	if err := s.series.Create(ctx, series); err != nil {
		return nil, err
	}
	return series, nil
}

func (s *SeriesService) Get(ctx context.Context, id uuid.UUID) (*models.Series, error) {
	series, err := s.series.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return series, nil
}

func (s *SeriesService) List(ctx context.Context) ([]models.Series, error) {
	return s.series.List(ctx)
}

func (s *SeriesService) Count(ctx context.Context) (int64, error) {
	return s.series.Count(ctx)
}

func (s *SeriesService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSeriesRequest) (*models.Series, error) {
	series, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		series.Title = *req.Title
	}
	if req.FromDate != nil {
		from, err := parseDate(*req.FromDate, "from_date")
		if err != nil {
			return nil, err
		}
		series.FromDate = from
	}
	if req.ToDate != nil {
		to, err := parseDate(*req.ToDate, "to_date")
		if err != nil {
			return nil, err
		}
		series.ToDate = to
	}
	if req.Passage != nil {
		series.Passage = *req.Passage
	}
	if req.Description != nil {
		series.Description = *req.Description
	}

	if series.ToDate.Before(series.FromDate) {
		return nil, fmt.Errorf("%w: to_date must not precede from_date", ErrValidation)
	}

	if err := s.series.Update(ctx, series); err != nil {
		return nil, err
	}
	return series, nil
}

func (s *SeriesService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.series.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func parseDateRange(fromStr, toStr string) (from, to time.Time, err error) {
	if from, err = parseDate(fromStr, "from_date"); err != nil {
		return
	}
	if to, err = parseDate(toStr, "to_date"); err != nil {
		return
	}
	if to.Before(from) {
		err = fmt.Errorf("%w: to_date must not precede from_date", ErrValidation)
	}
	return
}

func parseDate(s, field string) (time.Time, error) {
	t, err := time.Parse(dto.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be formatted as YYYY-MM-DD", ErrValidation, field)
	}
	return t, nil
}
