package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

type gormSeriesStore struct {
	db *gorm.DB
}

func NewSeriesStore(db *gorm.DB) SeriesStore {
	return &gormSeriesStore{db: db}
}

func (s *gormSeriesStore) Create(ctx context.Context, series *models.Series) error {
	if err := s.db.WithContext(ctx).Create(series).Error; err != nil {
		return fmt.Errorf("create series: %w", err)
	}
	return nil
}

func (s *gormSeriesStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Series, error) {
	var series models.Series
	if err := s.db.WithContext(ctx).First(&series, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &series, nil
}

func (s *gormSeriesStore) List(ctx context.Context) ([]models.Series, error) {
	var list []models.Series
	err := s.db.WithContext(ctx).Order("from_date DESC").Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return list, nil
}

func (s *gormSeriesStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Series{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count series: %w", err)
	}
	return count, nil
}

func (s *gormSeriesStore) Update(ctx context.Context, series *models.Series) error {
	if err := s.db.WithContext(ctx).Save(series).Error; err != nil {
		return fmt.Errorf("update series: %w", err)
	}
	return nil
}

func (s *gormSeriesStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Series{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete series: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
