package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

type gormOTPStore struct {
	db *gorm.DB
}

func NewOTPStore(db *gorm.DB) OTPStore {
	return &gormOTPStore{db: db}
}

func (s *gormOTPStore) Replace(ctx context.Context, code *models.OneTimeCode) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.OneTimeCode{}).
			Where("subject = ? AND consumed = false", code.Subject).
			Update("consumed", true).Error
		if err != nil {
			return err
		}
		return tx.Create(code).Error
	})
	if err != nil {
		return fmt.Errorf("replace one-time code: %w", err)
	}
	return nil
}

func (s *gormOTPStore) Consume(ctx context.Context, subject, codeHash string, now time.Time) error {
	res := s.db.WithContext(ctx).
		Model(&models.OneTimeCode{}).
		Where("subject = ? AND code_hash = ? AND consumed = false AND expires_at > ?",
			subject, codeHash, now).
		Update("consumed", true)
	if res.Error != nil {
		return fmt.Errorf("consume one-time code: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormOTPStore) Peek(ctx context.Context, subject, codeHash string, now time.Time) error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.OneTimeCode{}).
		Where("subject = ? AND code_hash = ? AND consumed = false AND expires_at > ?",
			subject, codeHash, now).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("peek one-time code: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
