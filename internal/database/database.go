package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gracechapel/pastor-mobile-api/internal/config"
	"github.com/gracechapel/pastor-mobile-api/internal/models"
	"github.com/gracechapel/pastor-mobile-api/internal/password"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Unique-constraint violations become gorm.ErrDuplicatedKey so the
		// store can report conflicts without a check-then-insert race.
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for every model.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.OneTimeCode{},
		&models.Series{},
		&models.SystemLog{},
	)
}

// SeedSuperadmin guarantees the configured superadmin account exists. The
// identity comes from validated configuration, never from compiled-in
// literals, and the password is stored hashed like any other account's.
func SeedSuperadmin(ctx context.Context, cfg *config.Config) error {
	email := strings.ToLower(strings.TrimSpace(cfg.SuperadminEmail))

	var existing models.User
	err := DB.WithContext(ctx).
		First(&existing, "email = ? AND role = ?", email, models.RoleSuperadmin).Error
	if err == nil {
		slog.Info("superadmin already present", "email", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up superadmin: %w", err)
	}

	hash, err := password.Hash(cfg.SuperadminPassword)
	if err != nil {
		return err
	}

	superadmin := models.User{
		Email:        email,
		FirstName:    cfg.SuperadminUsername,
		LastName:     "superadmin",
		PasswordHash: hash,
		Role:         models.RoleSuperadmin,
		IsActive:     true,
	}
	if err := DB.WithContext(ctx).Create(&superadmin).Error; err != nil {
		return fmt.Errorf("failed to seed superadmin: %w", err)
	}

	slog.Info("superadmin seeded", "email", email)
	return nil
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
