// Package store is the persistence boundary. Services depend on the narrow
// interfaces declared here; the GORM implementations live alongside them.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail surfaces the unique constraint on users.email.
	// Uniqueness is enforced by the database, not by check-then-insert.
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SeriesStore interface {
	Create(ctx context.Context, series *models.Series) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Series, error)
	List(ctx context.Context) ([]models.Series, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, series *models.Series) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OTPStore interface {
	// Replace atomically consumes every unconsumed code for the subject and
	// inserts the new one, so two valid codes never coexist.
	Replace(ctx context.Context, code *models.OneTimeCode) error
	// Consume marks the unconsumed, unexpired code matching subject+hash as
	// consumed. Returns ErrNotFound when no such code exists.
	Consume(ctx context.Context, subject, codeHash string, now time.Time) error
	// Peek reports whether such a code exists without consuming it.
	Peek(ctx context.Context, subject, codeHash string, now time.Time) error
}

type RefreshTokenStore interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateEmail
	}
	return err
}
