package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gracechapel/pastor-mobile-api/internal/config"
	"github.com/gracechapel/pastor-mobile-api/internal/dto"
	"github.com/gracechapel/pastor-mobile-api/internal/mailer"
	"github.com/gracechapel/pastor-mobile-api/internal/models"
	"github.com/gracechapel/pastor-mobile-api/internal/otp"
	"github.com/gracechapel/pastor-mobile-api/internal/password"
	"github.com/gracechapel/pastor-mobile-api/internal/store"
	"github.com/gracechapel/pastor-mobile-api/internal/token"
)

var (
	// ErrInvalidCredentials covers every login failure: unknown email, wrong
	// password, inactive account. The caller never learns which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
	// ErrInvalidCode covers OTP mismatch, expiry, and reuse alike.
	ErrInvalidCode  = errors.New("invalid or expired code")
	ErrWeakPassword = fmt.Errorf("%w: password must be at least %d characters with upper, lower, and digit",
		ErrValidation, password.MinLength)
)

type AuthService struct {
	users   store.UserStore
	refresh store.RefreshTokenStore
	tokens  *token.Maker
	otps    *otp.Service
	mail    mailer.Mailer

	superadminEmail string
	refreshTTL      time.Duration
}

func NewAuthService(
	users store.UserStore,
	refresh store.RefreshTokenStore,
	tokens *token.Maker,
	otps *otp.Service,
	mail mailer.Mailer,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		users:           users,
		refresh:         refresh,
		tokens:          tokens,
		otps:            otps,
		mail:            mail,
		superadminEmail: strings.ToLower(strings.TrimSpace(cfg.SuperadminEmail)),
		refreshTTL:      cfg.RefreshTokenExpiry,
	}
}

// Login authenticates any non-superadmin role. Failures are uniform: the
// response does not reveal whether the email exists, the password was wrong,
// or the account is deactivated.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Role == models.RoleSuperadmin {
		// The superadmin signs in through its dedicated endpoint.
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive || !password.Compare(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// SuperadminLogin only accepts the identity configured at startup.
func (s *AuthService) SuperadminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.ToLower(strings.TrimSpace(req.Email)) != s.superadminEmail {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, s.superadminEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Role != models.RoleSuperadmin || !user.IsActive ||
		!password.Compare(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates the presented refresh token and issues a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.refresh.GetByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.refresh.Revoke(ctx, stored.ID)
		return nil, ErrInvalidRefresh
	}
	if err := s.refresh.Revoke(ctx, stored.ID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil || !user.IsActive {
		return nil, ErrInvalidRefresh
	}

	return s.issueTokens(ctx, user)
}

// ForgotPassword issues an OTP and mails it. The answer is identical whether
// or not the account exists, so the endpoint cannot be used for enumeration.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || !user.IsActive || user.Role == models.RoleSuperadmin {
		return
	}

	code, err := s.otps.Issue(ctx, user.Email)
	if err != nil {
		slog.Error("failed to issue one-time code", "error", err, "user_id", user.ID.String())
		return
	}
	if err := s.mail.SendOTP(ctx, user.Email, code, s.otps.TTL()); err != nil {
		slog.Error("failed to send one-time code", "error", err, "user_id", user.ID.String())
	}
}

// VerifyOTP checks the code without consuming it, so the client can gate its
// reset form and still present the same code to ResetPassword.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	if !s.otps.Check(ctx, email, code) {
		return ErrInvalidCode
	}
	return nil
}

// ResetPassword consumes the OTP and replaces the password. All refresh
// tokens for the account are revoked so stolen sessions die with the old
// password.
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if !password.MeetsPolicy(req.NewPassword) {
		return ErrWeakPassword
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		// Burn the code attempt anyway so the response timing and shape
		// match the existing-account path.
		s.otps.Validate(ctx, req.Email, req.Code)
		return ErrInvalidCode
	}

	if !s.otps.Validate(ctx, user.Email, req.Code) {
		return ErrInvalidCode
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if err := s.refresh.RevokeAllForUser(ctx, user.ID); err != nil {
		slog.Error("failed to revoke refresh tokens", "error", err, "user_id", user.ID.String())
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.LoginResponse, error) {
	access, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshToken := base64.URLEncoding.EncodeToString(raw)

	record := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.refresh.Create(ctx, record); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.tokens.TTL().Seconds()),
		Role:         user.Role,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
	}, nil
}

func hashToken(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return fmt.Sprintf("%x", h)
}
