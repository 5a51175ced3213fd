// Package otp issues and validates short-lived one-time codes. Codes come
// from crypto/rand and are stored hashed; a subject has at most one live
// code at a time.
package otp

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/gracechapel/pastor-mobile-api/internal/models"
	"github.com/gracechapel/pastor-mobile-api/internal/store"
)

// Digits is the length of every generated code.
const Digits = 6

type Service struct {
	store store.OTPStore
	ttl   time.Duration
}

func NewService(s store.OTPStore, ttl time.Duration) *Service {
	return &Service{store: s, ttl: ttl}
}

// TTL returns the configured validity window.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Generate returns a zero-padded 6-digit code from a CSPRNG.
func Generate() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < Digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", Digits, n), nil
}

// Issue generates a code for the subject and stores it, invalidating any
// prior unconsumed code for that subject in the same transaction. The raw
// code is returned once for delivery and never stored.
func (s *Service) Issue(ctx context.Context, subject string) (string, error) {
	code, err := Generate()
	if err != nil {
		return "", err
	}

	record := &models.OneTimeCode{
		Subject:   normalize(subject),
		CodeHash:  hashCode(code),
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.store.Replace(ctx, record); err != nil {
		return "", err
	}
	return code, nil
}

// Validate consumes the code on success. It fails closed: mismatch, expiry,
// and prior consumption all return false, and the caller cannot tell which.
func (s *Service) Validate(ctx context.Context, subject, code string) bool {
	if len(code) != Digits {
		return false
	}
	err := s.store.Consume(ctx, normalize(subject), hashCode(code), time.Now())
	return err == nil
}

// Check reports validity without consuming, so a client can confirm a code
// before submitting the action that spends it.
func (s *Service) Check(ctx context.Context, subject, code string) bool {
	if len(code) != Digits {
		return false
	}
	err := s.store.Peek(ctx, normalize(subject), hashCode(code), time.Now())
	return err == nil
}

func normalize(subject string) string {
	return strings.ToLower(strings.TrimSpace(subject))
}

func hashCode(code string) string {
	h := sha256.Sum256([]byte(code))
	return fmt.Sprintf("%x", h)
}
