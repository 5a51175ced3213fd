// Package token issues and verifies the signed bearer tokens that carry a
// user's identity and role between requests. Verification is local and
// side-effect free; the only inputs are the shared secret and the clock.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

var (
	// ErrExpired is returned for a well-formed token past its expiry.
	ErrExpired = errors.New("token expired")
	// ErrInvalid is returned for any other verification failure: bad
	// signature, malformed payload, or an unparseable claim set.
	ErrInvalid = errors.New("token invalid")
)

// Claims is the signed claim set embedded in every access token.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Maker signs and verifies access tokens with a single process-wide secret.
type Maker struct {
	secret []byte
	ttl    time.Duration
}

func NewMaker(secret string, ttl time.Duration) *Maker {
	return &Maker{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured access-token lifetime.
func (m *Maker) TTL() time.Duration {
	return m.ttl
}

// Issue produces a signed token for the user, expiring after the configured TTL.
func (m *Maker) Issue(userID uuid.UUID, role models.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks the signature and expiry and returns the claim set.
// Expired tokens are rejected regardless of signature validity.
func (m *Maker) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || !claims.Role.Valid() {
		return nil, ErrInvalid
	}
	return claims, nil
}

// Subject parses the user id out of a verified claim set.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}
