package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gracechapel/pastor-mobile-api/internal/models"
	"github.com/gracechapel/pastor-mobile-api/internal/store"
)

type memUserStore struct {
	users map[uuid.UUID]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Email == strings.ToLower(user.Email) {
			return store.ErrDuplicateEmail
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = strings.ToLower(user.Email)
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUserStore) ListByRole(_ context.Context, role models.Role) ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memUserStore) CountByRole(_ context.Context, role models.Role) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (m *memUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type memSeriesStore struct {
	series map[uuid.UUID]*models.Series
}

func newMemSeriesStore() *memSeriesStore {
	return &memSeriesStore{series: make(map[uuid.UUID]*models.Series)}
}

func (m *memSeriesStore) Create(_ context.Context, s *models.Series) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	m.series[s.ID] = &cp
	return nil
}

func (m *memSeriesStore) GetByID(_ context.Context, id uuid.UUID) (*models.Series, error) {
	s, ok := m.series[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memSeriesStore) List(_ context.Context) ([]models.Series, error) {
	var out []models.Series
	for _, s := range m.series {
		out = append(out, *s)
	}
	return out, nil
}

func (m *memSeriesStore) Count(_ context.Context) (int64, error) {
	return int64(len(m.series)), nil
}

func (m *memSeriesStore) Update(_ context.Context, s *models.Series) error {
	if _, ok := m.series[s.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *s
	m.series[s.ID] = &cp
	return nil
}

func (m *memSeriesStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.series[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.series, id)
	return nil
}

type memOTPStore struct {
	codes map[string]*models.OneTimeCode
}

func newMemOTPStore() *memOTPStore {
	return &memOTPStore{codes: make(map[string]*models.OneTimeCode)}
}

func (m *memOTPStore) Replace(_ context.Context, code *models.OneTimeCode) error {
	cp := *code
	m.codes[code.Subject] = &cp
	return nil
}

func (m *memOTPStore) Consume(_ context.Context, subject, codeHash string, now time.Time) error {
	c, ok := m.codes[subject]
	if !ok || c.Consumed || c.CodeHash != codeHash || !now.Before(c.ExpiresAt) {
		return store.ErrNotFound
	}
	c.Consumed = true
	return nil
}

func (m *memOTPStore) Peek(_ context.Context, subject, codeHash string, now time.Time) error {
	c, ok := m.codes[subject]
	if !ok || c.Consumed || c.CodeHash != codeHash || !now.Before(c.ExpiresAt) {
		return store.ErrNotFound
	}
	return nil
}

type memRefreshStore struct {
	tokens map[uuid.UUID]*models.RefreshToken
}

func newMemRefreshStore() *memRefreshStore {
	return &memRefreshStore{tokens: make(map[uuid.UUID]*models.RefreshToken)}
}

func (m *memRefreshStore) Create(_ context.Context, token *models.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	cp := *token
	m.tokens[token.ID] = &cp
	return nil
}

func (m *memRefreshStore) GetByHash(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	for _, t := range m.tokens {
		if t.TokenHash == tokenHash && !t.Revoked {
			cp := *t
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memRefreshStore) Revoke(_ context.Context, id uuid.UUID) error {
	t, ok := m.tokens[id]
	if !ok {
		return store.ErrNotFound
	}
	t.Revoked = true
	return nil
}

func (m *memRefreshStore) RevokeAllForUser(_ context.Context, userID uuid.UUID) error {
	for _, t := range m.tokens {
		if t.UserID == userID {
			t.Revoked = true
		}
	}
	return nil
}

// recordingMailer captures outgoing mail so tests can assert on delivery
// without a network.
type recordingMailer struct {
	credentials []sentCredentials
	otps        []sentOTP
	fail        bool
}

type sentCredentials struct {
	to, tempPassword string
	role             models.Role
}

type sentOTP struct {
	to, code string
}

func (m *recordingMailer) SendCredentials(_ context.Context, to, _, _ string, role models.Role, tempPassword string) error {
	if m.fail {
		return errContextMail
	}
	m.credentials = append(m.credentials, sentCredentials{to: to, tempPassword: tempPassword, role: role})
	return nil
}

func (m *recordingMailer) SendOTP(_ context.Context, to, code string, _ time.Duration) error {
	if m.fail {
		return errContextMail
	}
	m.otps = append(m.otps, sentOTP{to: to, code: code})
	return nil
}

var errContextMail = errors.New("smtp unavailable")
