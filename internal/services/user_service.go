package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/gracechapel/pastor-mobile-api/internal/authz"
	"github.com/gracechapel/pastor-mobile-api/internal/dto"
	"github.com/gracechapel/pastor-mobile-api/internal/mailer"
	"github.com/gracechapel/pastor-mobile-api/internal/models"
	"github.com/gracechapel/pastor-mobile-api/internal/password"
	"github.com/gracechapel/pastor-mobile-api/internal/store"
)

var (
	ErrForbidden      = errors.New("operation not permitted for this role")
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("a user with this email already exists")
)

// UserService applies the role hierarchy to every account operation. The
// caller's identity comes from the verified access token, never the request
// body.
type UserService struct {
	users store.UserStore
	mail  mailer.Mailer
}

func NewUserService(users store.UserStore, mail mailer.Mailer) *UserService {
	return &UserService{users: users, mail: mail}
}

// Provision creates an account of the target role with a generated temporary
// password and emails the credentials. A mail failure does not roll the
// account back; the response reports CredentialsSent=false and the caller can
// use ResendCredentials.
func (s *UserService) Provision(
	ctx context.Context,
	caller *models.User,
	target models.Role,
	req *dto.CreateUserRequest,
) (*dto.ProvisionResponse, error) {
	if !authz.Permit(caller.Role, authz.ActionCreate, target) {
		return nil, ErrForbidden
	}

	temp, err := password.GenerateTemp()
	if err != nil {
		return nil, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	hash, err := password.Hash(temp)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Role:         target,
		IsActive:     true,
		CreatedByID:  &caller.ID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	sent := true
	if err := s.mail.SendCredentials(ctx, user.Email, user.FirstName, user.LastName, target, temp); err != nil {
		slog.Error("failed to send credentials email", "error", err, "user_id", user.ID.String())
		sent = false
	}

	return &dto.ProvisionResponse{User: *user, CredentialsSent: sent}, nil
}

// ResendCredentials rotates the target's password to a fresh temporary one
// and mails it again. Existing sessions stay valid; only the password moves.
func (s *UserService) ResendCredentials(
	ctx context.Context,
	caller *models.User,
	target models.Role,
	id uuid.UUID,
) error {
	user, err := s.get(ctx, caller, target, id, authz.ActionUpdate)
	if err != nil {
		return err
	}

	temp, err := password.GenerateTemp()
	if err != nil {
		return fmt.Errorf("failed to generate temporary password: %w", err)
	}
	hash, err := password.Hash(temp)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	return s.mail.SendCredentials(ctx, user.Email, user.FirstName, user.LastName, user.Role, temp)
}

// List returns every account of the target role, newest first.
func (s *UserService) List(ctx context.Context, caller *models.User, target models.Role) ([]models.User, error) {
	if !authz.Permit(caller.Role, authz.ActionRead, target) {
		return nil, ErrForbidden
	}
	return s.users.ListByRole(ctx, target)
}

func (s *UserService) Count(ctx context.Context, caller *models.User, target models.Role) (int64, error) {
	if !authz.Permit(caller.Role, authz.ActionRead, target) {
		return 0, ErrForbidden
	}
	return s.users.CountByRole(ctx, target)
}

// Get returns the account only when it exists AND holds the target role. An
// existing account of another role reads as not found, so the endpoint leaks
// nothing outside the caller's branch of the hierarchy.
func (s *UserService) Get(ctx context.Context, caller *models.User, target models.Role, id uuid.UUID) (*models.User, error) {
	return s.get(ctx, caller, target, id, authz.ActionRead)
}

// Update modifies the target account's profile fields. Role is immutable;
// deactivation goes through IsActive.
func (s *UserService) Update(
	ctx context.Context,
	caller *models.User,
	target models.Role,
	id uuid.UUID,
	req *dto.UpdateUserRequest,
) (*models.User, error) {
	user, err := s.get(ctx, caller, target, id, authz.ActionUpdate)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		if !password.MeetsPolicy(*req.Password) {
			return nil, ErrWeakPassword
		}
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the account permanently.
func (s *UserService) Delete(ctx context.Context, caller *models.User, target models.Role, id uuid.UUID) error {
	if _, err := s.get(ctx, caller, target, id, authz.ActionDelete); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

// Me returns the caller's own record.
func (s *UserService) Me(ctx context.Context, callerID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile lets any authenticated user edit their own name and password.
func (s *UserService) UpdateProfile(ctx context.Context, callerID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Me(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Password != nil {
		if !password.MeetsPolicy(*req.Password) {
			return nil, ErrWeakPassword
		}
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) get(
	ctx context.Context,
	caller *models.User,
	target models.Role,
	id uuid.UUID,
	action authz.Action,
) (*models.User, error) {
	if !authz.Permit(caller.Role, action, target) {
		return nil, ErrForbidden
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.Role != target {
		return nil, ErrNotFound
	}
	return user, nil
}
