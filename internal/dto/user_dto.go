package dto

import "github.com/gracechapel/pastor-mobile-api/internal/models"

type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
}

// ProvisionResponse reports the created account. CredentialsSent is false
// when the account was committed but the credentials mail could not be
// delivered; the operator remedy is the resend-credentials endpoint.
type ProvisionResponse struct {
	User            models.User `json:"user"`
	CredentialsSent bool        `json:"credentials_sent"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=255"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=255"`
	Password  *string `json:"password"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateProfileRequest covers self-service /user/me updates. Role and
// activation cannot be changed by the account itself.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=255"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=255"`
	Password  *string `json:"password"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
