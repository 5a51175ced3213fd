// Package handlers binds the HTTP surface to the service layer. Handlers
// parse and validate input, map service errors onto statuses, and never hold
// business rules themselves.
package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gracechapel/pastor-mobile-api/internal/dto"
	"github.com/gracechapel/pastor-mobile-api/internal/services"
)

var validate = validator.New()

// errUnauthenticated covers requests whose verified token is missing or
// malformed past the JWT middleware.
var errUnauthenticated = errors.New("invalid or expired token")

// parseBody decodes and validates the request body.
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fmt.Errorf("%w: invalid request body", services.ErrValidation)
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", services.ErrValidation, err.Error())
	}
	return nil
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id", services.ErrValidation)
	}
	return id, nil
}

// fail maps service errors onto the response envelope. Unrecognized errors
// are logged and hidden behind a generic 500.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidRefresh),
		errors.Is(err, services.ErrInvalidCode),
		errors.Is(err, errUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Err(dto.KindUnauthenticated, err.Error()))
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(
			dto.Err(dto.KindForbidden, err.Error()))
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(
			dto.Err(dto.KindNotFound, err.Error()))
	case errors.Is(err, services.ErrDuplicateEmail):
		return c.Status(fiber.StatusConflict).JSON(
			dto.Err(dto.KindConflict, err.Error()))
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Err(dto.KindValidation, err.Error()))
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(
		dto.Err(dto.KindUpstream, "internal server error"))
}
