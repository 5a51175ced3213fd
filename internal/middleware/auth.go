package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gracechapel/pastor-mobile-api/internal/config"
	"github.com/gracechapel/pastor-mobile-api/internal/dto"
	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

// Protected verifies the bearer token and leaves the parsed token in
// c.Locals("user") for Caller.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecretKey)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(
				dto.Err(dto.KindUnauthenticated, "invalid or expired token"))
		},
	})
}

var errNoCaller = errors.New("no authenticated caller on request")

// Caller extracts the authenticated user's ID and role from the verified
// token. It only fails when Protected did not run on the route.
func Caller(c *fiber.Ctx) (uuid.UUID, models.Role, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return uuid.Nil, "", errNoCaller
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", errNoCaller
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", errNoCaller
	}

	roleStr, _ := claims["role"].(string)
	role := models.Role(roleStr)
	if !role.Valid() {
		return uuid.Nil, "", errNoCaller
	}
	return id, role, nil
}
