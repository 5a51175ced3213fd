package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gracechapel/pastor-mobile-api/internal/dto"
	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

// RequireRoles rejects callers whose token role is not in the allow list.
// It must run after Protected.
func RequireRoles(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, role, err := Caller(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(
				dto.Err(dto.KindUnauthenticated, "invalid or expired token"))
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(
			dto.Err(dto.KindForbidden, "insufficient role for this resource"))
	}
}
