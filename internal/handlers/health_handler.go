package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gracechapel/pastor-mobile-api/internal/database"
	"github.com/gracechapel/pastor-mobile-api/internal/dto"
)

// Health reports liveness plus database reachability. A down database turns
// the status to degraded but still answers 200 so load balancers keep the
// instance for the endpoints that do not need the database.
func Health(c *fiber.Ctx) error {
	db := "ok"
	if err := database.Ping(); err != nil {
		db = "unreachable"
	}

	status := "ok"
	if db != "ok" {
		status = "degraded"
	}

	return c.JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        db,
	})
}
