package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/gracechapel/pastor-mobile-api/internal/config"
	"github.com/gracechapel/pastor-mobile-api/internal/handlers"
	"github.com/gracechapel/pastor-mobile-api/internal/middleware"
	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	seriesHandler *handlers.SeriesHandler,
) {
	// Health stays outside the rate limiter so probes never get throttled.
	app.Get("/health", handlers.Health)

	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Auth is public, with a stricter limit: 10 req/min per IP
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/superadmin/login", authHandler.SuperadminLogin)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/verify-otp", authHandler.VerifyOTP)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/resend-otp", authHandler.ResendOTP)

	// Superadmin panel: admin account management.
	superadmin := app.Group("/superadmin/admins",
		middleware.Protected(cfg),
		middleware.RequireRoles(models.RoleSuperadmin),
	)
	registerUserRoutes(superadmin, userHandler)

	// Admin panel: team account management, team picked by the path segment.
	adminTeams := app.Group("/admin/:group",
		middleware.Protected(cfg),
		middleware.RequireRoles(models.RoleAdmin),
	)
	registerUserRoutes(adminTeams, userHandler)

	// Self-service profile.
	me := app.Group("/user", middleware.Protected(cfg))
	me.Get("/me", userHandler.Me)
	me.Put("/me", userHandler.UpdateMe)

	// Series content. Reads are open to every signed-in role; writes are
	// admin only.
	series := app.Group("/api/v1/series", middleware.Protected(cfg))
	series.Get("/list", seriesHandler.List)
	series.Get("/count", seriesHandler.Count)
	series.Get("/:id", seriesHandler.Get)

	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	series.Post("/create", adminOnly, seriesHandler.Create)
	series.Put("/update/:id", adminOnly, seriesHandler.Update)
	series.Delete("/delete/:id", adminOnly, seriesHandler.Delete)
}

func registerUserRoutes(g fiber.Router, h *handlers.UserHandler) {
	g.Get("/list", h.List)
	g.Get("/count", h.Count)
	g.Post("/create", h.Create)
	g.Get("/:id", h.Get)
	g.Put("/update/:id", h.Update)
	g.Delete("/delete/:id", h.Delete)
	g.Post("/:id/resend-credentials", h.ResendCredentials)
}
