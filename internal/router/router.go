package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hagwonhq/hagwon-api/internal/config"
	"github.com/hagwonhq/hagwon-api/internal/handler"
	"github.com/hagwonhq/hagwon-api/internal/middleware"
	"github.com/hagwonhq/hagwon-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AttendanceHandler *handler.AttendanceHandler
	HomeworkHandler   *handler.HomeworkHandler
	JWTMiddleware     fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	// Common v1 group for health & headers
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AttendanceHandler != nil {
		group := api.Group("/attendance", jwtMiddleware, middleware.RateLimit("attendance", 60, time.Minute))
		deps.AttendanceHandler.Register(group)
	}

	if deps.HomeworkHandler != nil {
		group := api.Group("/homework", jwtMiddleware, middleware.RateLimit("homework", 60, time.Minute))
		deps.HomeworkHandler.Register(group)
	}
}
