package server

import (
	"time"

	"rusty/internal/handlers"
	"rusty/internal/middleware"
	"rusty/internal/models"
	"rusty/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// Deps are the services the HTTP app is built from.
type Deps struct {
	Rustaceans *services.RustaceanService
	Crates     *services.CrateService
	// Auth enables POST /auth/login when set.
	Auth *services.AuthService
	// AuthEnabled guards every write with a JWT holding the admin or editor role.
	AuthEnabled bool
	PageLimit   int
	Logger      *zap.Logger
	// AccessLog toggles the per-request log line.
	AccessLog bool
}

// NewApp assembles the Fiber application and registers every route.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "rusty",
		ErrorHandler: errorHandler(deps.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if deps.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	var guard []fiber.Handler
	switch {
	case deps.AuthEnabled && deps.Auth != nil:
		guard = []fiber.Handler{
			middleware.AuthRequired(deps.Auth, deps.Logger),
			middleware.RequireRole(models.RoleAdmin, models.RoleEditor),
		}
	case deps.AuthEnabled:
		// Writes stay closed rather than open when tokens cannot be checked.
		deps.Logger.Error("authorization enabled without an auth service, rejecting all writes")
		guard = []fiber.Handler{rejectWrites}
	}
	if deps.Auth != nil {
		handlers.NewAuthHandler(deps.Auth, deps.Logger).RegisterRoutes(app)
	}

	handlers.NewRustaceanHandler(deps.Rustaceans, deps.PageLimit, deps.Logger).RegisterRoutes(app, guard...)
	handlers.NewCrateHandler(deps.Crates, deps.PageLimit, deps.Logger).RegisterRoutes(app, guard...)

	return app
}

func rejectWrites(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"message": "Authorization is not configured",
		"error":   "writes are disabled",
	})
}

// errorHandler renders errors escaping handlers (unknown routes, panics) as JSON.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		detail := err.Error()
		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
			detail = "internal server error"
		}
		return c.Status(code).JSON(fiber.Map{
			"message": "Request failed",
			"error":   detail,
		})
	}
}
