package middleware

import (
	"strings"

	"rusty/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			logger.Info("JWT validation failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])
		c.Locals("roles", services.ClaimRoles(claims))

		return c.Next()
	}
}

// RequireRole lets the request through when the authenticated user holds any
// of the given role codes. It must run after AuthRequired.
func RequireRole(codes ...string) fiber.Handler {
	allowed := make(map[string]bool, len(codes))
	for _, code := range codes {
		allowed[code] = true
	}

	return func(c *fiber.Ctx) error {
		roles, _ := c.Locals("roles").([]string)
		for _, role := range roles {
			if allowed[role] {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Insufficient role",
			"error":   "one of [" + strings.Join(codes, ", ") + "] is required",
		})
	}
}
