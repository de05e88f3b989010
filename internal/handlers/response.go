package handlers

import (
	"errors"

	"rusty/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.NotFound:
		return fiber.StatusNotFound
	case apperrors.Conflict:
		return fiber.StatusConflict
	case apperrors.Validation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// internalErrorText replaces the error detail of 5xx responses; the cause is only logged.
const internalErrorText = "internal server error"

// respondError logs err and writes it as {"message", "error"} with the mapped status.
func respondError(c *fiber.Ctx, logger *zap.Logger, message string, err error) error {
	status := statusFor(err)
	detail := err.Error()
	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= fiber.StatusInternalServerError {
		logger.Error(message, fields...)
		detail = internalErrorText
	} else {
		logger.Info(message, fields...)
	}

	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   detail,
	})
}

// parseID reads the positive integer :id route parameter.
func parseID(c *fiber.Ctx, name string) (int, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, apperrors.Errorf(apperrors.Validation, "parse id", "%s must be a positive integer, got %q", name, c.Params(name))
	}
	return id, nil
}

// parseBody decodes the JSON body into out and runs struct validation.
func parseBody(c *fiber.Ctx, validate *validator.Validate, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.E(apperrors.Validation, "parse body", err)
	}
	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			e := validationErrors[0]
			return apperrors.Errorf(apperrors.Validation, "validate body", "field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return apperrors.E(apperrors.Validation, "validate body", err)
	}
	return nil
}

// guarded returns guard followed by h in a fresh slice.
func guarded(guard []fiber.Handler, h fiber.Handler) []fiber.Handler {
	handlers := make([]fiber.Handler, 0, len(guard)+1)
	handlers = append(handlers, guard...)
	return append(handlers, h)
}
