package handlers

import (
	"rusty/internal/models"
	"rusty/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RustaceanHandler handles HTTP requests for rustaceans.
type RustaceanHandler struct {
	service  *services.RustaceanService
	validate *validator.Validate
	logger   *zap.Logger
	limit    int
}

// NewRustaceanHandler creates a new RustaceanHandler listing at most limit records.
func NewRustaceanHandler(service *services.RustaceanService, limit int, logger *zap.Logger) *RustaceanHandler {
	return &RustaceanHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
		limit:    limit,
	}
}

// RegisterRoutes registers the rustacean routes. guard runs before every write.
func (h *RustaceanHandler) RegisterRoutes(router fiber.Router, guard ...fiber.Handler) {
	routes := router.Group("/rustaceans")
	routes.Get("/", h.HandleGetRustaceans)
	routes.Get("/:id", h.HandleGetRustacean)
	routes.Post("/", guarded(guard, h.HandleCreateRustacean)...)
	routes.Put("/:id", guarded(guard, h.HandleUpdateRustacean)...)
	routes.Delete("/:id", guarded(guard, h.HandleDeleteRustacean)...)
}

// HandleGetRustaceans lists rustaceans ordered by ID.
func (h *RustaceanHandler) HandleGetRustaceans(c *fiber.Ctx) error {
	rustaceans, err := h.service.GetRustaceans(c.UserContext(), h.limit)
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve rustaceans", err)
	}
	return c.JSON(rustaceans)
}

// HandleGetRustacean returns one rustacean.
func (h *RustaceanHandler) HandleGetRustacean(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.logger, "Invalid rustacean ID", err)
	}
	rustacean, err := h.service.GetRustaceanByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve rustacean", err)
	}
	return c.JSON(rustacean)
}

// HandleCreateRustacean creates a rustacean and answers 201.
func (h *RustaceanHandler) HandleCreateRustacean(c *fiber.Ctx) error {
	var newRustacean models.NewRustacean
	if err := parseBody(c, h.validate, &newRustacean); err != nil {
		return respondError(c, h.logger, "Invalid request body", err)
	}
	rustacean, err := h.service.CreateRustacean(c.UserContext(), newRustacean)
	if err != nil {
		return respondError(c, h.logger, "Could not create rustacean", err)
	}
	return c.Status(fiber.StatusCreated).JSON(rustacean)
}

// HandleUpdateRustacean overwrites a rustacean.
func (h *RustaceanHandler) HandleUpdateRustacean(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.logger, "Invalid rustacean ID", err)
	}
	var rustacean models.Rustacean
	if err := parseBody(c, h.validate, &rustacean); err != nil {
		return respondError(c, h.logger, "Invalid request body", err)
	}
	updated, err := h.service.UpdateRustacean(c.UserContext(), id, rustacean)
	if err != nil {
		return respondError(c, h.logger, "Could not update rustacean", err)
	}
	return c.JSON(updated)
}

// HandleDeleteRustacean deletes a rustacean and answers 204.
func (h *RustaceanHandler) HandleDeleteRustacean(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.logger, "Invalid rustacean ID", err)
	}
	if err := h.service.DeleteRustacean(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, "Could not delete rustacean", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
