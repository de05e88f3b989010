package handlers

import (
	"rusty/internal/models"
	"rusty/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CrateHandler handles HTTP requests for crates.
type CrateHandler struct {
	service  *services.CrateService
	validate *validator.Validate
	logger   *zap.Logger
	limit    int
}

// NewCrateHandler creates a new CrateHandler listing at most limit records.
func NewCrateHandler(service *services.CrateService, limit int, logger *zap.Logger) *CrateHandler {
	return &CrateHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
		limit:    limit,
	}
}

// RegisterRoutes registers the crate routes. guard runs before every write.
func (h *CrateHandler) RegisterRoutes(router fiber.Router, guard ...fiber.Handler) {
	router.Get("/rustaceans/:id/crates", h.HandleGetCratesByRustacean)

	routes := router.Group("/crates")
	routes.Get("/", h.HandleGetCrates)
	routes.Get("/:id", h.HandleGetCrate)
	routes.Post("/", guarded(guard, h.HandleCreateCrate)...)
	routes.Put("/:id", guarded(guard, h.HandleUpdateCrate)...)
	routes.Delete("/:id", guarded(guard, h.HandleDeleteCrate)...)
}

// HandleGetCrates lists crates ordered by ID.
func (h *CrateHandler) HandleGetCrates(c *fiber.Ctx) error {
	crates, err := h.service.GetCrates(c.UserContext(), h.limit)
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve crates", err)
	}
	return c.JSON(crates)
}

// HandleGetCratesByRustacean lists the crates owned by one rustacean.
func (h *CrateHandler) HandleGetCratesByRustacean(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.logger, "Invalid rustacean ID", err)
	}
	crates, err := h.service.GetCratesByRustacean(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve crates", err)
	}
	return c.JSON(crates)
}

// HandleGetCrate returns one crate.
func (h *CrateHandler) HandleGetCrate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.logger, "Invalid crate ID", err)
	}
	crate, err := h.service.GetCrateByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve crate", err)
	}
	return c.JSON(crate)
}

// HandleCreateCrate creates a crate and answers 201.
func (h *CrateHandler) HandleCreateCrate(c *fiber.Ctx) error {
	var newCrate models.NewCrate
	if err := parseBody(c, h.validate, &newCrate); err != nil {
		return respondError(c, h.logger, "Invalid request body", err)
	}
	crate, err := h.service.CreateCrate(c.UserContext(), newCrate)
	if err != nil {
		return respondError(c, h.logger, "Could not create crate", err)
	}
	return c.Status(fiber.StatusCreated).JSON(crate)
}

// HandleUpdateCrate overwrites a crate, owner included.
func (h *CrateHandler) HandleUpdateCrate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.logger, "Invalid crate ID", err)
	}
	var crate models.Crate
	if err := parseBody(c, h.validate, &crate); err != nil {
		return respondError(c, h.logger, "Invalid request body", err)
	}
	updated, err := h.service.UpdateCrate(c.UserContext(), id, crate)
	if err != nil {
		return respondError(c, h.logger, "Could not update crate", err)
	}
	return c.JSON(updated)
}

// HandleDeleteCrate deletes a crate and answers 204.
func (h *CrateHandler) HandleDeleteCrate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.logger, "Invalid crate ID", err)
	}
	if err := h.service.DeleteCrate(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, "Could not delete crate", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
