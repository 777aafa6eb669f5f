package config

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the config feature.
type Handler struct {
	configManager *Manager
	path          string
}

// NewHandler creates a new handler for the config feature.
func NewHandler(configManager *Manager, path string) *Handler {
	return &Handler{configManager: configManager, path: path}
}

// UpdateSettings applies a runtime configuration update from the host.
// Fields absent from the body keep their current values.
func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	slog.Info("Configuration update requested")

	current := h.configManager.Get()
	newConfig := *current
	if err := c.BodyParser(&newConfig); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Preserve server and database settings, no sense changing them on runtime
	newConfig.Server = current.Server
	newConfig.Database = current.Database
	applyDefaults(&newConfig)

	validate := validator.New()
	if err := validate.Struct(newConfig); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "config validation failed: " + err.Error(),
		})
	}

	h.configManager.Update(&newConfig)

	// Saving may fail in containerized environments; the in-memory update stands
	if err := h.configManager.Save(h.path); err != nil {
		slog.Warn("Failed to save config to file", "error", err)
	}

	return c.JSON(fiber.Map{
		"message": "Configuration updated",
	})
}
