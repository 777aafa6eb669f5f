package config

import "github.com/gofiber/fiber/v2"

// RegisterRoutes registers config-related routes
func RegisterRoutes(app *fiber.App, manager *Manager) {
	handler := NewHandler(manager, "config.yaml")

	app.Get("/config", func(c *fiber.Ctx) error {
		c.Set("Content-Type", "application/json")
		return c.SendString(manager.GetJSON())
	})
	app.Put("/config", handler.UpdateSettings)
}
