package auth

import "github.com/gofiber/fiber/v2"

// RegisterRoutes registers the authorization routes exposed to the host.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	app.Get("/oauth2", handler.StartOAuth2)
	app.Get("/oauth2/callback", handler.Callback)
	app.Post("/deauthorize", handler.Deauthorize)
	app.Get("/profile", handler.Profile)
}
