package media

import "github.com/gofiber/fiber/v2"

// RegisterRoutes registers the host media-manager event routes.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	api := app.Group("/media")
	api.Post("/search", handler.Search)
	api.Post("/play", handler.Play)
	api.Get("/playlists", handler.GetPlaylists)
	api.Get("/playlists/:playlistId", handler.GetPlaylist)
}
