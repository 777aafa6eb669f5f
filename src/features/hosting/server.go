package hosting

import (
	"fmt"
	"log/slog"

	"github.com/contre95/soundbridge/src/features/auth"
	"github.com/contre95/soundbridge/src/features/config"
	"github.com/contre95/soundbridge/src/features/media"
	"github.com/contre95/soundbridge/src/features/metrics"
	"github.com/gofiber/fiber/v2"
)

// Server is the HTTP server for the adapter.
type Server struct {
	app  *fiber.App
	port uint32
}

// NewServer creates a new HTTP server.
func NewServer(cfg *config.Manager, authService *auth.Service, mediaService *media.Service) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error("Internal Server Error", "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
		AppName:               "SoundBridge",
		DisableStartupMessage: true,
		EnablePrintRoutes:     cfg.Get().Server.PrintRoutes,
	})

	app.Use(LogAllRequestsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	auth.RegisterRoutes(app, authService)
	media.RegisterRoutes(app, mediaService)
	config.RegisterRoutes(app, cfg)
	if cfg.Get().Metrics.Enabled {
		metrics.RegisterRoutes(app)
	}

	return &Server{app: app, port: cfg.Get().Server.Port}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(":" + fmt.Sprint(s.port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
