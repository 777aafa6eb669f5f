package auth

import (
	"errors"
	"log/slog"

	"github.com/contre95/soundbridge/src/music"
	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the authorization flow.
type Handler struct {
	service *Service
}

// NewHandler creates a new auth handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// StartOAuth2 returns the authorization URL for the host to open in the
// user's browser.
func (h *Handler) StartOAuth2(c *fiber.Ctx) error {
	slog.Debug("StartOAuth2 handler called")

	url, state := h.service.StartOAuth2()
	return c.JSON(fiber.Map{
		"url":   url,
		"state": state,
	})
}

// Callback receives the redirect from SoundCloud with the authorization
// code (or an error) and completes the exchange.
func (h *Handler) Callback(c *fiber.Ctx) error {
	slog.Debug("OAuth callback handler called")

	state := c.Query("state")
	code := c.Query("code")
	authErr := c.Query("error")

	if err := h.service.HandleCallback(c.Context(), state, code, authErr); err != nil {
		slog.Error("Authorization failed", "error", err)
		return c.Status(fiber.StatusBadRequest).SendString("Authorization failed: " + err.Error())
	}
	return c.SendString("Authorized with SoundCloud. You can close this window.")
}

// Deauthorize clears the stored credential.
func (h *Handler) Deauthorize(c *fiber.Ctx) error {
	slog.Debug("Deauthorize handler called")

	if err := h.service.Deauthorize(c.Context()); err != nil {
		slog.Error("Failed to deauthorize", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Deauthorized",
	})
}

// Profile returns the authenticated account summary.
func (h *Handler) Profile(c *fiber.Ctx) error {
	slog.Debug("Profile handler called")

	profile, err := h.service.Profile(c.Context())
	if err != nil {
		slog.Error("Failed to fetch profile", "error", err)
		if errors.Is(err, music.ErrNotAuthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":  "not_authenticated",
				"error": err.Error(),
			})
		}
		var apiErr *music.APIError
		if errors.As(err, &apiErr) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"code":  "external_api_error",
				"error": apiErr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(profile)
}
