package media

import (
	"errors"
	"log/slog"

	"github.com/contre95/soundbridge/src/music"
	"github.com/gofiber/fiber/v2"
)

// Handler handles the HTTP surface of the host media-manager events.
type Handler struct {
	service *Service
}

// NewHandler creates a new media handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PlayRequest represents a playback resolution request.
type PlayRequest struct {
	TrackID string `json:"trackId" form:"trackId"`
}

// Search handles the host's search event.
func (h *Handler) Search(c *fiber.Ctx) error {
	slog.Debug("Search handler called")

	var query music.SearchQuery
	if err := c.BodyParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tracks, err := h.service.Search(c.Context(), query)
	if err != nil {
		slog.Error("Failed to search tracks", "error", err)
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"tracks": tracks,
	})
}

// Play handles the host's play event.
func (h *Handler) Play(c *fiber.Ctx) error {
	slog.Debug("Play handler called")

	var req PlayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.TrackID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Track ID is required",
		})
	}

	track, err := h.service.Play(c.Context(), req.TrackID)
	if err != nil {
		slog.Error("Failed to resolve track for playback", "trackID", req.TrackID, "error", err)
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"track": track,
	})
}

// GetPlaylists handles the host's playlist list event.
func (h *Handler) GetPlaylists(c *fiber.Ctx) error {
	slog.Debug("GetPlaylists handler called")

	playlists, err := h.service.Playlists(c.Context())
	if err != nil {
		slog.Error("Failed to fetch playlists", "error", err)
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"playlists": playlists,
	})
}

// GetPlaylist handles the host's single-playlist event.
func (h *Handler) GetPlaylist(c *fiber.Ctx) error {
	slog.Debug("GetPlaylist handler called")

	playlistID := c.Params("playlistId")
	if playlistID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Playlist ID is required",
		})
	}

	playlist, err := h.service.PlaylistByID(c.Context(), playlistID)
	if err != nil {
		slog.Error("Failed to fetch playlist", "playlistID", playlistID, "error", err)
		return writeError(c, err)
	}

	return c.JSON(playlist)
}

// writeError maps adapter errors onto the host-visible HTTP surface. The
// not-authenticated case is tagged so the host can prompt re-authorization
// instead of showing a generic failure.
func writeError(c *fiber.Ctx, err error) error {
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
	if errors.Is(err, music.ErrStreamResolve) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"code":  "stream_resolve_failed",
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
