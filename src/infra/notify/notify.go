// Package notify carries the "playlists changed" signal back to the host.
package notify

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/contre95/soundbridge/src/music"
)

// WebhookNotifier POSTs a refresh event to the host's callback URL.
type WebhookNotifier struct {
	URL  string
	HTTP *http.Client
}

var _ music.RefreshNotifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier creates a notifier for the given host callback URL.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		URL:  url,
		HTTP: &http.Client{Timeout: 5 * time.Second},
	}
}

// RequestPlaylistsUpdate delivers the event asynchronously; a delivery
// failure is logged, never propagated.
func (n *WebhookNotifier) RequestPlaylistsUpdate() {
	go func() {
		body := bytes.NewBufferString(`{"event":"media.playlists.update"}`)
		resp, err := n.HTTP.Post(n.URL, "application/json", body)
		if err != nil {
			slog.Warn("Failed to notify host of playlist update", "url", n.URL, "error", err)
			return
		}
		resp.Body.Close()
		if resp.StatusCode >= 400 {
			slog.Warn("Host rejected playlist update notification", "url", n.URL, "status", resp.Status)
		}
	}()
}

// LogNotifier is the fallback when no host callback URL is configured.
type LogNotifier struct{}

var _ music.RefreshNotifier = (*LogNotifier)(nil)

func (LogNotifier) RequestPlaylistsUpdate() {
	slog.Debug("Playlist update requested, no host callback configured")
}
