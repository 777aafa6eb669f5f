package media

import (
	"context"
	"log/slog"
	"time"

	"github.com/contre95/soundbridge/src/features/metrics"
)

// StartPolling begins the background playlist refresh loop. At most one
// loop runs at a time; starting while already running is a no-op, so a
// repeated authorization cannot duplicate the timer.
func (s *Service) StartPolling() {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	if s.pollStop != nil {
		return
	}
	stop := make(chan struct{})
	s.pollStop = stop
	go s.pollLoop(stop)
	slog.Info("Playlist polling started", "interval", s.configManager.PollInterval().String())
}

// StopPolling halts the refresh loop. Safe to call when not running.
func (s *Service) StopPolling() {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	if s.pollStop == nil {
		return
	}
	close(s.pollStop)
	s.pollStop = nil
	slog.Info("Playlist polling stopped")
}

func (s *Service) pollLoop(stop chan struct{}) {
	ticker := time.NewTicker(s.configManager.PollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refreshPlaylists()
		case <-stop:
			return
		}
	}
}

// refreshPlaylists re-fetches the playlist list and signals the host. A
// failed poll logs and retries on the next tick.
func (s *Service) refreshPlaylists() {
	metrics.PollTicksTotal.Inc()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.Playlists(ctx); err != nil {
		slog.Warn("Playlist poll failed, retrying next tick", "error", err)
		return
	}
	s.notifier.RequestPlaylistsUpdate()
}
