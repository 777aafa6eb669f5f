// Package media implements the host media-manager events: search, play and
// playlist retrieval, plus the background playlist poll. Each inbound host
// event maps to one Service method.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/contre95/soundbridge/src/features/config"
	"github.com/contre95/soundbridge/src/features/metrics"
	"github.com/contre95/soundbridge/src/infra/soundcloud"
	"github.com/contre95/soundbridge/src/music"
)

// StreamingClient is the subset of the SoundCloud client this feature uses.
// It allows the concrete client to be replaced in tests.
type StreamingClient interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]soundcloud.Track, error)
	GetTrack(ctx context.Context, id string) (*soundcloud.Track, error)
	Playlists(ctx context.Context, token string) ([]soundcloud.Playlist, error)
	Playlist(ctx context.Context, token, id string) (*soundcloud.Playlist, error)
	SignStreamURL(raw string) string
	ResolveStreamURL(ctx context.Context, raw string) (string, error)
}

// Service handles media operations for the host.
type Service struct {
	configManager *config.Manager
	client        StreamingClient
	credential    *music.Credential
	notifier      music.RefreshNotifier

	pollMu   sync.Mutex
	pollStop chan struct{}
}

// NewService creates a new media service.
func NewService(cfgManager *config.Manager, client StreamingClient, credential *music.Credential, notifier music.RefreshNotifier) *Service {
	return &Service{
		configManager: cfgManager,
		client:        client,
		credential:    credential,
		notifier:      notifier,
	}
}

// Search executes a structured search against SoundCloud and maps the
// results into the host track schema. Tracks not flagged streamable are
// dropped before mapping; every result carries the fixed neutral
// confidence.
func (s *Service) Search(ctx context.Context, query music.SearchQuery) ([]music.Track, error) {
	metrics.SearchesTotal.Inc()

	q := BuildQuery(query)
	limit := s.configManager.Get().SoundCloud.SearchLimit

	found, err := s.client.SearchTracks(ctx, q, limit)
	if err != nil {
		metrics.ExternalErrorsTotal.Inc()
		return nil, err
	}

	results := make([]music.Track, 0, len(found))
	for _, t := range found {
		if !t.Streamable {
			continue
		}
		track := mapTrack(t)
		track.Confidence = music.NeutralConfidence
		if err := track.Validate(); err != nil {
			slog.Warn("Dropping invalid search result", "trackID", track.ID, "error", err)
			continue
		}
		results = append(results, track)
	}
	return results, nil
}

// Play resolves a track id into a playable host track. The signed stream
// URL is resolved through its redirects; a resolution failure propagates,
// the adapter never falls back to the unresolved URL silently.
func (s *Service) Play(ctx context.Context, trackID string) (*music.Track, error) {
	metrics.PlaysTotal.Inc()

	if trackID == "" {
		return nil, fmt.Errorf("track id is required")
	}

	t, err := s.client.GetTrack(ctx, trackID)
	if err != nil {
		metrics.ExternalErrorsTotal.Inc()
		return nil, err
	}
	if t.StreamURL == "" {
		return nil, &music.APIError{Message: fmt.Sprintf("track %s has no stream url", trackID)}
	}

	track := mapTrack(*t)
	signed := s.client.SignStreamURL(t.StreamURL)
	resolved, err := s.client.ResolveStreamURL(ctx, signed)
	if err != nil {
		return nil, err
	}
	track.StreamURL = resolved
	if err := track.Validate(); err != nil {
		return nil, fmt.Errorf("mapped track failed validation: %w", err)
	}
	slog.Debug("Resolved track for playback", "title", track.Title, "artists", track.ArtistNames())
	return &track, nil
}

// Playlists lists the authenticated user's playlists. An empty account
// yields an empty list, not an error; a missing credential fails before any
// external call.
func (s *Service) Playlists(ctx context.Context) ([]music.Playlist, error) {
	metrics.PlaylistFetchesTotal.Inc()

	token, ok := s.credential.Token()
	if !ok {
		return nil, music.ErrNotAuthenticated
	}

	found, err := s.client.Playlists(ctx, token)
	if err != nil {
		metrics.ExternalErrorsTotal.Inc()
		return nil, err
	}

	playlists := make([]music.Playlist, 0, len(found))
	for _, p := range found {
		playlist := mapPlaylist(p)
		if err := playlist.Validate(); err != nil {
			slog.Warn("Skipping invalid playlist", "playlistID", playlist.ID, "error", err)
			continue
		}
		playlists = append(playlists, playlist)
	}
	return playlists, nil
}

// PlaylistByID fetches one of the authenticated user's playlists.
func (s *Service) PlaylistByID(ctx context.Context, id string) (*music.Playlist, error) {
	metrics.PlaylistFetchesTotal.Inc()

	token, ok := s.credential.Token()
	if !ok {
		return nil, music.ErrNotAuthenticated
	}
	if id == "" {
		return nil, fmt.Errorf("playlist id is required")
	}

	p, err := s.client.Playlist(ctx, token, id)
	if err != nil {
		metrics.ExternalErrorsTotal.Inc()
		return nil, err
	}
	playlist := mapPlaylist(*p)
	if err := playlist.Validate(); err != nil {
		return nil, fmt.Errorf("mapped playlist failed validation: %w", err)
	}
	return &playlist, nil
}

// mapTrack converts a raw SoundCloud track into the host schema. The
// mapping is total and side-effect-free; identical input yields identical
// output.
func mapTrack(t soundcloud.Track) music.Track {
	track := music.Track{
		Type:     music.TrackType,
		ID:       strconv.FormatInt(t.ID, 10),
		Title:    t.Title,
		Artists:  []music.Artist{{Name: t.User.Username, Type: music.ArtistType}},
		Duration: t.Duration,
		Artwork:  music.ParseArtwork(t.ArtworkURL),
		Genre:    t.Genre,
		Codecs:   []string{music.CodecMP3},
		BPM:      t.BPM,
	}
	if t.ReleaseYear > 0 {
		month, day := t.ReleaseMonth, t.ReleaseDay
		if month == 0 {
			month = 1
		}
		if day == 0 {
			day = 1
		}
		track.ReleaseDate = fmt.Sprintf("%04d-%02d-%02d", t.ReleaseYear, month, day)
	}
	return track
}

// mapPlaylist converts a raw playlist, dropping tracks that do not survive
// the host schema validation instead of failing the whole playlist.
func mapPlaylist(p soundcloud.Playlist) music.Playlist {
	tracks := make([]music.Track, 0, len(p.Tracks))
	for _, t := range p.Tracks {
		track := mapTrack(t)
		if err := track.Validate(); err != nil {
			slog.Warn("Dropping invalid playlist track", "trackID", track.ID, "error", err)
			continue
		}
		tracks = append(tracks, track)
	}
	return music.Playlist{
		Type:   music.PlaylistType,
		ID:     strconv.FormatInt(p.ID, 10),
		Title:  p.Title,
		Tracks: tracks,
	}
}
