package media

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/contre95/soundbridge/src/features/config"
	"github.com/contre95/soundbridge/src/infra/soundcloud"
	"github.com/contre95/soundbridge/src/music"
)

type fakeStreamingClient struct {
	searchTracks []soundcloud.Track
	searchErr    error
	track        *soundcloud.Track
	trackErr     error
	playlists    []soundcloud.Playlist
	playlistsErr error
	playlist     *soundcloud.Playlist
	resolveErr   error

	lastQuery     string
	lastLimit     int
	resolvedInput string
	playlistCalls int
}

func (f *fakeStreamingClient) SearchTracks(ctx context.Context, query string, limit int) ([]soundcloud.Track, error) {
	f.lastQuery = query
	f.lastLimit = limit
	return f.searchTracks, f.searchErr
}

func (f *fakeStreamingClient) GetTrack(ctx context.Context, id string) (*soundcloud.Track, error) {
	return f.track, f.trackErr
}

func (f *fakeStreamingClient) Playlists(ctx context.Context, token string) ([]soundcloud.Playlist, error) {
	f.playlistCalls++
	return f.playlists, f.playlistsErr
}

func (f *fakeStreamingClient) Playlist(ctx context.Context, token, id string) (*soundcloud.Playlist, error) {
	f.playlistCalls++
	return f.playlist, nil
}

func (f *fakeStreamingClient) SignStreamURL(raw string) string {
	return raw + "?client_id=abc"
}

func (f *fakeStreamingClient) ResolveStreamURL(ctx context.Context, raw string) (string, error) {
	f.resolvedInput = raw
	if f.resolveErr != nil {
		return "", f.resolveErr
	}
	return "https://cdn.example.com/final.mp3", nil
}

func newTestService(client *fakeStreamingClient, credential *music.Credential) *Service {
	cfg := config.NewManager(&config.Config{})
	cfg.Get().SoundCloud.SearchLimit = 25
	cfg.Get().SoundCloud.PollIntervalSeconds = 180
	return NewService(cfg, client, credential, noopNotifier{})
}

type noopNotifier struct{}

func (noopNotifier) RequestPlaylistsUpdate() {}

func TestSearchDropsUnstreamableTracks(t *testing.T) {
	client := &fakeStreamingClient{
		searchTracks: []soundcloud.Track{
			{ID: 1, Title: "playable", User: soundcloud.User{Username: "dj"}, Streamable: true},
			{ID: 2, Title: "blocked", User: soundcloud.User{Username: "dj"}, Streamable: false},
		},
	}
	service := newTestService(client, &music.Credential{})

	results, err := service.Search(context.Background(), music.SearchQuery{Track: "anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 streamable result, got %d", len(results))
	}
	if results[0].ID != "1" {
		t.Errorf("unexpected track id: %s", results[0].ID)
	}
	if results[0].Confidence != music.NeutralConfidence {
		t.Errorf("expected neutral confidence, got %v", results[0].Confidence)
	}
	if client.lastLimit != 25 {
		t.Errorf("expected configured search limit to be passed, got %d", client.lastLimit)
	}
}

func TestSearchDropsInvalidMappedTracks(t *testing.T) {
	client := &fakeStreamingClient{
		searchTracks: []soundcloud.Track{
			{ID: 1, Title: "intact", User: soundcloud.User{Username: "dj"}, Streamable: true},
			{ID: 2, User: soundcloud.User{Username: "dj"}, Streamable: true},
		},
	}
	service := newTestService(client, &music.Credential{})

	results, err := service.Search(context.Background(), music.SearchQuery{Track: "anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].ID != "1" {
		t.Errorf("untitled track must not reach the host, got %+v", results)
	}
}

func TestSearchPassesBuiltQuery(t *testing.T) {
	client := &fakeStreamingClient{}
	service := newTestService(client, &music.Credential{})

	if _, err := service.Search(context.Background(), music.SearchQuery{Genre: "jazz"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastQuery != "jazz" {
		t.Errorf("expected genre query, got %q", client.lastQuery)
	}
}

func TestPlaySignsThenResolvesStreamURL(t *testing.T) {
	client := &fakeStreamingClient{
		track: &soundcloud.Track{
			ID:        42,
			Title:     "deep cut",
			User:      soundcloud.User{Username: "dj"},
			StreamURL: "https://api.soundcloud.com/tracks/42/stream",
		},
	}
	service := newTestService(client, &music.Credential{})

	track, err := service.Play(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.resolvedInput != "https://api.soundcloud.com/tracks/42/stream?client_id=abc" {
		t.Errorf("stream url must be signed before resolution, got %q", client.resolvedInput)
	}
	if track.StreamURL != "https://cdn.example.com/final.mp3" {
		t.Errorf("expected resolved stream url, got %q", track.StreamURL)
	}
}

func TestPlayPropagatesResolveFailure(t *testing.T) {
	client := &fakeStreamingClient{
		track:      &soundcloud.Track{ID: 42, StreamURL: "https://api.soundcloud.com/tracks/42/stream"},
		resolveErr: fmt.Errorf("%w: HEAD timed out", music.ErrStreamResolve),
	}
	service := newTestService(client, &music.Credential{})

	if _, err := service.Play(context.Background(), "42"); !errors.Is(err, music.ErrStreamResolve) {
		t.Errorf("expected stream resolve error, got %v", err)
	}
}

func TestPlayRejectsTrackWithoutStreamURL(t *testing.T) {
	client := &fakeStreamingClient{track: &soundcloud.Track{ID: 7, Title: "preview only"}}
	service := newTestService(client, &music.Credential{})

	_, err := service.Play(context.Background(), "7")
	var apiErr *music.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestPlaylistsRequireAuthorization(t *testing.T) {
	client := &fakeStreamingClient{}
	service := newTestService(client, &music.Credential{})

	_, err := service.Playlists(context.Background())
	if !errors.Is(err, music.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
	if client.playlistCalls != 0 {
		t.Errorf("no external call may be made without a credential, got %d", client.playlistCalls)
	}
}

func TestPlaylistsEmptyAccount(t *testing.T) {
	client := &fakeStreamingClient{}
	credential := &music.Credential{}
	credential.Set("tok")
	service := newTestService(client, credential)

	playlists, err := service.Playlists(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if playlists == nil || len(playlists) != 0 {
		t.Errorf("expected empty playlist slice, got %v", playlists)
	}
}

func TestPlaylistsDropInvalidTracks(t *testing.T) {
	client := &fakeStreamingClient{
		playlists: []soundcloud.Playlist{{
			ID:    10,
			Title: "Mixed Bag",
			Tracks: []soundcloud.Track{
				{ID: 1, Title: "intact", User: soundcloud.User{Username: "dj"}},
				{ID: 2, User: soundcloud.User{Username: "dj"}},
			},
		}},
	}
	credential := &music.Credential{}
	credential.Set("tok")
	service := newTestService(client, credential)

	playlists, err := service.Playlists(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(playlists) != 1 {
		t.Fatalf("expected 1 playlist, got %d", len(playlists))
	}
	if len(playlists[0].Tracks) != 1 || playlists[0].Tracks[0].ID != "1" {
		t.Errorf("untitled track must not reach the host, got %+v", playlists[0].Tracks)
	}
}

func TestMapTrackReleaseDateDefaults(t *testing.T) {
	track := mapTrack(soundcloud.Track{ID: 1, ReleaseYear: 1998})
	if track.ReleaseDate != "1998-01-01" {
		t.Errorf("missing month and day must default to 1, got %q", track.ReleaseDate)
	}

	track = mapTrack(soundcloud.Track{ID: 1, ReleaseYear: 2004, ReleaseMonth: 11, ReleaseDay: 3})
	if track.ReleaseDate != "2004-11-03" {
		t.Errorf("unexpected release date: %q", track.ReleaseDate)
	}

	track = mapTrack(soundcloud.Track{ID: 1})
	if track.ReleaseDate != "" {
		t.Errorf("no release year must yield no release date, got %q", track.ReleaseDate)
	}
}

func TestMapTrackIsDeterministic(t *testing.T) {
	raw := soundcloud.Track{
		ID:         99,
		Title:      "Encore",
		User:       soundcloud.User{Username: "headliner"},
		Duration:   214000,
		ArtworkURL: "https://i1.sndcdn.com/artworks-000099-large.jpg",
		Genre:      "house",
		BPM:        124,
	}
	if !reflect.DeepEqual(mapTrack(raw), mapTrack(raw)) {
		t.Error("mapping the same raw track twice must yield identical results")
	}
}
