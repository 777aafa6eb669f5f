// Package soundcloud is the REST client for the SoundCloud public API. The
// base URLs and HTTP clients are plain fields so tests can point the client
// at an httptest server.
package soundcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/contre95/soundbridge/src/music"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL    = "https://api.soundcloud.com"
	defaultConnectURL = "https://soundcloud.com/connect"
)

// Client talks to the SoundCloud API. Authenticated calls attach the access
// token as a request parameter; anonymous calls attach the client id.
type Client struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string

	BaseURL    string
	ConnectURL string

	// HTTP performs all API calls. Resolver performs the short HEAD
	// request that follows stream URL redirects.
	HTTP     *http.Client
	Resolver *http.Client

	limiter *rate.Limiter
}

// NewClient creates a client with production defaults.
func NewClient(clientID, clientSecret, redirectURI string) *Client {
	return &Client{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURI:  redirectURI,
		BaseURL:      defaultBaseURL,
		ConnectURL:   defaultConnectURL,
		HTTP:         &http.Client{Timeout: 10 * time.Second},
		Resolver:     &http.Client{Timeout: 2 * time.Second},
		limiter:      rate.NewLimiter(rate.Every(100*time.Millisecond), 10),
	}
}

// SearchTracks queries /tracks with the built search string.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	params := url.Values{
		"q":     {query},
		"limit": {strconv.Itoa(limit)},
	}
	var tracks []Track
	if err := c.get(ctx, "/tracks", params, "", &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// GetTrack fetches a single track by id.
func (c *Client) GetTrack(ctx context.Context, id string) (*Track, error) {
	var track Track
	if err := c.get(ctx, "/tracks/"+url.PathEscape(id), nil, "", &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// Playlists lists the authenticated user's playlists.
func (c *Client) Playlists(ctx context.Context, token string) ([]Playlist, error) {
	var playlists []Playlist
	if err := c.get(ctx, "/me/playlists", nil, token, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// Playlist fetches one of the authenticated user's playlists by id.
func (c *Client) Playlist(ctx context.Context, token, id string) (*Playlist, error) {
	var playlist Playlist
	if err := c.get(ctx, "/me/playlists/"+url.PathEscape(id), nil, token, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// Me fetches the authenticated account.
func (c *Client) Me(ctx context.Context, token string) (*Me, error) {
	var me Me
	if err := c.get(ctx, "/me", nil, token, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// SignStreamURL appends the client id so the stream endpoint accepts the
// request without a session.
func (c *Client) SignStreamURL(raw string) string {
	return raw + "?client_id=" + c.ClientID
}

// ResolveStreamURL follows redirects on a signed stream URL and returns the
// final playable location. Some playback clients do not follow redirects
// themselves, so the adapter resolves them up front.
func (c *Client) ResolveStreamURL(ctx context.Context, streamURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, streamURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", music.ErrStreamResolve, err)
	}
	resp, err := c.Resolver.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", music.ErrStreamResolve, err)
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: %s", music.ErrStreamResolve, resp.Status)
	}
	return resp.Request.URL.String(), nil
}

// get performs an authenticated or anonymous GET and decodes the JSON body.
func (c *Client) get(ctx context.Context, path string, params url.Values, token string, out any) error {
	if params == nil {
		params = url.Values{}
	}
	if token != "" {
		params.Set("oauth_token", token)
	} else {
		params.Set("client_id", c.ClientID)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &music.APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return &music.APIError{Status: resp.StatusCode, Message: msg}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
