// Package auth implements the authorization bridge: the OAuth2
// authorization-code exchange with SoundCloud, credential persistence
// through the host settings store, and the profile summary.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/contre95/soundbridge/src/features/metrics"
	"github.com/contre95/soundbridge/src/infra/soundcloud"
	"github.com/contre95/soundbridge/src/music"
	"github.com/google/uuid"
)

// stateTTL bounds how long an issued authorization state stays redeemable.
const stateTTL = 10 * time.Minute

// OAuthClient is the subset of the SoundCloud client this feature uses.
type OAuthClient interface {
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	Me(ctx context.Context, token string) (*soundcloud.Me, error)
}

// PlaylistPoller starts and stops the background playlist refresh loop.
type PlaylistPoller interface {
	StartPolling()
	StopPolling()
}

// Service handles the authorization flow.
type Service struct {
	client     OAuthClient
	credential *music.Credential
	store      music.SettingsStore
	notifier   music.RefreshNotifier
	poller     PlaylistPoller

	mu      sync.Mutex
	pending map[string]time.Time
}

// NewService creates a new auth service.
func NewService(client OAuthClient, credential *music.Credential, store music.SettingsStore, notifier music.RefreshNotifier, poller PlaylistPoller) *Service {
	return &Service{
		client:     client,
		credential: credential,
		store:      store,
		notifier:   notifier,
		poller:     poller,
		pending:    make(map[string]time.Time),
	}
}

// Bootstrap restores a persisted credential at startup and resumes polling
// when one is found.
func (s *Service) Bootstrap(ctx context.Context) error {
	authorized, ok, err := s.store.Get(ctx, music.SettingAuthorized)
	if err != nil {
		return err
	}
	if !ok || authorized != "true" {
		slog.Info("No persisted authorization, waiting for OAuth")
		return nil
	}

	token, ok, err := s.store.Get(ctx, music.SettingAccessToken)
	if err != nil {
		return err
	}
	if !ok || token == "" {
		slog.Warn("Authorized flag set but no access token persisted")
		return nil
	}

	s.credential.Set(token)
	s.poller.StartPolling()
	slog.Info("Restored persisted SoundCloud authorization")
	return nil
}

// StartOAuth2 issues a single-use state and returns the authorization URL
// the host should redirect the user's browser to.
func (s *Service) StartOAuth2() (url, state string) {
	state = uuid.New().String()

	s.mu.Lock()
	now := time.Now()
	for st, issued := range s.pending {
		if now.Sub(issued) > stateTTL {
			delete(s.pending, st)
		}
	}
	s.pending[state] = now
	s.mu.Unlock()

	return s.client.AuthorizeURL(state), state
}

// consumeState redeems a state exactly once. A second delivery of the same
// callback finds the state gone and is rejected.
func (s *Service) consumeState(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	issued, ok := s.pending[state]
	if !ok {
		return false
	}
	delete(s.pending, state)
	return time.Since(issued) <= stateTTL
}

// HandleCallback finishes the authorization flow: it exchanges the code for
// an access token, persists the credential, asks the host to refresh its
// playlists and starts polling. A failed exchange is terminal for this
// attempt; nothing is stored and the user must re-initiate OAuth.
func (s *Service) HandleCallback(ctx context.Context, state, code, authErr string) error {
	if !s.consumeState(state) {
		metrics.AuthorizationsTotal.WithLabelValues("invalid_state").Inc()
		return fmt.Errorf("unknown or already used authorization state")
	}
	if authErr != "" {
		metrics.AuthorizationsTotal.WithLabelValues("denied").Inc()
		return fmt.Errorf("authorization denied: %s", authErr)
	}
	if code == "" {
		metrics.AuthorizationsTotal.WithLabelValues("denied").Inc()
		return fmt.Errorf("authorization callback carried no code")
	}

	token, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		metrics.AuthorizationsTotal.WithLabelValues("exchange_failed").Inc()
		slog.Error("OAuth code exchange failed", "error", err)
		return err
	}

	s.credential.Set(token)
	if err := s.store.Set(ctx, music.SettingAccessToken, token); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}
	if err := s.store.Set(ctx, music.SettingAuthorized, "true"); err != nil {
		return fmt.Errorf("failed to persist authorized flag: %w", err)
	}

	s.notifier.RequestPlaylistsUpdate()
	s.poller.StartPolling()
	metrics.AuthorizationsTotal.WithLabelValues("success").Inc()
	slog.Info("SoundCloud authorization completed")
	return nil
}

// Deauthorize clears the credential everywhere and stops polling. Safe to
// call when already unauthorized.
func (s *Service) Deauthorize(ctx context.Context) error {
	s.credential.Clear()
	s.poller.StopPolling()
	s.notifier.RequestPlaylistsUpdate()

	if err := s.store.Delete(ctx, music.SettingAccessToken); err != nil {
		return fmt.Errorf("failed to remove persisted token: %w", err)
	}
	if err := s.store.Set(ctx, music.SettingAuthorized, "false"); err != nil {
		return fmt.Errorf("failed to persist authorized flag: %w", err)
	}
	slog.Info("SoundCloud authorization cleared")
	return nil
}

// Profile returns the account summary for the host settings UI.
func (s *Service) Profile(ctx context.Context) (*music.Profile, error) {
	token, ok := s.credential.Token()
	if !ok {
		return nil, music.ErrNotAuthenticated
	}

	me, err := s.client.Me(ctx, token)
	if err != nil {
		metrics.ExternalErrorsTotal.Inc()
		return nil, err
	}

	country := me.Country
	if country == "" {
		country = music.DefaultCountry
	}
	return &music.Profile{
		Username:             me.Username,
		Avatar:               music.ParseArtwork(me.AvatarURL),
		Permalink:            me.PermalinkURL,
		Country:              country,
		Plan:                 me.Plan,
		PlaylistCount:        me.PlaylistCount,
		PrivatePlaylistCount: me.PrivatePlaylistCount,
	}, nil
}
