package media

import (
	"testing"

	"github.com/contre95/soundbridge/src/features/config"
	"github.com/contre95/soundbridge/src/music"
)

type countingNotifier struct{ updates int }

func (n *countingNotifier) RequestPlaylistsUpdate() { n.updates++ }

func newPollService(client *fakeStreamingClient, credential *music.Credential, notifier *countingNotifier) *Service {
	cfg := config.NewManager(&config.Config{})
	cfg.Get().SoundCloud.PollIntervalSeconds = 180
	return NewService(cfg, client, credential, notifier)
}

func TestStartPollingIsSingleInstance(t *testing.T) {
	service := newTestService(&fakeStreamingClient{}, &music.Credential{})
	defer service.StopPolling()

	service.StartPolling()
	first := service.pollStop
	if first == nil {
		t.Fatal("polling did not start")
	}

	// A repeated authorization must not spawn a second loop.
	service.StartPolling()
	if service.pollStop != first {
		t.Error("second start must be a no-op while a loop is running")
	}
}

func TestRefreshPlaylistsNotifiesHost(t *testing.T) {
	notifier := &countingNotifier{}
	credential := &music.Credential{}
	credential.Set("tok")
	service := newPollService(&fakeStreamingClient{}, credential, notifier)

	service.refreshPlaylists()
	if notifier.updates != 1 {
		t.Errorf("a successful tick must notify the host once, got %d", notifier.updates)
	}
}

func TestRefreshPlaylistsFailureDoesNotNotify(t *testing.T) {
	notifier := &countingNotifier{}
	service := newPollService(&fakeStreamingClient{}, &music.Credential{}, notifier)

	// Unauthorized: the tick fails before any external call.
	service.refreshPlaylists()
	if notifier.updates != 0 {
		t.Errorf("a failed tick must not notify the host, got %d", notifier.updates)
	}

	credential := &music.Credential{}
	credential.Set("tok")
	client := &fakeStreamingClient{playlistsErr: &music.APIError{Status: 503, Message: "down"}}
	service = newPollService(client, credential, notifier)

	service.refreshPlaylists()
	if notifier.updates != 0 {
		t.Errorf("an upstream failure must not notify the host, got %d", notifier.updates)
	}
}

func TestStopPollingIsIdempotent(t *testing.T) {
	service := newTestService(&fakeStreamingClient{}, &music.Credential{})

	service.StopPolling()

	service.StartPolling()
	service.StopPolling()
	if service.pollStop != nil {
		t.Error("stop must clear the running loop")
	}
	service.StopPolling()
}
