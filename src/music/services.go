package music

import "context"

// Settings keys persisted through the host settings store.
const (
	SettingAccessToken = "accessToken"
	SettingAuthorized  = "authorized"
)

// SettingsStore is the host's settings persistence, seen as a key/value
// store. The adapter owns the credential for the process lifetime; the
// store only provides durability across restarts.
type SettingsStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// RefreshNotifier signals the host that its static playlist state is stale
// and should be re-fetched. Implementations must not block the caller on
// slow delivery.
type RefreshNotifier interface {
	RequestPlaylistsUpdate()
}
