package music

import (
	"errors"
	"fmt"
)

// Error taxonomy for the adapter. ErrNotAuthenticated is surfaced tagged so
// the host can prompt for re-authorization instead of showing a generic
// failure; the other sentinels let callers tell an OAuth or stream
// resolution failure apart from a plain API error.
var (
	ErrNotAuthenticated = errors.New("not authenticated with soundcloud")
	ErrOAuthExchange    = errors.New("oauth code exchange failed")
	ErrStreamResolve    = errors.New("stream url resolution failed")
)

// APIError is a non-2xx response from the SoundCloud API. The original
// message is passed through unmodified.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("soundcloud api error (%d): %s", e.Status, e.Message)
	}
	return "soundcloud api error: " + e.Message
}
