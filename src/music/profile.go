package music

// DefaultCountry is reported when the streaming account has no country set.
const DefaultCountry = "unknown"

// Profile is the account summary shown in the host's settings UI.
type Profile struct {
	Username             string   `json:"username"`
	Avatar               *Artwork `json:"avatar,omitempty"`
	Permalink            string   `json:"permalink"`
	Country              string   `json:"country"`
	Plan                 string   `json:"plan"`
	PlaylistCount        int      `json:"playlist_count"`
	PrivatePlaylistCount int      `json:"private_playlist_count"`
}
