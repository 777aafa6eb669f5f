package soundcloud

// Raw SoundCloud API records. Fields follow the wire names; mapping into the
// host schema happens in the media feature.

// User is the uploader of a track or owner of a playlist.
type User struct {
	Username string `json:"username"`
}

// Track is a track as returned by /tracks and /tracks/{id}.
type Track struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	User         User    `json:"user"`
	Duration     int     `json:"duration"`
	ArtworkURL   string  `json:"artwork_url"`
	Genre        string  `json:"genre"`
	ReleaseYear  int     `json:"release_year"`
	ReleaseMonth int     `json:"release_month"`
	ReleaseDay   int     `json:"release_day"`
	BPM          float64 `json:"bpm"`
	StreamURL    string  `json:"stream_url"`
	Streamable   bool    `json:"streamable"`
}

// Playlist is a playlist as returned by /me/playlists.
type Playlist struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Sharing string  `json:"sharing"`
	Tracks  []Track `json:"tracks"`
}

// Me is the authenticated account as returned by /me.
type Me struct {
	Username             string `json:"username"`
	AvatarURL            string `json:"avatar_url"`
	PermalinkURL         string `json:"permalink_url"`
	Country              string `json:"country"`
	Plan                 string `json:"plan"`
	PlaylistCount        int    `json:"playlist_count"`
	PrivatePlaylistCount int    `json:"private_playlists_count"`
}
