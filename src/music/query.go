package music

// SearchQuery is the structured query the host media manager parses out of
// the user's spoken or typed request. All fields are optional; the fuzzy
// flags mark which of artist/track/album the host was unsure about.
type SearchQuery struct {
	Artist string `json:"artist"`
	Track  string `json:"track"`
	Album  string `json:"album"`
	Genre  string `json:"genre"`
	Query  string `json:"query"`
	Fuzzy  string `json:"fuzzy"`

	FuzzyArtist bool `json:"fuzzyArtist"`
	FuzzyTrack  bool `json:"fuzzyTrack"`
	FuzzyAlbum  bool `json:"fuzzyAlbum"`
}
