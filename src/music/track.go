package music

import (
	"fmt"
	"strings"
)

// Codec identifiers the host's playback pipeline understands. SoundCloud
// transcoded streams are always delivered as mp3.
const CodecMP3 = "mp3"

// Entry type discriminators in the host schema.
const (
	TrackType  = "track"
	ArtistType = "artist"
)

// NeutralConfidence is the match-quality score attached to every search
// result. The adapter never computes a real relevance score, so results
// carry a fixed neutral value.
const NeutralConfidence = 0.5

// Artist is a single credited artist in the host track schema.
type Artist struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Track is a track in the host media-manager schema. It is the output of
// mapping a SoundCloud track record; Confidence is only set on search
// results and StreamURL only on play results.
type Track struct {
	Type        string   `json:"type"`
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artists     []Artist `json:"artist"`
	Duration    int      `json:"duration"`
	Artwork     *Artwork `json:"artwork,omitempty"`
	Genre       string   `json:"genre,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Codecs      []string `json:"codecs"`
	BPM         float64  `json:"bpm,omitempty"`
	StreamURL   string   `json:"stream_url,omitempty"`
	Confidence  float64  `json:"confidence,omitempty"`
}

// Validate validates the track fields before handing the track to the host.
func (t *Track) Validate() error {
	if t.Type != TrackType {
		return fmt.Errorf("track type must be \"track\", got %q", t.Type)
	}
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("track id cannot be empty")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("track title cannot be empty: id -> %s", t.ID)
	}
	if len(t.Artists) == 0 {
		return fmt.Errorf("track must have at least one artist: title -> %s", t.Title)
	}
	if t.Duration < 0 {
		return fmt.Errorf("duration cannot be negative, got %d", t.Duration)
	}
	if t.BPM < 0 {
		return fmt.Errorf("BPM cannot be negative, got %f", t.BPM)
	}
	if t.Confidence < 0 || t.Confidence > 1 {
		return fmt.Errorf("confidence must be within [0,1], got %f", t.Confidence)
	}
	return nil
}

// ArtistNames returns the credited artist names joined for display.
func (t *Track) ArtistNames() string {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
