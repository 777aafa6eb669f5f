package music

import "fmt"

// PlaylistType is the playlist entry type discriminator in the host schema.
const PlaylistType = "playlist"

// Playlist is a playlist in the host media-manager schema.
type Playlist struct {
	Type   string  `json:"type"`
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Tracks []Track `json:"tracks"`
}

// TotalDuration returns the combined duration of all tracks in milliseconds.
func (p *Playlist) TotalDuration() int {
	total := 0
	for _, t := range p.Tracks {
		total += t.Duration
	}
	return total
}

// Validate validates the playlist fields.
func (p *Playlist) Validate() error {
	if p.Type != PlaylistType {
		return fmt.Errorf("playlist type must be \"playlist\", got %q", p.Type)
	}
	if p.ID == "" {
		return fmt.Errorf("playlist id cannot be empty")
	}
	for i := range p.Tracks {
		if err := p.Tracks[i].Validate(); err != nil {
			return fmt.Errorf("invalid track in playlist at index %d: %w", i, err)
		}
	}
	return nil
}
