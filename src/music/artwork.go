package music

import "strings"

// Artwork carries the three image-size variants the host UI expects.
type Artwork struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// SoundCloud serves artwork under a single "-large" URL; other sizes are
// addressed by swapping the suffix.
const (
	artworkSuffix       = "-large"
	artworkSuffixSmall  = "-t67x67"
	artworkSuffixMedium = "-t300x300"
	artworkSuffixLarge  = "-t500x500"
)

// ParseArtwork derives the three host artwork URLs from a SoundCloud
// artwork_url. Returns nil when the track has no artwork.
func ParseArtwork(url string) *Artwork {
	if url == "" {
		return nil
	}
	return &Artwork{
		Small:  strings.Replace(url, artworkSuffix, artworkSuffixSmall, 1),
		Medium: strings.Replace(url, artworkSuffix, artworkSuffixMedium, 1),
		Large:  strings.Replace(url, artworkSuffix, artworkSuffixLarge, 1),
	}
}
