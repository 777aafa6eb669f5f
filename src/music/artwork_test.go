package music

import "testing"

func TestParseArtworkDerivesThreeSizes(t *testing.T) {
	art := ParseArtwork("https://i1.sndcdn.com/artworks-000123-large.jpg")
	if art == nil {
		t.Fatal("expected artwork to be returned")
	}

	if art.Small != "https://i1.sndcdn.com/artworks-000123-t67x67.jpg" {
		t.Errorf("unexpected small artwork url: %s", art.Small)
	}
	if art.Medium != "https://i1.sndcdn.com/artworks-000123-t300x300.jpg" {
		t.Errorf("unexpected medium artwork url: %s", art.Medium)
	}
	if art.Large != "https://i1.sndcdn.com/artworks-000123-t500x500.jpg" {
		t.Errorf("unexpected large artwork url: %s", art.Large)
	}
}

func TestParseArtworkEmptyURL(t *testing.T) {
	if art := ParseArtwork(""); art != nil {
		t.Errorf("expected nil artwork for empty url, got %+v", art)
	}
}
