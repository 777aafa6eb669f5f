package media

import "github.com/contre95/soundbridge/src/music"

// BuildQuery turns the host's parsed query into the SoundCloud search
// string. The policy, in order:
//
//  1. Any of artist/track/album present: concatenate them in that fixed
//     order, each term prefixed by a single space. If the host flagged any
//     of those three categories as fuzzy, the fuzzy remainder is appended
//     as well.
//  2. Otherwise a genre, if present, is the whole query.
//  3. Otherwise the raw free-text query.
func BuildQuery(q music.SearchQuery) string {
	if q.Artist != "" || q.Track != "" || q.Album != "" {
		searchQuery := ""
		if q.Artist != "" {
			searchQuery += " " + q.Artist
		}
		if q.Track != "" {
			searchQuery += " " + q.Track
		}
		if q.Album != "" {
			searchQuery += " " + q.Album
		}
		if q.FuzzyArtist || q.FuzzyTrack || q.FuzzyAlbum {
			searchQuery += " " + q.Fuzzy
		}
		return searchQuery
	}
	if q.Genre != "" {
		return q.Genre
	}
	return q.Query
}
