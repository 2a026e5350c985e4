// Package song provides the Song domain entity.
package song

import "strings"

// Song represents a single entry of the playlist.
// A Song is created once when it is added and never mutated afterwards.
type Song struct {
	ID     string // Unique song ID
	Title  string // Song title
	Artist string // Artist name
	Genre  string // Genre
}

// Source represents where a song addition came from.
type Source string

const (
	SourceShell   Source = "SHELL"   // Entered through the interactive shell
	SourceLibrary Source = "LIBRARY" // Seeded from the configured library
)

// New creates a song with surrounding whitespace trimmed from every field.
func New(id, title, artist, genre string) Song {
	return Song{
		ID:     strings.TrimSpace(id),
		Title:  strings.TrimSpace(title),
		Artist: strings.TrimSpace(artist),
		Genre:  strings.TrimSpace(genre),
	}
}

// String returns the playlist display form "<id> : <title>".
func (s Song) String() string {
	return s.ID + " : " + s.Title
}

// IsByArtist reports whether the song is by the given artist, ignoring case.
func (s Song) IsByArtist(artist string) bool {
	return strings.EqualFold(strings.TrimSpace(s.Artist), strings.TrimSpace(artist))
}

// HasGenre reports whether the song belongs to one of the given genres, ignoring case.
func (s Song) HasGenre(genres []string) bool {
	for _, g := range genres {
		if strings.EqualFold(strings.TrimSpace(g), s.Genre) {
			return true
		}
	}
	return false
}
