package song

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New("  s1 ", " Yesterday ", "The Beatles ", " rock")

	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, "Yesterday", s.Title)
	assert.Equal(t, "The Beatles", s.Artist)
	assert.Equal(t, "rock", s.Genre)
}

func TestSong_String(t *testing.T) {
	s := Song{ID: "s1", Title: "Yesterday"}
	assert.Equal(t, "s1 : Yesterday", s.String())
}

func TestSong_IsByArtist(t *testing.T) {
	tests := []struct {
		name     string
		artist   string
		query    string
		expected bool
	}{
		{name: "exact match", artist: "Queen", query: "Queen", expected: true},
		{name: "case insensitive", artist: "Queen", query: "queen", expected: true},
		{name: "surrounding spaces", artist: "Queen", query: " Queen ", expected: true},
		{name: "different artist", artist: "Queen", query: "ABBA", expected: false},
		{name: "empty artist", artist: "", query: "Queen", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Song{ID: "s1", Artist: tt.artist}
			assert.Equal(t, tt.expected, s.IsByArtist(tt.query))
		})
	}
}

func TestSong_HasGenre(t *testing.T) {
	tests := []struct {
		name     string
		genre    string
		genres   []string
		expected bool
	}{
		{name: "listed genre", genre: "rock", genres: []string{"pop", "rock"}, expected: true},
		{name: "case insensitive", genre: "Jazz", genres: []string{"jazz"}, expected: true},
		{name: "not listed", genre: "metal", genres: []string{"pop", "rock"}, expected: false},
		{name: "empty list", genre: "rock", genres: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Song{ID: "s1", Genre: tt.genre}
			assert.Equal(t, tt.expected, s.HasGenre(tt.genres))
		})
	}
}
