package filter

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/tunedeck/internal/domain/song"
)

func TestSongFieldsFilter_Check(t *testing.T) {
	tests := []struct {
		name         string
		song         song.Song
		wantAccepted bool
	}{
		{name: "complete song", song: song.Song{ID: "A", Title: "Alpha"}, wantAccepted: true},
		{name: "blank id", song: song.Song{ID: " ", Title: "Alpha"}, wantAccepted: false},
		{name: "blank title", song: song.Song{ID: "A", Title: ""}, wantAccepted: false},
		{name: "artist and genre optional", song: song.Song{ID: "A", Title: "Alpha"}, wantAccepted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &SongFieldsFilter{}
			result := f.Check(context.Background(), SongRequest{Song: tt.song, Source: song.SourceShell})

			assert.Equal(t, tt.wantAccepted, result.Accepted)
			if !tt.wantAccepted {
				assert.Equal(t, "invalid_input", result.Code)
			}
		})
	}
}

func TestGenreFilter_Check(t *testing.T) {
	tests := []struct {
		name         string
		allowed      []any
		genre        string
		wantAccepted bool
	}{
		{name: "allowed genre", allowed: []any{"rock", "pop"}, genre: "rock", wantAccepted: true},
		{name: "case insensitive", allowed: []any{"Rock"}, genre: "rock", wantAccepted: true},
		{name: "not allowed", allowed: []any{"rock"}, genre: "jazz", wantAccepted: false},
		{name: "empty genre", allowed: []any{"rock"}, genre: "", wantAccepted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewGenreFilter()
			require.NoError(t, f.ValidateConfig(map[string]any{"allowed": tt.allowed}))

			result := f.Check(context.Background(), SongRequest{
				Song:   song.Song{ID: "A", Title: "Alpha", Genre: tt.genre},
				Source: song.SourceShell,
			})

			assert.Equal(t, tt.wantAccepted, result.Accepted)
			if !tt.wantAccepted {
				assert.Equal(t, "genre_not_allowed", result.Code)
			}
		})
	}
}

func TestGenreFilter_ValidateConfig(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		wantErr  bool
	}{
		{name: "valid", settings: map[string]any{"allowed": []any{"rock"}}, wantErr: false},
		{name: "missing allowed", settings: map[string]any{}, wantErr: true},
		{name: "empty allowed", settings: map[string]any{"allowed": []any{}}, wantErr: true},
		{name: "blank genre", settings: map[string]any{"allowed": []any{""}}, wantErr: true},
		{name: "wrong type", settings: map[string]any{"allowed": map[string]any{"a": 1}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewGenreFilter().ValidateConfig(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenreFilter_WithoutConfigAcceptsAll(t *testing.T) {
	f := NewGenreFilter()
	result := f.Check(context.Background(), SongRequest{Song: song.Song{ID: "A", Genre: "noise"}})
	assert.True(t, result.Accepted)
}

func TestTitleLengthFilter_Check(t *testing.T) {
	tests := []struct {
		name         string
		settings     map[string]any
		title        string
		wantAccepted bool
	}{
		{name: "short title", settings: map[string]any{"max_length": 10}, title: "Alpha", wantAccepted: true},
		{name: "exact length", settings: map[string]any{"max_length": 5}, title: "Alpha", wantAccepted: true},
		{name: "too long", settings: map[string]any{"max_length": 4}, title: "Alpha", wantAccepted: false},
		{name: "counts runes", settings: map[string]any{"max_length": 3}, title: "夜に駆", wantAccepted: true},
		{name: "string setting", settings: map[string]any{"max_length": "4"}, title: "Alpha", wantAccepted: false},
		{name: "default limit", settings: nil, title: strings.Repeat("a", 101), wantAccepted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTitleLengthFilter()
			require.NoError(t, f.ValidateConfig(tt.settings))

			result := f.Check(context.Background(), SongRequest{Song: song.Song{ID: "A", Title: tt.title}})

			assert.Equal(t, tt.wantAccepted, result.Accepted)
			if !tt.wantAccepted {
				assert.Equal(t, "title_too_long", result.Code)
			}
		})
	}
}

func TestTitleLengthFilter_ValidateConfig(t *testing.T) {
	assert.Error(t, NewTitleLengthFilter().ValidateConfig(map[string]any{"max_length": 5000}))
	assert.Error(t, NewTitleLengthFilter().ValidateConfig(map[string]any{"max_length": "abc"}))
}

type fakePlaylist struct {
	counts map[string]int
}

func (p *fakePlaylist) ArtistCount(artist string) int {
	return p.counts[artist]
}

func TestArtistLimitFilter_Check(t *testing.T) {
	tests := []struct {
		name         string
		maxSongs     int
		existing     int
		artist       string
		wantAccepted bool
	}{
		{name: "below limit", maxSongs: 2, existing: 1, artist: "Queen", wantAccepted: true},
		{name: "at limit", maxSongs: 2, existing: 2, artist: "Queen", wantAccepted: false},
		{name: "unknown artist", maxSongs: 1, existing: 5, artist: "", wantAccepted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewArtistLimitFilter(&fakePlaylist{counts: map[string]int{tt.artist: tt.existing}})
			require.NoError(t, f.ValidateConfig(map[string]any{"max_songs": tt.maxSongs}))

			result := f.Check(context.Background(), SongRequest{
				Song:   song.Song{ID: "A", Title: "Alpha", Artist: tt.artist},
				Source: song.SourceShell,
			})

			assert.Equal(t, tt.wantAccepted, result.Accepted)
			if !tt.wantAccepted {
				assert.Equal(t, "artist_limit_exceeded", result.Code)
			}
		})
	}
}

func TestFilters_AppliesTo(t *testing.T) {
	tests := []struct {
		name        string
		filter      Filter
		wantShell   bool
		wantLibrary bool
	}{
		{name: "song fields", filter: &SongFieldsFilter{}, wantShell: true, wantLibrary: true},
		{name: "genre", filter: NewGenreFilter(), wantShell: true, wantLibrary: false},
		{name: "title length", filter: NewTitleLengthFilter(), wantShell: true, wantLibrary: true},
		{name: "artist limit", filter: NewArtistLimitFilter(nil), wantShell: true, wantLibrary: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantShell, tt.filter.AppliesTo(song.SourceShell))
			assert.Equal(t, tt.wantLibrary, tt.filter.AppliesTo(song.SourceLibrary))
		})
	}
}

func TestRegistry(t *testing.T) {
	registered := GetRegistered()

	for _, name := range []string{"song_fields_filter", "genre_filter", "title_length_filter", "artist_limit_filter"} {
		factory, ok := registered[name]
		require.True(t, ok, "%s should be registered", name)
		f := factory()
		assert.Equal(t, name, f.Name())
		assert.NotEmpty(t, f.Description())
		assert.NotEmpty(t, f.ReturnCodes())
	}
}
