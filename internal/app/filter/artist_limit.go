package filter

import (
	"context"

	"github.com/osa030/tunedeck/internal/domain/song"
)

// ArtistLimitConfig represents the configuration for ArtistLimitFilter.
type ArtistLimitConfig struct {
	MaxSongs int `yaml:"max_songs" mapstructure:"max_songs" default:"10" validate:"gte=1"`
}

// PlaylistReader interface for accessing playlist data.
type PlaylistReader interface {
	ArtistCount(artist string) int
}

// ArtistLimitFilter caps the number of songs per artist in the playlist.
type ArtistLimitFilter struct {
	playlist PlaylistReader
	config   *ArtistLimitConfig
}

// NewArtistLimitFilter creates a new artist limit filter.
func NewArtistLimitFilter(playlist PlaylistReader) *ArtistLimitFilter {
	return &ArtistLimitFilter{
		playlist: playlist,
	}
}

func (f *ArtistLimitFilter) Name() string {
	return "artist_limit_filter"
}

func (f *ArtistLimitFilter) Description() string {
	return "Rejects songs once the playlist holds the configured number of songs by the same artist"
}

func (f *ArtistLimitFilter) ReturnCodes() []string {
	return []string{"artist_limit_exceeded"}
}

func (f *ArtistLimitFilter) ValidateConfig(settings map[string]any) error {
	var config ArtistLimitConfig
	if err := decodeSettings(settings, &config); err != nil {
		return err
	}
	f.config = &config
	return nil
}

func (f *ArtistLimitFilter) AppliesTo(source song.Source) bool {
	return source == song.SourceShell
}

func (f *ArtistLimitFilter) Check(ctx context.Context, req SongRequest) Result {
	if f.config == nil || f.playlist == nil || req.Song.Artist == "" {
		return Accept()
	}
	if f.playlist.ArtistCount(req.Song.Artist) >= f.config.MaxSongs {
		return Reject("artist_limit_exceeded")
	}
	return Accept()
}

func init() {
	// Playlist reader is injected when the filter is instantiated in the session manager.
	Register("artist_limit_filter", func() Filter {
		return &ArtistLimitFilter{}
	})
}
