package filter

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tunedeck/internal/domain/song"
)

// GenreConfig represents the configuration for GenreFilter.
type GenreConfig struct {
	Allowed []string `yaml:"allowed" mapstructure:"allowed" validate:"required,min=1,dive,required"`
}

// GenreFilter only admits songs of the allowed genres.
type GenreFilter struct {
	config *GenreConfig
}

// NewGenreFilter creates a new genre filter.
func NewGenreFilter() *GenreFilter {
	return &GenreFilter{}
}

func (f *GenreFilter) Name() string {
	return "genre_filter"
}

func (f *GenreFilter) Description() string {
	return "Only admits songs whose genre is in the allowed list"
}

func (f *GenreFilter) ReturnCodes() []string {
	return []string{"genre_not_allowed"}
}

func (f *GenreFilter) ValidateConfig(settings map[string]any) error {
	var config GenreConfig
	if err := decodeSettings(settings, &config); err != nil {
		return err
	}
	f.config = &config
	zlog.Info().Msgf("genre filter config: %+v", config)
	return nil
}

func (f *GenreFilter) AppliesTo(source song.Source) bool {
	// The configured library is trusted
	return source == song.SourceShell
}

func (f *GenreFilter) Check(ctx context.Context, req SongRequest) Result {
	if f.config == nil {
		return Accept()
	}
	if !req.Song.HasGenre(f.config.Allowed) {
		return Reject("genre_not_allowed")
	}
	return Accept()
}

func init() {
	Register("genre_filter", func() Filter {
		return &GenreFilter{}
	})
}
