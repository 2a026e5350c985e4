package filter

import (
	"context"
	"unicode/utf8"

	"github.com/osa030/tunedeck/internal/domain/song"
)

// TitleLengthConfig represents the configuration for TitleLengthFilter.
type TitleLengthConfig struct {
	MaxLength int `yaml:"max_length" mapstructure:"max_length" default:"100" validate:"gte=1,lte=1000"`
}

// TitleLengthFilter rejects songs whose title is too long to display.
type TitleLengthFilter struct {
	config *TitleLengthConfig
}

// NewTitleLengthFilter creates a new title length filter.
func NewTitleLengthFilter() *TitleLengthFilter {
	return &TitleLengthFilter{}
}

func (f *TitleLengthFilter) Name() string {
	return "title_length_filter"
}

func (f *TitleLengthFilter) Description() string {
	return "Rejects songs whose title exceeds the configured number of characters"
}

func (f *TitleLengthFilter) ReturnCodes() []string {
	return []string{"title_too_long"}
}

func (f *TitleLengthFilter) ValidateConfig(settings map[string]any) error {
	var config TitleLengthConfig
	if err := decodeSettings(settings, &config); err != nil {
		return err
	}
	f.config = &config
	return nil
}

func (f *TitleLengthFilter) AppliesTo(source song.Source) bool {
	return true
}

func (f *TitleLengthFilter) Check(ctx context.Context, req SongRequest) Result {
	if f.config == nil {
		return Accept()
	}
	if utf8.RuneCountInString(req.Song.Title) > f.config.MaxLength {
		return Reject("title_too_long")
	}
	return Accept()
}

func init() {
	Register("title_length_filter", func() Filter {
		return &TitleLengthFilter{}
	})
}
