// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// History display orders.
const (
	HistoryOrderSongID = "song_id"
	HistoryOrderCount  = "count"
	HistoryOrderNone   = "none"
)

// Config represents the application configuration.
type Config struct {
	Player   PlayerConfig            `yaml:"player"`
	Display  DisplayConfig           `yaml:"display"`
	Library  LibraryConfig           `yaml:"library"`
	Filters  map[string]FilterConfig `yaml:"filters"`
	Messages MessagesConfig          `yaml:"messages"`
}

// PlayerConfig represents player session configuration.
type PlayerConfig struct {
	RandomSeed  uint64       `yaml:"random_seed"` // 0 seeds from the clock
	SelectOnAdd *bool        `yaml:"select_on_add" default:"true"`
	Volume      VolumeConfig `yaml:"volume"`
}

// VolumeConfig represents the accepted volume range.
type VolumeConfig struct {
	Min int `yaml:"min" default:"0" validate:"gte=0"`
	Max int `yaml:"max" default:"100" validate:"gtefield=Min"`
}

// DisplayConfig represents presentation configuration.
type DisplayConfig struct {
	ShowMenu     *bool  `yaml:"show_menu" default:"true"`
	HistoryOrder string `yaml:"history_order" default:"song_id" validate:"oneof=song_id count none"`
}

// LibraryConfig represents users and songs loaded at start-up.
type LibraryConfig struct {
	Users []string      `yaml:"users" validate:"dive,required"`
	Songs []LibrarySong `yaml:"songs" validate:"dive"`
}

// LibrarySong represents a song entry of the library.
type LibrarySong struct {
	ID     string `yaml:"id" validate:"required"`
	Title  string `yaml:"title" validate:"required"`
	Artist string `yaml:"artist"`
	Genre  string `yaml:"genre"`
}

// FilterConfig represents a filter's configuration.
type FilterConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// MessagesConfig represents user-facing messages.
type MessagesConfig struct {
	DefaultError        string `yaml:"default_error" default:"Something went wrong."`
	UserNotFound        string `yaml:"user_not_found" default:"User not found."`
	DuplicateUser       string `yaml:"duplicate_user" default:"User already exists."`
	SongNotFound        string `yaml:"song_not_found" default:"Song not found."`
	DuplicateID         string `yaml:"duplicate_id" default:"A song with this ID already exists."`
	NoUserSelected      string `yaml:"no_user_selected" default:"No user selected."`
	EmptyPlaylist       string `yaml:"empty_playlist" default:"No songs in the playlist."`
	NoSongSelected      string `yaml:"no_song_selected" default:"No song is selected."`
	BoundaryBeginning   string `yaml:"boundary_beginning" default:"Already at the beginning of the playlist."`
	BoundaryEnd         string `yaml:"boundary_end" default:"Already at the end of the playlist."`
	NotPlaying          string `yaml:"not_playing" default:"Nothing is playing."`
	NotPaused           string `yaml:"not_paused" default:"Playback is not paused."`
	InvalidInput        string `yaml:"invalid_input" default:"Invalid input. Please enter a valid option."`
	GenreNotAllowed     string `yaml:"genre_not_allowed" default:"This genre is not allowed in the playlist."`
	TitleTooLong        string `yaml:"title_too_long" default:"The song title is too long."`
	ArtistLimitExceeded string `yaml:"artist_limit_exceeded" default:"The playlist already has enough songs by this artist."`
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// finish applies env overrides and defaults, then validates.
func (c *Config) finish() error {
	if err := c.overrideFromEnv(); err != nil {
		return errors.Wrap(err, "failed to apply environment overrides")
	}

	if err := defaults.Set(c); err != nil {
		return errors.Wrap(err, "failed to set defaults")
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "config validation failed")
	}
	return nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() error {
	if v := os.Getenv("TUNEDECK_RANDOM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid TUNEDECK_RANDOM_SEED %q", v)
		}
		c.Player.RandomSeed = seed
	}
	if v := os.Getenv("TUNEDECK_HISTORY_ORDER"); v != "" {
		c.Display.HistoryOrder = v
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	seen := make(map[string]struct{}, len(c.Library.Songs))
	for _, s := range c.Library.Songs {
		if _, ok := seen[s.ID]; ok {
			return errors.Newf("library song id %q is listed more than once", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

// GetMessage returns the message for the given code.
func (c *Config) GetMessage(code string) string {
	switch code {
	case "user_not_found":
		return c.Messages.UserNotFound
	case "duplicate_user":
		return c.Messages.DuplicateUser
	case "song_not_found":
		return c.Messages.SongNotFound
	case "duplicate_id":
		return c.Messages.DuplicateID
	case "no_user_selected":
		return c.Messages.NoUserSelected
	case "empty_playlist":
		return c.Messages.EmptyPlaylist
	case "no_song_selected":
		return c.Messages.NoSongSelected
	case "boundary_beginning":
		return c.Messages.BoundaryBeginning
	case "boundary_end":
		return c.Messages.BoundaryEnd
	case "not_playing":
		return c.Messages.NotPlaying
	case "not_paused":
		return c.Messages.NotPaused
	case "invalid_input":
		return c.Messages.InvalidInput
	case "genre_not_allowed":
		return c.Messages.GenreNotAllowed
	case "title_too_long":
		return c.Messages.TitleTooLong
	case "artist_limit_exceeded":
		return c.Messages.ArtistLimitExceeded
	default:
		return c.Messages.DefaultError
	}
}

// SelectOnAdd reports whether a newly added user becomes the current user.
func (c *Config) SelectOnAdd() bool {
	return c.Player.SelectOnAdd == nil || *c.Player.SelectOnAdd
}

// ShowMenu reports whether the shell prints the menu before each prompt.
func (c *Config) ShowMenu() bool {
	return c.Display.ShowMenu == nil || *c.Display.ShowMenu
}

// IsFilterEnabled checks if a filter is enabled.
func (c *Config) IsFilterEnabled(filterName string) bool {
	if f, ok := c.Filters[filterName]; ok {
		return f.Enabled
	}
	return false
}

// GetFilterSettings returns the settings for a filter.
func (c *Config) GetFilterSettings(filterName string) map[string]any {
	if f, ok := c.Filters[filterName]; ok {
		return f.Settings
	}
	return nil
}
