// Package filter decides whether a song may enter the playlist.
package filter

import (
	"context"

	"github.com/osa030/tunedeck/internal/domain/song"
)

// SongRequest is a song waiting to be appended, with where it came from.
type SongRequest struct {
	Song   song.Song
	Source song.Source
}

// Result is the outcome of admission. Code is a message code when rejected.
type Result struct {
	Accepted bool
	Code     string
	Filter   string // set by Chain on rejection
}

// Accept lets the song in.
func Accept() Result {
	return Result{Accepted: true}
}

// Reject keeps the song out with a message code.
func Reject(code string) Result {
	return Result{Accepted: false, Code: code}
}

// Filter is one admission rule. Name is also the key under `filters` in the
// config file, and ValidateConfig receives that entry's settings.
type Filter interface {
	Name() string
	Description() string
	// ReturnCodes lists the message codes Check may reject with.
	ReturnCodes() []string
	ValidateConfig(settings map[string]any) error
	// AppliesTo reports whether songs from source are checked at all.
	AppliesTo(source song.Source) bool
	Check(ctx context.Context, req SongRequest) Result
}

var registry = make(map[string]func() Filter)

// Register makes a filter known to list-filters. Called from init.
func Register(name string, factory func() Filter) {
	registry[name] = factory
}

// GetRegistered returns the known filter factories keyed by name.
func GetRegistered() map[string]func() Filter {
	return registry
}
