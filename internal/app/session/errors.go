package session

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrSongNotFound   = errors.New("song not found")
	ErrNoUserSelected = errors.New("no user selected")
	ErrEmptyPlaylist  = errors.New("playlist is empty")
	ErrInvalidVolume  = errors.New("volume level out of range")
	ErrSongRejected   = errors.New("song rejected by filter")
)

// RejectionError describes a song addition refused by the filter chain.
type RejectionError struct {
	SongID string
	Filter string
	Code   string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("song %q rejected by %s: %s", e.SongID, e.Filter, e.Code)
}

// newRejectionError returns a RejectionError marked as ErrSongRejected.
func newRejectionError(songID, filterName, code string) error {
	return errors.Mark(&RejectionError{SongID: songID, Filter: filterName, Code: code}, ErrSongRejected)
}
