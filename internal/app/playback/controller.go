package playback

import (
	"github.com/cockroachdb/errors"

	"github.com/osa030/tunedeck/internal/domain/playlist"
	"github.com/osa030/tunedeck/internal/domain/song"
)

// Errors
var (
	ErrNoSong          = errors.New("no song is selected")
	ErrNotPlaying      = errors.New("not playing")
	ErrNotPaused       = errors.New("not paused")
	ErrBoundaryReached = errors.New("playlist boundary reached")

	ErrAtBeginning = errors.Wrap(ErrBoundaryReached, "already at the beginning of the playlist")
	ErrAtEnd       = errors.Wrap(ErrBoundaryReached, "already at the end of the playlist")
)

// Controller moves a cursor over a playlist and tracks the play state.
// A failed transition leaves both the cursor and the state unchanged.
type Controller struct {
	playlist *playlist.Playlist

	current    playlist.Ref
	hasCurrent bool
	state      State
}

// NewController creates a playback controller over the playlist.
func NewController(pl *playlist.Playlist) *Controller {
	return &Controller{
		playlist: pl,
		state:    StateIdle,
	}
}

// State returns the current playback state.
func (c *Controller) State() State {
	return c.state
}

// Current returns the current song.
func (c *Controller) Current() (song.Song, bool) {
	if !c.hasCurrent {
		return song.Song{}, false
	}
	return c.playlist.Song(c.current)
}

// Start moves the cursor to ref and starts playing.
func (c *Controller) Start(ref playlist.Ref) (song.Song, error) {
	s, ok := c.playlist.Song(ref)
	if !ok {
		return song.Song{}, ErrNoSong
	}
	c.current = ref
	c.hasCurrent = true
	c.state = StatePlaying
	return s, nil
}

// Pause pauses the current song.
func (c *Controller) Pause() error {
	if c.state == StateIdle {
		return ErrNoSong
	}
	if c.state != StatePlaying {
		return ErrNotPlaying
	}
	c.state = StatePaused
	return nil
}

// Resume resumes the paused song.
func (c *Controller) Resume() error {
	if c.state == StateIdle {
		return ErrNoSong
	}
	if c.state != StatePaused {
		return ErrNotPaused
	}
	c.state = StatePlaying
	return nil
}

// peekForward returns the node after the current one without moving.
func (c *Controller) peekForward() (playlist.Ref, error) {
	if c.state == StateIdle || !c.hasCurrent {
		return 0, ErrNoSong
	}
	next, ok := c.playlist.Next(c.current)
	if !ok {
		return 0, ErrAtEnd
	}
	return next, nil
}

// peekBackward returns the node before the current one without moving.
func (c *Controller) peekBackward() (playlist.Ref, error) {
	if c.state == StateIdle || !c.hasCurrent {
		return 0, ErrNoSong
	}
	prev, ok := c.playlist.Previous(c.current)
	if !ok {
		return 0, ErrAtBeginning
	}
	return prev, nil
}

// SkipForward moves to the next song and starts playing it.
// Fails with ErrNoSong when idle and ErrAtEnd on the last song.
func (c *Controller) SkipForward() (song.Song, error) {
	next, err := c.peekForward()
	if err != nil {
		return song.Song{}, err
	}
	return c.Start(next)
}

// SkipBackward moves to the previous song and starts playing it.
// Fails with ErrNoSong when idle and ErrAtBeginning on the first song.
func (c *Controller) SkipBackward() (song.Song, error) {
	prev, err := c.peekBackward()
	if err != nil {
		return song.Song{}, err
	}
	return c.Start(prev)
}
