package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/osa030/tunedeck/internal/app/playback"
	"github.com/osa030/tunedeck/internal/app/session"
	"github.com/osa030/tunedeck/internal/app/session/registry"
	"github.com/osa030/tunedeck/internal/domain/playlist"
	"github.com/osa030/tunedeck/internal/domain/song"
	"github.com/osa030/tunedeck/internal/domain/user"
	"github.com/osa030/tunedeck/internal/infra/config"
)

// Session is the player session driven by the dispatcher.
type Session interface {
	AddUser(username string) (bool, error)
	SelectUser(username string) error
	AddSong(ctx context.Context, s song.Song, source song.Source) error
	Play(songID string) (song.Song, error)
	PlayRandom() (song.Song, error)
	SkipForward() (song.Song, error)
	SkipBackward() (song.Song, error)
	Pause() (song.Song, error)
	Resume() (song.Song, error)
	AdjustVolume(level int) (int, error)
	Songs() []song.Song
	History() (string, []user.Entry, error)
	Status() session.Status
}

// Dispatcher executes commands against a session.
type Dispatcher struct {
	session  Session
	config   *config.Config
	validate *validator.Validate
}

// NewDispatcher creates a new dispatcher.
func NewDispatcher(s Session, cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		session:  s,
		config:   cfg,
		validate: validator.New(),
	}
}

// Execute runs a command and returns the lines to display.
func (d *Dispatcher) Execute(ctx context.Context, cmd Command) (Result, error) {
	switch cmd.Name {
	case AddUser:
		var args userArgs
		if err := decodeArgs(d.validate, cmd.Name, cmd.Args, &args); err != nil {
			return Result{}, err
		}
		selected, err := d.session.AddUser(args.Username)
		if err != nil {
			return Result{}, err
		}
		if selected {
			return lines(fmt.Sprintf("User %s added and selected.", strings.TrimSpace(args.Username))), nil
		}
		return lines(fmt.Sprintf("User %s added.", strings.TrimSpace(args.Username))), nil

	case SelectUser:
		var args userArgs
		if err := decodeArgs(d.validate, cmd.Name, cmd.Args, &args); err != nil {
			return Result{}, err
		}
		if err := d.session.SelectUser(args.Username); err != nil {
			return Result{}, err
		}
		return lines(fmt.Sprintf("Current user: %s", strings.TrimSpace(args.Username))), nil

	case AddSong:
		var args songArgs
		if err := decodeArgs(d.validate, cmd.Name, cmd.Args, &args); err != nil {
			return Result{}, err
		}
		s := song.New(args.ID, args.Title, args.Artist, args.Genre)
		if err := d.session.AddSong(ctx, s, song.SourceShell); err != nil {
			return Result{}, err
		}
		return lines(fmt.Sprintf("Song added: %s", s)), nil

	case Play:
		var args playArgs
		if err := decodeArgs(d.validate, cmd.Name, cmd.Args, &args); err != nil {
			return Result{}, err
		}
		s, err := d.session.Play(strings.TrimSpace(args.SongID))
		if err != nil {
			return Result{}, err
		}
		return lines("Playing: " + s.Title), nil

	case PlayRandom:
		s, err := d.session.PlayRandom()
		if err != nil {
			return Result{}, err
		}
		return lines("Playing random song: " + s.Title), nil

	case SkipPrevious:
		s, err := d.session.SkipBackward()
		if err != nil {
			return Result{}, err
		}
		return lines("Playing previous song: " + s.Title), nil

	case SkipNext:
		s, err := d.session.SkipForward()
		if err != nil {
			return Result{}, err
		}
		return lines("Playing next song: " + s.Title), nil

	case Pause:
		if _, err := d.session.Pause(); err != nil {
			return Result{}, err
		}
		return lines("Song Paused..."), nil

	case Resume:
		if _, err := d.session.Resume(); err != nil {
			return Result{}, err
		}
		return lines("Song Resumed..."), nil

	case Volume:
		var args volumeArgs
		if err := decodeArgs(d.validate, cmd.Name, cmd.Args, &args); err != nil {
			return Result{}, err
		}
		requested, err := args.level()
		if err != nil {
			return Result{}, err
		}
		level, err := d.session.AdjustVolume(requested)
		if err != nil {
			return Result{}, err
		}
		return lines(fmt.Sprintf("Volume adjusted to level: %d", level)), nil

	case Playlist:
		return d.playlist(), nil

	case History:
		return d.history()

	case Status:
		return d.status(), nil

	case Exit:
		return Result{Lines: []string{"Exiting program."}, Exit: true}, nil

	default:
		return Result{}, errors.Wrapf(ErrInvalidInput, "unknown command %q", cmd.Name)
	}
}

func (d *Dispatcher) playlist() Result {
	out := []string{"", "=== Playlist ==="}
	for _, s := range d.session.Songs() {
		out = append(out, s.String())
	}
	out = append(out, "================")
	return Result{Lines: out}
}

func (d *Dispatcher) history() (Result, error) {
	username, entries, err := d.session.History()
	if err != nil {
		return Result{}, err
	}

	sortHistory(entries, d.config.Display.HistoryOrder)

	out := []string{fmt.Sprintf("Listening history for user %s:", username)}
	for _, e := range entries {
		out = append(out, fmt.Sprintf("Song ID: %s, Listened: %d times", e.SongID, e.Count))
	}
	return Result{Lines: out}, nil
}

// sortHistory orders entries for display.
func sortHistory(entries []user.Entry, order string) {
	switch order {
	case config.HistoryOrderSongID:
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].SongID < entries[j].SongID
		})
	case config.HistoryOrderCount:
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count != entries[j].Count {
				return entries[i].Count > entries[j].Count
			}
			return entries[i].SongID < entries[j].SongID
		})
	}
}

func (d *Dispatcher) status() Result {
	st := d.session.Status()

	username := st.Username
	if username == "" {
		username = "(none)"
	}
	nowPlaying := "(none)"
	if st.Song != nil {
		nowPlaying = st.Song.String()
	}

	return lines(
		"User: "+username,
		"State: "+st.State.String(),
		"Now playing: "+nowPlaying,
		fmt.Sprintf("Songs: %d, Users: %d", st.SongCount, st.UserCount),
	)
}

// Code returns the message code for an error.
func Code(err error) string {
	var rejection *session.RejectionError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &rejection):
		return rejection.Code
	case errors.Is(err, registry.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, registry.ErrDuplicateUser):
		return "duplicate_user"
	case errors.Is(err, session.ErrSongNotFound):
		return "song_not_found"
	case errors.Is(err, playlist.ErrDuplicateID):
		return "duplicate_id"
	case errors.Is(err, session.ErrNoUserSelected):
		return "no_user_selected"
	case errors.Is(err, session.ErrEmptyPlaylist):
		return "empty_playlist"
	case errors.Is(err, playback.ErrAtBeginning):
		return "boundary_beginning"
	case errors.Is(err, playback.ErrAtEnd):
		return "boundary_end"
	case errors.Is(err, playback.ErrNoSong):
		return "no_song_selected"
	case errors.Is(err, playback.ErrNotPlaying):
		return "not_playing"
	case errors.Is(err, playback.ErrNotPaused):
		return "not_paused"
	case errors.Is(err, registry.ErrInvalidUsername),
		errors.Is(err, session.ErrInvalidVolume),
		errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return ""
	}
}

// Message renders an error as a user-visible line.
func (d *Dispatcher) Message(err error) string {
	return d.config.GetMessage(Code(err))
}
