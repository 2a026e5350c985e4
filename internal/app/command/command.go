// Package command provides the command dispatcher between the shell and the player session.
package command

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidInput is returned for unknown commands and malformed arguments.
var ErrInvalidInput = errors.New("invalid input")

// Name identifies a command.
type Name string

const (
	AddUser      Name = "add_user"
	SelectUser   Name = "select_user"
	AddSong      Name = "add_song"
	Play         Name = "play"
	PlayRandom   Name = "play_random"
	History      Name = "history"
	SkipPrevious Name = "skip_previous"
	SkipNext     Name = "skip_next"
	Volume       Name = "volume"
	Playlist     Name = "playlist"
	Pause        Name = "pause"
	Resume       Name = "resume"
	Status       Name = "status"
	Exit         Name = "exit"
)

// Command is a named operation with untyped arguments.
type Command struct {
	Name Name
	Args map[string]any
}

// New creates a command.
func New(name Name, args map[string]any) Command {
	return Command{Name: name, Args: args}
}

// Result is the success payload of a command.
type Result struct {
	Lines []string // Lines to display
	Exit  bool     // True when the shell should stop
}

// lines builds a Result from display lines.
func lines(l ...string) Result {
	return Result{Lines: l}
}

// Spec describes a command for help output.
type Spec struct {
	Name        Name
	Description string
	Args        []string
}

// specs lists all commands in menu order.
var specs = []Spec{
	{Name: AddUser, Description: "Register a user", Args: []string{"username"}},
	{Name: SelectUser, Description: "Select the current user", Args: []string{"username"}},
	{Name: AddSong, Description: "Append a song to the playlist", Args: []string{"id", "title", "artist", "genre"}},
	{Name: Play, Description: "Play a song by ID", Args: []string{"song_id"}},
	{Name: PlayRandom, Description: "Play a random song"},
	{Name: History, Description: "Show the current user's listening history"},
	{Name: SkipPrevious, Description: "Play the previous song"},
	{Name: SkipNext, Description: "Play the next song"},
	{Name: Volume, Description: "Adjust the volume", Args: []string{"level"}},
	{Name: Playlist, Description: "Show the playlist"},
	{Name: Pause, Description: "Pause the current song"},
	{Name: Resume, Description: "Resume the current song"},
	{Name: Status, Description: "Show the current user and song"},
	{Name: Exit, Description: "Exit the program"},
}

// Specs returns all command descriptions.
func Specs() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}
