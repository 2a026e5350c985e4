// Package playback tracks which playlist song is current and whether it plays.
package playback

// State is the player state shown by Now Playing.
type State int

const (
	StateIdle State = iota // nothing chosen yet
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}
