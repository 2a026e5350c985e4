package playback

import "github.com/osa030/tunedeck/internal/domain/song"

// EventType represents a playback event type.
type EventType int

const (
	EventSongStarted   EventType = iota // Song started by play or random play
	EventSongSkipped                    // Cursor moved to a neighbour
	EventStateChanged                   // Playback state changed (pause/resume)
	EventVolumeChanged                  // Volume level was adjusted
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventSongStarted:
		return "song_started"
	case EventSongSkipped:
		return "song_skipped"
	case EventStateChanged:
		return "state_changed"
	case EventVolumeChanged:
		return "volume_changed"
	default:
		return "unknown"
	}
}

// Event represents a playback event.
type Event struct {
	Type       EventType
	Song       *song.Song // Current song (nil for some events)
	State      State      // Playback state after the event
	Username   string     // User the event was recorded for
	Volume     int        // Volume level (EventVolumeChanged only)
	SequenceNo uint64     // Assigned on broadcast
}
