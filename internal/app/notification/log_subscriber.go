package notification

import (
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tunedeck/internal/app/playback"
)

// LogSubscriber writes every playback event as a structured debug log line.
type LogSubscriber struct {
	logger *zerolog.Logger
}

// NewLogSubscriber creates a subscriber that logs to the global logger.
func NewLogSubscriber() *LogSubscriber {
	return &LogSubscriber{logger: &zlog.Logger}
}

// NewLogSubscriberWithLogger creates a subscriber that logs to the given logger.
func NewLogSubscriberWithLogger(logger zerolog.Logger) *LogSubscriber {
	return &LogSubscriber{logger: &logger}
}

// Notify logs the event.
func (s *LogSubscriber) Notify(event playback.Event) error {
	e := s.logger.Debug().
		Uint64("seq", event.SequenceNo).
		Str("event", event.Type.String()).
		Str("state", event.State.String())
	if event.Username != "" {
		e = e.Str("user", event.Username)
	}
	if event.Song != nil {
		e = e.Str("song_id", event.Song.ID).Str("title", event.Song.Title)
	}
	if event.Type == playback.EventVolumeChanged {
		e = e.Int("volume", event.Volume)
	}
	e.Msg("playback event")
	return nil
}
