package filter

import (
	"context"
	"strings"

	"github.com/osa030/tunedeck/internal/domain/song"
)

// SongFieldsFilter rejects songs without an ID or title.
type SongFieldsFilter struct{}

func (f *SongFieldsFilter) Name() string {
	return "song_fields_filter"
}

func (f *SongFieldsFilter) Description() string {
	return "Rejects songs with a blank ID or title"
}

func (f *SongFieldsFilter) ReturnCodes() []string {
	return []string{"invalid_input"}
}

func (f *SongFieldsFilter) ValidateConfig(settings map[string]any) error {
	return nil
}

func (f *SongFieldsFilter) AppliesTo(source song.Source) bool {
	return true
}

func (f *SongFieldsFilter) Check(ctx context.Context, req SongRequest) Result {
	if strings.TrimSpace(req.Song.ID) == "" || strings.TrimSpace(req.Song.Title) == "" {
		return Reject("invalid_input")
	}
	return Accept()
}

func init() {
	Register("song_fields_filter", func() Filter {
		return &SongFieldsFilter{}
	})
}
