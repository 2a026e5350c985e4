package playlist

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/tunedeck/internal/domain/song"
)

func songIDs(p *Playlist) []string {
	ids := make([]string, 0, p.Len())
	for _, s := range p.Songs() {
		ids = append(ids, s.ID)
	}
	return ids
}

func newPlaylist(t *testing.T, ids ...string) *Playlist {
	t.Helper()
	p := New()
	for _, id := range ids {
		_, err := p.Append(song.Song{ID: id, Title: "Title " + id})
		require.NoError(t, err)
	}
	return p
}

func TestPlaylist_Append(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected []string
	}{
		{
			name:     "empty playlist",
			ids:      []string{},
			expected: []string{},
		},
		{
			name:     "single song",
			ids:      []string{"song-1"},
			expected: []string{"song-1"},
		},
		{
			name:     "multiple songs",
			ids:      []string{"song-1", "song-2", "song-3"},
			expected: []string{"song-1", "song-2", "song-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlaylist(t, tt.ids...)

			assert.Equal(t, tt.expected, songIDs(p))
			assert.Equal(t, len(tt.ids), p.Len())
			for _, id := range tt.ids {
				ref, ok := p.Find(id)
				require.True(t, ok, "id %s should resolve", id)
				s, ok := p.Song(ref)
				require.True(t, ok)
				assert.Equal(t, id, s.ID)
			}
		})
	}
}

func TestPlaylist_AppendPreservesInsertionOrder(t *testing.T) {
	p := New()
	expected := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("song-%03d", i)
		expected = append(expected, id)
		_, err := p.Append(song.Song{ID: id})
		require.NoError(t, err)
	}

	assert.Equal(t, expected, songIDs(p))
}

func TestPlaylist_AppendDuplicate(t *testing.T) {
	p := newPlaylist(t, "A", "B")

	_, err := p.Append(song.Song{ID: "A", Title: "Other"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))

	// Playlist is unchanged
	assert.Equal(t, []string{"A", "B"}, songIDs(p))
	ref, ok := p.Find("A")
	require.True(t, ok)
	s, _ := p.Song(ref)
	assert.Equal(t, "Title A", s.Title)
}

func TestPlaylist_Links(t *testing.T) {
	p := newPlaylist(t, "A", "B", "C")

	a, _ := p.Find("A")
	b, _ := p.Find("B")
	c, _ := p.Find("C")

	_, ok := p.Previous(a)
	assert.False(t, ok, "head has no previous")
	_, ok = p.Next(c)
	assert.False(t, ok, "tail has no next")

	next, ok := p.Next(a)
	require.True(t, ok)
	assert.Equal(t, b, next)

	prev, ok := p.Previous(c)
	require.True(t, ok)
	assert.Equal(t, b, prev)

	// Forward then backward returns to the same node
	next, _ = p.Next(b)
	back, ok := p.Previous(next)
	require.True(t, ok)
	assert.Equal(t, b, back)
}

func TestPlaylist_InvalidRef(t *testing.T) {
	p := newPlaylist(t, "A")

	_, ok := p.Next(Ref(5))
	assert.False(t, ok)
	_, ok = p.Previous(Ref(-1))
	assert.False(t, ok)
	_, ok = p.Song(Ref(1))
	assert.False(t, ok)
}

func TestPlaylist_Find(t *testing.T) {
	p := newPlaylist(t, "A")

	_, ok := p.Find("missing")
	assert.False(t, ok)
}

func TestPlaylist_RandomEmpty(t *testing.T) {
	p := New()

	_, ok := p.Random(rand.New(rand.NewPCG(1, 2)))
	assert.False(t, ok)
	assert.Zero(t, p.Len())
}

func TestPlaylist_RandomIsUniform(t *testing.T) {
	ids := []string{"A", "B", "C", "D", "E"}
	p := newPlaylist(t, ids...)
	r := rand.New(rand.NewPCG(42, 1024))

	const trials = 50000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		ref, ok := p.Random(r)
		require.True(t, ok)
		s, _ := p.Song(ref)
		counts[s.ID]++
	}

	expected := float64(trials) / float64(len(ids))
	for _, id := range ids {
		assert.InDelta(t, expected, float64(counts[id]), expected*0.05,
			"frequency of %s should be close to uniform", id)
	}
}

func TestPlaylist_ArtistCount(t *testing.T) {
	p := New()
	for _, s := range []song.Song{
		{ID: "1", Artist: "Queen"},
		{ID: "2", Artist: "queen"},
		{ID: "3", Artist: "ABBA"},
	} {
		_, err := p.Append(s)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, p.ArtistCount("Queen"))
	assert.Equal(t, 1, p.ArtistCount("ABBA"))
	assert.Equal(t, 0, p.ArtistCount("Blur"))
}
