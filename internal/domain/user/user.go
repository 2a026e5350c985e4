// Package user provides the User domain entity and its listening history.
package user

import "time"

// Entry is a single listening history record.
type Entry struct {
	SongID string // Song ID
	Count  int    // Number of plays
}

// History maps song IDs to play counts.
// Iteration order of the underlying map is not meaningful.
type History struct {
	counts map[string]int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{counts: make(map[string]int)}
}

// Record increments the play count of a song, starting at 1.
func (h *History) Record(songID string) {
	h.counts[songID]++
}

// Count returns the play count of a song.
func (h *History) Count(songID string) int {
	return h.counts[songID]
}

// Entries returns the history as an unordered set of records.
func (h *History) Entries() []Entry {
	entries := make([]Entry, 0, len(h.counts))
	for id, count := range h.counts {
		entries = append(entries, Entry{SongID: id, Count: count})
	}
	return entries
}

// Len returns the number of distinct songs played.
func (h *History) Len() int {
	return len(h.counts)
}

// User represents a listener of the player.
type User struct {
	Username     string     // Unique username
	History      *History   // Listening history
	JoinedAt     time.Time  // Registration time
	TotalPlays   int        // Total play events
	LastPlayedAt *time.Time // Last play time
}

// New creates a new user with an empty history.
func New(username string) *User {
	return &User{
		Username:     username,
		History:      NewHistory(),
		JoinedAt:     time.Now(),
		TotalPlays:   0,
		LastPlayedAt: nil,
	}
}

// RecordPlay records a play event for the song.
func (u *User) RecordPlay(songID string) {
	u.History.Record(songID)
	u.TotalPlays++
	now := time.Now()
	u.LastPlayedAt = &now
}

// HistoryReport returns the listening history as an unordered set of records.
func (u *User) HistoryReport() []Entry {
	return u.History.Entries()
}
