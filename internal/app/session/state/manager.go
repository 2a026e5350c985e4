// Package state provides player session state management.
package state

import (
	"sync"
	"time"
)

// Manager manages session identity and the current user with thread-safe access.
// The current user is held by username so the registry may grow freely.
type Manager struct {
	mu sync.RWMutex

	// Session identity
	sessionID string
	startedAt time.Time

	// Current user
	username string
}

// New creates a new state manager.
func New(sessionID string) *Manager {
	return &Manager{
		sessionID: sessionID,
		startedAt: time.Now(),
	}
}

// GetSessionID returns the session ID.
func (m *Manager) GetSessionID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessionID
}

// GetStartedAt returns the session start time.
func (m *Manager) GetStartedAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.startedAt
}

// GetCurrentUser returns the current username and whether one is selected.
func (m *Manager) GetCurrentUser() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.username, m.username != ""
}

// SetCurrentUser sets the current username.
func (m *Manager) SetCurrentUser(username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.username = username
}
