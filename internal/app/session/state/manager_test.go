package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_CurrentUser(t *testing.T) {
	m := New("session-1")

	assert.Equal(t, "session-1", m.GetSessionID())
	assert.False(t, m.GetStartedAt().IsZero())

	username, ok := m.GetCurrentUser()
	assert.False(t, ok)
	assert.Empty(t, username)

	m.SetCurrentUser("alice")
	username, ok = m.GetCurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}
