package registry

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegistry_Add(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		username string
		wantErr  error
	}{
		{name: "new user", username: "alice"},
		{name: "trimmed username", username: "  bob  "},
		{name: "duplicate user", existing: []string{"alice"}, username: "alice", wantErr: ErrDuplicateUser},
		{name: "blank username", username: "   ", wantErr: ErrInvalidUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewUserRegistry()
			for _, name := range tt.existing {
				_, err := r.Add(name)
				require.NoError(t, err)
			}

			u, err := r.Add(tt.username)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, u)
				assert.Equal(t, len(tt.existing), r.Count())
				return
			}

			require.NoError(t, err)
			got, err := r.Get(tt.username)
			require.NoError(t, err)
			assert.Same(t, u, got)
			assert.Equal(t, len(tt.existing)+1, r.Count())
		})
	}
}

func TestUserRegistry_Get(t *testing.T) {
	r := NewUserRegistry()
	added, err := r.Add("alice")
	require.NoError(t, err)

	got, err := r.Get("alice")
	require.NoError(t, err)
	assert.Same(t, added, got)

	_, err = r.Get("carol")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestUserRegistry_AddDoesNotInvalidateUsers(t *testing.T) {
	r := NewUserRegistry()
	alice, err := r.Add("alice")
	require.NoError(t, err)
	alice.RecordPlay("A")

	for _, name := range []string{"bob", "carol", "dave", "erin"} {
		_, err := r.Add(name)
		require.NoError(t, err)
	}

	got, err := r.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, 1, got.History.Count("A"))
}

func TestUserRegistry_All(t *testing.T) {
	r := NewUserRegistry()
	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := r.Add(name)
		require.NoError(t, err)
	}

	users := r.All()
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	assert.Equal(t, "carol", users[2].Username)
}
