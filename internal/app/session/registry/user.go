package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/osa030/tunedeck/internal/domain/user"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateUser   = errors.New("user already exists")
	ErrInvalidUsername = errors.New("invalid username")
)

// UserRegistry manages users keyed by username with thread-safe access.
type UserRegistry struct {
	mu    sync.RWMutex
	users map[string]*user.User
}

// NewUserRegistry creates a new user registry.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{
		users: make(map[string]*user.User),
	}
}

// Add registers a new user.
func (r *UserRegistry) Add(username string) (*user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; ok {
		return nil, errors.Wrapf(ErrDuplicateUser, "username %q", username)
	}

	u := user.New(username)
	r.users[username] = u
	return u, nil
}

// Get retrieves a user by username.
func (r *UserRegistry) Get(username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[strings.TrimSpace(username)]
	if !ok {
		return nil, errors.Wrapf(ErrUserNotFound, "username %q", username)
	}
	return u, nil
}

// All returns all users sorted by username.
func (r *UserRegistry) All() []*user.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Username < result[j].Username
	})
	return result
}

// Count returns the number of users.
func (r *UserRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
