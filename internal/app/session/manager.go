// Package session provides the player session manager.
package session

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tunedeck/internal/app/filter"
	"github.com/osa030/tunedeck/internal/app/notification"
	"github.com/osa030/tunedeck/internal/app/playback"
	"github.com/osa030/tunedeck/internal/app/session/registry"
	"github.com/osa030/tunedeck/internal/app/session/state"
	"github.com/osa030/tunedeck/internal/domain/playlist"
	"github.com/osa030/tunedeck/internal/domain/song"
	"github.com/osa030/tunedeck/internal/domain/user"
	"github.com/osa030/tunedeck/internal/infra/config"
)

// Status is a snapshot of the session.
type Status struct {
	SessionID string
	StartedAt time.Time
	Username  string     // Empty when no user is selected
	Song      *song.Song // Nil when idle
	State     playback.State
	SongCount int
	UserCount int
}

// Manager manages the player session: users, playlist and playback cursor.
type Manager struct {
	mu sync.Mutex

	// Configuration
	config *config.Config

	// Components
	stateMgr     *state.Manager
	users        *registry.UserRegistry
	playlist     *playlist.Playlist
	playback     *playback.Controller
	filterChain  *filter.Chain
	notification *notification.Manager

	// Random source for random play
	rand playlist.Rand
}

// NewManager creates a new session manager.
// When rnd is nil the random source is seeded from the configuration.
func NewManager(cfg *config.Config, rnd playlist.Rand) (*Manager, error) {
	if rnd == nil {
		rnd = newRand(cfg.Player.RandomSeed)
	}

	pl := playlist.New()
	m := &Manager{
		config:       cfg,
		stateMgr:     state.New(uuid.New().String()),
		users:        registry.NewUserRegistry(),
		playlist:     pl,
		playback:     playback.NewController(pl),
		filterChain:  filter.NewChain(),
		notification: notification.NewManager(),
		rand:         rnd,
	}

	if err := m.setupFilters(); err != nil {
		return nil, errors.Wrap(err, "failed to set up filters")
	}

	return m, nil
}

// newRand creates a PCG source. A zero seed is replaced by the clock.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// setupFilters initializes the filter chain.
func (m *Manager) setupFilters() error {
	cfg := m.config

	// SongFieldsFilter
	m.filterChain.Add(&filter.SongFieldsFilter{})

	optional := []filter.Filter{
		filter.NewTitleLengthFilter(),
		filter.NewGenreFilter(),
		filter.NewArtistLimitFilter(m.playlist),
	}
	for _, f := range optional {
		if !cfg.IsFilterEnabled(f.Name()) {
			continue
		}
		if err := f.ValidateConfig(cfg.GetFilterSettings(f.Name())); err != nil {
			return errors.Wrapf(err, "filter %s", f.Name())
		}
		m.filterChain.Add(f)
		zlog.Debug().Msgf("filter enabled: %s", f.Name())
	}
	zlog.Debug().Msgf("filter chain ready: filters=%d", len(m.filterChain.Filters()))
	return nil
}

// LoadLibrary adds the users and songs of the configured library.
func (m *Manager) LoadLibrary(ctx context.Context) error {
	for _, username := range m.config.Library.Users {
		if _, err := m.AddUser(username); err != nil {
			return errors.Wrapf(err, "failed to add library user %q", username)
		}
	}
	for _, s := range m.config.Library.Songs {
		if err := m.AddSong(ctx, song.New(s.ID, s.Title, s.Artist, s.Genre), song.SourceLibrary); err != nil {
			return errors.Wrapf(err, "failed to add library song %q", s.ID)
		}
	}
	zlog.Info().Msgf("library loaded: users=%d songs=%d", len(m.config.Library.Users), len(m.config.Library.Songs))
	return nil
}

// AddUser registers a user. Returns true if the user became the current user.
func (m *Manager) AddUser(username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.users.Add(username)
	if err != nil {
		return false, err
	}
	zlog.Info().Msgf("user added: username=%s", u.Username)

	if !m.config.SelectOnAdd() {
		return false, nil
	}
	m.stateMgr.SetCurrentUser(u.Username)
	return true, nil
}

// SelectUser makes an existing user the current user.
func (m *Manager) SelectUser(username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.users.Get(username)
	if err != nil {
		return err
	}
	m.stateMgr.SetCurrentUser(u.Username)
	zlog.Debug().Msgf("user selected: username=%s", u.Username)
	return nil
}

// AddSong rejects a taken id, runs the filter chain and appends the song.
func (m *Manager) AddSong(ctx context.Context, s song.Song, source song.Source) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// A taken id is reported as such whatever the filters would say.
	if _, taken := m.playlist.Find(s.ID); taken {
		return errors.Wrapf(playlist.ErrDuplicateID, "song id %q", s.ID)
	}

	result := m.filterChain.Execute(ctx, filter.SongRequest{Song: s, Source: source})
	if !result.Accepted {
		zlog.Info().Msgf("song rejected: song_id=%s filter=%s code=%s", s.ID, result.Filter, result.Code)
		return newRejectionError(s.ID, result.Filter, result.Code)
	}

	if _, err := m.playlist.Append(s); err != nil {
		return err
	}
	zlog.Info().Msgf("song added: song_id=%s title=%s source=%s", s.ID, s.Title, source)
	return nil
}

// Play starts the song with the given ID for the current user.
func (m *Manager) Play(songID string) (song.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.currentUserLocked()
	if err != nil {
		return song.Song{}, err
	}

	ref, ok := m.playlist.Find(songID)
	if !ok {
		return song.Song{}, errors.Wrapf(ErrSongNotFound, "song id %q", songID)
	}

	return m.startLocked(u, ref, playback.EventSongStarted)
}

// PlayRandom starts a song chosen uniformly from the playlist.
func (m *Manager) PlayRandom() (song.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.currentUserLocked()
	if err != nil {
		return song.Song{}, err
	}

	ref, ok := m.playlist.Random(m.rand)
	if !ok {
		return song.Song{}, ErrEmptyPlaylist
	}

	return m.startLocked(u, ref, playback.EventSongStarted)
}

// SkipForward plays the next song.
func (m *Manager) SkipForward() (song.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.skipLocked(m.playback.SkipForward)
}

// SkipBackward plays the previous song.
func (m *Manager) SkipBackward() (song.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.skipLocked(m.playback.SkipBackward)
}

// Pause pauses the current song.
func (m *Manager) Pause() (song.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.playback.Pause(); err != nil {
		return song.Song{}, err
	}
	return m.stateChangedLocked(), nil
}

// Resume resumes the current song.
func (m *Manager) Resume() (song.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.playback.Resume(); err != nil {
		return song.Song{}, err
	}
	return m.stateChangedLocked(), nil
}

// AdjustVolume echoes the requested volume level. No session state changes.
func (m *Manager) AdjustVolume(level int) (int, error) {
	volume := m.config.Player.Volume
	if level < volume.Min || level > volume.Max {
		return 0, errors.Wrapf(ErrInvalidVolume, "level %d not in [%d, %d]", level, volume.Min, volume.Max)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	username, _ := m.stateMgr.GetCurrentUser()
	m.notification.Broadcast(playback.Event{
		Type:     playback.EventVolumeChanged,
		State:    m.playback.State(),
		Username: username,
		Volume:   level,
	})
	return level, nil
}

// Songs returns the playlist in play order.
func (m *Manager) Songs() []song.Song {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playlist.Songs()
}

// History returns the current user's name and listening history.
// The entries are unordered.
func (m *Manager) History() (string, []user.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.currentUserLocked()
	if err != nil {
		return "", nil, err
	}
	return u.Username, u.HistoryReport(), nil
}

// Status returns a snapshot of the session.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	username, _ := m.stateMgr.GetCurrentUser()
	st := Status{
		SessionID: m.stateMgr.GetSessionID(),
		StartedAt: m.stateMgr.GetStartedAt(),
		Username:  username,
		State:     m.playback.State(),
		SongCount: m.playlist.Len(),
		UserCount: m.users.Count(),
	}
	if s, ok := m.playback.Current(); ok {
		st.Song = &s
	}
	return st
}

// Users returns all registered users sorted by username.
func (m *Manager) Users() []*user.User {
	return m.users.All()
}

// GetNotificationManager returns the notification manager.
func (m *Manager) GetNotificationManager() *notification.Manager {
	return m.notification
}

// Close releases all subscriptions.
func (m *Manager) Close() {
	m.notification.Close()
	zlog.Debug().Msgf("session closed: session_id=%s", m.stateMgr.GetSessionID())
}

// currentUserLocked returns the current user.
// Must be called with m.mu held.
func (m *Manager) currentUserLocked() (*user.User, error) {
	username, ok := m.stateMgr.GetCurrentUser()
	if !ok {
		return nil, ErrNoUserSelected
	}
	return m.users.Get(username)
}

// startLocked moves the cursor to ref and records the play.
// Must be called with m.mu held.
func (m *Manager) startLocked(u *user.User, ref playlist.Ref, eventType playback.EventType) (song.Song, error) {
	s, err := m.playback.Start(ref)
	if err != nil {
		return song.Song{}, err
	}
	m.playedLocked(u, s, eventType)
	return s, nil
}

// skipLocked moves the cursor with skip and records the play.
// An idle player reports ErrNoSong before a missing user.
// Must be called with m.mu held.
func (m *Manager) skipLocked(skip func() (song.Song, error)) (song.Song, error) {
	if m.playback.State() == playback.StateIdle {
		return song.Song{}, playback.ErrNoSong
	}
	u, err := m.currentUserLocked()
	if err != nil {
		return song.Song{}, err
	}
	s, err := skip()
	if err != nil {
		return song.Song{}, err
	}
	m.playedLocked(u, s, playback.EventSongSkipped)
	return s, nil
}

// playedLocked records a play of s and broadcasts the event.
// Must be called with m.mu held.
func (m *Manager) playedLocked(u *user.User, s song.Song, eventType playback.EventType) {
	u.RecordPlay(s.ID)

	zlog.Debug().Msgf("%s: song_id=%s user=%s", eventType, s.ID, u.Username)
	m.notification.Broadcast(playback.Event{
		Type:     eventType,
		Song:     &s,
		State:    m.playback.State(),
		Username: u.Username,
	})
}

// stateChangedLocked broadcasts a state change and returns the current song.
// Must be called with m.mu held.
func (m *Manager) stateChangedLocked() song.Song {
	s, _ := m.playback.Current()
	username, _ := m.stateMgr.GetCurrentUser()

	zlog.Debug().Msgf("playback state changed: state=%s song_id=%s", m.playback.State(), s.ID)
	m.notification.Broadcast(playback.Event{
		Type:     playback.EventStateChanged,
		Song:     &s,
		State:    m.playback.State(),
		Username: username,
	})
	return s
}
