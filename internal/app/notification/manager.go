// Package notification provides the notification manager for broadcasting playback events.
package notification

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tunedeck/internal/app/playback"
)

// Subscriber receives playback events.
type Subscriber interface {
	Notify(playback.Event) error
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(playback.Event) error

// Notify calls f(event).
func (f SubscriberFunc) Notify(event playback.Event) error {
	return f(event)
}

// subscription represents a subscriber's subscription.
type subscription struct {
	id         string
	subscriber Subscriber
	order      uint64
}

// Manager manages subscriptions and broadcasting.
type Manager struct {
	mu            sync.RWMutex
	subscriptions map[string]*subscription
	subscribed    uint64
	sequenceNo    uint64
	sequenceNoMu  sync.Mutex
}

// NewManager creates a new notification manager.
func NewManager() *Manager {
	return &Manager{
		subscriptions: make(map[string]*subscription),
	}
}

// Subscribe adds a new subscription and returns the subscription ID.
func (m *Manager) Subscribe(subscriber Subscriber) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.subscribed++
	m.subscriptions[id] = &subscription{
		id:         id,
		subscriber: subscriber,
		order:      m.subscribed,
	}
	return id
}

// Unsubscribe removes a subscription.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subscriptions, subscriptionID)
}

// nextSequenceNo returns the next sequence number.
func (m *Manager) nextSequenceNo() uint64 {
	m.sequenceNoMu.Lock()
	defer m.sequenceNoMu.Unlock()
	m.sequenceNo++
	return m.sequenceNo
}

// Broadcast stamps the event with the next sequence number and delivers it
// to every subscriber in subscription order.
// Subscriber errors are logged and do not stop delivery.
func (m *Manager) Broadcast(event playback.Event) playback.Event {
	event.SequenceNo = m.nextSequenceNo()

	m.mu.RLock()
	// Copy subscriptions to avoid holding lock during delivery
	subs := make([]*subscription, 0, len(m.subscriptions))
	for _, sub := range m.subscriptions {
		subs = append(subs, sub)
	}
	m.mu.RUnlock()

	sort.Slice(subs, func(i, j int) bool { return subs[i].order < subs[j].order })

	for _, sub := range subs {
		if err := sub.subscriber.Notify(event); err != nil {
			zlog.Warn().Err(err).Msgf("subscriber failed: subscription_id=%s event=%s seq=%d", sub.id, event.Type, event.SequenceNo)
		}
	}
	return event
}

// SubscriberCount returns the number of active subscribers.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscriptions)
}

// Close removes all subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriptions = make(map[string]*subscription)
}
