package toast

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nfrund/helios/internal/pubsub"
)

// Events is the bus topic every queue change is published on.
var Events = pubsub.NewEvent[Event]("toast.events", "Toast added to or removed from a session queue")

// Manager owns one Queue per browser session and publishes queue changes.
type Manager struct {
	mu        sync.Mutex
	queues    map[string]*Queue
	closed    bool
	ttl       time.Duration
	publisher pubsub.Publisher
	logger    *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithTTL overrides DefaultTTL.
func WithTTL(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.ttl = d
		}
	}
}

// NewManager creates a manager. publisher may be nil when nobody listens.
func NewManager(publisher pubsub.Publisher, opts ...Option) *Manager {
	m := &Manager{
		queues:    make(map[string]*Queue),
		ttl:       DefaultTTL,
		publisher: publisher,
		logger:    slog.Default().With("service", "toast"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL returns the expiry delay applied to new toasts.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Add appends a toast to the session's queue, creating the queue if needed.
// After Shutdown it returns the zero Toast and schedules nothing.
func (m *Manager) Add(sessionID, message string, kind Kind) Toast {
	for {
		q := m.queue(sessionID, true)
		if q == nil {
			m.logger.Debug("Toast dropped after shutdown", "session_id", sessionID)
			return Toast{}
		}
		// A queue can be dropped between lookup and add once it empties;
		// retry against the replacement.
		if t, ok := q.add(message, kind); ok {
			m.logger.Debug("Toast added", "session_id", sessionID, "toast_id", t.ID, "kind", t.Kind)
			return t
		}
	}
}

// Dismiss removes a toast early. It reports whether anything was removed.
func (m *Manager) Dismiss(sessionID, id string) bool {
	q := m.queue(sessionID, false)
	if q == nil {
		return false
	}
	return q.Dismiss(id)
}

// List returns the session's toasts in insertion order.
func (m *Manager) List(sessionID string) []Toast {
	q := m.queue(sessionID, false)
	if q == nil {
		return nil
	}
	return q.List()
}

// Sessions returns how many sessions currently have visible toasts.
func (m *Manager) Sessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queues)
}

// Shutdown stops every pending timer. Later adds are dropped.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	for id, q := range m.queues {
		q.Close()
		delete(m.queues, id)
	}
	m.logger.Info("Toast manager stopped")
}

func (m *Manager) queue(sessionID string, create bool) *Queue {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, ok := m.queues[sessionID]
	if !ok && create {
		if m.closed {
			return nil
		}
		q = NewQueue(m.ttl, nil)
		q.onChange = func(ev Event) { m.handleChange(sessionID, q, ev) }
		m.queues[sessionID] = q
	}
	return q
}

func (m *Manager) handleChange(sessionID string, q *Queue, ev Event) {
	if ev.Action == ActionRemoved {
		m.dropIfEmpty(sessionID, q)
	}

	if m.publisher == nil {
		return
	}
	if err := pubsub.Publish(context.Background(), m.publisher, Events, sessionID, ev); err != nil {
		m.logger.Error("Failed to publish toast event", "session_id", sessionID, "action", ev.Action, "error", err)
	}
}

func (m *Manager) dropIfEmpty(sessionID string, q *Queue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.toasts) == 0 && m.queues[sessionID] == q {
		q.closeLocked()
		delete(m.queues, sessionID)
	}
}
