package toast

import (
	"strconv"
	"sync"
	"time"
)

// Queue is the ordered list of toasts for one session.
type Queue struct {
	mu       sync.Mutex
	ttl      time.Duration
	toasts   []Toast
	timers   map[string]*time.Timer
	lastID   int64
	closed   bool
	now      func() time.Time
	onChange func(Event)
}

// NewQueue creates an empty queue. onChange, when non-nil, is called outside
// the queue's lock after every add and removal.
func NewQueue(ttl time.Duration, onChange func(Event)) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{
		ttl:      ttl,
		timers:   make(map[string]*time.Timer),
		now:      time.Now,
		onChange: onChange,
	}
}

// Add appends a toast and schedules its expiry.
func (q *Queue) Add(message string, kind Kind) Toast {
	t, _ := q.add(message, kind)
	return t
}

// add reports false when the queue has been closed.
func (q *Queue) add(message string, kind Kind) (Toast, bool) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return Toast{}, false
	}

	now := q.now()
	t := Toast{
		ID:        q.nextIDLocked(now),
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
	}
	q.toasts = append(q.toasts, t)
	id := t.ID
	q.timers[id] = time.AfterFunc(q.ttl, func() {
		q.remove(id)
	})
	q.mu.Unlock()

	q.notify(Event{Action: ActionAdded, Toast: t})
	return t, true
}

// nextIDLocked derives the id from the creation time in milliseconds, bumping
// it when two toasts land in the same millisecond so ids stay unique.
func (q *Queue) nextIDLocked(now time.Time) string {
	id := now.UnixMilli()
	if id <= q.lastID {
		id = q.lastID + 1
	}
	q.lastID = id
	return strconv.FormatInt(id, 10)
}

// Dismiss removes a toast before it expires. Unknown ids are a no-op.
func (q *Queue) Dismiss(id string) bool {
	return q.remove(id)
}

func (q *Queue) remove(id string) bool {
	q.mu.Lock()
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}

	idx := -1
	for i, t := range q.toasts {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		q.mu.Unlock()
		return false
	}

	removed := q.toasts[idx]
	q.toasts = append(q.toasts[:idx], q.toasts[idx+1:]...)
	q.mu.Unlock()

	q.notify(Event{Action: ActionRemoved, Toast: removed})
	return true
}

// List returns a copy of the toasts in insertion order.
func (q *Queue) List() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Len returns the number of visible toasts.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}

// Close stops every pending timer and empties the queue without emitting
// events. Adds after Close are ignored.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closeLocked()
}

func (q *Queue) closeLocked() {
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.toasts = nil
	q.closed = true
}

func (q *Queue) notify(ev Event) {
	if q.onChange != nil {
		q.onChange(ev)
	}
}
