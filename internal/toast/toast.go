// Package toast keeps the short-lived notifications shown in the corner of
// every page. Each browser session owns a queue; each toast removes itself
// after a fixed delay unless the user dismisses it first.
package toast

import "time"

// DefaultTTL is how long a toast stays visible when nobody dismisses it.
const DefaultTTL = 5 * time.Second

// Kind selects the styling and icon of a toast.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Toast is a single notification.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// Action says what happened to a toast.
type Action string

const (
	ActionAdded   Action = "added"
	ActionRemoved Action = "removed"
)

// Event describes a change to a queue. Removed events carry the removed toast.
type Event struct {
	Action Action `json:"action"`
	Toast  Toast  `json:"toast"`
}
