// Package notify keeps the stack of transient banner messages.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity selects the banner style.
type Severity int

const (
	Info Severity = iota
	Success
	Warning
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Warning:
		return "warning"
	default:
		return "info"
	}
}

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 5 * time.Second

// Notification is one banner.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Center holds active notifications. It is safe for concurrent use so the
// background monitor can post while the UI renders.
type Center struct {
	mu    sync.Mutex
	items []Notification
	ttl   time.Duration
	now   func() time.Time
}

// NewCenter returns a Center whose notifications expire after ttl.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, now: time.Now}
}

// Notify appends a notification and returns its ID. Identical messages are
// not merged.
func (c *Center) Notify(message string, severity Severity) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := Notification{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	c.items = append(c.items, n)
	return n.ID
}

// Dismiss removes a notification. Unknown IDs are ignored.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// DismissNewest removes the most recent notification.
func (c *Center) DismissNewest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return false
	}
	c.items = c.items[:len(c.items)-1]
	return true
}

// Active drops expired notifications and returns the rest, oldest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	kept := c.items[:0]
	for _, n := range c.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	c.items = kept

	if len(kept) == 0 {
		return nil
	}
	out := make([]Notification, len(kept))
	copy(out, kept)
	return out
}
