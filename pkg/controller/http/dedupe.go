package http

import (
	"sync"
	"time"
)

// dedupeTTL must outlast Slack's retry schedule (up to an hour for repeated
// failures).
const dedupeTTL = 2 * time.Hour

// eventDedupe remembers recently seen Events API delivery IDs so that Slack's
// at-least-once retries do not trigger a second agent invocation.
type eventDedupe struct {
	mu   sync.Mutex
	ttl  time.Duration
	seen map[string]time.Time
}

func newEventDedupe(ttl time.Duration) *eventDedupe {
	return &eventDedupe{
		ttl:  ttl,
		seen: make(map[string]time.Time),
	}
}

// Mark records the event ID and reports whether this is its first delivery
func (x *eventDedupe) Mark(eventID string) bool {
	now := time.Now()

	x.mu.Lock()
	defer x.mu.Unlock()

	for id, expiresAt := range x.seen {
		if now.After(expiresAt) {
			delete(x.seen, id)
		}
	}

	if _, ok := x.seen[eventID]; ok {
		return false
	}
	x.seen[eventID] = now.Add(x.ttl)
	return true
}
