package slack

import (
	"context"
	"sync"
	"time"
)

// lookupFunc resolves whether the thread rooted at threadTS was opened by a
// bot mention.
type lookupFunc func(ctx context.Context, channelID, threadTS string) (bool, error)

// threadCache caches thread-root lookups with TTL. A thread's root message is
// immutable, so the TTL only bounds memory for long-dead threads.
type threadCache struct {
	mu     sync.RWMutex
	cache  map[string]*cachedThreadState
	lookup lookupFunc
	ttl    time.Duration
}

type cachedThreadState struct {
	opened    bool
	timestamp time.Time
}

func newThreadCache(lookup lookupFunc, ttl time.Duration) *threadCache {
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &threadCache{
		cache:  make(map[string]*cachedThreadState),
		lookup: lookup,
		ttl:    ttl,
	}
}

func (c *threadCache) isOpened(ctx context.Context, channelID, threadTS string) (bool, error) {
	key := channelID + "/" + threadTS

	if opened, ok := c.get(key); ok {
		return opened, nil
	}

	opened, err := c.lookup(ctx, channelID, threadTS)
	if err != nil {
		return false, err
	}

	c.set(key, opened)
	return opened, nil
}

func (c *threadCache) get(key string) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.cache[key]
	if !ok || time.Since(entry.timestamp) > c.ttl {
		return false, false
	}
	return entry.opened, true
}

func (c *threadCache) set(key string, opened bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Drop expired entries opportunistically to bound the map size
	for k, entry := range c.cache {
		if time.Since(entry.timestamp) > c.ttl {
			delete(c.cache, k)
		}
	}

	c.cache[key] = &cachedThreadState{
		opened:    opened,
		timestamp: time.Now(),
	}
}
