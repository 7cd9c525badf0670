// Package cache provides the per-session timeline cache collaborator.
// The engine recomputes timelines from scratch on every call; callers
// that refresh frequently (dashboards polling a live session) put this
// cache in front of it. Invalidation is explicit per session, plus TTL
// expiry for sessions nobody invalidates.
package cache

import (
	"sync"
	"time"

	"github.com/codeready-toolchain/traceline/pkg/timeline"
)

// entry holds a cached timeline with a timestamp for TTL expiration.
type entry struct {
	result   *timeline.TimelineResult
	cachedAt time.Time
}

// TimelineCache is a thread-safe in-memory cache keyed by session id,
// with TTL expiration. Expired entries are cleaned up lazily on Get() —
// no background goroutine. Stored results are never mutated; callers
// must treat them as read-only.
type TimelineCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
}

// NewTimelineCache creates a new cache with the given TTL.
func NewTimelineCache(ttl time.Duration) *TimelineCache {
	return &TimelineCache{
		entries: make(map[string]*entry),
		ttl:     ttl,
	}
}

// Get returns the cached timeline for a session if present and not expired.
func (c *TimelineCache) Get(sessionID string) (*timeline.TimelineResult, bool) {
	c.mu.RLock()
	e, ok := c.entries[sessionID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(e.cachedAt) > c.ttl {
		// Expired — clean up lazily.
		// Re-check under write lock: a concurrent Set() may have replaced
		// the entry with a fresh one between RUnlock and Lock.
		c.mu.Lock()
		if current, ok := c.entries[sessionID]; ok && time.Since(current.cachedAt) > c.ttl {
			delete(c.entries, sessionID)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.result, true
}

// Set stores a timeline with the current timestamp.
func (c *TimelineCache) Set(sessionID string, result *timeline.TimelineResult) {
	c.mu.Lock()
	c.entries[sessionID] = &entry{
		result:   result,
		cachedAt: time.Now(),
	}
	c.mu.Unlock()
}

// Invalidate drops the cached timeline for one session. Used when the
// caller knows new events have been appended to the session's logs.
func (c *TimelineCache) Invalidate(sessionID string) {
	c.mu.Lock()
	delete(c.entries, sessionID)
	c.mu.Unlock()
}

// Len returns the number of cached sessions, expired entries included.
func (c *TimelineCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
