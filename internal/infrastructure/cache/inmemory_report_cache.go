package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryReportCache implements ReportCache with a mutex-guarded map.
// It is the default for the single-process local deployment.
type InMemoryReportCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     clock
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// NewInMemoryReportCache creates an in-memory report cache with the given TTL
func NewInMemoryReportCache(ttl time.Duration) *InMemoryReportCache {
	return &InMemoryReportCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached payload for key, if present and fresh
func (c *InMemoryReportCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.payload, true
}

// Set stores a payload under key
func (c *InMemoryReportCache) Set(_ context.Context, key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{
		payload:   payload,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Invalidate drops every cached payload
func (c *InMemoryReportCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
}
