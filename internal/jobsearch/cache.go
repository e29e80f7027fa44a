package jobsearch

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultCacheTTL bounds how long identical searches reuse upstream results.
const DefaultCacheTTL = 15 * time.Minute

// Clock abstracts time for TTL checks so tests can control expiry.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type cacheEntry struct {
	jobs     []types.Job
	storedAt time.Time
}

// Cache is an in-memory TTL cache for search results, keyed by the canonical
// search parameters. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	clock   Clock
}

// NewCache creates a cache with the given TTL. A zero TTL uses
// DefaultCacheTTL; a nil clock uses the system clock.
func NewCache(ttl time.Duration, clock Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// CacheKey canonicalizes search parameters into a cache key.
func CacheKey(params types.JobSearchParams) string {
	return fmt.Sprintf("%s|%s|%d", params.Query, params.Location, params.Pages)
}

// Get returns the cached jobs for a key when present and fresh. An expired
// entry is removed on the spot and reported as a miss.
func (c *Cache) Get(key string) ([]types.Job, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.clock.Now().Sub(entry.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.jobs, true
}

// Put stores jobs for a key, resetting its TTL.
func (c *Cache) Put(key string, jobs []types.Job) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{jobs: jobs, storedAt: c.clock.Now()}
}

// Evict removes every expired entry and returns how many were dropped.
func (c *Cache) Evict() int {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for key, entry := range c.entries {
		if now.Sub(entry.storedAt) > c.ttl {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of entries currently stored, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
