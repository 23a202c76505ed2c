package cache

import (
	"hash/fnv"
	"sync"
	"time"
)

// shardCount spreads keys across independently locked shards so that
// concurrent requests for unrelated languages never cross-block.
const shardCount = 32

// entry holds a cached value with its insertion time and time-to-live.
type entry struct {
	value    string
	storedAt time.Time
	ttl      time.Duration
}

func (e entry) expired(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.storedAt) > e.ttl
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// InMemoryCache is a sharded in-memory cache with per-entry TTL.
type InMemoryCache struct {
	shards [shardCount]*shard
}

// NewInMemoryCache creates an empty in-memory cache.
func NewInMemoryCache() *InMemoryCache {
	c := &InMemoryCache{}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[string]entry)}
	}
	return c
}

func (c *InMemoryCache) shardFor(key string) *shard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return c.shards[h.Sum32()%shardCount]
}

// Get retrieves a value. An expired entry is evicted and reported as a
// miss.
func (c *InMemoryCache) Get(key string) (string, bool) {
	s := c.shardFor(key)

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return "", false
	}

	if e.expired(time.Now()) {
		s.mu.Lock()
		// Re-check under the write lock; a Set may have raced in.
		if cur, ok := s.entries[key]; ok && cur.expired(time.Now()) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return "", false
	}

	return e.value, true
}

// Set stores a value with the given TTL. A non-positive TTL means the
// entry never expires.
func (c *InMemoryCache) Set(key, value string, ttl time.Duration) error {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		value:    value,
		storedAt: time.Now(),
		ttl:      ttl,
	}
	return nil
}

// Invalidate removes one entry.
func (c *InMemoryCache) Invalidate(key string) {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Clear removes all entries.
func (c *InMemoryCache) Clear() error {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[string]entry)
		s.mu.Unlock()
	}
	return nil
}

// Len returns the number of entries, including expired ones not yet
// evicted.
func (c *InMemoryCache) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}

// Verify InMemoryCache implements TranslationCache
var _ TranslationCache = (*InMemoryCache)(nil)
