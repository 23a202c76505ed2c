// Package cache provides translation caching implementations with
// per-entry time-to-live.
package cache

import "time"

// TranslationCache is the interface for translation caching. Entries
// expire lazily: an expired entry is treated as absent and evicted on the
// access that observes it, not by a background sweep.
type TranslationCache interface {
	// Get retrieves a cached translation. Returns empty string and
	// false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a translation with the given time-to-live.
	// A non-positive ttl means the entry never expires.
	Set(key, value string, ttl time.Duration) error

	// Invalidate removes one entry.
	Invalidate(key string)

	// Clear removes all entries.
	Clear() error
}
