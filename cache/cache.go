// Package cache memoizes lexicon lookups. The HTTP server answers
// repeated word queries from memory instead of hitting SQLite for
// every request.
package cache

import (
	"strings"
	"sync"

	"github.com/konstantinosKokos/lassy-tlg-extraction/storage"
)

// LookupCache caches per-word type counts keyed by lowercased word.
// It is safe for concurrent use.
type LookupCache struct {
	mu        sync.Mutex
	entries   map[string][]storage.TypeCount
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// NewLookupCache creates a cache holding at most maxSize words.
// Set maxSize to 0 for an unbounded cache.
func NewLookupCache(maxSize int) *LookupCache {
	return &LookupCache{
		entries: make(map[string][]storage.TypeCount),
		maxSize: maxSize,
	}
}

// Get retrieves the cached type counts for a word. The second return
// value reports whether the word was cached; a word with no known
// types caches as an empty slice, so presence and emptiness differ.
// The returned slice is shared and must not be modified.
func (c *LookupCache) Get(word string) ([]storage.TypeCount, bool) {
	key := strings.ToLower(word)

	c.mu.Lock()
	defer c.mu.Unlock()

	counts, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return counts, ok
}

// Put stores the type counts for a word, evicting an arbitrary entry
// when the cache is full.
func (c *LookupCache) Put(word string, counts []storage.TypeCount) {
	key := strings.ToLower(word)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && c.maxSize > 0 && len(c.entries) >= c.maxSize {
		for k := range c.entries {
			delete(c.entries, k)
			c.evictions++
			break
		}
	}

	c.entries[key] = counts
}

// GetOrLookup retrieves cached type counts, or runs lookup and caches
// its result. Lookup failures are returned without being cached.
func (c *LookupCache) GetOrLookup(word string, lookup func() ([]storage.TypeCount, error)) ([]storage.TypeCount, error) {
	if counts, ok := c.Get(word); ok {
		return counts, nil
	}

	counts, err := lookup()
	if err != nil {
		return nil, err
	}
	c.Put(word, counts)
	return counts, nil
}

// Clear removes all cached words. Hit and miss counters are kept.
func (c *LookupCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]storage.TypeCount)
}

// Len returns the current number of cached words.
func (c *LookupCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats reports cache usage.
type Stats struct {
	Size      int     `json:"size"`
	MaxSize   int     `json:"maxSize"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	HitRate   float64 `json:"hitRate"`
}

// Stats returns a snapshot of the cache counters.
func (c *LookupCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Size:      len(c.entries),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}
