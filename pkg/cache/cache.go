// Package cache memoizes ranked suggestion lists in a TTL-bounded
// in-memory otter cache. The engine is referentially transparent, so a
// fingerprinted query can be replayed from memory while its entry is
// fresh; the surrounding UI tends to re-issue the same query on every
// interaction.
package cache

import (
	"log/slog"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
)

// SuggestionCache implements overlap.ResultCache on top of otter v2.
type SuggestionCache struct {
	cache  otter.Cache[string, []overlap.Slot]
	logger *slog.Logger
}

// New builds a cache holding up to capacity query results for ttl each.
func New(capacity int, ttl time.Duration, logger *slog.Logger) *SuggestionCache {
	c := otter.Must(&otter.Options[string, []overlap.Slot]{
		MaximumSize:      capacity,
		ExpiryCalculator: otter.ExpiryWriting[string, []overlap.Slot](ttl),
	})
	return &SuggestionCache{cache: *c, logger: logger}
}

// Get returns the memoized slots for the key, if still cached.
func (c *SuggestionCache) Get(key string) ([]overlap.Slot, bool) {
	slots, ok := c.cache.GetIfPresent(key)
	if !ok {
		c.logger.Debug("suggestion cache miss", "key", key)
		return nil, false
	}
	c.logger.Debug("suggestion cache hit", "key", key)
	return slots, true
}

// Set stores the ranked slots for the key.
func (c *SuggestionCache) Set(key string, slots []overlap.Slot) {
	c.cache.Set(key, slots)
}

// Len reports the estimated number of cached queries.
func (c *SuggestionCache) Len() int {
	return c.cache.EstimatedSize()
}
