package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Alias1177/RateShift/models"
)

// MemoryCache holds a single snapshot for a fixed time-to-live
type MemoryCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	clock    Clock
	snapshot models.RateSnapshot
	storedAt time.Time
	filled   bool
}

// NewMemoryCache creates an in-process cache. A zero ttl disables caching.
func NewMemoryCache(ttl time.Duration, clock Clock) *MemoryCache {
	if clock == nil {
		clock = SystemClock{}
	}
	return &MemoryCache{ttl: ttl, clock: clock}
}

// Get returns the cached snapshot while it is younger than the ttl
func (c *MemoryCache) Get(_ context.Context) (models.RateSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.filled || c.ttl <= 0 {
		return models.RateSnapshot{}, false
	}
	if c.clock.Now().Sub(c.storedAt) >= c.ttl {
		c.filled = false
		return models.RateSnapshot{}, false
	}
	return c.snapshot, true
}

func (c *MemoryCache) Set(_ context.Context, snapshot models.RateSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = snapshot
	c.storedAt = c.clock.Now()
	c.filled = true
	return nil
}
