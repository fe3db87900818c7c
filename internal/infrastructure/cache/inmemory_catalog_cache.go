package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
)

// InMemoryCatalogCache keeps the catalog in process memory with a TTL. It is
// the fallback when Redis is disabled or unreachable.
type InMemoryCatalogCache struct {
	mu        sync.RWMutex
	types     []treasury.MovementType
	expiresAt time.Time
	ttl       time.Duration
}

// NewInMemoryCatalogCache creates an InMemoryCatalogCache.
func NewInMemoryCatalogCache(ttl time.Duration) *InMemoryCatalogCache {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &InMemoryCatalogCache{ttl: ttl}
}

// GetTypes implements CatalogCache.
func (c *InMemoryCatalogCache) GetTypes(context.Context) ([]treasury.MovementType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.types == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	out := make([]treasury.MovementType, len(c.types))
	copy(out, c.types)
	return out, true
}

// SetTypes implements CatalogCache.
func (c *InMemoryCatalogCache) SetTypes(_ context.Context, types []treasury.MovementType) {
	cp := make([]treasury.MovementType, len(types))
	copy(cp, types)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.types = cp
	c.expiresAt = time.Now().Add(c.ttl)
}

var _ CatalogCache = (*InMemoryCatalogCache)(nil)
