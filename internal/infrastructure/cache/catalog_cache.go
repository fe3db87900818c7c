// Package cache provides read-through caching for the movement-type catalog.
// The catalog is tiny and effectively static, so every lookup variant is
// served from one cached copy of the full list.
package cache

import (
	"context"
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
)

// DefaultCatalogTTL bounds staleness after an out-of-band catalog change.
const DefaultCatalogTTL = 10 * time.Minute

// CatalogCache stores the movement-type list.
type CatalogCache interface {
	GetTypes(ctx context.Context) ([]treasury.MovementType, bool)
	SetTypes(ctx context.Context, types []treasury.MovementType)
}

// CachedMovementTypeRepository decorates a MovementTypeRepository with a
// read-through catalog cache. Cache failures degrade to the inner repository.
type CachedMovementTypeRepository struct {
	inner treasury.MovementTypeRepository
	cache CatalogCache
}

// NewCachedMovementTypeRepository creates a CachedMovementTypeRepository.
func NewCachedMovementTypeRepository(inner treasury.MovementTypeRepository, cache CatalogCache) *CachedMovementTypeRepository {
	return &CachedMovementTypeRepository{inner: inner, cache: cache}
}

// FindAll returns the whole catalog, from cache when possible.
func (r *CachedMovementTypeRepository) FindAll(ctx context.Context) ([]treasury.MovementType, error) {
	if types, ok := r.cache.GetTypes(ctx); ok {
		return types, nil
	}
	types, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.SetTypes(ctx, types)
	return types, nil
}

// FindByID resolves one catalog row through the cached list.
func (r *CachedMovementTypeRepository) FindByID(ctx context.Context, id int64) (*treasury.MovementType, error) {
	types, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range types {
		if types[i].ID == id {
			t := types[i]
			return &t, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindByCode resolves one catalog row through the cached list.
func (r *CachedMovementTypeRepository) FindByCode(ctx context.Context, code treasury.MovementTypeCode) (*treasury.MovementType, error) {
	types, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range types {
		if types[i].Code == code {
			t := types[i]
			return &t, nil
		}
	}
	return nil, shared.ErrNotFound
}

var _ treasury.MovementTypeRepository = (*CachedMovementTypeRepository)(nil)
