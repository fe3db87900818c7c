package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/shared"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalogFixture = []treasury.MovementType{
	{ID: 1, Code: treasury.MovementDonation, Description: "Donación"},
	{ID: 2, Code: treasury.MovementCredit, Description: "Crédito"},
	{ID: 3, Code: treasury.MovementDebit, Description: "Débito"},
}

// countingTypeRepo counts how many times the backing store is hit.
type countingTypeRepo struct {
	calls int
}

func (r *countingTypeRepo) FindAll(context.Context) ([]treasury.MovementType, error) {
	r.calls++
	return catalogFixture, nil
}

func (r *countingTypeRepo) FindByID(ctx context.Context, id int64) (*treasury.MovementType, error) {
	types, _ := r.FindAll(ctx)
	for i := range types {
		if types[i].ID == id {
			return &types[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *countingTypeRepo) FindByCode(ctx context.Context, code treasury.MovementTypeCode) (*treasury.MovementType, error) {
	types, _ := r.FindAll(ctx)
	for i := range types {
		if types[i].Code == code {
			return &types[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func TestCachedMovementTypeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("second read served from cache", func(t *testing.T) {
		inner := &countingTypeRepo{}
		repo := NewCachedMovementTypeRepository(inner, NewInMemoryCatalogCache(time.Minute))

		first, err := repo.FindAll(ctx)
		require.NoError(t, err)
		second, err := repo.FindAll(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("lookups resolve through cached list", func(t *testing.T) {
		inner := &countingTypeRepo{}
		repo := NewCachedMovementTypeRepository(inner, NewInMemoryCatalogCache(time.Minute))

		byCode, err := repo.FindByCode(ctx, treasury.MovementCredit)
		require.NoError(t, err)
		assert.Equal(t, int64(2), byCode.ID)

		byID, err := repo.FindByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, treasury.MovementDebit, byID.Code)

		assert.Equal(t, 1, inner.calls)
	})

	t.Run("unknown code returns ErrNotFound", func(t *testing.T) {
		inner := &countingTypeRepo{}
		repo := NewCachedMovementTypeRepository(inner, NewInMemoryCatalogCache(time.Minute))

		_, err := repo.FindByCode(ctx, treasury.MovementTypeCode("XXX"))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestInMemoryCatalogCacheExpiry(t *testing.T) {
	cache := NewInMemoryCatalogCache(10 * time.Millisecond)
	ctx := context.Background()

	cache.SetTypes(ctx, catalogFixture)
	_, ok := cache.GetTypes(ctx)
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = cache.GetTypes(ctx)
	assert.False(t, ok)
}

func TestInMemoryCatalogCacheCopiesData(t *testing.T) {
	cache := NewInMemoryCatalogCache(time.Minute)
	ctx := context.Background()

	cache.SetTypes(ctx, catalogFixture)
	got, ok := cache.GetTypes(ctx)
	require.True(t, ok)

	got[0].Description = "mutated"
	again, _ := cache.GetTypes(ctx)
	assert.Equal(t, "Donación", again[0].Description)
}
