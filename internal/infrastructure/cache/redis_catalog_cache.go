package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const catalogKey = "catalog:movement_types"

// RedisCatalogCache stores the catalog in Redis, shared across instances.
// All cache errors are logged and treated as misses.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisCatalogCache creates a RedisCatalogCache, verifying the connection.
func NewRedisCatalogCache(cfg RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisCatalogCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCatalogCache{client: client, ttl: ttl, logger: logger}, nil
}

// NewRedisCatalogCacheWithClient creates a cache over an existing client.
// Useful for tests or when sharing a client across components.
func NewRedisCatalogCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCatalogCache {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCatalogCache{client: client, ttl: ttl, logger: logger}
}

// GetTypes implements CatalogCache.
func (c *RedisCatalogCache) GetTypes(ctx context.Context) ([]treasury.MovementType, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var types []treasury.MovementType
	if err := json.Unmarshal(raw, &types); err != nil {
		c.logger.Warn("catalog cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return types, true
}

// SetTypes implements CatalogCache.
func (c *RedisCatalogCache) SetTypes(ctx context.Context, types []treasury.MovementType) {
	raw, err := json.Marshal(types)
	if err != nil {
		c.logger.Warn("catalog cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", zap.Error(err))
	}
}

// Close closes the Redis client.
func (c *RedisCatalogCache) Close() error {
	return c.client.Close()
}

var _ CatalogCache = (*RedisCatalogCache)(nil)
