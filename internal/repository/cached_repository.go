package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/syodo-shop/storefront/internal/models"
)

// CatalogCacheKey is the Redis key holding the cached catalog snapshot
const CatalogCacheKey = "storefront:catalog"

// CachedProductRepository serves the catalog from Redis and falls back to
// the wrapped repository on a miss. Cache failures never fail a read.
type CachedProductRepository struct {
	next   ProductRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedProductRepository wraps next with a Redis cache
func NewCachedProductRepository(next ProductRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedProductRepository {
	return &CachedProductRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetAll returns the cached snapshot or fetches and caches a fresh one
func (r *CachedProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	data, err := r.client.Get(ctx, CatalogCacheKey).Bytes()
	switch {
	case err == nil:
		var products []models.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
		r.logger.Warn("discarding corrupt catalog cache entry", "key", CatalogCacheKey)
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("catalog cache read failed", "error", err)
	}

	products, err := r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.store(ctx, products); err != nil {
		r.logger.Warn("catalog cache write failed", "error", err)
	}

	return products, nil
}

// Invalidate drops the cached snapshot
func (r *CachedProductRepository) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, CatalogCacheKey).Err(); err != nil {
		return fmt.Errorf("invalidate catalog cache: %w", err)
	}
	return nil
}

func (r *CachedProductRepository) store(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return r.client.Set(ctx, CatalogCacheKey, data, r.ttl).Err()
}

// ConnectRedis creates a Redis client and verifies the connection with a ping
func ConnectRedis(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
