package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/storefront/internal/domain"
)

const catalogKey = "catalog:products"

// ProductCache stores the product catalog in Redis as JSON.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache builds a cache on top of an existing Redis connection.
func NewProductCache(r *Redis, ttl time.Duration) *ProductCache {
	if r == nil {
		return &ProductCache{ttl: ttl}
	}
	return &ProductCache{client: r.Client, ttl: ttl}
}

// Get returns the cached catalog. The boolean is false on a cache miss.
func (c *ProductCache) Get(ctx context.Context) ([]domain.Product, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("decode cached catalog: %w", err)
	}
	return products, true, nil
}

// Set stores the catalog for the configured TTL.
func (c *ProductCache) Set(ctx context.Context, products []domain.Product) error {
	if c.client == nil || c.ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return c.client.Set(ctx, catalogKey, data, c.ttl).Err()
}

// Invalidate drops the cached catalog.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, catalogKey).Err()
}
