package repositories

import (
	"context"
	"time"

	"luxehub-properties/internal/models"
	"luxehub-properties/pkg/cache"
	"luxehub-properties/pkg/metrics"
)

// propertyCache adapts the Redis cache layer to typed property reads. A
// missing or expired key is reported as (nil, nil) so callers fall through
// to the store.
type propertyCache struct{}

func NewPropertyCache() PropertyCache {
	return &propertyCache{}
}

func (c *propertyCache) GetProperty(ctx context.Context, key string) (*models.Property, error) {
	var property models.Property
	err := cache.Get(ctx, key, &property)
	if err == cache.ErrCacheMiss {
		metrics.CacheMissesTotal.WithLabelValues("property").Inc()
		return nil, nil
	}
	if cache.IsRetryable(err) {
		// Corrupt entry; drop it and fall through to the store, which
		// re-populates the key.
		_ = cache.Delete(ctx, key)
		metrics.CacheMissesTotal.WithLabelValues("property").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	metrics.CacheHitsTotal.WithLabelValues("property").Inc()
	return &property, nil
}

func (c *propertyCache) SetProperty(ctx context.Context, key string, property *models.Property, expiration time.Duration) error {
	return cache.Set(ctx, key, property, expiration)
}

func (c *propertyCache) GetPropertyList(ctx context.Context, key string) (*models.PaginatedResult[models.Property], error) {
	var result models.PaginatedResult[models.Property]
	err := cache.Get(ctx, key, &result)
	if err == cache.ErrCacheMiss {
		metrics.CacheMissesTotal.WithLabelValues("property_list").Inc()
		return nil, nil
	}
	if cache.IsRetryable(err) {
		_ = cache.Delete(ctx, key)
		metrics.CacheMissesTotal.WithLabelValues("property_list").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	metrics.CacheHitsTotal.WithLabelValues("property_list").Inc()
	return &result, nil
}

func (c *propertyCache) SetPropertyList(ctx context.Context, key string, result *models.PaginatedResult[models.Property], expiration time.Duration) error {
	return cache.Set(ctx, key, result, expiration)
}

func (c *propertyCache) Delete(ctx context.Context, key string) error {
	return cache.Delete(ctx, key)
}

func (c *propertyCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	return cache.DeleteByPrefix(ctx, prefix)
}
