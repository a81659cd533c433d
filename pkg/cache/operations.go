package cache

import (
	"context"
	"encoding/json"
	"time"

	"luxehub-properties/pkg/logger"
	"luxehub-properties/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = redis.Nil

// Set stores a value in the cache with the given key and expiration time.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_marshal").Inc()
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return NewCacheError("marshal", err, true)
	}
	err = RedisClient.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", err, false)
	}
	return nil
}

// Get retrieves a value from the cache and unmarshals it into dest.
// Returns ErrCacheMiss when the key is absent or past its TTL.
func Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := RedisClient.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return NewCacheError("get", err, false)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_unmarshal").Inc()
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return NewCacheError("unmarshal", err, true)
	}
	return nil
}

// Delete removes a single key from the cache.
func Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := RedisClient.Del(ctx, key).Err()
	metrics.RedisOperationDuration.WithLabelValues("delete").Observe(time.Since(start).Seconds())
	if err != nil && err != redis.Nil {
		metrics.RedisErrorsTotal.WithLabelValues("delete").Inc()
		logger.GlobalLogger.Errorf("failed to delete key %s: %v", key, err)
		return NewCacheError("delete", err, false)
	}
	return nil
}

// DeleteByPrefix removes every key starting with prefix using a Lua script
// so stale list-query variants cannot outlive a write.
func DeleteByPrefix(ctx context.Context, prefix string) error {
	start := time.Now()
	_, err := deleteByPrefixScript.Run(ctx, RedisClient, []string{}, prefix+"*").Result()
	metrics.RedisOperationDuration.WithLabelValues("delete_by_prefix").Observe(time.Since(start).Seconds())
	if err != nil && err != redis.Nil {
		metrics.RedisErrorsTotal.WithLabelValues("delete_by_prefix").Inc()
		logger.GlobalLogger.Errorf("failed to delete keys with prefix %s: %v", prefix, err)
		return NewCacheError("delete_by_prefix", err, false)
	}
	return nil
}
