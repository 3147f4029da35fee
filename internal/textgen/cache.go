package textgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"healthplan-backend/internal/shared/telemetry"
	"healthplan-backend/internal/shared/util"
)

const cacheKeyPrefix = "textgen:"

// Cache stores completed prompts.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisCache implements Cache on a Redis server.
type RedisCache struct {
	rdb *goredis.Client
}

// NewRedisCache connects to addr and verifies the server responds.
func NewRedisCache(ctx context.Context, addr string) (*RedisCache, error) {
	if addr == "" {
		return nil, errors.New("redis addr is empty")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisCache{rdb: rdb}, nil
}

// Get returns the cached value for key; a miss is not an error.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores value under key with the given ttl.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

type cached struct {
	base  Client
	cache Cache
	ttl   time.Duration
}

// NewCached serves repeated prompts from cache. Cache failures fall through to base.
func NewCached(base Client, cache Cache, ttl time.Duration) Client {
	if cache == nil {
		return base
	}
	return cached{base: base, cache: cache, ttl: ttl}
}

func (c cached) Complete(ctx context.Context, prompt string) (string, error) {
	key := CacheKey(prompt)
	if val, ok, err := c.cache.Get(ctx, key); err != nil {
		telemetry.Warn("textgen.cache_get_failed", map[string]any{"error": err.Error()})
	} else if ok {
		return val, nil
	}

	out, err := c.base.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := c.cache.Set(ctx, key, out, c.ttl); err != nil {
		telemetry.Warn("textgen.cache_set_failed", map[string]any{"error": err.Error()})
	}
	return out, nil
}

// CacheKey derives the cache key for a prompt.
func CacheKey(prompt string) string {
	return cacheKeyPrefix + util.HashKey(prompt)
}
