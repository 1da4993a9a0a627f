// Package cache stores derived read models (summaries, dashboard) in Redis.
//
// Entries are namespaced by a generation counter. Writers bump the
// generation after a stock change commits, which makes every older entry
// unreachable; stale entries then expire on their TTL. The cache never holds
// authoritative balances.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/boxstock-backend/internal/config"
)

// NewClient creates a Redis client from cfg and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Cache is a JSON cache backed by Redis.
type Cache struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// New creates a cache that prefixes keys with prefix and expires them after ttl.
func New(rdb redis.Cmdable, prefix string, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *Cache) genKey() string { return c.prefix + "summary:gen" }

func (c *Cache) entryKey(gen int64, key string) string {
	return fmt.Sprintf("%ssummary:%d:%s", c.prefix, gen, key)
}

// Get decodes the entry for key of the current generation into dst. It
// returns the generation it read, which callers pass back to Set, and
// reports false when there is no entry.
func (c *Cache) Get(ctx context.Context, key string, dst any) (int64, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return 0, false, err
	}

	raw, err := c.rdb.Get(ctx, c.entryKey(gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return gen, false, nil
	}
	if err != nil {
		return gen, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return gen, false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return gen, true, nil
}

// Set stores v under key for generation gen, the value Get returned before
// v was computed. If Invalidate ran in between, the entry lands in a
// generation nobody reads and expires on its TTL.
func (c *Cache) Set(ctx context.Context, gen int64, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	if err := c.rdb.Set(ctx, c.entryKey(gen, key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate starts a new generation so that all existing entries miss.
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, c.genKey()).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (c *Cache) generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, c.genKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	return gen, nil
}

// Nop is a cache that never stores anything. It is used when Redis is not
// configured.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (int64, bool, error) { return 0, false, nil }
func (Nop) Set(context.Context, int64, string, any) error         { return nil }
func (Nop) Invalidate(context.Context) error                      { return nil }
