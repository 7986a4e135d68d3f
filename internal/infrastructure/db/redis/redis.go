// Package redis backs the villa response cache with Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout = 5 * time.Second
	defaultTTL         = time.Minute
)

// Config captures the settings of the cache connection.
type Config struct {
	Addr        string
	DB          int
	TTL         time.Duration
	DialTimeout time.Duration
}

// Open connects to Redis, checks it with a ping and returns a Cache owning
// the client. Zero timeouts fall back to defaults.
func Open(ctx context.Context, cfg Config) (*Cache, error) {
	dial := cfg.DialTimeout
	if dial <= 0 {
		dial = defaultDialTimeout
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: dial,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dial)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return NewCache(client, ttl), nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
