package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"newsviewer/config"
	"newsviewer/types"
)

// FeedCache keeps the last snapshot in Redis so a restart serves it immediately
type FeedCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewFeedCache connects to Redis and verifies the connection
func NewFeedCache(ctx context.Context, cfg config.RedisConfig) (*FeedCache, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	if cfg.Key == "" {
		cfg.Key = config.DefaultRedisKey
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Ping to verify
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &FeedCache{client: client, key: cfg.Key, ttl: cfg.TTL}, nil
}

// Save implements rssfeeds.Sink
func (c *FeedCache) Save(ctx context.Context, feed types.Feed) error {
	b, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("failed to encode feed: %w", err)
	}
	if err := c.client.Set(ctx, c.key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache feed: %w", err)
	}
	return nil
}

// Load returns the cached snapshot, or nil when the key is missing or expired
func (c *FeedCache) Load(ctx context.Context) (*types.Feed, error) {
	b, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached feed: %w", err)
	}
	return types.DecodeFeed(b)
}

// Close releases the connection pool
func (c *FeedCache) Close() error {
	return c.client.Close()
}
