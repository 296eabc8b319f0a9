// Package redis holds the shared Redis connection behind the registration
// attempt counters. Redis is optional: without a URL the limiter falls back
// to its in-process store and this package stays out of the wiring.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"sokoni/internal/platform/config"
)

// Client wraps the go-redis client with a health probe for the readiness
// endpoint.
type Client struct {
	*redis.Client
}

// New connects using the configured URL and verifies the connection before
// handing it out. Returns (nil, nil) when no URL is configured.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{Client: client}, nil
}

// Health reports whether the connection still answers. Wired into the
// readiness probe so a dead Redis takes the instance out of rotation before
// registrations start failing on the limiter.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
