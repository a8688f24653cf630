package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/noobgg-team/noobgg/common/config"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client with logging and the handful of operations the
// service needs
type Client struct {
	redis *redis.Client
	log   *logger.Logger
}

// New creates a Redis client from config and verifies the connection
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Client, error) {
	rc := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rc.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("redis connected", "addr", cfg.RedisAddr())

	return &Client{redis: rc, log: log}, nil
}

// Underlying returns the raw redis client for operations not wrapped here
func (c *Client) Underlying() *redis.Client {
	return c.redis
}

// Close closes the connection
func (c *Client) Close() error {
	return c.redis.Close()
}

// Health checks connectivity
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return c.redis.Ping(ctx).Err()
}
