package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/config"
)

// ErrStateNotFound is returned when an SSO state value is absent or expired.
var ErrStateNotFound = errors.New("sso state not found")

// Client wraps the Redis connection. It backs the SSO login state round-trip
// (CSRF protection) and the per-IP rate limiter.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient opens the connection and pings it.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── SSO login state ──

const statePrefix = "sso:state:"

// SaveState stores a login state value until the IdP redirects back.
func (c *Client) SaveState(ctx context.Context, state string, ttl time.Duration) error {
	return c.rdb.Set(ctx, statePrefix+state, "1", ttl).Err()
}

// ConsumeState validates and deletes a state value in one step, so a state
// can only ever complete one login.
func (c *Client) ConsumeState(ctx context.Context, state string) error {
	n, err := c.rdb.Del(ctx, statePrefix+state).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStateNotFound
	}
	return nil
}

// ── rate limiting ──

// CheckRateLimit implements a fixed-window counter keyed by caller.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
