// Package cache provides an optional Redis-backed read cache for user
// lookups. The service layer treats it as best effort: a cache failure is
// logged and the request falls through to the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/forgetting-curve/api/internal/domain"
)

// UserCache caches users by nickname with a fixed TTL.
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New connects to Redis at addr and returns a UserCache.
// Returns an error if the server cannot be reached; callers typically log
// the error and continue without the cache.
func New(addr string, ttl time.Duration, logger *slog.Logger) (*UserCache, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	return &UserCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "user_cache")),
	}, nil
}

func userKey(nickname string) string {
	return "user:" + nickname
}

// GetUser returns the cached user and true on a hit, or nil and false on a
// miss or any cache error.
func (c *UserCache) GetUser(ctx context.Context, nickname string) (*domain.User, bool) {
	raw, err := c.client.Get(ctx, userKey(nickname)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache get failed",
				slog.String("nickname", nickname),
				slog.String("error", err.Error()))
		}
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		c.logger.Warn("cache entry corrupt, dropping",
			slog.String("nickname", nickname),
			slog.String("error", err.Error()))
		c.InvalidateUser(ctx, nickname)
		return nil, false
	}

	return &user, true
}

// SetUser stores the user under its nickname with the configured TTL.
func (c *UserCache) SetUser(ctx context.Context, user *domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		c.logger.Warn("failed to marshal user for cache",
			slog.String("nickname", user.Nickname),
			slog.String("error", err.Error()))
		return
	}

	if err := c.client.Set(ctx, userKey(user.Nickname), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed",
			slog.String("nickname", user.Nickname),
			slog.String("error", err.Error()))
	}
}

// InvalidateUser drops the cached entry for a nickname. Called after any
// mutation of the user so stale reads cannot outlive an update or delete.
func (c *UserCache) InvalidateUser(ctx context.Context, nickname string) {
	if err := c.client.Del(ctx, userKey(nickname)).Err(); err != nil {
		c.logger.Warn("cache invalidation failed",
			slog.String("nickname", nickname),
			slog.String("error", err.Error()))
	}
}

// Close releases the underlying Redis connection.
func (c *UserCache) Close() error {
	return c.client.Close()
}
