// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "vidly:login:"

// counterStore is the subset of [redis.Cmdable] used by the limiter.
type counterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RedisLoginLimiter keeps the fixed-window counters in Redis. The first
// attempt of a window sets the key expiry; the window resets when the key
// expires.
type RedisLoginLimiter struct {
	client counterStore
	limit  int
	period time.Duration
}

func NewRedisLoginLimiter(client redis.Cmdable, limit int, period time.Duration) *RedisLoginLimiter {
	if period < time.Second {
		period = time.Second
	}

	return &RedisLoginLimiter{
		client: client,
		limit:  limit,
		period: period,
	}
}

// NewRedisClient connects to the Redis server at addr and pings it.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("error connecting to redis at %s: %w", addr, err)
	}

	return client, nil
}

func (l *RedisLoginLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if l.limit <= 0 {
		return true, 0, nil
	}
	if key == "" {
		key = "unknown"
	}
	key = redisKeyPrefix + key

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("error incrementing login counter: %w", err)
	}

	if count == 1 {
		if err = l.client.Expire(ctx, key, l.period).Err(); err != nil {
			return false, 0, fmt.Errorf("error setting login window expiry: %w", err)
		}
	}

	if count <= int64(l.limit) {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("error reading login window ttl: %w", err)
	}
	if ttl < 0 {
		// the key lost its expiry; start a new window
		if err = l.client.Expire(ctx, key, l.period).Err(); err != nil {
			return false, 0, fmt.Errorf("error setting login window expiry: %w", err)
		}
		ttl = l.period
	}

	return false, ttl, nil
}
