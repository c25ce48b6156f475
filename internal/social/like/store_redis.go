// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package like

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trananh/movira/internal/platform/constants"
)

// RedisThrottle implements Throttle on a shared Redis instance so the
// cooldown holds across API replicas.
type RedisThrottle struct {
	client *redis.Client
}

// NewRedisThrottle creates a new Redis-backed Throttle.
func NewRedisThrottle(client *redis.Client) *RedisThrottle {
	return &RedisThrottle{client: client}
}

/*
TryAcquire claims the key for ttl using SET NX.

Parameters:
  - context: context.Context
  - key: string
  - ttl: time.Duration

Returns:
  - bool: true when the claim succeeded
  - error: Connectivity errors
*/
func (throttle *RedisThrottle) TryAcquire(context context.Context, key string, ttl time.Duration) (bool, error) {
	acquired, err := throttle.client.SetNX(context, constants.RedisPrefixRecount+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis_throttle_acquire_failed: %w", err)
	}

	return acquired, nil
}
