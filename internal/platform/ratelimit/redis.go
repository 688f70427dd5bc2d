// Package ratelimit throttles repeated login attempts with a Redis counter.
package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"galactic_pets/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis() *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Successfully connected to Redis!")
	return rdb
}

// LoginLimiter counts attempts per key inside a sliding expiry window.
// A nil *LoginLimiter allows everything, so callers need no enabled check.
type LoginLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewLoginLimiter(rdb *redis.Client, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{rdb: rdb, limit: limit, window: window}
}

// Allow reports whether another attempt for key is permitted. Redis failures
// fail open: login availability must not depend on the limiter backend.
func (l *LoginLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil {
		return true
	}

	redisKey := "login_attempts:" + key
	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		log.Printf("login limiter unavailable, allowing attempt: %v", err)
		return true
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, redisKey, l.window).Err(); err != nil {
			log.Printf("login limiter expire failed: %v", err)
		}
	}
	return count <= int64(l.limit)
}
