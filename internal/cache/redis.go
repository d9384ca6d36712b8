package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ModelsKey is where the upstream model list is cached.
const ModelsKey = "generator:models"

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// GetJSON reads a cached JSON payload. A cache miss returns ("", nil).
func GetJSON(ctx context.Context, c *redis.Client, key string) (string, error) {
	val, err := c.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetJSON stores a JSON payload with a TTL.
func SetJSON(ctx context.Context, c *redis.Client, key, val string, ttl time.Duration) error {
	return c.Set(ctx, key, val, ttl).Err()
}
