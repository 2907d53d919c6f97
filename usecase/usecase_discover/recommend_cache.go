package usecase_discover

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RecommendCache stores serialized recommendation lists keyed by user and
// interaction fingerprint. A nil cache disables caching entirely.
type RecommendCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

type redisRecommendCache struct {
	client *redis.Client
}

func NewRedisRecommendCache(client *redis.Client) RecommendCache {
	return &redisRecommendCache{client: client}
}

func (c *redisRecommendCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return value, err
}

func (c *redisRecommendCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
