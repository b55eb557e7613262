package service

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// INutritionCache stores real nutrition analyses for reuse. Implementations
// must be best-effort: a failed read or write degrades to a cache miss,
// never to an error the pipeline can see.
type INutritionCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
}

// redisNutritionCache is the Redis-backed INutritionCache used in
// production
type redisNutritionCache struct {
	client *redis.Client
}

func (c *redisNutritionCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[NutritionCache] read failed: %v", err)
		}
		return nil, false
	}
	return data, true
}

func (c *redisNutritionCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("[NutritionCache] write failed: %v", err)
	}
}
