package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"globetrotter/internal/platform/obs"
)

// RedisLookupCache stores provider responses in Redis with native expiry.
type RedisLookupCache struct {
	Client *redis.Client
	Prefix string
}

func NewRedisLookupCache(client *redis.Client) *RedisLookupCache {
	return &RedisLookupCache{Client: client, Prefix: "globetrotter:"}
}

// OpenRedis parses a redis:// URL and verifies the server answers.
func OpenRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (r *RedisLookupCache) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "lookup.cache.redis.Get")(&err)

	if r.Client == nil {
		return nil, false, errors.New("lookup cache: redis client is nil")
	}

	value, err := r.Client.Get(ctx, r.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get lookup cache: %w", err)
	}
	return value, true, nil
}

func (r *RedisLookupCache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if r.Client == nil {
		return errors.New("lookup cache: redis client is nil")
	}
	if err := r.Client.Set(ctx, r.Prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("insert lookup cache key=%q: %w", key, err)
	}
	return nil
}
