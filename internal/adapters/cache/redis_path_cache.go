package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"voyage-routing-service/internal/domain"
)

// RedisPathCache is a Redis-backed PathResultCache, used as an
// alternative to the SQL/SQLite path-result caches; it is not layered
// over them and never reads from or writes to them. A miss returns
// (_, false, nil); Redis connectivity problems are surfaced as an error.
type RedisPathCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisPathCache wraps an existing client. A zero TTL means entries
// never expire.
func NewRedisPathCache(client *redis.Client, ttl time.Duration) *RedisPathCache {
	return &RedisPathCache{Client: client, TTL: ttl}
}

const redisKeyPrefix = "voyage:path:"

func (c *RedisPathCache) Get(ctx context.Context, key string) (domain.PathResult, bool, error) {
	if c.Client == nil {
		return domain.PathResult{}, false, errors.New("path cache: redis client is nil")
	}

	raw, err := c.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.PathResult{}, false, nil
		}
		return domain.PathResult{}, false, fmt.Errorf("get path cache: redis get: %w", err)
	}

	result, err := decodeResult(raw)
	if err != nil {
		return domain.PathResult{}, false, fmt.Errorf("get path cache: %w", err)
	}
	return result, true, nil
}

func (c *RedisPathCache) Put(ctx context.Context, key string, result domain.PathResult) error {
	if c.Client == nil {
		return errors.New("path cache: redis client is nil")
	}

	raw, err := encodeResult(result)
	if err != nil {
		return fmt.Errorf("put path cache: %w", err)
	}

	if err := c.Client.Set(ctx, redisKeyPrefix+key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put path cache: redis set: %w", err)
	}
	return nil
}
