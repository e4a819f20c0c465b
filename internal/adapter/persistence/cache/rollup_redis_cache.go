package cache

import (
	"context"
	"errors"
	"time"

	"gestao_manutencao/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RollupRedisCache stores serialized rollup results in Redis so repeated
// dashboard reads within the TTL skip the DynamoDB fan-out.

type RollupRedisCache struct {
	rdb *redis.Client
}

var _ interfaces.IRollupCache = (*RollupRedisCache)(nil)

func NewRollupRedisCache(rdb *redis.Client) *RollupRedisCache {
	return &RollupRedisCache{rdb: rdb}
}

func (c *RollupRedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

func (c *RollupRedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}
