package interfaces

import (
	"context"
	"time"
)

// IRollupCache is an optional read-through cache for rollup results
// (Redis in production, nil in tests). Get returns (nil, nil) on a miss.

type IRollupCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
