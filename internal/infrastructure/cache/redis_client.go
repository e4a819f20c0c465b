package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ConnectRedis creates a Redis client from REDIS_URL (e.g.
// redis://localhost:6379/0). Returns nil when REDIS_URL is unset so callers
// can run without the cache.
func ConnectRedis() *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Info().Msg("REDIS_URL not set, rollup cache disabled")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REDIS_URL")
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, rollup cache disabled")
		return nil
	}

	log.Info().Msg("redis connected")
	return rdb
}
