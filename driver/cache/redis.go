package cache

import (
	"context"

	"hud/utils/logger"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the configured redis instance. An empty URL disables
// caching; callers receive a nil client and skip the cache layer.
func InitRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Logger.Error("Failed to parse redis url", "error", err)
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Error("Failed to ping redis", "error", err)
		return nil, err
	}

	logger.Logger.Info("Connected to redis")

	return client, nil
}
