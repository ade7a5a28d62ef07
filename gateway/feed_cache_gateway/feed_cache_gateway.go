package feed_cache_gateway

import (
	"context"
	"encoding/json"
	"time"

	"hud/domain"
	"hud/utils/logger"

	"github.com/redis/go-redis/v9"
)

// FeedCacheGateway caches feed query responses in redis. It is strictly
// best-effort: any redis failure degrades to a cache miss.
type FeedCacheGateway struct {
	client *redis.Client
	expiry time.Duration
}

func NewFeedCacheGateway(client *redis.Client, expiry time.Duration) *FeedCacheGateway {
	return &FeedCacheGateway{client: client, expiry: expiry}
}

func (g *FeedCacheGateway) Get(ctx context.Context, key string) ([]*domain.FeedItem, bool) {
	if g.client == nil {
		return nil, false
	}

	data, err := g.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Logger.Warn("feed cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var items []*domain.FeedItem
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Logger.Warn("feed cache entry corrupt", "key", key, "error", err)
		return nil, false
	}

	return items, true
}

func (g *FeedCacheGateway) Set(ctx context.Context, key string, items []*domain.FeedItem) {
	if g.client == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		logger.Logger.Warn("feed cache marshal failed", "key", key, "error", err)
		return
	}

	if err := g.client.Set(ctx, key, data, g.expiry).Err(); err != nil {
		logger.Logger.Warn("feed cache write failed", "key", key, "error", err)
	}
}
