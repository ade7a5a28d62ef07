package feed_cache_port

import (
	"context"

	"hud/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_cache_port.go -destination=../../mocks/mock_feed_cache_port.go -package=mocks

// FeedCachePort is a best-effort response cache for feed queries. Failures
// are swallowed by implementations; a miss just falls through to storage.
type FeedCachePort interface {
	Get(ctx context.Context, key string) ([]*domain.FeedItem, bool)
	Set(ctx context.Context, key string, items []*domain.FeedItem)
}
