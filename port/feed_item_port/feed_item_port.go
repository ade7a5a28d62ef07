package feed_item_port

import (
	"context"
	"time"

	"hud/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_item_port.go -destination=../../mocks/mock_feed_item_port.go -package=mocks

// FeedItemPort is the storage boundary for feed items. The ingestion pipeline
// writes through it, the feed query service reads through it, and the
// retention sweeper deletes through it.
type FeedItemPort interface {
	// ExistsByURL reports whether any of the given URLs is already stored.
	ExistsByURL(ctx context.Context, urls []string) (bool, error)
	// Create persists a new item. It returns false without error when the
	// item's URL already exists (uniqueness conflict treated as already-seen).
	Create(ctx context.Context, item *domain.FeedItem) (bool, error)
	// FetchFeedList returns items ordered newest-published-first, capped at limit.
	FetchFeedList(ctx context.Context, limit int) ([]*domain.FeedItem, error)
	// FetchFeedListByTags returns items whose tags intersect the focus areas,
	// ordered newest-published-first, capped at limit.
	FetchFeedListByTags(ctx context.Context, focusAreas []string, limit int) ([]*domain.FeedItem, error)
	// FetchByIDs resolves a set of item ids; missing ids are silently absent.
	FetchByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.FeedItem, error)
	// DeleteExpired removes items created before cutoff that no bookmark
	// references and returns the number deleted.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
