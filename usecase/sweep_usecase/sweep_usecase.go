package sweep_usecase

import (
	"context"
	"time"

	"hud/metrics"
	"hud/port/feed_item_port"
	"hud/utils/logger"
)

// SweepUsecase reclaims storage by deleting feed items past the retention
// window. Bookmarked items are exempt. The sweep is idempotent and safe to
// run concurrently with ingestion.
type SweepUsecase struct {
	feedItems feed_item_port.FeedItemPort
	maxAge    time.Duration
}

func NewSweepUsecase(feedItems feed_item_port.FeedItemPort, maxAge time.Duration) *SweepUsecase {
	return &SweepUsecase{feedItems: feedItems, maxAge: maxAge}
}

func (u *SweepUsecase) Execute(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-u.maxAge)

	deleted, err := u.feedItems.DeleteExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	metrics.ItemsSwept.Add(float64(deleted))
	logger.Logger.Info("retention sweep completed", "deleted", deleted, "cutoff", cutoff)

	return deleted, nil
}
