package fetch_feed_usecase

import (
	"context"
	"sort"
	"strings"

	"hud/domain"
	"hud/metrics"
	"hud/port/feed_cache_port"
	"hud/port/feed_item_port"
	"hud/port/preference_port"
	"hud/utils/logger"
)

// FeedLimit caps every feed response.
const FeedLimit = 50

// FetchFeedUsecase serves the per-user feed: newest-published-first, capped,
// filtered by the user's focus areas when any are set. Anonymous requests get
// the unfiltered feed.
type FetchFeedUsecase struct {
	feedItems   feed_item_port.FeedItemPort
	preferences preference_port.PreferencePort
	cache       feed_cache_port.FeedCachePort
}

func NewFetchFeedUsecase(
	feedItems feed_item_port.FeedItemPort,
	preferences preference_port.PreferencePort,
	cache feed_cache_port.FeedCachePort,
) *FetchFeedUsecase {
	return &FetchFeedUsecase{feedItems: feedItems, preferences: preferences, cache: cache}
}

func (u *FetchFeedUsecase) Execute(ctx context.Context) ([]*domain.FeedItem, error) {
	focusAreas := u.resolveFocusAreas(ctx)
	cacheKey := feedCacheKey(focusAreas)

	if u.cache != nil {
		if items, ok := u.cache.Get(ctx, cacheKey); ok {
			metrics.FeedCacheHits.WithLabelValues("hit").Inc()
			return items, nil
		}
		metrics.FeedCacheHits.WithLabelValues("miss").Inc()
	}

	var items []*domain.FeedItem
	var err error
	if len(focusAreas) > 0 {
		items, err = u.feedItems.FetchFeedListByTags(ctx, focusAreas, FeedLimit)
	} else {
		items, err = u.feedItems.FetchFeedList(ctx, FeedLimit)
	}
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		u.cache.Set(ctx, cacheKey, items)
	}

	return items, nil
}

// resolveFocusAreas pulls the authenticated user's preference set. Missing
// user context or a preference lookup failure both degrade to an unfiltered
// feed; the feed endpoint never errors because of preferences.
func (u *FetchFeedUsecase) resolveFocusAreas(ctx context.Context) []string {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil
	}

	focusAreas, err := u.preferences.FocusAreas(ctx, user.UserID)
	if err != nil {
		logger.Logger.Warn("focus area lookup failed, serving unfiltered feed",
			"user_id", user.UserID, "error", err)
		return nil
	}

	return focusAreas
}

func feedCacheKey(focusAreas []string) string {
	if len(focusAreas) == 0 {
		return "feed:all"
	}
	sorted := append([]string(nil), focusAreas...)
	sort.Strings(sorted)
	return "feed:tags:" + strings.Join(sorted, ",")
}
