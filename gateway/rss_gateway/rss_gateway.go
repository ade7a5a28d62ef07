package rss_gateway

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hud/domain"
	"hud/driver/rss"
	"hud/utils/logger"
	"hud/utils/rate_limiter"

	"github.com/mmcdole/gofeed"
)

// RSSGateway yields candidates from a configured list of RSS/Atom feeds.
// Feed hosts are polled through the shared host rate limiter.
type RSSGateway struct {
	client      *rss.Client
	feedURLs    []string
	topLimit    int
	rateLimiter *rate_limiter.HostRateLimiter
}

func NewRSSGateway(client *rss.Client, feedURLs []string, topLimit int, rateLimiter *rate_limiter.HostRateLimiter) *RSSGateway {
	return &RSSGateway{
		client:      client,
		feedURLs:    feedURLs,
		topLimit:    topLimit,
		rateLimiter: rateLimiter,
	}
}

func (g *RSSGateway) Name() string {
	return "rss"
}

func (g *RSSGateway) FetchCandidates(ctx context.Context) ([]*domain.Candidate, error) {
	var candidates []*domain.Candidate
	var lastErr error
	fetched := 0

	for _, feedURL := range g.feedURLs {
		if g.rateLimiter != nil {
			if err := g.rateLimiter.WaitForHost(ctx, feedURL); err != nil {
				return nil, err
			}
		}

		feed, err := g.client.Fetch(ctx, feedURL)
		if err != nil {
			logger.Logger.Error("error fetching rss feed", "url", feedURL, "error", err)
			lastErr = err
			continue
		}
		fetched++

		for _, item := range feed.Items {
			if item.Title == "" || item.Link == "" {
				continue
			}
			candidates = append(candidates, g.toCandidate(feed, item))
		}
	}

	if fetched == 0 && lastErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, lastErr)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PublishedAt.After(candidates[j].PublishedAt)
	})
	if len(candidates) > g.topLimit {
		candidates = candidates[:g.topLimit]
	}

	logger.Logger.Info("rss candidates fetched", "count", len(candidates), "feeds", fetched)

	return candidates, nil
}

func (g *RSSGateway) toCandidate(feed *gofeed.Feed, item *gofeed.Item) *domain.Candidate {
	publishedAt := time.Now()
	if item.PublishedParsed != nil {
		publishedAt = *item.PublishedParsed
	}

	var metadata map[string]any
	if item.Author != nil && item.Author.Name != "" {
		metadata = map[string]any{"author": item.Author.Name}
	}

	return &domain.Candidate{
		ProviderID:  item.Link,
		Title:       item.Title,
		URL:         item.Link,
		Excerpt:     domain.TruncateExcerpt(domain.CleanExcerpt(item.Description), domain.ExcerptLimit),
		Source:      fmt.Sprintf("RSS:%s", feed.Title),
		PublishedAt: publishedAt,
		Metadata:    metadata,
	}
}
