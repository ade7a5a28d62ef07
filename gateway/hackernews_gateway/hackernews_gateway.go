package hackernews_gateway

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"hud/domain"
	"hud/driver/hackernews"
	"hud/utils/logger"

	"golang.org/x/sync/errgroup"
)

const detailFetchConcurrency = 5

// HackerNewsGateway yields candidates from the Hacker News top-stories index.
type HackerNewsGateway struct {
	client     *hackernews.Client
	storyCount int
}

func NewHackerNewsGateway(client *hackernews.Client, storyCount int) *HackerNewsGateway {
	return &HackerNewsGateway{client: client, storyCount: storyCount}
}

func (g *HackerNewsGateway) Name() string {
	return "hackernews"
}

func (g *HackerNewsGateway) FetchCandidates(ctx context.Context) ([]*domain.Candidate, error) {
	ids, err := g.client.TopStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	if len(ids) > g.storyCount {
		ids = ids[:g.storyCount]
	}

	// Detail fetches run concurrently; results keep index order so the
	// pipeline sees candidates in top-stories rank order.
	stories := make([]*hackernews.Story, len(ids))
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(detailFetchConcurrency)

	for i, id := range ids {
		group.Go(func() error {
			story, err := g.client.Story(groupCtx, id)
			if err != nil {
				// Individual story failures are skipped, not fatal
				logger.Logger.Warn("skipping hackernews story", "id", id, "error", err)
				return nil
			}
			mu.Lock()
			stories[i] = story
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	candidates := make([]*domain.Candidate, 0, len(stories))
	for _, story := range stories {
		if story == nil || story.ID == 0 || story.Title == "" {
			continue
		}
		candidates = append(candidates, g.toCandidate(story))
	}

	logger.Logger.Info("hackernews candidates fetched", "count", len(candidates))

	return candidates, nil
}

func (g *HackerNewsGateway) toCandidate(story *hackernews.Story) *domain.Candidate {
	url := story.URL
	if url == "" {
		// Ask HN and text posts have no external URL
		url = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", story.ID)
	}

	excerpt := ""
	if story.Text != "" {
		excerpt = domain.ClipExcerpt(domain.CleanExcerpt(story.Text), domain.ExcerptLimit)
	}

	return &domain.Candidate{
		ProviderID:  strconv.FormatInt(story.ID, 10),
		Title:       story.Title,
		URL:         url,
		Excerpt:     excerpt,
		Source:      "HackerNews",
		Popularity:  story.Score,
		PublishedAt: time.Unix(story.Time, 0),
	}
}
