package reddit_gateway

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"hud/domain"
	"hud/driver/reddit"
	"hud/utils/logger"
)

// RedditGateway merges the day's top posts across a fixed subreddit list and
// yields the highest-scored ones.
type RedditGateway struct {
	client       *reddit.Client
	subreddits   []string
	perSubreddit int
	topLimit     int
}

func NewRedditGateway(client *reddit.Client, subreddits []string, perSubreddit, topLimit int) *RedditGateway {
	return &RedditGateway{
		client:       client,
		subreddits:   subreddits,
		perSubreddit: perSubreddit,
		topLimit:     topLimit,
	}
}

func (g *RedditGateway) Name() string {
	return "reddit"
}

func (g *RedditGateway) FetchCandidates(ctx context.Context) ([]*domain.Candidate, error) {
	var allPosts []reddit.Post
	var lastErr error

	for _, subreddit := range g.subreddits {
		posts, err := g.client.TopPosts(ctx, subreddit, g.perSubreddit)
		if err != nil {
			// One failing subreddit must not sink the others
			logger.Logger.Error("error fetching subreddit", "subreddit", subreddit, "error", err)
			lastErr = err
			continue
		}
		allPosts = append(allPosts, posts...)
	}

	if len(allPosts) == 0 && lastErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, lastErr)
	}

	sort.SliceStable(allPosts, func(i, j int) bool {
		return allPosts[i].Score > allPosts[j].Score
	})
	if len(allPosts) > g.topLimit {
		allPosts = allPosts[:g.topLimit]
	}

	candidates := make([]*domain.Candidate, 0, len(allPosts))
	for _, post := range allPosts {
		if post.ID == "" || post.Title == "" {
			continue
		}
		candidates = append(candidates, g.toCandidate(post))
	}

	logger.Logger.Info("reddit candidates fetched", "count", len(candidates), "subreddits", len(g.subreddits))

	return candidates, nil
}

func (g *RedditGateway) toCandidate(post reddit.Post) *domain.Candidate {
	permalink := "https://reddit.com" + post.Permalink

	url := post.URL
	if !strings.HasPrefix(url, "http") {
		url = permalink
	}

	content := post.Selftext
	if content == "" {
		content = post.Title
	}
	excerpt := domain.TruncateExcerpt(domain.CleanExcerpt(content), domain.ExcerptLimit)

	return &domain.Candidate{
		ProviderID:   post.ID,
		Title:        post.Title,
		URL:          url,
		AlternateURL: permalink,
		Excerpt:      excerpt,
		Source:       fmt.Sprintf("Reddit:r/%s", post.Subreddit),
		Popularity:   post.Score,
		PublishedAt:  time.Unix(int64(post.CreatedUTC), 0),
		ProviderTags: []string{"r/" + strings.ToLower(post.Subreddit)},
		Metadata: map[string]any{
			"author":       post.Author,
			"num_comments": post.NumComments,
		},
	}
}
