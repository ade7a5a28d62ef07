package x_gateway

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"hud/domain"
	"hud/driver/x_api"
	"hud/utils/logger"
)

// XGateway yields the most engaging recent posts across a fixed account list.
// Timeline fetches are paced with a fixed delay; an exhausted rate-limit
// window is waited out until the provider-reported reset.
type XGateway struct {
	client       *x_api.Client
	accounts     []string
	postsPerUser int
	topLimit     int
	fetchDelay   time.Duration
}

type accountPost struct {
	post x_api.Post
	user *x_api.User
}

func NewXGateway(client *x_api.Client, accounts []string, postsPerUser, topLimit int, fetchDelay time.Duration) *XGateway {
	return &XGateway{
		client:       client,
		accounts:     accounts,
		postsPerUser: postsPerUser,
		topLimit:     topLimit,
		fetchDelay:   fetchDelay,
	}
}

func (g *XGateway) Name() string {
	return "x"
}

func (g *XGateway) FetchCandidates(ctx context.Context) ([]*domain.Candidate, error) {
	var allPosts []accountPost
	var lastErr error

	for i, handle := range g.accounts {
		if i > 0 {
			if err := sleepCtx(ctx, g.fetchDelay); err != nil {
				return nil, err
			}
		}

		posts, user, err := g.fetchAccount(ctx, handle)
		if err != nil {
			lastErr = err
			logger.Logger.Error("error fetching x account", "handle", handle, "error", err)

			var rateLimitErr *x_api.RateLimitError
			if errors.As(err, &rateLimitErr) {
				if waitErr := sleepCtx(ctx, time.Until(rateLimitErr.Reset)); waitErr != nil {
					return nil, waitErr
				}
			}
			continue
		}

		for _, post := range posts {
			allPosts = append(allPosts, accountPost{post: post, user: user})
		}
	}

	if len(allPosts) == 0 && lastErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, lastErr)
	}

	sort.SliceStable(allPosts, func(i, j int) bool {
		return engagement(allPosts[i].post) > engagement(allPosts[j].post)
	})
	if len(allPosts) > g.topLimit {
		allPosts = allPosts[:g.topLimit]
	}

	candidates := make([]*domain.Candidate, 0, len(allPosts))
	for _, entry := range allPosts {
		if entry.post.ID == "" {
			continue
		}
		candidates = append(candidates, g.toCandidate(entry))
	}

	logger.Logger.Info("x candidates fetched", "count", len(candidates), "accounts", len(g.accounts))

	return candidates, nil
}

func (g *XGateway) fetchAccount(ctx context.Context, handle string) ([]x_api.Post, *x_api.User, error) {
	user, err := g.client.UserByUsername(ctx, handle)
	if err != nil {
		return nil, nil, err
	}

	posts, err := g.client.UserTimeline(ctx, user.ID, g.postsPerUser)
	if err != nil {
		return nil, nil, err
	}

	return posts, user, nil
}

func (g *XGateway) toCandidate(entry accountPost) *domain.Candidate {
	handle := entry.user.Username
	text := entry.post.Text

	title := fmt.Sprintf("@%s: %s", handle, text)
	if len([]rune(text)) > domain.ExcerptLimit {
		title = fmt.Sprintf("@%s: %s...", handle, string([]rune(text)[:97]))
	}

	metrics := entry.post.PublicMetrics

	return &domain.Candidate{
		ProviderID:   entry.post.ID,
		Title:        title,
		URL:          fmt.Sprintf("https://x.com/%s/status/%s", handle, entry.post.ID),
		Excerpt:      text,
		Source:       fmt.Sprintf("X: @%s", handle),
		Popularity:   engagement(entry.post),
		PublishedAt:  entry.post.CreatedAt,
		ProviderTags: []string{"x", "@" + strings.ToLower(handle)},
		Metadata: map[string]any{
			"author":          entry.user.Name,
			"author_username": handle,
			"author_image":    entry.user.ProfileImageURL,
			"likes":           metrics.LikeCount,
			"retweets":        metrics.RetweetCount,
			"replies":         metrics.ReplyCount,
		},
	}
}

func engagement(post x_api.Post) int {
	return post.PublicMetrics.LikeCount + post.PublicMetrics.RetweetCount
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
