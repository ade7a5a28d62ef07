package reddit_gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hud/domain"
	"hud/driver/reddit"
	"hud/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingBody(posts ...map[string]any) map[string]any {
	children := make([]map[string]any, 0, len(posts))
	for _, post := range posts {
		children = append(children, map[string]any{"data": post})
	}
	return map[string]any{"data": map[string]any{"children": children}}
}

func redditPost(id, subreddit, title string, score int) map[string]any {
	return map[string]any{
		"id":           id,
		"title":        title,
		"url":          "https://example.com/" + id,
		"permalink":    fmt.Sprintf("/r/%s/comments/%s/slug/", subreddit, id),
		"subreddit":    subreddit,
		"author":       "someone",
		"score":        score,
		"num_comments": 12,
		"created_utc":  1756300000.0,
	}
}

func TestRedditGateway_FetchCandidates_MergesAndRanksAcrossSubreddits(t *testing.T) {
	logger.InitLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		switch {
		case strings.HasPrefix(r.URL.Path, "/r/programming/"):
			json.NewEncoder(w).Encode(listingBody(
				redditPost("p1", "programming", "Low scorer", 50),
				redditPost("p2", "programming", "Top scorer", 900),
			))
		case strings.HasPrefix(r.URL.Path, "/r/technology/"):
			json.NewEncoder(w).Encode(listingBody(
				redditPost("t1", "technology", "Middle scorer", 400),
			))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := reddit.NewClient(server.URL, "hud/1.0", server.Client())
	gateway := NewRedditGateway(client, []string{"programming", "technology"}, 10, 2)

	candidates, err := gateway.FetchCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Top scorer", candidates[0].Title)
	assert.Equal(t, "Middle scorer", candidates[1].Title)

	assert.Equal(t, "Reddit:r/programming", candidates[0].Source)
	assert.Equal(t, []string{"r/programming"}, candidates[0].ProviderTags)
	assert.Equal(t, "https://example.com/p2", candidates[0].URL)
	assert.Equal(t, "https://reddit.com/r/programming/comments/p2/slug/", candidates[0].AlternateURL)
	assert.Equal(t, "someone", candidates[0].Metadata["author"])
}

func TestRedditGateway_FetchCandidates_SelfPostUsesPermalink(t *testing.T) {
	logger.InitLogger()

	post := redditPost("s1", "webdev", "Discussion thread", 10)
	post["url"] = "/r/webdev/comments/s1/slug/"
	post["selftext"] = strings.Repeat("w", 150)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(listingBody(post))
	}))
	defer server.Close()

	client := reddit.NewClient(server.URL, "hud/1.0", server.Client())
	gateway := NewRedditGateway(client, []string{"webdev"}, 10, 20)

	candidates, err := gateway.FetchCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "https://reddit.com/r/webdev/comments/s1/slug/", candidates[0].URL)
	// Long selftext is truncated with an ellipsis marker
	assert.Equal(t, strings.Repeat("w", domain.ExcerptLimit)+"...", candidates[0].Excerpt)
}

func TestRedditGateway_FetchCandidates_OneSubredditFailing(t *testing.T) {
	logger.InitLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/r/broken/") {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(listingBody(redditPost("ok1", "programming", "Still here", 77)))
	}))
	defer server.Close()

	client := reddit.NewClient(server.URL, "hud/1.0", server.Client())
	gateway := NewRedditGateway(client, []string{"broken", "programming"}, 10, 20)

	candidates, err := gateway.FetchCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Still here", candidates[0].Title)
}

func TestRedditGateway_FetchCandidates_AllSubredditsFailing(t *testing.T) {
	logger.InitLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := reddit.NewClient(server.URL, "hud/1.0", server.Client())
	gateway := NewRedditGateway(client, []string{"programming", "technology"}, 10, 20)

	candidates, err := gateway.FetchCandidates(context.Background())

	assert.Nil(t, candidates)
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}
