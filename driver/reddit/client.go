package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hud/utils/logger"
)

// Post is the raw post payload from the Reddit listing API.
type Post struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Permalink   string  `json:"permalink"`
	Selftext    string  `json:"selftext"`
	Subreddit   string  `json:"subreddit"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

type listing struct {
	Data struct {
		Children []struct {
			Data Post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewClient(baseURL, userAgent string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, userAgent: userAgent, httpClient: httpClient}
}

// TopPosts fetches the day's top posts for one subreddit.
func (c *Client) TopPosts(ctx context.Context, subreddit string, limit int) ([]Post, error) {
	url := fmt.Sprintf("%s/r/%s/top.json?limit=%d&t=day", c.baseURL, subreddit, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	// Reddit rejects requests without a descriptive User-Agent
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching r/%s: %w", subreddit, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Logger.Error("reddit request failed", "subreddit", subreddit, "status", resp.StatusCode)
		return nil, fmt.Errorf("fetching r/%s: unexpected status %d", subreddit, resp.StatusCode)
	}

	var body listing
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding r/%s listing: %w", subreddit, err)
	}

	posts := make([]Post, 0, len(body.Data.Children))
	for _, child := range body.Data.Children {
		posts = append(posts, child.Data)
	}

	return posts, nil
}
