package x_api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"hud/utils/logger"
)

// User is the raw account payload from the X API v2.
type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url"`
}

// PublicMetrics carries a post's engagement counters.
type PublicMetrics struct {
	LikeCount    int `json:"like_count"`
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
}

// Post is the raw post payload from the X API v2.
type Post struct {
	ID            string        `json:"id"`
	Text          string        `json:"text"`
	CreatedAt     time.Time     `json:"created_at"`
	PublicMetrics PublicMetrics `json:"public_metrics"`
}

// RateLimitError reports an exhausted rate-limit window with the provider's
// reset time. Callers wait until Reset and resume instead of failing.
type RateLimitError struct {
	Reset time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited until %s", e.Reset.Format(time.RFC3339))
}

type Client struct {
	baseURL     string
	bearerToken string
	httpClient  *http.Client
}

func NewClient(baseURL, bearerToken string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, bearerToken: bearerToken, httpClient: httpClient}
}

// UserByUsername resolves an account handle to its user record.
func (c *Client) UserByUsername(ctx context.Context, username string) (*User, error) {
	url := fmt.Sprintf("%s/2/users/by/username/%s?user.fields=name,username,profile_image_url", c.baseURL, username)

	var body struct {
		Data User `json:"data"`
	}
	if err := c.getJSON(ctx, url, &body); err != nil {
		return nil, fmt.Errorf("resolving @%s: %w", username, err)
	}

	return &body.Data, nil
}

// UserTimeline fetches the account's most recent posts with engagement metrics.
func (c *Client) UserTimeline(ctx context.Context, userID string, maxResults int) ([]Post, error) {
	url := fmt.Sprintf("%s/2/users/%s/tweets?tweet.fields=created_at,public_metrics&max_results=%d", c.baseURL, userID, maxResults)

	var body struct {
		Data []Post `json:"data"`
	}
	if err := c.getJSON(ctx, url, &body); err != nil {
		return nil, fmt.Errorf("fetching timeline for %s: %w", userID, err)
	}

	return body.Data, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		reset := parseRateLimitReset(resp.Header.Get("x-rate-limit-reset"))
		logger.Logger.Warn("x api rate limited", "url", url, "reset", reset)
		return &RateLimitError{Reset: reset}
	}

	if resp.StatusCode != http.StatusOK {
		logger.Logger.Error("x api request failed", "url", url, "status", resp.StatusCode)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func parseRateLimitReset(header string) time.Time {
	epoch, err := strconv.ParseInt(header, 10, 64)
	if err != nil || epoch == 0 {
		// Missing reset header: back off one minute
		return time.Now().Add(time.Minute)
	}
	return time.Unix(epoch, 0)
}
