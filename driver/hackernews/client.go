package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hud/utils/logger"
)

// Story is the raw item payload from the Hacker News Firebase API.
type Story struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
	Score int    `json:"score"`
	Time  int64  `json:"time"`
	By    string `json:"by"`
	Type  string `json:"type"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// TopStories fetches the public top-stories id list.
func (c *Client) TopStories(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := c.getJSON(ctx, c.baseURL+"/topstories.json", &ids); err != nil {
		return nil, fmt.Errorf("fetching top stories: %w", err)
	}
	return ids, nil
}

// Story fetches one story's detail. Dead or deleted ids decode to an empty
// story, which the gateway skips.
func (c *Client) Story(ctx context.Context, id int64) (*Story, error) {
	var story Story
	url := fmt.Sprintf("%s/item/%d.json", c.baseURL, id)
	if err := c.getJSON(ctx, url, &story); err != nil {
		return nil, fmt.Errorf("fetching story %d: %w", id, err)
	}
	return &story, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Logger.Error("hackernews request failed", "url", url, "status", resp.StatusCode)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
