package rss

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mmcdole/gofeed"
)

// Client fetches and parses RSS/Atom feeds for the supplemental RSS provider.
type Client struct {
	parser *gofeed.Parser
}

func NewClient(httpClient *http.Client) *Client {
	parser := gofeed.NewParser()
	parser.Client = httpClient
	return &Client{parser: parser}
}

func (c *Client) Fetch(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", feedURL, err)
	}
	return feed, nil
}
