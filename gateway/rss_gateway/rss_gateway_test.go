package rss_gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hud/domain"
	"hud/driver/rss"
	"hud/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>%s</title>
    <link>https://example.com</link>
    %s
  </channel>
</rss>`

func rssItem(title, link, description, pubDate string) string {
	return fmt.Sprintf(`<item>
  <title>%s</title>
  <link>%s</link>
  <description>%s</description>
  <pubDate>%s</pubDate>
</item>`, title, link, description, pubDate)
}

func TestRSSGateway_FetchCandidates(t *testing.T) {
	logger.InitLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, feedTemplate, "Engineering Blog",
			rssItem("Older post", "https://example.com/old", "<p>older content</p>", "Mon, 18 Aug 2026 08:00:00 GMT")+
				rssItem("Newer post", "https://example.com/new", "fresh content", "Tue, 25 Aug 2026 08:00:00 GMT")+
				rssItem("", "https://example.com/untitled", "skipped", "Tue, 25 Aug 2026 09:00:00 GMT"))
	}))
	defer server.Close()

	client := rss.NewClient(server.Client())
	gateway := NewRSSGateway(client, []string{server.URL + "/feed.xml"}, 20, nil)

	candidates, err := gateway.FetchCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// Newest-published-first
	assert.Equal(t, "Newer post", candidates[0].Title)
	assert.Equal(t, "Older post", candidates[1].Title)

	assert.Equal(t, "RSS:Engineering Blog", candidates[0].Source)
	assert.Equal(t, "https://example.com/new", candidates[0].URL)
	assert.Equal(t, "older content", candidates[1].Excerpt)
}

func TestRSSGateway_FetchCandidates_HonorsTopLimit(t *testing.T) {
	logger.InitLogger()

	var items string
	for i := 0; i < 30; i++ {
		items += rssItem(fmt.Sprintf("Post %d", i), fmt.Sprintf("https://example.com/%d", i),
			"content", fmt.Sprintf("Mon, %02d Aug 2026 08:00:00 GMT", (i%28)+1))
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, feedTemplate, "Busy Feed", items)
	}))
	defer server.Close()

	client := rss.NewClient(server.Client())
	gateway := NewRSSGateway(client, []string{server.URL}, 5, nil)

	candidates, err := gateway.FetchCandidates(context.Background())

	require.NoError(t, err)
	assert.Len(t, candidates, 5)
}

func TestRSSGateway_FetchCandidates_AllFeedsFailing(t *testing.T) {
	logger.InitLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	client := rss.NewClient(server.Client())
	gateway := NewRSSGateway(client, []string{server.URL}, 20, nil)

	candidates, err := gateway.FetchCandidates(context.Background())

	assert.Nil(t, candidates)
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestRSSGateway_FetchCandidates_OneFeedFailing(t *testing.T) {
	logger.InitLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken.xml" {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, feedTemplate, "Healthy Feed",
			rssItem("Alive", "https://example.com/alive", "ok", "Tue, 25 Aug 2026 08:00:00 GMT"))
	}))
	defer server.Close()

	client := rss.NewClient(server.Client())
	gateway := NewRSSGateway(client, []string{server.URL + "/broken.xml", server.URL + "/ok.xml"}, 20, nil)

	candidates, err := gateway.FetchCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Alive", candidates[0].Title)
}
