package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedItem is the normalized record shown in a user's feed. Items are created
// exclusively by the ingestion pipeline and deleted exclusively by the
// retention sweeper.
type FeedItem struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	URL         string         `json:"url"`
	Source      string         `json:"source"`
	Popularity  int            `json:"popularity"`
	Tags        []string       `json:"tags"`
	PublishedAt time.Time      `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Candidate is a raw item fetched from an external provider, not yet
// deduplicated or tagged. AlternateURL carries a second identity for
// sources where the external link and the permalink may differ (Reddit, X);
// dedup checks both.
type Candidate struct {
	ProviderID   string
	Title        string
	URL          string
	AlternateURL string
	Excerpt      string
	Source       string
	Popularity   int
	PublishedAt  time.Time
	ProviderTags []string
	Metadata     map[string]any
}

// Valid reports whether the candidate carries enough identity to ingest.
// Malformed candidates are skipped, not errored.
func (c *Candidate) Valid() bool {
	return c.ProviderID != "" && c.Title != ""
}
