package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedItem mirrors the feed_items table row.
type FeedItem struct {
	ID          uuid.UUID
	Title       string
	URL         string
	Source      string
	Popularity  int
	Tags        []string
	PublishedAt time.Time
	CreatedAt   time.Time
	Metadata    map[string]any
}

// Bookmark mirrors the bookmarks table row.
type Bookmark struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ItemID    uuid.UUID
	CreatedAt time.Time
}
