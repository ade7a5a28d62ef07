package rest

import (
	"hud/domain"
	"hud/usecase/bookmark_usecase"
)

type IngestResponse struct {
	Status       string `json:"status"`
	Inserted     int    `json:"inserted"`
	TotalFetched *int   `json:"total_fetched,omitempty"`
	Message      string `json:"message,omitempty"`
}

type IngestAllResponse struct {
	Status  string           `json:"status"`
	Results []IngestResponse `json:"results"`
}

type FeedResponse struct {
	Items []*domain.FeedItem `json:"items"`
}

type SweepResponse struct {
	Cleaned bool  `json:"cleaned"`
	Deleted int64 `json:"deleted"`
}

type BookmarkRequest struct {
	ItemID string `json:"item_id"`
}

type BookmarkListResponse struct {
	Bookmarks []*bookmark_usecase.BookmarkedItem `json:"bookmarks"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
