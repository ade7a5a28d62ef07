package bookmark_usecase

import (
	"context"
	"time"

	"hud/domain"
	"hud/port/bookmark_port"
	"hud/port/feed_item_port"

	"github.com/google/uuid"
)

// BookmarkedItem pairs a stored feed item with when the user bookmarked it.
type BookmarkedItem struct {
	Item         *domain.FeedItem `json:"item"`
	BookmarkedAt time.Time        `json:"bookmarked_at"`
}

type BookmarkUsecase struct {
	bookmarks bookmark_port.BookmarkPort
	feedItems feed_item_port.FeedItemPort
}

func NewBookmarkUsecase(bookmarks bookmark_port.BookmarkPort, feedItems feed_item_port.FeedItemPort) *BookmarkUsecase {
	return &BookmarkUsecase{bookmarks: bookmarks, feedItems: feedItems}
}

func (u *BookmarkUsecase) Create(ctx context.Context, userID, itemID uuid.UUID) (*domain.Bookmark, error) {
	return u.bookmarks.Create(ctx, userID, itemID)
}

func (u *BookmarkUsecase) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	return u.bookmarks.Delete(ctx, userID, itemID)
}

// List returns the user's bookmarked items, newest bookmark first. Bookmarks
// whose item has disappeared are skipped rather than surfaced as errors.
func (u *BookmarkUsecase) List(ctx context.Context, userID uuid.UUID) ([]*BookmarkedItem, error) {
	bookmarks, err := u.bookmarks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(bookmarks) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		ids = append(ids, bookmark.ItemID)
	}

	items, err := u.feedItems.FetchByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	itemsByID := make(map[uuid.UUID]*domain.FeedItem, len(items))
	for _, item := range items {
		itemsByID[item.ID] = item
	}

	result := make([]*BookmarkedItem, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		item, ok := itemsByID[bookmark.ItemID]
		if !ok {
			continue
		}
		result = append(result, &BookmarkedItem{
			Item:         item,
			BookmarkedAt: bookmark.CreatedAt,
		})
	}

	return result, nil
}
