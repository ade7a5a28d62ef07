package bookmark_gateway

import (
	"context"
	"errors"

	"hud/domain"
	"hud/driver/hud_db"

	"github.com/google/uuid"
)

type BookmarkGateway struct {
	hudDB *hud_db.HudDBRepository
}

func NewBookmarkGateway(hudDB *hud_db.HudDBRepository) *BookmarkGateway {
	return &BookmarkGateway{hudDB: hudDB}
}

func (g *BookmarkGateway) Create(ctx context.Context, userID, itemID uuid.UUID) (*domain.Bookmark, error) {
	if g.hudDB == nil {
		return nil, errors.New("database connection not available")
	}

	row, err := g.hudDB.InsertBookmark(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	return &domain.Bookmark{
		ID:        row.ID,
		UserID:    row.UserID,
		ItemID:    row.ItemID,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (g *BookmarkGateway) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if g.hudDB == nil {
		return errors.New("database connection not available")
	}

	deleted, err := g.hudDB.DeleteBookmark(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrBookmarkNotFound
	}

	return nil
}

func (g *BookmarkGateway) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error) {
	rows, err := g.hudDB.FetchBookmarksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookmarks := make([]*domain.Bookmark, 0, len(rows))
	for _, row := range rows {
		bookmarks = append(bookmarks, &domain.Bookmark{
			ID:        row.ID,
			UserID:    row.UserID,
			ItemID:    row.ItemID,
			CreatedAt: row.CreatedAt,
		})
	}

	return bookmarks, nil
}
