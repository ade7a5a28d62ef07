package hud_db

import (
	"context"
	"errors"
	"fmt"

	"hud/driver/models"
	"hud/utils/logger"

	"github.com/google/uuid"
)

// InsertBookmark records a bookmark for the user. Re-bookmarking the same
// item is idempotent thanks to the (user_id, item_id) unique constraint.
func (r *HudDBRepository) InsertBookmark(ctx context.Context, userID, itemID uuid.UUID) (*models.Bookmark, error) {
	if r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		INSERT INTO bookmarks (user_id, item_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, item_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, item_id, created_at
	`

	var bookmark models.Bookmark
	err := r.pool.QueryRow(ctx, query, userID, itemID).Scan(
		&bookmark.ID,
		&bookmark.UserID,
		&bookmark.ItemID,
		&bookmark.CreatedAt,
	)
	if err != nil {
		logger.Logger.Error("error inserting bookmark", "user_id", userID, "item_id", itemID, "error", err)
		return nil, fmt.Errorf("error inserting bookmark: %w", err)
	}

	return &bookmark, nil
}

// DeleteBookmark removes the user's bookmark for an item. Deleting a missing
// bookmark returns zero rows, reported to the caller as deleted=false.
func (r *HudDBRepository) DeleteBookmark(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	if r.pool == nil {
		return false, errors.New("database connection not available")
	}

	query := `DELETE FROM bookmarks WHERE user_id = $1 AND item_id = $2`

	tag, err := r.pool.Exec(ctx, query, userID, itemID)
	if err != nil {
		logger.Logger.Error("error deleting bookmark", "user_id", userID, "item_id", itemID, "error", err)
		return false, fmt.Errorf("error deleting bookmark: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// FetchBookmarksByUser lists the user's bookmarks, newest first.
func (r *HudDBRepository) FetchBookmarksByUser(ctx context.Context, userID uuid.UUID) ([]*models.Bookmark, error) {
	query := `
		SELECT id, user_id, item_id, created_at FROM bookmarks
		WHERE user_id = $1 ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		logger.Logger.Error("error fetching bookmarks", "user_id", userID, "error", err)
		return nil, fmt.Errorf("error fetching bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []*models.Bookmark
	for rows.Next() {
		var bookmark models.Bookmark
		err := rows.Scan(&bookmark.ID, &bookmark.UserID, &bookmark.ItemID, &bookmark.CreatedAt)
		if err != nil {
			logger.Logger.Error("error scanning bookmark", "error", err)
			return nil, errors.New("error scanning bookmark")
		}
		bookmarks = append(bookmarks, &bookmark)
	}

	return bookmarks, rows.Err()
}
