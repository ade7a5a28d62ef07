package hud_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hud/driver/models"
	"hud/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const feedItemColumns = "id, title, url, source, popularity, tags, published_at, created_at, metadata"

// InsertFeedItem persists a new feed item. The unique index on url makes the
// insert conflict-safe: a duplicate URL is reported as inserted=false, not an
// error, so concurrent pipeline runs cannot double-insert.
func (r *HudDBRepository) InsertFeedItem(ctx context.Context, item *models.FeedItem) (bool, error) {
	if r.pool == nil {
		return false, errors.New("database connection not available")
	}

	query := `
		INSERT INTO feed_items (title, url, source, popularity, tags, published_at, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (url) DO NOTHING
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		item.Title,
		item.URL,
		item.Source,
		item.Popularity,
		item.Tags,
		item.PublishedAt,
		item.Metadata,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict on url: already stored
			return false, nil
		}
		logger.Logger.Error("error inserting feed item", "url", item.URL, "error", err)
		return false, fmt.Errorf("error inserting feed item: %w", err)
	}

	return true, nil
}

// FeedItemExistsByURL reports whether any of the given URLs is already stored.
func (r *HudDBRepository) FeedItemExistsByURL(ctx context.Context, urls []string) (bool, error) {
	if r.pool == nil {
		return false, errors.New("database connection not available")
	}

	query := `SELECT EXISTS (SELECT 1 FROM feed_items WHERE url = ANY($1))`

	var exists bool
	err := r.pool.QueryRow(ctx, query, urls).Scan(&exists)
	if err != nil {
		logger.Logger.Error("error checking feed item existence", "error", err)
		return false, fmt.Errorf("error checking feed item existence: %w", err)
	}

	return exists, nil
}

// FetchFeedItems returns stored items newest-published-first.
func (r *HudDBRepository) FetchFeedItems(ctx context.Context, limit int) ([]*models.FeedItem, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM feed_items ORDER BY published_at DESC LIMIT $1
	`, feedItemColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		logger.Logger.Error("error fetching feed items", "error", err)
		return nil, fmt.Errorf("error fetching feed items: %w", err)
	}
	defer rows.Close()

	return scanFeedItems(rows)
}

// FetchFeedItemsByTags returns items whose tag set overlaps the given focus
// areas, newest-published-first.
func (r *HudDBRepository) FetchFeedItemsByTags(ctx context.Context, focusAreas []string, limit int) ([]*models.FeedItem, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM feed_items WHERE tags && $1 ORDER BY published_at DESC LIMIT $2
	`, feedItemColumns)

	rows, err := r.pool.Query(ctx, query, focusAreas, limit)
	if err != nil {
		logger.Logger.Error("error fetching feed items by tags", "error", err)
		return nil, fmt.Errorf("error fetching feed items by tags: %w", err)
	}
	defer rows.Close()

	return scanFeedItems(rows)
}

// FetchFeedItemsByIDs resolves a set of item ids. Missing ids are absent from
// the result rather than errors; bookmark listings tolerate dangling refs.
func (r *HudDBRepository) FetchFeedItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.FeedItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT %s FROM feed_items WHERE id = ANY($1)
	`, feedItemColumns)

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		logger.Logger.Error("error fetching feed items by ids", "error", err)
		return nil, fmt.Errorf("error fetching feed items by ids: %w", err)
	}
	defer rows.Close()

	return scanFeedItems(rows)
}

// DeleteExpiredFeedItems removes items older than cutoff that no bookmark
// references. Returns the number of rows deleted.
func (r *HudDBRepository) DeleteExpiredFeedItems(ctx context.Context, cutoff time.Time) (int64, error) {
	if r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	query := `
		DELETE FROM feed_items fi
		WHERE fi.created_at < $1
		  AND NOT EXISTS (SELECT 1 FROM bookmarks b WHERE b.item_id = fi.id)
	`

	tag, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		logger.Logger.Error("error deleting expired feed items", "error", err)
		return 0, fmt.Errorf("error deleting expired feed items: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanFeedItems(rows pgx.Rows) ([]*models.FeedItem, error) {
	var items []*models.FeedItem
	for rows.Next() {
		var item models.FeedItem
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.URL,
			&item.Source,
			&item.Popularity,
			&item.Tags,
			&item.PublishedAt,
			&item.CreatedAt,
			&item.Metadata,
		)
		if err != nil {
			logger.Logger.Error("error scanning feed item", "error", err)
			return nil, errors.New("error scanning feed item")
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}
