package feed_item_gateway

import (
	"context"
	"errors"
	"time"

	"hud/domain"
	"hud/driver/hud_db"
	"hud/driver/models"

	"github.com/google/uuid"
)

// FeedItemGateway adapts the Postgres repository to the feed item port.
type FeedItemGateway struct {
	hudDB *hud_db.HudDBRepository
}

func NewFeedItemGateway(hudDB *hud_db.HudDBRepository) *FeedItemGateway {
	return &FeedItemGateway{hudDB: hudDB}
}

func (g *FeedItemGateway) ExistsByURL(ctx context.Context, urls []string) (bool, error) {
	if g.hudDB == nil {
		return false, errors.New("database connection not available")
	}
	return g.hudDB.FeedItemExistsByURL(ctx, urls)
}

func (g *FeedItemGateway) Create(ctx context.Context, item *domain.FeedItem) (bool, error) {
	if g.hudDB == nil {
		return false, errors.New("database connection not available")
	}

	row := &models.FeedItem{
		Title:       item.Title,
		URL:         item.URL,
		Source:      item.Source,
		Popularity:  item.Popularity,
		Tags:        item.Tags,
		PublishedAt: item.PublishedAt,
		Metadata:    item.Metadata,
	}

	inserted, err := g.hudDB.InsertFeedItem(ctx, row)
	if err != nil {
		return false, err
	}
	if inserted {
		// id and created_at are storage-assigned
		item.ID = row.ID
		item.CreatedAt = row.CreatedAt
	}

	return inserted, nil
}

func (g *FeedItemGateway) FetchFeedList(ctx context.Context, limit int) ([]*domain.FeedItem, error) {
	rows, err := g.hudDB.FetchFeedItems(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toDomainItems(rows), nil
}

func (g *FeedItemGateway) FetchFeedListByTags(ctx context.Context, focusAreas []string, limit int) ([]*domain.FeedItem, error) {
	rows, err := g.hudDB.FetchFeedItemsByTags(ctx, domain.LowercaseAll(focusAreas), limit)
	if err != nil {
		return nil, err
	}
	return toDomainItems(rows), nil
}

func (g *FeedItemGateway) FetchByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.FeedItem, error) {
	rows, err := g.hudDB.FetchFeedItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toDomainItems(rows), nil
}

func (g *FeedItemGateway) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	if g.hudDB == nil {
		return 0, errors.New("database connection not available")
	}
	return g.hudDB.DeleteExpiredFeedItems(ctx, cutoff)
}

func toDomainItems(rows []*models.FeedItem) []*domain.FeedItem {
	items := make([]*domain.FeedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &domain.FeedItem{
			ID:          row.ID,
			Title:       row.Title,
			URL:         row.URL,
			Source:      row.Source,
			Popularity:  row.Popularity,
			Tags:        row.Tags,
			PublishedAt: row.PublishedAt,
			CreatedAt:   row.CreatedAt,
			Metadata:    row.Metadata,
		})
	}
	return items
}
