package hud_db

import (
	"context"
	"errors"
	"testing"
	"time"

	"hud/driver/models"
	"hud/utils/logger"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFeedItem() *models.FeedItem {
	return &models.FeedItem{
		Title:       "Go 1.26 released",
		URL:         "https://example.com/go-release",
		Source:      "HackerNews",
		Popularity:  321,
		Tags:        []string{"go", "release"},
		PublishedAt: time.Date(2026, time.August, 20, 9, 0, 0, 0, time.UTC),
		Metadata:    map[string]any{"author": "gopher"},
	}
}

func TestInsertFeedItem_NewItem(t *testing.T) {
	logger.InitLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &HudDBRepository{pool: mock}
	item := testFeedItem()

	newID := uuid.New()
	createdAt := time.Now()
	mock.ExpectQuery("INSERT INTO feed_items").
		WithArgs(item.Title, item.URL, item.Source, item.Popularity, item.Tags, item.PublishedAt, item.Metadata).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(newID, createdAt))

	inserted, err := repo.InsertFeedItem(context.Background(), item)

	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, newID, item.ID)
	assert.Equal(t, createdAt, item.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertFeedItem_URLConflictIsNotAnError(t *testing.T) {
	logger.InitLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &HudDBRepository{pool: mock}
	item := testFeedItem()

	// ON CONFLICT DO NOTHING yields no row for duplicates
	mock.ExpectQuery("INSERT INTO feed_items").
		WithArgs(item.Title, item.URL, item.Source, item.Popularity, item.Tags, item.PublishedAt, item.Metadata).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}))

	inserted, err := repo.InsertFeedItem(context.Background(), item)

	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertFeedItem_QueryError(t *testing.T) {
	logger.InitLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &HudDBRepository{pool: mock}
	item := testFeedItem()

	mock.ExpectQuery("INSERT INTO feed_items").
		WithArgs(item.Title, item.URL, item.Source, item.Popularity, item.Tags, item.PublishedAt, item.Metadata).
		WillReturnError(errors.New("connection reset"))

	inserted, err := repo.InsertFeedItem(context.Background(), item)

	assert.Error(t, err)
	assert.False(t, inserted)
}

func TestFeedItemExistsByURL(t *testing.T) {
	logger.InitLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &HudDBRepository{pool: mock}
	urls := []string{"https://example.com/a", "https://reddit.com/r/x/1"}

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(urls).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.FeedItemExistsByURL(context.Background(), urls)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFeedItems(t *testing.T) {
	logger.InitLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &HudDBRepository{pool: mock}

	idA, idB := uuid.New(), uuid.New()
	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "title", "url", "source", "popularity", "tags", "published_at", "created_at", "metadata"}).
		AddRow(idA, "Newest", "https://example.com/new", "HackerNews", 100, []string{"go"}, now, now, map[string]any(nil)).
		AddRow(idB, "Older", "https://example.com/old", "Reddit:r/programming", 50, []string{"rust"}, now.Add(-time.Hour), now, map[string]any(nil))

	mock.ExpectQuery("SELECT (.+) FROM feed_items ORDER BY published_at DESC").
		WithArgs(50).
		WillReturnRows(rows)

	items, err := repo.FetchFeedItems(context.Background(), 50)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Newest", items[0].Title)
	assert.Equal(t, idB, items[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFeedItemsByTags(t *testing.T) {
	logger.InitLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &HudDBRepository{pool: mock}

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "title", "url", "source", "popularity", "tags", "published_at", "created_at", "metadata"}).
		AddRow(uuid.New(), "AI story", "https://example.com/ai", "X: @alpha", 10, []string{"ai"}, now, now, map[string]any(nil))

	mock.ExpectQuery("SELECT (.+) FROM feed_items WHERE tags &&").
		WithArgs([]string{"ai", "golang"}, 50).
		WillReturnRows(rows)

	items, err := repo.FetchFeedItemsByTags(context.Background(), []string{"ai", "golang"}, 50)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "AI story", items[0].Title)
}

func TestFetchFeedItemsByIDs_EmptyInputShortCircuits(t *testing.T) {
	logger.InitLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &HudDBRepository{pool: mock}

	items, err := repo.FetchFeedItemsByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, items)
	// No query must be issued
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpiredFeedItems(t *testing.T) {
	logger.InitLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &HudDBRepository{pool: mock}
	cutoff := time.Now().Add(-720 * time.Hour)

	mock.ExpectExec("DELETE FROM feed_items").
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 13))

	deleted, err := repo.DeleteExpiredFeedItems(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(13), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
