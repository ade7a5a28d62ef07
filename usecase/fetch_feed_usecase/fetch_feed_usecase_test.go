package fetch_feed_usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hud/domain"
	"hud/mocks"
	"hud/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authedContext(userID uuid.UUID) context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    userID,
		Email:     "reader@example.com",
		SessionID: "session-1",
		LoginAt:   time.Now().Add(-time.Hour),
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func feedItems(n int) []*domain.FeedItem {
	items := make([]*domain.FeedItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &domain.FeedItem{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("Item %d", i),
			URL:         fmt.Sprintf("https://example.com/%d", i),
			Source:      "HackerNews",
			PublishedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		})
	}
	return items
}

func TestFetchFeedUsecase_Execute_AnonymousGetsUnfilteredFeed(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := mocks.NewMockFeedItemPort(ctrl)
	prefs := mocks.NewMockPreferencePort(ctrl)

	want := feedItems(3)
	store.EXPECT().FetchFeedList(ctx, FeedLimit).Return(want, nil)

	usecase := NewFetchFeedUsecase(store, prefs, nil)
	got, err := usecase.Execute(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchFeedUsecase_Execute_FiltersByFocusAreas(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	ctx := authedContext(userID)

	store := mocks.NewMockFeedItemPort(ctrl)
	prefs := mocks.NewMockPreferencePort(ctrl)

	want := feedItems(2)
	prefs.EXPECT().FocusAreas(ctx, userID).Return([]string{"ai", "golang"}, nil)
	store.EXPECT().FetchFeedListByTags(ctx, []string{"ai", "golang"}, FeedLimit).Return(want, nil)

	usecase := NewFetchFeedUsecase(store, prefs, nil)
	got, err := usecase.Execute(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchFeedUsecase_Execute_EmptyFocusAreasServeFullFeed(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	ctx := authedContext(userID)

	store := mocks.NewMockFeedItemPort(ctrl)
	prefs := mocks.NewMockPreferencePort(ctrl)

	prefs.EXPECT().FocusAreas(ctx, userID).Return(nil, nil)
	store.EXPECT().FetchFeedList(ctx, FeedLimit).Return(feedItems(1), nil)

	usecase := NewFetchFeedUsecase(store, prefs, nil)
	got, err := usecase.Execute(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFetchFeedUsecase_Execute_PreferenceFailureDegradesToUnfiltered(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	ctx := authedContext(userID)

	store := mocks.NewMockFeedItemPort(ctrl)
	prefs := mocks.NewMockPreferencePort(ctrl)

	prefs.EXPECT().FocusAreas(ctx, userID).Return(nil, fmt.Errorf("connection refused"))
	store.EXPECT().FetchFeedList(ctx, FeedLimit).Return(feedItems(2), nil)

	usecase := NewFetchFeedUsecase(store, prefs, nil)
	got, err := usecase.Execute(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFetchFeedUsecase_Execute_StorageErrorPropagates(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := mocks.NewMockFeedItemPort(ctrl)
	prefs := mocks.NewMockPreferencePort(ctrl)

	store.EXPECT().FetchFeedList(ctx, FeedLimit).Return(nil, fmt.Errorf("query timeout"))

	usecase := NewFetchFeedUsecase(store, prefs, nil)
	got, err := usecase.Execute(ctx)

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestFetchFeedUsecase_Execute_ServesFromCacheOnHit(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := mocks.NewMockFeedItemPort(ctrl)
	prefs := mocks.NewMockPreferencePort(ctrl)
	cache := mocks.NewMockFeedCachePort(ctrl)

	want := feedItems(2)
	cache.EXPECT().Get(ctx, "feed:all").Return(want, true)

	usecase := NewFetchFeedUsecase(store, prefs, cache)
	got, err := usecase.Execute(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchFeedUsecase_Execute_CacheMissFallsThroughAndStores(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := mocks.NewMockFeedItemPort(ctrl)
	prefs := mocks.NewMockPreferencePort(ctrl)
	cache := mocks.NewMockFeedCachePort(ctrl)

	want := feedItems(2)
	cache.EXPECT().Get(ctx, "feed:all").Return(nil, false)
	store.EXPECT().FetchFeedList(ctx, FeedLimit).Return(want, nil)
	cache.EXPECT().Set(ctx, "feed:all", want)

	usecase := NewFetchFeedUsecase(store, prefs, cache)
	got, err := usecase.Execute(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFeedCacheKey(t *testing.T) {
	assert.Equal(t, "feed:all", feedCacheKey(nil))
	assert.Equal(t, "feed:tags:ai,golang", feedCacheKey([]string{"golang", "ai"}))
	// Order of focus areas must not change the key
	assert.Equal(t, feedCacheKey([]string{"a", "b"}), feedCacheKey([]string{"b", "a"}))
}
