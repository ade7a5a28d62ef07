package ingest_usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hud/domain"
	"hud/mocks"
	"hud/port/provider_port"
	"hud/utils/errors"
	"hud/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCandidate(id, title, url string) *domain.Candidate {
	return &domain.Candidate{
		ProviderID:  id,
		Title:       title,
		URL:         url,
		Excerpt:     "some excerpt",
		Source:      "HackerNews",
		Popularity:  100,
		PublishedAt: time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestIngestUsecase_Execute(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tests := []struct {
		name         string
		mockSetup    func(*mocks.MockCandidateProviderPort, *mocks.MockFeedItemPort, *mocks.MockTaggingPort)
		wantFetched  int
		wantInserted int
		wantProvErr  bool
		wantErr      bool
	}{
		{
			name: "inserts_every_new_candidate",
			mockSetup: func(provider *mocks.MockCandidateProviderPort, store *mocks.MockFeedItemPort, tagger *mocks.MockTaggingPort) {
				provider.EXPECT().Name().Return("hackernews").AnyTimes()
				provider.EXPECT().FetchCandidates(ctx).Return([]*domain.Candidate{
					newCandidate("1", "First", "https://example.com/1"),
					newCandidate("2", "Second", "https://example.com/2"),
				}, nil)
				store.EXPECT().ExistsByURL(ctx, gomock.Any()).Return(false, nil).Times(2)
				tagger.EXPECT().Tag(ctx, gomock.Any(), gomock.Any()).Return([]string{"go", "news"}).Times(2)
				store.EXPECT().Create(ctx, gomock.Any()).Return(true, nil).Times(2)
			},
			wantFetched:  2,
			wantInserted: 2,
		},
		{
			name: "skips_duplicates_found_in_storage",
			mockSetup: func(provider *mocks.MockCandidateProviderPort, store *mocks.MockFeedItemPort, tagger *mocks.MockTaggingPort) {
				provider.EXPECT().Name().Return("hackernews").AnyTimes()
				provider.EXPECT().FetchCandidates(ctx).Return([]*domain.Candidate{
					newCandidate("1", "Seen before", "https://example.com/dup"),
					newCandidate("2", "Fresh", "https://example.com/new"),
				}, nil)
				store.EXPECT().ExistsByURL(ctx, []string{"https://example.com/dup"}).Return(true, nil)
				store.EXPECT().ExistsByURL(ctx, []string{"https://example.com/new"}).Return(false, nil)
				tagger.EXPECT().Tag(ctx, "Fresh", gomock.Any()).Return([]string{"ai"})
				store.EXPECT().Create(ctx, gomock.Any()).Return(true, nil)
			},
			wantFetched:  2,
			wantInserted: 1,
		},
		{
			name: "skips_malformed_candidates_without_tagging",
			mockSetup: func(provider *mocks.MockCandidateProviderPort, store *mocks.MockFeedItemPort, tagger *mocks.MockTaggingPort) {
				provider.EXPECT().Name().Return("reddit").AnyTimes()
				provider.EXPECT().FetchCandidates(ctx).Return([]*domain.Candidate{
					{ProviderID: "", Title: "no id", URL: "https://example.com/a"},
					{ProviderID: "x", Title: "", URL: "https://example.com/b"},
				}, nil)
			},
			wantFetched:  2,
			wantInserted: 0,
		},
		{
			name: "provider_failure_is_not_fatal",
			mockSetup: func(provider *mocks.MockCandidateProviderPort, store *mocks.MockFeedItemPort, tagger *mocks.MockTaggingPort) {
				provider.EXPECT().Name().Return("x").AnyTimes()
				provider.EXPECT().FetchCandidates(ctx).Return(nil, fmt.Errorf("upstream 503"))
			},
			wantProvErr: true,
		},
		{
			name: "dedup_check_failure_aborts_run",
			mockSetup: func(provider *mocks.MockCandidateProviderPort, store *mocks.MockFeedItemPort, tagger *mocks.MockTaggingPort) {
				provider.EXPECT().Name().Return("hackernews").AnyTimes()
				provider.EXPECT().FetchCandidates(ctx).Return([]*domain.Candidate{
					newCandidate("1", "First", "https://example.com/1"),
				}, nil)
				store.EXPECT().ExistsByURL(ctx, gomock.Any()).Return(false, fmt.Errorf("connection refused"))
			},
			wantFetched: 1,
			wantErr:     true,
		},
		{
			name: "insert_failure_keeps_partial_count",
			mockSetup: func(provider *mocks.MockCandidateProviderPort, store *mocks.MockFeedItemPort, tagger *mocks.MockTaggingPort) {
				provider.EXPECT().Name().Return("hackernews").AnyTimes()
				provider.EXPECT().FetchCandidates(ctx).Return([]*domain.Candidate{
					newCandidate("1", "First", "https://example.com/1"),
					newCandidate("2", "Second", "https://example.com/2"),
				}, nil)
				store.EXPECT().ExistsByURL(ctx, gomock.Any()).Return(false, nil).Times(2)
				tagger.EXPECT().Tag(ctx, gomock.Any(), gomock.Any()).Return([]string{"go"}).Times(2)
				gomock.InOrder(
					store.EXPECT().Create(ctx, gomock.Any()).Return(true, nil),
					store.EXPECT().Create(ctx, gomock.Any()).Return(false, fmt.Errorf("disk full")),
				)
			},
			wantFetched:  2,
			wantInserted: 1,
			wantErr:      true,
		},
		{
			name: "insert_conflict_counts_as_duplicate",
			mockSetup: func(provider *mocks.MockCandidateProviderPort, store *mocks.MockFeedItemPort, tagger *mocks.MockTaggingPort) {
				provider.EXPECT().Name().Return("hackernews").AnyTimes()
				provider.EXPECT().FetchCandidates(ctx).Return([]*domain.Candidate{
					newCandidate("1", "Racing", "https://example.com/race"),
				}, nil)
				store.EXPECT().ExistsByURL(ctx, gomock.Any()).Return(false, nil)
				tagger.EXPECT().Tag(ctx, gomock.Any(), gomock.Any()).Return([]string{"go"})
				store.EXPECT().Create(ctx, gomock.Any()).Return(false, nil)
			},
			wantFetched:  1,
			wantInserted: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewMockCandidateProviderPort(ctrl)
			store := mocks.NewMockFeedItemPort(ctrl)
			tagger := mocks.NewMockTaggingPort(ctrl)
			tt.mockSetup(provider, store, tagger)

			usecase := NewIngestUsecase(store, tagger)
			result, err := usecase.Execute(ctx, provider)

			require.NotNil(t, result)
			if tt.wantErr {
				assert.Error(t, err)
				appErr := errors.AsAppError(err)
				assert.Equal(t, errors.ErrCodeDatabase, appErr.Code)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantProvErr {
				assert.Error(t, result.ProviderErr)
			} else {
				assert.NoError(t, result.ProviderErr)
			}
			assert.Equal(t, tt.wantFetched, result.TotalFetched)
			assert.Equal(t, tt.wantInserted, result.Inserted)
		})
	}
}

func TestIngestUsecase_Execute_MergesAndNormalizesTags(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	provider := mocks.NewMockCandidateProviderPort(ctrl)
	store := mocks.NewMockFeedItemPort(ctrl)
	tagger := mocks.NewMockTaggingPort(ctrl)

	candidate := newCandidate("1", "Rust is fast", "https://example.com/rust")
	candidate.ProviderTags = []string{"r/Programming", "rust"}

	provider.EXPECT().Name().Return("reddit").AnyTimes()
	provider.EXPECT().FetchCandidates(ctx).Return([]*domain.Candidate{candidate}, nil)
	store.EXPECT().ExistsByURL(ctx, gomock.Any()).Return(false, nil)
	tagger.EXPECT().Tag(ctx, "Rust is fast", "some excerpt").Return([]string{"Rust", "performance"})

	var stored *domain.FeedItem
	store.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item *domain.FeedItem) (bool, error) {
			stored = item
			return true, nil
		})

	usecase := NewIngestUsecase(store, tagger)
	result, err := usecase.Execute(ctx, provider)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	require.NotNil(t, stored)
	assert.Equal(t, []string{"rust", "performance", "r/programming"}, stored.Tags)
	assert.Equal(t, candidate.Popularity, stored.Popularity)
	assert.Equal(t, candidate.PublishedAt, stored.PublishedAt)
	assert.Equal(t, candidate.Source, stored.Source)
}

func TestIngestUsecase_Execute_ChecksAlternateURLForDedup(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	provider := mocks.NewMockCandidateProviderPort(ctrl)
	store := mocks.NewMockFeedItemPort(ctrl)
	tagger := mocks.NewMockTaggingPort(ctrl)

	candidate := newCandidate("1", "Cross-posted", "https://blog.example.com/post")
	candidate.AlternateURL = "https://reddit.com/r/programming/comments/abc"

	provider.EXPECT().Name().Return("reddit").AnyTimes()
	provider.EXPECT().FetchCandidates(ctx).Return([]*domain.Candidate{candidate}, nil)
	store.EXPECT().ExistsByURL(ctx, []string{
		"https://blog.example.com/post",
		"https://reddit.com/r/programming/comments/abc",
	}).Return(true, nil)

	usecase := NewIngestUsecase(store, tagger)
	result, err := usecase.Execute(ctx, provider)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
}

func TestIngestUsecase_ExecuteAll(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	store := mocks.NewMockFeedItemPort(ctrl)
	tagger := mocks.NewMockTaggingPort(ctrl)

	healthy := mocks.NewMockCandidateProviderPort(ctrl)
	healthy.EXPECT().Name().Return("hackernews").AnyTimes()
	healthy.EXPECT().FetchCandidates(ctx).Return([]*domain.Candidate{
		newCandidate("1", "Up", "https://example.com/up"),
	}, nil)
	store.EXPECT().ExistsByURL(ctx, gomock.Any()).Return(false, nil)
	tagger.EXPECT().Tag(ctx, gomock.Any(), gomock.Any()).Return([]string{"go"})
	store.EXPECT().Create(ctx, gomock.Any()).Return(true, nil)

	broken := mocks.NewMockCandidateProviderPort(ctrl)
	broken.EXPECT().Name().Return("x").AnyTimes()
	broken.EXPECT().FetchCandidates(ctx).Return(nil, fmt.Errorf("rate limited"))

	usecase := NewIngestUsecase(store, tagger)
	results := usecase.ExecuteAll(ctx, []provider_port.CandidateProviderPort{healthy, broken})

	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Inserted)
	assert.NoError(t, results[0].ProviderErr)
	assert.Equal(t, 0, results[1].Inserted)
	assert.Error(t, results[1].ProviderErr)
}
