package di

import (
	"time"

	"hud/config"
	"hud/driver/hackernews"
	"hud/driver/hud_db"
	"hud/driver/llm"
	"hud/driver/reddit"
	"hud/driver/rss"
	"hud/driver/x_api"
	"hud/gateway/auto_tagger_gateway"
	"hud/gateway/bookmark_gateway"
	"hud/gateway/feed_cache_gateway"
	"hud/gateway/feed_item_gateway"
	"hud/gateway/hackernews_gateway"
	"hud/gateway/preference_gateway"
	"hud/gateway/reddit_gateway"
	"hud/gateway/rss_gateway"
	"hud/gateway/x_gateway"
	"hud/port/completion_port"
	"hud/port/feed_cache_port"
	"hud/port/provider_port"
	"hud/usecase/bookmark_usecase"
	"hud/usecase/fetch_feed_usecase"
	"hud/usecase/ingest_usecase"
	"hud/usecase/sweep_usecase"
	"hud/utils"
	"hud/utils/rate_limiter"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ApplicationComponents struct {
	IngestUsecase    *ingest_usecase.IngestUsecase
	FetchFeedUsecase *fetch_feed_usecase.FetchFeedUsecase
	BookmarkUsecase  *bookmark_usecase.BookmarkUsecase
	SweepUsecase     *sweep_usecase.SweepUsecase

	HackerNewsProvider provider_port.CandidateProviderPort
	RedditProvider     provider_port.CandidateProviderPort
	XProvider          provider_port.CandidateProviderPort
	// RSSProvider is nil when no feed URLs are configured.
	RSSProvider provider_port.CandidateProviderPort

	HudDBRepository *hud_db.HudDBRepository
}

func NewApplicationComponents(pool *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config) *ApplicationComponents {
	hudDBRepository := hud_db.NewHudDBRepository(pool)

	feedItemGatewayImpl := feed_item_gateway.NewFeedItemGateway(hudDBRepository)
	bookmarkGatewayImpl := bookmark_gateway.NewBookmarkGateway(hudDBRepository)
	preferenceGatewayImpl := preference_gateway.NewPreferenceGateway(hudDBRepository)

	httpClient := utils.NewHTTPClient(cfg.HTTP)
	taggerClient := utils.NewHTTPClient(config.HTTPConfig{
		ClientTimeout:       cfg.Tagger.RequestTimeout,
		DialTimeout:         cfg.HTTP.DialTimeout,
		TLSHandshakeTimeout: cfg.HTTP.TLSHandshakeTimeout,
		IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
	})

	var completions []completion_port.CompletionPort
	if cfg.Tagger.GeminiAPIKey != "" {
		completions = append(completions, llm.NewGeminiClient(cfg.Tagger.GeminiAPIKey, cfg.Tagger.GeminiModel, taggerClient))
	}
	completions = append(completions, llm.NewOllamaClient(cfg.Tagger.FallbackHost, cfg.Tagger.FallbackModel, taggerClient))
	taggerGatewayImpl := auto_tagger_gateway.NewAutoTaggerGateway(completions...)

	hackerNewsProvider := hackernews_gateway.NewHackerNewsGateway(
		hackernews.NewClient(cfg.Providers.HackerNews.BaseURL, httpClient),
		cfg.Providers.HackerNews.StoryCount,
	)
	redditProvider := reddit_gateway.NewRedditGateway(
		reddit.NewClient(cfg.Providers.Reddit.BaseURL, cfg.Providers.Reddit.UserAgent, httpClient),
		config.SplitList(cfg.Providers.Reddit.Subreddits),
		cfg.Providers.Reddit.PerSubreddit,
		cfg.Providers.Reddit.TopPostsLimit,
	)
	xProvider := x_gateway.NewXGateway(
		x_api.NewClient(cfg.Providers.X.BaseURL, cfg.Providers.X.BearerToken, httpClient),
		config.SplitList(cfg.Providers.X.Accounts),
		cfg.Providers.X.PostsPerUser,
		cfg.Providers.X.TopPostLimit,
		cfg.Providers.X.FetchDelay,
	)

	var rssProvider provider_port.CandidateProviderPort
	if feedURLs := config.SplitList(cfg.Providers.RSS.FeedURLs); len(feedURLs) > 0 {
		rssProvider = rss_gateway.NewRSSGateway(
			rss.NewClient(httpClient),
			feedURLs,
			cfg.Providers.RSS.TopLimit,
			rate_limiter.NewHostRateLimiter(5*time.Second),
		)
	}

	var feedCache feed_cache_port.FeedCachePort
	if redisClient != nil {
		feedCache = feed_cache_gateway.NewFeedCacheGateway(redisClient, cfg.Cache.FeedCacheExpiry)
	}

	ingestUsecase := ingest_usecase.NewIngestUsecase(feedItemGatewayImpl, taggerGatewayImpl)
	fetchFeedUsecase := fetch_feed_usecase.NewFetchFeedUsecase(feedItemGatewayImpl, preferenceGatewayImpl, feedCache)
	bookmarkUsecase := bookmark_usecase.NewBookmarkUsecase(bookmarkGatewayImpl, feedItemGatewayImpl)
	sweepUsecase := sweep_usecase.NewSweepUsecase(feedItemGatewayImpl, cfg.Retention.MaxAge)

	return &ApplicationComponents{
		IngestUsecase:      ingestUsecase,
		FetchFeedUsecase:   fetchFeedUsecase,
		BookmarkUsecase:    bookmarkUsecase,
		SweepUsecase:       sweepUsecase,
		HackerNewsProvider: hackerNewsProvider,
		RedditProvider:     redditProvider,
		XProvider:          xProvider,
		RSSProvider:        rssProvider,
		HudDBRepository:    hudDBRepository,
	}
}

// Providers returns every configured candidate provider in a stable order.
func (c *ApplicationComponents) Providers() []provider_port.CandidateProviderPort {
	providers := []provider_port.CandidateProviderPort{
		c.HackerNewsProvider,
		c.RedditProvider,
		c.XProvider,
	}
	if c.RSSProvider != nil {
		providers = append(providers, c.RSSProvider)
	}
	return providers
}
