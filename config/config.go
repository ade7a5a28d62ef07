package config

import (
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Cache     CacheConfig     `json:"cache"`
	Logging   LoggingConfig   `json:"logging"`
	HTTP      HTTPConfig      `json:"http"`
	Auth      AuthConfig      `json:"auth"`
	Ingest    IngestConfig    `json:"ingest"`
	Tagger    TaggerConfig    `json:"tagger"`
	Retention RetentionConfig `json:"retention"`
	Providers ProvidersConfig `json:"providers"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"120s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"120s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type CacheConfig struct {
	RedisURL        string        `json:"redis_url" env:"REDIS_URL" default:""`
	FeedCacheExpiry time.Duration `json:"feed_cache_expiry" env:"CACHE_FEED_EXPIRY" default:"300s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type HTTPConfig struct {
	ClientTimeout       time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"10s"`
	DialTimeout         time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

type AuthConfig struct {
	TokenSecret     string `json:"token_secret" env:"AUTH_TOKEN_SECRET"`
	TokenSecretFile string `json:"-" env:"AUTH_TOKEN_SECRET_FILE"`
	TokenIssuer     string `json:"token_issuer" env:"AUTH_TOKEN_ISSUER" default:"hud"`
}

type IngestConfig struct {
	// Interval of zero disables scheduled ingestion; endpoints stay manual.
	Interval        time.Duration `json:"interval" env:"INGEST_INTERVAL" default:"0s"`
	SweepInterval   time.Duration `json:"sweep_interval" env:"SWEEP_INTERVAL" default:"6h"`
	ProviderTimeout time.Duration `json:"provider_timeout" env:"INGEST_PROVIDER_TIMEOUT" default:"120s"`
}

type TaggerConfig struct {
	GeminiAPIKey   string        `json:"-" env:"GEMINI_API_KEY"`
	GeminiModel    string        `json:"gemini_model" env:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	FallbackHost   string        `json:"fallback_host" env:"TAGGER_FALLBACK_HOST" default:"http://news-creator:11434"`
	FallbackModel  string        `json:"fallback_model" env:"TAGGER_FALLBACK_MODEL" default:"gemma3:4b"`
	RequestTimeout time.Duration `json:"request_timeout" env:"TAGGER_REQUEST_TIMEOUT" default:"10s"`
}

type RetentionConfig struct {
	MaxAge time.Duration `json:"max_age" env:"RETENTION_MAX_AGE" default:"720h"`
}

type ProvidersConfig struct {
	HackerNews HackerNewsConfig `json:"hackernews"`
	Reddit     RedditConfig     `json:"reddit"`
	X          XConfig          `json:"x"`
	RSS        RSSConfig        `json:"rss"`
}

type HackerNewsConfig struct {
	BaseURL    string `json:"base_url" env:"HN_BASE_URL" default:"https://hacker-news.firebaseio.com/v0"`
	StoryCount int    `json:"story_count" env:"HN_STORY_COUNT" default:"20"`
}

type RedditConfig struct {
	BaseURL       string `json:"base_url" env:"REDDIT_BASE_URL" default:"https://www.reddit.com"`
	Subreddits    string `json:"subreddits" env:"REDDIT_SUBREDDITS" default:"programming,technology,webdev,SaaS"`
	PerSubreddit  int    `json:"per_subreddit" env:"REDDIT_PER_SUBREDDIT" default:"10"`
	TopPostsLimit int    `json:"top_posts_limit" env:"REDDIT_TOP_POSTS_LIMIT" default:"20"`
	UserAgent     string `json:"user_agent" env:"REDDIT_USER_AGENT" default:"hud/1.0"`
}

type XConfig struct {
	BaseURL      string        `json:"base_url" env:"X_BASE_URL" default:"https://api.twitter.com"`
	BearerToken  string        `json:"-" env:"X_BEARER_TOKEN"`
	Accounts     string        `json:"accounts" env:"X_ACCOUNTS" default:"sama,AndrewYNg,demishassabis"`
	PostsPerUser int           `json:"posts_per_user" env:"X_POSTS_PER_USER" default:"5"`
	TopPostLimit int           `json:"top_post_limit" env:"X_TOP_POST_LIMIT" default:"40"`
	FetchDelay   time.Duration `json:"fetch_delay" env:"X_FETCH_DELAY" default:"1500ms"`
}

type RSSConfig struct {
	// Comma-separated feed URLs; empty disables the RSS provider.
	FeedURLs string `json:"feed_urls" env:"RSS_FEED_URLS" default:""`
	TopLimit int    `json:"top_limit" env:"RSS_TOP_LIMIT" default:"20"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	loadSecretFiles(config)

	return config, nil
}
