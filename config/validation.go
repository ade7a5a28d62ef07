package config

import "fmt"

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Database.MaxConnections <= 0 {
		return fmt.Errorf("database max connections must be positive: %d", config.Database.MaxConnections)
	}

	if config.Retention.MaxAge <= 0 {
		return fmt.Errorf("retention max age must be positive: %s", config.Retention.MaxAge)
	}

	if config.Providers.HackerNews.StoryCount <= 0 {
		return fmt.Errorf("hackernews story count must be positive: %d", config.Providers.HackerNews.StoryCount)
	}

	if config.Providers.Reddit.PerSubreddit <= 0 || config.Providers.Reddit.TopPostsLimit <= 0 {
		return fmt.Errorf("reddit fetch limits must be positive")
	}

	if config.Providers.X.PostsPerUser <= 0 || config.Providers.X.TopPostLimit <= 0 {
		return fmt.Errorf("x fetch limits must be positive")
	}

	return nil
}
