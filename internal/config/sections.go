package config

import "time"

// StatsAPIConfig controls how we talk to the MLB Stats API.
type StatsAPIConfig struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	RetryBackoff  time.Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL:       envOrDefault(envStatsAPIBase, ""),
		Timeout:       durationEnvOrDefault(envStatsAPITimeout, defaultStatsAPITimeout),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
	}
}

// CacheConfig controls the cache-aside layer. Disabling the cache turns every
// get into a miss and every set/delete into a no-op without touching callers.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Enabled:    boolEnvOrDefault(envCacheEnabled, true),
		DefaultTTL: durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
	}
}

// StoryConfig controls the generative story/quiz collaborator.
type StoryConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func loadStory() StoryConfig {
	return StoryConfig{
		BaseURL: envOrDefault(envStoryBaseURL, ""),
		APIKey:  envOrDefault(envStoryAPIKey, ""),
		Model:   envOrDefault(envStoryModel, defaultStoryModel),
		Timeout: durationEnvOrDefault(envStoryTimeout, defaultStoryTimeout),
	}
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "mlb-storyteller-service"),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
