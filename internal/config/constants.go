package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envStatsAPIBase    = "MLB_STATS_API_BASE_URL"
	envStatsAPITimeout = "MLB_STATS_API_TIMEOUT"
	envRetryAttempts   = "FETCH_RETRY_ATTEMPTS"
	envRetryBackoff    = "FETCH_RETRY_BACKOFF"
	envCacheEnabled    = "CACHE_ENABLED"
	envCacheTTL        = "CACHE_TTL"
	envStoryBaseURL    = "STORY_API_BASE_URL"
	envStoryAPIKey     = "STORY_API_KEY"
	envStoryModel      = "STORY_MODEL"
	envStoryTimeout    = "STORY_TIMEOUT"

	defaultPort        = "8000"
	defaultProvider    = "statsapi"
	defaultMetricsPort = "9090"

	// Per-attempt HTTP timeout against statsapi.mlb.com. With 4 attempts and
	// exponential backoff (0.5s base) a single upstream call can take 40+
	// seconds before a terminal failure surfaces to the caller.
	defaultStatsAPITimeout = 10 * time.Second
	defaultRetryAttempts   = 4
	defaultRetryBackoff    = 500 * time.Millisecond

	// Game, schedule and roster lookups share the same 1h cache policy.
	defaultCacheTTL = time.Hour

	defaultStoryModel   = "gpt-4o-mini"
	defaultStoryTimeout = 30 * time.Second
)
