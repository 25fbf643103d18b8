package server

import (
	"log/slog"
	"net/http"
	"strings"

	"mlb-storyteller-service/internal/app/games"
	"mlb-storyteller-service/internal/config"
	"mlb-storyteller-service/internal/metrics"
	"mlb-storyteller-service/internal/providers/fixturedata"
	"mlb-storyteller-service/internal/providers/statsapi"
)

// providerFactory assembles the upstream provider for the configured source.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) games.Provider {
	switch strings.ToLower(cfg.Provider) {
	case "fixture", "fixturedata":
		return fixturedata.New()
	default:
		return statsapi.NewClient(statsapi.Config{
			BaseURL:       cfg.StatsAPI.BaseURL,
			HTTPClient:    &http.Client{Timeout: cfg.StatsAPI.Timeout},
			RetryAttempts: cfg.StatsAPI.RetryAttempts,
			RetryBackoff:  cfg.StatsAPI.RetryBackoff,
			Logger:        f.logger,
			Metrics:       f.metrics,
		})
	}
}
