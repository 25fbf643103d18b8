// Package games coordinates game, media, schedule, roster and player
// lookups: fetch through the provider, transform to domain records, and cache
// the results.
package games

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"mlb-storyteller-service/internal/cache"
	"mlb-storyteller-service/internal/domain"
	"mlb-storyteller-service/internal/logging"
	"mlb-storyteller-service/internal/metrics"
	"mlb-storyteller-service/internal/providers"
	"mlb-storyteller-service/internal/providers/statsapi"
	"mlb-storyteller-service/internal/transform"
)

const defaultGameType = "R"

// Provider is the upstream data source contract the service consumes.
// Satisfied by the statsapi client and by the fixture provider.
type Provider interface {
	GameFeed(ctx context.Context, gamePk string) (statsapi.FeedResponse, error)
	GameContent(ctx context.Context, gamePk string) (statsapi.ContentResponse, error)
	Schedule(ctx context.Context, season int, gameType string) (statsapi.ScheduleResponse, error)
	ScheduleForGame(ctx context.Context, gamePk string) (statsapi.ScheduleResponse, error)
	Roster(ctx context.Context, teamID string, season int) (statsapi.RosterResponse, error)
	Player(ctx context.Context, playerID string, season int) (statsapi.PeopleResponse, error)
}

// Config assembles a Service.
type Config struct {
	Provider Provider
	Cache    cache.Cache
	TTL      time.Duration
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Service is the cache-aside orchestrator. Cache failures degrade to direct
// fetches; they are logged, never surfaced.
type Service struct {
	provider Provider
	cache    cache.Cache
	ttl      time.Duration
	logger   *slog.Logger
	metrics  *metrics.Recorder
	group    singleflight.Group
	now      func() time.Time
}

// NewService constructs a Service with the provided collaborators.
func NewService(cfg Config) *Service {
	return &Service{
		provider: cfg.Provider,
		cache:    cfg.Cache,
		ttl:      cfg.TTL,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		now:      time.Now,
	}
}

// Game returns the processed record for one game. On a cache miss concurrent
// callers for the same game share a single upstream fetch. When the live feed
// does not know the game the schedule is consulted and a minimal record is
// returned without caching it.
func (s *Service) Game(ctx context.Context, gamePk string) (domain.GameRecord, error) {
	key := cache.GameKey(gamePk)

	var cached domain.GameRecord
	if s.cacheGet(ctx, key, cache.CategoryGame, &cached) {
		return cached, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.fetchGame(ctx, gamePk, key)
	})
	if err != nil {
		return domain.GameRecord{}, err
	}
	return v.(domain.GameRecord), nil
}

func (s *Service) fetchGame(ctx context.Context, gamePk, key string) (domain.GameRecord, error) {
	feed, err := s.provider.GameFeed(ctx, gamePk)
	if err != nil {
		if providers.IsNotFound(err) {
			return s.gameFromSchedule(ctx, gamePk)
		}
		return domain.GameRecord{}, err
	}

	record, err := transform.FromFeed(feed)
	if err != nil {
		return domain.GameRecord{}, fmt.Errorf("game %s: %w", gamePk, err)
	}

	s.cacheSet(ctx, key, record)
	return record, nil
}

// gameFromSchedule is the 404 fallback. The resulting record is intentionally
// not cached: the feed may start serving the game at any moment and the
// minimal record should not mask it for a full TTL.
func (s *Service) gameFromSchedule(ctx context.Context, gamePk string) (domain.GameRecord, error) {
	resp, err := s.provider.ScheduleForGame(ctx, gamePk)
	if err != nil {
		if providers.IsNotFound(err) {
			return domain.GameRecord{}, fmt.Errorf("%w: game %s", ErrGameNotFound, gamePk)
		}
		return domain.GameRecord{}, err
	}

	for _, date := range resp.Dates {
		for _, game := range date.Games {
			if fmt.Sprintf("%d", game.GamePk) == gamePk {
				logging.Info(s.logger, "serving schedule fallback",
					logging.FieldGamePk, game.GamePk,
				)
				return transform.FromSchedule(game), nil
			}
		}
	}
	return domain.GameRecord{}, fmt.Errorf("%w: game %s", ErrGameNotFound, gamePk)
}

// Content returns the raw media payload for a game. Unlike the feed there is
// no schedule fallback; a game the content endpoint does not know is simply
// not found.
func (s *Service) Content(ctx context.Context, gamePk string) (statsapi.ContentResponse, error) {
	key := cache.ContentKey(gamePk)

	var cached statsapi.ContentResponse
	if s.cacheGet(ctx, key, cache.CategoryContent, &cached) {
		return cached, nil
	}

	resp, err := s.provider.GameContent(ctx, gamePk)
	if err != nil {
		if providers.IsNotFound(err) {
			return statsapi.ContentResponse{}, fmt.Errorf("%w: game %s", ErrGameNotFound, gamePk)
		}
		return statsapi.ContentResponse{}, err
	}

	s.cacheSet(ctx, key, resp)
	return resp, nil
}

// Highlights returns the flattened highlight reel for a game.
func (s *Service) Highlights(ctx context.Context, gamePk string) ([]domain.Highlight, error) {
	content, err := s.Content(ctx, gamePk)
	if err != nil {
		return nil, err
	}
	return transform.HighlightsFromContent(content), nil
}

// HomeRunMoments lifts the home-run plays from a game's live feed. The feed
// is read directly; the processed game record does not carry per-play batter
// identities at the fidelity this needs.
func (s *Service) HomeRunMoments(ctx context.Context, gamePk string) ([]domain.HomeRunMoment, error) {
	feed, err := s.provider.GameFeed(ctx, gamePk)
	if err != nil {
		if providers.IsNotFound(err) {
			return nil, fmt.Errorf("%w: game %s", ErrGameNotFound, gamePk)
		}
		return nil, err
	}
	return transform.HomeRunsFromFeed(feed), nil
}

// Schedule returns the flattened schedule for a season and game type. A zero
// season means the current year; an empty game type means regular season.
func (s *Service) Schedule(ctx context.Context, season int, gameType string) ([]statsapi.ScheduleGame, error) {
	season = s.resolveSeason(season)
	if gameType == "" {
		gameType = defaultGameType
	}
	key := cache.ScheduleKey(season, gameType)

	var cached []statsapi.ScheduleGame
	if s.cacheGet(ctx, key, cache.CategorySchedule, &cached) {
		return cached, nil
	}

	resp, err := s.provider.Schedule(ctx, season, gameType)
	if err != nil {
		return nil, err
	}

	games := make([]statsapi.ScheduleGame, 0)
	for _, date := range resp.Dates {
		games = append(games, date.Games...)
	}

	s.cacheSet(ctx, key, games)
	return games, nil
}

// Roster returns a team's active roster with lifted season stats.
func (s *Service) Roster(ctx context.Context, teamID string, season int) ([]domain.RosterPlayer, error) {
	season = s.resolveSeason(season)
	key := cache.RosterKey(teamID, season)

	var cached []domain.RosterPlayer
	if s.cacheGet(ctx, key, cache.CategoryRoster, &cached) {
		return cached, nil
	}

	resp, err := s.provider.Roster(ctx, teamID, season)
	if err != nil {
		return nil, err
	}

	players := transform.FromRoster(resp)
	s.cacheSet(ctx, key, players)
	return players, nil
}

// PlayerStats returns one player's season stats grouped by discipline.
func (s *Service) PlayerStats(ctx context.Context, playerID string, season int) (domain.PlayerSeasonStats, error) {
	season = s.resolveSeason(season)
	key := cache.PlayerStatsKey(playerID, season)

	var cached domain.PlayerSeasonStats
	if s.cacheGet(ctx, key, cache.CategoryPlayerStats, &cached) {
		return cached, nil
	}

	resp, err := s.provider.Player(ctx, playerID, season)
	if err != nil {
		return domain.PlayerSeasonStats{}, err
	}

	stats, ok := transform.FromPeople(resp)
	if !ok {
		return domain.PlayerSeasonStats{}, fmt.Errorf("%w: player %s", ErrPlayerNotFound, playerID)
	}

	s.cacheSet(ctx, key, stats)
	return stats, nil
}

// PopularStats reads a precomputed aggregate from the stats namespace.
func (s *Service) PopularStats(ctx context.Context, statType string) (map[string]any, bool, error) {
	key := cache.StatsKey(statType)

	var value map[string]any
	if s.cacheGet(ctx, key, cache.CategoryStats, &value) {
		return value, true, nil
	}
	return nil, false, nil
}

// StorePopularStats writes a precomputed aggregate into the stats namespace.
func (s *Service) StorePopularStats(ctx context.Context, statType string, value any) error {
	return s.cache.Set(ctx, cache.StatsKey(statType), value, s.ttl)
}

// InvalidateGame evicts one game's cached record and media payload.
func (s *Service) InvalidateGame(ctx context.Context, gamePk string) error {
	if err := s.cache.Delete(ctx, cache.ContentKey(gamePk)); err != nil {
		return err
	}
	return s.cache.Delete(ctx, cache.GameKey(gamePk))
}

// InvalidateStats evicts every entry in the stats namespace.
func (s *Service) InvalidateStats(ctx context.Context) error {
	return s.cache.DeletePrefix(ctx, cache.StatsPrefix)
}

// CacheHealthy reports whether the cache layer is up and accepting traffic.
func (s *Service) CacheHealthy(ctx context.Context) bool {
	return s.cache.Health(ctx)
}

func (s *Service) resolveSeason(season int) int {
	if season > 0 {
		return season
	}
	return s.now().Year()
}

// cacheGet reports a usable hit. Lookup errors count as misses.
func (s *Service) cacheGet(ctx context.Context, key, category string, dest any) bool {
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		logging.Warn(s.logger, "cache lookup failed", logging.FieldCacheKey, key, "error", err)
		s.metrics.RecordCacheMiss(category)
		return false
	}
	if hit {
		s.metrics.RecordCacheHit(category)
		return true
	}
	s.metrics.RecordCacheMiss(category)
	return false
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		logging.Warn(s.logger, "cache store failed", logging.FieldCacheKey, key, "error", err)
	}
}
