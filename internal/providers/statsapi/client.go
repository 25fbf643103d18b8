package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mlb-storyteller-service/internal/metrics"
	"mlb-storyteller-service/internal/providers"
)

// Config controls how the client reaches the MLB Stats API.
type Config struct {
	BaseURL       string
	HTTPClient    *http.Client
	RetryAttempts int
	RetryBackoff  time.Duration
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
}

// Client fetches raw payloads from the MLB Stats API. Transient failures are
// retried under the configured policy; terminal failures surface as typed
// *providers.Error values. The worst case for a single call is
// attempts x per-attempt timeout plus accumulated backoff, roughly 40+
// seconds at the defaults.
type Client struct {
	baseURL    string
	httpClient httpDoer
	policy     providers.RetryPolicy
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs a Stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		policy:     providers.NewRetryPolicy(cfg.RetryAttempts, cfg.RetryBackoff),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// GameFeed retrieves the full live feed for a game.
func (c *Client) GameFeed(ctx context.Context, gamePk string) (FeedResponse, error) {
	var out FeedResponse
	endpoint := fmt.Sprintf("%s/%s/game/%s/feed/live", c.baseURL, feedVersion, url.PathEscape(gamePk))
	err := c.getJSON(ctx, opGameFeed, endpoint, nil, &out)
	return out, err
}

// GameContent retrieves the media payload (highlight reel, recaps) for a
// game.
func (c *Client) GameContent(ctx context.Context, gamePk string) (ContentResponse, error) {
	var out ContentResponse
	endpoint := fmt.Sprintf("%s/%s/game/%s/content", c.baseURL, apiVersion, url.PathEscape(gamePk))
	err := c.getJSON(ctx, opGameContent, endpoint, nil, &out)
	return out, err
}

// Schedule retrieves the season schedule for the given game type
// (R = regular season, P = postseason, S = spring training).
func (c *Client) Schedule(ctx context.Context, season int, gameType string) (ScheduleResponse, error) {
	var out ScheduleResponse
	endpoint := fmt.Sprintf("%s/%s/schedule", c.baseURL, apiVersion)
	params := url.Values{}
	params.Set("sportId", sportIDMLB)
	params.Set("season", strconv.Itoa(c.resolveSeason(season)))
	params.Set("gameType", gameType)
	params.Set("hydrate", "team,venue,probablePitcher")
	err := c.getJSON(ctx, opSchedule, endpoint, params, &out)
	return out, err
}

// ScheduleForGame retrieves the schedule entry for a single game. Used as the
// fallback lookup when the live feed reports the game unknown.
func (c *Client) ScheduleForGame(ctx context.Context, gamePk string) (ScheduleResponse, error) {
	var out ScheduleResponse
	endpoint := fmt.Sprintf("%s/%s/schedule", c.baseURL, apiVersion)
	params := url.Values{}
	params.Set("gamePk", gamePk)
	params.Set("hydrate", "probablePitcher,venue,weather,flags")
	err := c.getJSON(ctx, opScheduleForGame, endpoint, params, &out)
	return out, err
}

// Roster retrieves a team's active roster with hydrated season stats.
func (c *Client) Roster(ctx context.Context, teamID string, season int) (RosterResponse, error) {
	var out RosterResponse
	season = c.resolveSeason(season)
	endpoint := fmt.Sprintf("%s/%s/teams/%s/roster", c.baseURL, apiVersion, url.PathEscape(teamID))
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))
	params.Set("rosterType", "active")
	params.Set("hydrate", fmt.Sprintf("person(stats(type=season,season=%d))", season))
	err := c.getJSON(ctx, opRoster, endpoint, params, &out)
	return out, err
}

// Player retrieves one player's hydrated season stats.
func (c *Client) Player(ctx context.Context, playerID string, season int) (PeopleResponse, error) {
	var out PeopleResponse
	season = c.resolveSeason(season)
	endpoint := fmt.Sprintf("%s/%s/people/%s", c.baseURL, apiVersion, url.PathEscape(playerID))
	params := url.Values{}
	params.Set("hydrate", fmt.Sprintf("stats(group=[hitting,pitching,fielding],type=season,season=%d)", season))
	err := c.getJSON(ctx, opPlayer, endpoint, params, &out)
	return out, err
}

func (c *Client) resolveSeason(season int) int {
	if season > 0 {
		return season
	}
	return c.now().Year()
}

func (c *Client) getJSON(ctx context.Context, operation, endpoint string, params url.Values, out any) error {
	return providers.Retry(ctx, c.policy, c.logger, c.metrics, operation, func(ctx context.Context) error {
		return c.doOnce(ctx, operation, endpoint, params, out)
	})
}

func (c *Client) doOnce(ctx context.Context, operation, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &providers.Error{Class: providers.FailureUnknown, Operation: operation, Message: err.Error(), Err: err}
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransport(operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return classifyStatus(operation, resp.StatusCode, string(body))
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		// A 200 whose body is not the expected JSON object is a shape
		// violation, not a transport failure. Not retryable.
		return &providers.MalformedPayloadError{
			Reason: fmt.Sprintf("%s: body is not a JSON object: %v", operation, decodeErr),
		}
	}
	return nil
}
