// Package handlers wires HTTP routes to the domain services.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"mlb-storyteller-service/internal/app/games"
	"mlb-storyteller-service/internal/domain"
	"mlb-storyteller-service/internal/quiz"
	"mlb-storyteller-service/internal/speech"
	"mlb-storyteller-service/internal/story"
	"mlb-storyteller-service/internal/transform"
)

// StoryGenerator is the narrative collaborator contract the handlers consume.
type StoryGenerator interface {
	GenerateStory(ctx context.Context, record domain.GameRecord, prefs story.Preferences) (string, error)
	GenerateQuiz(ctx context.Context, record domain.GameRecord) (quiz.Quiz, error)
}

// Handler serves the public API.
type Handler struct {
	svc    *games.Service
	gen    StoryGenerator
	synth  speech.Synthesizer
	logger *slog.Logger
}

// NewHandler constructs a Handler. The generator and synthesizer may be nil;
// their routes then answer 503.
func NewHandler(svc *games.Service, gen StoryGenerator, synth speech.Synthesizer, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, gen: gen, synth: synth, logger: logger}
}

// APIInfo describes the service on the root path.
func (h *Handler) APIInfo(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"name":        "MLB Storyteller API",
		"version":     "1.0.0",
		"description": "An AI-powered baseball storytelling platform",
	}, h.logger)
}

// Health reports the service health and its dependency states.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	cacheHealthy := h.svc.CacheHealthy(r.Context())
	status := "healthy"
	if !cacheHealthy {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": status,
		"dependencies": map[string]bool{
			"cache": cacheHealthy,
		},
	}, h.logger)
}

// Styles lists the supported narrative styles.
func (h *Handler) Styles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{
		"styles": {story.StyleDramatic, story.StyleAnalytical, story.StyleHumorous},
	}, h.logger)
}

// GameRoutes dispatches /games/{gamePk} and its subresources: cache,
// content, highlights and home-runs.
func (h *Handler) GameRoutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/games/")
	if suffix, ok := strings.CutSuffix(rest, "/cache"); ok {
		h.invalidateGame(w, r, suffix)
		return
	}
	if suffix, ok := strings.CutSuffix(rest, "/content"); ok {
		h.gameContent(w, r, suffix)
		return
	}
	if suffix, ok := strings.CutSuffix(rest, "/highlights"); ok {
		h.gameHighlights(w, r, suffix)
		return
	}
	if suffix, ok := strings.CutSuffix(rest, "/home-runs"); ok {
		h.gameHomeRuns(w, r, suffix)
		return
	}
	h.gameByID(w, r, rest)
}

func (h *Handler) gameContent(w http.ResponseWriter, r *http.Request, gamePk string) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !isDigits(gamePk) {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	content, err := h.svc.Content(r.Context(), gamePk)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, content, h.logger)
}

func (h *Handler) gameHighlights(w http.ResponseWriter, r *http.Request, gamePk string) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !isDigits(gamePk) {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	highlights, err := h.svc.Highlights(r.Context(), gamePk)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":      len(highlights),
		"highlights": highlights,
	}, h.logger)
}

func (h *Handler) gameHomeRuns(w http.ResponseWriter, r *http.Request, gamePk string) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !isDigits(gamePk) {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	moments, err := h.svc.HomeRunMoments(r.Context(), gamePk)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":     len(moments),
		"home_runs": moments,
	}, h.logger)
}

func (h *Handler) gameByID(w http.ResponseWriter, r *http.Request, gamePk string) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !isDigits(gamePk) {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	record, err := h.svc.Game(r.Context(), gamePk)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, record, h.logger)
}

// Schedule returns the season schedule.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	season, ok := seasonParam(w, r, h.logger)
	if !ok {
		return
	}
	gameType := r.URL.Query().Get("game_type")

	schedule, err := h.svc.Schedule(r.Context(), season, gameType)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(schedule),
		"games": schedule,
	}, h.logger)
}

// TeamRoutes dispatches /teams/{teamID}/roster and /teams/{teamID}/logo.
func (h *Handler) TeamRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/teams/")
	if teamID, ok := strings.CutSuffix(rest, "/logo"); ok {
		// Unresolvable team IDs degrade to the league logo, never an error.
		writeJSON(w, http.StatusOK, map[string]string{
			"logo_url": transform.TeamLogoURL(teamID),
		}, h.logger)
		return
	}
	teamID, ok := strings.CutSuffix(rest, "/roster")
	if !ok || !isDigits(teamID) {
		writeError(w, r, http.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	season, okSeason := seasonParam(w, r, h.logger)
	if !okSeason {
		return
	}

	roster, err := h.svc.Roster(r.Context(), teamID, season)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"team_id": teamID,
		"roster":  roster,
	}, h.logger)
}

// PlayerRoutes dispatches /players/{playerID}/stats and
// /players/{playerID}/photo.
func (h *Handler) PlayerRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/players/")
	if playerID, ok := strings.CutSuffix(rest, "/photo"); ok {
		if !isDigits(playerID) {
			writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"photo_url": transform.PlayerPhotoURL(playerID),
		}, h.logger)
		return
	}
	playerID, ok := strings.CutSuffix(rest, "/stats")
	if !ok || !isDigits(playerID) {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	season, okSeason := seasonParam(w, r, h.logger)
	if !okSeason {
		return
	}

	stats, err := h.svc.PlayerStats(r.Context(), playerID, season)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, stats, h.logger)
}

// PopularTeams serves the precomputed popular-teams aggregate.
func (h *Handler) PopularTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	value, hit, err := h.svc.PopularStats(r.Context(), "popular-teams")
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	if !hit {
		writeJSON(w, http.StatusOK, map[string]any{"teams": []any{}}, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, value, h.logger)
}

// seasonParam parses the optional season query value. Zero means the current
// season. A false return means the response was already written.
func seasonParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int, bool) {
	raw := r.URL.Query().Get("season")
	if raw == "" {
		return 0, true
	}
	season, err := strconv.Atoi(raw)
	if err != nil || season < 0 {
		writeError(w, r, http.StatusBadRequest, "invalid season", logger)
		return 0, false
	}
	return season, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
