package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mlb-storyteller-service/internal/app/games"
	"mlb-storyteller-service/internal/http/middleware"
	"mlb-storyteller-service/internal/logging"
	"mlb-storyteller-service/internal/providers"
	"mlb-storyteller-service/internal/quiz"
	"mlb-storyteller-service/internal/transform"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["request_id"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeDomainError maps the error taxonomy onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, message := statusForError(err)
	if status >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed", "error", err)
	}
	writeError(w, r, status, message, logger)
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, games.ErrGameNotFound):
		return http.StatusNotFound, "game not found"
	case errors.Is(err, games.ErrPlayerNotFound):
		return http.StatusNotFound, "player not found"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream timed out"
	}

	var provErr *providers.Error
	if errors.As(err, &provErr) {
		switch provErr.Class {
		case providers.FailureNotFound:
			return http.StatusNotFound, "not found upstream"
		case providers.FailureTimeout:
			return http.StatusGatewayTimeout, "upstream timed out"
		default:
			return http.StatusBadGateway, "upstream request failed"
		}
	}

	var payloadErr *transform.MalformedPayloadError
	if errors.As(err, &payloadErr) {
		return http.StatusBadGateway, "upstream payload malformed"
	}

	var parseErr *quiz.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadGateway, "model output failed validation"
	}

	return http.StatusInternalServerError, "internal error"
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
