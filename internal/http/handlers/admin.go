package handlers

import (
	"net/http"

	"mlb-storyteller-service/internal/logging"
)

// invalidateGame evicts one game's cached record.
func (h *Handler) invalidateGame(w http.ResponseWriter, r *http.Request, gamePk string) {
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !isDigits(gamePk) {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	if err := h.svc.InvalidateGame(r.Context(), gamePk); err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "game cache invalidated", logging.FieldGamePk, gamePk)
	writeJSON(w, http.StatusOK, map[string]string{"status": "invalidated"}, h.logger)
}

// InvalidateStats evicts the whole popular-stats namespace.
func (h *Handler) InvalidateStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	if err := h.svc.InvalidateStats(r.Context()); err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "invalidated"}, h.logger)
}
