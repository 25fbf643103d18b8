package handlers

import (
	"encoding/json"
	"net/http"

	"mlb-storyteller-service/internal/speech"
	"mlb-storyteller-service/internal/story"
)

type storyRequest struct {
	GameID      string            `json:"game_id"`
	Preferences story.Preferences `json:"preferences"`
}

type quizRequest struct {
	GameID string `json:"game_id"`
}

type audioRequest struct {
	Text         string  `json:"text"`
	Voice        string  `json:"voice"`
	LanguageCode string  `json:"language_code"`
	SpeakingRate float64 `json:"speaking_rate"`
	Pitch        float64 `json:"pitch"`
}

// GenerateStory produces a narrative for a game shaped by the caller's
// preferences.
func (h *Handler) GenerateStory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.gen == nil {
		writeError(w, r, http.StatusServiceUnavailable, "story generation not configured", h.logger)
		return
	}

	var req storyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if !isDigits(req.GameID) {
		writeError(w, r, http.StatusBadRequest, "invalid game id format", h.logger)
		return
	}

	record, err := h.svc.Game(r.Context(), req.GameID)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}

	text, err := h.gen.GenerateStory(r.Context(), record, req.Preferences)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"game_id": req.GameID,
		"story":   text,
	}, h.logger)
}

// GenerateQuiz produces a validated quiz for a game.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.gen == nil {
		writeError(w, r, http.StatusServiceUnavailable, "quiz generation not configured", h.logger)
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if !isDigits(req.GameID) {
		writeError(w, r, http.StatusBadRequest, "invalid game id format", h.logger)
		return
	}

	record, err := h.svc.Game(r.Context(), req.GameID)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}

	result, err := h.gen.GenerateQuiz(r.Context(), record)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, result, h.logger)
}

// GenerateAudio synthesizes narration audio for arbitrary text.
func (h *Handler) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.synth == nil {
		writeError(w, r, http.StatusServiceUnavailable, "speech synthesis not configured", h.logger)
		return
	}

	var req audioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Text == "" || req.Voice == "" {
		writeError(w, r, http.StatusBadRequest, "text and voice are required", h.logger)
		return
	}

	params := speech.VoiceParams{
		VoiceID:      req.Voice,
		LanguageCode: req.LanguageCode,
		SpeakingRate: req.SpeakingRate,
		Pitch:        req.Pitch,
	}
	audio, err := speech.GenerateLongAudio(r.Context(), h.synth, req.Text, params)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", "attachment; filename=story_narration.mp3")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil && h.logger != nil {
		h.logger.Error("failed to write audio response", "error", err)
	}
}

// Voices lists the synthesis voices available for a language.
func (h *Handler) Voices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.synth == nil {
		writeError(w, r, http.StatusServiceUnavailable, "speech synthesis not configured", h.logger)
		return
	}

	languageCode := r.URL.Query().Get("language_code")
	if languageCode == "" {
		languageCode = "en-US"
	}
	voices, err := h.synth.Voices(r.Context(), languageCode)
	if err != nil {
		writeDomainError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"voices": voices}, h.logger)
}
