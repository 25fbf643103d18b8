// Package http assembles the public API routes.
package http

import (
	nethttp "net/http"

	"mlb-storyteller-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.APIInfo)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/styles", handler.Styles)
	mux.HandleFunc("/schedule", handler.Schedule)
	mux.HandleFunc("/games/", handler.GameRoutes)
	mux.HandleFunc("/teams/", handler.TeamRoutes)
	mux.HandleFunc("/players/", handler.PlayerRoutes)
	mux.HandleFunc("/stats/popular-teams", handler.PopularTeams)
	mux.HandleFunc("/stats/cache", handler.InvalidateStats)
	mux.HandleFunc("/generate-story", handler.GenerateStory)
	mux.HandleFunc("/generate-quiz", handler.GenerateQuiz)
	mux.HandleFunc("/generate-audio", handler.GenerateAudio)
	mux.HandleFunc("/voices", handler.Voices)
	return mux
}
