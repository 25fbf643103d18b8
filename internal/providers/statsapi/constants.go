package statsapi

import "time"

const (
	defaultBaseURL     = "https://statsapi.mlb.com/api"
	defaultHTTPTimeout = 10 * time.Second

	sportIDMLB = "1"

	feedVersion = "v1.1"
	apiVersion  = "v1"

	opGameFeed        = "game_feed"
	opGameContent     = "game_content"
	opSchedule        = "schedule"
	opScheduleForGame = "schedule_for_game"
	opRoster          = "team_roster"
	opPlayer          = "player_stats"
)
