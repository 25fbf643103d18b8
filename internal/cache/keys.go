package cache

import "fmt"

// StatsPrefix is the namespace for aggregate popular-stats entries; bulk
// invalidation operates on this prefix.
const StatsPrefix = "stats:"

// Key categories used for cache metrics.
const (
	CategoryGame        = "game"
	CategoryContent     = "content"
	CategorySchedule    = "schedule"
	CategoryRoster      = "roster"
	CategoryPlayerStats = "player_stats"
	CategoryStats       = "stats"
)

// GameKey addresses a processed game record.
func GameKey(gamePk string) string {
	return "game:" + gamePk
}

// ContentKey addresses a game's media payload.
func ContentKey(gamePk string) string {
	return "content:" + gamePk
}

// ScheduleKey addresses a season schedule by game type.
func ScheduleKey(season int, gameType string) string {
	return fmt.Sprintf("schedule_%d_%s", season, gameType)
}

// RosterKey addresses a team's roster for a season.
func RosterKey(teamID string, season int) string {
	return fmt.Sprintf("roster_%s_%d", teamID, season)
}

// PlayerStatsKey addresses one player's season stats.
func PlayerStatsKey(playerID string, season int) string {
	return fmt.Sprintf("player_stats_%s_%d", playerID, season)
}

// StatsKey addresses an aggregate popular-stats entry.
func StatsKey(statType string) string {
	return StatsPrefix + statType
}
