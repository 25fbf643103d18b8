package transform

import (
	"mlb-storyteller-service/internal/domain"
	"mlb-storyteller-service/internal/providers/statsapi"
)

// FromSchedule synthesizes a minimal GameRecord from a schedule entry. Used
// when the live feed reports the game unknown but the schedule still carries
// it: summary, teams, venue, weather and probable pitchers, no play-by-play.
func FromSchedule(game statsapi.ScheduleGame) domain.GameRecord {
	rec := domain.GameRecord{
		Summary: domain.Summary{
			GamePk:    game.GamePk,
			HomeTeam:  game.Teams.Home.Team.Name,
			AwayTeam:  game.Teams.Away.Team.Name,
			HomeScore: scoreOrZero(game.Teams.Home.Score),
			AwayScore: scoreOrZero(game.Teams.Away.Score),
			Status:    statusOrDefault(game.Status.DetailedState),
			Venue:     game.Venue.Name,
			GameDate:  game.GameDate,
		},
		GameState: domain.GameState{
			AbstractState: game.Status.AbstractGameState,
			DetailedState: statusOrDefault(game.Status.DetailedState),
		},
	}

	if w := mapWeather(game.Weather); w != nil {
		rec.Weather = w
	}
	if pp := mapProbablePitchers(game.Teams); pp != nil {
		rec.ProbablePitchers = pp
	}

	// A schedule entry can already be final (stale feed, suspended game
	// played elsewhere). Populate a minimal result so the final-state
	// invariant holds for fallback records too.
	if rec.IsFinal() {
		home := rec.Summary.HomeScore
		away := rec.Summary.AwayScore
		winner := nameOrDefault(game.Teams.Home.Team.Name, defaultHomeName)
		if away > home {
			winner = nameOrDefault(game.Teams.Away.Team.Name, defaultAwayName)
		}
		rec.Result = &domain.Result{
			Winner:        winner,
			WinningMargin: absInt(home - away),
		}
	}

	return rec
}

func mapProbablePitchers(teams statsapi.ScheduleTeams) *domain.ProbablePitchers {
	if teams.Home.ProbablePitcher == nil && teams.Away.ProbablePitcher == nil {
		return nil
	}
	pp := &domain.ProbablePitchers{}
	if teams.Home.ProbablePitcher != nil {
		pp.Home = teams.Home.ProbablePitcher.FullName
	}
	if teams.Away.ProbablePitcher != nil {
		pp.Away = teams.Away.ProbablePitcher.FullName
	}
	return pp
}

func scoreOrZero(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
