package transform

import (
	"fmt"
	"strings"

	"mlb-storyteller-service/internal/domain"
	"mlb-storyteller-service/internal/providers"
	"mlb-storyteller-service/internal/providers/statsapi"
)

// MalformedPayloadError reports a payload whose required top-level shape is
// violated. Missing optional substructures never produce this; they degrade
// to defaults instead. The upstream client raises the same type when a body
// does not decode as a JSON object at all.
type MalformedPayloadError = providers.MalformedPayloadError

// Documented defaults substituted when optional nested fields are absent.
const (
	defaultStatus      = "Unknown"
	defaultHomeName    = "Home Team"
	defaultAwayName    = "Away Team"
	defaultBatterName  = "Unknown batter"
	defaultPitcherName = "Unknown pitcher"
)

// FromFeed flattens a raw live-feed payload into the narrative GameRecord.
// Every nested lookup tolerates missing intermediate objects; the only hard
// failure is a payload lacking the gameData/liveData roots.
func FromFeed(feed statsapi.FeedResponse) (domain.GameRecord, error) {
	if feed.GameData == nil || feed.LiveData == nil {
		return domain.GameRecord{}, &MalformedPayloadError{Reason: "missing gameData/liveData root"}
	}
	gd := feed.GameData
	ld := feed.LiveData

	rec := domain.GameRecord{
		Summary:   mapSummary(gd, ld),
		GameState: mapGameState(gd, ld),
	}

	if w := mapWeather(gd.Weather); w != nil {
		rec.Weather = w
	}
	rec.TeamStats = &domain.TeamStatsBySide{
		Home: mapTeamStats(ld.Boxscore.Teams.Home.TeamStats),
		Away: mapTeamStats(ld.Boxscore.Teams.Away.TeamStats),
	}
	if log := mapPlayLog(ld.Plays); log != nil {
		rec.Plays = log
	}
	if leaders := mapLeaders(ld.Boxscore); leaders != nil {
		rec.Leaders = leaders
	}

	if rec.IsLive() {
		rec.CurrentSituation = mapCurrentSituation(ld)
	}
	if rec.IsFinal() {
		rec.Result = mapResult(gd, ld)
	}

	return rec, nil
}

func mapSummary(gd *statsapi.GameData, ld *statsapi.LiveData) domain.Summary {
	return domain.Summary{
		GamePk:    gd.Game.Pk,
		HomeTeam:  gd.Teams.Home.Name,
		AwayTeam:  gd.Teams.Away.Name,
		HomeScore: ld.Linescore.Teams.Home.Runs,
		AwayScore: ld.Linescore.Teams.Away.Runs,
		Status:    statusOrDefault(gd.Status.DetailedState),
		Venue:     gd.Venue.Name,
		GameDate:  gd.Datetime.DateTime,
	}
}

func mapGameState(gd *statsapi.GameData, ld *statsapi.LiveData) domain.GameState {
	return domain.GameState{
		Inning:        ld.Linescore.CurrentInning,
		InningState:   ld.Linescore.InningState,
		Outs:          ld.Linescore.Outs,
		Balls:         ld.Linescore.Balls,
		Strikes:       ld.Linescore.Strikes,
		AbstractState: gd.Status.AbstractGameState,
		DetailedState: statusOrDefault(gd.Status.DetailedState),
		IsPerfectGame: gd.Flags.PerfectGame,
		IsNoHitter:    gd.Flags.NoHitter,
	}
}

func mapWeather(w statsapi.Weather) *domain.Weather {
	if w.Condition == "" && w.Temp == "" && w.Wind == "" {
		return nil
	}
	return &domain.Weather{Condition: w.Condition, Temp: w.Temp, Wind: w.Wind}
}

func mapTeamStats(groups statsapi.StatGroups) domain.TeamStats {
	b := groups.Batting
	p := groups.Pitching
	return domain.TeamStats{
		Batting: domain.BattingStats{
			Runs:       b.Runs,
			Hits:       b.Hits,
			Doubles:    b.Doubles,
			Triples:    b.Triples,
			HomeRuns:   b.HomeRuns,
			RBI:        b.RBI,
			Walks:      b.BaseOnBalls,
			StrikeOuts: b.StrikeOuts,
			Avg:        b.Avg,
			Obp:        b.Obp,
			Slg:        b.Slg,
			Ops:        b.Ops,
		},
		Pitching: domain.PitchingStats{
			EarnedRuns:      p.EarnedRuns,
			StrikeOuts:      p.StrikeOuts,
			Walks:           p.BaseOnBalls,
			HitsAllowed:     p.Hits,
			HomeRunsAllowed: p.HomeRuns,
			Era:             p.Era,
			Whip:            p.Whip,
		},
	}
}

func mapPlayLog(plays statsapi.Plays) *domain.PlayLog {
	if len(plays.AllPlays) == 0 {
		return nil
	}

	log := &domain.PlayLog{Events: make([]domain.PlayEvent, 0, len(plays.AllPlays))}
	byInning := make(map[int][]int)
	order := make([]int, 0, 9)

	for _, play := range plays.AllPlays {
		event := mapPlay(play)
		idx := len(log.Events)
		log.Events = append(log.Events, event)

		if event.IsScoring {
			log.ScoringPlays = append(log.ScoringPlays, idx)
		}
		if _, seen := byInning[event.Inning]; !seen {
			order = append(order, event.Inning)
		}
		byInning[event.Inning] = append(byInning[event.Inning], idx)
	}

	for _, inning := range order {
		log.ByInning = append(log.ByInning, domain.InningGroup{
			Inning:      inning,
			PlayIndexes: byInning[inning],
		})
	}
	return log
}

func mapPlay(play statsapi.Play) domain.PlayEvent {
	event := domain.PlayEvent{
		Inning:      play.About.Inning,
		HalfInning:  play.About.HalfInning,
		Description: play.Result.Description,
		Event:       play.Result.Event,
		IsScoring:   play.About.IsScoringPlay,
		IsComplete:  play.About.IsComplete,
		HasOut:      play.About.HasOut,
		RBI:         play.Result.RBI,
		Batter:      mapPlayerRef(play.Matchup.Batter),
		Pitcher:     mapPlayerRef(play.Matchup.Pitcher),
	}
	for _, runner := range play.Runners {
		event.Runners = append(event.Runners, domain.RunnerMovement{
			Start: runner.Movement.Start,
			End:   runner.Movement.End,
			IsOut: runner.Movement.IsOut,
		})
	}
	return event
}

func mapPlayerRef(p statsapi.Person) domain.PlayerRef {
	return domain.PlayerRef{ID: p.ID, FullName: p.FullName}
}

func mapCurrentSituation(ld *statsapi.LiveData) *domain.CurrentSituation {
	current := ld.Plays.CurrentPlay
	if current == nil {
		return &domain.CurrentSituation{
			Batter:  defaultBatterName,
			Pitcher: defaultPitcherName,
			Runners: "Bases empty",
		}
	}
	return &domain.CurrentSituation{
		Batter:  nameOrDefault(current.Matchup.Batter.FullName, defaultBatterName),
		Pitcher: nameOrDefault(current.Matchup.Pitcher.FullName, defaultPitcherName),
		Runners: runnersNarrative(current.Matchup),
	}
}

// runnersNarrative abbreviates occupied bases to F/S/T.
func runnersNarrative(matchup statsapi.Matchup) string {
	var bases []string
	if matchup.PostOnFirst != nil {
		bases = append(bases, "F")
	}
	if matchup.PostOnSecond != nil {
		bases = append(bases, "S")
	}
	if matchup.PostOnThird != nil {
		bases = append(bases, "T")
	}
	if len(bases) == 0 {
		return "Bases: empty"
	}
	return "Bases: " + strings.Join(bases, "-")
}

func mapResult(gd *statsapi.GameData, ld *statsapi.LiveData) *domain.Result {
	home := ld.Linescore.Teams.Home.Runs
	away := ld.Linescore.Teams.Away.Runs

	result := &domain.Result{
		Winner:        determineWinner(gd.Teams, home, away),
		WinningMargin: absInt(home - away),
		Duration:      formatDuration(gd.GameInfo.GameDurationMinutes),
	}
	if ld.Decisions.Winner != nil {
		result.WinningPitcher = ld.Decisions.Winner.FullName
	}
	if ld.Decisions.Loser != nil {
		result.LosingPitcher = ld.Decisions.Loser.FullName
	}
	if ld.Decisions.Save != nil {
		result.Save = ld.Decisions.Save.FullName
	}
	return result
}

// determineWinner resolves the winner by direct score comparison. A completed
// baseball game cannot tie, so the equal-score branch is unreachable in
// practice; it resolves to the home side so the behavior is explicit rather
// than an accidental fallthrough.
func determineWinner(teams statsapi.FeedTeams, homeScore, awayScore int) string {
	if awayScore > homeScore {
		return nameOrDefault(teams.Away.Name, defaultAwayName)
	}
	return nameOrDefault(teams.Home.Name, defaultHomeName)
}

// WeatherNarrative renders conditions for narration.
func WeatherNarrative(w *domain.Weather) string {
	if w == nil {
		return "Weather information unavailable"
	}
	if w.Condition == "Dome" {
		return "Game played indoors"
	}

	var conditions []string
	if w.Temp != "" {
		conditions = append(conditions, w.Temp+"°F")
	}
	if w.Wind != "" {
		conditions = append(conditions, "winds "+w.Wind)
	}
	if len(conditions) == 0 {
		return "Weather information unavailable"
	}
	return strings.Join(conditions, ", ")
}

func statusOrDefault(status string) string {
	if status == "" {
		return defaultStatus
	}
	return status
}

func nameOrDefault(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func formatDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
