package domain

// GameRecord is the canonical narrative shape produced by the transformer.
// Records are constructed fresh on every cache-miss fetch and are immutable
// once returned; consumers never mutate them in place.
type GameRecord struct {
	Summary          Summary           `json:"summary"`
	GameState        GameState         `json:"game_state"`
	CurrentSituation *CurrentSituation `json:"current_situation,omitempty"`
	TeamStats        *TeamStatsBySide  `json:"team_stats,omitempty"`
	Plays            *PlayLog          `json:"plays,omitempty"`
	Leaders          *Leaders          `json:"leaders,omitempty"`
	Weather          *Weather          `json:"weather,omitempty"`
	ProbablePitchers *ProbablePitchers `json:"probable_pitchers,omitempty"`
	Result           *Result           `json:"result,omitempty"`
}

// IsFinal reports whether the game has completed.
func (g GameRecord) IsFinal() bool {
	return g.GameState.AbstractState == StateFinal
}

// IsLive reports whether the game is in progress.
func (g GameRecord) IsLive() bool {
	return g.GameState.AbstractState == StateLive
}

// Abstract game states as reported by the upstream feed.
const (
	StateLive    = "Live"
	StateFinal   = "Final"
	StatePreview = "Preview"
)

// Summary carries the headline facts about a game.
type Summary struct {
	GamePk    int64  `json:"game_pk"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Status    string `json:"status"`
	Venue     string `json:"venue"`
	GameDate  string `json:"game_date"`
}

// GameState captures where the game stands right now.
type GameState struct {
	Inning        int    `json:"inning"`
	InningState   string `json:"inning_state"`
	Outs          int    `json:"outs"`
	Balls         int    `json:"balls"`
	Strikes       int    `json:"strikes"`
	AbstractState string `json:"abstract_state"`
	DetailedState string `json:"detailed_state"`
	IsPerfectGame bool   `json:"is_perfect_game"`
	IsNoHitter    bool   `json:"is_no_hitter"`
}

// CurrentSituation describes the live matchup. Only populated while the game
// is in progress.
type CurrentSituation struct {
	Batter  string `json:"batter"`
	Pitcher string `json:"pitcher"`
	Runners string `json:"runners"`
}

// PlayerRef is an identity snapshot of a player at the time of a play.
type PlayerRef struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// RunnerMovement records a single runner advancing (or being retired).
type RunnerMovement struct {
	Start string `json:"start"`
	End   string `json:"end"`
	IsOut bool   `json:"is_out"`
}

// PlayEvent is one play from the game log.
type PlayEvent struct {
	Inning      int              `json:"inning"`
	HalfInning  string           `json:"half_inning"`
	Description string           `json:"description"`
	Event       string           `json:"event"`
	IsScoring   bool             `json:"is_scoring"`
	IsComplete  bool             `json:"is_complete"`
	HasOut      bool             `json:"has_out"`
	RBI         int              `json:"rbi"`
	Batter      PlayerRef        `json:"batter"`
	Pitcher     PlayerRef        `json:"pitcher"`
	Runners     []RunnerMovement `json:"runners,omitempty"`
}

// InningGroup indexes the plays of one inning within PlayLog.Events.
type InningGroup struct {
	Inning      int   `json:"inning"`
	PlayIndexes []int `json:"play_indexes"`
}

// PlayLog is the ordered play-by-play with scoring and inning indexes.
type PlayLog struct {
	Events       []PlayEvent   `json:"events"`
	ScoringPlays []int         `json:"scoring_plays"`
	ByInning     []InningGroup `json:"by_inning"`
}

// BattingStats aggregates a team's batting line. Rate stats arrive from
// upstream pre-formatted and are carried as strings.
type BattingStats struct {
	Runs       int    `json:"runs"`
	Hits       int    `json:"hits"`
	Doubles    int    `json:"doubles"`
	Triples    int    `json:"triples"`
	HomeRuns   int    `json:"home_runs"`
	RBI        int    `json:"rbi"`
	Walks      int    `json:"walks"`
	StrikeOuts int    `json:"strike_outs"`
	Avg        string `json:"avg"`
	Obp        string `json:"obp"`
	Slg        string `json:"slg"`
	Ops        string `json:"ops"`
}

// PitchingStats aggregates a team's pitching line.
type PitchingStats struct {
	EarnedRuns      int    `json:"earned_runs"`
	StrikeOuts      int    `json:"strike_outs"`
	Walks           int    `json:"walks"`
	HitsAllowed     int    `json:"hits_allowed"`
	HomeRunsAllowed int    `json:"home_runs_allowed"`
	Era             string `json:"era"`
	Whip            string `json:"whip"`
}

// TeamStats pairs a side's batting and pitching aggregates.
type TeamStats struct {
	Batting  BattingStats  `json:"batting"`
	Pitching PitchingStats `json:"pitching"`
}

// TeamStatsBySide holds both teams' aggregates.
type TeamStatsBySide struct {
	Home TeamStats `json:"home"`
	Away TeamStats `json:"away"`
}

// Performance is one standout individual line, pre-formatted for narration.
type Performance struct {
	Name      string `json:"name"`
	Side      string `json:"side"`
	Highlight string `json:"highlight"`
}

// Leaders collects the notable performances selected by the significance
// filter.
type Leaders struct {
	Batting  []Performance `json:"batting,omitempty"`
	Pitching []Performance `json:"pitching,omitempty"`
	Fielding []Performance `json:"fielding,omitempty"`
}

// Weather is the game-time conditions, when the feed carries them.
type Weather struct {
	Condition string `json:"condition,omitempty"`
	Temp      string `json:"temp,omitempty"`
	Wind      string `json:"wind,omitempty"`
}

// ProbablePitchers names the scheduled starters.
type ProbablePitchers struct {
	Home string `json:"home,omitempty"`
	Away string `json:"away,omitempty"`
}

// Result is populated exactly when the game is final.
type Result struct {
	Winner         string `json:"winner"`
	WinningPitcher string `json:"winning_pitcher,omitempty"`
	LosingPitcher  string `json:"losing_pitcher,omitempty"`
	Save           string `json:"save,omitempty"`
	WinningMargin  int    `json:"winning_margin"`
	Duration       string `json:"duration,omitempty"`
}
