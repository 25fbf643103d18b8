package statsapi

// Wire types for the MLB Stats API. Field absence at any nesting level is
// tolerated: missing objects decode to zero values, and the pointer fields
// mark the substructures whose presence carries meaning.

// FeedResponse is the live-feed payload for a single game
// (GET /api/v1.1/game/{gamePk}/feed/live).
type FeedResponse struct {
	GameData *GameData `json:"gameData"`
	LiveData *LiveData `json:"liveData"`
}

type GameData struct {
	Game     GameID     `json:"game"`
	Teams    FeedTeams  `json:"teams"`
	Venue    Venue      `json:"venue"`
	Status   GameStatus `json:"status"`
	Datetime Datetime   `json:"datetime"`
	Flags    Flags      `json:"flags"`
	Weather  Weather    `json:"weather"`
	GameInfo GameInfo   `json:"gameInfo"`
}

type GameID struct {
	Pk int64 `json:"pk"`
}

type FeedTeams struct {
	Home TeamInfo `json:"home"`
	Away TeamInfo `json:"away"`
}

type TeamInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Venue struct {
	Name string `json:"name"`
}

type GameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type Datetime struct {
	DateTime string `json:"dateTime"`
}

type Flags struct {
	NoHitter    bool `json:"noHitter"`
	PerfectGame bool `json:"perfectGame"`
}

type Weather struct {
	Condition string `json:"condition"`
	Temp      string `json:"temp"`
	Wind      string `json:"wind"`
}

type GameInfo struct {
	GameDurationMinutes int `json:"gameDurationMinutes"`
}

type LiveData struct {
	Linescore Linescore `json:"linescore"`
	Boxscore  Boxscore  `json:"boxscore"`
	Plays     Plays     `json:"plays"`
	Decisions Decisions `json:"decisions"`
}

type Linescore struct {
	CurrentInning int            `json:"currentInning"`
	InningState   string         `json:"inningState"`
	Balls         int            `json:"balls"`
	Strikes       int            `json:"strikes"`
	Outs          int            `json:"outs"`
	Teams         LinescoreTeams `json:"teams"`
}

type LinescoreTeams struct {
	Home LinescoreLine `json:"home"`
	Away LinescoreLine `json:"away"`
}

type LinescoreLine struct {
	Runs int `json:"runs"`
}

type Boxscore struct {
	Teams BoxTeams `json:"teams"`
}

type BoxTeams struct {
	Home BoxTeam `json:"home"`
	Away BoxTeam `json:"away"`
}

type BoxTeam struct {
	TeamStats StatGroups           `json:"teamStats"`
	Batters   []int64              `json:"batters"`
	Pitchers  []int64              `json:"pitchers"`
	Players   map[string]BoxPlayer `json:"players"`
}

type StatGroups struct {
	Batting  BattingLine  `json:"batting"`
	Pitching PitchingLine `json:"pitching"`
	Fielding FieldingLine `json:"fielding"`
}

type BoxPlayer struct {
	Person Person     `json:"person"`
	Stats  StatGroups `json:"stats"`
}

type Person struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

type BattingLine struct {
	Runs        int    `json:"runs"`
	Hits        int    `json:"hits"`
	Doubles     int    `json:"doubles"`
	Triples     int    `json:"triples"`
	HomeRuns    int    `json:"homeRuns"`
	RBI         int    `json:"rbi"`
	AtBats      int    `json:"atBats"`
	BaseOnBalls int    `json:"baseOnBalls"`
	StrikeOuts  int    `json:"strikeOuts"`
	Avg         string `json:"avg"`
	Obp         string `json:"obp"`
	Slg         string `json:"slg"`
	Ops         string `json:"ops"`
}

type PitchingLine struct {
	InningsPitched string `json:"inningsPitched"`
	EarnedRuns     int    `json:"earnedRuns"`
	StrikeOuts     int    `json:"strikeOuts"`
	BaseOnBalls    int    `json:"baseOnBalls"`
	Hits           int    `json:"hits"`
	HomeRuns       int    `json:"homeRuns"`
	Era            string `json:"era"`
	Whip           string `json:"whip"`
}

type FieldingLine struct {
	PutOuts     int `json:"putOuts"`
	Assists     int `json:"assists"`
	Errors      int `json:"errors"`
	DoublePlays int `json:"doublePlays"`
}

type Plays struct {
	AllPlays     []Play `json:"allPlays"`
	CurrentPlay  *Play  `json:"currentPlay"`
	ScoringPlays []int  `json:"scoringPlays"`
}

type Play struct {
	About   PlayAbout  `json:"about"`
	Result  PlayResult `json:"result"`
	Matchup Matchup    `json:"matchup"`
	Runners []Runner   `json:"runners"`
}

type PlayAbout struct {
	Inning        int    `json:"inning"`
	HalfInning    string `json:"halfInning"`
	IsScoringPlay bool   `json:"isScoringPlay"`
	IsComplete    bool   `json:"isComplete"`
	HasOut        bool   `json:"hasOut"`
	AwayScore     int    `json:"awayScore"`
	HomeScore     int    `json:"homeScore"`
}

type PlayResult struct {
	Description string `json:"description"`
	Event       string `json:"event"`
	RBI         int    `json:"rbi"`
}

type Matchup struct {
	Batter       Person  `json:"batter"`
	Pitcher      Person  `json:"pitcher"`
	PostOnFirst  *Person `json:"postOnFirst"`
	PostOnSecond *Person `json:"postOnSecond"`
	PostOnThird  *Person `json:"postOnThird"`
}

type Runner struct {
	Movement Movement `json:"movement"`
}

type Movement struct {
	Start string `json:"start"`
	End   string `json:"end"`
	IsOut bool   `json:"isOut"`
}

type Decisions struct {
	Winner *Person `json:"winner"`
	Loser  *Person `json:"loser"`
	Save   *Person `json:"save"`
}

// ContentResponse is the media payload for a single game
// (GET /api/v1/game/{gamePk}/content).
type ContentResponse struct {
	Highlights *ContentHighlights `json:"highlights"`
}

type ContentHighlights struct {
	Live       *HighlightList `json:"live"`
	Highlights *HighlightList `json:"highlights"`
}

type HighlightList struct {
	Items []HighlightItem `json:"items"`
}

type HighlightItem struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Playbacks   []Playback `json:"playbacks"`
	Thumbnail   Thumbnail  `json:"thumbnail"`
}

type Playback struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Thumbnail struct {
	Href string `json:"href"`
}

// ScheduleResponse is returned by /api/v1/schedule.
type ScheduleResponse struct {
	Dates []ScheduleDate `json:"dates"`
}

type ScheduleDate struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

type ScheduleGame struct {
	GamePk   int64         `json:"gamePk"`
	GameDate string        `json:"gameDate"`
	Status   GameStatus    `json:"status"`
	Teams    ScheduleTeams `json:"teams"`
	Venue    Venue         `json:"venue"`
	Weather  Weather       `json:"weather"`
}

type ScheduleTeams struct {
	Home ScheduleTeam `json:"home"`
	Away ScheduleTeam `json:"away"`
}

type ScheduleTeam struct {
	Team            TeamInfo `json:"team"`
	Score           *int     `json:"score"`
	ProbablePitcher *Person  `json:"probablePitcher"`
}

// RosterResponse is returned by /api/v1/teams/{teamId}/roster.
type RosterResponse struct {
	Roster []RosterEntry `json:"roster"`
}

type RosterEntry struct {
	Person       PersonDetail `json:"person"`
	JerseyNumber string       `json:"jerseyNumber"`
	Position     Position     `json:"position"`
	Status       RosterStatus `json:"status"`
}

type Position struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Abbreviation string `json:"abbreviation"`
}

type RosterStatus struct {
	Description string `json:"description"`
}

// PeopleResponse is returned by /api/v1/people/{personId}.
type PeopleResponse struct {
	People []PersonDetail `json:"people"`
}

type PersonDetail struct {
	ID              int64             `json:"id"`
	FullName        string            `json:"fullName"`
	PrimaryNumber   string            `json:"primaryNumber"`
	BirthDate       string            `json:"birthDate"`
	CurrentAge      int               `json:"currentAge"`
	BirthCity       string            `json:"birthCity"`
	BirthCountry    string            `json:"birthCountry"`
	Height          string            `json:"height"`
	Weight          int               `json:"weight"`
	Active          bool              `json:"active"`
	BatSide         CodeRef           `json:"batSide"`
	PitchHand       CodeRef           `json:"pitchHand"`
	CurrentTeam     *TeamInfo         `json:"currentTeam"`
	PrimaryPosition *Position         `json:"primaryPosition"`
	Stats           []PersonStatGroup `json:"stats"`
}

type CodeRef struct {
	Code string `json:"code"`
}

type PersonStatGroup struct {
	Type   DisplayRef  `json:"type"`
	Group  DisplayRef  `json:"group"`
	Splits []StatSplit `json:"splits"`
}

type DisplayRef struct {
	DisplayName string `json:"displayName"`
}

// StatSplit carries one split's stat block. The keys vary by stat group, so
// the block stays a raw map.
type StatSplit struct {
	Stat map[string]any `json:"stat"`
}
