// Package fixturedata serves a canned, deterministic game useful for local
// development and bootstrapping without upstream access.
package fixturedata

import (
	"context"
	"net/http"
	"strconv"

	"mlb-storyteller-service/internal/providers"
	"mlb-storyteller-service/internal/providers/statsapi"
)

// GamePk identifies the single game the fixture provider knows about.
const GamePk int64 = 715001

// ScheduledGamePk identifies a second game that exists only in the schedule,
// exercising the fallback path.
const ScheduledGamePk int64 = 715002

// Provider implements the upstream contract with static data.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// GameFeed returns the canned final game, or a not-found error for any other
// game, mirroring how the real API answers unknown game IDs.
func (p *Provider) GameFeed(ctx context.Context, gamePk string) (statsapi.FeedResponse, error) {
	_ = ctx
	if gamePk != strconv.FormatInt(GamePk, 10) {
		return statsapi.FeedResponse{}, &providers.Error{
			Class:      providers.FailureNotFound,
			Operation:  "game_feed",
			StatusCode: http.StatusNotFound,
			Message:    "fixture has no feed for game " + gamePk,
		}
	}
	return fixtureFeed(), nil
}

// GameContent returns the canned highlight reel for the known game, or a
// not-found error for any other.
func (p *Provider) GameContent(ctx context.Context, gamePk string) (statsapi.ContentResponse, error) {
	_ = ctx
	if gamePk != strconv.FormatInt(GamePk, 10) {
		return statsapi.ContentResponse{}, &providers.Error{
			Class:      providers.FailureNotFound,
			Operation:  "game_content",
			StatusCode: http.StatusNotFound,
			Message:    "fixture has no content for game " + gamePk,
		}
	}
	return fixtureContent(), nil
}

// Schedule returns a one-day schedule containing both fixture games.
func (p *Provider) Schedule(ctx context.Context, season int, gameType string) (statsapi.ScheduleResponse, error) {
	_ = ctx
	_ = season
	_ = gameType
	return fixtureSchedule(), nil
}

// ScheduleForGame returns the schedule entry for either fixture game.
func (p *Provider) ScheduleForGame(ctx context.Context, gamePk string) (statsapi.ScheduleResponse, error) {
	_ = ctx
	full := fixtureSchedule()
	for _, date := range full.Dates {
		for _, game := range date.Games {
			if strconv.FormatInt(game.GamePk, 10) == gamePk {
				return statsapi.ScheduleResponse{
					Dates: []statsapi.ScheduleDate{{Date: date.Date, Games: []statsapi.ScheduleGame{game}}},
				}, nil
			}
		}
	}
	return statsapi.ScheduleResponse{Dates: nil}, nil
}

// Roster returns a two-player roster for any team.
func (p *Provider) Roster(ctx context.Context, teamID string, season int) (statsapi.RosterResponse, error) {
	_ = ctx
	_ = teamID
	seasonStr := strconv.Itoa(season)
	return statsapi.RosterResponse{
		Roster: []statsapi.RosterEntry{
			{
				Person: statsapi.PersonDetail{
					ID:       660271,
					FullName: "Shohei Ohtani",
					Stats: []statsapi.PersonStatGroup{
						{
							Type:  statsapi.DisplayRef{DisplayName: "statsSingleSeason"},
							Group: statsapi.DisplayRef{DisplayName: "hitting"},
							Splits: []statsapi.StatSplit{
								{Stat: map[string]any{"avg": ".304", "homeRuns": float64(44), "season": seasonStr}},
							},
						},
					},
				},
				JerseyNumber: "17",
				Position:     statsapi.Position{Code: "10", Name: "Designated Hitter", Type: "Hitter", Abbreviation: "DH"},
				Status:       statsapi.RosterStatus{Description: "Active"},
			},
			{
				Person: statsapi.PersonDetail{
					ID:       605141,
					FullName: "Mookie Betts",
					Stats: []statsapi.PersonStatGroup{
						{
							Type:  statsapi.DisplayRef{DisplayName: "statsSingleSeason"},
							Group: statsapi.DisplayRef{DisplayName: "hitting"},
							Splits: []statsapi.StatSplit{
								{Stat: map[string]any{"avg": ".289", "homeRuns": float64(19), "season": seasonStr}},
							},
						},
					},
				},
				JerseyNumber: "50",
				Position:     statsapi.Position{Code: "4", Name: "Second Base", Type: "Infielder", Abbreviation: "2B"},
				Status:       statsapi.RosterStatus{Description: "Active"},
			},
		},
	}, nil
}

// Player returns a canned season line for any player ID.
func (p *Provider) Player(ctx context.Context, playerID string, season int) (statsapi.PeopleResponse, error) {
	_ = ctx
	_ = season
	id, _ := strconv.ParseInt(playerID, 10, 64)
	return statsapi.PeopleResponse{
		People: []statsapi.PersonDetail{
			{
				ID:       id,
				FullName: "Shohei Ohtani",
				Active:   true,
				Stats: []statsapi.PersonStatGroup{
					{
						Type:  statsapi.DisplayRef{DisplayName: "season"},
						Group: statsapi.DisplayRef{DisplayName: "hitting"},
						Splits: []statsapi.StatSplit{
							{Stat: map[string]any{"avg": ".304", "homeRuns": float64(44), "rbi": float64(95)}},
						},
					},
				},
			},
		},
	}, nil
}

func fixtureFeed() statsapi.FeedResponse {
	return statsapi.FeedResponse{
		GameData: &statsapi.GameData{
			Game:     statsapi.GameID{Pk: GamePk},
			Teams:    statsapi.FeedTeams{Home: statsapi.TeamInfo{ID: 119, Name: "Los Angeles Dodgers"}, Away: statsapi.TeamInfo{ID: 137, Name: "San Francisco Giants"}},
			Venue:    statsapi.Venue{Name: "Dodger Stadium"},
			Status:   statsapi.GameStatus{AbstractGameState: "Final", DetailedState: "Final"},
			Datetime: statsapi.Datetime{DateTime: "2024-07-24T02:10:00Z"},
			Weather:  statsapi.Weather{Condition: "Clear", Temp: "75", Wind: "5 mph, Out To CF"},
			GameInfo: statsapi.GameInfo{GameDurationMinutes: 165},
		},
		LiveData: &statsapi.LiveData{
			Linescore: statsapi.Linescore{
				CurrentInning: 9,
				InningState:   "Bottom",
				Teams: statsapi.LinescoreTeams{
					Home: statsapi.LinescoreLine{Runs: 5},
					Away: statsapi.LinescoreLine{Runs: 3},
				},
			},
			Boxscore: statsapi.Boxscore{
				Teams: statsapi.BoxTeams{
					Home: statsapi.BoxTeam{
						TeamStats: statsapi.StatGroups{
							Batting:  statsapi.BattingLine{Runs: 5, Hits: 10, HomeRuns: 2, RBI: 5, Avg: ".278"},
							Pitching: statsapi.PitchingLine{InningsPitched: "9.0", EarnedRuns: 3, StrikeOuts: 11},
						},
						Batters: []int64{660271},
						Players: map[string]statsapi.BoxPlayer{
							"ID660271": {
								Person: statsapi.Person{ID: 660271, FullName: "Shohei Ohtani"},
								Stats: statsapi.StatGroups{
									Batting: statsapi.BattingLine{Hits: 3, HomeRuns: 1, RBI: 3, AtBats: 4, Runs: 2},
								},
							},
						},
					},
					Away: statsapi.BoxTeam{
						TeamStats: statsapi.StatGroups{
							Batting:  statsapi.BattingLine{Runs: 3, Hits: 7, HomeRuns: 1, RBI: 3, Avg: ".241"},
							Pitching: statsapi.PitchingLine{InningsPitched: "8.0", EarnedRuns: 5, StrikeOuts: 7},
						},
					},
				},
			},
			Plays: statsapi.Plays{
				AllPlays: []statsapi.Play{
					{
						About:  statsapi.PlayAbout{Inning: 1, HalfInning: "bottom", IsScoringPlay: true, IsComplete: true, HasOut: false, HomeScore: 2},
						Result: statsapi.PlayResult{Description: "Shohei Ohtani homers (44) on a fly ball to center field.", Event: "Home Run", RBI: 2},
						Matchup: statsapi.Matchup{
							Batter:  statsapi.Person{ID: 660271, FullName: "Shohei Ohtani"},
							Pitcher: statsapi.Person{ID: 592789, FullName: "Logan Webb"},
						},
					},
					{
						About:   statsapi.PlayAbout{Inning: 9, HalfInning: "top", IsComplete: true, HasOut: true, AwayScore: 3, HomeScore: 5},
						Result:  statsapi.PlayResult{Description: "Matt Chapman strikes out swinging.", Event: "Strikeout"},
						Matchup: statsapi.Matchup{Batter: statsapi.Person{ID: 656305, FullName: "Matt Chapman"}},
					},
				},
				ScoringPlays: []int{0},
			},
			Decisions: statsapi.Decisions{
				Winner: &statsapi.Person{ID: 477132, FullName: "Clayton Kershaw"},
				Loser:  &statsapi.Person{ID: 592789, FullName: "Logan Webb"},
			},
		},
	}
}

func fixtureContent() statsapi.ContentResponse {
	return statsapi.ContentResponse{
		Highlights: &statsapi.ContentHighlights{
			Highlights: &statsapi.HighlightList{
				Items: []statsapi.HighlightItem{
					{
						Title:       "Ohtani's 44th home run",
						Description: "Shohei Ohtani crushes a two-run homer to center field.",
						Playbacks: []statsapi.Playback{
							{Name: "mp4Avc", URL: "https://mlb-cuts-diamond.mlb.com/FORGE/2024/ohtani-hr-44.mp4"},
						},
						Thumbnail: statsapi.Thumbnail{Href: "https://img.mlbstatic.com/mlb-images/image/upload/ohtani-hr-44.jpg"},
					},
					{
						Title:       "Kershaw closes it out",
						Description: "Clayton Kershaw strikes out the side in the ninth.",
						Playbacks: []statsapi.Playback{
							{Name: "mp4Avc", URL: "https://mlb-cuts-diamond.mlb.com/FORGE/2024/kershaw-ninth.mp4"},
						},
						Thumbnail: statsapi.Thumbnail{Href: "https://img.mlbstatic.com/mlb-images/image/upload/kershaw-ninth.jpg"},
					},
				},
			},
		},
	}
}

func fixtureSchedule() statsapi.ScheduleResponse {
	homeScore := 5
	awayScore := 3
	return statsapi.ScheduleResponse{
		Dates: []statsapi.ScheduleDate{
			{
				Date: "2024-07-23",
				Games: []statsapi.ScheduleGame{
					{
						GamePk:   GamePk,
						GameDate: "2024-07-24T02:10:00Z",
						Status:   statsapi.GameStatus{AbstractGameState: "Final", DetailedState: "Final"},
						Teams: statsapi.ScheduleTeams{
							Home: statsapi.ScheduleTeam{Team: statsapi.TeamInfo{ID: 119, Name: "Los Angeles Dodgers"}, Score: &homeScore},
							Away: statsapi.ScheduleTeam{Team: statsapi.TeamInfo{ID: 137, Name: "San Francisco Giants"}, Score: &awayScore},
						},
						Venue: statsapi.Venue{Name: "Dodger Stadium"},
					},
					{
						GamePk:   ScheduledGamePk,
						GameDate: "2024-07-25T02:10:00Z",
						Status:   statsapi.GameStatus{AbstractGameState: "Preview", DetailedState: "Scheduled"},
						Teams: statsapi.ScheduleTeams{
							Home: statsapi.ScheduleTeam{
								Team:            statsapi.TeamInfo{ID: 119, Name: "Los Angeles Dodgers"},
								ProbablePitcher: &statsapi.Person{ID: 477132, FullName: "Clayton Kershaw"},
							},
							Away: statsapi.ScheduleTeam{
								Team:            statsapi.TeamInfo{ID: 137, Name: "San Francisco Giants"},
								ProbablePitcher: &statsapi.Person{ID: 592789, FullName: "Logan Webb"},
							},
						},
						Venue:   statsapi.Venue{Name: "Dodger Stadium"},
						Weather: statsapi.Weather{Condition: "Clear", Temp: "72", Wind: "3 mph, L To R"},
					},
				},
			},
		},
	}
}
