package fixturedata

import (
	"context"
	"strconv"
	"testing"

	"mlb-storyteller-service/internal/providers"
	"mlb-storyteller-service/internal/transform"
)

func TestGameFeedTransformsCleanly(t *testing.T) {
	p := New()
	feed, err := p.GameFeed(context.Background(), strconv.FormatInt(GamePk, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	record, err := transform.FromFeed(feed)
	if err != nil {
		t.Fatalf("fixture feed must transform without error: %v", err)
	}
	if !record.IsFinal() {
		t.Fatalf("expected final game, got state %+v", record.GameState)
	}
	if record.Result == nil || record.Result.Winner != "Los Angeles Dodgers" {
		t.Fatalf("unexpected result %+v", record.Result)
	}
	if record.Plays == nil || len(record.Plays.ScoringPlays) != 1 {
		t.Fatalf("expected one scoring play, got %+v", record.Plays)
	}
	if record.Leaders == nil || len(record.Leaders.Batting) == 0 {
		t.Fatalf("expected batting leaders in fixture, got %+v", record.Leaders)
	}
}

func TestGameFeedUnknownGame(t *testing.T) {
	p := New()
	_, err := p.GameFeed(context.Background(), "123456")
	if !providers.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGameContentFlattensToHighlights(t *testing.T) {
	p := New()
	content, err := p.GameContent(context.Background(), strconv.FormatInt(GamePk, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	highlights := transform.HighlightsFromContent(content)
	if len(highlights) != 2 {
		t.Fatalf("expected 2 highlights, got %d", len(highlights))
	}
	if highlights[0].Title != "Ohtani's 44th home run" {
		t.Fatalf("unexpected first highlight %+v", highlights[0])
	}
	if len(highlights[0].Playbacks) != 1 || highlights[0].Thumbnail == "" {
		t.Fatalf("unexpected media fields %+v", highlights[0])
	}
}

func TestGameContentUnknownGame(t *testing.T) {
	p := New()
	_, err := p.GameContent(context.Background(), "123456")
	if !providers.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestScheduleCarriesBothGames(t *testing.T) {
	p := New()
	resp, err := p.Schedule(context.Background(), 2024, "R")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var pks []int64
	for _, date := range resp.Dates {
		for _, game := range date.Games {
			pks = append(pks, game.GamePk)
		}
	}
	if len(pks) != 2 || pks[0] != GamePk || pks[1] != ScheduledGamePk {
		t.Fatalf("unexpected schedule pks %v", pks)
	}
}

func TestScheduleForGameFindsScheduledGame(t *testing.T) {
	p := New()
	resp, err := p.ScheduleForGame(context.Background(), strconv.FormatInt(ScheduledGamePk, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Dates) != 1 || len(resp.Dates[0].Games) != 1 {
		t.Fatalf("expected single game, got %+v", resp.Dates)
	}
	game := resp.Dates[0].Games[0]
	if game.GamePk != ScheduledGamePk {
		t.Fatalf("unexpected game pk %d", game.GamePk)
	}
	if game.Teams.Home.ProbablePitcher == nil {
		t.Fatal("scheduled game must carry probable pitchers")
	}

	empty, err := p.ScheduleForGame(context.Background(), "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty.Dates) != 0 {
		t.Fatalf("expected empty schedule for unknown game, got %+v", empty.Dates)
	}
}

func TestRosterCarriesSeasonSplit(t *testing.T) {
	p := New()
	resp, err := p.Roster(context.Background(), "119", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	players := transform.FromRoster(resp)
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].FullName != "Shohei Ohtani" || players[0].Position.Abbreviation != "DH" {
		t.Fatalf("unexpected player %+v", players[0])
	}
	if players[0].Stats["season"] != "2024" {
		t.Fatalf("expected lifted season split, got %+v", players[0].Stats)
	}
}

func TestPlayerStatsTransformCleanly(t *testing.T) {
	p := New()
	resp, err := p.Player(context.Background(), "660271", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, ok := transform.FromPeople(resp)
	if !ok {
		t.Fatal("expected player stats")
	}
	if stats.PlayerInfo.ID != 660271 {
		t.Fatalf("unexpected player id %d", stats.PlayerInfo.ID)
	}
	if stats.Hitting["homeRuns"] != float64(44) {
		t.Fatalf("unexpected hitting stats %+v", stats.Hitting)
	}
}
