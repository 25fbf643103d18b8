package transform

import (
	"fmt"
	"strconv"
	"strings"

	"mlb-storyteller-service/internal/domain"
	"mlb-storyteller-service/internal/providers/statsapi"
)

// Fixed thresholds of the domain. These are not configuration; downstream
// narration depends on the exact boundaries.
const (
	keyPlayMinRBI       = 2
	keyPlayLateInning   = 7
	standoutHits        = 3
	standoutHomeRuns    = 1
	standoutRBI         = 3
	standoutInnings     = 6.0
	standoutMaxEarned   = 2
	standoutStrikeouts  = 8
	standoutPutouts     = 5
	standoutAssists     = 3
	standoutDoublePlays = 2
)

// IsKeyPlay reports whether a play shaped the game: a scoring play, a home
// run, a multi-run hit, or a completed late-inning out.
func IsKeyPlay(p domain.PlayEvent) bool {
	if p.IsScoring {
		return true
	}
	if strings.Contains(strings.ToLower(p.Event), "home run") {
		return true
	}
	if p.RBI >= keyPlayMinRBI {
		return true
	}
	return p.Inning >= keyPlayLateInning && p.IsComplete && p.HasOut
}

// KeyPlays filters the play log down to the significant moments, preserving
// order.
func KeyPlays(events []domain.PlayEvent) []domain.PlayEvent {
	var key []domain.PlayEvent
	for _, event := range events {
		if IsKeyPlay(event) {
			key = append(key, event)
		}
	}
	return key
}

// IsStandoutBatting reports an exceptional batting line.
func IsStandoutBatting(line statsapi.BattingLine) bool {
	return line.Hits >= standoutHits ||
		line.HomeRuns >= standoutHomeRuns ||
		line.RBI >= standoutRBI
}

// IsStandoutPitching reports an exceptional pitching line. Innings pitched
// arrives in the upstream's fractional notation ("6.1" = six and one third)
// and is compared as a plain floating value.
func IsStandoutPitching(line statsapi.PitchingLine) bool {
	ip := ParseInningsPitched(line.InningsPitched)
	if ip >= standoutInnings && line.EarnedRuns <= standoutMaxEarned {
		return true
	}
	return line.StrikeOuts >= standoutStrikeouts
}

// IsStandoutFielding reports an exceptional fielding line.
func IsStandoutFielding(line statsapi.FieldingLine) bool {
	return line.PutOuts >= standoutPutouts ||
		line.Assists >= standoutAssists ||
		line.DoublePlays >= standoutDoublePlays
}

// ParseInningsPitched converts the fractional notation to a float. Absent or
// unparseable values count as zero innings.
func ParseInningsPitched(raw string) float64 {
	if raw == "" {
		return 0
	}
	ip, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return ip
}

func mapLeaders(box statsapi.Boxscore) *domain.Leaders {
	leaders := &domain.Leaders{}

	for _, side := range []struct {
		name string
		team statsapi.BoxTeam
	}{
		{"home", box.Teams.Home},
		{"away", box.Teams.Away},
	} {
		for _, batterID := range side.team.Batters {
			player, ok := side.team.Players[playerKey(batterID)]
			if !ok {
				continue
			}
			if IsStandoutBatting(player.Stats.Batting) {
				leaders.Batting = append(leaders.Batting, domain.Performance{
					Name:      player.Person.FullName,
					Side:      side.name,
					Highlight: battingHighlight(player.Stats.Batting),
				})
			}
			if IsStandoutFielding(player.Stats.Fielding) {
				leaders.Fielding = append(leaders.Fielding, domain.Performance{
					Name:      player.Person.FullName,
					Side:      side.name,
					Highlight: fieldingHighlight(player.Stats.Fielding),
				})
			}
		}
		for _, pitcherID := range side.team.Pitchers {
			player, ok := side.team.Players[playerKey(pitcherID)]
			if !ok {
				continue
			}
			if IsStandoutPitching(player.Stats.Pitching) {
				leaders.Pitching = append(leaders.Pitching, domain.Performance{
					Name:      player.Person.FullName,
					Side:      side.name,
					Highlight: pitchingHighlight(player.Stats.Pitching),
				})
			}
		}
	}

	if len(leaders.Batting) == 0 && len(leaders.Pitching) == 0 && len(leaders.Fielding) == 0 {
		return nil
	}
	return leaders
}

// playerKey builds the boxscore player lookup key ("ID" + numeric id).
func playerKey(id int64) string {
	return fmt.Sprintf("ID%d", id)
}

func battingHighlight(line statsapi.BattingLine) string {
	return fmt.Sprintf("%d-%d, %d HR, %d RBI", line.Hits, line.AtBats, line.HomeRuns, line.RBI)
}

func pitchingHighlight(line statsapi.PitchingLine) string {
	return fmt.Sprintf("%s IP, %d K, %d ER", line.InningsPitched, line.StrikeOuts, line.EarnedRuns)
}

func fieldingHighlight(line statsapi.FieldingLine) string {
	return fmt.Sprintf("%d PO, %d A, %d DP", line.PutOuts, line.Assists, line.DoublePlays)
}
