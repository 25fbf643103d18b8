package transform

import (
	"strings"

	"mlb-storyteller-service/internal/domain"
	"mlb-storyteller-service/internal/providers/statsapi"
)

const statTypeSingleSeason = "statsSingleSeason"

// FromRoster flattens a hydrated roster payload into roster players, lifting
// each player's single-season stat split when present.
func FromRoster(resp statsapi.RosterResponse) []domain.RosterPlayer {
	players := make([]domain.RosterPlayer, 0, len(resp.Roster))
	for _, entry := range resp.Roster {
		person := entry.Person
		players = append(players, domain.RosterPlayer{
			ID:            person.ID,
			FullName:      person.FullName,
			JerseyNumber:  entry.JerseyNumber,
			Position:      mapPosition(entry.Position),
			Status:        entry.Status.Description,
			Stats:         seasonSplit(person.Stats),
			BatSide:       person.BatSide.Code,
			PitchHand:     person.PitchHand.Code,
			PrimaryNumber: person.PrimaryNumber,
			BirthDate:     person.BirthDate,
			CurrentAge:    person.CurrentAge,
			BirthCity:     person.BirthCity,
			BirthCountry:  person.BirthCountry,
			Height:        person.Height,
			Weight:        person.Weight,
			Active:        person.Active,
		})
	}
	return players
}

// FromPeople flattens a hydrated people payload into per-group season stats
// for the first listed player.
func FromPeople(resp statsapi.PeopleResponse) (domain.PlayerSeasonStats, bool) {
	if len(resp.People) == 0 {
		return domain.PlayerSeasonStats{}, false
	}
	person := resp.People[0]

	stats := domain.PlayerSeasonStats{
		Hitting:  map[string]any{},
		Pitching: map[string]any{},
		Fielding: map[string]any{},
		PlayerInfo: domain.PlayerInfo{
			ID:            person.ID,
			FullName:      person.FullName,
			PrimaryNumber: person.PrimaryNumber,
		},
	}
	if person.CurrentTeam != nil {
		stats.PlayerInfo.CurrentTeam = person.CurrentTeam.Name
	}
	if person.PrimaryPosition != nil {
		stats.PlayerInfo.PrimaryPosition = person.PrimaryPosition.Abbreviation
	}

	for _, group := range person.Stats {
		if len(group.Splits) == 0 {
			continue
		}
		switch strings.ToLower(group.Group.DisplayName) {
		case "hitting":
			stats.Hitting = group.Splits[0].Stat
		case "pitching":
			stats.Pitching = group.Splits[0].Stat
		case "fielding":
			stats.Fielding = group.Splits[0].Stat
		}
	}

	return stats, true
}

func seasonSplit(groups []statsapi.PersonStatGroup) map[string]any {
	for _, group := range groups {
		if group.Type.DisplayName != statTypeSingleSeason {
			continue
		}
		if len(group.Splits) > 0 {
			return group.Splits[0].Stat
		}
	}
	return map[string]any{}
}

func mapPosition(pos statsapi.Position) domain.PositionRef {
	return domain.PositionRef{
		Code:         pos.Code,
		Name:         pos.Name,
		Type:         pos.Type,
		Abbreviation: pos.Abbreviation,
	}
}
