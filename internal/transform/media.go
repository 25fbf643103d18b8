package transform

import (
	"fmt"
	"strconv"

	"mlb-storyteller-service/internal/domain"
	"mlb-storyteller-service/internal/providers/statsapi"
)

const (
	homeRunEvent = "Home Run"

	// League-wide fallback when a team cannot be resolved to its own logo.
	defaultTeamLogoURL   = "https://www.mlbstatic.com/mlb.com/images/share/mlb-logo-on-light.jpg"
	teamLogoURLFormat    = "https://www.mlbstatic.com/team-logos/%s.svg"
	playerPhotoURLFormat = "https://img.mlbstatic.com/mlb-photos/image/upload/d_people:generic:headshot:67:current.png/w_213,q_auto:best/v1/people/%s/headshot/67/current"
)

// TeamLogoURL resolves a team ID to its static logo asset. An empty or
// non-numeric ID falls back to the league logo.
func TeamLogoURL(teamID string) string {
	if _, err := strconv.ParseInt(teamID, 10, 64); err != nil {
		return defaultTeamLogoURL
	}
	return fmt.Sprintf(teamLogoURLFormat, teamID)
}

// PlayerPhotoURL resolves a player ID to their current headshot asset. The
// asset host serves a generic silhouette for unknown IDs, so no validation
// happens here.
func PlayerPhotoURL(playerID string) string {
	return fmt.Sprintf(playerPhotoURLFormat, playerID)
}

// HighlightsFromContent flattens the finished-highlights reel of a media
// payload. A payload without the highlight substructure yields an empty list.
func HighlightsFromContent(content statsapi.ContentResponse) []domain.Highlight {
	highlights := make([]domain.Highlight, 0)
	if content.Highlights == nil || content.Highlights.Highlights == nil {
		return highlights
	}
	for _, item := range content.Highlights.Highlights.Items {
		highlights = append(highlights, domain.Highlight{
			Title:       item.Title,
			Description: item.Description,
			Playbacks:   mapPlaybacks(item.Playbacks),
			Thumbnail:   item.Thumbnail.Href,
		})
	}
	return highlights
}

func mapPlaybacks(playbacks []statsapi.Playback) []domain.MediaPlayback {
	out := make([]domain.MediaPlayback, 0, len(playbacks))
	for _, p := range playbacks {
		if p.URL == "" || p.Name == "" {
			continue
		}
		out = append(out, domain.MediaPlayback{Name: p.Name, URL: p.URL})
	}
	return out
}

// HomeRunsFromFeed lifts every home-run play from a live feed in game order.
// A feed without play data yields an empty list.
func HomeRunsFromFeed(feed statsapi.FeedResponse) []domain.HomeRunMoment {
	moments := make([]domain.HomeRunMoment, 0)
	if feed.LiveData == nil {
		return moments
	}
	for _, play := range feed.LiveData.Plays.AllPlays {
		if play.Result.Event != homeRunEvent {
			continue
		}
		batterID := play.Matchup.Batter.ID
		moments = append(moments, domain.HomeRunMoment{
			Inning:      play.About.Inning,
			HalfInning:  play.About.HalfInning,
			Description: play.Result.Description,
			Batter: domain.HomeRunBatter{
				ID:       batterID,
				FullName: play.Matchup.Batter.FullName,
				Photo:    PlayerPhotoURL(strconv.FormatInt(batterID, 10)),
			},
		})
	}
	return moments
}
