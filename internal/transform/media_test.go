package transform

import (
	"strings"
	"testing"

	"mlb-storyteller-service/internal/providers/statsapi"
)

func contentWithHighlights() statsapi.ContentResponse {
	return statsapi.ContentResponse{
		Highlights: &statsapi.ContentHighlights{
			Highlights: &statsapi.HighlightList{
				Items: []statsapi.HighlightItem{
					{
						Title:       "Walk-off single",
						Description: "Freeman singles home the winning run.",
						Playbacks: []statsapi.Playback{
							{Name: "mp4Avc", URL: "https://example.com/walkoff.mp4"},
							{Name: "", URL: "https://example.com/nameless.mp4"},
							{Name: "highBit", URL: ""},
						},
						Thumbnail: statsapi.Thumbnail{Href: "https://example.com/walkoff.jpg"},
					},
				},
			},
		},
	}
}

func TestHighlightsFromContentFlattensItems(t *testing.T) {
	highlights := HighlightsFromContent(contentWithHighlights())
	if len(highlights) != 1 {
		t.Fatalf("expected 1 highlight, got %d", len(highlights))
	}
	h := highlights[0]
	if h.Title != "Walk-off single" {
		t.Fatalf("unexpected title %q", h.Title)
	}
	if h.Thumbnail != "https://example.com/walkoff.jpg" {
		t.Fatalf("unexpected thumbnail %q", h.Thumbnail)
	}
	if len(h.Playbacks) != 1 {
		t.Fatalf("playbacks without both name and url must be dropped, got %+v", h.Playbacks)
	}
	if h.Playbacks[0].Name != "mp4Avc" || h.Playbacks[0].URL != "https://example.com/walkoff.mp4" {
		t.Fatalf("unexpected playback %+v", h.Playbacks[0])
	}
}

func TestHighlightsFromContentMissingSubstructure(t *testing.T) {
	if got := HighlightsFromContent(statsapi.ContentResponse{}); len(got) != 0 {
		t.Fatalf("expected empty highlights, got %+v", got)
	}
	empty := statsapi.ContentResponse{Highlights: &statsapi.ContentHighlights{}}
	if got := HighlightsFromContent(empty); len(got) != 0 {
		t.Fatalf("expected empty highlights, got %+v", got)
	}
}

func TestHomeRunsFromFeedLiftsOnlyHomeRuns(t *testing.T) {
	feed := statsapi.FeedResponse{
		LiveData: &statsapi.LiveData{
			Plays: statsapi.Plays{
				AllPlays: []statsapi.Play{
					{
						About:   statsapi.PlayAbout{Inning: 3, HalfInning: "bottom"},
						Result:  statsapi.PlayResult{Event: "Home Run", Description: "Betts homers (20)."},
						Matchup: statsapi.Matchup{Batter: statsapi.Person{ID: 605141, FullName: "Mookie Betts"}},
					},
					{
						About:   statsapi.PlayAbout{Inning: 4, HalfInning: "top"},
						Result:  statsapi.PlayResult{Event: "Strikeout", Description: "Chapman strikes out."},
						Matchup: statsapi.Matchup{Batter: statsapi.Person{ID: 656305, FullName: "Matt Chapman"}},
					},
				},
			},
		},
	}

	moments := HomeRunsFromFeed(feed)
	if len(moments) != 1 {
		t.Fatalf("expected 1 home run, got %d", len(moments))
	}
	m := moments[0]
	if m.Inning != 3 || m.HalfInning != "bottom" {
		t.Fatalf("unexpected moment %+v", m)
	}
	if m.Batter.ID != 605141 || m.Batter.FullName != "Mookie Betts" {
		t.Fatalf("unexpected batter %+v", m.Batter)
	}
	if !strings.Contains(m.Batter.Photo, "/people/605141/headshot/") {
		t.Fatalf("photo does not address the batter: %q", m.Batter.Photo)
	}
}

func TestHomeRunsFromFeedMissingLiveData(t *testing.T) {
	if got := HomeRunsFromFeed(statsapi.FeedResponse{}); len(got) != 0 {
		t.Fatalf("expected empty moments, got %+v", got)
	}
}

func TestTeamLogoURL(t *testing.T) {
	if got := TeamLogoURL("119"); got != "https://www.mlbstatic.com/team-logos/119.svg" {
		t.Fatalf("unexpected logo url %q", got)
	}
	for _, id := range []string{"", "dodgers", "11x"} {
		if got := TeamLogoURL(id); got != defaultTeamLogoURL {
			t.Fatalf("id %q: expected the league fallback, got %q", id, got)
		}
	}
}

func TestPlayerPhotoURL(t *testing.T) {
	got := PlayerPhotoURL("660271")
	if !strings.Contains(got, "/people/660271/headshot/67/current") {
		t.Fatalf("unexpected photo url %q", got)
	}
}
