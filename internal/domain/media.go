package domain

// Highlight is one video clip from a game's media payload.
type Highlight struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Playbacks   []MediaPlayback `json:"playbacks"`
	Thumbnail   string          `json:"thumbnail"`
}

// MediaPlayback is a single playable rendition of a highlight.
type MediaPlayback struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// HomeRunMoment is a home-run play lifted from the live feed, with the
// batter's identity resolved to a headshot URL.
type HomeRunMoment struct {
	Inning      int           `json:"inning"`
	HalfInning  string        `json:"half_inning"`
	Description string        `json:"description"`
	Batter      HomeRunBatter `json:"batter"`
}

type HomeRunBatter struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Photo    string `json:"photo"`
}
