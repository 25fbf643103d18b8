package domain

// PositionRef is a player's fielding position.
type PositionRef struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Abbreviation string `json:"abbreviation"`
}

// RosterPlayer is one flattened active-roster entry. Stats holds the player's
// single-season split as delivered upstream; its keys vary by position.
type RosterPlayer struct {
	ID            int64          `json:"id"`
	FullName      string         `json:"full_name"`
	JerseyNumber  string         `json:"jersey_number"`
	Position      PositionRef    `json:"position"`
	Status        string         `json:"status"`
	Stats         map[string]any `json:"stats"`
	BatSide       string         `json:"bat_side"`
	PitchHand     string         `json:"pitch_hand"`
	PrimaryNumber string         `json:"primary_number"`
	BirthDate     string         `json:"birth_date"`
	CurrentAge    int            `json:"current_age"`
	BirthCity     string         `json:"birth_city"`
	BirthCountry  string         `json:"birth_country"`
	Height        string         `json:"height"`
	Weight        int            `json:"weight"`
	Active        bool           `json:"active"`
}

// PlayerInfo is the identity header attached to a player's season stats.
type PlayerInfo struct {
	ID              int64  `json:"id"`
	FullName        string `json:"full_name"`
	PrimaryNumber   string `json:"primary_number"`
	CurrentTeam     string `json:"current_team"`
	PrimaryPosition string `json:"primary_position"`
}

// PlayerSeasonStats groups one player's season aggregates by stat group.
type PlayerSeasonStats struct {
	PlayerInfo PlayerInfo     `json:"player_info"`
	Hitting    map[string]any `json:"hitting"`
	Pitching   map[string]any `json:"pitching"`
	Fielding   map[string]any `json:"fielding"`
}
