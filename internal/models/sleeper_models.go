package models

type SleeperUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type SleeperRoster struct {
	RosterID int    `json:"roster_id"`
	OwnerID  string `json:"owner_id"`
}

type SleeperMatchupEntry struct {
	RosterID  int      `json:"roster_id"`
	MatchupID *int     `json:"matchup_id"`
	Players   []string `json:"players"`
	Starters  []string `json:"starters"`
	Points    float64  `json:"points"`
}

type SleeperPlayer struct {
	PlayerID         string   `json:"player_id"`
	FullName         string   `json:"full_name"`
	SearchFullName   string   `json:"search_full_name"`
	FantasyPositions []string `json:"fantasy_positions"`
}

type SleeperStatLine struct {
	PtsHalfPPR *float64 `json:"pts_half_ppr"`
}

type SleeperState struct {
	Season      string `json:"season"`
	SeasonType  string `json:"season_type"`
	Week        int    `json:"week"`
	DisplayWeek int    `json:"display_week"`
}
