package models

// Player is the scraped player aggregate. It exclusively owns its
// MatchStats rows: saving a player replaces the whole child set.
type Player struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	CurrentTeam string           `json:"current_team"`
	ShirtNumber string           `json:"shirt_number"`
	Age         string           `json:"age"`
	Height      string           `json:"height"`
	Nationality string           `json:"nationality"`
	Positions   string           `json:"positions"`
	MatchStats  []RawMatchRecord `json:"match_stats"`
}

// Team is the scraped team aggregate; it owns its squad rows the same way
// the player aggregate owns its match stats.
type Team struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Squad []SquadPlayer `json:"squad"`
}

// SquadPlayer is one scraped squad-table row. All fields stay as text;
// only per-match player records go through the normalizer.
type SquadPlayer struct {
	Name              string `json:"name"`
	Age               string `json:"age"`
	Position          string `json:"position"`
	Height            string `json:"height"`
	Weight            string `json:"weight"`
	Apps              string `json:"apps"`
	MinsPlayed        string `json:"mins_played"`
	Goals             string `json:"goals"`
	Assists           string `json:"assists"`
	YellowCards       string `json:"yellow_cards"`
	RedCards          string `json:"red_cards"`
	ShotsPerGame      string `json:"shots_per_game"`
	PassSuccess       string `json:"pass_success"`
	AerialsWonPerGame string `json:"aerials_won_per_game"`
	ManOfTheMatch     string `json:"man_of_the_match"`
	Rating            string `json:"rating"`
}
