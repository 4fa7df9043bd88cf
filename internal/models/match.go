package models

import "time"

// Match result codes as persisted in match_records.
const (
	ResultHome = "H"
	ResultAway = "A"
)

// Normalized position codes. Anything outside the scraped vocabulary
// passes through unchanged.
const (
	PositionForward    = "FW"
	PositionMidfielder = "MF"
	PositionDefender   = "DF"
)

// RawMatchRecord is one row of the scraped per-match statistics table,
// exactly as extracted from the page. Every field is free text and may be
// empty or garbled; the normalizer owns all interpretation.
type RawMatchRecord struct {
	Opponent    string `json:"opponent"`
	Score       string `json:"score"`
	Date        string `json:"date"`
	Position    string `json:"position"`
	MinsPlayed  string `json:"mins_played"` // may carry a trailing apostrophe, e.g. "90'"
	Goals       string `json:"goals"`
	Assists     string `json:"assists"`
	YellowCards string `json:"yellow_cards"`
	RedCards    string `json:"red_cards"`
	Shots       string `json:"shots"`
	PassSuccess string `json:"pass_success"` // "87,5%" or "87.5"
	AerialsWon  string `json:"aerials_won"`
	Rating      string `json:"rating"`
}

// MatchRecord is the analysis-ready form of one match. All numeric fields
// are non-nullable and carry their fallback value (0, 0.0, or the
// normalization-time date) when the source text was absent or unparseable.
// Records are immutable once created.
type MatchRecord struct {
	ID             string    `json:"id"`
	PlayerName     string    `json:"player_name"`
	Opponent       string    `json:"opponent"`
	MatchDate      time.Time `json:"match_date"`
	Result         string    `json:"result"` // H or A
	Position       string    `json:"position"`
	MinutesPlayed  int       `json:"minutes_played"`
	Goals          int       `json:"goals"`
	Assists        int       `json:"assists"`
	YellowCards    int       `json:"yellow_cards"`
	RedCards       int       `json:"red_cards"`
	Shots          int       `json:"shots"`
	PassAccuracy   float64   `json:"pass_accuracy"` // 0-100
	AerialDuelsWon int       `json:"aerial_duels_won"`
	Rating         float64   `json:"rating"`
	League         string    `json:"league"`
	Season         string    `json:"season"` // "2024-2025"
}

// Played reports whether the player actually took the field.
func (m *MatchRecord) Played() bool {
	return m.MinutesPlayed > 0
}
