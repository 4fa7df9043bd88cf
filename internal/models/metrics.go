package models

import "time"

// Placeholder values for metrics the scraped table does not carry the raw
// counts for. They are documented constants, not computed results.
const (
	DefaultShotAccuracy       = 0.5
	DefaultKeyPassesPerMatch  = 1.5
	DefaultRecoveriesPerMatch = 2.0
)

// DefaultAverageRating is the neutral rating assumed when a player has no
// played matches. Downstream probability math divides by rating numbers,
// so the zero value is never used directly.
const DefaultAverageRating = 6.0

// PerformanceMetrics is the per-player aggregate over the played subset
// (minutes > 0) of their match records. It is recomputed from scratch on
// every request and upserted, never incrementally maintained.
type PerformanceMetrics struct {
	ID           string    `json:"id"`
	PlayerName   string    `json:"player_name"`
	AnalysisDate time.Time `json:"analysis_date"`

	GoalsPerMatch   float64 `json:"goals_per_match"`
	AssistsPerMatch float64 `json:"assists_per_match"`
	GoalInvolvement float64 `json:"goal_involvement"` // (goals + assists) / matches
	ShotsPerMatch   float64 `json:"shots_per_match"`
	ShotAccuracy    float64 `json:"shot_accuracy"` // placeholder constant

	PassAccuracy      float64 `json:"pass_accuracy"`
	KeyPassesPerMatch float64 `json:"key_passes_per_match"` // placeholder constant

	AerialDuelsWon     float64 `json:"aerial_duels_won"`
	RecoveriesPerMatch float64 `json:"recoveries_per_match"` // placeholder constant

	AverageRating   float64 `json:"average_rating"`
	RatingDeviation float64 `json:"rating_deviation"` // consistency; 1.0 prior below 2 samples
	MinutesPerMatch float64 `json:"minutes_per_match"`

	OffensiveImpact   float64 `json:"offensive_impact"` // weighted composite
	PerformanceTrend  float64 `json:"performance_trend"`
	GoalProbability   float64 `json:"goal_probability"`
	AssistProbability float64 `json:"assist_probability"`
}

// RatingOrDefault returns the average rating, substituting the neutral
// default when the played subset was empty.
func (m *PerformanceMetrics) RatingOrDefault() float64 {
	if m.AverageRating == 0 {
		return DefaultAverageRating
	}
	return m.AverageRating
}

// DeviationOrDefault guards the probability math against a zero deviation.
func (m *PerformanceMetrics) DeviationOrDefault() float64 {
	if m.RatingDeviation == 0 {
		return 1.0
	}
	return m.RatingDeviation
}
