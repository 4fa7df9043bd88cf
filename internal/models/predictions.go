package models

import "time"

// Performance prediction levels, derived from the predictive score.
const (
	PredictionHigh   = "HIGH"
	PredictionMedium = "MEDIUM"
	PredictionLow    = "LOW"
)

// PredictiveAnalysis is one scored prediction for a fixture context
// (player, opponent, venue, position). Snapshots are append-only: each
// request produces a new row and nothing is ever updated.
type PredictiveAnalysis struct {
	ID           string    `json:"id"`
	PlayerName   string    `json:"player_name"`
	AnalysisDate time.Time `json:"analysis_date"`

	GoalProbability       float64 `json:"goal_probability"`
	AssistProbability     float64 `json:"assist_probability"`
	HighRatingProbability float64 `json:"high_rating_probability"` // P(rating > 7.5)
	FullMatchProbability  float64 `json:"full_match_probability"`

	HomeAdvantageFactor float64 `json:"home_advantage_factor"`
	OpponentFactor      float64 `json:"opponent_factor"`
	PositionFactor      float64 `json:"position_factor"`
	TrendFactor         float64 `json:"trend_factor"`

	PredictiveScore       float64 `json:"predictive_score"` // 0-100
	PerformancePrediction string  `json:"performance_prediction"`
}
