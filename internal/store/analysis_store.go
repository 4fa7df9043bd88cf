package store

import (
	"context"
	"fmt"

	"github.com/futmetrics/stats-api/internal/models"
)

// AnalysisStore appends prediction snapshots.
type AnalysisStore struct {
	pool PgPool
}

func NewAnalysisStore(pool PgPool) *AnalysisStore {
	return &AnalysisStore{pool: pool}
}

func (s *AnalysisStore) Insert(ctx context.Context, a *models.PredictiveAnalysis) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO predictive_analysis (id, player_name, analysis_date,
			goal_probability, assist_probability, high_rating_probability,
			full_match_probability, home_advantage_factor, opponent_factor,
			position_factor, trend_factor, predictive_score, performance_prediction)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, a.ID, a.PlayerName, a.AnalysisDate,
		a.GoalProbability, a.AssistProbability, a.HighRatingProbability,
		a.FullMatchProbability, a.HomeAdvantageFactor, a.OpponentFactor,
		a.PositionFactor, a.TrendFactor, a.PredictiveScore, a.PerformancePrediction)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}
