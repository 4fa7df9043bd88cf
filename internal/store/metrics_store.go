package store

import (
	"context"
	"fmt"

	"github.com/futmetrics/stats-api/internal/models"
)

// MetricsStore keeps one metrics row per player, overwritten on each
// recomputation. Concurrent recomputations race benignly; last write wins.
type MetricsStore struct {
	pool PgPool
}

func NewMetricsStore(pool PgPool) *MetricsStore {
	return &MetricsStore{pool: pool}
}

func (s *MetricsStore) Upsert(ctx context.Context, m *models.PerformanceMetrics) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO performance_metrics (id, player_name, analysis_date,
			goals_per_match, assists_per_match, goal_involvement, shots_per_match,
			shot_accuracy, pass_accuracy, key_passes_per_match, aerial_duels_won,
			recoveries_per_match, average_rating, rating_deviation, minutes_per_match,
			offensive_impact, performance_trend, goal_probability, assist_probability)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (player_name) DO UPDATE SET
			analysis_date = EXCLUDED.analysis_date,
			goals_per_match = EXCLUDED.goals_per_match,
			assists_per_match = EXCLUDED.assists_per_match,
			goal_involvement = EXCLUDED.goal_involvement,
			shots_per_match = EXCLUDED.shots_per_match,
			shot_accuracy = EXCLUDED.shot_accuracy,
			pass_accuracy = EXCLUDED.pass_accuracy,
			key_passes_per_match = EXCLUDED.key_passes_per_match,
			aerial_duels_won = EXCLUDED.aerial_duels_won,
			recoveries_per_match = EXCLUDED.recoveries_per_match,
			average_rating = EXCLUDED.average_rating,
			rating_deviation = EXCLUDED.rating_deviation,
			minutes_per_match = EXCLUDED.minutes_per_match,
			offensive_impact = EXCLUDED.offensive_impact,
			performance_trend = EXCLUDED.performance_trend,
			goal_probability = EXCLUDED.goal_probability,
			assist_probability = EXCLUDED.assist_probability
	`, m.ID, m.PlayerName, m.AnalysisDate,
		m.GoalsPerMatch, m.AssistsPerMatch, m.GoalInvolvement, m.ShotsPerMatch,
		m.ShotAccuracy, m.PassAccuracy, m.KeyPassesPerMatch, m.AerialDuelsWon,
		m.RecoveriesPerMatch, m.AverageRating, m.RatingDeviation, m.MinutesPerMatch,
		m.OffensiveImpact, m.PerformanceTrend, m.GoalProbability, m.AssistProbability)
	if err != nil {
		return fmt.Errorf("upsert metrics: %w", err)
	}
	return nil
}
