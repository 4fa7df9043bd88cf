package logic

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/futmetrics/stats-api/internal/models"
)

var metricsComputed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "futmetrics_metrics_computed_total",
	Help: "Number of per-player metric aggregations performed",
})

type metricsService struct {
	store MetricsStore
}

// NewMetricsService builds the aggregator over the metrics store.
func NewMetricsService(store MetricsStore) MetricsService {
	return &metricsService{store: store}
}

// CalculateMetrics aggregates a player's match records over the played
// subset (minutes > 0). The result is upserted to the store before being
// returned; a player with no played matches yields the documented defaults
// without touching the store.
func (s *metricsService) CalculateMetrics(ctx context.Context, records []models.MatchRecord) (*models.PerformanceMetrics, error) {
	metrics := &models.PerformanceMetrics{
		ID:                 uuid.NewString(),
		AnalysisDate:       time.Now(),
		ShotAccuracy:       models.DefaultShotAccuracy,
		KeyPassesPerMatch:  models.DefaultKeyPassesPerMatch,
		RecoveriesPerMatch: models.DefaultRecoveriesPerMatch,
	}

	played := make([]models.MatchRecord, 0, len(records))
	for _, r := range records {
		if r.Played() {
			played = append(played, r)
		}
	}

	if len(played) == 0 {
		if len(records) > 0 {
			metrics.PlayerName = records[0].PlayerName
		}
		metrics.AverageRating = models.DefaultAverageRating
		metrics.RatingDeviation = 1.0
		return metrics, nil
	}

	metrics.PlayerName = played[0].PlayerName

	n := float64(len(played))
	var goals, assists, shots, aerials, minutes int
	var passSum, ratingSum float64
	var withGoal, withAssist int
	for _, m := range played {
		goals += m.Goals
		assists += m.Assists
		shots += m.Shots
		aerials += m.AerialDuelsWon
		minutes += m.MinutesPlayed
		passSum += m.PassAccuracy
		ratingSum += m.Rating
		if m.Goals > 0 {
			withGoal++
		}
		if m.Assists > 0 {
			withAssist++
		}
	}

	metrics.GoalsPerMatch = float64(goals) / n
	metrics.AssistsPerMatch = float64(assists) / n
	metrics.GoalInvolvement = float64(goals+assists) / n
	metrics.ShotsPerMatch = float64(shots) / n
	metrics.PassAccuracy = passSum / n
	metrics.AverageRating = ratingSum / n
	metrics.RatingDeviation = ratingDeviation(played, metrics.AverageRating)
	metrics.AerialDuelsWon = float64(aerials) / n
	metrics.MinutesPerMatch = float64(minutes) / n

	metrics.GoalProbability = float64(withGoal) / n
	metrics.AssistProbability = float64(withAssist) / n
	metrics.OffensiveImpact = offensiveImpact(metrics)
	metrics.PerformanceTrend = performanceTrend(played)

	if err := s.store.Upsert(ctx, metrics); err != nil {
		return nil, fmt.Errorf("save metrics for %q: %w", metrics.PlayerName, err)
	}
	metricsComputed.Inc()
	return metrics, nil
}

// ratingDeviation is the sample standard deviation (n-1 divisor) of the
// match ratings. Below two samples it returns a fixed 1.0 prior so the
// downstream probability math never divides by zero.
func ratingDeviation(played []models.MatchRecord, average float64) float64 {
	if len(played) < 2 {
		return 1.0
	}
	var sum float64
	for _, m := range played {
		d := m.Rating - average
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(played)-1))
}

// offensiveImpact weights goals 40%, assists 30%, rating 20% and shots 10%,
// with rating and shots scaled down to the goal/assist range.
func offensiveImpact(m *models.PerformanceMetrics) float64 {
	return m.GoalsPerMatch*0.4 + m.AssistsPerMatch*0.3 +
		m.AverageRating*0.2/10 + m.ShotsPerMatch*0.1/10
}

// performanceTrend compares the mean rating of the most recent matches
// against the earliest ones, using symmetric windows of
// n = min(5, count/2) from both ends of the date-sorted history.
func performanceTrend(played []models.MatchRecord) float64 {
	sorted := make([]models.MatchRecord, len(played))
	copy(sorted, played)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MatchDate.After(sorted[j].MatchDate)
	})

	n := len(sorted) / 2
	if n > 5 {
		n = 5
	}
	if n < 2 {
		return 0.0
	}

	var recent, older float64
	for _, m := range sorted[:n] {
		recent += m.Rating
	}
	for _, m := range sorted[len(sorted)-n:] {
		older += m.Rating
	}
	return recent/float64(n) - older/float64(n)
}
