package logic

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/futmetrics/stats-api/internal/models"
)

var predictionsComputed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "futmetrics_predictions_total",
	Help: "Number of predictive analyses computed",
})

// highRatingThreshold is the match rating treated as a standout
// performance.
const highRatingThreshold = 7.5

// fullMatchMinutes is the minute count from which an appearance counts as
// a full match.
const fullMatchMinutes = 85

type predictionService struct {
	matches  MatchRecordStore
	metrics  MetricsService
	analyses AnalysisStore
	season   string
	logger   *zap.SugaredLogger
}

// NewPredictionService builds the predictor. season selects which slice of
// a player's history feeds the model, e.g. "2024-2025".
func NewPredictionService(matches MatchRecordStore, metrics MetricsService, analyses AnalysisStore, season string, logger *zap.Logger) PredictionService {
	return &predictionService{
		matches:  matches,
		metrics:  metrics,
		analyses: analyses,
		season:   season,
		logger:   logger.Sugar(),
	}
}

// PredictPerformance combines a player's aggregated base rates with the
// fixture context (opponent, venue, position) into a scored prediction
// snapshot, which is persisted and returned.
func (s *predictionService) PredictPerformance(ctx context.Context, playerName, opponent string, isHome bool, position string) (*models.PredictiveAnalysis, error) {
	history, err := s.playerHistory(ctx, playerName)
	if err != nil {
		return nil, err
	}

	base, err := s.metrics.CalculateMetrics(ctx, history)
	if err != nil {
		return nil, err
	}

	analysis := &models.PredictiveAnalysis{
		ID:           uuid.NewString(),
		PlayerName:   playerName,
		AnalysisDate: time.Now(),
	}

	analysis.GoalProbability = goalProbability(base, opponent, isHome)
	analysis.AssistProbability = assistProbability(base, opponent, isHome)
	analysis.HighRatingProbability = highRatingProbability(base)
	analysis.FullMatchProbability = fullMatchProbability(history)

	analysis.HomeAdvantageFactor = homeAdvantageFactor(history, isHome)
	analysis.OpponentFactor = opponentFactor(history, opponent)
	analysis.PositionFactor = positionFactor(history, position)
	analysis.TrendFactor = base.PerformanceTrend

	analysis.PredictiveScore = predictiveScore(analysis)
	analysis.PerformancePrediction = performanceLevel(analysis.PredictiveScore)

	if err := s.analyses.Insert(ctx, analysis); err != nil {
		return nil, fmt.Errorf("save prediction for %q: %w", playerName, err)
	}

	predictionsComputed.Inc()
	s.logger.Infow("Prediction computed",
		"player", playerName, "opponent", opponent, "home", isHome,
		"score", analysis.PredictiveScore, "level", analysis.PerformancePrediction)
	return analysis, nil
}

// playerHistory returns the player's match records for the configured
// season. An empty history is not an error; every probability collapses to
// its neutral default downstream.
func (s *predictionService) playerHistory(ctx context.Context, playerName string) ([]models.MatchRecord, error) {
	all, err := s.matches.FindByPlayerName(ctx, playerName)
	if err != nil {
		return nil, fmt.Errorf("load history for %q: %w", playerName, err)
	}
	history := make([]models.MatchRecord, 0, len(all))
	for _, m := range all {
		if m.Season == s.season {
			history = append(history, m)
		}
	}
	return history, nil
}

func goalProbability(base *models.PerformanceMetrics, opponent string, isHome bool) float64 {
	home := 0.9
	if isHome {
		home = 1.1
	}
	return math.Min(0.95, base.GoalProbability*opponentStrengthFactor(opponent)*home)
}

// assistProbability mirrors goalProbability with a smaller venue effect.
func assistProbability(base *models.PerformanceMetrics, opponent string, isHome bool) float64 {
	home := 0.95
	if isHome {
		home = 1.05
	}
	return math.Min(0.95, base.AssistProbability*opponentStrengthFactor(opponent)*home)
}

// opponentStrengthFactor is a neutral placeholder until real opponent
// strength data is wired in.
func opponentStrengthFactor(opponent string) float64 {
	_ = opponent
	return 1.0
}

// highRatingProbability models the match rating as normally distributed
// around the player's average and returns P(rating > 7.5).
func highRatingProbability(base *models.PerformanceMetrics) float64 {
	z := (highRatingThreshold - base.RatingOrDefault()) / base.DeviationOrDefault()
	p := 1 - normalCDF(z)
	return math.Max(0.0, math.Min(1.0, p))
}

func fullMatchProbability(history []models.MatchRecord) float64 {
	if len(history) == 0 {
		return 0.0
	}
	full := 0
	for _, m := range history {
		if m.MinutesPlayed >= fullMatchMinutes {
			full++
		}
	}
	return float64(full) / float64(len(history))
}

// opponentFactor is the ratio of the player's mean rating against this
// opponent to their overall mean. No head-to-head history yields the
// neutral 1.0.
func opponentFactor(history []models.MatchRecord, opponent string) float64 {
	versus := filterRecords(history, func(m models.MatchRecord) bool {
		return strings.EqualFold(m.Opponent, opponent)
	})
	if len(versus) == 0 {
		return 1.0
	}
	return meanRating(versus) / meanRating(history)
}

// positionFactor is the same ratio computed over matches played in the
// requested position.
func positionFactor(history []models.MatchRecord, position string) float64 {
	inPosition := filterRecords(history, func(m models.MatchRecord) bool {
		return strings.EqualFold(m.Position, position)
	})
	if len(inPosition) == 0 {
		return 1.0
	}
	return meanRating(inPosition) / meanRating(history)
}

// homeAdvantageFactor compares mean home and away ratings, clamped to
// [0.7, 1.3]. An away request gets the reciprocal of the ratio. Missing
// either subset falls back to the fixed venue defaults.
func homeAdvantageFactor(history []models.MatchRecord, isHome bool) float64 {
	home := filterRecords(history, func(m models.MatchRecord) bool { return m.Result == models.ResultHome })
	away := filterRecords(history, func(m models.MatchRecord) bool { return m.Result == models.ResultAway })

	if len(home) == 0 || len(away) == 0 {
		if isHome {
			return 1.1
		}
		return 0.9
	}

	ratio := meanRating(home) / meanRating(away)
	if isHome {
		return math.Min(1.3, math.Max(0.7, ratio))
	}
	return math.Min(1.3, math.Max(0.7, 1.0/ratio))
}

func predictiveScore(a *models.PredictiveAnalysis) float64 {
	score := a.GoalProbability*30 +
		a.AssistProbability*25 +
		a.HighRatingProbability*20 +
		a.FullMatchProbability*10 +
		(a.TrendFactor+1)*5 +
		(a.HomeAdvantageFactor-1)*5 +
		(a.OpponentFactor-1)*3 +
		(a.PositionFactor-1)*2
	return math.Min(100, math.Max(0, score))
}

func performanceLevel(score float64) string {
	switch {
	case score >= 75:
		return models.PredictionHigh
	case score >= 50:
		return models.PredictionMedium
	default:
		return models.PredictionLow
	}
}

func filterRecords(records []models.MatchRecord, keep func(models.MatchRecord) bool) []models.MatchRecord {
	out := make([]models.MatchRecord, 0, len(records))
	for _, m := range records {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func meanRating(records []models.MatchRecord) float64 {
	if len(records) == 0 {
		return models.DefaultAverageRating
	}
	var sum float64
	for _, m := range records {
		sum += m.Rating
	}
	return sum / float64(len(records))
}

// normalCDF is the standard normal CDF via the Abramowitz-Stegun erf
// approximation (max error ~1.5e-7), kept coefficient-for-coefficient so
// scores match the previously persisted analyses.
func normalCDF(z float64) float64 {
	return 0.5 * (1 + erf(z/math.Sqrt2))
}

func erf(x float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	x = math.Abs(x)

	t := 1.0 / (1.0 + p*x)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)
	return sign * y
}
