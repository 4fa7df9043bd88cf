package logic

import (
	"context"
	"errors"

	"github.com/futmetrics/stats-api/internal/models"
)

// Sentinel errors surfaced to handlers. Everything else an operation
// returns is treated as an internal failure.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrTeamNotFound   = errors.New("team not found")
)

// PlayerStore looks up scraped player aggregates (bio plus raw match rows).
type PlayerStore interface {
	FindByName(ctx context.Context, name string) ([]models.Player, error)
}

// MatchRecordStore holds normalized match records keyed by player name.
type MatchRecordStore interface {
	FindByPlayerName(ctx context.Context, playerName string) ([]models.MatchRecord, error)
	SaveAll(ctx context.Context, records []models.MatchRecord) error
}

// MetricsStore persists the per-player metrics aggregate, one row per
// player, overwritten on each recomputation.
type MetricsStore interface {
	Upsert(ctx context.Context, metrics *models.PerformanceMetrics) error
}

// AnalysisStore persists prediction snapshots. Insert only; snapshots are
// immutable.
type AnalysisStore interface {
	Insert(ctx context.Context, analysis *models.PredictiveAnalysis) error
}

// IntegrationService turns a player's scraped history into normalized
// match records, short-circuiting when the records already exist.
type IntegrationService interface {
	ConvertToMatchRecords(ctx context.Context, playerName string) ([]models.MatchRecord, error)
}

// MetricsService aggregates normalized match records into PerformanceMetrics.
type MetricsService interface {
	CalculateMetrics(ctx context.Context, records []models.MatchRecord) (*models.PerformanceMetrics, error)
}

// PredictionService produces a PredictiveAnalysis snapshot for a fixture
// context.
type PredictionService interface {
	PredictPerformance(ctx context.Context, playerName, opponent string, isHome bool, position string) (*models.PredictiveAnalysis, error)
}
