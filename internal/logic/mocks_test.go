package logic

import (
	"context"

	"github.com/futmetrics/stats-api/internal/models"
)

// MockPlayerStore
type MockPlayerStore struct {
	FindByNameFunc func(ctx context.Context, name string) ([]models.Player, error)
}

func (m *MockPlayerStore) FindByName(ctx context.Context, name string) ([]models.Player, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

// MockMatchRecordStore
type MockMatchRecordStore struct {
	FindByPlayerNameFunc func(ctx context.Context, playerName string) ([]models.MatchRecord, error)
	SaveAllFunc          func(ctx context.Context, records []models.MatchRecord) error
	SaveAllCalls         int
	Saved                []models.MatchRecord
}

func (m *MockMatchRecordStore) FindByPlayerName(ctx context.Context, playerName string) ([]models.MatchRecord, error) {
	if m.FindByPlayerNameFunc != nil {
		return m.FindByPlayerNameFunc(ctx, playerName)
	}
	return nil, nil
}

func (m *MockMatchRecordStore) SaveAll(ctx context.Context, records []models.MatchRecord) error {
	m.SaveAllCalls++
	m.Saved = append(m.Saved, records...)
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, records)
	}
	return nil
}

// MockMetricsStore
type MockMetricsStore struct {
	UpsertFunc  func(ctx context.Context, metrics *models.PerformanceMetrics) error
	UpsertCalls int
	Last        *models.PerformanceMetrics
}

func (m *MockMetricsStore) Upsert(ctx context.Context, metrics *models.PerformanceMetrics) error {
	m.UpsertCalls++
	m.Last = metrics
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, metrics)
	}
	return nil
}

// MockMetricsService
type MockMetricsService struct {
	CalculateMetricsFunc func(ctx context.Context, records []models.MatchRecord) (*models.PerformanceMetrics, error)
	Received             []models.MatchRecord
}

func (m *MockMetricsService) CalculateMetrics(ctx context.Context, records []models.MatchRecord) (*models.PerformanceMetrics, error) {
	m.Received = records
	if m.CalculateMetricsFunc != nil {
		return m.CalculateMetricsFunc(ctx, records)
	}
	return &models.PerformanceMetrics{}, nil
}

// MockAnalysisStore
type MockAnalysisStore struct {
	InsertFunc  func(ctx context.Context, analysis *models.PredictiveAnalysis) error
	InsertCalls int
	Last        *models.PredictiveAnalysis
}

func (m *MockAnalysisStore) Insert(ctx context.Context, analysis *models.PredictiveAnalysis) error {
	m.InsertCalls++
	m.Last = analysis
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, analysis)
	}
	return nil
}
