package handlers

import (
	"context"

	"github.com/futmetrics/stats-api/internal/models"
)

// MockIntegrationService
type MockIntegrationService struct {
	ConvertFunc  func(ctx context.Context, playerName string) ([]models.MatchRecord, error)
	ConvertCalls int
}

func (m *MockIntegrationService) ConvertToMatchRecords(ctx context.Context, playerName string) ([]models.MatchRecord, error) {
	m.ConvertCalls++
	if m.ConvertFunc != nil {
		return m.ConvertFunc(ctx, playerName)
	}
	return nil, nil
}

// MockMetricsService
type MockMetricsService struct {
	CalculateFunc func(ctx context.Context, records []models.MatchRecord) (*models.PerformanceMetrics, error)
}

func (m *MockMetricsService) CalculateMetrics(ctx context.Context, records []models.MatchRecord) (*models.PerformanceMetrics, error) {
	if m.CalculateFunc != nil {
		return m.CalculateFunc(ctx, records)
	}
	return &models.PerformanceMetrics{}, nil
}

// MockPredictionService
type MockPredictionService struct {
	PredictFunc func(ctx context.Context, playerName, opponent string, isHome bool, position string) (*models.PredictiveAnalysis, error)
}

func (m *MockPredictionService) PredictPerformance(ctx context.Context, playerName, opponent string, isHome bool, position string) (*models.PredictiveAnalysis, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, playerName, opponent, isHome, position)
	}
	return &models.PredictiveAnalysis{}, nil
}

// MockPlayerLookup
type MockPlayerLookup struct {
	PlayerByNameFunc func(ctx context.Context, name string) ([]models.Player, error)
}

func (m *MockPlayerLookup) PlayerByName(ctx context.Context, name string) ([]models.Player, error) {
	if m.PlayerByNameFunc != nil {
		return m.PlayerByNameFunc(ctx, name)
	}
	return nil, nil
}

// MockTeamLookup
type MockTeamLookup struct {
	TeamByNameFunc func(ctx context.Context, name string) ([]models.Team, error)
}

func (m *MockTeamLookup) TeamByName(ctx context.Context, name string) ([]models.Team, error) {
	if m.TeamByNameFunc != nil {
		return m.TeamByNameFunc(ctx, name)
	}
	return nil, nil
}
