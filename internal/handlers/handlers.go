package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/futmetrics/stats-api/internal/logic"
	"github.com/futmetrics/stats-api/internal/models"
)

// PlayerLookup resolves players by name, scraping when unknown.
type PlayerLookup interface {
	PlayerByName(ctx context.Context, name string) ([]models.Player, error)
}

// TeamLookup resolves teams by name, scraping when unknown.
type TeamLookup interface {
	TeamByName(ctx context.Context, name string) ([]models.Team, error)
}

// MetricsPrecomputer schedules a background metrics precompute for a
// player. Optional; a nil precomputer means metrics are computed on the
// request path only.
type MetricsPrecomputer interface {
	Enqueue(playerName string) bool
}

type Config struct {
	Postgres *pgxpool.Pool
	Redis    *redis.Client
	Logger   *zap.Logger
	// Season used by the comparison endpoint when none is given.
	Season string
	// Services
	Integration logic.IntegrationService
	Metrics     logic.MetricsService
	Prediction  logic.PredictionService
	Players     PlayerLookup
	Teams       TeamLookup
	Precompute  MetricsPrecomputer
}

type Handler struct {
	pg          *pgxpool.Pool
	redis       *redis.Client
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	season      string
	integration logic.IntegrationService
	metrics     logic.MetricsService
	prediction  logic.PredictionService
	players     PlayerLookup
	teams       TeamLookup
	precompute  MetricsPrecomputer
}

func New(cfg Config) *Handler {
	return &Handler{
		pg:          cfg.Postgres,
		redis:       cfg.Redis,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
		season:      cfg.Season,
		integration: cfg.Integration,
		metrics:     cfg.Metrics,
		prediction:  cfg.Prediction,
		players:     cfg.Players,
		teams:       cfg.Teams,
		precompute:  cfg.Precompute,
	}
}
