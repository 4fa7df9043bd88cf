package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/futmetrics/stats-api/internal/config"
	"github.com/futmetrics/stats-api/internal/handlers"
	"github.com/futmetrics/stats-api/internal/logic"
	"github.com/futmetrics/stats-api/internal/scraper"
	"github.com/futmetrics/stats-api/internal/store"
	"github.com/futmetrics/stats-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		logger.Fatal("postgres connect", zap.Error(err))
	}
	defer pool.Close()

	if err := store.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal("redis url", zap.Error(err))
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	// Stores
	playerStore := store.NewPlayerStore(pool)
	teamStore := store.NewTeamStore(pool)
	matchStore := store.NewMatchRecordStore(pool)
	metricsStore := store.NewMetricsStore(pool)
	analysisStore := store.NewAnalysisStore(pool)
	scrapeCache := store.NewRedisCache(redisClient, "scrape")

	// Pipeline
	integration := logic.NewIntegrationService(playerStore, matchStore, logger)
	metrics := logic.NewMetricsService(metricsStore)
	prediction := logic.NewPredictionService(matchStore, metrics, analysisStore, cfg.CurrentSeason, logger)

	// Scrapers
	fetcher := scraper.NewHTTPFetcher(cfg.ScrapeTimeout)
	players := scraper.NewPlayerScraper(fetcher, playerStore, scrapeCache, cfg.ScrapeBaseURL, cfg.ScrapeCacheTTL, logger)
	teams := scraper.NewTeamScraper(fetcher, teamStore, scrapeCache, cfg.ScrapeBaseURL, cfg.ScrapeCacheTTL, logger)

	// Background metric warming
	precompute := worker.NewPool(worker.PoolConfig{
		WorkerCount: cfg.PrecomputeWorkers,
		QueueSize:   cfg.PrecomputeQueueSize,
		Integration: integration,
		Metrics:     metrics,
		Logger:      logger,
	})
	precompute.Start(ctx)
	defer precompute.Stop()

	h := handlers.New(handlers.Config{
		Postgres:    pool,
		Redis:       redisClient,
		Logger:      logger,
		Season:      cfg.CurrentSeason,
		Integration: integration,
		Metrics:     metrics,
		Prediction:  prediction,
		Players:     players,
		Teams:       teams,
		Precompute:  precompute,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
