package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Stores
	PostgresURL string
	RedisURL    string

	// Scraping
	ScrapeBaseURL  string
	ScrapeTimeout  time.Duration
	ScrapeCacheTTL time.Duration

	// CurrentSeason selects the slice of history the predictor uses,
	// e.g. "2024-2025".
	CurrentSeason string

	// Background metric precompute pool
	PrecomputeWorkers   int
	PrecomputeQueueSize int
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		ScrapeBaseURL:  getEnv("SCRAPE_BASE_URL", "https://es.whoscored.com/"),
		ScrapeTimeout:  getEnvDuration("SCRAPE_TIMEOUT", 30*time.Second),
		ScrapeCacheTTL: getEnvDuration("SCRAPE_CACHE_TTL", 6*time.Hour),

		CurrentSeason: getEnv("CURRENT_SEASON", "2024-2025"),

		PrecomputeWorkers:   getEnvInt("PRECOMPUTE_WORKERS", 2),
		PrecomputeQueueSize: getEnvInt("PRECOMPUTE_QUEUE_SIZE", 64),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
		return nil, err
	}
	if cfg.RedisURL, err = getEnvRequired("REDIS_URL"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
