package logic

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/futmetrics/stats-api/internal/models"
)

var normalizeFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "futmetrics_normalize_fallbacks_total",
	Help: "Scraped fields that failed to parse and fell back to their default value",
}, []string{"field"})

const scrapedDateLayout = "02/01/2006"

type integrationService struct {
	players PlayerStore
	matches MatchRecordStore
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// NewIntegrationService builds the normalizer over the scraped-player and
// normalized-record stores.
func NewIntegrationService(players PlayerStore, matches MatchRecordStore, logger *zap.Logger) IntegrationService {
	return &integrationService{
		players: players,
		matches: matches,
		logger:  logger.Sugar(),
		now:     time.Now,
	}
}

// ConvertToMatchRecords resolves a player's scraped history into normalized
// match records. If normalized records already exist for the player they are
// returned unchanged and nothing is written.
func (s *integrationService) ConvertToMatchRecords(ctx context.Context, playerName string) ([]models.MatchRecord, error) {
	players, err := s.players.FindByName(ctx, playerName)
	if err != nil {
		return nil, fmt.Errorf("lookup player %q: %w", playerName, err)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerName)
	}
	player := players[0]

	existing, err := s.matches.FindByPlayerName(ctx, playerName)
	if err != nil {
		return nil, fmt.Errorf("lookup match records for %q: %w", playerName, err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	records := make([]models.MatchRecord, 0, len(player.MatchStats))
	for _, raw := range player.MatchStats {
		records = append(records, s.Normalize(raw, player.Name))
	}

	if err := s.matches.SaveAll(ctx, records); err != nil {
		return nil, fmt.Errorf("save match records for %q: %w", playerName, err)
	}
	s.logger.Infow("Normalized scraped history", "player", player.Name, "records", len(records))
	return records, nil
}

// Normalize converts one scraped row into a typed match record. It is a
// total function: every field that fails to parse takes its documented
// default instead of failing the record.
func (s *integrationService) Normalize(raw models.RawMatchRecord, playerName string) models.MatchRecord {
	date := s.parseDate(raw.Date)
	return models.MatchRecord{
		ID:             uuid.NewString(),
		PlayerName:     playerName,
		Opponent:       raw.Opponent,
		MatchDate:      date,
		Result:         determineResult(raw.Score, raw.Opponent),
		Position:       normalizePosition(raw.Position),
		MinutesPlayed:  parseInt(raw.MinsPlayed),
		Goals:          parseInt(raw.Goals),
		Assists:        parseInt(raw.Assists),
		YellowCards:    parseInt(raw.YellowCards),
		RedCards:       parseInt(raw.RedCards),
		Shots:          parseInt(raw.Shots),
		PassAccuracy:   parseDecimal(raw.PassSuccess),
		AerialDuelsWon: parseInt(raw.AerialsWon),
		Rating:         parseDecimal(raw.Rating),
		League:         "Unknown", // not present in the scraped table
		Season:         seasonFor(date),
	}
}

// parseDate expects dd/mm/yyyy. Any failure falls back to the current
// date, and the season derived from the record tracks that fallback.
func (s *integrationService) parseDate(value string) time.Time {
	d, err := time.Parse(scrapedDateLayout, strings.TrimSpace(value))
	if err != nil {
		normalizeFallbacks.WithLabelValues("date").Inc()
		return s.now()
	}
	return d
}

// parseInt strips the apostrophe the site appends to minutes ("90'").
func parseInt(value string) int {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, "'", ""))
	if cleaned == "" {
		return 0
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		normalizeFallbacks.WithLabelValues("int").Inc()
		return 0
	}
	return n
}

// parseDecimal accepts both comma and dot decimal separators and an
// optional percent sign.
func parseDecimal(value string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(value, "%", ""), ",", "."))
	if cleaned == "" {
		return 0.0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		normalizeFallbacks.WithLabelValues("decimal").Inc()
		return 0.0
	}
	return f
}

// determineResult cannot yet be derived from the scraped scoreline; every
// record is marked as a home appearance. Kept as-is so freshly normalized
// rows stay consistent with what is already persisted.
func determineResult(score, opponent string) string {
	_ = score
	_ = opponent
	return models.ResultHome
}

// normalizePosition maps the site's Spanish position labels onto the
// standard codes. Unknown labels pass through unchanged.
func normalizePosition(position string) string {
	switch {
	case strings.Contains(position, "DL"), strings.Contains(position, "Defensa"):
		return models.PositionDefender
	case strings.Contains(position, "MP"), strings.Contains(position, "Mediocampista"):
		return models.PositionMidfielder
	case strings.Contains(position, "Delantero"), strings.Contains(position, "FW"):
		return models.PositionForward
	default:
		return position
	}
}

// seasonFor derives the European season (August to May) the date falls in.
func seasonFor(date time.Time) string {
	year := date.Year()
	if date.Month() >= time.August {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}
