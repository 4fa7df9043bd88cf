package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/futmetrics/stats-api/internal/logic"
	"github.com/futmetrics/stats-api/internal/models"
)

// PlayerRepository is the persistence slice the player scraper needs.
type PlayerRepository interface {
	FindByName(ctx context.Context, name string) ([]models.Player, error)
	Save(ctx context.Context, player *models.Player) error
}

// Cache is an explicit lookup cache the scrapers consult and fill
// themselves; a nil-safe hidden cache layer is deliberately avoided.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string, ttl time.Duration) error
}

// PlayerScraper resolves players store-first, scraping the site only for
// names it has never seen.
type PlayerScraper struct {
	fetcher  PageFetcher
	players  PlayerRepository
	cache    Cache
	baseURL  string
	cacheTTL time.Duration
	logger   *zap.SugaredLogger
}

func NewPlayerScraper(fetcher PageFetcher, players PlayerRepository, cache Cache, baseURL string, cacheTTL time.Duration, logger *zap.Logger) *PlayerScraper {
	return &PlayerScraper{
		fetcher:  fetcher,
		players:  players,
		cache:    cache,
		baseURL:  baseURL,
		cacheTTL: cacheTTL,
		logger:   logger.Sugar(),
	}
}

// PlayerByName returns every known player matching the name, scraping and
// persisting a new aggregate when the store has none.
func (s *PlayerScraper) PlayerByName(ctx context.Context, name string) ([]models.Player, error) {
	cacheKey := "player:" + strings.ToLower(strings.TrimSpace(name))
	if cached, ok, err := s.cache.Get(ctx, cacheKey); err != nil {
		s.logger.Warnw("Player cache read failed", "name", name, "error", err)
	} else if ok {
		var players []models.Player
		if err := json.Unmarshal([]byte(cached), &players); err == nil {
			return players, nil
		}
	}

	fromDB, err := s.players.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup player %q: %w", name, err)
	}
	if len(fromDB) > 0 {
		s.logger.Infow("Player found in database, skipping scrape", "name", name, "count", len(fromDB))
		s.cachePut(ctx, cacheKey, fromDB)
		return fromDB, nil
	}

	s.logger.Infow("Player not in database, scraping", "name", name)
	player, err := s.scrapePlayer(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.players.Save(ctx, player); err != nil {
		return nil, fmt.Errorf("save player %q: %w", player.Name, err)
	}

	result := []models.Player{*player}
	s.cachePut(ctx, cacheKey, result)
	return result, nil
}

func (s *PlayerScraper) cachePut(ctx context.Context, key string, players []models.Player) {
	payload, err := json.Marshal(players)
	if err != nil {
		return
	}
	if err := s.cache.Put(ctx, key, string(payload), s.cacheTTL); err != nil {
		s.logger.Warnw("Player cache write failed", "key", key, "error", err)
	}
}

func (s *PlayerScraper) scrapePlayer(ctx context.Context, name string) (*models.Player, error) {
	searchHTML, err := s.fetcher.Fetch(ctx, searchURL(s.baseURL, name))
	if err != nil {
		return nil, fmt.Errorf("search page: %w", err)
	}
	searchDoc, err := goquery.NewDocumentFromReader(strings.NewReader(searchHTML))
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}

	link, ok := searchDoc.
		Find(`div.search-result:has(h2:contains('Jugadores')) tbody tr:nth-child(2) a`).
		First().Attr("href")
	if !ok {
		return nil, fmt.Errorf("%w: %s", logic.ErrPlayerNotFound, name)
	}

	summaryHTML, err := s.fetcher.Fetch(ctx, pageURL(s.baseURL, link))
	if err != nil {
		return nil, fmt.Errorf("player page: %w", err)
	}
	summaryDoc, err := goquery.NewDocumentFromReader(strings.NewReader(summaryHTML))
	if err != nil {
		return nil, fmt.Errorf("parse player page: %w", err)
	}

	player, err := extractPlayerBio(summaryDoc)
	if err != nil {
		return nil, err
	}

	statsHref, ok := summaryDoc.Find(`a:contains('Estadísticas del Partido')`).First().Attr("href")
	if !ok {
		s.logger.Warnw("Match stats link not found", "player", player.Name)
		return player, nil
	}

	statsHTML, err := s.fetcher.Fetch(ctx, pageURL(s.baseURL, statsHref))
	if err != nil {
		return nil, fmt.Errorf("stats page: %w", err)
	}
	statsDoc, err := goquery.NewDocumentFromReader(strings.NewReader(statsHTML))
	if err != nil {
		return nil, fmt.Errorf("parse stats page: %w", err)
	}
	player.MatchStats = extractMatchStats(statsDoc)

	return player, nil
}

// extractPlayerBio pulls the labelled bio fields off the player summary
// page.
func extractPlayerBio(doc *goquery.Document) (*models.Player, error) {
	container := doc.Find("div.col12-lg-10.col12-m-10.col12-s-9.col12-xs-8").First()
	if container.Length() == 0 {
		return nil, fmt.Errorf("player info container not found")
	}

	player := &models.Player{
		Name:        labelledValue(container, "Nombre"),
		CurrentTeam: labelledValue(container, "Equipo Actual"),
		ShirtNumber: labelledValue(container, "Número de Dorsal"),
		Age:         strings.TrimSpace(strings.SplitN(labelledValue(container, "Edad"), " ", 2)[0]),
		Height:      labelledValue(container, "Altura"),
		Nationality: labelledValue(container, "Nacionalidad"),
		Positions:   extractPositions(container),
	}
	return player, nil
}

func labelledValue(container *goquery.Selection, label string) string {
	sel := container.Find(fmt.Sprintf(`div.col12-lg-6:has(span.info-label:contains('%s:'))`, label)).First()
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(strings.Replace(sel.Text(), label+":", "", 1))
}

func extractPositions(container *goquery.Selection) string {
	parts := []string{}
	container.Find(`div:has(span.info-label:contains('Posiciones:')) > span:not(.info-label) span`).
		Each(func(_ int, sel *goquery.Selection) {
			parts = append(parts, strings.TrimSpace(sel.Text()))
		})
	return strings.Join(parts, " ")
}

// extractMatchStats reads the per-match statistics table row by row.
// Every cell stays raw text; the normalizer owns interpretation.
func extractMatchStats(doc *goquery.Document) []models.RawMatchRecord {
	stats := []models.RawMatchRecord{}
	doc.Find("tbody#player-table-statistics-body tr").Each(func(_ int, row *goquery.Selection) {
		opponent := row.Find("td:nth-child(1) a.player-match-link").Text()
		if idx := strings.IndexByte(opponent, '\n'); idx >= 0 {
			opponent = opponent[:idx]
		}
		stats = append(stats, models.RawMatchRecord{
			Opponent:    strings.TrimSpace(opponent),
			Score:       row.Find("td:nth-child(1) span.scoreline").Text(),
			Date:        row.Find("td:nth-child(3)").Text(),
			Position:    row.Find("td:nth-child(4)").Text(),
			MinsPlayed:  row.Find("td:nth-child(5)").Text(),
			Goals:       row.Find("td:nth-child(6)").Text(),
			Assists:     row.Find("td:nth-child(7)").Text(),
			YellowCards: row.Find("td:nth-child(8)").Text(),
			RedCards:    row.Find("td:nth-child(9)").Text(),
			Shots:       row.Find("td:nth-child(10)").Text(),
			PassSuccess: row.Find("td:nth-child(11)").Text(),
			AerialsWon:  row.Find("td:nth-child(12)").Text(),
			Rating:      row.Find("td:nth-child(13)").Text(),
		})
	})
	return stats
}
