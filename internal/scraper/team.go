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

// TeamRepository is the persistence slice the team scraper needs.
type TeamRepository interface {
	FindByName(ctx context.Context, name string) ([]models.Team, error)
	Save(ctx context.Context, team *models.Team) error
}

// TeamScraper resolves teams store-first, scraping the squad page for
// unknown names.
type TeamScraper struct {
	fetcher  PageFetcher
	teams    TeamRepository
	cache    Cache
	baseURL  string
	cacheTTL time.Duration
	logger   *zap.SugaredLogger
}

func NewTeamScraper(fetcher PageFetcher, teams TeamRepository, cache Cache, baseURL string, cacheTTL time.Duration, logger *zap.Logger) *TeamScraper {
	return &TeamScraper{
		fetcher:  fetcher,
		teams:    teams,
		cache:    cache,
		baseURL:  baseURL,
		cacheTTL: cacheTTL,
		logger:   logger.Sugar(),
	}
}

func (s *TeamScraper) TeamByName(ctx context.Context, name string) ([]models.Team, error) {
	cacheKey := "team:" + strings.ToLower(strings.TrimSpace(name))
	if cached, ok, err := s.cache.Get(ctx, cacheKey); err != nil {
		s.logger.Warnw("Team cache read failed", "name", name, "error", err)
	} else if ok {
		var teams []models.Team
		if err := json.Unmarshal([]byte(cached), &teams); err == nil {
			return teams, nil
		}
	}

	fromDB, err := s.teams.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup team %q: %w", name, err)
	}
	if len(fromDB) > 0 {
		s.logger.Infow("Team found in database, skipping scrape", "name", name, "count", len(fromDB))
		s.cachePut(ctx, cacheKey, fromDB)
		return fromDB, nil
	}

	s.logger.Infow("Team not in database, scraping", "name", name)
	team, err := s.scrapeTeam(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.teams.Save(ctx, team); err != nil {
		return nil, fmt.Errorf("save team %q: %w", team.Name, err)
	}

	result := []models.Team{*team}
	s.cachePut(ctx, cacheKey, result)
	return result, nil
}

func (s *TeamScraper) cachePut(ctx context.Context, key string, teams []models.Team) {
	payload, err := json.Marshal(teams)
	if err != nil {
		return
	}
	if err := s.cache.Put(ctx, key, string(payload), s.cacheTTL); err != nil {
		s.logger.Warnw("Team cache write failed", "key", key, "error", err)
	}
}

func (s *TeamScraper) scrapeTeam(ctx context.Context, name string) (*models.Team, error) {
	searchHTML, err := s.fetcher.Fetch(ctx, searchURL(s.baseURL, name))
	if err != nil {
		return nil, fmt.Errorf("search page: %w", err)
	}
	searchDoc, err := goquery.NewDocumentFromReader(strings.NewReader(searchHTML))
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}

	link, ok := searchDoc.
		Find(`div.search-result:has(h2:contains('Equipos')) tbody tr:nth-child(2) a`).
		First().Attr("href")
	if !ok {
		return nil, fmt.Errorf("%w: %s", logic.ErrTeamNotFound, name)
	}

	teamHTML, err := s.fetcher.Fetch(ctx, pageURL(s.baseURL, link))
	if err != nil {
		return nil, fmt.Errorf("team page: %w", err)
	}
	teamDoc, err := goquery.NewDocumentFromReader(strings.NewReader(teamHTML))
	if err != nil {
		return nil, fmt.Errorf("parse team page: %w", err)
	}

	return &models.Team{
		Name:  strings.TrimSpace(teamDoc.Find("h1.team-header").Text()),
		Squad: extractSquad(teamDoc),
	}, nil
}

func extractSquad(doc *goquery.Document) []models.SquadPlayer {
	squad := []models.SquadPlayer{}
	doc.Find("tbody#player-table-statistics-body tr").Each(func(_ int, row *goquery.Selection) {
		squad = append(squad, models.SquadPlayer{
			Name:              strings.TrimSpace(row.Find("td:nth-child(1) a.player-link span.iconize-icon-left").Text()),
			Age:               strings.TrimSpace(row.Find("td:nth-child(1) span.player-meta-data:nth-of-type(1)").Text()),
			Position:          strings.TrimSpace(strings.ReplaceAll(row.Find("td:nth-child(1) span.player-meta-data:nth-of-type(2)").Text(), ",", "")),
			Height:            row.Find("td:nth-child(3)").Text(),
			Weight:            row.Find("td:nth-child(4)").Text(),
			Apps:              row.Find("td:nth-child(5)").Text(),
			MinsPlayed:        row.Find("td:nth-child(6)").Text(),
			Goals:             row.Find("td:nth-child(7)").Text(),
			Assists:           row.Find("td:nth-child(8)").Text(),
			YellowCards:       row.Find("td:nth-child(9)").Text(),
			RedCards:          row.Find("td:nth-child(10)").Text(),
			ShotsPerGame:      row.Find("td:nth-child(11)").Text(),
			PassSuccess:       row.Find("td:nth-child(12)").Text(),
			AerialsWonPerGame: row.Find("td:nth-child(13)").Text(),
			ManOfTheMatch:     row.Find("td:nth-child(14)").Text(),
			Rating:            row.Find("td:nth-child(15)").Text(),
		})
	})
	return squad
}
