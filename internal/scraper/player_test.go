package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/futmetrics/stats-api/internal/logic"
	"github.com/futmetrics/stats-api/internal/models"
)

const testBaseURL = "https://stats.example"

// stubFetcher serves canned pages and records every URL requested.
type stubFetcher struct {
	pages  map[string]string
	visits []string
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.visits = append(f.visits, url)
	html, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("no fixture for %s", url)
	}
	return html, nil
}

type memPlayerRepo struct {
	players []models.Player
	saved   []*models.Player
	findErr error
}

func (r *memPlayerRepo) FindByName(ctx context.Context, name string) ([]models.Player, error) {
	return r.players, r.findErr
}

func (r *memPlayerRepo) Save(ctx context.Context, player *models.Player) error {
	r.saved = append(r.saved, player)
	return nil
}

type memCache struct {
	data map[string]string
	puts int
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}}
}

func (c *memCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	c.puts++
	c.data[key] = value
	return nil
}

func newPlayerScraperForTest(fetcher *stubFetcher, repo *memPlayerRepo, cache *memCache) *PlayerScraper {
	return NewPlayerScraper(fetcher, repo, cache, testBaseURL, time.Hour, zap.NewNop())
}

func TestSearchURL(t *testing.T) {
	assert.Equal(t, testBaseURL+"/search/?t=Test+Player", searchURL(testBaseURL, "Test Player"))
	assert.Equal(t, testBaseURL+"/search/?t=Messi", searchURL(testBaseURL+"/", "  Messi "))
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, testBaseURL+"/Players/1234/Show/Test-Player", pageURL(testBaseURL, "/Players/1234/Show/Test-Player"))
	assert.Equal(t, testBaseURL+"/Players/1234", pageURL(testBaseURL+"/", "Players/1234"))
}

func TestExtractPlayerBio(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(playerPageHTML))
	require.NoError(t, err)

	player, err := extractPlayerBio(doc)
	require.NoError(t, err)

	assert.Equal(t, "Test Player", player.Name)
	assert.Equal(t, "Test FC", player.CurrentTeam)
	assert.Equal(t, "9", player.ShirtNumber)
	assert.Equal(t, "27", player.Age)
	assert.Equal(t, "182cm", player.Height)
	assert.Equal(t, "España", player.Nationality)
	assert.Equal(t, "Delantero (C)", player.Positions)
}

func TestExtractPlayerBioMissingContainer(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)

	_, err = extractPlayerBio(doc)
	assert.Error(t, err)
}

func TestExtractMatchStats(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(statsPageHTML))
	require.NoError(t, err)

	stats := extractMatchStats(doc)
	require.Len(t, stats, 2)

	first := stats[0]
	assert.Equal(t, "Barcelona", first.Opponent)
	assert.Equal(t, "2-1", first.Score)
	assert.Equal(t, "15/09/2024", first.Date)
	assert.Equal(t, "Delantero", first.Position)
	assert.Equal(t, "90'", first.MinsPlayed)
	assert.Equal(t, "2", first.Goals)
	assert.Equal(t, "1", first.Assists)
	assert.Equal(t, "5", first.Shots)
	assert.Equal(t, "87,5%", first.PassSuccess)
	assert.Equal(t, "3", first.AerialsWon)
	assert.Equal(t, "8.7", first.Rating)

	// Unplayed rows stay raw, empty cells included.
	assert.Equal(t, "Sevilla", stats[1].Opponent)
	assert.Equal(t, "0", stats[1].MinsPlayed)
	assert.Equal(t, "", stats[1].PassSuccess)
}

func TestPlayerByName(t *testing.T) {
	scrapedPages := func() map[string]string {
		return map[string]string{
			testBaseURL + "/search/?t=Test+Player":                    playerSearchHTML,
			testBaseURL + "/Players/1234/Show/Test-Player":            playerPageHTML,
			testBaseURL + "/Players/1234/MatchStatistics/Test-Player": statsPageHTML,
		}
	}

	t.Run("scrapes, persists and caches an unknown player", func(t *testing.T) {
		fetcher := &stubFetcher{pages: scrapedPages()}
		repo := &memPlayerRepo{}
		cache := newMemCache()
		s := newPlayerScraperForTest(fetcher, repo, cache)

		players, err := s.PlayerByName(context.Background(), "Test Player")
		require.NoError(t, err)
		require.Len(t, players, 1)

		assert.Equal(t, "Test Player", players[0].Name)
		assert.Len(t, players[0].MatchStats, 2)
		assert.Len(t, fetcher.visits, 3)
		require.Len(t, repo.saved, 1)
		assert.Equal(t, "Test Player", repo.saved[0].Name)
		assert.Contains(t, cache.data, "player:test player")
	})

	t.Run("store hit skips the site entirely", func(t *testing.T) {
		fetcher := &stubFetcher{pages: map[string]string{}}
		repo := &memPlayerRepo{players: []models.Player{{Name: "Test Player"}}}
		cache := newMemCache()
		s := newPlayerScraperForTest(fetcher, repo, cache)

		players, err := s.PlayerByName(context.Background(), "Test Player")
		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.Empty(t, fetcher.visits)
		assert.Equal(t, 1, cache.puts)
	})

	t.Run("cache hit skips both store and site", func(t *testing.T) {
		fetcher := &stubFetcher{pages: map[string]string{}}
		repo := &memPlayerRepo{findErr: errors.New("store must not be called")}
		cache := newMemCache()
		cache.data["player:test player"] = `[{"name":"Test Player"}]`
		s := newPlayerScraperForTest(fetcher, repo, cache)

		players, err := s.PlayerByName(context.Background(), "Test Player")
		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.Equal(t, "Test Player", players[0].Name)
		assert.Empty(t, fetcher.visits)
	})

	t.Run("no search hit is a not-found", func(t *testing.T) {
		fetcher := &stubFetcher{pages: map[string]string{
			testBaseURL + "/search/?t=Nobody": emptySearchHTML,
		}}
		s := newPlayerScraperForTest(fetcher, &memPlayerRepo{}, newMemCache())

		_, err := s.PlayerByName(context.Background(), "Nobody")
		assert.ErrorIs(t, err, logic.ErrPlayerNotFound)
	})
}
