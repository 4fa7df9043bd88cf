package scraper

import (
	"context"
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

type memTeamRepo struct {
	teams []models.Team
	saved []*models.Team
}

func (r *memTeamRepo) FindByName(ctx context.Context, name string) ([]models.Team, error) {
	return r.teams, nil
}

func (r *memTeamRepo) Save(ctx context.Context, team *models.Team) error {
	r.saved = append(r.saved, team)
	return nil
}

func newTeamScraperForTest(fetcher *stubFetcher, repo *memTeamRepo, cache *memCache) *TeamScraper {
	return NewTeamScraper(fetcher, repo, cache, testBaseURL, time.Hour, zap.NewNop())
}

func TestExtractSquad(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(teamPageHTML))
	require.NoError(t, err)

	squad := extractSquad(doc)
	require.Len(t, squad, 1)

	p := squad[0]
	assert.Equal(t, "Test Player", p.Name)
	assert.Equal(t, "27", p.Age)
	assert.Equal(t, "Delantero", p.Position)
	assert.Equal(t, "182", p.Height)
	assert.Equal(t, "75", p.Weight)
	assert.Equal(t, "30", p.Apps)
	assert.Equal(t, "2700", p.MinsPlayed)
	assert.Equal(t, "12", p.Goals)
	assert.Equal(t, "5", p.Assists)
	assert.Equal(t, "3", p.YellowCards)
	assert.Equal(t, "0", p.RedCards)
	assert.Equal(t, "3.2", p.ShotsPerGame)
	assert.Equal(t, "85%", p.PassSuccess)
	assert.Equal(t, "1.8", p.AerialsWonPerGame)
	assert.Equal(t, "4", p.ManOfTheMatch)
	assert.Equal(t, "7.45", p.Rating)
}

func TestTeamByName(t *testing.T) {
	t.Run("scrapes, persists and caches an unknown team", func(t *testing.T) {
		fetcher := &stubFetcher{pages: map[string]string{
			testBaseURL + "/search/?t=Test+FC":     teamSearchHTML,
			testBaseURL + "/Teams/55/Show/Test-FC": teamPageHTML,
		}}
		repo := &memTeamRepo{}
		cache := newMemCache()
		s := newTeamScraperForTest(fetcher, repo, cache)

		teams, err := s.TeamByName(context.Background(), "Test FC")
		require.NoError(t, err)
		require.Len(t, teams, 1)

		assert.Equal(t, "Test FC", teams[0].Name)
		require.Len(t, teams[0].Squad, 1)
		assert.Equal(t, "Test Player", teams[0].Squad[0].Name)
		require.Len(t, repo.saved, 1)
		assert.Contains(t, cache.data, "team:test fc")
	})

	t.Run("store hit skips the site", func(t *testing.T) {
		fetcher := &stubFetcher{pages: map[string]string{}}
		repo := &memTeamRepo{teams: []models.Team{{Name: "Test FC"}}}
		s := newTeamScraperForTest(fetcher, repo, newMemCache())

		teams, err := s.TeamByName(context.Background(), "Test FC")
		require.NoError(t, err)
		require.Len(t, teams, 1)
		assert.Empty(t, fetcher.visits)
	})

	t.Run("no search hit is a not-found", func(t *testing.T) {
		fetcher := &stubFetcher{pages: map[string]string{
			testBaseURL + "/search/?t=Nadie": emptySearchHTML,
		}}
		s := newTeamScraperForTest(fetcher, &memTeamRepo{}, newMemCache())

		_, err := s.TeamByName(context.Background(), "Nadie")
		assert.ErrorIs(t, err, logic.ErrTeamNotFound)
	})
}
