// scrapecheck fetches a player from the stats site and prints what the
// selectors extract, without touching Postgres or Redis. Run it after a
// site markup change to spot selector drift before it reaches production.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/futmetrics/stats-api/internal/models"
	"github.com/futmetrics/stats-api/internal/scraper"
)

type noopRepo struct{}

func (noopRepo) FindByName(ctx context.Context, name string) ([]models.Player, error) {
	return nil, nil
}

func (noopRepo) Save(ctx context.Context, player *models.Player) error {
	return nil
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

func (noopCache) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}

func main() {
	name := flag.String("name", "", "player name to look up")
	base := flag.String("base", "https://es.whoscored.com/", "stats site base URL")
	timeout := flag.Duration("timeout", 30*time.Second, "fetch timeout")
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "usage: scrapecheck -name 'Player Name' [-base URL]")
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	fetcher := scraper.NewHTTPFetcher(*timeout)
	s := scraper.NewPlayerScraper(fetcher, noopRepo{}, noopCache{}, *base, 0, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*(*timeout))
	defer cancel()

	players, err := s.PlayerByName(ctx, *name)
	if err != nil {
		log.Fatalf("scrape: %v", err)
	}

	out, err := json.MarshalIndent(players, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
