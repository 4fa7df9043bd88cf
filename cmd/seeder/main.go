// Dev utility: seeds a demo player with scraped-style match rows so the
// analysis endpoints can be exercised without touching the stats site.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/futmetrics/stats-api/internal/models"
	"github.com/futmetrics/stats-api/internal/store"
)

func main() {
	url := os.Getenv("POSTGRES_URL")
	if url == "" {
		log.Fatal("POSTGRES_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()

	if err := store.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	player := &models.Player{
		Name:        "Demo Striker",
		CurrentTeam: "Demo FC",
		ShirtNumber: "9",
		Age:         "27",
		Height:      "183cm",
		Nationality: "España",
		Positions:   "Delantero",
		MatchStats: []models.RawMatchRecord{
			{Opponent: "Rival United", Score: "2:1", Date: "17/08/2024", Position: "Delantero", MinsPlayed: "90'", Goals: "1", Assists: "0", Shots: "3", PassSuccess: "80,0%", AerialsWon: "2", Rating: "7.5"},
			{Opponent: "City Athletic", Score: "0:0", Date: "24/08/2024", Position: "Delantero", MinsPlayed: "90'", Goals: "0", Assists: "1", Shots: "1", PassSuccess: "90,0%", AerialsWon: "1", Rating: "8.5"},
			{Opponent: "Rival United", Score: "3:2", Date: "31/08/2024", Position: "Delantero", MinsPlayed: "90'", Goals: "2", Assists: "1", Shots: "5", PassSuccess: "85,0%", AerialsWon: "4", Rating: "9.5"},
			{Opponent: "Coastal Rovers", Score: "1:1", Date: "14/09/2024", Position: "Delantero", MinsPlayed: "75'", Goals: "0", Assists: "0", Shots: "2", PassSuccess: "82,5%", AerialsWon: "0", Rating: "6.8"},
			// Unused substitute appearance; filtered out of every rate metric.
			{Opponent: "Border Town", Score: "2:0", Date: "21/09/2024", Position: "Delantero", MinsPlayed: "0", Goals: "0", Assists: "0", Shots: "0", PassSuccess: "", AerialsWon: "0", Rating: ""},
		},
	}

	if err := store.NewPlayerStore(pool).Save(ctx, player); err != nil {
		log.Fatalf("seed player: %v", err)
	}

	fmt.Printf("Seeded player %q with %d match rows (id %s)\n", player.Name, len(player.MatchStats), player.ID)
}
