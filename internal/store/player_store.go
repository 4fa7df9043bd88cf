package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/futmetrics/stats-api/internal/models"
)

// PlayerStore persists scraped player aggregates. The player row
// exclusively owns its match-stat child rows; Save replaces the whole
// child set in one transaction.
type PlayerStore struct {
	pool PgPool
}

func NewPlayerStore(pool PgPool) *PlayerStore {
	return &PlayerStore{pool: pool}
}

// FindByName matches players by case-insensitive substring and loads
// their raw match rows.
func (s *PlayerStore) FindByName(ctx context.Context, name string) ([]models.Player, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, current_team, shirt_number, age, height, nationality, positions
		FROM players
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
	`, name)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.CurrentTeam, &p.ShirtNumber,
			&p.Age, &p.Height, &p.Nationality, &p.Positions); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}

	for i := range players {
		stats, err := s.matchStats(ctx, players[i].ID)
		if err != nil {
			return nil, err
		}
		players[i].MatchStats = stats
	}
	return players, nil
}

func (s *PlayerStore) matchStats(ctx context.Context, playerID string) ([]models.RawMatchRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT opponent, score, match_date, position, mins_played, goals, assists,
		       yellow_cards, red_cards, shots, pass_success, aerials_won, rating
		FROM player_match_stats
		WHERE player_id = $1
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("query player match stats: %w", err)
	}
	defer rows.Close()

	stats := []models.RawMatchRecord{}
	for rows.Next() {
		var r models.RawMatchRecord
		if err := rows.Scan(&r.Opponent, &r.Score, &r.Date, &r.Position, &r.MinsPlayed,
			&r.Goals, &r.Assists, &r.YellowCards, &r.RedCards, &r.Shots,
			&r.PassSuccess, &r.AerialsWon, &r.Rating); err != nil {
			return nil, fmt.Errorf("scan match stat: %w", err)
		}
		stats = append(stats, r)
	}
	return stats, rows.Err()
}

// Save upserts the player row by name and replaces all of its match-stat
// child rows.
func (s *PlayerStore) Save(ctx context.Context, player *models.Player) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save player: %w", err)
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx, `SELECT id FROM players WHERE lower(name) = lower($1)`, player.Name).Scan(&id)
	switch {
	case err == pgx.ErrNoRows:
		id = uuid.NewString()
		if _, err := tx.Exec(ctx, `
			INSERT INTO players (id, name, current_team, shirt_number, age, height, nationality, positions)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, id, player.Name, player.CurrentTeam, player.ShirtNumber, player.Age,
			player.Height, player.Nationality, player.Positions); err != nil {
			return fmt.Errorf("insert player: %w", err)
		}
	case err != nil:
		return fmt.Errorf("lookup player id: %w", err)
	default:
		if _, err := tx.Exec(ctx, `
			UPDATE players
			SET name = $2, current_team = $3, shirt_number = $4, age = $5,
			    height = $6, nationality = $7, positions = $8
			WHERE id = $1
		`, id, player.Name, player.CurrentTeam, player.ShirtNumber, player.Age,
			player.Height, player.Nationality, player.Positions); err != nil {
			return fmt.Errorf("update player: %w", err)
		}
	}
	player.ID = id

	// Replace the owned child rows wholesale to avoid duplicates.
	if _, err := tx.Exec(ctx, `DELETE FROM player_match_stats WHERE player_id = $1`, id); err != nil {
		return fmt.Errorf("clear match stats: %w", err)
	}
	for _, stat := range player.MatchStats {
		if _, err := tx.Exec(ctx, `
			INSERT INTO player_match_stats (id, player_id, opponent, score, match_date, position,
				mins_played, goals, assists, yellow_cards, red_cards, shots, pass_success, aerials_won, rating)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`, uuid.NewString(), id, stat.Opponent, stat.Score, stat.Date, stat.Position,
			stat.MinsPlayed, stat.Goals, stat.Assists, stat.YellowCards, stat.RedCards,
			stat.Shots, stat.PassSuccess, stat.AerialsWon, stat.Rating); err != nil {
			return fmt.Errorf("insert match stat: %w", err)
		}
	}

	return tx.Commit(ctx)
}
