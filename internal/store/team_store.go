package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/futmetrics/stats-api/internal/models"
)

// TeamStore persists scraped team aggregates; the team owns its squad rows
// and Save replaces them wholesale, mirroring PlayerStore.
type TeamStore struct {
	pool PgPool
}

func NewTeamStore(pool PgPool) *TeamStore {
	return &TeamStore{pool: pool}
}

func (s *TeamStore) FindByName(ctx context.Context, name string) ([]models.Team, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name FROM teams
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
	`, name)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	for i := range teams {
		squad, err := s.squad(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Squad = squad
	}
	return teams, nil
}

func (s *TeamStore) squad(ctx context.Context, teamID string) ([]models.SquadPlayer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, age, position, height, weight, apps, mins_played, goals, assists,
		       yellow_cards, red_cards, shots_per_game, pass_success,
		       aerials_won_per_game, man_of_the_match, rating
		FROM team_players
		WHERE team_id = $1
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("query squad: %w", err)
	}
	defer rows.Close()

	squad := []models.SquadPlayer{}
	for rows.Next() {
		var p models.SquadPlayer
		if err := rows.Scan(&p.Name, &p.Age, &p.Position, &p.Height, &p.Weight, &p.Apps,
			&p.MinsPlayed, &p.Goals, &p.Assists, &p.YellowCards, &p.RedCards,
			&p.ShotsPerGame, &p.PassSuccess, &p.AerialsWonPerGame, &p.ManOfTheMatch,
			&p.Rating); err != nil {
			return nil, fmt.Errorf("scan squad player: %w", err)
		}
		squad = append(squad, p)
	}
	return squad, rows.Err()
}

func (s *TeamStore) Save(ctx context.Context, team *models.Team) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save team: %w", err)
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx, `SELECT id FROM teams WHERE lower(name) = lower($1)`, team.Name).Scan(&id)
	switch {
	case err == pgx.ErrNoRows:
		id = uuid.NewString()
		if _, err := tx.Exec(ctx, `INSERT INTO teams (id, name) VALUES ($1, $2)`, id, team.Name); err != nil {
			return fmt.Errorf("insert team: %w", err)
		}
	case err != nil:
		return fmt.Errorf("lookup team id: %w", err)
	}
	team.ID = id

	if _, err := tx.Exec(ctx, `DELETE FROM team_players WHERE team_id = $1`, id); err != nil {
		return fmt.Errorf("clear squad: %w", err)
	}
	for _, p := range team.Squad {
		if _, err := tx.Exec(ctx, `
			INSERT INTO team_players (team_id, name, age, position, height, weight, apps,
				mins_played, goals, assists, yellow_cards, red_cards, shots_per_game,
				pass_success, aerials_won_per_game, man_of_the_match, rating)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		`, id, p.Name, p.Age, p.Position, p.Height, p.Weight, p.Apps,
			p.MinsPlayed, p.Goals, p.Assists, p.YellowCards, p.RedCards, p.ShotsPerGame,
			p.PassSuccess, p.AerialsWonPerGame, p.ManOfTheMatch, p.Rating); err != nil {
			return fmt.Errorf("insert squad player: %w", err)
		}
	}
	return tx.Commit(ctx)
}
