package store

import (
	"context"
	"fmt"

	"github.com/futmetrics/stats-api/internal/models"
)

// MatchRecordStore persists normalized match records.
type MatchRecordStore struct {
	pool PgPool
}

func NewMatchRecordStore(pool PgPool) *MatchRecordStore {
	return &MatchRecordStore{pool: pool}
}

func (s *MatchRecordStore) FindByPlayerName(ctx context.Context, playerName string) ([]models.MatchRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, player_name, opponent, match_date, result, position, minutes_played,
		       goals, assists, yellow_cards, red_cards, shots, pass_accuracy,
		       aerial_duels_won, rating, league, season
		FROM match_records
		WHERE player_name = $1
		ORDER BY match_date
	`, playerName)
	if err != nil {
		return nil, fmt.Errorf("query match records: %w", err)
	}
	defer rows.Close()

	records := []models.MatchRecord{}
	for rows.Next() {
		var m models.MatchRecord
		if err := rows.Scan(&m.ID, &m.PlayerName, &m.Opponent, &m.MatchDate, &m.Result,
			&m.Position, &m.MinutesPlayed, &m.Goals, &m.Assists, &m.YellowCards,
			&m.RedCards, &m.Shots, &m.PassAccuracy, &m.AerialDuelsWon, &m.Rating,
			&m.League, &m.Season); err != nil {
			return nil, fmt.Errorf("scan match record: %w", err)
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

func (s *MatchRecordStore) SaveAll(ctx context.Context, records []models.MatchRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save match records: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, m := range records {
		if _, err := tx.Exec(ctx, `
			INSERT INTO match_records (id, player_name, opponent, match_date, result, position,
				minutes_played, goals, assists, yellow_cards, red_cards, shots,
				pass_accuracy, aerial_duels_won, rating, league, season)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		`, m.ID, m.PlayerName, m.Opponent, m.MatchDate, m.Result, m.Position,
			m.MinutesPlayed, m.Goals, m.Assists, m.YellowCards, m.RedCards, m.Shots,
			m.PassAccuracy, m.AerialDuelsWon, m.Rating, m.League, m.Season); err != nil {
			return fmt.Errorf("insert match record: %w", err)
		}
	}
	return tx.Commit(ctx)
}
