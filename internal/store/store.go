// Package store implements the persistence boundary on PostgreSQL. Each
// store is a thin keyed accessor; the pipeline in internal/logic depends
// only on the narrow interfaces it declares, never on this package's types.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgPool is the slice of pgxpool.Pool the stores use.
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ PgPool = (*pgxpool.Pool)(nil)

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, pool PgPool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			current_team TEXT NOT NULL DEFAULT '',
			shirt_number TEXT NOT NULL DEFAULT '',
			age TEXT NOT NULL DEFAULT '',
			height TEXT NOT NULL DEFAULT '',
			nationality TEXT NOT NULL DEFAULT '',
			positions TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_players_name ON players (lower(name))`,

		`CREATE TABLE IF NOT EXISTS player_match_stats (
			id UUID PRIMARY KEY,
			player_id UUID NOT NULL REFERENCES players(id) ON DELETE CASCADE,
			opponent TEXT NOT NULL DEFAULT '',
			score TEXT NOT NULL DEFAULT '',
			match_date TEXT NOT NULL DEFAULT '',
			position TEXT NOT NULL DEFAULT '',
			mins_played TEXT NOT NULL DEFAULT '',
			goals TEXT NOT NULL DEFAULT '',
			assists TEXT NOT NULL DEFAULT '',
			yellow_cards TEXT NOT NULL DEFAULT '',
			red_cards TEXT NOT NULL DEFAULT '',
			shots TEXT NOT NULL DEFAULT '',
			pass_success TEXT NOT NULL DEFAULT '',
			aerials_won TEXT NOT NULL DEFAULT '',
			rating TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_player_match_stats_player ON player_match_stats (player_id)`,

		`CREATE TABLE IF NOT EXISTS match_records (
			id UUID PRIMARY KEY,
			player_name TEXT NOT NULL,
			opponent TEXT NOT NULL,
			match_date DATE NOT NULL,
			result TEXT NOT NULL,
			position TEXT NOT NULL,
			minutes_played INT NOT NULL,
			goals INT NOT NULL,
			assists INT NOT NULL,
			yellow_cards INT NOT NULL,
			red_cards INT NOT NULL,
			shots INT NOT NULL,
			pass_accuracy DOUBLE PRECISION NOT NULL,
			aerial_duels_won INT NOT NULL,
			rating DOUBLE PRECISION NOT NULL,
			league TEXT NOT NULL,
			season TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_match_records_player ON match_records (player_name)`,

		`CREATE TABLE IF NOT EXISTS performance_metrics (
			id UUID PRIMARY KEY,
			player_name TEXT NOT NULL UNIQUE,
			analysis_date TIMESTAMPTZ NOT NULL,
			goals_per_match DOUBLE PRECISION NOT NULL,
			assists_per_match DOUBLE PRECISION NOT NULL,
			goal_involvement DOUBLE PRECISION NOT NULL,
			shots_per_match DOUBLE PRECISION NOT NULL,
			shot_accuracy DOUBLE PRECISION NOT NULL,
			pass_accuracy DOUBLE PRECISION NOT NULL,
			key_passes_per_match DOUBLE PRECISION NOT NULL,
			aerial_duels_won DOUBLE PRECISION NOT NULL,
			recoveries_per_match DOUBLE PRECISION NOT NULL,
			average_rating DOUBLE PRECISION NOT NULL,
			rating_deviation DOUBLE PRECISION NOT NULL,
			minutes_per_match DOUBLE PRECISION NOT NULL,
			offensive_impact DOUBLE PRECISION NOT NULL,
			performance_trend DOUBLE PRECISION NOT NULL,
			goal_probability DOUBLE PRECISION NOT NULL,
			assist_probability DOUBLE PRECISION NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS predictive_analysis (
			id UUID PRIMARY KEY,
			player_name TEXT NOT NULL,
			analysis_date TIMESTAMPTZ NOT NULL,
			goal_probability DOUBLE PRECISION NOT NULL,
			assist_probability DOUBLE PRECISION NOT NULL,
			high_rating_probability DOUBLE PRECISION NOT NULL,
			full_match_probability DOUBLE PRECISION NOT NULL,
			home_advantage_factor DOUBLE PRECISION NOT NULL,
			opponent_factor DOUBLE PRECISION NOT NULL,
			position_factor DOUBLE PRECISION NOT NULL,
			trend_factor DOUBLE PRECISION NOT NULL,
			predictive_score DOUBLE PRECISION NOT NULL,
			performance_prediction TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictive_analysis_player ON predictive_analysis (player_name)`,

		`CREATE TABLE IF NOT EXISTS teams (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_teams_name ON teams (lower(name))`,

		`CREATE TABLE IF NOT EXISTS team_players (
			team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			age TEXT NOT NULL DEFAULT '',
			position TEXT NOT NULL DEFAULT '',
			height TEXT NOT NULL DEFAULT '',
			weight TEXT NOT NULL DEFAULT '',
			apps TEXT NOT NULL DEFAULT '',
			mins_played TEXT NOT NULL DEFAULT '',
			goals TEXT NOT NULL DEFAULT '',
			assists TEXT NOT NULL DEFAULT '',
			yellow_cards TEXT NOT NULL DEFAULT '',
			red_cards TEXT NOT NULL DEFAULT '',
			shots_per_game TEXT NOT NULL DEFAULT '',
			pass_success TEXT NOT NULL DEFAULT '',
			aerials_won_per_game TEXT NOT NULL DEFAULT '',
			man_of_the_match TEXT NOT NULL DEFAULT '',
			rating TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_team_players_team ON team_players (team_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
