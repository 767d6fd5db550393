package database

import (
	"context"
	"fmt"

	"github.com/yourusername/bettrack/internal/config"
)

const betsSchema = `
CREATE TABLE IF NOT EXISTS bets (
    id            UUID PRIMARY KEY,
    sport         TEXT NOT NULL,
    team          TEXT NOT NULL,
    odds          DOUBLE PRECISION NOT NULL,
    amount        DOUBLE PRECISION NOT NULL,
    potential_win DOUBLE PRECISION NOT NULL,
    result        BOOLEAN,
    placed_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_bets_pending ON bets (placed_at DESC) WHERE result IS NULL;
CREATE INDEX IF NOT EXISTS idx_bets_sport ON bets (sport);
`

// Initialize creates a database connection pool and ensures the bets table exists
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if _, err := db.pool.Exec(ctx, betsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
