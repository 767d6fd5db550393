package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/bettrack/internal/database"
	"github.com/yourusername/bettrack/internal/models"
)

// PostgresStore implements Store for PostgreSQL
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a new bet store backed by PostgreSQL
func NewPostgresStore(db *database.DB) Store {
	return &PostgresStore{db: db}
}

const betColumns = "id, sport, team, odds, amount, potential_win, result, placed_at"

// Insert persists a new bet
func (s *PostgresStore) Insert(ctx context.Context, bet *models.Bet) error {
	query := `
		INSERT INTO bets (id, sport, team, odds, amount, potential_win, result, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.GetPool().Exec(ctx, query,
		bet.ID, bet.Sport, bet.Team, bet.Odds, bet.Amount, bet.PotentialWin,
		resultToColumn(bet.Result), bet.PlacedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bet: %w", err)
	}

	return nil
}

// GetByID retrieves a bet by ID
func (s *PostgresStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE id = $1`

	bet, err := scanBet(s.db.GetPool().QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bet: %w", err)
	}

	return bet, nil
}

// ListPending retrieves all pending bets, most recently placed first
func (s *PostgresStore) ListPending(ctx context.Context) ([]*models.Bet, error) {
	query := `
		SELECT ` + betColumns + `
		FROM bets
		WHERE result IS NULL
		ORDER BY placed_at DESC, id
	`
	return s.queryBets(ctx, query)
}

// List retrieves a snapshot of all bets
func (s *PostgresStore) List(ctx context.Context) ([]*models.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets ORDER BY placed_at DESC, id`
	return s.queryBets(ctx, query)
}

// ListBySport retrieves a snapshot of all bets for one sport
func (s *PostgresStore) ListBySport(ctx context.Context, sport string) ([]*models.Bet, error) {
	query := `
		SELECT ` + betColumns + `
		FROM bets
		WHERE sport = $1
		ORDER BY placed_at DESC, id
	`
	return s.queryBets(ctx, query, sport)
}

// Update rewrites the editable fields of a bet that is still pending
func (s *PostgresStore) Update(ctx context.Context, bet *models.Bet) error {
	return s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE bets
			SET sport = $2, team = $3, odds = $4, amount = $5, potential_win = $6
			WHERE id = $1 AND result IS NULL
		`

		commandTag, err := tx.Exec(ctx, query,
			bet.ID, bet.Sport, bet.Team, bet.Odds, bet.Amount, bet.PotentialWin,
		)
		if err != nil {
			return fmt.Errorf("failed to update bet: %w", err)
		}

		if commandTag.RowsAffected() == 0 {
			return s.diagnoseMiss(ctx, tx, bet.ID)
		}

		return nil
	})
}

// UpdateResult settles a pending bet as won or lost
func (s *PostgresStore) UpdateResult(ctx context.Context, id uuid.UUID, won bool) error {
	return s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		query := `UPDATE bets SET result = $2 WHERE id = $1 AND result IS NULL`

		commandTag, err := tx.Exec(ctx, query, id, won)
		if err != nil {
			return fmt.Errorf("failed to resolve bet: %w", err)
		}

		if commandTag.RowsAffected() == 0 {
			return s.diagnoseMiss(ctx, tx, id)
		}

		return nil
	})
}

// Delete removes a bet that is still pending
func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		query := `DELETE FROM bets WHERE id = $1 AND result IS NULL`

		commandTag, err := tx.Exec(ctx, query, id)
		if err != nil {
			return fmt.Errorf("failed to delete bet: %w", err)
		}

		if commandTag.RowsAffected() == 0 {
			return s.diagnoseMiss(ctx, tx, id)
		}

		return nil
	})
}

// DistinctSports returns every sport with at least one bet, ordered lexicographically
func (s *PostgresStore) DistinctSports(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT sport FROM bets ORDER BY sport`

	rows, err := s.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sports: %w", err)
	}
	defer rows.Close()

	var sports []string
	for rows.Next() {
		var sport string
		if err := rows.Scan(&sport); err != nil {
			return nil, fmt.Errorf("failed to scan sport: %w", err)
		}
		sports = append(sports, sport)
	}

	return sports, rows.Err()
}

// diagnoseMiss distinguishes a missing bet from an already-settled one after
// a guarded write touched zero rows
func (s *PostgresStore) diagnoseMiss(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	var result *bool
	err := tx.QueryRow(ctx, `SELECT result FROM bets WHERE id = $1`, id).Scan(&result)
	if err == pgx.ErrNoRows {
		return models.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check bet state: %w", err)
	}
	return models.ErrAlreadyResolved
}

func (s *PostgresStore) queryBets(ctx context.Context, query string, args ...interface{}) ([]*models.Bet, error) {
	rows, err := s.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	var bets []*models.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}

	return bets, rows.Err()
}

// scanBet maps one row onto a Bet, converting the nullable result column
// into the three-value enum
func scanBet(row pgx.Row) (*models.Bet, error) {
	bet := &models.Bet{}
	var result *bool
	err := row.Scan(
		&bet.ID, &bet.Sport, &bet.Team, &bet.Odds, &bet.Amount,
		&bet.PotentialWin, &result, &bet.PlacedAt,
	)
	if err != nil {
		return nil, err
	}

	switch {
	case result == nil:
		bet.Result = models.ResultPending
	case *result:
		bet.Result = models.ResultWon
	default:
		bet.Result = models.ResultLost
	}

	return bet, nil
}

// resultToColumn maps the result enum onto the nullable boolean column
func resultToColumn(result models.BetResult) *bool {
	switch result {
	case models.ResultWon:
		won := true
		return &won
	case models.ResultLost:
		won := false
		return &won
	default:
		return nil
	}
}
