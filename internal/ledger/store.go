// Package ledger implements the persistent bet ledger and its operations.
package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/bettrack/internal/models"
)

// Store defines the persistence contract for bet records.
//
// The three mutating operations that require a pending bet (Update,
// UpdateResult, Delete) return models.ErrNotFound when no bet has the id and
// models.ErrAlreadyResolved when the bet exists but is no longer pending.
type Store interface {
	// Insert persists a fully-constructed bet. Either the whole record is
	// stored or an error is returned and nothing is.
	Insert(ctx context.Context, bet *models.Bet) error

	// GetByID retrieves a single bet.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error)

	// ListPending returns pending bets, most recently placed first.
	ListPending(ctx context.Context) ([]*models.Bet, error)

	// List returns a snapshot of every bet.
	List(ctx context.Context) ([]*models.Bet, error)

	// ListBySport returns a snapshot of every bet for one sport label.
	ListBySport(ctx context.Context, sport string) ([]*models.Bet, error)

	// Update rewrites the editable fields of a still-pending bet.
	Update(ctx context.Context, bet *models.Bet) error

	// UpdateResult settles a pending bet as won or lost.
	UpdateResult(ctx context.Context, id uuid.UUID, won bool) error

	// Delete removes a still-pending bet.
	Delete(ctx context.Context, id uuid.UUID) error

	// DistinctSports returns every sport with at least one bet,
	// lexicographically ordered.
	DistinctSports(ctx context.Context) ([]string, error)
}
