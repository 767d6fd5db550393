package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/bettrack/internal/logger"
	"github.com/yourusername/bettrack/internal/metrics"
	"github.com/yourusername/bettrack/internal/models"
	"github.com/yourusername/bettrack/internal/odds"
)

// Ledger is the application-facing surface of the bet ledger. It validates
// inputs before anything reaches the store, assigns ids and timestamps, and
// derives the locked-in potential win at creation and on pending-bet edits.
type Ledger struct {
	store    Store
	log      *logrus.Logger
	audit    *logger.AuditLogger
	validate *validator.Validate
}

// EditParams carries a partial update for a pending bet.
// Nil fields keep the bet's current value.
type EditParams struct {
	Sport  *string
	Team   *string
	Odds   *float64
	Amount *float64
}

// NewLedger creates a ledger on top of a bet store
func NewLedger(store Store, log *logrus.Logger) *Ledger {
	return &Ledger{
		store:    store,
		log:      log,
		audit:    logger.NewAuditLogger(log),
		validate: validator.New(),
	}
}

// Add validates the inputs, computes the potential win, and persists a new
// pending bet. On failure nothing is stored.
func (l *Ledger) Add(ctx context.Context, sport, team string, oddsLine, amount float64) (*models.Bet, error) {
	defer l.observe("add")()

	sport = strings.TrimSpace(sport)
	team = strings.TrimSpace(team)
	if sport == "" || team == "" {
		return nil, models.ErrInvalidInput
	}

	potentialWin, err := odds.PotentialWin(oddsLine, amount)
	if err != nil {
		return nil, err
	}

	bet := &models.Bet{
		ID:           uuid.New(),
		Sport:        sport,
		Team:         team,
		Odds:         oddsLine,
		Amount:       amount,
		PotentialWin: potentialWin,
		Result:       models.ResultPending,
		PlacedAt:     time.Now().UTC(),
	}

	if err := l.validate.Struct(bet); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	if err := l.store.Insert(ctx, bet); err != nil {
		return nil, l.storageFailure("add", err)
	}

	l.audit.LogBetPlaced(bet.ID.String(), bet.Sport, bet.Team, bet.Odds, bet.Amount, bet.PotentialWin, bet.PlacedAt)
	metrics.RecordBetPlaced()
	return bet, nil
}

// ListPending returns all pending bets, most recently placed first.
// An empty ledger yields an empty slice, not an error.
func (l *Ledger) ListPending(ctx context.Context) ([]*models.Bet, error) {
	defer l.observe("list_pending")()

	bets, err := l.store.ListPending(ctx)
	if err != nil {
		return nil, l.storageFailure("list_pending", err)
	}
	if bets == nil {
		bets = []*models.Bet{}
	}
	return bets, nil
}

// Resolve settles a pending bet as won or lost. Resolving is single-fire:
// a second call fails with ErrAlreadyResolved and changes nothing.
func (l *Ledger) Resolve(ctx context.Context, id uuid.UUID, won bool) error {
	defer l.observe("resolve")()

	if err := l.store.UpdateResult(ctx, id, won); err != nil {
		if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrAlreadyResolved) {
			return err
		}
		return l.storageFailure("resolve", err)
	}

	l.audit.LogBetResolved(id.String(), won)
	metrics.RecordBetResolved()
	return nil
}

// Edit applies a partial update to a pending bet and recomputes its
// potential win from the merged odds and amount. It reports whether the
// edit applied; a missing or already-resolved bet applies nothing.
func (l *Ledger) Edit(ctx context.Context, id uuid.UUID, params EditParams) (bool, error) {
	defer l.observe("edit")()

	current, err := l.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, err
		}
		return false, l.storageFailure("edit", err)
	}
	if !current.IsPending() {
		return false, models.ErrAlreadyResolved
	}

	merged := *current
	if params.Sport != nil {
		merged.Sport = strings.TrimSpace(*params.Sport)
	}
	if params.Team != nil {
		merged.Team = strings.TrimSpace(*params.Team)
	}
	if params.Odds != nil {
		merged.Odds = *params.Odds
	}
	if params.Amount != nil {
		merged.Amount = *params.Amount
	}

	if merged.Sport == "" || merged.Team == "" {
		return false, models.ErrInvalidInput
	}

	potentialWin, err := odds.PotentialWin(merged.Odds, merged.Amount)
	if err != nil {
		return false, err
	}
	merged.PotentialWin = potentialWin

	if err := l.store.Update(ctx, &merged); err != nil {
		if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrAlreadyResolved) {
			return false, err
		}
		return false, l.storageFailure("edit", err)
	}

	l.audit.LogBetEdited(merged.ID.String(), merged.Odds, merged.Amount, merged.PotentialWin)
	metrics.RecordBetEdited()
	return true, nil
}

// Remove deletes a pending bet and reports whether the removal applied.
// Resolved bets are permanent and can never be removed.
func (l *Ledger) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	defer l.observe("remove")()

	if err := l.store.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrAlreadyResolved) {
			return false, err
		}
		return false, l.storageFailure("remove", err)
	}

	l.audit.LogBetRemoved(id.String())
	metrics.RecordBetRemoved()
	return true, nil
}

// DistinctSports returns every sport with at least one bet, ordered lexicographically
func (l *Ledger) DistinctSports(ctx context.Context) ([]string, error) {
	defer l.observe("distinct_sports")()

	sports, err := l.store.DistinctSports(ctx)
	if err != nil {
		return nil, l.storageFailure("distinct_sports", err)
	}
	return sports, nil
}

// AllBets returns a snapshot of every bet for aggregation
func (l *Ledger) AllBets(ctx context.Context) ([]*models.Bet, error) {
	defer l.observe("all_bets")()

	bets, err := l.store.List(ctx)
	if err != nil {
		return nil, l.storageFailure("all_bets", err)
	}
	return bets, nil
}

// BetsForSport returns a snapshot of every bet for one sport label
func (l *Ledger) BetsForSport(ctx context.Context, sport string) ([]*models.Bet, error) {
	defer l.observe("bets_for_sport")()

	bets, err := l.store.ListBySport(ctx, sport)
	if err != nil {
		return nil, l.storageFailure("bets_for_sport", err)
	}
	return bets, nil
}

// storageFailure records and wraps an unexpected store error
func (l *Ledger) storageFailure(op string, err error) error {
	metrics.RecordStorageError()
	l.log.WithError(err).WithField("operation", op).Error("Ledger storage operation failed")
	return fmt.Errorf("ledger %s: %w", op, err)
}

func (l *Ledger) observe(op string) func() {
	start := time.Now()
	return func() {
		metrics.ObserveOperation(op, time.Since(start).Seconds())
	}
}
