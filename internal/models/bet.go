package models

import (
	"time"

	"github.com/google/uuid"
)

// BetResult represents the lifecycle state of a bet
type BetResult string

const (
	ResultPending BetResult = "pending"
	ResultWon     BetResult = "won"
	ResultLost    BetResult = "lost"
)

// Bet represents a single recorded wager
type Bet struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Sport        string    `db:"sport" json:"sport" validate:"required"`
	Team         string    `db:"team" json:"team" validate:"required"`
	Odds         float64   `db:"odds" json:"odds"` // American format, never zero
	Amount       float64   `db:"amount" json:"amount" validate:"required,gt=0"`
	PotentialWin float64   `db:"potential_win" json:"potential_win"`
	Result       BetResult `db:"result" json:"result" validate:"required,oneof=pending won lost"`
	PlacedAt     time.Time `db:"placed_at" json:"placed_at"`
}

// IsPending reports whether the bet is still awaiting an outcome
func (b *Bet) IsPending() bool {
	return b.Result == ResultPending
}

// IsResolved reports whether the bet has a final outcome
func (b *Bet) IsResolved() bool {
	return b.Result == ResultWon || b.Result == ResultLost
}

// Profit returns the realized profit of the bet: the locked-in potential
// win if it won, the lost stake if it lost, zero while pending
func (b *Bet) Profit() float64 {
	switch b.Result {
	case ResultWon:
		return b.PotentialWin
	case ResultLost:
		return -b.Amount
	default:
		return 0
	}
}

// ResultFromWon maps a win/loss outcome onto a BetResult
func ResultFromWon(won bool) BetResult {
	if won {
		return ResultWon
	}
	return ResultLost
}
