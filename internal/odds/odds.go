// Package odds implements American-odds payout and probability conversions.
package odds

import (
	"fmt"
	"math"

	"github.com/yourusername/bettrack/internal/models"
)

// PotentialWin returns the profit a stake earns if the bet wins.
// Positive odds are the profit per 100 staked; negative odds are the stake
// required per 100 of profit.
func PotentialWin(odds, amount float64) (float64, error) {
	if odds == 0 || math.IsNaN(odds) || math.IsInf(odds, 0) {
		return 0, models.ErrInvalidOdds
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, models.ErrInvalidAmount
	}
	if odds > 0 {
		return (odds / 100) * amount, nil
	}
	return (100 / math.Abs(odds)) * amount, nil
}

// ImpliedProbability converts an American line to its implied win probability.
// Example: -150 -> 0.6, +150 -> 0.4. Returns 0 for invalid odds.
func ImpliedProbability(odds float64) float64 {
	if odds == 0 || math.IsNaN(odds) || math.IsInf(odds, 0) {
		return 0
	}
	if odds > 0 {
		return 100 / (odds + 100)
	}
	return math.Abs(odds) / (math.Abs(odds) + 100)
}

// ToDecimal converts an American line to European decimal odds.
// Example: +150 -> 2.5, -110 -> 1.909...
func ToDecimal(odds float64) (float64, error) {
	if odds == 0 || math.IsNaN(odds) || math.IsInf(odds, 0) {
		return 0, models.ErrInvalidOdds
	}
	if odds > 0 {
		return 1 + odds/100, nil
	}
	return 1 + 100/math.Abs(odds), nil
}

// FormatAmerican renders odds with an explicit sign, e.g. "+150" or "-110".
func FormatAmerican(odds float64) string {
	return fmt.Sprintf("%+g", odds)
}
