// Package stats derives aggregate betting metrics from ledger snapshots.
//
// Every function recomputes from scratch over the snapshot it is given and
// never mutates it; results are independent of snapshot order. Money totals
// are summed as decimals so that totalWagered = pendingWagers +
// completedWagers holds exactly.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/yourusername/bettrack/internal/models"
)

// Summary holds aggregate metrics over a set of bets
type Summary struct {
	TotalBets       int             `json:"total_bets"`
	CompletedBets   int             `json:"completed_bets"`
	Wins            int             `json:"wins"`
	Losses          int             `json:"losses"`
	WinRate         float64         `json:"win_rate"` // percent, 0 with no completed bets
	TotalWagered    decimal.Decimal `json:"total_wagered"`
	PendingWagers   decimal.Decimal `json:"pending_wagers"`
	CompletedWagers decimal.Decimal `json:"completed_wagers"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	BreakEvenAmount decimal.Decimal `json:"break_even_amount"`
}

// SportSummary is a Summary restricted to one sport label
type SportSummary struct {
	Sport string `json:"sport"`
	Summary
}

// SportPending is one row of the pending-bets-by-sport breakdown
type SportPending struct {
	Sport string `json:"sport"`
	Count int    `json:"count"`
}

// Compute derives aggregate metrics from a snapshot of bets
func Compute(bets []*models.Bet) Summary {
	s := Summary{
		TotalWagered:    decimal.Zero,
		PendingWagers:   decimal.Zero,
		CompletedWagers: decimal.Zero,
		TotalProfit:     decimal.Zero,
		BreakEvenAmount: decimal.Zero,
	}

	for _, bet := range bets {
		s.TotalBets++
		amount := decimal.NewFromFloat(bet.Amount)
		s.TotalWagered = s.TotalWagered.Add(amount)

		switch bet.Result {
		case models.ResultPending:
			s.PendingWagers = s.PendingWagers.Add(amount)
		case models.ResultWon:
			s.CompletedBets++
			s.Wins++
			s.TotalProfit = s.TotalProfit.Add(decimal.NewFromFloat(bet.PotentialWin))
		case models.ResultLost:
			s.CompletedBets++
			s.TotalProfit = s.TotalProfit.Sub(amount)
		}
	}

	s.Losses = s.CompletedBets - s.Wins
	s.CompletedWagers = s.TotalWagered.Sub(s.PendingWagers)

	// 0, not NaN, with no completed bets
	if s.CompletedBets > 0 {
		s.WinRate = float64(s.Wins) / float64(s.CompletedBets) * 100
	}

	if s.TotalProfit.IsNegative() {
		s.BreakEvenAmount = s.TotalProfit.Neg()
	}

	return s
}

// ComputeForSport derives the same metrics restricted to one sport label
func ComputeForSport(sport string, bets []*models.Bet) SportSummary {
	var filtered []*models.Bet
	for _, bet := range bets {
		if bet.Sport == sport {
			filtered = append(filtered, bet)
		}
	}
	return SportSummary{Sport: sport, Summary: Compute(filtered)}
}

// PendingBySport returns pending-bet counts grouped by sport, sorted by
// descending count with sport name as tie-break
func PendingBySport(bets []*models.Bet) []SportPending {
	counts := make(map[string]int)
	for _, bet := range bets {
		if bet.IsPending() {
			counts[bet.Sport]++
		}
	}

	breakdown := make([]SportPending, 0, len(counts))
	for sport, count := range counts {
		breakdown = append(breakdown, SportPending{Sport: sport, Count: count})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Sport < breakdown[j].Sport
	})
	return breakdown
}
