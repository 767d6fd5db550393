package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/yourusername/bettrack/internal/ledger"
	"github.com/yourusername/bettrack/internal/models"
	"github.com/yourusername/bettrack/internal/odds"
	"github.com/yourusername/bettrack/internal/stats"
)

var (
	editSport  string
	editTeam   string
	editOdds   float64
	editAmount float64
	statsSport string
)

func init() {
	editCmd.Flags().StringVar(&editSport, "sport", "", "New sport label")
	editCmd.Flags().StringVar(&editTeam, "team", "", "New team label")
	editCmd.Flags().Float64Var(&editOdds, "odds", 0, "New American odds (+150 or -110 format)")
	editCmd.Flags().Float64Var(&editAmount, "amount", 0, "New stake amount")

	statsCmd.Flags().StringVar(&statsSport, "sport", "", "Restrict statistics to one sport")
}

var addCmd = &cobra.Command{
	Use:   "add <sport> <team> <odds> <amount>",
	Short: "Record a new bet",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		oddsLine, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("odds must be a number in +150 or -110 format: %w", err)
		}
		amount, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("amount must be a positive number: %w", err)
		}

		bet, err := book.Add(cmd.Context(), args[0], args[1], oddsLine, amount)
		if err != nil {
			return err
		}

		fmt.Printf("Bet recorded! Potential win: %s\n", currency(bet.PotentialWin))
		fmt.Printf("ID: %s\n", bet.ID)
		return nil
	},
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List pending bets, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bets, err := book.ListPending(cmd.Context())
		if err != nil {
			return err
		}

		if len(bets) == 0 {
			fmt.Println("No pending bets.")
			return nil
		}

		for _, bet := range bets {
			fmt.Printf("%s  %s - %s (%s @ %s) placed %s\n",
				bet.ID,
				bet.Sport,
				bet.Team,
				currency(bet.Amount),
				odds.FormatAmerican(bet.Odds),
				bet.PlacedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <id> <won|lost>",
	Short: "Settle a pending bet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseBetID(args[0])
		if err != nil {
			return err
		}

		var won bool
		switch args[1] {
		case "won", "win", "w", "y", "yes":
			won = true
		case "lost", "loss", "l", "n", "no":
			won = false
		default:
			return fmt.Errorf("outcome must be 'won' or 'lost', got %q", args[1])
		}

		if err := book.Resolve(cmd.Context(), id, won); err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				return fmt.Errorf("no bet with id %s", id)
			case errors.Is(err, models.ErrAlreadyResolved):
				return fmt.Errorf("bet %s is already settled", id)
			}
			return err
		}

		fmt.Println("Bet updated successfully!")
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a pending bet; omitted flags keep current values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseBetID(args[0])
		if err != nil {
			return err
		}

		params := ledger.EditParams{}
		if cmd.Flags().Changed("sport") {
			params.Sport = &editSport
		}
		if cmd.Flags().Changed("team") {
			params.Team = &editTeam
		}
		if cmd.Flags().Changed("odds") {
			params.Odds = &editOdds
		}
		if cmd.Flags().Changed("amount") {
			params.Amount = &editAmount
		}

		applied, err := book.Edit(cmd.Context(), id, params)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				return fmt.Errorf("no bet with id %s", id)
			case errors.Is(err, models.ErrAlreadyResolved):
				return fmt.Errorf("bet %s is settled and can no longer be edited", id)
			}
			return err
		}
		if applied {
			fmt.Println("Bet updated successfully!")
		}
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a pending bet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseBetID(args[0])
		if err != nil {
			return err
		}

		removed, err := book.Remove(cmd.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				return fmt.Errorf("no bet with id %s", id)
			case errors.Is(err, models.ErrAlreadyResolved):
				return fmt.Errorf("bet %s is settled and cannot be removed", id)
			}
			return err
		}
		if removed {
			fmt.Println("Bet removed.")
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show betting statistics, overall or per sport",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if statsSport != "" {
			bets, err := book.BetsForSport(cmd.Context(), statsSport)
			if err != nil {
				return err
			}
			summary := stats.ComputeForSport(statsSport, bets)
			fmt.Printf("Statistics for %s:\n", summary.Sport)
			printSummary(summary.Summary)
			return nil
		}

		bets, err := book.AllBets(cmd.Context())
		if err != nil {
			return err
		}

		summary := stats.Compute(bets)
		fmt.Println("Betting Statistics:")
		printSummary(summary)

		if breakdown := stats.PendingBySport(bets); len(breakdown) > 0 {
			fmt.Println("\nPending bets by sport:")
			for _, row := range breakdown {
				fmt.Printf("  %s: %d\n", row.Sport, row.Count)
			}
		}
		return nil
	},
}

var sportsCmd = &cobra.Command{
	Use:   "sports",
	Short: "List every sport with at least one bet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sports, err := book.DistinctSports(cmd.Context())
		if err != nil {
			return err
		}
		for _, sport := range sports {
			fmt.Println(sport)
		}
		return nil
	},
}

func printSummary(s stats.Summary) {
	fmt.Printf("Total bets placed: %d\n", s.TotalBets)
	fmt.Printf("Completed bets: %d (%d wins, %d losses)\n", s.CompletedBets, s.Wins, s.Losses)
	fmt.Printf("Win rate: %.1f%%\n", s.WinRate)
	fmt.Println("\nFinancial Summary:")
	fmt.Printf("Total amount wagered: $%s\n", s.TotalWagered.StringFixed(2))
	fmt.Printf("Pending wagers: $%s\n", s.PendingWagers.StringFixed(2))
	fmt.Printf("Completed wagers: $%s\n", s.CompletedWagers.StringFixed(2))
	fmt.Printf("Total profit/loss: $%s\n", s.TotalProfit.StringFixed(2))
	if s.BreakEvenAmount.IsPositive() {
		fmt.Printf("Amount needed to break even: $%s\n", s.BreakEvenAmount.StringFixed(2))
	}
}

func currency(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

func parseBetID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid bet id %q: %w", raw, err)
	}
	return id, nil
}
