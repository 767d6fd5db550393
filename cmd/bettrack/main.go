// Package main provides the interactive shell for the bet ledger. Each
// subcommand issues exactly one ledger or statistics operation and renders
// the result; the core packages never touch the terminal.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/bettrack/internal/config"
	"github.com/yourusername/bettrack/internal/database"
	"github.com/yourusername/bettrack/internal/ledger"
	"github.com/yourusername/bettrack/internal/logger"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	appLogger  *logrus.Logger
	cfg        *config.Config
	db         *database.DB
	book       *ledger.Ledger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Help and version output needs no configuration or database
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd == rootCmd {
			return nil
		}
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return setupDependencies(cmd.Context())
	}

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(sportsCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "bettrack",
	Short: "Track personal sports wagers",
	Long:  `Records bets with American odds, resolves them as won or lost, and reports aggregate and per-sport statistics.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bettrack %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	appLogger = logger.NewLogger(cfg.App.LogLevel)

	var err error
	db, err = database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	book = ledger.NewLedger(ledger.NewPostgresStore(db), appLogger)
	return nil
}
