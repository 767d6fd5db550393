package database

import (
	"context"
	"testing"
	"time"

	"github.com/yourusername/bettrack/internal/config"
)

// SetupTestDB creates a test database connection and verifies it.
// Tests using it are skipped when BETTRACK_DATABASE_HOST is not set.
func SetupTestDB(t *testing.T) *DB {
	cfg, err := config.LoadWithDefaults("")
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}
	if cfg.Database.Host == "" {
		t.Skip("integration test - requires database setup")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Initialize(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to create test database connection: %v", err)
	}

	return db
}

// TeardownTestDB closes the database connection cleanly
func TeardownTestDB(t *testing.T, db *DB) {
	t.Helper()
	db.Close()
}
