package database

import (
	"context"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

// seedRound creates a round with one daily goal and returns both IDs.
func seedRound(t *testing.T, ctx context.Context, db *Database) (int64, int64) {
	t.Helper()
	roundID, err := db.CreateRound(ctx, "January", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("CreateRound failed: %v", err)
	}
	goalID, err := db.AddGoal(ctx, roundID, "meditate", mustFrequency(t, "daily"), 600)
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}
	return roundID, goalID
}
