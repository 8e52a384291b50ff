package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lukejerome/viligant-tracker-dk/internal/db"
)

func TestApplyMigrationsIdempotentAndSeedsSession(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "viligant.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 2 {
		t.Fatalf("expected 2 migration versions, got %d", migrationCount)
	}

	for _, table := range []string{"users", "active_session", "user_store"} {
		var count int
		if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count); err != nil {
			t.Fatalf("check %s table: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected %s table to exist", table)
		}
	}

	// The single anonymous session row is seeded exactly once.
	var sessionRows int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM active_session`).Scan(&sessionRows); err != nil {
		t.Fatalf("count session rows: %v", err)
	}
	if sessionRows != 1 {
		t.Fatalf("expected 1 session row, got %d", sessionRows)
	}
	var userID any
	if err := sqldb.QueryRow(`SELECT user_id FROM active_session WHERE id = 1`).Scan(&userID); err != nil {
		t.Fatalf("read session row: %v", err)
	}
	if userID != nil {
		t.Fatalf("seeded session should be anonymous, got %v", userID)
	}

	// The session table cannot grow a second row.
	if _, err := sqldb.Exec(`INSERT INTO active_session(id, user_id) VALUES(2, NULL)`); err == nil {
		t.Fatal("expected CHECK constraint to reject a second session row")
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected db file to exist: %v", err)
	}
}
