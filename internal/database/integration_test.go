package database

import (
	"os"
	"testing"
)

func newTestDB(t *testing.T, path string) *DB {
	t.Helper()
	db, err := Initialize(path)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(path)
	})
	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// TestMigrations verifies that the embedded migrations create the schema
func TestMigrations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t, "test_migrations.db")

	tables := []string{"users", "game_sessions", "game_guesses", "guess_patterns", "game_statistics", "dictionary_words"}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// Running migrations twice is a no-op
	if err := db.RunMigrations(); err != nil {
		t.Errorf("Second migration run failed: %v", err)
	}
}

// TestExecReturningID verifies ID return through the dialect layer
func TestExecReturningID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t, "test_returning.db")

	id, err := db.ExecReturningID(
		"INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)",
		"pirmas", "pirmas@example.com", "hash",
	)
	if err != nil {
		t.Fatalf("ExecReturningID failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	id2, err := db.ExecReturningID(
		"INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)",
		"antras", "antras@example.com", "hash",
	)
	if err != nil {
		t.Fatalf("ExecReturningID failed: %v", err)
	}
	if id2 <= id {
		t.Errorf("Expected increasing IDs, got %d then %d", id, id2)
	}
}

// TestUniqueViolationDetection verifies the dialect's error probe against a
// real constraint
func TestUniqueViolationDetection(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t, "test_unique.db")

	insert := "INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)"
	if _, err := db.Exec(insert, "dublis", "a@example.com", "hash"); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	_, err := db.Exec(insert, "dublis", "b@example.com", "hash")
	if err == nil {
		t.Fatal("Expected unique violation, got nil")
	}
	if !db.Dialect.IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation did not recognize %v", err)
	}
}

// TestTransactionRollback verifies the Tx wrapper
func TestTransactionRollback(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t, "test_tx.db")

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if _, err := tx.Exec("INSERT INTO guess_patterns (pattern) VALUES (?)", "GGGGG"); err != nil {
		t.Fatalf("Insert in transaction failed: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM guess_patterns").Scan(&count); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 patterns after rollback, got %d", count)
	}

	tx2, err := db.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	id, err := tx2.ExecReturningID("INSERT INTO guess_patterns (pattern) VALUES (?)", "NNNNN")
	if err != nil {
		t.Fatalf("ExecReturningID in transaction failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}
	if err := tx2.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM guess_patterns").Scan(&count); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 pattern after commit, got %d", count)
	}
}
