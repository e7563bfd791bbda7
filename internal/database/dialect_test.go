package database

import (
	"errors"
	"strings"
	"testing"
)

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "no placeholders",
			query: "SELECT 1",
			want:  "SELECT 1",
		},
		{
			name:  "single placeholder",
			query: "SELECT id FROM users WHERE username = ?",
			want:  "SELECT id FROM users WHERE username = $1",
		},
		{
			name:  "multiple placeholders",
			query: "INSERT INTO users (username, password_hash) VALUES (?, ?)",
			want:  "INSERT INTO users (username, password_hash) VALUES ($1, $2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewritePlaceholdersToNumbered(tt.query); got != tt.want {
				t.Errorf("rewritePlaceholdersToNumbered() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSQLiteDialect(t *testing.T) {
	d := NewSQLiteDialect()

	if d.DriverName() != "sqlite3" {
		t.Errorf("DriverName() = %q", d.DriverName())
	}
	if !d.SupportsLastInsertId() {
		t.Error("SQLite should support LastInsertId")
	}
	if d.MigrationsSubdir() != "sqlite" {
		t.Errorf("MigrationsSubdir() = %q", d.MigrationsSubdir())
	}
	if d.LockingClause() != "" {
		t.Errorf("LockingClause() = %q, want empty", d.LockingClause())
	}
	if d.RandomFunc() != "RANDOM()" {
		t.Errorf("RandomFunc() = %q", d.RandomFunc())
	}

	// Queries pass through unchanged
	q := "SELECT id FROM users WHERE username = ?"
	if got := d.RewriteQuery(q); got != q {
		t.Errorf("RewriteQuery() = %q, want unchanged", got)
	}

	dsn := d.DSN(DialectConfig{Path: "test.db"})
	if !strings.HasPrefix(dsn, "test.db") {
		t.Errorf("DSN() = %q", dsn)
	}
}

func TestPostgresDialect(t *testing.T) {
	d := NewPostgresDialect()

	if d.DriverName() != "postgres" {
		t.Errorf("DriverName() = %q", d.DriverName())
	}
	if d.SupportsLastInsertId() {
		t.Error("PostgreSQL should not support LastInsertId")
	}
	if d.MigrationsSubdir() != "postgres" {
		t.Errorf("MigrationsSubdir() = %q", d.MigrationsSubdir())
	}
	if d.LockingClause() != "FOR UPDATE" {
		t.Errorf("LockingClause() = %q", d.LockingClause())
	}

	got := d.RewriteQuery("INSERT INTO users (username, password_hash) VALUES (?, ?)")
	want := "INSERT INTO users (username, password_hash) VALUES ($1, $2)"
	if got != want {
		t.Errorf("RewriteQuery() = %q, want %q", got, want)
	}
}

func TestMySQLDialect(t *testing.T) {
	d := NewMySQLDialect()

	if d.DriverName() != "mysql" {
		t.Errorf("DriverName() = %q", d.DriverName())
	}
	if !d.SupportsLastInsertId() {
		t.Error("MySQL should support LastInsertId")
	}
	if d.MigrationsSubdir() != "mysql" {
		t.Errorf("MigrationsSubdir() = %q", d.MigrationsSubdir())
	}
	if d.RandomFunc() != "RAND()" {
		t.Errorf("RandomFunc() = %q", d.RandomFunc())
	}

	// Queries pass through unchanged
	q := "SELECT id FROM users WHERE username = ?"
	if got := d.RewriteQuery(q); got != q {
		t.Errorf("RewriteQuery() = %q, want unchanged", got)
	}
}

func TestIsUniqueViolationIgnoresOtherErrors(t *testing.T) {
	dialects := []Dialect{NewSQLiteDialect(), NewPostgresDialect(), NewMySQLDialect()}
	for _, d := range dialects {
		if d.IsUniqueViolation(nil) {
			t.Errorf("%s: nil should not be a unique violation", d.DriverName())
		}
		if d.IsUniqueViolation(errors.New("connection reset")) {
			t.Errorf("%s: unrelated error should not be a unique violation", d.DriverName())
		}
	}
}
