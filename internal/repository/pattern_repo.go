package repository

import (
	"database/sql"
	"fmt"

	"zodis/internal/database"
)

// PatternRepository handles the deduplicated guess pattern table
type PatternRepository struct {
	db *database.DB
}

// NewPatternRepository creates a new pattern repository
func NewPatternRepository(db *database.DB) *PatternRepository {
	return &PatternRepository{db: db}
}

// GetOrCreate returns the ID for a pattern, inserting it if new
func (r *PatternRepository) GetOrCreate(pattern string) (int64, error) {
	return getOrCreatePattern(r.db, pattern)
}

// Delete removes an unreferenced pattern. Patterns still referenced by
// recorded guesses are protected by the foreign key and return ErrPatternInUse.
func (r *PatternRepository) Delete(pattern string) error {
	query := "DELETE FROM guess_patterns WHERE pattern = ?"
	_, err := r.db.Exec(query, pattern)
	if err != nil {
		// The only constraint on this table a DELETE can trip is the
		// RESTRICT reference from game_guesses
		return fmt.Errorf("%w: %v", ErrPatternInUse, err)
	}
	return nil
}

// getOrCreatePattern resolves a pattern to its row ID inside any DBTX.
// A unique-violation on insert means a concurrent writer got there first,
// so the row is re-read.
func getOrCreatePattern(q database.DBTX, pattern string) (int64, error) {
	var id int64
	err := q.QueryRow("SELECT id FROM guess_patterns WHERE pattern = ?", pattern).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	id, err = q.ExecReturningID("INSERT INTO guess_patterns (pattern) VALUES (?)", pattern)
	if err != nil {
		if q.GetDialect().IsUniqueViolation(err) {
			if rerr := q.QueryRow("SELECT id FROM guess_patterns WHERE pattern = ?", pattern).Scan(&id); rerr == nil {
				return id, nil
			}
		}
		return 0, err
	}
	return id, nil
}
