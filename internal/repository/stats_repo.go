package repository

import (
	"database/sql"
	"fmt"

	"zodis/internal/database"
	"zodis/internal/models"
)

// StatsRepository handles per-user statistics aggregates
type StatsRepository struct {
	db *database.DB
}

// NewStatsRepository creates a new statistics repository
func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetByUserID retrieves a user's statistics row. Returns nil when the user
// has no completed games yet.
func (r *StatsRepository) GetByUserID(userID int64) (*models.Statistics, error) {
	query := `
		SELECT user_id, games_played, games_won, current_streak, max_streak, average_guesses
		FROM game_statistics
		WHERE user_id = ?
	`
	stats := &models.Statistics{}
	err := r.db.QueryRow(query, userID).Scan(
		&stats.UserID,
		&stats.GamesPlayed,
		&stats.GamesWon,
		&stats.CurrentStreak,
		&stats.MaxStreak,
		&stats.AverageGuesses,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	return stats, nil
}

// RecordOutcome folds one completed game into a user's aggregates inside a
// transaction. The row is created lazily on the first recorded game; the
// read locks the row on databases that support it.
func (r *StatsRepository) RecordOutcome(userID int64, won bool, guessCount int) (*models.Statistics, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT games_played, games_won, current_streak, max_streak, average_guesses
		FROM game_statistics
		WHERE user_id = ?
	`
	if lock := r.db.Dialect.LockingClause(); lock != "" {
		query += " " + lock
	}

	stats := &models.Statistics{UserID: userID}
	exists := true
	err = tx.QueryRow(query, userID).Scan(
		&stats.GamesPlayed,
		&stats.GamesWon,
		&stats.CurrentStreak,
		&stats.MaxStreak,
		&stats.AverageGuesses,
	)
	if err == sql.ErrNoRows {
		exists = false
	} else if err != nil {
		return nil, fmt.Errorf("failed to read statistics: %w", err)
	}

	stats.RecordOutcome(won, guessCount)

	if exists {
		update := `
			UPDATE game_statistics
			SET games_played = ?, games_won = ?, current_streak = ?, max_streak = ?, average_guesses = ?
			WHERE user_id = ?
		`
		_, err = tx.Exec(update, stats.GamesPlayed, stats.GamesWon, stats.CurrentStreak, stats.MaxStreak, stats.AverageGuesses, userID)
	} else {
		insert := `
			INSERT INTO game_statistics (user_id, games_played, games_won, current_streak, max_streak, average_guesses)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		_, err = tx.Exec(insert, userID, stats.GamesPlayed, stats.GamesWon, stats.CurrentStreak, stats.MaxStreak, stats.AverageGuesses)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write statistics: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit statistics: %w", err)
	}

	return stats, nil
}
