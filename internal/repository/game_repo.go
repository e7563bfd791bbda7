package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"zodis/internal/database"
	"zodis/internal/models"
)

// GameRepository handles database operations for game sessions and guesses
type GameRepository struct {
	db *database.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{db: db}
}

// CreateGame inserts a new game session with a fresh UUID.
// The target word is stored uppercase and never changes afterwards.
func (r *GameRepository) CreateGame(word string, userID *int64) (*models.Game, error) {
	game := &models.Game{
		ID:          uuid.NewString(),
		WordToGuess: strings.ToUpper(word),
		UserID:      userID,
		CreatedAt:   time.Now(),
	}

	query := `
		INSERT INTO game_sessions (id, word_to_guess, user_id, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, game.ID, game.WordToGuess, game.UserID, game.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

// GetGameByID retrieves a game session by ID. Returns nil when no game exists.
func (r *GameRepository) GetGameByID(id string) (*models.Game, error) {
	query := `
		SELECT id, word_to_guess, user_id, created_at, ended_at
		FROM game_sessions
		WHERE id = ?
	`
	game := &models.Game{}
	var userID sql.NullInt64
	var endedAt sql.NullTime

	err := r.db.QueryRow(query, id).Scan(
		&game.ID,
		&game.WordToGuess,
		&userID,
		&game.CreatedAt,
		&endedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if userID.Valid {
		game.UserID = &userID.Int64
	}
	if endedAt.Valid {
		game.EndedAt = &endedAt.Time
	}

	return game, nil
}

// CreateGuess records an attempt for a game. attemptNumber 0 allocates the
// next free number. The (game_id, attempt_number) unique constraint is the
// backstop against concurrent writers; violations map to ErrDuplicateAttempt.
func (r *GameRepository) CreateGuess(gameID, guessedWord, pattern string, attemptNumber int) (*models.Guess, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	patternID, err := getOrCreatePattern(tx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pattern: %w", err)
	}

	if attemptNumber <= 0 {
		var maxAttempt sql.NullInt64
		err := tx.QueryRow(
			"SELECT MAX(attempt_number) FROM game_guesses WHERE game_id = ?",
			gameID,
		).Scan(&maxAttempt)
		if err != nil {
			return nil, fmt.Errorf("failed to read attempt count: %w", err)
		}
		attemptNumber = int(maxAttempt.Int64) + 1
	}

	guess := &models.Guess{
		ID:            uuid.NewString(),
		GameID:        gameID,
		GuessedWord:   strings.ToUpper(guessedWord),
		Pattern:       pattern,
		AttemptNumber: attemptNumber,
		CreatedAt:     time.Now(),
	}

	query := `
		INSERT INTO game_guesses (id, game_id, guessed_word, pattern_id, attempt_number, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = tx.Exec(query, guess.ID, guess.GameID, guess.GuessedWord, patternID, guess.AttemptNumber, guess.CreatedAt)
	if err != nil {
		if r.db.Dialect.IsUniqueViolation(err) {
			return nil, ErrDuplicateAttempt
		}
		return nil, fmt.Errorf("failed to create guess: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit guess: %w", err)
	}

	return guess, nil
}

// GetGuesses retrieves all guesses for a game in attempt order
func (r *GameRepository) GetGuesses(gameID string) ([]models.Guess, error) {
	query := `
		SELECT g.id, g.game_id, g.guessed_word, p.pattern, g.attempt_number, g.created_at
		FROM game_guesses g
		JOIN guess_patterns p ON p.id = g.pattern_id
		WHERE g.game_id = ?
		ORDER BY g.attempt_number ASC
	`
	rows, err := r.db.Query(query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guesses: %w", err)
	}
	defer rows.Close()

	var guesses []models.Guess
	for rows.Next() {
		var guess models.Guess
		if err := rows.Scan(
			&guess.ID,
			&guess.GameID,
			&guess.GuessedWord,
			&guess.Pattern,
			&guess.AttemptNumber,
			&guess.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan guess: %w", err)
		}
		guesses = append(guesses, guess)
	}

	return guesses, rows.Err()
}

// CompleteGame sets ended_at for a still-running game and, when the game has
// no owner yet, binds it to userID. Returns false when the game was already
// completed; the single UPDATE makes the transition happen at most once.
func (r *GameRepository) CompleteGame(gameID string, userID *int64) (bool, error) {
	query := `
		UPDATE game_sessions
		SET ended_at = ?, user_id = COALESCE(user_id, ?)
		WHERE id = ? AND ended_at IS NULL
	`
	result, err := r.db.Exec(query, time.Now(), userID, gameID)
	if err != nil {
		return false, fmt.Errorf("failed to complete game: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read completion result: %w", err)
	}
	return rows > 0, nil
}

// DeleteGame removes a game session; its guesses cascade
func (r *GameRepository) DeleteGame(id string) error {
	query := "DELETE FROM game_sessions WHERE id = ?"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
