package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"zodis/internal/database"
)

// BackupData is the complete database backup structure
type BackupData struct {
	Version      string                 `json:"version"`
	ExportedAt   time.Time              `json:"exported_at"`
	DatabaseType string                 `json:"database_type"`
	Users        []UserBackup           `json:"users"`
	Patterns     []PatternBackup        `json:"patterns"`
	Games        []GameBackup           `json:"games"`
	Guesses      []GuessBackup          `json:"guesses"`
	Statistics   []StatisticsBackup     `json:"statistics"`
	Words        []DictionaryWordBackup `json:"dictionary_words"`
}

type UserBackup struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type PatternBackup struct {
	ID      int64  `json:"id"`
	Pattern string `json:"pattern"`
}

type GameBackup struct {
	ID          string     `json:"id"`
	WordToGuess string     `json:"word_to_guess"`
	UserID      *int64     `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	EndedAt     *time.Time `json:"ended_at"`
}

type GuessBackup struct {
	ID            string    `json:"id"`
	GameID        string    `json:"game_id"`
	GuessedWord   string    `json:"guessed_word"`
	PatternID     int64     `json:"pattern_id"`
	AttemptNumber int       `json:"attempt_number"`
	CreatedAt     time.Time `json:"created_at"`
}

type StatisticsBackup struct {
	UserID         int64   `json:"user_id"`
	GamesPlayed    int     `json:"games_played"`
	GamesWon       int     `json:"games_won"`
	CurrentStreak  int     `json:"current_streak"`
	MaxStreak      int     `json:"max_streak"`
	AverageGuesses float64 `json:"average_guesses"`
}

type DictionaryWordBackup struct {
	WordText   string `json:"word_text"`
	Complexity int    `json:"complexity"`
	Category   string `json:"category"`
	Active     bool   `json:"active"`
}

// BackupService handles database backup and restore
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes the entire database to a JSON file
func (s *BackupService) Export(outputPath string) error {
	data := &BackupData{
		Version:      "1",
		ExportedAt:   time.Now(),
		DatabaseType: s.db.Dialect.DriverName(),
	}

	var err error
	if data.Users, err = s.exportUsers(); err != nil {
		return err
	}
	if data.Patterns, err = s.exportPatterns(); err != nil {
		return err
	}
	if data.Games, err = s.exportGames(); err != nil {
		return err
	}
	if data.Guesses, err = s.exportGuesses(); err != nil {
		return err
	}
	if data.Statistics, err = s.exportStatistics(); err != nil {
		return err
	}
	if data.Words, err = s.exportWords(); err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Info().
		Int("users", len(data.Users)).
		Int("games", len(data.Games)).
		Int("guesses", len(data.Guesses)).
		Msg("backup exported")
	return nil
}

// Import merges a JSON backup into the database. Rows that collide with
// existing unique keys are skipped, so importing the same file twice is safe.
func (s *BackupService) Import(inputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	data := &BackupData{}
	if err := json.NewDecoder(f).Decode(data); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	// Parents before children: users and patterns first, then games,
	// guesses and the per-user tables
	for _, u := range data.Users {
		err := s.insertSkippingDuplicates(
			"INSERT INTO users (id, username, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
			u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import user %q: %w", u.Username, err)
		}
	}
	for _, p := range data.Patterns {
		err := s.insertSkippingDuplicates(
			"INSERT INTO guess_patterns (id, pattern) VALUES (?, ?)",
			p.ID, p.Pattern,
		)
		if err != nil {
			return fmt.Errorf("failed to import pattern %q: %w", p.Pattern, err)
		}
	}
	for _, g := range data.Games {
		err := s.insertSkippingDuplicates(
			"INSERT INTO game_sessions (id, word_to_guess, user_id, created_at, ended_at) VALUES (?, ?, ?, ?, ?)",
			g.ID, g.WordToGuess, g.UserID, g.CreatedAt, g.EndedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import game %s: %w", g.ID, err)
		}
	}
	for _, g := range data.Guesses {
		err := s.insertSkippingDuplicates(
			"INSERT INTO game_guesses (id, game_id, guessed_word, pattern_id, attempt_number, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			g.ID, g.GameID, g.GuessedWord, g.PatternID, g.AttemptNumber, g.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import guess %s: %w", g.ID, err)
		}
	}
	for _, st := range data.Statistics {
		err := s.insertSkippingDuplicates(
			"INSERT INTO game_statistics (user_id, games_played, games_won, current_streak, max_streak, average_guesses) VALUES (?, ?, ?, ?, ?, ?)",
			st.UserID, st.GamesPlayed, st.GamesWon, st.CurrentStreak, st.MaxStreak, st.AverageGuesses,
		)
		if err != nil {
			return fmt.Errorf("failed to import statistics for user %d: %w", st.UserID, err)
		}
	}
	for _, w := range data.Words {
		err := s.insertSkippingDuplicates(
			"INSERT INTO dictionary_words (word_text, complexity, category, active) VALUES (?, ?, ?, ?)",
			w.WordText, w.Complexity, w.Category, w.Active,
		)
		if err != nil {
			return fmt.Errorf("failed to import word %q: %w", w.WordText, err)
		}
	}

	log.Info().
		Int("users", len(data.Users)).
		Int("games", len(data.Games)).
		Int("guesses", len(data.Guesses)).
		Msg("backup imported")
	return nil
}

func (s *BackupService) insertSkippingDuplicates(query string, args ...interface{}) error {
	_, err := s.db.Exec(query, args...)
	if err != nil && s.db.Dialect.IsUniqueViolation(err) {
		return nil
	}
	return err
}

func (s *BackupService) exportUsers() ([]UserBackup, error) {
	rows, err := s.db.Query("SELECT id, username, COALESCE(email, ''), password_hash, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to export users: %w", err)
	}
	defer rows.Close()

	var users []UserBackup
	for rows.Next() {
		var u UserBackup
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *BackupService) exportPatterns() ([]PatternBackup, error) {
	rows, err := s.db.Query("SELECT id, pattern FROM guess_patterns ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to export patterns: %w", err)
	}
	defer rows.Close()

	var patterns []PatternBackup
	for rows.Next() {
		var p PatternBackup
		if err := rows.Scan(&p.ID, &p.Pattern); err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

func (s *BackupService) exportGames() ([]GameBackup, error) {
	rows, err := s.db.Query("SELECT id, word_to_guess, user_id, created_at, ended_at FROM game_sessions ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to export games: %w", err)
	}
	defer rows.Close()

	var games []GameBackup
	for rows.Next() {
		var g GameBackup
		var userID sql.NullInt64
		var endedAt sql.NullTime
		if err := rows.Scan(&g.ID, &g.WordToGuess, &userID, &g.CreatedAt, &endedAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			g.UserID = &userID.Int64
		}
		if endedAt.Valid {
			g.EndedAt = &endedAt.Time
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (s *BackupService) exportGuesses() ([]GuessBackup, error) {
	rows, err := s.db.Query("SELECT id, game_id, guessed_word, pattern_id, attempt_number, created_at FROM game_guesses ORDER BY game_id, attempt_number")
	if err != nil {
		return nil, fmt.Errorf("failed to export guesses: %w", err)
	}
	defer rows.Close()

	var guesses []GuessBackup
	for rows.Next() {
		var g GuessBackup
		if err := rows.Scan(&g.ID, &g.GameID, &g.GuessedWord, &g.PatternID, &g.AttemptNumber, &g.CreatedAt); err != nil {
			return nil, err
		}
		guesses = append(guesses, g)
	}
	return guesses, rows.Err()
}

func (s *BackupService) exportStatistics() ([]StatisticsBackup, error) {
	rows, err := s.db.Query("SELECT user_id, games_played, games_won, current_streak, max_streak, average_guesses FROM game_statistics ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("failed to export statistics: %w", err)
	}
	defer rows.Close()

	var stats []StatisticsBackup
	for rows.Next() {
		var st StatisticsBackup
		if err := rows.Scan(&st.UserID, &st.GamesPlayed, &st.GamesWon, &st.CurrentStreak, &st.MaxStreak, &st.AverageGuesses); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (s *BackupService) exportWords() ([]DictionaryWordBackup, error) {
	rows, err := s.db.Query("SELECT word_text, complexity, category, active FROM dictionary_words ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to export words: %w", err)
	}
	defer rows.Close()

	var list []DictionaryWordBackup
	for rows.Next() {
		var w DictionaryWordBackup
		if err := rows.Scan(&w.WordText, &w.Complexity, &w.Category, &w.Active); err != nil {
			return nil, err
		}
		list = append(list, w)
	}
	return list, rows.Err()
}
