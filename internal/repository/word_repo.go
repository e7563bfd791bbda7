package repository

import (
	"database/sql"
	"fmt"

	"zodis/internal/database"
	"zodis/internal/models"
	"zodis/internal/words"
)

// WordRepository handles the dictionary_words table and doubles as a word
// source for new games.
type WordRepository struct {
	db *database.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *database.DB) *WordRepository {
	return &WordRepository{db: db}
}

// Pick returns a random active word, satisfying words.Source
func (r *WordRepository) Pick() (string, error) {
	return r.RandomWord(0)
}

// RandomWord returns a random active word. maxComplexity 0 means no bound.
func (r *WordRepository) RandomWord(maxComplexity int) (string, error) {
	query := "SELECT word_text FROM dictionary_words WHERE active = ?"
	args := []interface{}{true}
	if maxComplexity > 0 {
		query += " AND complexity <= ?"
		args = append(args, maxComplexity)
	}
	query += fmt.Sprintf(" ORDER BY %s LIMIT 1", r.db.Dialect.RandomFunc())

	var word string
	err := r.db.QueryRow(query, args...).Scan(&word)
	if err == sql.ErrNoRows {
		return "", words.ErrNoWords
	}
	if err != nil {
		return "", fmt.Errorf("failed to pick word: %w", err)
	}
	return word, nil
}

// GetByText retrieves a dictionary word by its text. Returns nil when the
// word is not in the dictionary.
func (r *WordRepository) GetByText(text string) (*models.DictionaryWord, error) {
	query := `
		SELECT id, word_text, complexity, category, active
		FROM dictionary_words
		WHERE word_text = ?
	`
	word := &models.DictionaryWord{}
	err := r.db.QueryRow(query, text).Scan(
		&word.ID,
		&word.WordText,
		&word.Complexity,
		&word.Category,
		&word.Active,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}

	return word, nil
}

// Count returns the number of dictionary words
func (r *WordRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM dictionary_words").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

// SetActive marks a word as active or inactive
func (r *WordRepository) SetActive(text string, active bool) error {
	query := "UPDATE dictionary_words SET active = ? WHERE word_text = ?"
	_, err := r.db.Exec(query, active, text)
	if err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}
	return nil
}

// Seed populates an empty dictionary from the built-in word list. A
// populated table is left untouched.
func (r *WordRepository) Seed(entries []words.Entry) error {
	count, err := r.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO dictionary_words (word_text, complexity, category, active)
		VALUES (?, ?, ?, ?)
	`
	for _, e := range entries {
		if _, err := tx.Exec(query, e.Text, e.Complexity, e.Category, true); err != nil {
			if r.db.Dialect.IsUniqueViolation(err) {
				continue
			}
			return fmt.Errorf("failed to seed word %q: %w", e.Text, err)
		}
	}

	return tx.Commit()
}
