package models

import "time"

// Game represents a single guessing session. The target word is fixed at
// creation and never mutates; a game is completed exactly once, when
// EndedAt is set.
type Game struct {
	ID          string
	WordToGuess string
	UserID      *int64
	CreatedAt   time.Time
	EndedAt     *time.Time
}

// IsCompleted reports whether the game has ended
func (g *Game) IsCompleted() bool {
	return g.EndedAt != nil
}

// Guess represents a single recorded attempt within a game. Guesses are
// immutable once created; (GameID, AttemptNumber) pairs are unique.
type Guess struct {
	ID            string
	GameID        string
	GuessedWord   string
	Pattern       string
	AttemptNumber int
	CreatedAt     time.Time
}
