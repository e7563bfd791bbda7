package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"zodis/internal/game"
	"zodis/internal/models"
	"zodis/internal/repository"
	"zodis/internal/validation"
	"zodis/internal/words"
)

// GameService handles game session business logic
type GameService struct {
	games      *repository.GameRepository
	source     words.Source
	stats      *StatsService
	wordLength int
}

// NewGameService creates a new game service
func NewGameService(games *repository.GameRepository, source words.Source, stats *StatsService, wordLength int) *GameService {
	return &GameService{
		games:      games,
		source:     source,
		stats:      stats,
		wordLength: wordLength,
	}
}

// CompletionResult summarizes a finished game
type CompletionResult struct {
	GameID     string
	Won        bool
	GuessCount int
}

// Create starts a new game. An empty word means the target is picked from
// the word source; a caller-supplied word is validated and uppercased.
func (s *GameService) Create(word string, userID *int64) (*models.Game, error) {
	if word == "" {
		picked, err := s.source.Pick()
		if err != nil {
			return nil, fmt.Errorf("failed to pick target word: %w", err)
		}
		word = picked
	} else if err := validation.ValidateWord(word, s.wordLength); err != nil {
		return nil, err
	}

	return s.games.CreateGame(word, userID)
}

// SubmitGuess evaluates a guess against a running game and records it.
// attemptNumber 0 takes the next free slot. Returns the recorded guess and
// whether it hit the target exactly.
func (s *GameService) SubmitGuess(gameID, word string, attemptNumber int) (*models.Guess, bool, error) {
	g, err := s.games.GetGameByID(gameID)
	if err != nil {
		return nil, false, err
	}
	if g == nil {
		return nil, false, ErrGameNotFound
	}
	if g.IsCompleted() {
		return nil, false, ErrGameCompleted
	}

	if err := validation.ValidateWord(word, s.wordLength); err != nil {
		return nil, false, err
	}

	pattern := game.Evaluate(word, g.WordToGuess)
	guess, err := s.games.CreateGuess(gameID, word, string(pattern), attemptNumber)
	if err != nil {
		return nil, false, err
	}

	return guess, pattern.AllCorrect(), nil
}

// Complete ends a running game, optionally recording one final guess first.
// The outcome is derived from the recorded guesses: won when any pattern is
// all-correct. For owned games the outcome feeds the owner's statistics;
// a statistics failure is logged and never fails the completion.
func (s *GameService) Complete(gameID, finalGuess string, userID *int64) (*CompletionResult, error) {
	g, err := s.games.GetGameByID(gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	if g.IsCompleted() {
		return nil, ErrGameCompleted
	}

	if finalGuess != "" {
		if _, _, err := s.SubmitGuess(gameID, finalGuess, 0); err != nil {
			return nil, err
		}
	}

	done, err := s.games.CompleteGame(gameID, userID)
	if err != nil {
		return nil, err
	}
	if !done {
		// A concurrent request completed the game between the read and
		// the update
		return nil, ErrGameCompleted
	}

	guesses, err := s.games.GetGuesses(gameID)
	if err != nil {
		return nil, err
	}

	result := &CompletionResult{
		GameID:     gameID,
		GuessCount: len(guesses),
	}
	target := strings.ToUpper(g.WordToGuess)
	for _, guess := range guesses {
		if game.Pattern(guess.Pattern).AllCorrect() || guess.GuessedWord == target {
			result.Won = true
			break
		}
	}

	ownerID := g.UserID
	if ownerID == nil {
		ownerID = userID
	}
	if ownerID != nil {
		guessCount := 0
		if result.Won {
			guessCount = result.GuessCount
		}
		if _, err := s.stats.RecordOutcome(*ownerID, result.Won, guessCount); err != nil {
			log.Warn().Err(err).Str("game_id", gameID).Int64("user_id", *ownerID).
				Msg("failed to record game outcome in statistics")
		}
	}

	return result, nil
}

// Guesses returns the recorded guesses of a game in attempt order
func (s *GameService) Guesses(gameID string) ([]models.Guess, error) {
	g, err := s.games.GetGameByID(gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	return s.games.GetGuesses(gameID)
}
