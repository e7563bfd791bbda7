package models

// Statistics holds the per-user running aggregates over completed games.
// One row per user, created lazily on the first completed owned game.
type Statistics struct {
	UserID         int64
	GamesPlayed    int
	GamesWon       int
	CurrentStreak  int
	MaxStreak      int
	AverageGuesses float64
}

// RecordOutcome folds one completed game into the aggregates.
// guessCount counts all guesses of a won game; pass 0 when unknown, which
// leaves the running average untouched. Losses reset the current streak
// but never the maximum.
func (s *Statistics) RecordOutcome(won bool, guessCount int) {
	s.GamesPlayed++

	if !won {
		s.CurrentStreak = 0
		return
	}

	s.GamesWon++
	s.CurrentStreak++
	if s.CurrentStreak > s.MaxStreak {
		s.MaxStreak = s.CurrentStreak
	}
	if guessCount > 0 {
		// Running mean over won games, recomputed from the implied total
		// rather than a stored sum
		s.AverageGuesses = (s.AverageGuesses*float64(s.GamesWon-1) + float64(guessCount)) / float64(s.GamesWon)
	}
}

// WinPercentage returns the share of won games in percent
func (s *Statistics) WinPercentage() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.GamesWon) / float64(s.GamesPlayed) * 100
}
