package repository

import "errors"

var (
	// ErrDuplicateAttempt is returned when a guess reuses an attempt number
	// already recorded for the game
	ErrDuplicateAttempt = errors.New("attempt number already recorded for this game")

	// ErrUsernameTaken is returned when a username is already registered
	ErrUsernameTaken = errors.New("username already taken")

	// ErrPatternInUse is returned when deleting a pattern still referenced
	// by recorded guesses
	ErrPatternInUse = errors.New("pattern is referenced by recorded guesses")
)
