package service

import "errors"

var (
	// ErrGameNotFound is returned when no game exists for the given ID
	ErrGameNotFound = errors.New("game not found")

	// ErrGameCompleted is returned when an operation targets an already
	// completed game
	ErrGameCompleted = errors.New("game already completed")

	// ErrInvalidCredentials is returned on bad username or password
	ErrInvalidCredentials = errors.New("invalid username or password")
)
