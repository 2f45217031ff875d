package model

import "errors"

// Common errors used across the application
var (
	// Lookup errors
	ErrPlayerNotFound   = errors.New("player not found")
	ErrPlayerIDMismatch = errors.New("stored player id does not match its key")

	// Roster validation errors
	ErrNilPlayer         = errors.New("nil player")
	ErrEmptyPlayerID     = errors.New("player id is empty")
	ErrEmptyPlayerName   = errors.New("player name is empty")
	ErrInvalidInstrument = errors.New("invalid instrument")
	ErrDuplicatePlayer   = errors.New("duplicate player id")
)
