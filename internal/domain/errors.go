package domain

import "errors"

var (
	// ErrRoundExpired is returned when an outcome is recorded against a
	// channel that has no active round anymore.
	ErrRoundExpired = errors.New("round expired")

	// ErrDuplicateRound is returned when a round is created for a
	// channel that already has an active round dated today.
	ErrDuplicateRound = errors.New("round already created today")
)
