package domain

import "errors"

var (
	// ErrEndBeforeStart indicates a session end time earlier than its start.
	ErrEndBeforeStart = errors.New("end time must not be before start time")

	// ErrInvalidWorkDays indicates a work day list with values outside 1..7.
	ErrInvalidWorkDays = errors.New("work days must be numbers between 1 (Monday) and 7 (Sunday)")

	// ErrUnknownRegion indicates a region code that is not a known state.
	ErrUnknownRegion = errors.New("unknown region code")

	// ErrInvalidSettings indicates settings that fail validation.
	ErrInvalidSettings = errors.New("invalid work settings")
)
