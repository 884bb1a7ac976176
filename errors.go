package fsm

import "errors"

var (
	// ErrInvalidState is returned by ChangeState when the target is not in the table.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidEvent is returned by Trigger when the current state has no
	// transition for the event.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrConfiguration is returned when a Config is not internally consistent.
	ErrConfiguration = errors.New("invalid configuration")
)
