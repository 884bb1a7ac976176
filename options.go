package fsm

import "log/slog"

// Option applies configuration to a StateMachine via the functional options pattern.
type Option func(*StateMachine)

// WithLogger sets the logger used for transition records. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *StateMachine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithRedoInvalidation makes forward transitions (ChangeState, Trigger) and
// Reset clear the redo stack. Without it the redo stack is only cleared by
// ClearHistory, and Redo may return to a state recorded before a later
// transition or reset.
func WithRedoInvalidation() Option {
	return func(m *StateMachine) {
		m.invalidateRedo = true
	}
}
