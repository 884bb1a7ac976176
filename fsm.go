// Package fsm implements a minimal finite-state machine over a fixed set of
// named states, with event-driven transitions and a linear undo/redo history.
//
// A StateMachine is not safe for concurrent use. Hosts that share one across
// goroutines must serialize access themselves.
package fsm

import (
	"fmt"
	"log/slog"

	"github.com/comalice/fsm/internal/history"
)

// StateMachine tracks the active state of a transition table.
type StateMachine struct {
	states  Table
	initial string
	current string

	// history holds previously active states, most recent on top.
	history *history.Stack[string]
	// redo holds states left by Undo, most recent on top.
	redo *history.Stack[string]

	invalidateRedo bool
	logger         *slog.Logger
}

// New validates cfg and creates a StateMachine in its initial state.
// The table is copied; later changes to cfg do not affect the machine.
func New(cfg Config, opts ...Option) (*StateMachine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &StateMachine{
		states:  cfg.States.Clone(),
		initial: cfg.Initial,
		current: cfg.Initial,
		history: history.NewStack[string](),
		redo:    history.NewStack[string](),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// State returns the active state.
func (m *StateMachine) State() string {
	return m.current
}

// Initial returns the state the machine started in and returns to on Reset.
func (m *StateMachine) Initial() string {
	return m.initial
}

// ChangeState jumps to target regardless of the transition rules.
// Returns ErrInvalidState, leaving the machine unchanged, if target is not a state of the table.
func (m *StateMachine) ChangeState(target string) error {
	if !m.states.Has(target) {
		m.logger.Debug("State change rejected", "state", m.current, "target", target)
		return fmt.Errorf("%w: %q", ErrInvalidState, target)
	}
	from := m.current
	m.advance(target)
	m.logger.Debug("State changed", "previous", from, "state", m.current)
	return nil
}

// Trigger follows the transition defined for event in the active state.
// Returns ErrInvalidEvent, leaving the machine unchanged, if there is none.
func (m *StateMachine) Trigger(event string) error {
	sc, _ := m.states.Lookup(m.current)
	target := sc.Transitions[event]
	if target == "" {
		m.logger.Debug("Event rejected", "state", m.current, "event", event)
		return fmt.Errorf("%w: %q in state %q", ErrInvalidEvent, event, m.current)
	}
	from := m.current
	m.advance(target)
	m.logger.Debug("Event handled", "event", event, "previous", from, "state", m.current)
	return nil
}

// advance records the active state and moves to target.
func (m *StateMachine) advance(target string) {
	m.history.Push(m.current)
	m.current = target
	if m.invalidateRedo {
		m.redo.Clear()
	}
}

// Reset returns to the initial state and clears the undo history.
// The redo stack is kept unless WithRedoInvalidation is set.
func (m *StateMachine) Reset() {
	m.current = m.initial
	m.history.Clear()
	if m.invalidateRedo {
		m.redo.Clear()
	}
	m.logger.Debug("State machine reset", "state", m.current)
}

// States returns the state names in table order. If an event is given, only
// states with a transition for that event are returned; an empty event name
// selects all states.
func (m *StateMachine) States(event ...string) []string {
	if len(event) == 0 || event[0] == "" {
		return m.states.Names()
	}
	matched := []string{}
	for _, name := range m.states.names {
		if _, ok := m.states.states[name].Transitions[event[0]]; ok {
			matched = append(matched, name)
		}
	}
	return matched
}

// CanUndo reports whether Undo would change state.
func (m *StateMachine) CanUndo() bool {
	return m.history.Len() > 0 && !m.history.TopIs(m.current)
}

// Undo returns to the previously active state and makes the current one
// available to Redo. It reports false, changing nothing, when the history is
// empty or its most recent entry is the active state.
func (m *StateMachine) Undo() bool {
	if !m.CanUndo() {
		return false
	}
	previous, _ := m.history.Pop()
	m.redo.Push(m.current)
	m.current = previous
	m.logger.Debug("Undo", "state", m.current)
	return true
}

// CanRedo reports whether Redo would change state.
func (m *StateMachine) CanRedo() bool {
	return m.redo.Len() > 0 && !m.redo.TopIs(m.current)
}

// Redo moves to the most recently undone state, which also becomes the most
// recent history entry. It reports false, changing nothing, when the redo
// stack is empty or its most recent entry is the active state.
func (m *StateMachine) Redo() bool {
	if !m.CanRedo() {
		return false
	}
	next, _ := m.redo.Pop()
	m.current = next
	m.history.Push(next)
	m.logger.Debug("Redo", "state", m.current)
	return true
}

// ClearHistory empties both the undo history and the redo stack.
func (m *StateMachine) ClearHistory() {
	m.history.Clear()
	m.redo.Clear()
}

// History returns the previously active states, oldest first.
func (m *StateMachine) History() []string {
	return m.history.Items()
}

// RedoStack returns the states available to Redo, the next one last.
func (m *StateMachine) RedoStack() []string {
	return m.redo.Items()
}
