package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/comalice/fsm"
)

var errBadStep = errors.New("bad step")

// step is one operation replayed against a machine, written "verb" or "verb=arg".
type step struct {
	verb string
	arg  string
}

func (s step) String() string {
	if s.arg == "" {
		return s.verb
	}
	return s.verb + "=" + s.arg
}

func parseStep(raw string) (step, error) {
	verb, arg, hasArg := strings.Cut(raw, "=")
	switch verb {
	case "trigger", "change":
		if arg == "" {
			return step{}, fmt.Errorf("%w: %q needs an argument (%s=NAME)", errBadStep, raw, verb)
		}
	case "undo", "redo", "reset", "clear", "state":
		if hasArg {
			return step{}, fmt.Errorf("%w: %q takes no argument", errBadStep, raw)
		}
	case "states":
	default:
		return step{}, fmt.Errorf("%w: unknown operation %q", errBadStep, verb)
	}
	return step{verb: verb, arg: arg}, nil
}

func parseSteps(raw []string) ([]step, error) {
	steps := make([]step, 0, len(raw))
	for _, r := range raw {
		s, err := parseStep(r)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// apply runs the step and describes the outcome.
func (s step) apply(m *fsm.StateMachine) (string, error) {
	switch s.verb {
	case "trigger":
		if err := m.Trigger(s.arg); err != nil {
			return "", err
		}
	case "change":
		if err := m.ChangeState(s.arg); err != nil {
			return "", err
		}
	case "undo":
		return fmt.Sprintf("%t -> %s", m.Undo(), m.State()), nil
	case "redo":
		return fmt.Sprintf("%t -> %s", m.Redo(), m.State()), nil
	case "reset":
		m.Reset()
	case "clear":
		m.ClearHistory()
	case "states":
		return strings.Join(m.States(s.arg), " "), nil
	}
	return m.State(), nil
}

// replay applies steps in order, writing one line per step. A failing step is
// reported and skipped, unless strict is set, in which case replay stops
// with its error.
func replay(m *fsm.StateMachine, steps []step, w io.Writer, strict bool) error {
	for _, s := range steps {
		out, err := s.apply(m)
		if err != nil {
			if strict {
				return fmt.Errorf("%s: %w", s, err)
			}
			fmt.Fprintf(w, "%s: error: %v\n", s, err)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", s, out)
	}
	return nil
}
