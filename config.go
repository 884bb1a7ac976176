package fsm

import (
	"fmt"
	"strings"
)

// Config is the construction input of a StateMachine.
type Config struct {
	Initial string `json:"initial" yaml:"initial"`
	States  Table  `json:"states" yaml:"states"`
}

// Validate checks that the configuration is internally consistent:
//   - the table is non-empty and has no blank state or event names
//   - Initial names a state of the table
//   - every non-empty destination names a state of the table
//
// An empty destination is treated as an undefined transition.
func (c Config) Validate() error {
	if c.States.Len() == 0 {
		return fmt.Errorf("%w: states table is empty", ErrConfiguration)
	}
	if c.Initial == "" {
		return fmt.Errorf("%w: initial state is required", ErrConfiguration)
	}
	if !c.States.Has(c.Initial) {
		return fmt.Errorf("%w: initial state %q not found in states", ErrConfiguration, c.Initial)
	}

	for _, name := range c.States.names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty state name", ErrConfiguration)
		}
		for event, target := range c.States.states[name].Transitions {
			if strings.TrimSpace(event) == "" {
				return fmt.Errorf("%w: empty event name in state %q", ErrConfiguration, name)
			}
			if target != "" && !c.States.Has(target) {
				return fmt.Errorf("%w: transition target %q not found (state %q, event %q)",
					ErrConfiguration, target, name, event)
			}
		}
	}
	return nil
}
