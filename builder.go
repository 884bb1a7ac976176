package fsm

// Builder provides a fluent API for constructing a Config state by state.
type Builder struct {
	initial string
	states  Table
}

// StateBuilder provides fluent methods for configuring a single state.
type StateBuilder struct {
	b    *Builder
	name string
}

// NewBuilder creates a Builder whose machine starts in initial.
// The initial state may be declared later with State.
func NewBuilder(initial string) *Builder {
	return &Builder{
		initial: initial,
		states:  NewTable(),
	}
}

// State declares a state, or retrieves it if already declared.
// Declaration order is the order reported by StateMachine.States.
func (b *Builder) State(name string) *StateBuilder {
	if !b.states.Has(name) {
		b.states.Add(name, nil)
	}
	return &StateBuilder{b: b, name: name}
}

// On adds a transition from this state to target when event is triggered.
// Targets may refer to states declared later; Build checks they exist.
func (sb *StateBuilder) On(event, target string) *StateBuilder {
	sc, _ := sb.b.states.Lookup(sb.name)
	transitions := sc.Transitions
	if transitions == nil {
		transitions = make(Transitions)
	}
	transitions[event] = target
	sb.b.states.Add(sb.name, transitions)
	return sb
}

// State declares or retrieves a sibling state, for chaining.
func (sb *StateBuilder) State(name string) *StateBuilder {
	return sb.b.State(name)
}

// Config returns the configuration assembled so far, without validating it.
func (b *Builder) Config() Config {
	return Config{
		Initial: b.initial,
		States:  b.states.Clone(),
	}
}

// Build validates the configuration and constructs the StateMachine.
func (b *Builder) Build(opts ...Option) (*StateMachine, error) {
	return New(b.Config(), opts...)
}

// Build validates the configuration and constructs the StateMachine, for chaining.
func (sb *StateBuilder) Build(opts ...Option) (*StateMachine, error) {
	return sb.b.Build(opts...)
}
