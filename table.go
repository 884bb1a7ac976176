package fsm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Transitions maps an event name to the destination state name.
type Transitions map[string]string

// StateConfig holds the outgoing transitions of one state.
type StateConfig struct {
	Transitions Transitions `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// Table is the transition table: an ordered mapping from state name to its
// StateConfig. Iteration follows insertion order, which for decoded documents
// is document order. The zero value is an empty table ready to use.
type Table struct {
	names  []string
	states map[string]StateConfig
}

// NewTable creates an empty Table.
func NewTable() Table {
	return Table{states: make(map[string]StateConfig)}
}

// Add sets the transitions of a state. A new state is appended to the order;
// re-adding an existing state replaces its transitions and keeps its position.
func (t *Table) Add(name string, transitions Transitions) *Table {
	if t.states == nil {
		t.states = make(map[string]StateConfig)
	}
	if _, exists := t.states[name]; !exists {
		t.names = append(t.names, name)
	}
	t.states[name] = StateConfig{Transitions: transitions}
	return t
}

// Has reports whether name is a state of the table.
func (t Table) Has(name string) bool {
	_, ok := t.states[name]
	return ok
}

// Lookup returns the configuration of a state.
func (t Table) Lookup(name string) (StateConfig, bool) {
	sc, ok := t.states[name]
	return sc, ok
}

// Names returns the state names in table order.
func (t Table) Names() []string {
	return slices.Clone(t.names)
}

// Len returns the number of states.
func (t Table) Len() int {
	return len(t.names)
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := Table{
		names:  slices.Clone(t.names),
		states: make(map[string]StateConfig, len(t.states)),
	}
	for name, sc := range t.states {
		out.states[name] = StateConfig{Transitions: maps.Clone(sc.Transitions)}
	}
	return out
}

// UnmarshalYAML decodes a mapping node, keeping the key order of the document.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: states must be a mapping (line %d)", ErrConfiguration, node.Line)
	}
	decoded := NewTable()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("state name (line %d): %w", node.Content[i].Line, err)
		}
		var sc StateConfig
		if err := node.Content[i+1].Decode(&sc); err != nil {
			return fmt.Errorf("state %q: %w", name, err)
		}
		decoded.Add(name, sc.Transitions)
	}
	*t = decoded
	return nil
}

// MarshalYAML encodes the table as a mapping in table order.
func (t Table) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range t.names {
		var value yaml.Node
		if err := value.Encode(t.states[name]); err != nil {
			return nil, fmt.Errorf("state %q: %w", name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&value,
		)
	}
	return node, nil
}

// UnmarshalJSON decodes an object, keeping the key order of the document.
// A repeated key replaces the earlier value in place.
func (t *Table) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: states must be an object", ErrConfiguration)
	}

	decoded := NewTable()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var sc StateConfig
		if err := dec.Decode(&sc); err != nil {
			return fmt.Errorf("state %q: %w", name, err)
		}
		decoded.Add(name, sc.Transitions)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*t = decoded
	return nil
}

// MarshalJSON encodes the table as an object in table order.
func (t Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range t.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(t.states[name])
		if err != nil {
			return nil, fmt.Errorf("state %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
