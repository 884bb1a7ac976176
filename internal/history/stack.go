// Package history provides the LIFO stack used for the undo and redo records
// of a state machine.
// Not safe for concurrent use; the owning machine serializes access.
package history

// Stack is a last-in, first-out record of visited values.
// The zero value is an empty stack ready to use.
type Stack[T comparable] struct {
	items []T
}

// NewStack creates an empty Stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push records v as the most recent entry.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the most recent entry.
// Returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return v, true
}

// Peek returns the most recent entry without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// TopIs reports whether the stack is non-empty and its most recent entry equals v.
func (s *Stack[T]) TopIs(v T) bool {
	top, ok := s.Peek()
	return ok && top == v
}

// Len returns the number of entries.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Clear removes every entry.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Items returns a copy of the entries, oldest first.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
