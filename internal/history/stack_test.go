package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPop(t *testing.T) {
	s := NewStack[string]()

	_, ok := s.Pop()
	assert.False(t, ok, "pop on empty stack")

	s.Push("a")
	s.Push("b")
	require.Equal(t, 2, s.Len())

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	assert.Equal(t, 0, s.Len())
}

func TestStack_Peek(t *testing.T) {
	s := NewStack[string]()

	_, ok := s.Peek()
	assert.False(t, ok)
	assert.False(t, s.TopIs(""), "empty stack has no top, not even the zero value")

	s.Push("idle")
	s.Push("running")

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "running", top)
	assert.Equal(t, 2, s.Len(), "peek must not remove")
	assert.True(t, s.TopIs("running"))
	assert.False(t, s.TopIs("idle"))
}

func TestStack_ClearAndItems(t *testing.T) {
	var s Stack[string]
	s.Push("a")
	s.Push("b")
	s.Push("c")

	items := s.Items()
	assert.Equal(t, []string{"a", "b", "c"}, items)

	items[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, s.Items(), "Items returns a copy")

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Items())

	s.Push("d")
	assert.Equal(t, []string{"d"}, s.Items(), "stack is reusable after Clear")
}
