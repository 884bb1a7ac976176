package fsm_test

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/comalice/fsm"
)

// genRing creates a machine with n states cycling via "tick" events.
func genRing(b *testing.B, n int) *fsm.StateMachine {
	b.Helper()
	builder := fsm.NewBuilder("s0")
	for i := range n {
		builder.State(fmt.Sprintf("s%d", i)).On("tick", fmt.Sprintf("s%d", (i+1)%n))
	}
	m, err := builder.Build(fsm.WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		b.Fatalf("Failed to create machine: %v", err)
	}
	return m
}

// BenchmarkTrigger measures a single event-driven transition.
func BenchmarkTrigger(b *testing.B) {
	m := genRing(b, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Trigger("tick"); err != nil {
			b.Fatal(err)
		}
		if i%1024 == 0 {
			m.ClearHistory()
		}
	}
}

// BenchmarkUndoRedo measures a transition followed by an undo and a redo.
func BenchmarkUndoRedo(b *testing.B) {
	m := genRing(b, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.ClearHistory()
		m.Reset()
		if err := m.Trigger("tick"); err != nil {
			b.Fatal(err)
		}
		if !m.Undo() || !m.Redo() {
			b.Fatal("undo/redo refused")
		}
	}
}

// BenchmarkStatesFilter measures filtering a wide table by event.
func BenchmarkStatesFilter(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("states=%d", n), func(b *testing.B) {
			m := genRing(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = m.States("tick")
			}
		})
	}
}
