package automaton_test

import (
	"testing"

	. "github.com/enetx/automaton"
	"github.com/enetx/g"
)

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func assertTrue(t *testing.T, cond bool) {
	t.Helper()
	if !cond {
		t.Fatalf("expected true, got false")
	}
}

func assertFalse(t *testing.T, cond bool) {
	t.Helper()
	if cond {
		t.Fatalf("expected false, got true")
	}
}

func assertStates(t *testing.T, got g.Slice[State], want ...State) {
	t.Helper()
	if len(got) != len(want) || !g.SetOf(got...).Eq(g.SetOf(want...)) {
		t.Fatalf("expected states %v, got %v", want, got)
	}
}

// manual drives StepInit/Step by hand until the run is over.
func manual(a Automaton, input g.String) RunStatus {
	status := a.StepInit(input)
	for status == Active {
		status = a.Step()
	}

	return status
}
