package automaton_test

import (
	"testing"

	. "github.com/enetx/automaton"
	"github.com/enetx/g"
)

func scenarioDFA() *DFA {
	return NewDFA().
		Start("start").
		Edge("start", "a", "s1").
		Edge("s1", "a", "s2").
		Edge("s1", "c", "end2").
		Edge("s2", "b", "accept").
		Accepting("accept", "end2")
}

func TestDFA_Scenario(t *testing.T) {
	dfa := scenarioDFA()

	assertTrue(t, dfa.Accepts("aab"))
	assertTrue(t, dfa.Accepts("ac"))
	assertFalse(t, dfa.Accepts(""))
	assertFalse(t, dfa.Accepts("a"))
	assertFalse(t, dfa.Accepts("aa"))
	assertFalse(t, dfa.Accepts("ab"))

	dfa.RemoveTransition("s1", "c")
	assertFalse(t, dfa.HasTransition("s1", "c"))
	assertFalse(t, dfa.Accepts("ac"))

	dfa.SetStartState("s1")
	assertTrue(t, dfa.Accepts("ab"))
	assertFalse(t, dfa.Accepts("aab"))
}

func TestDFA_AcceptsMatchesManualStepping(t *testing.T) {
	dfa := scenarioDFA()

	for _, input := range g.SliceOf[g.String]("", "a", "aa", "aab", "ab", "ac", "aabx", "ca", "acc") {
		assertEqual(t, dfa.Accepts(input), manual(dfa, input) == Accept)
	}
}

func TestDFA_AddTransitionOverwrites(t *testing.T) {
	dfa := NewDFA().Edge("p", "x", "q").Edge("p", "x", "r")

	assertEqual(t, dfa.Transition("p", "x").Some(), State("r"))
	assertTrue(t, dfa.Transition("p", "y").IsNone())
	assertTrue(t, dfa.Transition("missing", "x").IsNone())
}

func TestDFA_MultiCharacterSymbolIsTruncated(t *testing.T) {
	dfa := NewDFA().Edge("p", "xyz", "q")

	assertTrue(t, dfa.HasTransition("p", "x"))
	assertTrue(t, dfa.HasTransition("p", "xq"))
	assertFalse(t, dfa.HasTransition("p", "y"))
}

func TestDFA_RemoveAllTransitions(t *testing.T) {
	dfa := NewDFA().
		Edge("a", "x", "b").
		Edge("b", "y", "a").
		Edge("c", "z", "b").
		Edge("c", "q", "a").
		Edge("b", "w", "c")

	dfa.RemoveAllTransitions("b")

	assertFalse(t, dfa.HasTransition("a", "x"))
	assertFalse(t, dfa.HasTransition("b", "y"))
	assertFalse(t, dfa.HasTransition("b", "w"))
	assertFalse(t, dfa.HasTransition("c", "z"))
	assertTrue(t, dfa.HasTransition("c", "q"))

	record := dfa.Serialize()
	assertFalse(t, record.Transitions.Contains("a"))
	assertFalse(t, record.Transitions.Contains("b"))
	assertTrue(t, record.Transitions.Contains("c"))
}

func TestDFA_RemoveAllTransitionsKeepsAcceptStates(t *testing.T) {
	dfa := NewDFA().Edge("a", "x", "b").Accepting("b")

	dfa.RemoveAllTransitions("b")

	assertEqual(t, len(dfa.AcceptStates()), 1)
}

func TestDFA_AcceptStates(t *testing.T) {
	dfa := NewDFA().Accepting("x", "y", "x")

	dfa.RemoveAcceptState("x")
	accept := dfa.AcceptStates()
	assertEqual(t, len(accept), 2)
	assertEqual(t, accept[0], State("y"))
	assertEqual(t, accept[1], State("x"))

	dfa.RemoveAcceptState("missing")
	assertEqual(t, len(dfa.AcceptStates()), 2)
}

func TestDFA_EmptyInput(t *testing.T) {
	dfa := NewDFA().Start("s").Accepting("s")
	assertEqual(t, dfa.StepInit(""), Accept)
	assertTrue(t, dfa.Accepts(""))

	dfa.RemoveAcceptState("s")
	assertEqual(t, dfa.StepInit(""), Active)
	assertEqual(t, dfa.Step(), Reject)
	assertFalse(t, dfa.Accepts(""))
}

// A missing transition rejects for good, even when the run would otherwise
// sit on an accepting state at the end of input.
func TestDFA_MissingTransitionRejectsOnLastStep(t *testing.T) {
	dfa := NewDFA().Start("q").Edge("q", "a", "q").Accepting("q")

	assertEqual(t, dfa.StepInit("ab"), Active)
	assertEqual(t, dfa.Step(), Active)
	assertEqual(t, dfa.Step(), Reject)

	st := dfa.Status()
	assertTrue(t, st.State.IsNone())
	assertEqual(t, st.Index, 2)

	assertEqual(t, dfa.Step(), Reject)
	assertEqual(t, dfa.Status().Index, 2)
}

func TestDFA_RejectMidInputIsTerminal(t *testing.T) {
	dfa := NewDFA().Start("q").Edge("q", "a", "q").Accepting("q")

	assertEqual(t, dfa.StepInit("ba"), Active)
	assertEqual(t, dfa.Step(), Reject)
	assertFalse(t, dfa.Accepts("ba"))
}

func TestDFA_StepBeforeInit(t *testing.T) {
	dfa := NewDefaultDFA()
	assertEqual(t, dfa.Step(), Reject)
}

func TestDFA_NoStartState(t *testing.T) {
	dfa := NewDFA().Edge("a", "x", "b").Accepting("b")

	assertTrue(t, dfa.StartState().IsNone())
	assertFalse(t, dfa.Accepts("x"))
	assertFalse(t, dfa.Accepts(""))
}

func TestDFA_Status(t *testing.T) {
	dfa := scenarioDFA()

	dfa.StepInit("aab")
	st := dfa.Status()
	assertEqual(t, st.State.Some(), State("start"))
	assertEqual(t, st.Next.Some(), Symbol("a"))
	assertEqual(t, st.Index, 0)
	assertEqual(t, st.Status, Active)
	assertEqual(t, st.Input, g.String("aab"))

	dfa.Step()
	dfa.Step()
	st = dfa.Status()
	assertEqual(t, st.State.Some(), State("s2"))
	assertEqual(t, st.Next.Some(), Symbol("b"))

	assertEqual(t, dfa.Step(), Accept)
	st = dfa.Status()
	assertTrue(t, st.Next.IsNone())
	assertEqual(t, st.State.Some(), State("accept"))
	assertEqual(t, dfa.RunStatus(), Accept)
}

func TestDFA_UnicodeInput(t *testing.T) {
	dfa := NewDFA().Start("s").Edge("s", "λ", "t").Edge("t", "é", "u").Accepting("u")

	assertTrue(t, dfa.Accepts("λé"))
	assertFalse(t, dfa.Accepts("λ"))
}

func TestDFA_States(t *testing.T) {
	dfa := NewDFA().Start("a").Edge("a", "x", "b").Edge("b", "y", "c").Accepting("d")

	assertStates(t, dfa.States(), "a", "b", "c", "d")
	assertEqual(t, dfa.States()[0], State("a"))
}

func TestDFA_Defaults(t *testing.T) {
	dfa := NewDefaultDFA()

	assertEqual(t, dfa.StartState().Some(), State("start"))
	assertStates(t, dfa.AcceptStates(), "accept")
	assertEqual(t, dfa.Kind(), KindDFA)
}
