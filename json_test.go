package automaton_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/enetx/automaton"
	"github.com/enetx/g"
)

var inputs = g.SliceOf[g.String]("", "a", "aa", "ab", "aab", "ac", "abab", "ba", "c")

func TestDFA_SerializationRoundTrip(t *testing.T) {
	dfa := scenarioDFA()

	restored := NewDFA().Deserialize(dfa.Serialize())
	for _, input := range inputs {
		assertEqual(t, restored.Accepts(input), dfa.Accepts(input))
	}

	// The record is a copy: editing the original leaves the restored DFA intact.
	dfa.RemoveTransition("s2", "b")
	assertTrue(t, restored.Accepts("aab"))
}

func TestDFA_SaveToStringIsStable(t *testing.T) {
	dfa := scenarioDFA()

	first, err := dfa.SaveToString()
	assertNoError(t, err)
	second, err := dfa.SaveToString()
	assertNoError(t, err)
	assertEqual(t, first, second)

	loaded := NewDFA()
	assertNoError(t, loaded.LoadFromString(first))
	third, err := loaded.SaveToString()
	assertNoError(t, err)
	assertEqual(t, third, first)
}

func TestDFA_SaveWithoutStartState(t *testing.T) {
	data, err := NewDFA().Edge("a", "x", "b").SaveToString()
	assertNoError(t, err)
	assertTrue(t, strings.Contains(string(data), `"startState":null`))

	loaded := NewDFA()
	assertNoError(t, loaded.LoadFromString(data))
	assertTrue(t, loaded.StartState().IsNone())
	assertTrue(t, loaded.HasTransition("a", "x"))
}

func TestDFA_LoadFromStringInvalid(t *testing.T) {
	dfa := NewDFA()

	err := dfa.LoadFromString("{not json")
	assertError(t, err)

	var decodeErr *ErrDecode
	assertTrue(t, errors.As(err, &decodeErr))
	assertEqual(t, decodeErr.Kind, KindDFA)
}

func TestDFA_DeserializeTrustsRecord(t *testing.T) {
	dfa := NewDFA().Deserialize(DFARecord{})

	assertTrue(t, dfa.StartState().IsNone())
	assertFalse(t, dfa.Accepts("a"))

	dfa.AddTransition("a", "x", "b")
	assertTrue(t, dfa.HasTransition("a", "x"))
}

func TestDFA_JSONMarshal(t *testing.T) {
	dfa := scenarioDFA()

	data, err := json.Marshal(dfa)
	assertNoError(t, err)

	restored := NewDFA()
	assertNoError(t, json.Unmarshal(data, restored))
	assertTrue(t, restored.Accepts("aab"))
	assertEqual(t, restored.StartState().Some(), State("start"))
}

func TestNFA_SerializationRoundTrip(t *testing.T) {
	nfa := endsWithAB().Edge("q1", Epsilon, "q0")

	data, err := nfa.SaveToString()
	assertNoError(t, err)

	restored := NewNFA()
	assertNoError(t, restored.LoadFromString(data))

	for _, input := range inputs {
		assertEqual(t, restored.Accepts(input), nfa.Accepts(input))
	}

	again, err := restored.SaveToString()
	assertNoError(t, err)
	assertEqual(t, again, data)
}

func TestNFA_EpsilonKeyInRecord(t *testing.T) {
	data := g.String(`{"transitions":{"s":{"":["f"]}},"startState":"s","acceptStates":["f"]}`)

	nfa := NewNFA()
	assertNoError(t, nfa.LoadFromString(data))
	assertTrue(t, nfa.HasTransition("s", Epsilon, "f"))
	assertTrue(t, nfa.Accepts(""))
}

func TestNFA_LoadFromStringInvalid(t *testing.T) {
	err := NewNFA().LoadFromString(`{"transitions": 5}`)

	var decodeErr *ErrDecode
	assertTrue(t, errors.As(err, &decodeErr))
	assertEqual(t, decodeErr.Kind, KindNFA)
}
