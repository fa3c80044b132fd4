package automaton_test

import (
	"errors"
	"testing"

	. "github.com/enetx/automaton"
	"github.com/enetx/g"
)

const dfaYAML = `
kind: dfa
automaton:
  transitions:
    start:
      a: s1
    s1:
      a: s2
      c: end2
    s2:
      b: accept
  startState: start
  acceptStates: [accept, end2]
tests:
  accept: [aab, ac]
  reject: ["", a, aa, ab]
`

const nfaYAML = `
kind: nfa
automaton:
  transitions:
    s:
      "": [f]
      a: [s, t]
    t:
      b: [f]
  startState: s
  acceptStates: [f]
tests:
  accept: ["", ab, aab]
  reject: [b, ba]
`

func TestDocument_ParseYAML(t *testing.T) {
	doc, err := ParseDocument([]byte(dfaYAML), EncodingYAML)
	assertNoError(t, err)
	assertEqual(t, doc.Kind, KindDFA)
	assertTrue(t, doc.DFA != nil)
	assertEqual(t, len(doc.Tests.Accept), 2)
	assertEqual(t, len(doc.Tests.Reject), 4)

	a, err := doc.Build()
	assertNoError(t, err)
	assertTrue(t, BulkTest(a, doc.Tests).OK())
}

func TestDocument_ParseYAMLWithEpsilon(t *testing.T) {
	doc, err := ParseDocument([]byte(nfaYAML), EncodingYAML)
	assertNoError(t, err)

	a, err := doc.Build()
	assertNoError(t, err)
	assertEqual(t, a.Kind(), KindNFA)

	nfa := a.(*NFA)
	assertTrue(t, nfa.HasTransition("s", Epsilon, "f"))
	assertTrue(t, BulkTest(a, doc.Tests).OK())
}

func TestDocument_EncodeRoundTrip(t *testing.T) {
	tests := Tests{Accept: g.SliceOf[g.String]("ab"), Reject: g.SliceOf[g.String]("ba")}

	doc, err := NewDocument(endsWithAB(), tests)
	assertNoError(t, err)

	for _, enc := range g.SliceOf(EncodingJSON, EncodingYAML) {
		data, err := doc.Encode(enc)
		assertNoError(t, err)

		parsed, err := ParseDocument(data, enc)
		assertNoError(t, err)
		assertEqual(t, parsed.Kind, KindNFA)

		a, err := parsed.Build()
		assertNoError(t, err)

		for _, input := range inputs {
			assertEqual(t, a.Accepts(input), endsWithAB().Accepts(input))
		}

		assertTrue(t, BulkTest(a, parsed.Tests).OK())
	}
}

func TestDocument_FromSyncAutomaton(t *testing.T) {
	doc, err := NewDocument(scenarioDFA().Sync(), Tests{})
	assertNoError(t, err)
	assertEqual(t, doc.Kind, KindDFA)
	assertEqual(t, doc.DFA.StartState != nil, true)
	assertEqual(t, *doc.DFA.StartState, State("start"))
}

func TestDocument_UnknownKind(t *testing.T) {
	_, err := ParseDocument([]byte(`{"kind":"pda","automaton":{}}`), EncodingJSON)
	assertError(t, err)

	var kindErr *ErrUnknownKind
	assertTrue(t, errors.As(err, &kindErr))
	assertEqual(t, kindErr.Kind, Kind("pda"))

	_, err = (&Document{Kind: "pda"}).Build()
	assertTrue(t, errors.As(err, &kindErr))
}

func TestDocument_UnknownEncoding(t *testing.T) {
	_, err := ParseDocument([]byte(`{}`), "toml")

	var formatErr *ErrUnknownFormat
	assertTrue(t, errors.As(err, &formatErr))
}

func TestDocument_EncodingOf(t *testing.T) {
	assertEqual(t, EncodingOf("machine.json"), EncodingJSON)
	assertEqual(t, EncodingOf("machine.JSON"), EncodingJSON)
	assertEqual(t, EncodingOf("machine.yaml"), EncodingYAML)
	assertEqual(t, EncodingOf("machine"), EncodingYAML)
}
