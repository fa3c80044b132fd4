package automaton

import "github.com/enetx/g"

type (
	// State identifies a state of an automaton. States have no existence beyond
	// their identifiers: they appear as keys in the transition table and as
	// members of the accept set.
	State g.String
	// Symbol is a single input character. The empty symbol is Epsilon.
	Symbol g.String

	// RunStatus is the status of an in-progress run.
	RunStatus g.String
	// Phase is the kind of work the next NFA step performs.
	Phase g.String
	// Kind names an engine variant.
	Kind g.String
)

// Epsilon labels a spontaneous transition that consumes no input.
const Epsilon Symbol = ""

const (
	Active RunStatus = "Active"
	Accept RunStatus = "Accept"
	Reject RunStatus = "Reject"
)

const (
	EpsilonPhase Phase = "epsilons"
	InputPhase   Phase = "input"
)

const (
	KindDFA Kind = "dfa"
	KindNFA Kind = "nfa"
)

// Terminal reports whether no further step can change the status.
func (s RunStatus) Terminal() bool { return s == Accept || s == Reject }

// symbolOf truncates s to its first character.
func symbolOf(s Symbol) Symbol {
	for _, r := range string(s) {
		return Symbol(string(r))
	}

	return Epsilon
}
