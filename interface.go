// Package automaton simulates deterministic (DFA) and non-deterministic (NFA)
// finite automata with epsilon transitions. Runs can be driven to completion
// or stepped one character (or epsilon-closure) at a time. It is built with
// types and utilities from the github.com/enetx/g library.
package automaton

import "github.com/enetx/g"

// Automaton is the capability shared by the deterministic and the
// non-deterministic engine. Hosts select one of the two implementations and
// drive it only through these operations.
type Automaton interface {
	Kind() Kind
	AddTransition(from State, symbol Symbol, to State)
	RemoveAllTransitions(state State)
	SetStartState(state State)
	StartState() g.Option[State]
	AddAcceptState(state State)
	RemoveAcceptState(state State)
	AcceptStates() g.Slice[State]
	States() g.Slice[State]
	StepInit(input g.String) RunStatus
	Step() RunStatus
	RunStatus() RunStatus
	Describe() g.String
	Accepts(input g.String) bool
	ToDOT() g.String
	SaveToString() (g.String, error)
	LoadFromString(data g.String) error
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}
