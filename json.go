package automaton

import (
	"encoding/json"

	"github.com/enetx/g"
)

// DFARecord is the flat structural description of a DFA.
// A nil StartState means no start state is set.
type DFARecord struct {
	Transitions  g.Map[State, g.Map[Symbol, State]] `json:"transitions" yaml:"transitions"`
	StartState   *State                             `json:"startState" yaml:"startState"`
	AcceptStates g.Slice[State]                     `json:"acceptStates" yaml:"acceptStates"`
}

// NFARecord is the flat structural description of an NFA.
// A nil StartState means no start state is set.
type NFARecord struct {
	Transitions  g.Map[State, g.Map[Symbol, g.Slice[State]]] `json:"transitions" yaml:"transitions"`
	StartState   *State                                     `json:"startState" yaml:"startState"`
	AcceptStates g.Slice[State]                             `json:"acceptStates" yaml:"acceptStates"`
}

func startRecord(start g.Option[State]) *State {
	if start.IsNone() {
		return nil
	}

	s := start.Some()
	return &s
}

func startOption(start *State) g.Option[State] {
	if start == nil {
		return g.None[State]()
	}

	return g.Some(*start)
}

// Serialize returns a copy of the automaton's structure.
func (d *DFA) Serialize() DFARecord {
	return DFARecord{
		Transitions:  d.table.clone(),
		StartState:   startRecord(d.start),
		AcceptStates: d.accept.clone(),
	}
}

// Deserialize replaces the automaton's structure with a copy of r and discards
// any run in progress. The record is trusted as is.
func (d *DFA) Deserialize(r DFARecord) *DFA {
	d.table = dfaTable(dfaTable(r.Transitions).clone())
	d.start = startOption(r.StartState)
	d.accept = acceptStates(acceptStates(r.AcceptStates).clone())
	d.processor = dfaProcessor{}

	return d
}

// SaveToString encodes the automaton's record as JSON. Map keys are sorted,
// so saving the same automaton twice yields the same text.
func (d *DFA) SaveToString() (g.String, error) {
	data, err := json.Marshal(d.Serialize())
	if err != nil {
		return "", err
	}

	return g.String(data), nil
}

// LoadFromString replaces the automaton's structure with a record decoded from data.
func (d *DFA) LoadFromString(data g.String) error {
	return d.UnmarshalJSON([]byte(data))
}

// MarshalJSON implements the json.Marshaler interface.
func (d *DFA) MarshalJSON() ([]byte, error) { return json.Marshal(d.Serialize()) }

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *DFA) UnmarshalJSON(data []byte) error {
	var r DFARecord
	if err := json.Unmarshal(data, &r); err != nil {
		return &ErrDecode{Kind: KindDFA, Err: err}
	}

	d.Deserialize(r)

	return nil
}

// Serialize returns a copy of the automaton's structure.
func (n *NFA) Serialize() NFARecord {
	return NFARecord{
		Transitions:  n.table.clone(),
		StartState:   startRecord(n.start),
		AcceptStates: n.accept.clone(),
	}
}

// Deserialize replaces the automaton's structure with a copy of r and discards
// any run in progress. The record is trusted as is.
func (n *NFA) Deserialize(r NFARecord) *NFA {
	n.table = nfaTable(nfaTable(r.Transitions).clone())
	n.start = startOption(r.StartState)
	n.accept = acceptStates(acceptStates(r.AcceptStates).clone())
	n.processor = nfaProcessor{}

	return n
}

// SaveToString encodes the automaton's record as JSON. Map keys are sorted,
// so saving the same automaton twice yields the same text.
func (n *NFA) SaveToString() (g.String, error) {
	data, err := json.Marshal(n.Serialize())
	if err != nil {
		return "", err
	}

	return g.String(data), nil
}

// LoadFromString replaces the automaton's structure with a record decoded from data.
func (n *NFA) LoadFromString(data g.String) error {
	return n.UnmarshalJSON([]byte(data))
}

// MarshalJSON implements the json.Marshaler interface.
func (n *NFA) MarshalJSON() ([]byte, error) { return json.Marshal(n.Serialize()) }

// UnmarshalJSON implements the json.Unmarshaler interface.
func (n *NFA) UnmarshalJSON(data []byte) error {
	var r NFARecord
	if err := json.Unmarshal(data, &r); err != nil {
		return &ErrDecode{Kind: KindNFA, Err: err}
	}

	n.Deserialize(r)

	return nil
}
