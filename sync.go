package automaton

import (
	"sync"

	"github.com/enetx/g"
)

// Interface compliance check.
var _ Automaton = (*SyncAutomaton)(nil)

// SyncAutomaton is a thread-safe wrapper around an Automaton.
// Stepping mutates the run held by the engine, so StepInit, Step and Accepts
// take the write lock alongside the structural edits.
type SyncAutomaton struct {
	a  Automaton
	mu sync.RWMutex
}

// Sync wraps a in a SyncAutomaton.
func Sync(a Automaton) *SyncAutomaton { return &SyncAutomaton{a: a} }

// Sync wraps the DFA in a SyncAutomaton.
func (d *DFA) Sync() *SyncAutomaton { return Sync(d) }

// Sync wraps the NFA in a SyncAutomaton.
func (n *NFA) Sync() *SyncAutomaton { return Sync(n) }

// Do runs fn with exclusive access to the wrapped automaton, for operations
// specific to one engine variant.
func (s *SyncAutomaton) Do(fn func(Automaton)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.a)
}

// Kind is the thread-safe version of Automaton.Kind.
func (s *SyncAutomaton) Kind() Kind { return s.a.Kind() }

// AddTransition is the thread-safe version of Automaton.AddTransition.
func (s *SyncAutomaton) AddTransition(from State, symbol Symbol, to State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.a.AddTransition(from, symbol, to)
}

// RemoveAllTransitions is the thread-safe version of Automaton.RemoveAllTransitions.
func (s *SyncAutomaton) RemoveAllTransitions(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.a.RemoveAllTransitions(state)
}

// SetStartState is the thread-safe version of Automaton.SetStartState.
func (s *SyncAutomaton) SetStartState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.a.SetStartState(state)
}

// StartState is the thread-safe version of Automaton.StartState.
func (s *SyncAutomaton) StartState() g.Option[State] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.a.StartState()
}

// AddAcceptState is the thread-safe version of Automaton.AddAcceptState.
func (s *SyncAutomaton) AddAcceptState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.a.AddAcceptState(state)
}

// RemoveAcceptState is the thread-safe version of Automaton.RemoveAcceptState.
func (s *SyncAutomaton) RemoveAcceptState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.a.RemoveAcceptState(state)
}

// AcceptStates is the thread-safe version of Automaton.AcceptStates.
func (s *SyncAutomaton) AcceptStates() g.Slice[State] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.a.AcceptStates()
}

// States is the thread-safe version of Automaton.States.
func (s *SyncAutomaton) States() g.Slice[State] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.a.States()
}

// StepInit is the thread-safe version of Automaton.StepInit.
func (s *SyncAutomaton) StepInit(input g.String) RunStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.a.StepInit(input)
}

// Step is the thread-safe version of Automaton.Step.
func (s *SyncAutomaton) Step() RunStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.a.Step()
}

// RunStatus is the thread-safe version of Automaton.RunStatus.
func (s *SyncAutomaton) RunStatus() RunStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.a.RunStatus()
}

// Describe is the thread-safe version of Automaton.Describe.
func (s *SyncAutomaton) Describe() g.String {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.a.Describe()
}

// Accepts is the thread-safe version of Automaton.Accepts.
// The whole run happens under one lock, so it never interleaves with Step.
func (s *SyncAutomaton) Accepts(input g.String) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.a.Accepts(input)
}

// ToDOT is the thread-safe version of Automaton.ToDOT.
func (s *SyncAutomaton) ToDOT() g.String {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.a.ToDOT()
}

// SaveToString is the thread-safe version of Automaton.SaveToString.
func (s *SyncAutomaton) SaveToString() (g.String, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.a.SaveToString()
}

// LoadFromString is the thread-safe version of Automaton.LoadFromString.
func (s *SyncAutomaton) LoadFromString(data g.String) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.a.LoadFromString(data)
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the automaton's record.
func (s *SyncAutomaton) MarshalJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.a.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// replacement of the automaton's record.
func (s *SyncAutomaton) UnmarshalJSON(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.a.UnmarshalJSON(data)
}
