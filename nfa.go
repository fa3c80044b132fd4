package automaton

import "github.com/enetx/g"

// Interface compliance check.
var _ Automaton = (*NFA)(nil)

// nfaProcessor holds the state of a run over a set of active states. Each
// logical input step is split into an epsilon phase and an input phase.
type nfaProcessor struct {
	input       g.String
	runes       []rune
	states      g.Slice[State]
	index       int
	status      RunStatus
	phase       Phase
	initialized bool
}

// NFA is a non-deterministic finite automaton. A (state, symbol) pair may lead
// to several states, and the Epsilon symbol labels transitions taken without
// reading input.
type NFA struct {
	table     nfaTable
	start     g.Option[State]
	accept    acceptStates
	processor nfaProcessor
}

// NFAStatus is an observational snapshot of an NFA run.
type NFAStatus struct {
	States g.Slice[State]
	Input  g.String
	Index  int
	Next   g.Option[Symbol]
	Phase  Phase
	Status RunStatus
}

// NewNFA creates an empty NFA with no start state and no accept states.
func NewNFA() *NFA {
	return &NFA{
		table: nfaTable(g.NewMap[State, g.Map[Symbol, g.Slice[State]]]()),
		start: g.None[State](),
	}
}

// NewDefaultNFA creates an NFA with start state "start" and accept state "accept".
func NewDefaultNFA() *NFA {
	n := NewNFA()
	n.SetStartState("start")
	n.AddAcceptState("accept")

	return n
}

// Kind returns KindNFA.
func (n *NFA) Kind() Kind { return KindNFA }

// AddTransition appends to as a target of from on symbol.
func (n *NFA) AddTransition(from State, symbol Symbol, to State) {
	n.table.add(from, symbolOf(symbol), to)
}

// Edge is the chaining form of AddTransition.
func (n *NFA) Edge(from State, symbol Symbol, to State) *NFA {
	n.AddTransition(from, symbol, to)
	return n
}

// HasTransition reports whether to is a target of from on symbol.
func (n *NFA) HasTransition(from State, symbol Symbol, to State) bool {
	return n.table.has(from, symbolOf(symbol), to)
}

// Transition returns a copy of the targets of from on symbol, empty if there are none.
func (n *NFA) Transition(from State, symbol Symbol) g.Slice[State] {
	return n.table.get(from, symbolOf(symbol)).Clone()
}

// RemoveTransition removes one occurrence of to from the targets of from on symbol.
func (n *NFA) RemoveTransition(from State, symbol Symbol, to State) {
	n.table.remove(from, symbolOf(symbol), to)
}

// RemoveAllTransitions deletes every transition leaving state and every
// occurrence of state as a target. The accept set is left untouched.
func (n *NFA) RemoveAllTransitions(state State) { n.table.purge(state) }

// SetStartState sets the state every run begins in.
func (n *NFA) SetStartState(state State) { n.start = g.Some(state) }

// Start is the chaining form of SetStartState.
func (n *NFA) Start(state State) *NFA {
	n.SetStartState(state)
	return n
}

// StartState returns the start state, if set.
func (n *NFA) StartState() g.Option[State] { return n.start }

// AddAcceptState appends state to the accept set. Duplicates are kept.
func (n *NFA) AddAcceptState(state State) { n.accept.add(state) }

// Accepting is the chaining form of AddAcceptState.
func (n *NFA) Accepting(states ...State) *NFA {
	for _, s := range states {
		n.AddAcceptState(s)
	}

	return n
}

// RemoveAcceptState removes the first occurrence of state from the accept set.
func (n *NFA) RemoveAcceptState(state State) { n.accept.remove(state) }

// AcceptStates returns a copy of the accept set in insertion order.
func (n *NFA) AcceptStates() g.Slice[State] { return n.accept.clone() }

// States returns every state mentioned by the automaton, sorted.
func (n *NFA) States() g.Slice[State] {
	return sortedStates(n.table.collect, n.start, n.accept)
}

// Closure returns the epsilon-closure of states: the given states, without
// duplicates, followed by every state reachable from them through Epsilon
// transitions alone.
func (n *NFA) Closure(states g.Slice[State]) g.Slice[State] {
	seen := g.NewSet[State]()
	out := g.NewSlice[State]()

	for _, s := range states {
		if !seen.Contains(s) {
			seen.Insert(s)
			out.Push(s)
		}
	}

	// out grows while it is scanned; the loop ends once a pass adds nothing.
	for i := 0; i < len(out); i++ {
		for _, to := range n.table.get(out[i], Epsilon) {
			if !seen.Contains(to) {
				seen.Insert(to)
				out.Push(to)
			}
		}
	}

	return out
}

// move returns the deduplicated targets of states on symbol.
func (n *NFA) move(states g.Slice[State], symbol Symbol) g.Slice[State] {
	seen := g.NewSet[State]()
	out := g.NewSlice[State]()

	for _, s := range states {
		for _, to := range n.table.get(s, symbol) {
			if !seen.Contains(to) {
				seen.Insert(to)
				out.Push(to)
			}
		}
	}

	return out
}

// StepInit resets the processor to the beginning of input with the start
// state as the only active state. The epsilon-closure is scheduled as the
// first step rather than taken here.
func (n *NFA) StepInit(input g.String) RunStatus {
	p := &n.processor

	p.input = input
	p.runes = []rune(string(input))
	p.index = 0
	p.states = g.NewSlice[State]()
	if n.start.IsSome() {
		p.states.Push(n.start.Some())
	}

	p.phase = EpsilonPhase
	p.status = Active
	p.initialized = true

	return n.updateStatus()
}

// Step performs one phase: the epsilon-closure of the active set, or the
// consumption of one input character. The two alternate.
func (n *NFA) Step() RunStatus {
	p := &n.processor

	if !p.initialized {
		p.status = Reject
		return p.status
	}

	if p.status.Terminal() {
		return p.status
	}

	switch p.phase {
	case EpsilonPhase:
		p.states = n.Closure(p.states)
		p.phase = InputPhase
	case InputPhase:
		if p.index < len(p.runes) {
			p.states = n.move(p.states, Symbol(string(p.runes[p.index])))
		} else {
			p.states = g.NewSlice[State]()
		}

		p.index++
		p.phase = EpsilonPhase
	}

	return n.updateStatus()
}

// updateStatus rejects on an empty active set. At the end of input it accepts
// when an active state is accepting, and rejects once the closure of the
// final set has been taken without finding one.
func (n *NFA) updateStatus() RunStatus {
	p := &n.processor

	if len(p.states) == 0 {
		p.status = Reject
		return p.status
	}

	if p.index >= len(p.runes) {
		for _, s := range p.states {
			if n.accept.contains(s) {
				p.status = Accept
				return p.status
			}
		}

		if p.phase == InputPhase {
			p.status = Reject
		}
	}

	return p.status
}

// RunStatus returns the status of the current run.
func (n *NFA) RunStatus() RunStatus { return n.processor.status }

// Status returns a snapshot of the current run. Next holds Epsilon when the
// next step is a closure, the next character when it reads input, and is None
// at the end of input or once the run is over.
func (n *NFA) Status() NFAStatus {
	p := n.processor

	next := g.None[Symbol]()
	if p.status == Active {
		switch {
		case p.phase == EpsilonPhase:
			next = g.Some(Epsilon)
		case p.index < len(p.runes):
			next = g.Some(Symbol(string(p.runes[p.index])))
		}
	}

	return NFAStatus{
		States: p.states.Clone(),
		Input:  p.input,
		Index:  p.index,
		Next:   next,
		Phase:  p.phase,
		Status: p.status,
	}
}

// Describe renders the current run as a single line.
func (n *NFA) Describe() g.String {
	st := n.Status()

	names := g.NewSlice[g.String]()
	for _, s := range st.States {
		names.Push(g.String(s))
	}

	return g.Format("states=[{}] index={} next={} status={}",
		names.Join(","), st.Index, optionText(st.Next), st.Status)
}

// Accepts runs the whole input and reports whether it ends in Accept.
func (n *NFA) Accepts(input g.String) bool { return drive(n, input) == Accept }
