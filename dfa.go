package automaton

import "github.com/enetx/g"

// Interface compliance check.
var _ Automaton = (*DFA)(nil)

// dfaProcessor holds the state of a single-state walk over an input.
type dfaProcessor struct {
	input       g.String
	runes       []rune
	state       g.Option[State]
	index       int
	status      RunStatus
	initialized bool
}

// DFA is a deterministic finite automaton: every (state, symbol) pair leads to
// at most one state.
type DFA struct {
	table     dfaTable
	start     g.Option[State]
	accept    acceptStates
	processor dfaProcessor
}

// DFAStatus is an observational snapshot of a DFA run.
type DFAStatus struct {
	State  g.Option[State]
	Input  g.String
	Index  int
	Next   g.Option[Symbol]
	Status RunStatus
}

// NewDFA creates an empty DFA with no start state and no accept states.
func NewDFA() *DFA {
	return &DFA{
		table: dfaTable(g.NewMap[State, g.Map[Symbol, State]]()),
		start: g.None[State](),
	}
}

// NewDefaultDFA creates a DFA with start state "start" and accept state "accept".
func NewDefaultDFA() *DFA {
	d := NewDFA()
	d.SetStartState("start")
	d.AddAcceptState("accept")

	return d
}

// Kind returns KindDFA.
func (d *DFA) Kind() Kind { return KindDFA }

// AddTransition sets the target of from on symbol, replacing any previous target.
func (d *DFA) AddTransition(from State, symbol Symbol, to State) {
	d.table.add(from, symbolOf(symbol), to)
}

// Edge is the chaining form of AddTransition.
func (d *DFA) Edge(from State, symbol Symbol, to State) *DFA {
	d.AddTransition(from, symbol, to)
	return d
}

// HasTransition reports whether from has a target on symbol.
func (d *DFA) HasTransition(from State, symbol Symbol) bool {
	return d.table.has(from, symbolOf(symbol))
}

// Transition returns the target of from on symbol.
func (d *DFA) Transition(from State, symbol Symbol) g.Option[State] {
	return d.table.get(from, symbolOf(symbol))
}

// RemoveTransition deletes the target of from on symbol, if any.
func (d *DFA) RemoveTransition(from State, symbol Symbol) {
	d.table.remove(from, symbolOf(symbol))
}

// RemoveAllTransitions deletes every transition leaving or entering state.
// The accept set is left untouched.
func (d *DFA) RemoveAllTransitions(state State) { d.table.purge(state) }

// SetStartState sets the state every run begins in.
func (d *DFA) SetStartState(state State) { d.start = g.Some(state) }

// Start is the chaining form of SetStartState.
func (d *DFA) Start(state State) *DFA {
	d.SetStartState(state)
	return d
}

// StartState returns the start state, if set.
func (d *DFA) StartState() g.Option[State] { return d.start }

// AddAcceptState appends state to the accept set. Duplicates are kept.
func (d *DFA) AddAcceptState(state State) { d.accept.add(state) }

// Accepting is the chaining form of AddAcceptState.
func (d *DFA) Accepting(states ...State) *DFA {
	for _, s := range states {
		d.AddAcceptState(s)
	}

	return d
}

// RemoveAcceptState removes the first occurrence of state from the accept set.
func (d *DFA) RemoveAcceptState(state State) { d.accept.remove(state) }

// AcceptStates returns a copy of the accept set in insertion order.
func (d *DFA) AcceptStates() g.Slice[State] { return d.accept.clone() }

// States returns every state mentioned by the automaton, sorted.
func (d *DFA) States() g.Slice[State] {
	return sortedStates(d.table.collect, d.start, d.accept)
}

// StepInit resets the processor to the beginning of input.
// An empty input is classified immediately.
func (d *DFA) StepInit(input g.String) RunStatus {
	p := &d.processor

	p.input = input
	p.runes = []rune(string(input))
	p.index = 0
	p.state = d.start
	p.initialized = true
	p.status = Active

	if len(p.runes) == 0 && d.accept.containsOpt(p.state) {
		p.status = Accept
	}

	return p.status
}

// Step consumes one input character.
//
// A missing transition rejects immediately; the end-of-input accept check is
// not applied on that step. Stepping a finished run returns its status
// unchanged, and stepping before StepInit rejects.
func (d *DFA) Step() RunStatus {
	p := &d.processor

	if !p.initialized {
		p.status = Reject
		return p.status
	}

	if p.status.Terminal() {
		return p.status
	}

	var next g.Option[State]
	if p.state.IsSome() && p.index < len(p.runes) {
		next = d.table.get(p.state.Some(), Symbol(string(p.runes[p.index])))
	} else {
		next = g.None[State]()
	}

	p.index++
	p.state = next

	switch {
	case next.IsNone():
		p.status = Reject
	case p.index >= len(p.runes):
		if d.accept.containsOpt(next) {
			p.status = Accept
		} else {
			p.status = Reject
		}
	}

	return p.status
}

// RunStatus returns the status of the current run.
func (d *DFA) RunStatus() RunStatus { return d.processor.status }

// Status returns a snapshot of the current run.
func (d *DFA) Status() DFAStatus {
	p := d.processor

	next := g.None[Symbol]()
	if p.index < len(p.runes) {
		next = g.Some(Symbol(string(p.runes[p.index])))
	}

	return DFAStatus{
		State:  p.state,
		Input:  p.input,
		Index:  p.index,
		Next:   next,
		Status: p.status,
	}
}

// Describe renders the current run as a single line.
func (d *DFA) Describe() g.String {
	st := d.Status()
	return g.Format("state={} index={} next={} status={}",
		optionText(st.State), st.Index, optionText(st.Next), st.Status)
}

// Accepts runs the whole input and reports whether it ends in Accept.
func (d *DFA) Accepts(input g.String) bool { return drive(d, input) == Accept }

// drive runs StepInit then Step until the status is terminal.
func drive(a Automaton, input g.String) RunStatus {
	status := a.StepInit(input)
	for status == Active {
		status = a.Step()
	}

	return status
}

func optionText[T ~string](o g.Option[T]) g.String {
	if o.IsNone() {
		return "-"
	}

	if o.Some() == "" {
		return "ε"
	}

	return g.String(o.Some())
}
