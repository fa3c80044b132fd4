package automaton

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// dfaTable maps a source state and a symbol to at most one target.
// A source without outgoing symbols is absent from the table.
type dfaTable g.Map[State, g.Map[Symbol, State]]

func (t dfaTable) add(from State, symbol Symbol, to State) {
	row, ok := t[from]
	if !ok {
		row = g.NewMap[Symbol, State]()
		t[from] = row
	}

	row[symbol] = to
}

func (t dfaTable) get(from State, symbol Symbol) g.Option[State] {
	if to, ok := t[from][symbol]; ok {
		return g.Some(to)
	}

	return g.None[State]()
}

func (t dfaTable) has(from State, symbol Symbol) bool {
	_, ok := t[from][symbol]
	return ok
}

func (t dfaTable) remove(from State, symbol Symbol) {
	row, ok := t[from]
	if !ok {
		return
	}

	delete(row, symbol)

	if len(row) == 0 {
		delete(t, from)
	}
}

// purge drops the state's own row and every edge that targets it.
func (t dfaTable) purge(state State) {
	delete(t, state)

	for from, row := range t {
		for symbol, to := range row {
			if to == state {
				delete(row, symbol)
			}
		}

		if len(row) == 0 {
			delete(t, from)
		}
	}
}

func (t dfaTable) clone() g.Map[State, g.Map[Symbol, State]] {
	out := g.NewMap[State, g.Map[Symbol, State]]()

	for from, row := range t {
		if len(row) == 0 {
			continue
		}

		dst := g.NewMap[Symbol, State]()
		for symbol, to := range row {
			dst[symbol] = to
		}

		out[from] = dst
	}

	return out
}

func (t dfaTable) collect(set g.Set[State]) {
	for from, row := range t {
		set.Insert(from)
		for _, to := range row {
			set.Insert(to)
		}
	}
}

// nfaTable maps a source state and a symbol to an ordered list of targets.
// Duplicate targets are stored as given and filtered when states are collected
// into an active set.
type nfaTable g.Map[State, g.Map[Symbol, g.Slice[State]]]

func (t nfaTable) add(from State, symbol Symbol, to State) {
	row, ok := t[from]
	if !ok {
		row = g.NewMap[Symbol, g.Slice[State]]()
		t[from] = row
	}

	row[symbol] = append(row[symbol], to)
}

// get returns the stored targets without copying; callers must not modify them.
func (t nfaTable) get(from State, symbol Symbol) g.Slice[State] { return t[from][symbol] }

func (t nfaTable) has(from State, symbol Symbol, to State) bool { return t[from][symbol].Contains(to) }

func (t nfaTable) remove(from State, symbol Symbol, to State) {
	row, ok := t[from]
	if !ok {
		return
	}

	targets := row[symbol]
	if i := targets.Index(to); i >= 0 {
		targets = append(targets[:i:i], targets[i+1:]...)
	}

	t.store(from, row, symbol, targets)
}

// purge drops the state's own row and every occurrence of it as a target.
func (t nfaTable) purge(state State) {
	delete(t, state)

	for from, row := range t {
		for symbol, targets := range row {
			kept := targets[:0:0]
			for _, s := range targets {
				if s != state {
					kept = append(kept, s)
				}
			}

			t.store(from, row, symbol, kept)
		}
	}
}

func (t nfaTable) store(from State, row g.Map[Symbol, g.Slice[State]], symbol Symbol, targets g.Slice[State]) {
	if len(targets) == 0 {
		delete(row, symbol)
	} else {
		row[symbol] = targets
	}

	if len(row) == 0 {
		delete(t, from)
	}
}

func (t nfaTable) clone() g.Map[State, g.Map[Symbol, g.Slice[State]]] {
	out := g.NewMap[State, g.Map[Symbol, g.Slice[State]]]()

	for from, row := range t {
		dst := g.NewMap[Symbol, g.Slice[State]]()
		for symbol, targets := range row {
			if len(targets) != 0 {
				dst[symbol] = targets.Clone()
			}
		}

		if len(dst) != 0 {
			out[from] = dst
		}
	}

	return out
}

func (t nfaTable) collect(set g.Set[State]) {
	for from, row := range t {
		set.Insert(from)
		for _, targets := range row {
			set.Insert(targets...)
		}
	}
}

// sortedStates gathers every state mentioned by a table, the start state and
// the accept set, in lexical order.
func sortedStates(collect func(g.Set[State]), start g.Option[State], accept acceptStates) g.Slice[State] {
	set := g.NewSet[State]()
	collect(set)

	if start.IsSome() {
		set.Insert(start.Some())
	}

	set.Insert(accept...)

	states := set.ToSlice()
	states.SortBy(cmp.Cmp)

	return states
}
