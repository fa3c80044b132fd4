package automaton

import "github.com/enetx/g"

// acceptStates keeps insertion order and tolerates duplicates; removal drops
// only the first occurrence.
type acceptStates g.Slice[State]

func (a *acceptStates) add(state State) { *a = append(*a, state) }

func (a *acceptStates) remove(state State) {
	if i := g.Slice[State](*a).Index(state); i >= 0 {
		*a = append((*a)[:i], (*a)[i+1:]...)
	}
}

func (a acceptStates) contains(state State) bool { return g.Slice[State](a).Contains(state) }

// containsOpt reports membership of an optional state; None is never accepting.
func (a acceptStates) containsOpt(state g.Option[State]) bool {
	return state.IsSome() && a.contains(state.Some())
}

// clone never returns nil, so an empty set encodes as [] rather than null.
func (a acceptStates) clone() g.Slice[State] {
	out := make(g.Slice[State], len(a))
	copy(out, a)

	return out
}
