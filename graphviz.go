package automaton

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

type edge struct {
	from, to State
	symbol   Symbol
}

// ToDOT generates a DOT language string representation of the DFA. States
// active in the current run are highlighted.
func (d *DFA) ToDOT() g.String {
	var edges g.Slice[edge]
	for from, row := range d.table {
		for symbol, to := range row {
			edges.Push(edge{from: from, to: to, symbol: symbol})
		}
	}

	current := g.NewSet[State]()
	if d.processor.initialized && d.processor.state.IsSome() {
		current.Insert(d.processor.state.Some())
	}

	return toDOT("DFA", d.States(), edges, d.start, d.accept, current)
}

// ToDOT generates a DOT language string representation of the NFA. States
// active in the current run are highlighted.
func (n *NFA) ToDOT() g.String {
	var edges g.Slice[edge]
	for from, row := range n.table {
		for symbol, targets := range row {
			for _, to := range targets {
				edges.Push(edge{from: from, to: to, symbol: symbol})
			}
		}
	}

	current := g.NewSet[State]()
	if n.processor.initialized {
		current.Insert(n.processor.states...)
	}

	return toDOT("NFA", n.States(), edges, n.start, n.accept, current)
}

func toDOT(
	name g.String,
	states g.Slice[State],
	edges g.Slice[edge],
	start g.Option[State],
	accept acceptStates,
	current g.Set[State],
) g.String {
	b := g.NewBuilder()

	b.WriteString("digraph ")
	b.WriteString(name)
	b.WriteString(" {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	if start.IsSome() {
		b.WriteString("  __start [shape=point, style=invis];\n")
		b.WriteString(g.Format("  __start -> \"{}\" [label=\" start\"];\n\n", dotEscape(start.Some())))
	}

	grouped := g.NewMap[g.Pair[State, State], g.Slice[g.String]]()

	for e := range edges.Iter() {
		key := g.Pair[State, State]{Key: e.from, Value: e.to}

		label := dotEscape(e.symbol)
		if e.symbol == Epsilon {
			label = "ε"
		}

		grouped.Entry(key).
			AndModify(func(s *g.Slice[g.String]) {
				if !s.Contains(label) {
					s.Push(label)
				}
			}).
			OrInsert(g.SliceOf(label))
	}

	for state := range states.Iter() {
		id := dotEscape(state)

		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", id))

		if accept.contains(state) {
			attrs.Push("shape=doublecircle")
		}

		if current.Contains(state) {
			attrs.Push("fillcolor=\"#90ee90\"")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", id, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for from := range states.Iter() {
		for to := range states.Iter() {
			labels, ok := grouped[g.Pair[State, State]{Key: from, Value: to}]
			if !ok {
				continue
			}

			labels.SortBy(cmp.Cmp)
			b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n",
				dotEscape(from), dotEscape(to), labels.Join(",")))
		}
	}

	b.WriteString("}\n")

	return b.String()
}

// dotEscape makes s safe inside a quoted DOT ID.
func dotEscape[T ~string](s T) g.String {
	return g.String(s).ReplaceAll("\\", "\\\\").ReplaceAll("\"", "\\\"")
}
