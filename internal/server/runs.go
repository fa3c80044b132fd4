package server

import (
	"sync/atomic"
	"time"

	"github.com/enetx/automaton"
	"github.com/enetx/g"
	"github.com/google/uuid"
)

// run is a resumable debugging session: an engine of its own, stepped once
// per request.
type run struct {
	id      string
	name    string
	engine  *automaton.SyncAutomaton
	touched atomic.Int64
}

func (r *run) touch(now time.Time) { r.touched.Store(now.UnixNano()) }

func (r *run) touchedBefore(t time.Time) bool { return r.touched.Load() < t.UnixNano() }

// RunView is the JSON projection of a run.
type RunView struct {
	ID        string                   `json:"id"`
	Automaton string                   `json:"automaton"`
	Kind      automaton.Kind           `json:"kind"`
	Input     g.String                 `json:"input"`
	Index     int                      `json:"index"`
	States    g.Slice[automaton.State] `json:"states"`
	Next      *automaton.Symbol        `json:"next"`
	Phase     automaton.Phase          `json:"phase,omitempty"`
	Status    automaton.RunStatus      `json:"status"`
}

func (r *run) view() RunView {
	v := RunView{ID: r.id, Automaton: r.name, Kind: r.engine.Kind()}

	r.engine.Do(func(a automaton.Automaton) {
		switch e := a.(type) {
		case *automaton.DFA:
			st := e.Status()
			v.Input, v.Index, v.Status = st.Input, st.Index, st.Status
			v.States = g.NewSlice[automaton.State]()
			if st.State.IsSome() {
				v.States.Push(st.State.Some())
			}
			if st.Next.IsSome() {
				next := st.Next.Some()
				v.Next = &next
			}
		case *automaton.NFA:
			st := e.Status()
			v.Input, v.Index, v.Status, v.Phase = st.Input, st.Index, st.Status, st.Phase
			v.States = st.States
			if st.Next.IsSome() {
				next := st.Next.Some()
				v.Next = &next
			}
		}
	})

	return v
}

// runRegistry holds the live runs by id. Runs untouched for longer than ttl
// are swept whenever a run is started or looked up.
type runRegistry struct {
	runs *g.MapSafe[string, *run]
	ttl  time.Duration
	now  func() time.Time
}

func newRunRegistry(ttl time.Duration) *runRegistry {
	return &runRegistry{
		runs: g.NewMapSafe[string, *run](),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (r *runRegistry) start(name string, a automaton.Automaton) *run {
	r.sweep()

	rn := &run{
		id:     uuid.Must(uuid.NewV7()).String(),
		name:   name,
		engine: automaton.Sync(a),
	}
	rn.touch(r.now())

	r.runs.Set(rn.id, rn)
	return rn
}

func (r *runRegistry) get(id string) (*run, bool) {
	r.sweep()

	rn := r.runs.Get(id)
	if rn.IsNone() {
		return nil, false
	}

	rn.Some().touch(r.now())
	return rn.Some(), true
}

func (r *runRegistry) remove(id string) bool {
	if r.runs.Get(id).IsNone() {
		return false
	}

	r.runs.Delete(id)
	return true
}

// sweep drops the runs whose last touch is older than ttl.
func (r *runRegistry) sweep() {
	if r.ttl <= 0 {
		return
	}

	deadline := r.now().Add(-r.ttl)

	for id := range r.runs.Keys().Iter() {
		if rn := r.runs.Get(id); rn.IsSome() && rn.Some().touchedBefore(deadline) {
			r.runs.Delete(id)
		}
	}
}
