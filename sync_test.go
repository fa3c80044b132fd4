package automaton_test

import (
	"sync"
	"testing"

	. "github.com/enetx/automaton"
	"github.com/enetx/g"
)

func TestSync_ConcurrentAccepts(t *testing.T) {
	sa := scenarioDFA().Sync()

	var wg sync.WaitGroup
	results := make([]bool, 64)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			input := g.String("aab")
			if i%2 == 1 {
				input = "ab"
			}

			results[i] = sa.Accepts(input)
		}(i)
	}

	wg.Wait()

	for i, got := range results {
		assertEqual(t, got, i%2 == 0)
	}
}

func TestSync_MutationBetweenRuns(t *testing.T) {
	sa := Sync(NewNFA())

	sa.SetStartState("s")
	sa.AddTransition("s", "a", "t")
	sa.AddAcceptState("t")
	assertTrue(t, sa.Accepts("a"))

	sa.RemoveAllTransitions("t")
	assertFalse(t, sa.Accepts("a"))

	sa.RemoveAcceptState("t")
	assertEqual(t, len(sa.AcceptStates()), 0)
	assertEqual(t, sa.StartState().Some(), State("s"))
	assertEqual(t, sa.Kind(), KindNFA)
}

func TestSync_Stepping(t *testing.T) {
	sa := scenarioDFA().Sync()

	assertEqual(t, sa.StepInit("ac"), Active)
	assertEqual(t, sa.Step(), Active)
	assertEqual(t, sa.Step(), Accept)
	assertEqual(t, sa.RunStatus(), Accept)

	sa.Do(func(a Automaton) {
		st := a.(*DFA).Status()
		assertEqual(t, st.State.Some(), State("end2"))
	})
}

func TestSync_SaveAndLoad(t *testing.T) {
	sa := scenarioDFA().Sync()

	data, err := sa.SaveToString()
	assertNoError(t, err)

	other := NewDFA().Sync()
	assertNoError(t, other.LoadFromString(data))
	assertTrue(t, other.Accepts("aab"))
	assertStates(t, other.States(), sa.States()...)
}
