package automaton

import "github.com/enetx/g"

// Frame records one tick of a stepped run.
type Frame struct {
	Step   int       `json:"step"`
	Status RunStatus `json:"status"`
	Line   g.String  `json:"line"`
}

// Trace runs input through a one step at a time and records a Frame after
// StepInit and after every Step, the way a debugger loop observes a run.
func Trace(a Automaton, input g.String) g.Slice[Frame] {
	frames := g.NewSlice[Frame]()

	status := a.StepInit(input)
	frames.Push(Frame{Step: 0, Status: status, Line: a.Describe()})

	for i := 1; status == Active; i++ {
		status = a.Step()
		frames.Push(Frame{Step: i, Status: status, Line: a.Describe()})
	}

	return frames
}
