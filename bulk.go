package automaton

import "github.com/enetx/g"

// Case is the outcome of one bulk test input.
type Case struct {
	Input  g.String  `json:"input"`
	Expect RunStatus `json:"expect"`
	Got    RunStatus `json:"got"`
	Pass   bool      `json:"pass"`
}

// Report collects the cases of a bulk test in the order they ran: accept
// inputs first, then reject inputs.
type Report struct {
	Cases g.Slice[Case] `json:"cases"`
}

// BulkTest runs every input of tests and compares the outcome with the list
// it came from.
func BulkTest(a Automaton, tests Tests) Report {
	var r Report

	run := func(inputs g.Slice[g.String], expect RunStatus) {
		for _, input := range inputs {
			got := Reject
			if a.Accepts(input) {
				got = Accept
			}

			r.Cases.Push(Case{Input: input, Expect: expect, Got: got, Pass: got == expect})
		}
	}

	run(tests.Accept, Accept)
	run(tests.Reject, Reject)

	return r
}

// Passed returns the number of passing cases.
func (r Report) Passed() int {
	n := 0
	for _, c := range r.Cases {
		if c.Pass {
			n++
		}
	}

	return n
}

// Failed returns the failing cases.
func (r Report) Failed() g.Slice[Case] {
	var failed g.Slice[Case]
	for _, c := range r.Cases {
		if !c.Pass {
			failed.Push(c)
		}
	}

	return failed
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Passed() == len(r.Cases) }
