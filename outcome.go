package gavel

import "github.com/roach88/gavel/trace"

// Outcome is the final, immutable record of a run.
type Outcome[E, F any] struct {
	// Judgment is the terminal judgment the judge returned. KindDone means
	// the object passed; KindHalt carries the judge's fault diagnostic.
	Judgment Judgment[E, F]

	// Turns is the number of completed turns - object invocations followed
	// by judge evaluation - before the judge halted. A judge that rejects
	// the seed call outright yields Turns == 0.
	//
	// Check this even on a pass: a suspiciously low count usually means the
	// judge gave up before exercising the object.
	Turns int

	// Trace holds the recorded event exchange when the run was started with
	// WithTrace, nil otherwise.
	Trace *trace.Trace
}

// Passed reports whether the judge ended the run satisfied.
func (o Outcome[E, F]) Passed() bool {
	return o.Judgment.Kind == KindDone
}
