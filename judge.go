package gavel

// Object is the system under test: a reaction function from one incoming
// event to an ordered slice of outgoing events.
//
// The driver invokes it with exactly one event per turn and expects it to
// run to completion before returning. An empty (or nil) result is a valid
// reaction meaning "silence this turn". Whatever internal state the object
// keeps lives inside the closure and is never visible to the harness.
//
// Objects have no error channel. A misbehaving object expresses itself by
// emitting reactions its judge will reject.
type Object[E any] func(event E) []E

// Judge owns a universe and evaluates one object's behavior within it.
//
// Next is called once per turn with the ordered reactions the object emitted
// on the previous turn. The very first call of a run receives an empty slice,
// before the object has been invoked at all; a judge uses that call to issue
// its opening challenge (or to halt immediately).
//
// Next returns either a judgment or an error. The judgment drives the
// protocol: continue with exactly one new challenge event, halt with a
// fault, or declare the run done. The error return is the judge's own
// failure channel - a broken simulation, not a verdict about the object -
// and aborts the run without an Outcome.
//
// A judge may be adversarial or randomized; the driver constrains only the
// shape of its answers, never how it decides them.
type Judge[E, F any] interface {
	Next(reactions []E) (Judgment[E, F], error)
}

// JudgeFunc adapts an ordinary function to the Judge interface, the same
// way http.HandlerFunc adapts handlers.
type JudgeFunc[E, F any] func(reactions []E) (Judgment[E, F], error)

// Next implements Judge by calling f.
func (f JudgeFunc[E, F]) Next(reactions []E) (Judgment[E, F], error) {
	return f(reactions)
}
