package gavel

import "fmt"

// Kind discriminates the three possible judgments.
type Kind int

const (
	// KindContinue means the reactions were acceptable and the run proceeds
	// with the judgment's next challenge event.
	KindContinue Kind = iota + 1
	// KindHalt means the reactions were unacceptable; the judgment's fault
	// explains why.
	KindHalt
	// KindDone means the reactions were acceptable and the judge is
	// satisfied. This is the only kind a passing run ends with.
	KindDone
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindContinue:
		return "continue"
	case KindHalt:
		return "halt"
	case KindDone:
		return "done"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Judgment is a judge's decision about the object's most recent batch of
// reactions: continue with a new challenge, halt with a fault, or declare
// the test passed.
//
// E is the event type shared by judge and object for the run; F is the
// judge's fault diagnostic type. The zero Judgment is invalid; build values
// with [Continue], [Halt], or [Done], or with a composite literal when the
// explicitness helps a test.
//
// Judgments are plain values: when E and F are comparable, so is Judgment,
// which makes assertions on outcomes direct.
type Judgment[E, F any] struct {
	// Kind selects which of the remaining fields is meaningful.
	Kind Kind

	// Next is the challenge event to feed the object on the following turn.
	// Meaningful only when Kind is KindContinue.
	Next E

	// Fault explains why the reactions were unacceptable.
	// Meaningful only when Kind is KindHalt.
	Fault F
}

// Continue builds a judgment that accepts the reactions and supplies the
// next challenge event.
func Continue[E, F any](next E) Judgment[E, F] {
	return Judgment[E, F]{Kind: KindContinue, Next: next}
}

// Halt builds a judgment that rejects the reactions with the given fault.
func Halt[E, F any](fault F) Judgment[E, F] {
	return Judgment[E, F]{Kind: KindHalt, Fault: fault}
}

// Done builds a judgment that ends the run successfully.
func Done[E, F any]() Judgment[E, F] {
	return Judgment[E, F]{Kind: KindDone}
}
