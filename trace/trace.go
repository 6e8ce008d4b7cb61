// Package trace records the event exchange of a run as an ordered, typed
// trace suitable for golden-file comparison and later inspection.
//
// Events in a trace are stamped with a strictly increasing seq from a
// monotonic logical clock, never with wall-clock time. Two runs of the same
// deterministic judge/object pair with the same run ID therefore produce
// byte-identical snapshots.
package trace

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Kind distinguishes the two directions an event can travel.
type Kind string

const (
	// KindChallenge is an event the judge fed to the object.
	KindChallenge Kind = "challenge"
	// KindReaction is an event the object emitted back.
	KindReaction Kind = "reaction"
)

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k == KindChallenge || k == KindReaction
}

// Event is a single hop across the turn boundary.
type Event struct {
	// Seq is the event's position in the run's total order, starting at 1.
	Seq int64 `yaml:"seq" json:"seq"`

	// Turn is the zero-based turn the event belongs to. One turn holds one
	// challenge followed by zero or more reactions.
	Turn int `yaml:"turn" json:"turn"`

	// Kind says which side produced the event.
	Kind Kind `yaml:"kind" json:"kind"`

	// Payload is the rendered event value. Opaque to the harness; it exists
	// only so humans and golden files can see what was exchanged.
	Payload string `yaml:"payload" json:"payload"`
}

// Trace is the complete recorded exchange of one run.
type Trace struct {
	// RunID identifies the run that produced this trace.
	RunID string `yaml:"run_id" json:"run_id"`

	// Name optionally labels the trace (a scenario or test name).
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Events holds every recorded event in exchange order.
	Events []Event `yaml:"events" json:"events"`
}

// Validate checks the structural invariants of a trace: a run ID, valid
// event kinds, seq numbers strictly increasing from 1, and turn numbers
// that never decrease.
func (t *Trace) Validate() error {
	if t.RunID == "" {
		return fmt.Errorf("run_id is required")
	}
	var lastSeq int64
	lastTurn := -1
	for i, ev := range t.Events {
		if !ev.Kind.Valid() {
			return fmt.Errorf("events[%d]: unknown kind %q", i, ev.Kind)
		}
		if ev.Seq != lastSeq+1 {
			return fmt.Errorf("events[%d]: seq %d breaks the total order (want %d)", i, ev.Seq, lastSeq+1)
		}
		if ev.Turn < lastTurn {
			return fmt.Errorf("events[%d]: turn %d precedes turn %d", i, ev.Turn, lastTurn)
		}
		lastSeq = ev.Seq
		lastTurn = ev.Turn
	}
	return nil
}

// normalize returns the payload in Unicode NFC form so that snapshots of
// the same logical string are byte-identical regardless of how the caller's
// formatter composed it.
func normalize(payload string) string {
	return norm.NFC.String(payload)
}
