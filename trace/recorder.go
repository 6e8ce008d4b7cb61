package trace

// Recorder accumulates events during a run.
//
// The driver owns the recorder and is strictly single-threaded, so the
// recorder holds no lock: seq stamping is a plain counter, which keeps the
// recorded order exactly the exchange order.
type Recorder struct {
	runID  string
	name   string
	seq    int64
	events []Event
}

// NewRecorder creates a recorder for the given run ID.
func NewRecorder(runID string) *Recorder {
	return &Recorder{runID: runID}
}

// SetName labels the eventual trace. Optional.
func (r *Recorder) SetName(name string) {
	r.name = name
}

// Challenge records an event the judge fed to the object on the given turn.
func (r *Recorder) Challenge(turn int, payload string) {
	r.append(turn, KindChallenge, payload)
}

// Reaction records an event the object emitted on the given turn.
// Call it once per emitted event, in emission order.
func (r *Recorder) Reaction(turn int, payload string) {
	r.append(turn, KindReaction, payload)
}

func (r *Recorder) append(turn int, kind Kind, payload string) {
	r.seq++
	r.events = append(r.events, Event{
		Seq:     r.seq,
		Turn:    turn,
		Kind:    kind,
		Payload: normalize(payload),
	})
}

// Len returns the number of events recorded so far.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Snapshot returns the trace recorded so far. The returned trace owns its
// own event slice; recording further events does not mutate it.
func (r *Recorder) Snapshot() *Trace {
	events := make([]Event, len(r.events))
	copy(events, r.events)
	return &Trace{
		RunID:  r.runID,
		Name:   r.name,
		Events: events,
	}
}
