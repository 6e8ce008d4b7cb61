package gavel

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/gavel/trace"
)

// runConfig collects the knobs a run can be started with.
// Event-type independent so the same options apply to any Run instantiation.
type runConfig struct {
	maxTurns int
	logger   *slog.Logger
	record   bool
	runID    string
	format   func(any) string
}

// RunOption configures a single call to Run or MustRun.
type RunOption func(*runConfig)

// WithMaxTurns bounds the number of turns a run may execute. When the judge
// asks to continue past the bound, Run aborts with a *TurnLimitError.
//
// There is no default bound: a judge that never halts produces an unbounded
// run, and deciding whether that is acceptable belongs to the caller.
// n <= 0 means unbounded.
func WithMaxTurns(n int) RunOption {
	return func(c *runConfig) { c.maxTurns = n }
}

// WithLogger sets the structured logger for per-turn diagnostics.
// The default discards everything.
func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTrace records the full event exchange and attaches it to the
// Outcome's Trace field.
func WithTrace() RunOption {
	return func(c *runConfig) { c.record = true }
}

// WithRunID fixes the run identifier, making recorded traces byte-identical
// across runs of the same deterministic judge/object pair. The default is a
// fresh UUIDv7 per run.
func WithRunID(id string) RunOption {
	return func(c *runConfig) { c.runID = id }
}

// WithEventFormat sets how opaque events are rendered into trace payloads.
// The default is fmt.Sprint.
func WithEventFormat(f func(any) string) RunOption {
	return func(c *runConfig) {
		if f != nil {
			c.format = f
		}
	}
}

func newRunConfig(opts []RunOption) runConfig {
	cfg := runConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		format: func(v any) string { return fmt.Sprint(v) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.runID == "" {
		cfg.runID = uuid.Must(uuid.NewV7()).String()
	}
	return cfg
}

// Run drives a judge and an object against each other until the judge
// halts, and returns the Outcome.
//
// The exchange is strictly alternating and synchronous. Each iteration:
//
//  1. The judge's Next is invoked with the reactions from the previous turn
//     (an empty slice on the very first call - the seed).
//  2. On Continue, the object is invoked with the challenge event and its
//     ordered reactions are captured verbatim for the next iteration.
//  3. On Halt or Done, the run ends and the Outcome is built.
//
// Both judge and object are consumed by the run: their state is mutated
// destructively across turns, so neither should be reused afterwards.
//
// Run itself never fails. A failing test is an Outcome whose judgment is
// KindHalt; the error return is reserved for the judge's own internal
// errors and for the WithMaxTurns bound.
func Run[E, F any](judge Judge[E, F], object Object[E], opts ...RunOption) (Outcome[E, F], error) {
	cfg := newRunConfig(opts)

	var rec *trace.Recorder
	if cfg.record {
		rec = trace.NewRecorder(cfg.runID)
	}

	var reactions []E
	turns := 0
	for {
		judgment, err := judge.Next(reactions)
		if err != nil {
			cfg.logger.Error("judge error",
				"run_id", cfg.runID,
				"turn", turns,
				"error", err,
			)
			return Outcome[E, F]{}, err
		}

		if judgment.Kind != KindContinue {
			cfg.logger.Info("run halted",
				"run_id", cfg.runID,
				"turns", turns,
				"judgment", judgment.Kind.String(),
			)
			out := Outcome[E, F]{Judgment: judgment, Turns: turns}
			if rec != nil {
				out.Trace = rec.Snapshot()
			}
			return out, nil
		}

		if cfg.maxTurns > 0 && turns >= cfg.maxTurns {
			return Outcome[E, F]{}, &TurnLimitError{
				RunID: cfg.runID,
				Turns: turns,
				Limit: cfg.maxTurns,
			}
		}

		if rec != nil {
			rec.Challenge(turns, cfg.format(judgment.Next))
		}
		reactions = object(judgment.Next)
		if rec != nil {
			for _, r := range reactions {
				rec.Reaction(turns, cfg.format(r))
			}
		}
		cfg.logger.Debug("turn completed",
			"run_id", cfg.runID,
			"turn", turns,
			"reactions", len(reactions),
		)
		turns++
	}
}

// MustRun is Run for tests that want a loud failure: it returns the turn
// count on a pass and panics otherwise, naming whether the object, the
// judge's protocol, or the judge's own simulation was at fault.
func MustRun[E, F any](judge Judge[E, F], object Object[E], opts ...RunOption) int {
	out, err := Run(judge, object, opts...)
	if err != nil {
		panic(fmt.Sprintf("gavel: judge failed (internal error): %v", err))
	}
	switch out.Judgment.Kind {
	case KindDone:
		return out.Turns
	case KindHalt:
		panic(fmt.Sprintf("gavel: object fault (turns: %d): %v", out.Turns, out.Judgment.Fault))
	default:
		// Run never surfaces KindContinue, but a judge that hands back the
		// zero Judgment lands here too.
		panic(fmt.Sprintf("gavel: judge fault (turns: %d): judge stopped without a verdict", out.Turns))
	}
}
