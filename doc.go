// Package gavel is a simulation-testing harness for cause-effect systems.
//
// A cause-effect system is anything that senses a change in its surroundings
// and reacts with changes of its own. gavel models one such system (the
// object) inhabiting a universe controlled by an adversarial or scripted
// referee (the judge). The two exchange typed events in strict alternation
// until the judge declares a verdict.
//
// The harness supplies exactly three things:
//
//   - the turn-taking protocol between judge and object,
//   - the driver loop ([Run] and [MustRun]) that sequences it, and
//   - the [Outcome] that records how the exchange ended.
//
// Everything else is yours to supply. The object is a plain function from
// one event to an ordered slice of reaction events; whatever state it keeps
// is hidden behind the closure. The judge is any implementation of [Judge]
// over the same event type: it owns the universe, decides whether each batch
// of reactions is acceptable, and either continues with the next challenge
// or halts with a verdict.
//
// Exactly one object inhabits a universe at a time. A judge never sees the
// object, only its reactions, and an object never sees the judge, only the
// events it is fed. Any judge can therefore test any object as long as the
// two agree on an event type; the agreement is checked by the compiler, not
// at run time.
//
// The driver is strictly single-threaded and synchronous. It never blocks on
// anything but the judge and object themselves, imposes no timeout, and has
// no built-in turn limit; use [WithMaxTurns] to bound pathological runs.
//
// The subpackages are optional tooling around the core: trace records the
// event exchange for golden-file comparison, and store archives finished
// runs in SQLite for the gavel CLI to inspect.
package gavel
