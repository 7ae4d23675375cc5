// Package experiment defines the two capability contracts at the edge of
// the readout-symmetrization core and the harness that glues them:
//
//   - Experiment: produce variant circuit descriptions, then consume the
//     raw per-circuit results. No inheritance hierarchy — a concrete
//     experiment is a data-driven configuration implementing these two
//     methods.
//   - Executor: the only capability required from the environment —
//     execute a batch of circuits for a shot count and return one outcome
//     histogram per circuit. How circuits are queued, submitted, or
//     retried is the backend's business; its errors pass through Run
//     unchanged, and the core never retries (re-running a randomized
//     measurement changes its statistical content — that call belongs to
//     the calling experiment).
//
// RandomizedMeasurement is the concrete experiment for this module: its
// Circuits() runs twirl.Generate, its Analyze() runs reconcile.Reconcile
// over the variants it remembered, so the per-circuit twirl tag flows
// from generator to reconciler without any shared state beyond the
// variant records themselves.
//
// All configuration is explicit struct fields; there is no ambient or
// global state. The simulated backend in experiment/sim makes the whole
// flow runnable and testable without hardware.
package experiment
