// Package qsym implements randomized-measurement readout symmetrization
// for quantum calibration experiments — generate twirled measurement
// circuits, run them on any backend, and fold the raw counts back into a
// single bias-symmetrized histogram.
//
// 🚀 What is qsym?
//
//	A small, deterministic toolkit built from five subpackages:
//		• bitvec/     — fixed-width boolean vectors: patterns, outcomes, XOR untwirling
//		• circuit/    — minimal circuit descriptions (X gates + measurements)
//		• twirl/      — the Circuit Variant Generator: one random bit-flip
//		                pattern per sample, reserved classical bits per variant
//		• reconcile/  — the Outcome Reconciler: XOR-untwirl raw counts and
//		                merge them into one combined histogram
//		• experiment/ — the Experiment/Executor contracts plus a Run harness
//		                and a simulated backend (experiment/sim)
//
// ✨ Why symmetrize readout?
//
//	Hardware readout error is rarely symmetric: P(1→0) and P(0→1) differ,
//	often by an unknown amount. Conjugating each measurement by an
//	independently random bit-flip pattern, then undoing the pattern in
//	classical post-processing, replaces the asymmetric pair with its
//	average — so downstream calibration never depends on the bias
//	direction.
//
// Data flows strictly generator → execution → reconciler. Both core
// operations are pure functions over immutable inputs: the same seed
// always reproduces the same variants, and reconciliation is a
// commutative fold that conserves every input count.
//
// See the examples/ directory for end-to-end scenarios.
package qsym
