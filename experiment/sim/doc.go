// Package sim provides a deterministic simulated execution backend for
// the restricted circuit vocabulary (X gates and measurements), with an
// optional asymmetric readout bit-flip channel.
//
// The backend exists so the symmetrization property is observable end to
// end without hardware: configure FlipUp = P(read 1 | qubit 0) and
// FlipDown = P(read 0 | qubit 1), run a twirled experiment, and watch
// the combined histogram's per-bit flip rate converge to the average
// (FlipUp+FlipDown)/2 in both directions.
//
// Execution is shot-by-shot: qubits start in |0⟩, X flips a qubit
// deterministically, measurement copies the qubit state through the
// readout channel into its classical bit. All randomness comes from the
// configured seed, so runs are reproducible.
package sim
