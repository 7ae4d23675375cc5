// Package twirl generates randomized-measurement circuit variants: each
// variant is the base circuit plus an independently random bit-flip
// pattern on the measured qubits, followed by measurement of those
// qubits into a reserved, disjoint block of classical bits.
//
// What
//
//   - MeasurementSpec: qubit/classical register sizes plus the ordered
//     list of measured qubits. The order defines the bit-to-position
//     correspondence used everywhere downstream.
//   - Variant: one generated circuit together with the exact pattern
//     applied and the classical-bit positions it wrote to — a structured
//     record, so the reconciler never digs through metadata maps.
//   - Generate: draws one unbiased boolean per measured qubit per sample
//     (patterns are independent across samples, sampled with replacement
//     from the full pattern space) and assembles the variant circuits.
//
// Reserved classical bits
//
//	The measurement block starts immediately after the base circuit's own
//	classical register: positions Clbits .. Clbits+k-1, contiguous, in
//	measured-qubit order. It never overlaps pre-existing bits.
//
// Determinism
//
//	Generate consumes randomness only from its configured source. Two
//	calls with the same seed produce bit-identical variants: same
//	patterns, same reserved-bit layout, same op order.
//
// Defaults
//
//	The sample count defaults to 2^k for k measured qubits (capped at
//	2^10) — a heuristic so that, in the limit, each pattern is drawn
//	roughly once. Any explicit count ≥ 1 is equally valid; nothing
//	downstream assumes exhaustive pattern coverage.
//
// Errors
//
//   - ErrInvalidSpec     — measured qubits empty, duplicated, out of range,
//     or the spec does not match the base circuit's registers.
//   - ErrOptionViolation — invalid Option (e.g. WithSamples(0)).
//
// Usage
//
//	spec := twirl.MeasurementSpec{Qubits: 2, Clbits: 0, Measured: []int{0, 1}}
//	base, _ := circuit.New(2, 0)
//	variants, err := twirl.Generate(spec, base,
//	    twirl.WithSamples(16),
//	    twirl.WithSeed(42),
//	)
package twirl
