// Package bitvec provides fixed-width boolean vectors — the shared
// representation for twirl patterns, raw measurement outcomes, and
// histogram keys throughout qsym.
//
// What
//
//   - Vector: an immutable-by-convention boolean vector of fixed Width,
//     backed by packed uint64 words.
//   - Construction: New (all-zero), FromBits, FromString ("0101"),
//     Rand (one unbiased draw per position from a *rand.Rand).
//   - Operations: XOR (same-width, position-wise), Select (extract a
//     sub-vector at arbitrary positions, in the given order), WithBit,
//     Get, Equal, OnesCount, String.
//
// Bit order
//
//	One convention everywhere: index 0 is the first position and the
//	leftmost character of the string form. There is no reversal anywhere
//	in qsym — untwirling is a plain XOR in this order.
//
// Determinism
//
//	Rand consumes exactly width draws from the supplied source, so two
//	generators seeded identically produce identical vectors.
//
// Errors
//
//   - ErrBadWidth        — negative width requested.
//   - ErrBadBit          — a string form contains a rune other than '0'/'1'.
//   - ErrWidthMismatch   — XOR of vectors with different widths.
//   - ErrPositionRange   — Select position outside [0, Width).
//
// Get and WithBit panic on out-of-range indices, mirroring slice
// indexing; range errors on data that crosses an API boundary (parsed
// strings, caller-supplied position lists) are returned as errors.
package bitvec
