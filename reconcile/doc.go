// Package reconcile folds the raw outcome histograms of all twirled
// variants back into one combined histogram in the original, untwirled
// outcome space.
//
// What
//
//   - Histogram: raw per-variant counts keyed by full-width classical
//     bitstrings, exactly as an execution backend reports them.
//   - Combined: the single output histogram, keyed by k-wide untwirled
//     outcomes in measured-qubit order.
//   - Reconcile: for every (Variant, Histogram) pair and every entry,
//     extract the bits at the variant's reserved positions, XOR them
//     against the variant's pattern, and accumulate the count under the
//     untwirled key.
//
// Untwirling is a plain position-wise XOR in one fixed bit order — never
// a string reversal or character-table substitution. Inputs are read
// only; Reconcile allocates a fresh Combined and retains no references
// to the supplied histograms.
//
// Invariants
//
//   - Conservation: Combined.Total() equals the sum of all input counts;
//     no loss, no duplication.
//   - Keys live in {0,1}^k; outcomes never observed are simply absent.
//   - The fold is commutative and associative, so WithWorkers(n) splits
//     pairs across n goroutines and merges partial histograms by key
//     addition — parallel and sequential runs agree exactly.
//
// All-or-nothing: the first malformed pair aborts the whole call; there
// is no partial success mode.
//
// Errors
//
//   - ErrMissingMetadata   — a variant has no reserved positions, no
//     pattern, or the two widths disagree (harness wiring bug).
//   - ErrBitWidthMismatch  — a histogram bitstring is too short for the
//     variant's reserved range.
//   - bitvec.ErrBadBit     — a histogram key contains a rune other than
//     '0'/'1' (surfaced wrapped).
//   - ErrOptionViolation   — invalid Option (e.g. negative worker count).
//   - Context errors from WithContext pass through unchanged.
package reconcile
