// Package twirl defines the measurement spec, variant record, options,
// and sentinel errors for the circuit variant generator.
package twirl

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/qsymlab/qsym/bitvec"
	"github.com/qsymlab/qsym/circuit"
)

// Sentinel errors for variant generation.
var (
	// ErrInvalidSpec indicates a malformed MeasurementSpec or a spec that
	// does not match the base circuit. Caller bug; not retryable.
	ErrInvalidSpec = errors.New("twirl: invalid measurement spec")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("twirl: invalid option supplied")
)

// MaxDefaultExp caps the default sample count at 2^MaxDefaultExp so the
// 2^k heuristic stays usable for wide registers.
const MaxDefaultExp = 10

// MeasurementSpec describes the base circuit to be randomized. It is a
// plain value; Validate checks it, Generate never mutates it.
//
// Measured lists the qubit indices subject to randomization, in order:
// Measured[i] supplies bit i of every pattern, raw outcome, and combined
// histogram key.
type MeasurementSpec struct {
	// Qubits is the base circuit's qubit register size.
	Qubits int

	// Clbits is the number of classical bits the base circuit already uses.
	Clbits int

	// Measured are the randomized qubit indices, order-significant.
	Measured []int
}

// Validate reports ErrInvalidSpec (with detail) when the spec is
// malformed: empty measured list, negative register sizes, indices out
// of range, or duplicates.
func (s MeasurementSpec) Validate() error {
	if s.Qubits < 0 || s.Clbits < 0 {
		return fmt.Errorf("%w: negative register (qubits=%d clbits=%d)", ErrInvalidSpec, s.Qubits, s.Clbits)
	}
	if len(s.Measured) == 0 {
		return fmt.Errorf("%w: no measured qubits", ErrInvalidSpec)
	}
	seen := make(map[int]struct{}, len(s.Measured))
	for _, q := range s.Measured {
		if q < 0 || q >= s.Qubits {
			return fmt.Errorf("%w: measured qubit %d not in [0,%d)", ErrInvalidSpec, q, s.Qubits)
		}
		if _, dup := seen[q]; dup {
			return fmt.Errorf("%w: measured qubit %d duplicated", ErrInvalidSpec, q)
		}
		seen[q] = struct{}{}
	}

	return nil
}

// Width reports the number of measured qubits (the pattern width k).
func (s MeasurementSpec) Width() int { return len(s.Measured) }

// DefaultSamples reports the default sample count for this spec:
// 2^k, capped at 2^MaxDefaultExp.
func (s MeasurementSpec) DefaultSamples() int {
	k := len(s.Measured)
	if k > MaxDefaultExp {
		k = MaxDefaultExp
	}

	return 1 << k
}

// Variant is one generated circuit paired with everything needed to undo
// its randomization: the classical-bit positions its measurement wrote
// to (in measured-qubit order) and the exact bit-flip pattern applied.
// Created once by Generate, consumed once by reconcile; immutable after
// creation.
type Variant struct {
	// Circuit is the base circuit plus pattern flips plus measurements.
	Circuit circuit.Circuit

	// Clbits are the reserved classical-bit positions, contiguous,
	// disjoint from the base circuit's own bits, measured-qubit order.
	Clbits []int

	// Pattern is the applied bit-flip pattern; Pattern.Get(i) tells
	// whether measured qubit i was flipped before measurement.
	Pattern bitvec.Vector
}

// Option configures Generate via functional arguments. Invalid options
// are recorded and surfaced as ErrOptionViolation when Generate runs.
type Option func(*Options)

// Options holds the tunable generation parameters.
type Options struct {
	// Samples is the number of variants to generate; 0 means "use the
	// spec's DefaultSamples".
	Samples int

	// Seed seeds a private rand source when Rand is nil and HasSeed is set.
	Seed    int64
	HasSeed bool

	// Rand, when non-nil, is the randomness source; it wins over Seed.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the default policy: sample count
// from the spec, fresh time-seeded randomness.
func DefaultOptions() Options {
	return Options{}
}

// WithSamples sets an explicit variant count.
//
//	n >= 1: generate exactly n variants
//	n <= 0: invalid option → ErrOptionViolation
func WithSamples(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: sample count must be >= 1 (got %d)", ErrOptionViolation, n)

			return
		}
		o.Samples = n
	}
}

// WithSeed makes generation fully reproducible: the same seed yields
// bit-identical variants.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.HasSeed = true
	}
}

// WithRand supplies an external randomness source, e.g. one shared
// across several experiment stages. Overrides WithSeed. A nil rng is an
// invalid option.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)

			return
		}
		o.Rand = rng
	}
}
