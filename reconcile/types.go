// Package reconcile defines the histogram types, options, and sentinel
// errors for the outcome reconciler.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/qsymlab/qsym/twirl"
)

// Sentinel errors for reconciliation.
var (
	// ErrMissingMetadata indicates a Variant without reserved classical-bit
	// positions or pattern, or with disagreeing widths. Harness wiring bug;
	// not retryable.
	ErrMissingMetadata = errors.New("reconcile: variant is missing twirl metadata")

	// ErrBitWidthMismatch indicates a histogram bitstring shorter than the
	// variant's reserved classical-bit range. Harness wiring bug; not retryable.
	ErrBitWidthMismatch = errors.New("reconcile: outcome bitstring too short for reserved range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reconcile: invalid option supplied")
)

// Histogram maps a full-width classical bitstring (backend key order,
// position 0 leftmost) to its observed count. Produced by execution, one
// per variant; reconciliation never mutates it.
type Histogram map[string]uint64

// Total sums all counts in h.
func (h Histogram) Total() uint64 {
	var n uint64
	for _, c := range h {
		n += c
	}

	return n
}

// Combined maps a k-wide untwirled outcome (measured-qubit order) to its
// accumulated count. The sole output artifact of reconciliation.
type Combined map[string]uint64

// Total sums all counts in c.
func (c Combined) Total() uint64 {
	var n uint64
	for _, v := range c {
		n += v
	}

	return n
}

// add merges other into c by key addition.
func (c Combined) add(other Combined) {
	for k, v := range other {
		c[k] += v
	}
}

// Pair couples one generated variant with the raw counts its execution
// produced.
type Pair struct {
	Variant twirl.Variant
	Counts  Histogram
}

// Option configures Reconcile via functional arguments. Invalid options
// are recorded and surfaced as ErrOptionViolation when Reconcile runs.
type Option func(*Options)

// Options holds the tunable reconciliation parameters.
type Options struct {
	// Ctx allows cancellation between pairs.
	Ctx context.Context

	// Workers is the number of goroutines folding pairs; <= 1 means
	// sequential.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// sequential fold.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// WithContext sets a custom context for cancellation; the context error
// passes through unchanged.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers folds pairs across n goroutines and merges the partial
// histograms. The fold is commutative, so the result is identical to a
// sequential run.
//
//	n > 1:  parallel fold with n workers
//	n <= 1: sequential (n == 0 and n == 1 are equivalent)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: worker count cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		if n == 0 {
			n = 1
		}
		o.Workers = n
	}
}
