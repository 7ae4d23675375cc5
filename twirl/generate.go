package twirl

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/qsymlab/qsym/bitvec"
	"github.com/qsymlab/qsym/circuit"
)

// Generate produces the variant circuits for one randomized-measurement
// run: for each sample it draws one unbiased boolean per measured qubit,
// clones the base circuit, applies an X gate wherever the pattern is
// set, and measures every measured qubit into the reserved classical-bit
// block.
//
// The base circuit's registers must match the spec exactly; Generate
// never mutates base. With WithSeed, two calls return bit-identical
// variants.
//
// Returns ErrOptionViolation for bad options and ErrInvalidSpec for a
// malformed spec or a spec/base mismatch.
func Generate(spec MeasurementSpec, base circuit.Circuit, opts ...Option) ([]Variant, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if base.NumQubits != spec.Qubits || base.NumClbits != spec.Clbits {
		return nil, fmt.Errorf("%w: base circuit is q%d/c%d, spec says q%d/c%d",
			ErrInvalidSpec, base.NumQubits, base.NumClbits, spec.Qubits, spec.Clbits)
	}

	samples := o.Samples
	if samples == 0 {
		samples = spec.DefaultSamples()
	}
	rng := o.rng()

	k := spec.Width()
	// Reserved block: immediately after the base register, contiguous,
	// measured-qubit order.
	reserved := make([]int, k)
	for i := range reserved {
		reserved[i] = spec.Clbits + i
	}

	variants := make([]Variant, 0, samples)
	for s := 0; s < samples; s++ {
		pattern, err := bitvec.Rand(k, rng)
		if err != nil {
			return nil, err
		}

		c := base.Clone()
		c.GrowClbits(spec.Clbits + k)
		for i, q := range spec.Measured {
			if !pattern.Get(i) {
				continue
			}
			if err = c.AddX(q); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
			}
		}
		for i, q := range spec.Measured {
			if err = c.AddMeasure(q, reserved[i]); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
			}
		}

		clbits := make([]int, k)
		copy(clbits, reserved)
		variants = append(variants, Variant{Circuit: c, Clbits: clbits, Pattern: pattern})
	}

	return variants, nil
}

// rng resolves the randomness source: explicit Rand, then Seed, then a
// fresh time-seeded source.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	if o.HasSeed {
		return rand.New(rand.NewSource(o.Seed))
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
