package reconcile

import (
	"fmt"
	"sync"

	"github.com/qsymlab/qsym/bitvec"
)

// Reconcile merges the raw histograms of all variants into one combined
// histogram in the untwirled outcome space.
//
// For every (variant, histogram) pair and every (bitstring, count)
// entry: the bits at the variant's reserved classical positions are
// extracted in measured-qubit order, XORed against the variant's
// pattern, and count is accumulated under the resulting key.
//
// The call either fully succeeds or fails outright; inputs are never
// mutated. Returns ErrOptionViolation, ErrMissingMetadata,
// ErrBitWidthMismatch, a wrapped bitvec.ErrBadBit for malformed keys, or
// the context error when cancelled.
func Reconcile(pairs []Pair, opts ...Option) (Combined, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if o.Workers > 1 && len(pairs) > 1 {
		return reconcileParallel(pairs, o)
	}

	out := make(Combined)
	for i := range pairs {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		part, err := foldPair(pairs[i])
		if err != nil {
			return nil, err
		}
		out.add(part)
	}

	return out, nil
}

// foldPair untwirls one variant's histogram into a fresh partial result.
func foldPair(p Pair) (Combined, error) {
	v := p.Variant
	k := len(v.Clbits)
	switch {
	case k == 0:
		return nil, fmt.Errorf("%w: no reserved classical-bit positions", ErrMissingMetadata)
	case v.Pattern.Width() == 0:
		return nil, fmt.Errorf("%w: no bit-flip pattern", ErrMissingMetadata)
	case v.Pattern.Width() != k:
		return nil, fmt.Errorf("%w: pattern width %d vs %d reserved positions",
			ErrMissingMetadata, v.Pattern.Width(), k)
	}

	out := make(Combined, len(p.Counts))
	for key, count := range p.Counts {
		full, err := bitvec.FromString(key)
		if err != nil {
			return nil, fmt.Errorf("reconcile: outcome %q: %w", key, err)
		}
		raw, err := full.Select(v.Clbits)
		if err != nil {
			return nil, fmt.Errorf("%w: outcome %q (width %d) vs reserved positions %v",
				ErrBitWidthMismatch, key, full.Width(), v.Clbits)
		}
		untwirled, err := raw.XOR(v.Pattern)
		if err != nil {
			return nil, err
		}
		out[untwirled.String()] += count
	}

	return out, nil
}

// reconcileParallel splits pairs into contiguous chunks, folds each
// chunk on its own goroutine, and merges the partial histograms. Key
// addition commutes, so the result matches the sequential fold exactly.
func reconcileParallel(pairs []Pair, o Options) (Combined, error) {
	workers := o.Workers
	if workers > len(pairs) {
		workers = len(pairs)
	}

	partials := make([]Combined, workers)
	errs := make([]error, workers)

	chunk := (len(pairs) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(pairs) {
			hi = len(pairs)
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			local := make(Combined)
			for i := lo; i < hi; i++ {
				if err := o.Ctx.Err(); err != nil {
					errs[w] = err

					return
				}
				part, err := foldPair(pairs[i])
				if err != nil {
					errs[w] = err

					return
				}
				local.add(part)
			}
			partials[w] = local
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(Combined)
	for _, part := range partials {
		out.add(part)
	}

	return out, nil
}
