package reconcile_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/qsymlab/qsym/bitvec"
	"github.com/qsymlab/qsym/circuit"
	"github.com/qsymlab/qsym/reconcile"
	"github.com/qsymlab/qsym/twirl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// variant builds a bare variant record; reconciliation never looks at
// the circuit, only at the metadata.
func variant(clbits []int, pattern ...bool) twirl.Variant {
	return twirl.Variant{Clbits: clbits, Pattern: bitvec.FromBits(pattern)}
}

// TestReconcile_UntwirlFlipsPatternedBit pins the core XOR semantics:
// pattern [true,false] on outcome "10" yields "00" — flip only position 0.
func TestReconcile_UntwirlFlipsPatternedBit(t *testing.T) {
	pairs := []reconcile.Pair{{
		Variant: variant([]int{0, 1}, true, false),
		Counts:  reconcile.Histogram{"10": 5},
	}}

	combined, err := reconcile.Reconcile(pairs)
	require.NoError(t, err)
	assert.Equal(t, reconcile.Combined{"00": 5}, combined)
}

// TestReconcile_IdentityPattern verifies an all-false pattern leaves
// outcomes untouched.
func TestReconcile_IdentityPattern(t *testing.T) {
	pairs := []reconcile.Pair{{
		Variant: variant([]int{0, 1, 2}, false, false, false),
		Counts:  reconcile.Histogram{"101": 7, "010": 3},
	}}

	combined, err := reconcile.Reconcile(pairs)
	require.NoError(t, err)
	assert.Equal(t, reconcile.Combined{"101": 7, "010": 3}, combined)
}

// TestReconcile_ReservedBlockExtraction verifies the reserved positions
// are read out of a wider register in measured-qubit order before
// untwirling.
func TestReconcile_ReservedBlockExtraction(t *testing.T) {
	// Register: 2 pre-existing bits + reserved block at positions 2,3.
	// Outcome "1101": reserved bits are "01"; pattern flips position 1 → "00".
	pairs := []reconcile.Pair{{
		Variant: variant([]int{2, 3}, false, true),
		Counts:  reconcile.Histogram{"1101": 4},
	}}

	combined, err := reconcile.Reconcile(pairs)
	require.NoError(t, err)
	assert.Equal(t, reconcile.Combined{"00": 4}, combined)
}

// TestReconcile_Conservation verifies the total count is preserved
// across many variants, including colliding untwirled keys.
func TestReconcile_Conservation(t *testing.T) {
	pairs := []reconcile.Pair{
		{Variant: variant([]int{0, 1}, true, true), Counts: reconcile.Histogram{"00": 10, "11": 2}},
		{Variant: variant([]int{0, 1}, false, true), Counts: reconcile.Histogram{"01": 5}},
		{Variant: variant([]int{0, 1}, true, false), Counts: reconcile.Histogram{"10": 1, "01": 9}},
	}
	var want uint64
	for _, p := range pairs {
		want += p.Counts.Total()
	}

	combined, err := reconcile.Reconcile(pairs)
	require.NoError(t, err)
	assert.Equal(t, want, combined.Total(), "no loss, no duplication")
	// Pair 1: "00"→"11", "11"→"00"; pair 2: "01"→"00"; pair 3: "10"→"00", "01"→"11".
	assert.Equal(t, reconcile.Combined{"11": 19, "00": 8}, combined)
}

// TestReconcile_MissingMetadata covers the wiring-bug taxonomy.
func TestReconcile_MissingMetadata(t *testing.T) {
	cases := []struct {
		name string
		v    twirl.Variant
	}{
		{"no reserved positions", variant(nil, true)},
		{"no pattern", twirl.Variant{Clbits: []int{0}}},
		{"width disagreement", variant([]int{0, 1}, true)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reconcile.Reconcile([]reconcile.Pair{{
				Variant: tc.v,
				Counts:  reconcile.Histogram{"0": 1},
			}})
			assert.ErrorIs(t, err, reconcile.ErrMissingMetadata)
		})
	}
}

// TestReconcile_BitWidthMismatch verifies short bitstrings are rejected.
func TestReconcile_BitWidthMismatch(t *testing.T) {
	pairs := []reconcile.Pair{{
		Variant: variant([]int{2, 3}, false, false),
		Counts:  reconcile.Histogram{"110": 1}, // width 3, reserved range needs 4
	}}

	_, err := reconcile.Reconcile(pairs)
	assert.ErrorIs(t, err, reconcile.ErrBitWidthMismatch)
}

// TestReconcile_BadOutcomeKey verifies non-binary keys surface the
// wrapped bitvec parse error.
func TestReconcile_BadOutcomeKey(t *testing.T) {
	pairs := []reconcile.Pair{{
		Variant: variant([]int{0}, true),
		Counts:  reconcile.Histogram{"2": 1},
	}}

	_, err := reconcile.Reconcile(pairs)
	assert.ErrorIs(t, err, bitvec.ErrBadBit)
}

// TestReconcile_AllOrNothing verifies one malformed pair fails the whole
// call even when other pairs are fine.
func TestReconcile_AllOrNothing(t *testing.T) {
	pairs := []reconcile.Pair{
		{Variant: variant([]int{0}, false), Counts: reconcile.Histogram{"0": 3}},
		{Variant: variant(nil, false), Counts: reconcile.Histogram{"0": 1}},
	}

	combined, err := reconcile.Reconcile(pairs)
	assert.ErrorIs(t, err, reconcile.ErrMissingMetadata)
	assert.Nil(t, combined, "no partial success mode")
}

// TestReconcile_InputsNeverMutated verifies histograms are read-only to
// the fold.
func TestReconcile_InputsNeverMutated(t *testing.T) {
	counts := reconcile.Histogram{"10": 5, "01": 2}
	pairs := []reconcile.Pair{{Variant: variant([]int{0, 1}, true, true), Counts: counts}}

	_, err := reconcile.Reconcile(pairs)
	require.NoError(t, err)
	assert.Equal(t, reconcile.Histogram{"10": 5, "01": 2}, counts)
}

// TestReconcile_ParallelMatchesSequential verifies WithWorkers changes
// nothing but the schedule.
func TestReconcile_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	var pairs []reconcile.Pair
	for i := 0; i < 100; i++ {
		pattern, err := bitvec.Rand(3, rng)
		require.NoError(t, err)
		counts := reconcile.Histogram{}
		for j := 0; j < 8; j++ {
			outcome, err := bitvec.Rand(3, rng)
			require.NoError(t, err)
			counts[outcome.String()] += uint64(rng.Intn(50) + 1)
		}
		pairs = append(pairs, reconcile.Pair{
			Variant: twirl.Variant{Clbits: []int{0, 1, 2}, Pattern: pattern},
			Counts:  counts,
		})
	}

	seq, err := reconcile.Reconcile(pairs)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 13} {
		par, err := reconcile.Reconcile(pairs, reconcile.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, seq, par, "workers=%d", workers)
	}
}

// TestReconcile_ParallelSurfacesErrors verifies a wiring bug is caught
// no matter which worker hits it.
func TestReconcile_ParallelSurfacesErrors(t *testing.T) {
	var pairs []reconcile.Pair
	for i := 0; i < 20; i++ {
		pairs = append(pairs, reconcile.Pair{
			Variant: variant([]int{0}, false),
			Counts:  reconcile.Histogram{"0": 1},
		})
	}
	pairs[17].Variant = variant(nil, false)

	_, err := reconcile.Reconcile(pairs, reconcile.WithWorkers(4))
	assert.ErrorIs(t, err, reconcile.ErrMissingMetadata)
}

// TestReconcile_ContextCancelled verifies the context error passes
// through unchanged.
func TestReconcile_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pairs := []reconcile.Pair{{Variant: variant([]int{0}, false), Counts: reconcile.Histogram{"0": 1}}}

	_, err := reconcile.Reconcile(pairs, reconcile.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = reconcile.Reconcile(pairs, reconcile.WithContext(ctx), reconcile.WithWorkers(4))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestReconcile_OptionViolation verifies negative worker counts error.
func TestReconcile_OptionViolation(t *testing.T) {
	_, err := reconcile.Reconcile(nil, reconcile.WithWorkers(-1))
	assert.ErrorIs(t, err, reconcile.ErrOptionViolation)
}

// TestReconcile_EmptyInput verifies zero pairs yield an empty histogram.
func TestReconcile_EmptyInput(t *testing.T) {
	combined, err := reconcile.Reconcile(nil)
	require.NoError(t, err)
	assert.Empty(t, combined)
	assert.Equal(t, uint64(0), combined.Total())
}

// TestReconcile_GeneratedVariantsRoundTrip wires the real generator in:
// feeding each variant the histogram a noiseless backend would produce
// for the all-zero state must recover the all-zero outcome every time.
func TestReconcile_GeneratedVariantsRoundTrip(t *testing.T) {
	spec := twirl.MeasurementSpec{Qubits: 3, Clbits: 1, Measured: []int{2, 0}}
	base, err := circuit.New(spec.Qubits, spec.Clbits)
	require.NoError(t, err)

	variants, err := twirl.Generate(spec, base, twirl.WithSeed(31), twirl.WithSamples(32))
	require.NoError(t, err)

	var pairs []reconcile.Pair
	const shots = 100
	for _, v := range variants {
		// Noiseless readout of |00...0⟩: each reserved bit reports the
		// pattern bit itself; bits outside the reserved block stay 0.
		full := make([]bool, v.Circuit.NumClbits)
		for i, cl := range v.Clbits {
			full[cl] = v.Pattern.Get(i)
		}
		pairs = append(pairs, reconcile.Pair{
			Variant: v,
			Counts:  reconcile.Histogram{bitvec.FromBits(full).String(): shots},
		})
	}

	combined, err := reconcile.Reconcile(pairs)
	require.NoError(t, err)
	assert.Equal(t, reconcile.Combined{"00": uint64(shots * len(variants))}, combined)
}
