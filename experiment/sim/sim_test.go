package sim_test

import (
	"context"
	"testing"

	"github.com/qsymlab/qsym/circuit"
	"github.com/qsymlab/qsym/experiment/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prep builds a circuit that flips the listed qubits and measures every
// qubit into the clbit of the same index.
func prep(t *testing.T, qubits int, flips ...int) circuit.Circuit {
	t.Helper()
	c, err := circuit.New(qubits, qubits)
	require.NoError(t, err)
	for _, q := range flips {
		require.NoError(t, c.AddX(q))
	}
	for q := 0; q < qubits; q++ {
		require.NoError(t, c.AddMeasure(q, q))
	}

	return c
}

// TestExecute_NoiselessDeterministic verifies ideal readout reports the
// prepared state on every shot.
func TestExecute_NoiselessDeterministic(t *testing.T) {
	b := sim.Backend{Seed: 1}
	c := prep(t, 3, 0, 2)

	hists, err := b.Execute(context.Background(), []circuit.Circuit{c}, 50)
	require.NoError(t, err)
	require.Len(t, hists, 1)
	assert.Equal(t, uint64(50), hists[0]["101"])
	assert.Len(t, hists[0], 1)
}

// TestExecute_DoubleFlipCancels verifies X is a self-inverse flip, not a set.
func TestExecute_DoubleFlipCancels(t *testing.T) {
	b := sim.Backend{Seed: 1}
	c := prep(t, 1, 0, 0)

	hists, err := b.Execute(context.Background(), []circuit.Circuit{c}, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), hists[0]["0"])
}

// TestExecute_SeedReproducible verifies identical seeds give identical
// histograms even under noise.
func TestExecute_SeedReproducible(t *testing.T) {
	c := prep(t, 2, 1)
	batch := []circuit.Circuit{c, prep(t, 2)}

	a := sim.Backend{FlipUp: 0.3, FlipDown: 0.05, Seed: 77}
	b := sim.Backend{FlipUp: 0.3, FlipDown: 0.05, Seed: 77}

	ha, err := a.Execute(context.Background(), batch, 500)
	require.NoError(t, err)
	hb, err := b.Execute(context.Background(), batch, 500)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}

// TestExecute_AsymmetricRates verifies each direction of the channel
// independently: prepared 0 reads 1 at ~FlipUp, prepared 1 reads 0 at
// ~FlipDown.
func TestExecute_AsymmetricRates(t *testing.T) {
	const shots = 20000
	b := sim.Backend{FlipUp: 0.30, FlipDown: 0.05, Seed: 99}

	hists, err := b.Execute(context.Background(),
		[]circuit.Circuit{prep(t, 1), prep(t, 1, 0)}, shots)
	require.NoError(t, err)

	upRate := float64(hists[0]["1"]) / shots
	downRate := float64(hists[1]["0"]) / shots
	assert.InDelta(t, 0.30, upRate, 0.02, "0→1 rate")
	assert.InDelta(t, 0.05, downRate, 0.01, "1→0 rate")
}

// TestExecute_ConfigErrors covers the configuration taxonomy.
func TestExecute_ConfigErrors(t *testing.T) {
	c := prep(t, 1)

	_, err := sim.Backend{FlipUp: 1.5}.Execute(context.Background(), []circuit.Circuit{c}, 10)
	assert.ErrorIs(t, err, sim.ErrBadProbability)

	_, err = sim.Backend{FlipDown: -0.1}.Execute(context.Background(), []circuit.Circuit{c}, 10)
	assert.ErrorIs(t, err, sim.ErrBadProbability)

	_, err = sim.Backend{}.Execute(context.Background(), []circuit.Circuit{c}, 0)
	assert.ErrorIs(t, err, sim.ErrBadShots)
}

// TestExecute_ContextCancelled verifies cancellation between circuits.
func TestExecute_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Backend{}.Execute(ctx, []circuit.Circuit{prep(t, 1)}, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestExecute_Conservation verifies every shot lands in exactly one key.
func TestExecute_Conservation(t *testing.T) {
	b := sim.Backend{FlipUp: 0.2, FlipDown: 0.2, Seed: 5}
	hists, err := b.Execute(context.Background(), []circuit.Circuit{prep(t, 3, 1)}, 1234)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), hists[0].Total())
}
