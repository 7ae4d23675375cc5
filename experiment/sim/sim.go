package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/qsymlab/qsym/bitvec"
	"github.com/qsymlab/qsym/circuit"
	"github.com/qsymlab/qsym/reconcile"
)

// Sentinel errors for the simulated backend.
var (
	// ErrBadProbability indicates a flip probability outside [0,1].
	ErrBadProbability = errors.New("sim: flip probability must be in [0,1]")

	// ErrBadShots indicates a non-positive shot count.
	ErrBadShots = errors.New("sim: shot count must be >= 1")
)

// Backend executes circuits shot by shot with an asymmetric readout
// channel. It implements experiment.Executor. The zero value is a
// noiseless, time-nondeterministic backend; set Seed for reproducible
// runs.
type Backend struct {
	// FlipUp is P(read 1 | qubit in 0) — the 0→1 readout error rate.
	FlipUp float64

	// FlipDown is P(read 0 | qubit in 1) — the 1→0 readout error rate.
	FlipDown float64

	// Seed drives all readout randomness; the same seed reproduces the
	// same histograms for the same circuit batch.
	Seed int64
}

// Execute runs every circuit for the given shot count and returns one
// histogram per circuit, in order. Returns ErrBadProbability or
// ErrBadShots for bad configuration, circuit errors for unknown ops,
// and ctx.Err() when cancelled between circuits.
func (b Backend) Execute(ctx context.Context, circuits []circuit.Circuit, shots int) ([]reconcile.Histogram, error) {
	if b.FlipUp < 0 || b.FlipUp > 1 || b.FlipDown < 0 || b.FlipDown > 1 {
		return nil, fmt.Errorf("%w: up=%v down=%v", ErrBadProbability, b.FlipUp, b.FlipDown)
	}
	if shots < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadShots, shots)
	}

	rng := rand.New(rand.NewSource(b.Seed))
	out := make([]reconcile.Histogram, 0, len(circuits))
	for _, c := range circuits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hist, err := b.run(c, shots, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, hist)
	}

	return out, nil
}

// run executes one circuit for the full shot count.
func (b Backend) run(c circuit.Circuit, shots int, rng *rand.Rand) (reconcile.Histogram, error) {
	ops := c.Ops()
	hist := make(reconcile.Histogram)

	qubits := make([]bool, c.NumQubits)
	clbits := make([]bool, c.NumClbits)
	for s := 0; s < shots; s++ {
		for i := range qubits {
			qubits[i] = false
		}
		for i := range clbits {
			clbits[i] = false
		}

		for _, op := range ops {
			switch op.Kind {
			case circuit.OpX:
				qubits[op.Qubit] = !qubits[op.Qubit]
			case circuit.OpMeasure:
				clbits[op.Clbit] = b.read(qubits[op.Qubit], rng)
			default:
				return nil, fmt.Errorf("sim: unsupported op %s", op.Kind)
			}
		}

		hist[bitvec.FromBits(clbits).String()]++
	}

	return hist, nil
}

// read pushes one qubit state through the asymmetric readout channel.
func (b Backend) read(state bool, rng *rand.Rand) bool {
	if state {
		return rng.Float64() >= b.FlipDown
	}

	return rng.Float64() < b.FlipUp
}
