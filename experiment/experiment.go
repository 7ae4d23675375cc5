package experiment

import (
	"context"
	"errors"
	"fmt"

	"github.com/theapemachine/errnie"

	"github.com/qsymlab/qsym/circuit"
	"github.com/qsymlab/qsym/reconcile"
	"github.com/qsymlab/qsym/twirl"
)

// Sentinel errors for the experiment harness.
var (
	// ErrNilExperiment indicates Run was handed a nil experiment.
	ErrNilExperiment = errors.New("experiment: experiment is nil")

	// ErrNilExecutor indicates Run was handed a nil executor.
	ErrNilExecutor = errors.New("experiment: executor is nil")

	// ErrBadShots indicates a non-positive shot count.
	ErrBadShots = errors.New("experiment: shot count must be >= 1")

	// ErrResultCount indicates the backend returned a histogram count that
	// does not match the circuit count. Harness wiring bug; not retryable.
	ErrResultCount = errors.New("experiment: result count does not match circuit count")

	// ErrNotGenerated indicates Analyze was called before Circuits.
	ErrNotGenerated = errors.New("experiment: circuits not generated yet")
)

// Experiment is the capability contract a calling harness consumes:
// produce the circuits to run, then fold the raw results. Circuits must
// be called before Analyze.
type Experiment interface {
	// Circuits produces the variant circuit descriptions for one run.
	Circuits() ([]circuit.Circuit, error)

	// Analyze consumes the raw per-circuit histograms, in circuit order,
	// and produces the combined result.
	Analyze(results []reconcile.Histogram) (reconcile.Combined, error)
}

// Executor is the execution capability required from the environment.
// Implementations return exactly one histogram per circuit, in order.
type Executor interface {
	Execute(ctx context.Context, circuits []circuit.Circuit, shots int) ([]reconcile.Histogram, error)
}

// RandomizedMeasurement is the readout-symmetrization experiment: a
// data-driven configuration pairing twirl.Generate with
// reconcile.Reconcile. The zero value of Samples/Workers means "use the
// defaults"; set HasSeed for a reproducible run.
type RandomizedMeasurement struct {
	// Spec describes the base circuit and the qubits to randomize.
	Spec twirl.MeasurementSpec

	// Base is the circuit being conjugated; it is never mutated.
	Base circuit.Circuit

	// Samples overrides the spec's default sample count when > 0.
	Samples int

	// Seed is used when HasSeed is set; otherwise each run draws fresh
	// patterns.
	Seed    int64
	HasSeed bool

	// Workers > 1 reconciles in parallel.
	Workers int

	// variants generated by the last Circuits call; Analyze reads the
	// same records, which is the only state shared between the stages.
	variants []twirl.Variant
}

// Circuits generates the twirled variants and returns their circuit
// descriptions, in variant order.
func (e *RandomizedMeasurement) Circuits() ([]circuit.Circuit, error) {
	var opts []twirl.Option
	if e.Samples > 0 {
		opts = append(opts, twirl.WithSamples(e.Samples))
	}
	if e.HasSeed {
		opts = append(opts, twirl.WithSeed(e.Seed))
	}

	variants, err := twirl.Generate(e.Spec, e.Base, opts...)
	if err != nil {
		return nil, err
	}
	e.variants = variants

	circuits := make([]circuit.Circuit, len(variants))
	for i, v := range variants {
		circuits[i] = v.Circuit
	}

	return circuits, nil
}

// Variants exposes the generated variant records, e.g. for a harness
// that stores raw data alongside its twirl tags. Nil before Circuits.
func (e *RandomizedMeasurement) Variants() []twirl.Variant {
	out := make([]twirl.Variant, len(e.variants))
	copy(out, e.variants)

	return out
}

// Analyze pairs each raw histogram with its variant and reconciles them
// into the combined untwirled histogram.
func (e *RandomizedMeasurement) Analyze(results []reconcile.Histogram) (reconcile.Combined, error) {
	if e.variants == nil {
		return nil, ErrNotGenerated
	}
	if len(results) != len(e.variants) {
		return nil, fmt.Errorf("%w: %d histograms for %d variants",
			ErrResultCount, len(results), len(e.variants))
	}

	pairs := make([]reconcile.Pair, len(results))
	for i := range results {
		pairs[i] = reconcile.Pair{Variant: e.variants[i], Counts: results[i]}
	}

	var opts []reconcile.Option
	if e.Workers > 1 {
		opts = append(opts, reconcile.WithWorkers(e.Workers))
	}

	return reconcile.Reconcile(pairs, opts...)
}

// Run drives one full experiment: generate, execute, analyze. Backend
// errors are surfaced unchanged; no retry happens here.
func Run(ctx context.Context, exp Experiment, exec Executor, shots int) (reconcile.Combined, error) {
	if exp == nil {
		return nil, ErrNilExperiment
	}
	if exec == nil {
		return nil, ErrNilExecutor
	}
	if shots < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadShots, shots)
	}

	circuits, err := exp.Circuits()
	if err != nil {
		return nil, err
	}
	errnie.Info("experiment: generated %d variant circuits", len(circuits))

	results, err := exec.Execute(ctx, circuits, shots)
	if err != nil {
		// Opaque pass-through: retry policy belongs to the caller.
		return nil, err
	}
	errnie.Info("experiment: executed %d circuits at %d shots", len(circuits), shots)

	combined, err := exp.Analyze(results)
	if err != nil {
		return nil, err
	}
	errnie.Info("experiment: combined histogram holds %d counts over %d outcomes",
		combined.Total(), len(combined))

	return combined, nil
}
