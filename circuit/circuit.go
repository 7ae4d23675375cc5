package circuit

import (
	"errors"
	"fmt"
)

// Sentinel errors for circuit construction.
var (
	// ErrBadRegister indicates a negative register size.
	ErrBadRegister = errors.New("circuit: register size must be non-negative")

	// ErrQubitRange indicates an operation references a qubit outside the register.
	ErrQubitRange = errors.New("circuit: qubit index out of range")

	// ErrClbitRange indicates a measurement writes outside the classical register.
	ErrClbitRange = errors.New("circuit: classical bit index out of range")
)

// OpKind discriminates the supported operations.
type OpKind int

const (
	// OpX is a single-qubit bit flip (X gate).
	OpX OpKind = iota
	// OpMeasure measures one qubit into one classical bit.
	OpMeasure
)

// String renders the op kind for diagnostics.
func (k OpKind) String() string {
	switch k {
	case OpX:
		return "X"
	case OpMeasure:
		return "MEASURE"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one operation in a circuit's timeline. Clbit is meaningful only
// for OpMeasure and is -1 for gates.
type Op struct {
	Kind  OpKind
	Qubit int
	Clbit int
}

// Circuit describes a quantum circuit as an ordered operation list over
// a qubit register of size NumQubits and a classical register of size
// NumClbits. Execution semantics: ops apply in slice order, one pass per
// shot.
type Circuit struct {
	NumQubits int
	NumClbits int
	ops       []Op
}

// New returns an empty circuit with the given register sizes.
// Returns ErrBadRegister when either size is negative.
func New(numQubits, numClbits int) (Circuit, error) {
	if numQubits < 0 || numClbits < 0 {
		return Circuit{}, fmt.Errorf("%w: qubits=%d clbits=%d", ErrBadRegister, numQubits, numClbits)
	}

	return Circuit{NumQubits: numQubits, NumClbits: numClbits}, nil
}

// AddX appends a bit flip on qubit q.
// Returns ErrQubitRange when q is outside the register.
func (c *Circuit) AddX(q int) error {
	if q < 0 || q >= c.NumQubits {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrQubitRange, q, c.NumQubits)
	}
	c.ops = append(c.ops, Op{Kind: OpX, Qubit: q, Clbit: -1})

	return nil
}

// AddMeasure appends a measurement of qubit q into classical bit cl.
// Returns ErrQubitRange or ErrClbitRange for out-of-range indices.
func (c *Circuit) AddMeasure(q, cl int) error {
	if q < 0 || q >= c.NumQubits {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrQubitRange, q, c.NumQubits)
	}
	if cl < 0 || cl >= c.NumClbits {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrClbitRange, cl, c.NumClbits)
	}
	c.ops = append(c.ops, Op{Kind: OpMeasure, Qubit: q, Clbit: cl})

	return nil
}

// GrowClbits extends the classical register to at least n bits.
// Shrinking is not supported; smaller n is a no-op.
func (c *Circuit) GrowClbits(n int) {
	if n > c.NumClbits {
		c.NumClbits = n
	}
}

// Ops returns the operation timeline. The returned slice is a copy, so
// callers cannot perturb the circuit through it.
func (c Circuit) Ops() []Op {
	out := make([]Op, len(c.ops))
	copy(out, c.ops)

	return out
}

// Len reports the number of operations.
func (c Circuit) Len() int { return len(c.ops) }

// Clone returns an independent deep copy of c.
func (c Circuit) Clone() Circuit {
	out := Circuit{NumQubits: c.NumQubits, NumClbits: c.NumClbits}
	out.ops = make([]Op, len(c.ops))
	copy(out.ops, c.ops)

	return out
}

// String renders a compact single-line form, e.g. "q3/c2: X(0) M(0->1)".
func (c Circuit) String() string {
	s := fmt.Sprintf("q%d/c%d:", c.NumQubits, c.NumClbits)
	for _, op := range c.ops {
		switch op.Kind {
		case OpMeasure:
			s += fmt.Sprintf(" M(%d->%d)", op.Qubit, op.Clbit)
		default:
			s += fmt.Sprintf(" %s(%d)", op.Kind, op.Qubit)
		}
	}

	return s
}
