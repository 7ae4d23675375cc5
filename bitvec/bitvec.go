package bitvec

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"
	"strings"
)

// Sentinel errors for vector construction and combination.
var (
	// ErrBadWidth indicates a negative width was requested.
	ErrBadWidth = errors.New("bitvec: width must be non-negative")

	// ErrBadBit indicates a string form contained a rune other than '0' or '1'.
	ErrBadBit = errors.New("bitvec: bitstring may contain only '0' and '1'")

	// ErrWidthMismatch indicates a position-wise operation over vectors of different widths.
	ErrWidthMismatch = errors.New("bitvec: vector widths differ")

	// ErrPositionRange indicates a Select position outside [0, Width).
	ErrPositionRange = errors.New("bitvec: position out of range")
)

const wordBits = 64

// Vector is a fixed-width boolean vector packed into uint64 words.
// Index 0 is the first position and the leftmost character of String().
// The zero value is the empty (width-0) vector.
//
// Vector is immutable by convention: all operations return fresh vectors
// and never alias the receiver's storage.
type Vector struct {
	width int
	words []uint64
}

// New returns an all-zero vector of the given width.
// Returns ErrBadWidth if width is negative.
func New(width int) (Vector, error) {
	if width < 0 {
		return Vector{}, fmt.Errorf("%w: %d", ErrBadWidth, width)
	}

	return zero(width), nil
}

// FromBits builds a vector whose i-th position equals bits[i].
func FromBits(bitsIn []bool) Vector {
	v := zero(len(bitsIn))
	for i, b := range bitsIn {
		if b {
			v.setBit(i)
		}
	}

	return v
}

// FromString parses a bitstring such as "0101" into a vector of equal
// width; s[i] maps to position i. Returns ErrBadBit on any other rune.
func FromString(s string) (Vector, error) {
	v := zero(len(s))
	for i, r := range s {
		switch r {
		case '0':
			// already zero
		case '1':
			v.setBit(i)
		default:
			return Vector{}, fmt.Errorf("%w: %q at position %d", ErrBadBit, r, i)
		}
	}

	return v, nil
}

// Rand draws one unbiased boolean per position from rng.
// Exactly width draws are consumed, so identically seeded sources yield
// identical vectors. Panics if rng is nil; returns ErrBadWidth for
// negative width.
func Rand(width int, rng *rand.Rand) (Vector, error) {
	if width < 0 {
		return Vector{}, fmt.Errorf("%w: %d", ErrBadWidth, width)
	}
	v := zero(width)
	for i := 0; i < width; i++ {
		if rng.Int63()&1 == 1 {
			v.setBit(i)
		}
	}

	return v, nil
}

// Width reports the number of positions in v.
func (v Vector) Width() int { return v.width }

// Get reports the bit at position i. Panics when i is out of range,
// mirroring slice indexing.
func (v Vector) Get(i int) bool {
	if i < 0 || i >= v.width {
		panic(fmt.Sprintf("bitvec: index %d out of range [0,%d)", i, v.width))
	}

	return v.words[i/wordBits]>>(uint(i)%wordBits)&1 == 1
}

// WithBit returns a copy of v with position i set to b.
// Panics when i is out of range.
func (v Vector) WithBit(i int, b bool) Vector {
	if i < 0 || i >= v.width {
		panic(fmt.Sprintf("bitvec: index %d out of range [0,%d)", i, v.width))
	}
	out := v.clone()
	if b {
		out.setBit(i)
	} else {
		out.words[i/wordBits] &^= 1 << (uint(i) % wordBits)
	}

	return out
}

// XOR returns the position-wise exclusive-or of v and other.
// Returns ErrWidthMismatch when the widths differ.
func (v Vector) XOR(other Vector) (Vector, error) {
	if v.width != other.width {
		return Vector{}, fmt.Errorf("%w: %d vs %d", ErrWidthMismatch, v.width, other.width)
	}
	out := v.clone()
	for i := range other.words {
		out.words[i] ^= other.words[i]
	}

	return out, nil
}

// Select extracts the sub-vector at the given positions, in the given
// order: result position i equals v.Get(positions[i]).
// Returns ErrPositionRange when any position falls outside [0, Width).
func (v Vector) Select(positions []int) (Vector, error) {
	out := zero(len(positions))
	for i, p := range positions {
		if p < 0 || p >= v.width {
			return Vector{}, fmt.Errorf("%w: %d not in [0,%d)", ErrPositionRange, p, v.width)
		}
		if v.Get(p) {
			out.setBit(i)
		}
	}

	return out, nil
}

// Equal reports whether v and other have the same width and bits.
func (v Vector) Equal(other Vector) bool {
	if v.width != other.width {
		return false
	}
	for i := range v.words {
		if v.words[i] != other.words[i] {
			return false
		}
	}

	return true
}

// OnesCount reports the number of set positions.
func (v Vector) OnesCount() int {
	n := 0
	for _, w := range v.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// String renders v as a bitstring; position 0 is the leftmost character.
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.width)
	for i := 0; i < v.width; i++ {
		if v.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Bits expands v into a fresh []bool, position order preserved.
func (v Vector) Bits() []bool {
	out := make([]bool, v.width)
	for i := range out {
		out[i] = v.Get(i)
	}

	return out
}

// zero allocates an all-zero vector of the given non-negative width.
func zero(width int) Vector {
	return Vector{
		width: width,
		words: make([]uint64, (width+wordBits-1)/wordBits),
	}
}

// clone copies v's storage so mutating helpers never alias inputs.
func (v Vector) clone() Vector {
	out := Vector{width: v.width, words: make([]uint64, len(v.words))}
	copy(out.words, v.words)

	return out
}

// setBit is the internal mutating primitive used during construction.
func (v *Vector) setBit(i int) {
	v.words[i/wordBits] |= 1 << (uint(i) % wordBits)
}
