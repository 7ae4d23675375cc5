package bitvec_test

import (
	"fmt"

	"github.com/qsymlab/qsym/bitvec"
)

// ExampleVector_XOR demonstrates untwirling a raw measured outcome:
// flip exactly the positions where the pattern is set.
func ExampleVector_XOR() {
	raw, _ := bitvec.FromString("10")
	pattern := bitvec.FromBits([]bool{true, false})

	untwirled, _ := raw.XOR(pattern)
	fmt.Println(untwirled)
	// Output:
	// 00
}

// ExampleVector_Select demonstrates extracting the reserved classical-bit
// block of a wider register, in measured-qubit order.
func ExampleVector_Select() {
	// Full 5-bit register; reserved block occupies positions 2..4.
	full, _ := bitvec.FromString("11010")

	raw, _ := full.Select([]int{2, 3, 4})
	fmt.Println(raw)
	// Output:
	// 010
}
