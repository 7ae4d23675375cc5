// Package circuit defines the minimal circuit description exchanged
// between the variant generator and an execution backend: a qubit
// register, a classical register, and an ordered list of operations.
//
// Only the operations the readout-symmetrization flow needs exist here —
// an X gate (bit flip) and a measurement of one qubit into one classical
// bit. Pulse schedules, transpilation, and calibration tables are the
// backend's business, not this package's.
//
// A Circuit is mutable while being built (AddX, AddMeasure, GrowClbits)
// and is treated as frozen once handed to a backend; Clone produces an
// independent deep copy so builders never alias a caller's base circuit.
//
// Errors
//
//   - ErrBadRegister — negative qubit or classical register size.
//   - ErrQubitRange  — an operation references a qubit outside the register.
//   - ErrClbitRange  — a measurement writes outside the classical register.
package circuit
