// Package bytering provides the byte-wrap arithmetic, modular-inverse
// table, and sorted-slice lower-bound search the rest of bf-crunch is
// built on.
//
// What:
//
//   - AddByte/NegateByte: 8-bit wrap-around signed arithmetic.
//   - AbsDiff: raw (non-wrapping) distance between two bytes.
//   - LowerBound: first index of a sorted []int32 not less than a value.
//   - ModInv: multiplicative inverse mod 256 for odd divisors 1..39.
//
// Why:
//
//   - The tape simulator (internal/synth) needs AddByte/ModInv to run
//     its self-limiting initialization loop without overflow panics.
//   - The solver (internal/solver) needs AbsDiff for its per-move cost
//     formula and LowerBound for its zero-index cache queries.
//
// Complexity: every function here is O(1) except LowerBound, which is
// O(log n) in the length of the slice.
package bytering
