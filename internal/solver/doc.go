// Package solver implements the output-sequence branch-and-bound
// search: given a tape snapshot and a goal byte sequence, it finds the
// minimum-cost sequence of pointer moves and cell writes whose "."
// emissions reproduce the goal.
//
// What:
//
//   - An admissible lower bound, 2*(len(goal)-1) - R (R = adjacent-equal
//     count in goal), prunes the search before it starts.
//   - exhaustive() recurses goal-position by goal-position, trying seven
//     move classes per frame: stay, step-left, step-right, zip-left
//     ([<]), zip-right ([>]), roll-left ([.<]), roll-right ([.>]).
//   - A sorted zero-index cache lets zip/roll moves find the nearest
//     zero cell in O(log n) instead of scanning the tape.
//
// Why: Brainfuck's only cheap way to skip a long run of zero cells is
// the loop idiom `[<]`/`[>]`, and the only cheap way to emit several
// cells in a row is `[.<]`/`[.>]`; a solver that only considered single
// steps would badly over-count the cost of these idioms.
//
// Correctness invariants (see package tests):
//
//  1. Tape save/restore: every call into exhaustive that mutates the
//     tape restores it bit-for-bit before returning, success or not.
//  2. Zero-cache consistency: at every recursion entry, the cache
//     equals the sorted indices in [0, maxPointer] holding a zero byte.
//  3. Pointer bounds: every produced node has 0 <= pointer <= maxPointer.
//  4. Cost admissibility: any returned Path costs at least the
//     admissible lower bound.
//  5. Unique-cells: with uniqueCells set, no two nodes in a returned
//     Path share a pointer.
package solver
