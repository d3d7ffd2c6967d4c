// Package cruncher ties the candidate generator, tape simulator, and
// output-sequence solver together: for a given initialization length it
// walks every feasible tuple, simulates its tape, and hands the result
// to the solver, reporting any program that reproduces the target.
//
// What:
//
//   - Crunch(len) enumerates every (s, c, k, j, h) tuple whose BF
//     translation has length len, simulates each, and on a successful
//     simulation tries the solver on the tape as-is, reporting any
//     solution, and (when the c segment has more than one term) again
//     with every c cell negated, reporting that solution too when it is
//     strictly cheaper than the first.
//   - A rolling search limit tightens after each reported solution when
//     enabled, pruning later tuples whose own minimum cost can no longer
//     beat it.
//
// Why: the tuple space is large enough that generating every candidate
// program text and interpreting it would be far slower than simulating
// its tape effect symbolically and only invoking the full solver once a
// tuple is known to be feasible.
package cruncher
