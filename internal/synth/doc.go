// Package synth enumerates candidate Brainfuck initialization programs
// and simulates each one's effect on a tape before any output-sequence
// search runs against it.
//
// What:
//
//   - Generate walks every (s, c, k, j, h) parameter tuple whose BF
//     translation has a requested total length, calling back once per
//     tuple.
//   - Simulate interprets a tuple's self-limiting initialization loop
//     symbolically, using modular-inverse arithmetic to compute how many
//     times the inner loop runs in closed form rather than iterating
//     byte values, and reports the pointer position and tape state the
//     real loop would leave behind.
//
// Why: the candidate family is the program shape
// `{...s2}<{s1}<{s0}[{k0}[<{j0}>{-j1}>{c0}>{c1}>{c2...}<<<]{h}>{k1}]`,
// the shortest useful instance of which is `+[[<+>->++<]>]` (computing
// powers of two). Exhaustively running each candidate loop on a real
// tape would work but is slower than solving its arithmetic directly.
package synth
