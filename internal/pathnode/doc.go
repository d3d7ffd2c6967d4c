// Package pathnode defines Node and Path, the two small value types the
// output-sequence solver builds its answers out of.
//
// What:
//
//   - Node: a single output step identified by its pointer and the
//     cost of that step. Equality compares the pointer
//     only, which is what the --unique-cells constraint needs.
//   - Path: an ordered sequence of Nodes, built bottom-up by recursion
//     (each frame prepends its own node to the best subpath returned
//     from below), supporting front/back insertion, concatenation,
//     membership test, and total cost.
//
// Why: internal/solver mutates a shared tape in place and assembles
// the answer as its recursive frames return, each prepending one node;
// Path's PushFront is the operation that shape demands (it copies the
// slice on every call).
package pathnode
