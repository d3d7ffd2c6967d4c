package pathnode

import "fmt"

// Node is a single output step: the tape pointer it writes/emits from,
// the cost of this step alone (a Path's cost is the sum of its nodes'),
// and whether it was produced as part of a roll block rather than a
// single ordinary or zip move.
type Node struct {
	Pointer int32
	Cost    int32
	Rolling bool
}

// NewNode builds an ordinary (non-rolling) Node.
func NewNode(pointer, cost int32) Node {
	return Node{Pointer: pointer, Cost: cost}
}

// NewRollingNode builds a Node produced as part of a roll-left/roll-right block.
func NewRollingNode(pointer, cost int32) Node {
	return Node{Pointer: pointer, Cost: cost, Rolling: true}
}

// Equal compares two nodes by pointer only, matching the Rust
// reference's PartialEq impl: two nodes are "the same cell" regardless
// of cost or rolling status. Used by the unique-cells constraint.
func (n Node) Equal(other Node) bool {
	return n.Pointer == other.Pointer
}

// String renders the node as "(pointer cost)", the format used in the
// path line of a reported solution.
func (n Node) String() string {
	return fmt.Sprintf("(%d %d)", n.Pointer, n.Cost)
}
