package pathnode

import "strings"

// Path is an ordered sequence of Nodes. The zero value is an empty
// path ready to use.
//
// Paths are built bottom-up: each recursive solver frame prepends its
// own node to the best subpath its recursive call returned, so
// PushFront is the hot operation; PushBack and Extend exist for the
// rolling-block move classes, which build a block front-to-back before
// splicing in the tail subpath.
type Path struct {
	nodes []Node
}

// New returns an empty Path.
func New() Path {
	return Path{}
}

// Cost returns the sum of every node's cost.
func (p Path) Cost() int32 {
	var total int32
	for _, n := range p.nodes {
		total += n.Cost
	}
	return total
}

// PushFront prepends a node.
func (p *Path) PushFront(n Node) {
	p.nodes = append([]Node{n}, p.nodes...)
}

// PushBack appends a node.
func (p *Path) PushBack(n Node) {
	p.nodes = append(p.nodes, n)
}

// Extend appends every node of other to the end of p, in order.
func (p *Path) Extend(other Path) {
	p.nodes = append(p.nodes, other.nodes...)
}

// Contains reports whether any node in p equals needle (pointer-only
// equality, see Node.Equal).
func (p Path) Contains(needle Node) bool {
	for _, n := range p.nodes {
		if n.Equal(needle) {
			return true
		}
	}
	return false
}

// Len returns the number of nodes in the path.
func (p Path) Len() int {
	return len(p.nodes)
}

// Nodes returns the path's nodes in order. The returned slice must not
// be mutated by the caller.
func (p Path) Nodes() []Node {
	return p.nodes
}

// Clone returns a copy of p whose backing slice is independent of p's.
func (p Path) Clone() Path {
	cp := make([]Node, len(p.nodes))
	copy(cp, p.nodes)
	return Path{nodes: cp}
}

// String renders the path as its comma-joined nodes, e.g. "(3 2), (5 1)".
func (p Path) String() string {
	parts := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
