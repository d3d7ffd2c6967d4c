package solver

import (
	"github.com/siraben/bf-crunch/internal/bytering"
	"github.com/siraben/bf-crunch/internal/pathnode"
)

// Solver holds one candidate's mutable search state: the goal bytes to
// reproduce, a tape snapshot it mutates in place during search, and a
// sorted cache of zero-valued cell indices in [0, maxPointer].
type Solver struct {
	goal        []byte
	tape        []byte
	minCost     int32
	pointer     int32
	maxPointer  int32
	maxNodeCost int32
	uniqueCells bool
	zeros       []int32
}

// New builds a Solver for goal, starting at pointer on tape (cloned by
// the caller beforehand; Solver mutates it in place), with moves
// confined to [0, maxPointer] and capped at maxNodeCost per node.
func New(goal []byte, tape []byte, pointer, maxPointer, maxNodeCost int32, uniqueCells bool) *Solver {
	minCost := (int32(len(goal)) - 1) * 2
	var repeats int32
	for i := 1; i < len(goal); i++ {
		if goal[i] == goal[i-1] {
			repeats++
		}
	}
	minCost -= repeats

	s := &Solver{
		goal:        goal,
		tape:        tape,
		minCost:     minCost,
		pointer:     pointer,
		maxPointer:  maxPointer,
		maxNodeCost: maxNodeCost,
		uniqueCells: uniqueCells,
	}
	s.recomputeZeros()
	return s
}

// MinCost returns the admissible lower bound on any solution's cost.
func (s *Solver) MinCost() int32 {
	return s.minCost
}

// Solve searches for the cheapest Path emitting the whole goal starting
// at the Solver's initial pointer, within maxCost. ok is false if no
// such path exists.
func (s *Solver) Solve(maxCost int32) (pathnode.Path, bool) {
	return s.exhaustive(0, 0, s.pointer, maxCost-s.minCost)
}

// recomputeZeros rebuilds the zero-index cache from scratch into a
// freshly allocated slice. A fresh allocation (rather than reusing
// s.zeros' backing array) is required for correctness: ancestor
// recursion frames hold their own saved copy of the *old* slice header
// for save/restore, and that saved header would alias a reused backing
// array, letting a deeper frame's recompute silently corrupt an
// ancestor's "before" snapshot.
func (s *Solver) recomputeZeros() {
	zeros := make([]int32, 0, len(s.zeros))
	for i := int32(0); i <= s.maxPointer; i++ {
		if int(i) < len(s.tape) && s.tape[i] == 0 {
			zeros = append(zeros, i)
		}
	}
	s.zeros = zeros
}

// exhaustive returns the minimum-cost Path emitting goal[start:] from
// pointer, given the tape as currently mutated, or (_, false) if no
// such path fits within max_cost - cost at every frame.
func (s *Solver) exhaustive(cost int32, start int, pointer int32, maxCost int32) (pathnode.Path, bool) {
	if start == len(s.goal) {
		return pathnode.New(), true
	}

	var nextCost int32
	switch {
	case start+1 == len(s.goal):
		nextCost = 0
	case s.goal[start] == s.goal[start+1]:
		nextCost = 1
	default:
		nextCost = 2
	}

	iMax := maxCost - cost
	if s.maxNodeCost < iMax {
		iMax = s.maxNodeCost
	}
	if iMax <= 0 {
		return pathnode.Path{}, false
	}

	var minPath pathnode.Path
	haveMin := false

	// stay on the same pointer
	if pointer >= 0 && int(pointer) < len(s.tape) {
		idx := int(pointer)
		ncost := bytering.AbsDiff(s.goal[start], s.tape[idx]) + 1
		if ncost <= iMax {
			node := pathnode.NewNode(pointer, ncost)
			s.tryMove(node, idx, cost, start, nextCost, maxCost, &minPath, &haveMin)
		}
	}

	// move left
	if pointer > 0 {
		for i := int32(1); i < iMax; i++ {
			if i > pointer {
				break
			}
			target := pointer - i
			idx := int(target)
			if idx >= len(s.tape) {
				break
			}
			ncost := bytering.AbsDiff(s.goal[start], s.tape[idx]) + i + 1
			if ncost <= iMax {
				node := pathnode.NewNode(target, ncost)
				s.tryMove(node, idx, cost, start, nextCost, maxCost, &minPath, &haveMin)
			}
		}
	}

	// move right
	if pointer < s.maxPointer {
		for i := int32(1); i < iMax; i++ {
			if pointer+i > s.maxPointer {
				break
			}
			target := pointer + i
			idx := int(target)
			if idx >= len(s.tape) {
				break
			}
			ncost := bytering.AbsDiff(s.goal[start], s.tape[idx]) + i + 1
			if ncost <= iMax {
				node := pathnode.NewNode(target, ncost)
				s.tryMove(node, idx, cost, start, nextCost, maxCost, &minPath, &haveMin)
			}
		}
	}

	s.tryZipLeft(pointer, cost, start, nextCost, maxCost, iMax, &minPath, &haveMin)
	s.tryZipRight(pointer, cost, start, nextCost, maxCost, iMax, &minPath, &haveMin)

	if haveMin {
		return minPath, true
	}
	return pathnode.Path{}, false
}

// tryMove writes goal[start] at tape index idx, recurses, and
// unconditionally restores the tape and zero-cache before returning.
// If the recursion succeeds and the resulting total improves on
// *minPath (and satisfies the unique-cells constraint when enabled),
// *minPath/*haveMin are updated.
func (s *Solver) tryMove(node pathnode.Node, idx int, cost int32, start int, nextCost, maxCost int32, minPath *pathnode.Path, haveMin *bool) {
	tval := s.tape[idx]
	oldZeros := s.zeros
	s.tape[idx] = s.goal[start]
	if tval == 0 {
		s.recomputeZeros()
	}

	subpath, ok := s.exhaustive(cost+node.Cost, start+1, node.Pointer, maxCost+nextCost)

	s.tape[idx] = tval
	s.zeros = oldZeros

	if !ok {
		return
	}

	total := subpath.Cost() + node.Cost
	better := !*haveMin || total < minPath.Cost()
	uniqueOK := !s.uniqueCells || !subpath.Contains(node)
	if better && uniqueOK {
		subpath.PushFront(node)
		*minPath = subpath
		*haveMin = true
	}
}
