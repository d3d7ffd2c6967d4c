package solver

import (
	"github.com/siraben/bf-crunch/internal/bytering"
	"github.com/siraben/bf-crunch/internal/pathnode"
)

// tryZipLeft considers both the zip-left move class ([<] skipping a
// run of zeros, then stepping from the zero it lands on) and its
// roll-left companion ([.<], emitting a whole run of nonzero cells in
// one recursion step).
func (s *Solver) tryZipLeft(pointer, cost int32, start int, nextCost, maxCost, iMax int32, minPath *pathnode.Path, haveMin *bool) {
	if pointer <= 0 {
		return
	}

	pj := int32(0)
	for pj <= pointer {
		idx := pointer - pj
		if int(idx) >= len(s.tape) || s.tape[idx] != 0 {
			break
		}
		pj++
	}
	if pj > pointer {
		return
	}

	zcost := 3 + pj
	search := pointer - pj
	pzIdx := bytering.LowerBound(s.zeros, search) - 1
	if pzIdx < 0 {
		return
	}
	prevZero := s.zeros[pzIdx]

	// from prevZero, stepping further left
	for i := int32(1); i < iMax; i++ {
		if i >= iMax-3 {
			break
		}
		if i > prevZero {
			break
		}
		target := prevZero - i
		if target < 0 {
			break
		}
		idx := int(target)
		if idx >= len(s.tape) {
			break
		}
		ncost := bytering.AbsDiff(s.goal[start], s.tape[idx]) + i + 1 + zcost
		if ncost <= iMax {
			node := pathnode.NewNode(target, ncost)
			s.tryMove(node, idx, cost, start, nextCost, maxCost, minPath, haveMin)
		}
	}

	// from prevZero, stepping right towards pointer
	for i := int32(1); i < iMax; i++ {
		if i >= iMax-3 {
			break
		}
		limit := (pointer - prevZero - 3) >> 1
		if i > limit {
			break
		}
		target := prevZero + i
		if target > s.maxPointer {
			break
		}
		idx := int(target)
		if idx >= len(s.tape) {
			break
		}
		ncost := bytering.AbsDiff(s.goal[start], s.tape[idx]) + i + 1 + zcost
		if ncost <= iMax {
			node := pathnode.NewNode(target, ncost)
			s.tryMove(node, idx, cost, start, nextCost, maxCost, minPath, haveMin)
		}
	}

	// roll to previous zero
	runLen := pointer - pj - prevZero
	for pj < 1 &&
		pointer-pj < s.maxPointer &&
		int(pointer-pj+1) < len(s.tape) &&
		s.tape[pointer-pj+1] != 0 &&
		runLen < int32(len(s.goal)-start) {
		pj--
		runLen++
	}

	for runLen >= 4 && int(runLen) <= len(s.goal)-start {
		target := pointer - pj
		idx := int(target)
		if idx >= len(s.tape) {
			break
		}
		ncost := bytering.AbsDiff(s.goal[start], s.tape[idx]) + absInt32(pj) + 1
		if ncost <= iMax {
			s.tryRollBlock(target, ncost, runLen, -1, prevZero, cost, start, nextCost, maxCost, iMax, minPath, haveMin)
		}
		pj++
		runLen--
	}
}

// tryZipRight mirrors tryZipLeft for [>] / [.>].
func (s *Solver) tryZipRight(pointer, cost int32, start int, nextCost, maxCost, iMax int32, minPath *pathnode.Path, haveMin *bool) {
	if pointer > s.maxPointer {
		return
	}

	nj := int32(0)
	for pointer+nj <= s.maxPointer {
		idx := pointer + nj
		if int(idx) >= len(s.tape) || s.tape[idx] != 0 {
			break
		}
		nj++
	}
	if pointer+nj > s.maxPointer {
		return
	}

	zcost := 3 + nj
	nzIdx := bytering.LowerBound(s.zeros, pointer+nj)
	if nzIdx >= len(s.zeros) {
		return
	}
	nextZero := s.zeros[nzIdx]

	// from nextZero, stepping further right
	for i := int32(1); i < iMax; i++ {
		if i >= iMax-3 {
			break
		}
		if nextZero+i > s.maxPointer {
			break
		}
		target := nextZero + i
		idx := int(target)
		if idx >= len(s.tape) {
			break
		}
		ncost := bytering.AbsDiff(s.goal[start], s.tape[idx]) + i + 1 + zcost
		if ncost <= iMax {
			node := pathnode.NewNode(target, ncost)
			s.tryMove(node, idx, cost, start, nextCost, maxCost, minPath, haveMin)
		}
	}

	// from nextZero, stepping back towards pointer
	for i := int32(1); i < iMax; i++ {
		if i >= iMax-3 {
			break
		}
		limit := (nextZero - pointer - 3) >> 1
		if i > limit {
			break
		}
		target := nextZero - i
		if target < 0 {
			break
		}
		idx := int(target)
		if idx >= len(s.tape) {
			break
		}
		ncost := bytering.AbsDiff(s.goal[start], s.tape[idx]) + i + 1 + zcost
		if ncost <= iMax {
			node := pathnode.NewNode(target, ncost)
			s.tryMove(node, idx, cost, start, nextCost, maxCost, minPath, haveMin)
		}
	}

	// roll to next zero
	runLen := nextZero - pointer - nj
	for nj < 1 &&
		pointer+nj > 0 &&
		int(pointer+nj-1) < len(s.tape) &&
		s.tape[pointer+nj-1] != 0 &&
		runLen < int32(len(s.goal)-start) {
		nj--
		runLen++
	}

	for runLen >= 4 && int(runLen) <= len(s.goal)-start {
		target := pointer + nj
		idx := int(target)
		if idx >= len(s.tape) {
			break
		}
		ncost := bytering.AbsDiff(s.goal[start], s.tape[idx]) + absInt32(nj) + 1
		if ncost <= iMax {
			s.tryRollBlock(target, ncost, runLen, 1, nextZero, cost, start, nextCost, maxCost, iMax, minPath, haveMin)
		}
		nj++
		runLen--
	}
}

// tryRollBlock builds one roll-left/roll-right block: a contiguous run
// of runLen cells starting at target and walking in direction dir
// (-1 for roll-left, +1 for roll-right), each emitting one goal byte,
// followed by a normal recursive continuation from zeroCell (the zero
// the run rolled up against). firstNodeBase is the cost of the block's
// first node before the +3 loop-bracket surcharge.
func (s *Solver) tryRollBlock(target, firstNodeBase, runLen, dir, zeroCell int32, cost int32, start int, nextCost, maxCost, iMax int32, minPath *pathnode.Path, haveMin *bool) {
	block := pathnode.New()
	block.PushBack(pathnode.NewRollingNode(target, firstNodeBase+3))

	dcost := nextCost
	valid := true
	for i := int32(1); i < runLen; i++ {
		cell := target + dir*i
		if cell < 0 || cell > s.maxPointer {
			valid = false
			break
		}
		cidx := int(cell)
		if cidx >= len(s.tape) {
			valid = false
			break
		}
		delta := bytering.AbsDiff(s.goal[start+int(i)], s.tape[cidx])
		if delta > iMax {
			valid = false
			break
		}
		block.PushBack(pathnode.NewRollingNode(cell, delta))

		switch {
		case start+int(i)+1 == len(s.goal):
			dcost += 0
		case s.goal[start+int(i)] == s.goal[start+int(i)+1]:
			dcost += 1
		default:
			dcost += 2
		}
	}

	if !valid || block.Len() != int(runLen) {
		return
	}

	nodes := block.Nodes()
	saved := make([]byte, len(nodes))
	for i, n := range nodes {
		saved[i] = s.tape[n.Pointer]
	}
	for offset, n := range nodes {
		s.tape[n.Pointer] = s.goal[start+offset]
	}

	subpath2, ok2 := s.exhaustive(cost+block.Cost(), start+int(runLen), zeroCell, maxCost+dcost)

	if ok2 {
		total := block.Cost() + subpath2.Cost()
		uniqueOK := true
		if s.uniqueCells {
			for _, n := range nodes {
				if subpath2.Contains(n) {
					uniqueOK = false
					break
				}
			}
		}
		if uniqueOK && (!*haveMin || total < minPath.Cost()) {
			combined := block.Clone()
			combined.Extend(subpath2)
			*minPath = combined
			*haveMin = true
		}
	}

	for i, n := range nodes {
		s.tape[n.Pointer] = saved[i]
	}
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
