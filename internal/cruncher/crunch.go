package cruncher

import (
	"sync/atomic"

	"github.com/siraben/bf-crunch/internal/bytering"
	"github.com/siraben/bf-crunch/internal/solver"
	"github.com/siraben/bf-crunch/internal/synth"
)

// Cruncher generates candidate BF initialization segments and validates
// them against a target using the solver.
type Cruncher struct {
	opts Options
	goal []byte
	// limit is the current search limit for total program length. It
	// is an atomic.Int32 so that a parallel candidate sweep (Options.Jobs
	// > 1) can tighten it from multiple goroutines with a
	// compare-and-swap loop; at Jobs == 1 it behaves exactly like a
	// plain field.
	limit atomic.Int32
}

// New builds a Cruncher for goal, using limit as the initial search
// limit if opts.Limit is set, or the heuristic
// `(sum of adjacent byte deltas)/3 + len(goal) + 20` otherwise (which
// also forces rolling-limit on, since an unset limit is only a starting
// estimate).
func New(goal []byte, opts Options) *Cruncher {
	c := &Cruncher{opts: opts, goal: goal}

	if opts.Limit > 0 {
		c.limit.Store(opts.Limit)
	} else {
		var diff int32
		var last byte
		for _, b := range goal {
			diff += bytering.AbsDiff(b, last)
			last = b
		}
		c.limit.Store((diff / 3) + int32(len(goal)) + 20)
		c.opts.RollingLimit = true
	}

	return c
}

// Limit returns the cruncher's current search limit.
func (c *Cruncher) Limit() int32 {
	return c.limit.Load()
}

// Crunch walks every (s, c, k, j, h) tuple whose BF translation has
// total length len via synth.Generator, simulating and solving each
// feasible one in turn, invoking emit for every accepted solution in
// the order it is found.
func (c *Cruncher) Crunch(length int32, emit func(Solution)) {
	gen := synth.Generator{
		MinSlen: c.opts.MinSlen,
		MaxSlen: c.opts.MaxSlen,
		MinClen: c.opts.MinClen,
		MaxClen: c.opts.MaxClen,
	}

	gen.Generate(length, func(t synth.Tuple) {
		pntr, tape, ok := synth.Simulate(t.S, t.C, t.K[0], t.K[1], t.J[0], t.J[1], t.H, c.opts.MaxTape)
		if !ok {
			return
		}
		maxPntr := pntr + int32(len(t.C)) + 1
		if pntr > 0 && maxPntr >= c.opts.MinTape && maxPntr <= c.opts.MaxTape {
			c.trySolve(length, pntr, maxPntr, t.S, t.C, t.K, t.J, t.H, tape, emit)
		}
	})
}

// trySolve attempts to complete the initialization segment with solver
// output, reporting any successful program. When the c segment has
// more than one term it also tries the mirrored tape (every c cell,
// tape[pntr+1 .. pntr+len(cc)], negated) and reports that solution as
// well if it is strictly cheaper than the first.
func (c *Cruncher) trySolve(length, pntr, maxPntr int32, s, cc []int32, k, j [2]int32, h int32, tape []byte, emit func(Solution)) {
	tape1 := append([]byte(nil), tape...)
	sv1 := solver.New(c.goal, tape1, pntr, maxPntr, c.opts.MaxNodeCost, c.opts.UniqueCells)
	path1, ok1 := sv1.Solve(c.Limit() - length)

	if ok1 {
		finalLen := c.reportSolution(length, pntr, maxPntr, s, cc, k, j, h, tape, path1, emit)
		if c.opts.RollingLimit {
			c.tightenLimit(finalLen)
		}
	}

	if len(cc) <= 1 {
		return
	}

	mirrored := append([]byte(nil), tape...)
	for i := 1; i <= len(cc); i++ {
		idx := int(pntr) + i
		if idx < len(mirrored) {
			mirrored[idx] = bytering.NegateByte(mirrored[idx])
		}
	}

	tape2 := append([]byte(nil), mirrored...)
	sv2 := solver.New(c.goal, tape2, pntr, maxPntr, c.opts.MaxNodeCost, c.opts.UniqueCells)
	path2, ok2 := sv2.Solve(c.Limit() - length)
	if !ok2 {
		return
	}

	better := !ok1 || path2.Cost() < path1.Cost()
	if !better {
		return
	}

	sNeg := make([]int32, len(s))
	for i, v := range s {
		sNeg[i] = -v
	}
	kNeg := [2]int32{-k[0], -k[1]}
	jNeg := [2]int32{-j[0], j[1]}
	finalLen := c.reportSolution(length, pntr, maxPntr, sNeg, cc, kNeg, jNeg, -h, mirrored, path2, emit)
	if c.opts.RollingLimit {
		c.tightenLimit(finalLen)
	}
}

// tightenLimit lowers the shared rolling limit to newLimit if it is an
// improvement, via compare-and-swap so concurrent workers (Options.Jobs
// > 1) never race each other into a larger value.
func (c *Cruncher) tightenLimit(newLimit int32) {
	for {
		cur := c.limit.Load()
		if newLimit >= cur {
			return
		}
		if c.limit.CompareAndSwap(cur, newLimit) {
			return
		}
	}
}
