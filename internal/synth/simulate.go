package synth

import "github.com/siraben/bf-crunch/internal/bytering"

// Simulate builds the initial tape state a candidate's initialization
// loop would leave behind, without actually running the loop
// byte-by-byte: it solves the loop's self-limiting behavior in closed
// form using the modular inverse of j1 mod 256.
//
// ok is false whenever the tuple is infeasible: j1 == 0 (the loop would
// never terminate), j1 has no odd modular inverse, a coefficient would
// require a tape index out of bounds, or the loop never reaches a zero
// cell within the reserved tape span.
func Simulate(s, c []int32, k0, k1, j0, j1, h, maxTape int32) (pointer int32, tape []byte, ok bool) {
	extra := int32(len(s))
	size := maxTape + extra
	if size < maxTape+2 {
		size = maxTape + 2
	}
	tape = make([]byte, size)

	for idx, value := range s {
		pos := idx + 2
		if pos >= len(tape) {
			return 0, nil, false
		}
		tape[pos] = byte(value)
	}

	if j1 == 0 {
		return 0, nil, false
	}

	lsb := j1 & -j1
	mask := lsb - 1
	shift := int32(0)
	for (lsb & 1) == 0 {
		lsb >>= 1
		shift++
	}
	invIdx := j1 >> shift
	inv, okInv := bytering.ModInv(invIdx)
	if !okInv {
		return 0, nil, false
	}

	// leave a zero at the beginning for a zip point
	pntr := int32(2)
	stop := maxTape - int32(len(c))
	if stop <= pntr {
		return 0, nil, false
	}

	for pntr < stop {
		idx := int(pntr)
		if idx >= len(tape) {
			return 0, nil, false
		}
		if tape[idx] == 0 {
			break
		}

		tape[idx] = bytering.AddByte(tape[idx], k0)
		if tape[idx] != 0 {
			if (int32(tape[idx]) & mask) != 0 {
				return 0, nil, false
			}
			tmp := (int32(tape[idx]) >> shift) * inv
			for offset, coeff := range c {
				tIdx := pntr + int32(offset) + 1
				if tIdx < 0 || int(tIdx) >= len(tape) {
					return 0, nil, false
				}
				tape[tIdx] = bytering.AddByte(tape[tIdx], tmp*coeff)
			}
			leftIdx := pntr - 1
			if leftIdx < 0 || int(leftIdx) >= len(tape) {
				return 0, nil, false
			}
			tape[leftIdx] = bytering.AddByte(tape[leftIdx], tmp*j0)
		}

		tape[idx] = byte(h)
		pntr++
		idx = int(pntr)
		if idx >= len(tape) {
			return 0, nil, false
		}
		tape[idx] = bytering.AddByte(tape[idx], k1)
	}

	if pntr < stop {
		return pntr, tape, true
	}
	return 0, nil, false
}
