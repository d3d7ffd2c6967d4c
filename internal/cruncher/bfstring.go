package cruncher

import (
	"strconv"
	"strings"

	"github.com/siraben/bf-crunch/internal/pathnode"
)

// reportSolution builds a Solution from a solver path and emits it. It
// always returns the length of the fully reconstructed program
// (initialization segment + output tail), regardless of whether
// Options.FullProgram requests that text be displayed: the rolling
// limit tightens against the true program length the original
// implementation returns from its report_solution, not the shorter
// "init cost" line the non-full-program display prints.
func (c *Cruncher) reportSolution(length, pntr, maxPntr int32, s, cc []int32, k, j [2]int32, h int32, tape []byte, path pathnode.Path, emit func(Solution)) int32 {
	initSegment := toBFString(s, cc, k, j, h)
	tailSegment := buildOutputSequence(path, c.goal, tape, pntr)
	full := initSegment + tailSegment
	programLen := int32(len(full))

	sol := Solution{
		InitSegment: initSegment,
		Pointer:     pntr,
		MaxPointer:  maxPntr,
		Path:        path,
		Tape:        append([]byte(nil), tape...),
	}

	if c.opts.FullProgram {
		sol.FullProgram = full
		sol.ProgramLength = programLen
	} else {
		sol.ProgramLength = path.Cost() + length
	}

	emit(sol)
	return programLen
}

// toBFString converts initialization parameters into a BF program
// prefix string of the form
// `{...s2}<{s1}<{s0}[{k0}[<{j0}>{-j1}>{c0}>{c1}>{c2...}<<<]{h}>{k1}]`.
func toBFString(s, cc []int32, k, j [2]int32, h int32) string {
	var sb strings.Builder
	tail := ""
	sdelim := byte('[')
	for _, sterm := range s {
		sign := byte('+')
		if sterm < 0 {
			sign = '-'
		}
		var prefix strings.Builder
		for i := int32(0); i < abs32i(sterm); i++ {
			prefix.WriteByte(sign)
		}
		prefix.WriteByte(sdelim)
		tail = prefix.String() + tail
		sdelim = '<'
	}
	sb.WriteString(tail)

	appendRepeated(&sb, signChar(k[0]), abs32i(k[0]))
	sb.WriteString("[<")
	appendRepeated(&sb, signChar(j[0]), abs32i(j[0]))
	sb.WriteByte('>')
	appendRepeated(&sb, '-', abs32i(j[1]))
	for _, cterm := range cc {
		sb.WriteByte('>')
		appendRepeated(&sb, signChar(cterm), abs32i(cterm))
	}
	appendRepeated(&sb, '<', int32(len(cc)))
	sb.WriteByte(']')
	appendRepeated(&sb, signChar(h), abs32i(h))
	sb.WriteByte('>')
	appendRepeated(&sb, signChar(k[1]), abs32i(k[1]))
	sb.WriteByte(']')

	return sb.String()
}

func signChar(v int32) byte {
	if v < 0 {
		return '-'
	}
	return '+'
}

func abs32i(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func appendRepeated(sb *strings.Builder, ch byte, count int32) {
	for i := int32(0); i < count; i++ {
		sb.WriteByte(ch)
	}
}

// buildOutputSequence builds the BF command suffix that reproduces the
// solver path on the tape, tracking cell state in a sparse map since
// the path may visit cells far beyond the initialized tape window.
func buildOutputSequence(path pathnode.Path, goal []byte, tape []byte, startPointer int32) string {
	var sb strings.Builder
	pointer := startPointer
	state := make(map[int32]byte, len(tape))
	for idx, v := range tape {
		state[int32(idx)] = v
	}

	for stepIndex, node := range path.Nodes() {
		target := node.Pointer
		if target > pointer {
			for i := int32(0); i < target-pointer; i++ {
				sb.WriteByte('>')
			}
		} else if target < pointer {
			for i := int32(0); i < pointer-target; i++ {
				sb.WriteByte('<')
			}
		}
		pointer = target

		var desired byte
		if stepIndex < len(goal) {
			desired = goal[stepIndex]
		}
		current := state[target]
		if desired != current {
			increase := desired - current
			decrease := current - desired
			if increase <= decrease {
				for i := byte(0); i < increase; i++ {
					sb.WriteByte('+')
				}
				state[target] = current + increase
			} else {
				for i := byte(0); i < decrease; i++ {
					sb.WriteByte('-')
				}
				state[target] = current - decrease
			}
		}

		sb.WriteByte('.')
	}

	return sb.String()
}

// tapeWindow returns the contiguous slice of tape from the lowest of
// pntr and the path's pointers up to, but not including, maxPntr, for
// the non-full-program output's "cell line".
func tapeWindow(path pathnode.Path, tape []byte, pntr, maxPntr int32) []byte {
	minPointer := pntr
	for _, n := range path.Nodes() {
		if n.Pointer < minPointer {
			minPointer = n.Pointer
		}
	}
	start := minPointer
	if start < 0 {
		start = 0
	}
	count := maxPntr - minPointer
	if count < 0 {
		count = 0
	}
	end := int(start) + int(count)
	if end > len(tape) {
		end = len(tape)
	}
	if int(start) > end {
		return nil
	}
	return tape[start:end]
}

// FormatCellLine renders a Solution's tape window as comma-separated
// decimal byte values, matching the CLI's non-full-program output.
func FormatCellLine(sol Solution) string {
	window := tapeWindow(sol.Path, sol.Tape, sol.Pointer, sol.MaxPointer)
	parts := make([]string, len(window))
	for i, b := range window {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ", ")
}
