package cruncher_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siraben/bf-crunch/internal/bfvm"
	"github.com/siraben/bf-crunch/internal/cruncher"
)

func defaultOptions() cruncher.Options {
	return cruncher.Options{
		MinTape:     1,
		MaxTape:     100,
		MaxNodeCost: 20,
		MinSlen:     1,
		MinClen:     1,
		Jobs:        1,
	}
}

func TestNewComputesHeuristicLimitWhenUnset(t *testing.T) {
	goal := []byte{0x41}
	c := cruncher.New(goal, defaultOptions())
	// abs_diff(0x41, 0) = 65; 65/3 + 1 + 20 = 21 + 1 + 20 = 42
	require.Equal(t, int32(42), c.Limit())
}

func TestNewUsesExplicitLimitWhenSet(t *testing.T) {
	opts := defaultOptions()
	opts.Limit = 99
	c := cruncher.New([]byte{0x41}, opts)
	require.Equal(t, int32(99), c.Limit())
}

func TestCrunchFindsAtLeastOneSolutionForSingleByteTarget(t *testing.T) {
	opts := defaultOptions()
	opts.RollingLimit = true
	c := cruncher.New([]byte{0x41}, opts)

	var solutions []cruncher.Solution
	c.Crunch(14, func(sol cruncher.Solution) {
		solutions = append(solutions, sol)
	})

	require.NotEmpty(t, solutions, "expected at least one accepted program of init length 14")
	for _, sol := range solutions {
		require.Equal(t, 1, sol.Path.Len())
	}
}

func TestCrunchRollingLimitNeverIncreases(t *testing.T) {
	opts := defaultOptions()
	opts.RollingLimit = true
	c := cruncher.New([]byte{0x41}, opts)

	last := c.Limit()
	c.Crunch(14, func(sol cruncher.Solution) {
		require.LessOrEqual(t, c.Limit(), last)
		last = c.Limit()
	})
}

func TestFullProgramRoundTripsThroughBFInterpreter(t *testing.T) {
	goal := []byte("A")
	opts := defaultOptions()
	opts.FullProgram = true
	opts.RollingLimit = true
	c := cruncher.New(goal, opts)

	var found *cruncher.Solution
	c.Crunch(14, func(sol cruncher.Solution) {
		if found == nil {
			s := sol
			found = &s
		}
	})

	require.NotNil(t, found, "expected at least one full-program solution")
	// the program lays down its s segment by stepping left from its
	// start cell, so it is run from a start cell with room on the left
	offset := len(found.InitSegment)
	program := strings.Repeat(">", offset) + found.FullProgram
	out, err := bfvm.Run(program, offset+int(found.MaxPointer)+64)
	require.NoError(t, err)
	require.Equal(t, goal, out)
}

func TestFormatCellLineRendersCommaSeparated(t *testing.T) {
	sol := cruncher.Solution{
		Pointer:    0,
		MaxPointer: 3,
		Tape:       []byte{1, 2, 3, 4},
	}
	// window is tape[min_pointer .. max_pointer] clamped to tape length:
	// min_pointer defaults to Pointer when the path is empty, so here
	// that's tape[0:3].
	require.Equal(t, "1, 2, 3", cruncher.FormatCellLine(sol))
}
