package cruncher

import "github.com/siraben/bf-crunch/internal/pathnode"

// Solution is one accepted program, handed back to the caller for
// formatting. Cruncher never formats output itself: computation and
// presentation stay separate (see DESIGN.md).
type Solution struct {
	// ProgramLength is the reported total length: path.Cost() + the
	// initialization length when FullProgram is off, or the exact
	// reconstructed program's length when FullProgram is on.
	ProgramLength int32
	// InitSegment is the BF text of the initialization prefix.
	InitSegment string
	// Pointer is the pointer position where the solver search began.
	Pointer int32
	// MaxPointer is the highest tape index the solver may move to:
	// Pointer + len(c) + 1.
	MaxPointer int32
	// Path is the solver's output-sequence solution.
	Path pathnode.Path
	// Tape is the simulated tape state the solver searched against.
	Tape []byte
	// FullProgram is the reconstructed full program text, set only
	// when Options.FullProgram was requested.
	FullProgram string
}
