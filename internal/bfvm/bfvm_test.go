package bfvm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siraben/bf-crunch/internal/bfvm"
)

func TestRunEmitsIncrementedCell(t *testing.T) {
	out, err := bfvm.Run("+++.", 8)
	require.NoError(t, err)
	require.Equal(t, []byte{3}, out)
}

func TestRunWrapsAtByteBoundary(t *testing.T) {
	program := ""
	for i := 0; i < 256; i++ {
		program += "+"
	}
	program += "."
	out, err := bfvm.Run(program, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0}, out)
}

func TestRunHonorsLoop(t *testing.T) {
	// moves cell 0 (3) into cell 1 doubled, then prints 6
	out, err := bfvm.Run("+++[>++<-]>.", 8)
	require.NoError(t, err)
	require.Equal(t, []byte{6}, out)
}

func TestRunRejectsUnmatchedBracket(t *testing.T) {
	_, err := bfvm.Run("[+", 4)
	require.Error(t, err)
}

func TestRunRejectsPointerUnderflow(t *testing.T) {
	_, err := bfvm.Run("<", 4)
	require.Error(t, err)
}
