package bytering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siraben/bf-crunch/internal/bytering"
)

func TestAddByteWraps(t *testing.T) {
	require.Equal(t, byte(0), bytering.AddByte(255, 1))
	require.Equal(t, byte(255), bytering.AddByte(0, -1))
	require.Equal(t, byte(10), bytering.AddByte(5, 5))
}

func TestNegateByte(t *testing.T) {
	require.Equal(t, byte(0), bytering.NegateByte(0))
	require.Equal(t, byte(256-5), bytering.NegateByte(5))
}

func TestAbsDiffIsNotWrapMinimum(t *testing.T) {
	// 255 and 0 are adjacent on the ring but AbsDiff reports the raw
	// distance, not the wrap-minimum one.
	require.Equal(t, int32(255), bytering.AbsDiff(255, 0))
	require.Equal(t, int32(255), bytering.AbsDiff(0, 255))
	require.Equal(t, int32(5), bytering.AbsDiff(10, 5))
}

func TestLowerBoundEmpty(t *testing.T) {
	require.Equal(t, 0, bytering.LowerBound(nil, 5))
}

func TestLowerBoundAllLess(t *testing.T) {
	arr := []int32{1, 2, 3}
	require.Equal(t, len(arr), bytering.LowerBound(arr, 10))
}

func TestLowerBoundMixed(t *testing.T) {
	arr := []int32{1, 3, 5, 7, 9}
	require.Equal(t, 0, bytering.LowerBound(arr, 0))
	require.Equal(t, 2, bytering.LowerBound(arr, 5))
	require.Equal(t, 3, bytering.LowerBound(arr, 6))
	require.Equal(t, 5, bytering.LowerBound(arr, 100))
}

func TestModInvTableIsCorrect(t *testing.T) {
	for q := int32(1); q <= 39; q += 2 {
		inv, ok := bytering.ModInv(q)
		require.True(t, ok, "expected an inverse for q=%d", q)
		require.Equal(t, int32(1), (q*inv)%256, "q=%d inv=%d", q, inv)
	}
}

func TestModInvOutOfRange(t *testing.T) {
	_, ok := bytering.ModInv(41)
	require.False(t, ok)
	_, ok = bytering.ModInv(-1)
	require.False(t, ok)
}
