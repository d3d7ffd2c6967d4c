package target_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siraben/bf-crunch/internal/target"
)

func TestUnescapeBasicControlSequences(t *testing.T) {
	out, err := target.Unescape(`\n\r\t\f\v\a\b\0`)
	require.NoError(t, err)
	require.Equal(t, "\n\r\t\f\v\a\b\x00", out)
}

func TestUnescapeHexEscape(t *testing.T) {
	out, err := target.Unescape(`\x41`)
	require.NoError(t, err)
	require.Equal(t, "A", out)
}

func TestUnescapeHexEscapeMissingDigitsIsFatal(t *testing.T) {
	_, err := target.Unescape(`\x4`)
	require.Error(t, err)
	var pe *target.PreparationError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, target.MalformedEscape, pe.Kind)
}

func TestUnescapeUnicodeEscape(t *testing.T) {
	out, err := target.Unescape("\\u0041")
	require.NoError(t, err)
	require.Equal(t, "A", out)
}

func TestUnescapeUnicodeSurrogateHalfIsFatal(t *testing.T) {
	_, err := target.Unescape(`\ud800`)
	require.Error(t, err)
}

func TestUnescapeLongUnicodeEscape(t *testing.T) {
	out, err := target.Unescape(`\U00000041`)
	require.NoError(t, err)
	require.Equal(t, "A", out)
}

func TestUnescapeControlEscape(t *testing.T) {
	out, err := target.Unescape(`\cA`)
	require.NoError(t, err)
	require.Equal(t, "\x01", out)
}

func TestUnescapeUnknownEscapeFallsBackToLiteral(t *testing.T) {
	out, err := target.Unescape(`\q`)
	require.NoError(t, err)
	require.Equal(t, "q", out)
}

func TestUnescapeDanglingBackslashPassesThrough(t *testing.T) {
	out, err := target.Unescape(`abc\`)
	require.NoError(t, err)
	require.Equal(t, `abc\`, out)
}

func TestToISO88591RejectsAboveByteRange(t *testing.T) {
	_, err := target.ToISO88591("café☃")
	require.Error(t, err)
	var pe *target.PreparationError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, target.NotISO88591, pe.Kind)
}

func TestPrepareDecodesAndEncodesTogether(t *testing.T) {
	goal, err := target.Prepare(`Hello\x2c World\x21`)
	require.NoError(t, err)
	require.Equal(t, []byte("Hello, World!"), goal)
}
