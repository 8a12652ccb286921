// SPDX-License-Identifier: MIT

package frame_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dml/frame"
)

func TestHead(t *testing.T) {
	t.Parallel()

	d := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})
	var buf bytes.Buffer
	require.NoError(t, frame.Head(&buf, d, 2))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4) // banner, 2 rows, closing rule
	assert.Equal(t, "*** ================ TOP 2 ROWS ================ ***", lines[0])
	assert.Equal(t, "     1.000\t     2.000\t", lines[1])
	assert.Equal(t, "     3.000\t     4.000\t", lines[2])
	assert.Equal(t, "*** "+strings.Repeat("=", len(lines[0])-8)+" ***", lines[3])
}

// TestTail_BottomUpAndClamped checks that Tail starts at the last row and
// walks upward, clamping n to Rows(), on both the Dense and generic paths.
func TestTail_BottomUpAndClamped(t *testing.T) {
	t.Parallel()

	d := NewFilledDense(t, 4, 1, []float64{1, 2, 3, 4})
	for _, v := range []frame.View{d, hide{d}} {
		var buf bytes.Buffer
		require.NoError(t, frame.Tail(&buf, v, 10)) // n clamps to Rows()

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 6)
		assert.Contains(t, lines[0], "BOTTOM 4 ROWS")
		assert.Equal(t, "      4.00 ", lines[1])
		assert.Equal(t, "      3.00 ", lines[2])
		assert.Equal(t, "      1.00 ", lines[4])
		assert.NotContains(t, lines[5], "BOTTOM")
		assert.Len(t, lines[5], len(lines[0]))

		buf.Reset()
		require.NoError(t, frame.Tail(&buf, v, 2))
		lines = strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "      4.00 ", lines[1])
		assert.Equal(t, "      3.00 ", lines[2])
	}
}

func TestHeadTail_Errors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.ErrorIs(t, frame.Head(&buf, nil, 1), frame.ErrNilView)

	d := NewFilledDense(t, 1, 1, []float64{1})
	require.ErrorIs(t, frame.Tail(&buf, d, -1), frame.ErrInvalidArgument)
}
