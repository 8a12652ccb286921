// SPDX-License-Identifier: MIT

package frame_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dml/frame"
)

func TestFromGonum(t *testing.T) {
	t.Parallel()

	g := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	v, err := frame.FromGonum(g)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 3, v.Cols())

	x, err := v.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, x)

	_, err = v.At(2, 0) // gonum would panic here; the adapter must not
	require.ErrorIs(t, err, frame.ErrOutOfRange)

	_, err = frame.FromGonum(nil)
	require.ErrorIs(t, err, frame.ErrNilView)
}

func TestToGonum_RoundTrip(t *testing.T) {
	t.Parallel()

	d := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	for _, v := range []frame.View{d, hide{d}} {
		g, err := frame.ToGonum(v)
		require.NoError(t, err)
		require.True(t, mat.Equal(g, mat.NewDense(2, 2, []float64{1, 2, 3, 4})))

		g.Set(0, 0, 99) // the copy is independent of the source
		x, err := d.At(0, 0)
		require.NoError(t, err)
		require.Equal(t, 1.0, x)
	}

	empty, err := frame.NewDense(0, 2)
	require.NoError(t, err)
	_, err = frame.ToGonum(empty)
	require.ErrorIs(t, err, frame.ErrEmptyDataset)
}
