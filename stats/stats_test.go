// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dml/frame"
	"github.com/katalvlaran/dml/stats"
)

const epsTight = 1e-12

// hide masks *frame.Dense so the generic At path is exercised.
type hide struct{ frame.View }

// columnOf builds an n×1 view holding vals.
func columnOf(t *testing.T, vals ...float64) *frame.Dense {
	t.Helper()
	rows := make([][]float64, len(vals))
	for i, v := range vals {
		rows[i] = []float64{v}
	}
	d, err := frame.FromRows(rows)
	require.NoError(t, err)

	return d
}

// TestConstantColumn checks that mean == median == v and dispersion == 0.
func TestConstantColumn(t *testing.T) {
	t.Parallel()

	values := []float64{0, -3.25, 7, 1e6, 0.1, 3.3, 1e308, -1e308, math.MaxFloat64}
	for _, v := range values {
		for _, n := range []int{1, 3, 4, 5, 10} {
			vals := make([]float64, n)
			for i := range vals {
				vals[i] = v
			}
			d := columnOf(t, vals...)

			mean, err := stats.Mean(d, 0)
			require.NoError(t, err)
			assert.Equal(t, v, mean, "mean v=%g n=%d", v, n)

			med, err := stats.Median(hide{d}, 0)
			require.NoError(t, err)
			assert.Equal(t, v, med, "median v=%g n=%d", v, n)

			disp, err := stats.Dispersion(d, 0)
			require.NoError(t, err)
			assert.Equal(t, 0.0, disp, "dispersion v=%g n=%d", v, n)

			sd, err := stats.StdDev(d, 0)
			require.NoError(t, err)
			assert.Equal(t, 0.0, sd, "stddev v=%g n=%d", v, n)
		}
	}
}

// TestMedian_EvenNearMaxFloat averages the middle pair without overflowing.
func TestMedian_EvenNearMaxFloat(t *testing.T) {
	t.Parallel()

	med, err := stats.Median(columnOf(t, 1e308, 1.5e308, 1.7e308, 0), 0)
	require.NoError(t, err)
	assert.False(t, math.IsInf(med, 0))
	assert.InDelta(t, 1.25e308, med, 1e293)
}

// TestMedian_OddUsesSortedOrder guards against picking the positional middle.
func TestMedian_OddUsesSortedOrder(t *testing.T) {
	t.Parallel()

	d := columnOf(t, 5, 1, 3)
	med, err := stats.Median(d, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, med)

	d = columnOf(t, 9, 1, 2) // positional middle is 1, true median is 2
	med, err = stats.Median(hide{d}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, med)
}

func TestMedian_EvenAveragesMiddlePair(t *testing.T) {
	t.Parallel()

	med, err := stats.Median(columnOf(t, 2, 4, 6, 8), 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, med)

	med, err = stats.Median(columnOf(t, 8, 2, 6, 4), 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, med)
}

// TestMedian_DoesNotReorderView ensures the source stays untouched.
func TestMedian_DoesNotReorderView(t *testing.T) {
	t.Parallel()

	d := columnOf(t, 3, 1, 2)
	before := d.String()
	_, err := stats.Median(d, 0)
	require.NoError(t, err)
	assert.Equal(t, before, d.String())
}

func TestDispersion_PopulationVariance(t *testing.T) {
	t.Parallel()

	d := columnOf(t, 2, 4, 4, 4, 5, 5, 7, 9)

	mean, err := stats.Mean(d, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, mean)

	disp, err := stats.Dispersion(d, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, disp)

	sd, err := stats.StdDev(d, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sd, epsTight)
}

// TestMultiColumn selects the requested column in a wider view.
func TestMultiColumn(t *testing.T) {
	t.Parallel()

	d, err := frame.FromRows([][]float64{
		{1, 10, 100},
		{2, 20, 200},
		{3, 30, 600},
	})
	require.NoError(t, err)

	for _, v := range []frame.View{d, hide{d}} {
		mean, err := stats.Mean(v, 2)
		require.NoError(t, err)
		assert.InDelta(t, 300.0, mean, epsTight)

		med, err := stats.Median(v, 1)
		require.NoError(t, err)
		assert.Equal(t, 20.0, med)

		disp, err := stats.Dispersion(v, 0)
		require.NoError(t, err)
		assert.InDelta(t, 2.0/3.0, disp, epsTight)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	empty, err := frame.NewDense(0, 2)
	require.NoError(t, err)
	d := columnOf(t, 1, 2)

	fns := map[string]func(frame.View, int) (float64, error){
		"Mean":       stats.Mean,
		"Median":     stats.Median,
		"Dispersion": stats.Dispersion,
		"StdDev":     stats.StdDev,
	}
	for name, fn := range fns {
		_, err = fn(empty, 0)
		assert.ErrorIs(t, err, stats.ErrEmptyDataset, name)

		_, err = fn(d, 1)
		assert.ErrorIs(t, err, stats.ErrOutOfRange, name)

		_, err = fn(d, -1)
		assert.ErrorIs(t, err, stats.ErrOutOfRange, name)

		_, err = fn(nil, 0)
		assert.ErrorIs(t, err, stats.ErrNilView, name)
	}
}

// TestStdDevIsSqrtDispersion checks the explicit square-root relationship.
func TestStdDevIsSqrtDispersion(t *testing.T) {
	t.Parallel()

	d := columnOf(t, 0.5, 1.25, -3, 8, 2.75)
	disp, err := stats.Dispersion(d, 0)
	require.NoError(t, err)
	sd, err := stats.StdDev(d, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(disp), sd, epsTight)
}
