// SPDX-License-Identifier: MIT

package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dml/frame"
	"github.com/katalvlaran/dml/stats"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	s, err := stats.Describe(columnOf(t, 9, 2, 4, 4, 5, 5, 7, 4), 0)
	require.NoError(t, err)
	assert.Equal(t, stats.Summary{
		Column:     0,
		Count:      8,
		Mean:       5,
		Median:     4.5,
		Dispersion: 4,
		StdDev:     2,
		Min:        2,
		Max:        9,
	}, s)
}

func TestDescribeAll(t *testing.T) {
	t.Parallel()

	d, err := frame.FromRows([][]float64{{1, 4}, {3, 8}})
	require.NoError(t, err)

	all, err := stats.DescribeAll(d)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[1].Column)
	assert.Equal(t, 6.0, all[1].Mean)
	assert.Equal(t, 1.0, all[0].Dispersion)

	empty, err := frame.NewDense(0, 2)
	require.NoError(t, err)
	_, err = stats.DescribeAll(empty)
	require.ErrorIs(t, err, stats.ErrEmptyDataset)

	_, err = stats.DescribeAll(nil)
	require.ErrorIs(t, err, stats.ErrNilView)
}
