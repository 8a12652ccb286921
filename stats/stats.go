// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"sort"

	"github.com/katalvlaran/dml/frame"
	"github.com/katalvlaran/dml/vector"
)

// Mean returns the arithmetic mean of column col.
//
// Errors:
//   - ErrNilView, ErrOutOfRange (col ∉ [0,Cols())), ErrEmptyDataset (Rows()==0).
//
// Complexity:
//   - Time O(n), Space O(n) for the column read.
func Mean(v frame.View, col int) (float64, error) {
	xs, err := column(opMean, v, col)
	if err != nil {
		return 0, err
	}

	return mean(xs), nil
}

// Median returns the order-statistic median of column col.
// Implementation:
//   - Stage 1: validate, then copy the column into a scratch Vector.
//   - Stage 2: sort the scratch copy ascending.
//   - Stage 3: pick the middle element (odd n) or average the two middle
//     elements (even n) of the sorted copy.
//
// Behavior highlights:
//   - The view is never reordered; the scratch copy is dropped on return.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func Median(v frame.View, col int) (float64, error) {
	xs, err := column(opMedian, v, col)
	if err != nil {
		return 0, err
	}

	return medianInPlace(xs), nil
}

// Dispersion returns the population variance of column col:
// (1/n)·Σ(x−mean)². The result is in squared units of the data.
//
// Complexity:
//   - Time O(n) (two passes), Space O(n).
func Dispersion(v frame.View, col int) (float64, error) {
	xs, err := column(opDispersion, v, col)
	if err != nil {
		return 0, err
	}

	return dispersion(xs, mean(xs)), nil
}

// StdDev returns the population standard deviation of column col, i.e. the
// square root of Dispersion.
func StdDev(v frame.View, col int) (float64, error) {
	xs, err := column(opStdDev, v, col)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(dispersion(xs, mean(xs))), nil
}

// column validates (nil → index → empty) and reads col into a scratch copy.
func column(op string, v frame.View, col int) (vector.Vector, error) {
	if err := frame.ValidateColumnStats(v, col); err != nil {
		return nil, statsErrorf(op, err)
	}
	xs, err := frame.Column(v, col)
	if err != nil {
		return nil, statsErrorf(op, err)
	}

	return xs, nil
}

// mean assumes len(xs) > 0. Deviations are accumulated relative to xs[0],
// so a constant column yields exactly xs[0].
func mean(xs vector.Vector) float64 {
	x0 := xs[0]
	var sum float64
	for _, x := range xs[1:] {
		sum += x - x0
	}

	return x0 + sum/float64(len(xs))
}

// dispersion assumes len(xs) > 0 and mu == mean(xs).
func dispersion(xs vector.Vector, mu float64) float64 {
	var sum, d float64
	for _, x := range xs {
		d = x - mu
		sum += d * d
	}

	return sum / float64(len(xs))
}

// medianInPlace sorts xs and returns its median. Assumes len(xs) > 0 and that
// xs is a scratch buffer owned by the caller.
func medianInPlace(xs vector.Vector) float64 {
	sort.Float64s(xs)
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}

	lo, hi := xs[n/2-1], xs[n/2]

	return lo + (hi-lo)/2
}
