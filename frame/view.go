// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/katalvlaran/dml/vector"
)

const (
	opColumn = "frame.Column"
	opRow    = "frame.Row"
)

// View is a read-only, rectangular, row-major grid of float64 cells.
// Every row has exactly Cols() cells.
//
// Contract:
//   - Rows() >= 0 and Cols() >= 0, constant for the lifetime of a single call
//     into any dml operation.
//   - At returns ErrOutOfRange (wrapped) for row ∉ [0,Rows()) or col ∉ [0,Cols()).
type View interface {
	// Rows returns the number of rows. O(1).
	Rows() int

	// Cols returns the number of columns. O(1).
	Cols() int

	// At returns the cell at (row, col). O(1).
	At(row, col int) (float64, error)
}

// Column reads column col of v into a freshly allocated Vector.
// Implementation:
//   - Stage 1: validate v (non-nil) and col.
//   - Stage 2: copy Rows() cells; *Dense reads the flat buffer directly.
//
// Errors: ErrNilView, ErrOutOfRange, or a wrapped At error.
// Complexity: O(rows) time and space.
func Column(v View, col int) (vector.Vector, error) {
	if err := ValidateColumn(v, col); err != nil {
		return nil, frameErrorf(opColumn, err)
	}
	if d, ok := v.(*Dense); ok {
		return d.column(col), nil
	}

	r := v.Rows()
	out := make(vector.Vector, r)
	var (
		x   float64
		err error
	)
	for i := 0; i < r; i++ {
		if x, err = v.At(i, col); err != nil {
			return nil, frameErrorf(opColumn, err)
		}
		out[i] = x
	}

	return out, nil
}

// Row reads row i of v into a freshly allocated Vector.
// Errors: ErrNilView, ErrOutOfRange, or a wrapped At error.
// Complexity: O(cols) time and space.
func Row(v View, i int) (vector.Vector, error) {
	if err := ValidateRow(v, i); err != nil {
		return nil, frameErrorf(opRow, err)
	}
	if d, ok := v.(*Dense); ok {
		return d.row(i), nil
	}

	c := v.Cols()
	out := make(vector.Vector, c)
	var (
		x   float64
		err error
	)
	for j := 0; j < c; j++ {
		if x, err = v.At(i, j); err != nil {
			return nil, frameErrorf(opRow, err)
		}
		out[j] = x
	}

	return out, nil
}
