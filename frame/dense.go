// SPDX-License-Identifier: MIT

// Package frame - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) on Set.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row/Column/Clone: O(r) / O(c) / O(r*c).

package frame

import (
	"fmt"
	"math"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/katalvlaran/dml/vector"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers

	opNewDense = "frame.NewDense"
	opFromRows = "frame.FromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// DefaultValidateNaNInf toggles strict finite-value validation on Set.
const DefaultValidateNaNInf = true

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return ewrap.Wrapf(err, "Dense.%s(%d,%d)", method, row, col)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ View         = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Behavior highlights:
//   - Zero rows (or zero columns) are legal: an empty dataset is a valid View,
//     and the statistics layer reports ErrEmptyDataset on it.
//   - Negative dimensions fail with ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ewrap.Wrapf(ErrInvalidDimensions, "%s(%d,%d)", opNewDense, rows, cols)
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// FromRows copies a row-oriented [][]float64 into a new Dense.
// Implementation:
//   - Stage 1: derive cols from the first row; reject ragged input.
//   - Stage 2: copy row by row into the flat buffer, applying the numeric policy.
//
// Errors:
//   - ErrRaggedRows when any row length differs from the first.
//   - ErrNaNInf for non-finite cells.
//
// Notes:
//   - FromRows(nil) yields a legal 0×0 Dense.
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	d, err := NewDense(r, c)
	if err != nil {
		return nil, frameErrorf(opFromRows, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ewrap.Wrapf(ErrRaggedRows, "%s: row %d has %d cells, want %d", opFromRows, i, len(rows[i]), c)
		}
		for j = 0; j < c; j++ {
			if err = d.Set(i, j, rows[i][j]); err != nil {
				return nil, frameErrorf(opFromRows, err)
			}
		}
	}

	return d, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for NaN/±Inf when the policy is on.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row copies row i into a new Vector.
// Errors: ErrOutOfRange when i ∉ [0, Rows()).
func (m *Dense) Row(i int) (vector.Vector, error) {
	return Row(m, i)
}

// row is the unchecked contiguous read used by the Row fast path.
func (m *Dense) row(i int) vector.Vector {
	base := i * m.c

	return vector.Of(m.data[base : base+m.c]...)
}

// Column copies column j into a new Vector.
// Errors: ErrOutOfRange when j ∉ [0, Cols()).
func (m *Dense) Column(j int) (vector.Vector, error) {
	return Column(m, j)
}

// column is the unchecked flat-buffer read used by the Column fast path.
func (m *Dense) column(j int) vector.Vector {
	out := make(vector.Vector, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j] // strided read down the column
	}

	return out
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// String renders rows as "[a, b, c]\n" lines for diagnostics.
// Not for hot paths; see Head/Tail for fixed-width display.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
