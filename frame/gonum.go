// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/hyp3rd/ewrap"
	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum = "frame.FromGonum"
	opToGonum   = "frame.ToGonum"
)

// gonumView adapts a gonum mat.Matrix to View.
// gonum panics on out-of-range At; the adapter checks bounds first so the
// View contract (error, not panic) holds.
type gonumView struct {
	m    mat.Matrix
	r, c int
}

var _ View = (*gonumView)(nil)

// FromGonum wraps m as a read-only View without copying.
// The caller must not mutate m while a dml operation is reading it.
// Errors: ErrNilView when m is nil.
func FromGonum(m mat.Matrix) (View, error) {
	if m == nil {
		return nil, ewrap.Wrap(ErrNilView, opFromGonum)
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return nil, ewrap.Wrap(ErrNilView, opFromGonum)
	}
	r, c := m.Dims()

	return &gonumView{m: m, r: r, c: c}, nil
}

func (g *gonumView) Rows() int { return g.r }

func (g *gonumView) Cols() int { return g.c }

func (g *gonumView) At(row, col int) (float64, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, ewrap.Wrapf(ErrOutOfRange, "%s.At(%d,%d)", opFromGonum, row, col)
	}

	return g.m.At(row, col), nil
}

// ToGonum copies v into a new *mat.Dense.
// gonum does not allow zero-sized dense matrices, so an empty view fails with
// ErrEmptyDataset.
// Complexity: O(r*c).
func ToGonum(v View) (*mat.Dense, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, frameErrorf(opToGonum, err)
	}
	r, c := v.Rows(), v.Cols()
	if r == 0 || c == 0 {
		return nil, ewrap.Wrapf(ErrEmptyDataset, "%s: shape %dx%d", opToGonum, r, c)
	}

	if d, ok := v.(*Dense); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data) // mat.NewDense adopts the slice; never hand it ours

		return mat.NewDense(r, c, buf), nil
	}

	out := mat.NewDense(r, c, nil)
	var (
		x   float64
		err error
	)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if x, err = v.At(i, j); err != nil {
				return nil, frameErrorf(opToGonum, err)
			}
			out.Set(i, j, x)
		}
	}

	return out, nil
}
