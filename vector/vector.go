// SPDX-License-Identifier: MIT

// Package vector provides Vector, the owned float64 buffer every dml transform
// returns.
//
// Ownership:
//   - Each constructor and transform allocates a fresh backing array.
//   - Once returned, the caller owns the buffer; producers keep no reference.
//   - A zero-length Vector is a valid result (e.g., sampling zero points).
//
// Complexity quicksheet:
//   - New/Of/Clone: O(n); Len: O(1); Bounds: O(n); AllClose: O(n).
package vector

import (
	"github.com/hyp3rd/ewrap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/dml/internal/sentinel"
)

// Re-exported sentinels (identical values to internal/sentinel).
var (
	ErrInvalidArgument = sentinel.ErrInvalidArgument
	ErrEmptyDataset    = sentinel.ErrEmptyDataset
)

// Vector is a contiguous, fixed-length sequence of float64 values.
type Vector []float64

// New allocates a zero-filled Vector of length n.
// Returns ErrInvalidArgument when n < 0.
func New(n int) (Vector, error) {
	if n < 0 {
		return nil, ewrap.Wrapf(ErrInvalidArgument, "vector.New: length %d", n)
	}

	return make(Vector, n), nil
}

// Of copies values into a new Vector. Of() returns an empty, non-nil Vector.
func Of(values ...float64) Vector {
	out := make(Vector, len(values))
	copy(out, values)

	return out
}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy. The result is never nil.
// Complexity: O(n).
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Bounds returns the smallest and largest element.
// Returns ErrEmptyDataset for a zero-length Vector.
func (v Vector) Bounds() (lo, hi float64, err error) {
	if len(v) == 0 {
		return 0, 0, ewrap.Wrap(ErrEmptyDataset, "vector.Bounds")
	}

	return floats.Min(v), floats.Max(v), nil
}

// AllClose reports whether a and b have equal length and every pair of elements
// differs by at most tol.
func AllClose(a, b Vector, tol float64) bool {
	if len(a) != len(b) {
		return false
	}

	return floats.EqualApprox(a, b, tol)
}
