// SPDX-License-Identifier: MIT
// Package frame_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the frame tests.

package frame_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dml/frame"
)

// hide wraps any View to hide its concrete type from type assertions,
// forcing the generic At-based paths instead of the *Dense fast paths.
type hide struct{ frame.View }

// NewFilledDense builds an r×c *Dense from row-major vals or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *frame.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: value count")

	d, err := frame.NewDense(r, c)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, d.Set(i, j, vals[i*c+j]))
		}
	}

	return d
}
