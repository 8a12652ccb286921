// SPDX-License-Identifier: MIT
// Package frame: sentinel error set.
// Values are re-exported from internal/sentinel so a caller importing only
// frame can match with errors.Is. Detection sites attach context through
// frameErrorf; the sentinel stays reachable through the wrap chain.

package frame

import (
	"github.com/hyp3rd/ewrap"

	"github.com/katalvlaran/dml/internal/sentinel"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this, never panic.
	ErrOutOfRange = sentinel.ErrOutOfRange

	// ErrEmptyDataset indicates a view with no rows where at least one is required.
	ErrEmptyDataset = sentinel.ErrEmptyDataset

	// ErrInvalidArgument marks a malformed numeric argument (e.g., negative row count).
	ErrInvalidArgument = sentinel.ErrInvalidArgument

	// ErrNilView indicates that a nil View (or nil gonum matrix) was used.
	ErrNilView = sentinel.ErrNilView

	// ErrInvalidDimensions indicates negative dimensions on construction.
	ErrInvalidDimensions = sentinel.ErrInvalidDimensions

	// ErrRaggedRows signals input rows of unequal length.
	ErrRaggedRows = sentinel.ErrRaggedRows

	// ErrNaNInf signals a NaN or ±Inf rejected by the numeric policy.
	ErrNaNInf = sentinel.ErrNaNInf

	// ErrParse signals a CSV cell that is not a number.
	ErrParse = sentinel.ErrParse
)

// frameErrorf wraps an underlying error with an operation tag.
func frameErrorf(tag string, err error) error {
	return ewrap.Wrap(err, tag)
}
