// SPDX-License-Identifier: MIT

// Package sentinel is the single source of truth for the error values shared by
// the dml packages. Public packages re-export these so callers can match with
// errors.Is against whichever package they imported.
//
// Every message is prefixed with "dml: ..." for easy grepping across logs.
// Operation context is attached at the detection site with ewrap.Wrap; the
// sentinel itself is never reassigned.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrEmptyDataset is returned when an operation that needs at least one row
	// (or at least one cell) runs on an empty view.
	ErrEmptyDataset = ewrap.New("dml: empty dataset")

	// ErrOutOfRange indicates a row or column index outside [0, Rows()) or [0, Cols()).
	ErrOutOfRange = ewrap.New("dml: index out of range")

	// ErrInvalidArgument marks a malformed numeric argument: a negative count,
	// a zero-span range or a non-finite bound.
	ErrInvalidArgument = ewrap.New("dml: invalid argument")

	// ErrNilView indicates that a nil view was passed where data was required.
	ErrNilView = ewrap.New("dml: nil view")

	// ErrInvalidDimensions indicates negative dimensions on construction.
	ErrInvalidDimensions = ewrap.New("dml: dimensions must be >= 0")

	// ErrRaggedRows signals rows of unequal length in row-based input.
	ErrRaggedRows = ewrap.New("dml: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required.
	ErrNaNInf = ewrap.New("dml: NaN or Inf encountered")

	// ErrParse signals a cell that could not be read as a number.
	ErrParse = ewrap.New("dml: cannot parse numeric cell")

	// ErrUnknownFormat is returned by the report registry for an unregistered encoder.
	ErrUnknownFormat = ewrap.New("dml: unknown report format")
)
