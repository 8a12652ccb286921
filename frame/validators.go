// SPDX-License-Identifier: MIT
// Package: frame
//
// Purpose:
//  - Provide a single, canonical source of truth for the guard checks every
//    dml operation runs before computing anything.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → index → emptiness.
//  - All checks are O(1) and allocate nothing on the success path.

package frame

import (
	"github.com/hyp3rd/ewrap"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return ewrap.Wrap(err, tag)
}

// ValidateNotNil ensures the view reference is non-nil.
// Also catches a typed-nil *Dense stored in the interface.
func ValidateNotNil(v View) error {
	if v == nil {
		return validatorErrorf("ValidateNotNil", ErrNilView)
	}
	if d, ok := v.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilView)
	}

	return nil
}

// ValidateColumn – Composite: NotNil → 0 ≤ col < Cols().
func ValidateColumn(v View, col int) error {
	if err := ValidateNotNil(v); err != nil {
		return validatorErrorf("ValidateColumn", err)
	}
	if col < 0 || col >= v.Cols() {
		return ewrap.Wrapf(ErrOutOfRange, "ValidateColumn: col %d not in [0,%d)", col, v.Cols())
	}

	return nil
}

// ValidateRow – Composite: NotNil → 0 ≤ row < Rows().
func ValidateRow(v View, row int) error {
	if err := ValidateNotNil(v); err != nil {
		return validatorErrorf("ValidateRow", err)
	}
	if row < 0 || row >= v.Rows() {
		return ewrap.Wrapf(ErrOutOfRange, "ValidateRow: row %d not in [0,%d)", row, v.Rows())
	}

	return nil
}

// ValidateNonEmpty ensures the view has at least one row.
// Assumes v is not nil (run ValidateNotNil first).
func ValidateNonEmpty(v View) error {
	if v.Rows() == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmptyDataset)
	}

	return nil
}

// ValidateColumnStats – Composite used by every column statistic:
// NotNil → column index → at least one row.
func ValidateColumnStats(v View, col int) error {
	if err := ValidateColumn(v, col); err != nil {
		return err
	}

	return ValidateNonEmpty(v)
}
