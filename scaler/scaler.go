// SPDX-License-Identifier: MIT

package scaler

import (
	"math"

	"github.com/hyp3rd/ewrap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/dml/internal/sentinel"
	"github.com/katalvlaran/dml/vector"
)

// Re-exported sentinels; match with errors.Is.
var (
	ErrInvalidArgument = sentinel.ErrInvalidArgument
	ErrEmptyDataset    = sentinel.ErrEmptyDataset
)

const (
	opScaleByRange = "scaler.ScaleByRange"
	opRescale      = "scaler.Rescale"
	opNewAffine    = "scaler.NewAffine"
	opInverse      = "scaler.Affine.Inverse"
	opMinMax       = "scaler.MinMax"
)

// ScaleByRange divides every element of v by (upper − lower).
// Errors: ErrInvalidArgument when upper == lower, either bound is NaN/±Inf, or
// upper − lower overflows.
// Complexity: O(n).
func ScaleByRange(v vector.Vector, lower, upper float64) (vector.Vector, error) {
	if err := validateSpan(opScaleByRange, lower, upper); err != nil {
		return nil, err
	}
	span := upper - lower

	out := make(vector.Vector, len(v))
	for i, x := range v {
		out[i] = x / span // true division, not x*(1/span)
	}

	return out, nil
}

// Rescale maps v from [lower, upper] onto [newLower, newUpper] with the affine
// transform x·scale + offset.
// Errors: ErrInvalidArgument when either range is empty, non-finite or
// overflowing, or when the derived transform cannot be inverted.
// Complexity: O(n).
func Rescale(v vector.Vector, lower, upper, newLower, newUpper float64) (vector.Vector, error) {
	a, err := NewAffine(lower, upper, newLower, newUpper)
	if err != nil {
		return nil, ewrap.Wrap(err, opRescale)
	}

	return a.Apply(v), nil
}

// MinMax fits the source range from v's own bounds and rescales onto
// [newLower, newUpper]. The fitted transform is returned so the same mapping
// can be applied to held-out data or inverted later.
//
// Errors:
//   - ErrEmptyDataset for an empty v.
//   - ErrInvalidArgument for a constant v (zero span) or invalid target bounds.
func MinMax(v vector.Vector, newLower, newUpper float64) (vector.Vector, Affine, error) {
	lo, hi, err := v.Bounds()
	if err != nil {
		return nil, Affine{}, ewrap.Wrap(err, opMinMax)
	}
	a, err := NewAffine(lo, hi, newLower, newUpper)
	if err != nil {
		return nil, Affine{}, ewrap.Wrap(err, opMinMax)
	}

	return a.Apply(v), a, nil
}

// validateSpan rejects non-finite bounds, a zero-width range and a width
// that overflows float64.
func validateSpan(op string, lower, upper float64) error {
	if !finite(lower) || !finite(upper) {
		return ewrap.Wrapf(ErrInvalidArgument, "%s: non-finite bound [%g, %g]", op, lower, upper)
	}
	if upper == lower {
		return ewrap.Wrapf(ErrInvalidArgument, "%s: zero span at %g", op, lower)
	}
	if !finite(upper - lower) {
		return ewrap.Wrapf(ErrInvalidArgument, "%s: span of [%g, %g] overflows", op, lower, upper)
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Affine is the transform x ↦ x·Scale + Offset.
type Affine struct {
	Scale  float64 `json:"scale" msgpack:"scale"`
	Offset float64 `json:"offset" msgpack:"offset"`
}

// NewAffine builds the transform mapping [lower, upper] onto [newLower, newUpper]:
// Scale = (newUpper − newLower)/(upper − lower), Offset = newLower − Scale·lower.
// Reversed ranges (newUpper < newLower) are legal and flip the orientation.
// A Scale that underflows to zero or overflows, or an Offset that overflows,
// is rejected so every returned Affine has an Inverse.
func NewAffine(lower, upper, newLower, newUpper float64) (Affine, error) {
	if err := validateSpan(opNewAffine, lower, upper); err != nil {
		return Affine{}, err
	}
	if err := validateSpan(opNewAffine, newLower, newUpper); err != nil {
		return Affine{}, err
	}
	scale := (newUpper - newLower) / (upper - lower)
	offset := newLower - scale*lower
	if scale == 0 || !finite(scale) || !finite(offset) {
		return Affine{}, ewrap.Wrapf(ErrInvalidArgument, "%s: degenerate transform scale=%g offset=%g", opNewAffine, scale, offset)
	}

	return Affine{Scale: scale, Offset: offset}, nil
}

// Apply returns a new Vector with the transform applied to every element.
func (a Affine) Apply(v vector.Vector) vector.Vector {
	out := v.Clone()
	floats.Scale(a.Scale, out)
	floats.AddConst(a.Offset, out)

	return out
}

// Inverse returns the transform undoing a.
// Errors: ErrInvalidArgument when Scale is zero or non-finite.
func (a Affine) Inverse() (Affine, error) {
	if a.Scale == 0 || !finite(a.Scale) || !finite(a.Offset) {
		return Affine{}, ewrap.Wrapf(ErrInvalidArgument, "%s: scale=%g offset=%g", opInverse, a.Scale, a.Offset)
	}

	return Affine{Scale: 1 / a.Scale, Offset: -a.Offset / a.Scale}, nil
}
