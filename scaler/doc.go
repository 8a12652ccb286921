// SPDX-License-Identifier: MIT

// Package scaler applies affine rescaling to vector.Vector values.
//
// Two entry points mirror how learning pipelines shape features:
//
//	ScaleByRange(v, lo, hi)          out = x / (hi − lo)
//	Rescale(v, lo, hi, nlo, nhi)     out = x·scale + offset
//	                                 scale  = (nhi − nlo) / (hi − lo)
//	                                 offset = nlo − scale·lo
//
// ScaleByRange only divides by the span; it does not subtract lo, so the
// output lands in [0,1] only when the input already lies in [0, hi−lo].
// Rescale is the general min-max mapping and is exactly invertible through
// Affine.Inverse.
//
// Every function returns a new Vector of the input's length and leaves the
// input untouched. Zero-span or non-finite bounds fail with ErrInvalidArgument
// before anything is allocated.
package scaler
