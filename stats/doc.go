// SPDX-License-Identifier: MIT

// Package stats computes per-column summaries of a frame.View: mean, median and
// dispersion, plus the derived standard deviation and a one-shot Describe.
//
// Definitions:
//
//	Mean(col)       = (1/n) · Σ x_i
//	Median(col)     = middle of the ascending-sorted column (mean of the two
//	                  middle values when n is even)
//	Dispersion(col) = (1/n) · Σ (x_i − mean)²   population variance, squared units
//	StdDev(col)     = √Dispersion(col)
//
// Dispersion is a variance, not a standard deviation. Callers wanting the
// latter use StdDev, which takes the square root explicitly.
//
// Every function validates in the order nil view → column index → empty
// dataset, and never mutates the view. Median sorts a scratch copy.
//
// Usage:
//
//	d, _, _ := frame.LoadCSV("iris.csv", frame.WithHeader())
//	m, err := stats.Median(d, 2)
package stats
