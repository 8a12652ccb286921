// SPDX-License-Identifier: MIT

// Package frame holds the read-only tabular contract consumed by the dml
// statistics, sampling and scaling packages, and the collaborators around it.
//
// The frame package provides:
//
//   - View: a rectangular, row-major float64 grid with bounds-checked At.
//   - Dense: a flat-buffer View implementation with Set/Row/Column/Clone.
//   - FromGonum / ToGonum: adapters to gonum's mat.Matrix.
//   - ReadCSV / LoadCSV: numeric CSV ingestion into a Dense.
//   - Head / Tail: fixed-width display of the first or last N rows.
//
// Consumers never mutate a View. Dense is safe for concurrent readers as long
// as no goroutine calls Set at the same time.
package frame
