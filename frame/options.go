// SPDX-License-Identifier: MIT

// Package frame: functional configuration for CSV ingestion.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper that resolves setters against the defaults.
package frame

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultComma is the field delimiter used by ReadCSV.
	DefaultComma = ','

	// DefaultHeader controls whether the first record is treated as column names.
	DefaultHeader = false

	// DefaultTrimSpace trims surrounding blanks in each cell before parsing.
	DefaultTrimSpace = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCommaInvalid = "frame: WithComma: delimiter must be a printable, non-quote, non-newline rune"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	comma          rune
	header         bool
	trimSpace      bool
	validateNaNInf bool
}

// WithComma sets the field delimiter (e.g., ';' or '\t').
// Panics on '"', '\r', '\n' or the Unicode replacement rune (programmer error).
func WithComma(r rune) Option {
	if r == '"' || r == '\r' || r == '\n' || r == 0xFFFD {
		panic(panicCommaInvalid)
	}

	return func(o *options) { o.comma = r }
}

// WithHeader treats the first record as column names.
func WithHeader() Option {
	return func(o *options) { o.header = true }
}

// WithNoTrimSpace keeps cells verbatim; " 1.5" will then fail to parse.
func WithNoTrimSpace() Option {
	return func(o *options) { o.trimSpace = false }
}

// WithNoValidateNaNInf lets "NaN"/"Inf" cells through ingestion.
// Downstream statistics then propagate NaN as IEEE-754 dictates.
func WithNoValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) options {
	o := options{
		comma:          DefaultComma,
		header:         DefaultHeader,
		trimSpace:      DefaultTrimSpace,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
