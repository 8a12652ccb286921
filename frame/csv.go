// SPDX-License-Identifier: MIT

package frame

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"
)

const (
	opReadCSV = "frame.ReadCSV"
	opLoadCSV = "frame.LoadCSV"
)

// ReadCSV parses numeric CSV from r into a Dense.
// Implementation:
//   - Stage 1: resolve options; configure encoding/csv with a variable field count.
//   - Stage 2: optionally consume the header record as column names.
//   - Stage 3: parse every cell with strconv.ParseFloat into a flat row-major buffer.
//
// Behavior highlights:
//   - The first data record (or the header) fixes the column count.
//   - Empty input yields a legal 0×0 Dense; header-only input yields 0×len(header).
//   - Blank lines are skipped by encoding/csv.
//
// Returns:
//   - *Dense holding the data, and the header names (nil without WithHeader).
//
// Errors:
//   - ErrParse (with 1-based record and field positions) for non-numeric cells.
//   - ErrRaggedRows for a record whose field count differs.
//   - ErrNaNInf for NaN/Inf cells unless WithNoValidateNaNInf is set.
//   - Wrapped reader/csv syntax errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ReadCSV(r io.Reader, opts ...Option) (*Dense, []string, error) {
	o := gatherOptions(opts...)

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1 // ragged records are reported as ErrRaggedRows below
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = o.trimSpace

	var (
		header []string
		data   []float64
		cols   = -1
		rows   int
		line   int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, ewrap.Wrap(err, opReadCSV)
		}
		line++

		if o.header && header == nil {
			header = make([]string, len(rec))
			for j, name := range rec {
				header[j] = strings.TrimSpace(name)
			}
			cols = len(rec)

			continue
		}
		if cols < 0 {
			cols = len(rec)
		}
		if len(rec) != cols {
			return nil, nil, ewrap.Wrapf(ErrRaggedRows, "%s: record %d has %d fields, want %d", opReadCSV, line, len(rec), cols)
		}

		for j, cell := range rec {
			if o.trimSpace {
				cell = strings.TrimSpace(cell)
			}
			x, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, nil, ewrap.Wrapf(ErrParse, "%s: record %d field %d %q", opReadCSV, line, j+1, cell)
			}
			if o.validateNaNInf && (math.IsNaN(x) || math.IsInf(x, 0)) {
				return nil, nil, ewrap.Wrapf(ErrNaNInf, "%s: record %d field %d", opReadCSV, line, j+1)
			}
			data = append(data, x)
		}
		rows++
	}
	if cols < 0 {
		cols = 0
	}
	if data == nil {
		data = make([]float64, 0)
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           data,
		validateNaNInf: o.validateNaNInf,
	}, header, nil
}

// LoadCSV opens path and delegates to ReadCSV.
func LoadCSV(path string, opts ...Option) (*Dense, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, ewrap.Wrap(err, opLoadCSV)
	}
	defer f.Close()

	d, header, err := ReadCSV(f, opts...)
	if err != nil {
		return nil, nil, ewrap.Wrapf(err, "%s(%s)", opLoadCSV, path)
	}

	return d, header, nil
}
