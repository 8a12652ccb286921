// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
	"github.com/shamaton/msgpack/v2"
)

// JSONEncoder writes indented JSON.
type JSONEncoder struct{}

// Encode serializes r as JSON.
func (*JSONEncoder) Encode(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return ewrap.Wrap(err, "failed to encode json")
	}

	return nil
}

// MsgpackEncoder writes a single MessagePack document.
type MsgpackEncoder struct{}

// Encode serializes r as MessagePack.
func (*MsgpackEncoder) Encode(w io.Writer, r *Report) error {
	data, err := msgpack.Marshal(r)
	if err != nil {
		return ewrap.Wrap(err, "failed to marshal msgpack")
	}
	if _, err = w.Write(data); err != nil {
		return ewrap.Wrap(err, "failed to write msgpack")
	}

	return nil
}

// TextEncoder writes an aligned table of column summaries followed by the
// sample and rescaled vectors, when present.
type TextEncoder struct{}

// Encode renders r for a terminal.
func (*TextEncoder) Encode(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "source: %s (%d rows x %d cols)\n", r.Source, r.Rows, r.Cols)
	fmt.Fprintln(tw, "col\tname\tcount\tmean\tmedian\tdispersion\tstd_dev\tmin\tmax\t")
	for _, s := range r.Columns {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			s.Column, s.Name, s.Count, s.Mean, s.Median, s.Dispersion, s.StdDev, s.Min, s.Max)
	}
	if err := tw.Flush(); err != nil {
		return ewrap.Wrap(err, "failed to write text report")
	}

	if len(r.Sample) > 0 {
		if _, err := fmt.Fprintf(w, "sample: %.4g\n", r.Sample); err != nil {
			return ewrap.Wrap(err, "failed to write text report")
		}
	}
	if len(r.Rescaled) > 0 {
		if _, err := fmt.Fprintf(w, "rescaled: %.4g\n", r.Rescaled); err != nil {
			return ewrap.Wrap(err, "failed to write text report")
		}
	}

	return nil
}
