// SPDX-License-Identifier: MIT

package frame

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/katalvlaran/dml/vector"
)

const (
	opHead = "frame.Head"
	opTail = "frame.Tail"

	headCellFormat = "%10.3f\t"
	tailCellFormat = "%10.2f "
)

// Head writes the first n rows of v to w, one line per row, framed by banners.
// n is clamped to Rows(); n < 0 fails with ErrInvalidArgument.
func Head(w io.Writer, v View, n int) error {
	first, count, err := window(opHead, v, n, false)
	if err != nil {
		return err
	}

	return writeRows(w, v, first, count, false, fmt.Sprintf("TOP %d ROWS", count), headCellFormat)
}

// Tail writes the last n rows of v to w, starting from the final row and
// moving upward. n is clamped to Rows(); n < 0 fails with ErrInvalidArgument.
func Tail(w io.Writer, v View, n int) error {
	first, count, err := window(opTail, v, n, true)
	if err != nil {
		return err
	}

	return writeRows(w, v, first, count, true, fmt.Sprintf("BOTTOM %d ROWS", count), tailCellFormat)
}

// window resolves the [first, first+count) row range for Head/Tail.
func window(op string, v View, n int, fromEnd bool) (first, count int, err error) {
	if err = ValidateNotNil(v); err != nil {
		return 0, 0, frameErrorf(op, err)
	}
	if n < 0 {
		return 0, 0, ewrap.Wrapf(ErrInvalidArgument, "%s: n=%d", op, n)
	}
	count = min(n, v.Rows())
	if fromEnd {
		first = v.Rows() - count
	}

	return first, count, nil
}

// writeRows prints rows [first, first+count), bottom-up when descending.
// The closing banner is a plain rule as wide as the opening one.
func writeRows(w io.Writer, v View, first, count int, descending bool, title, cellFormat string) error {
	bw := bufio.NewWriter(w)
	rule := fmt.Sprintf("================ %s ================", title)
	fmt.Fprintf(bw, "*** %s ***\n", rule)

	var (
		row vector.Vector
		err error
	)
	for k := 0; k < count; k++ {
		i := first + k
		if descending {
			i = first + count - 1 - k
		}
		if row, err = Row(v, i); err != nil {
			return frameErrorf("frame.writeRows", err)
		}
		for _, x := range row {
			fmt.Fprintf(bw, cellFormat, x)
		}
		bw.WriteString("\n")
	}
	fmt.Fprintf(bw, "*** %s ***\n", strings.Repeat("=", len(rule)))

	if err = bw.Flush(); err != nil {
		return ewrap.Wrap(err, "frame.writeRows: flush")
	}

	return nil
}
