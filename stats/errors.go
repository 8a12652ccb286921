// SPDX-License-Identifier: MIT

package stats

import (
	"github.com/hyp3rd/ewrap"

	"github.com/katalvlaran/dml/internal/sentinel"
)

// Re-exported sentinels; match with errors.Is.
var (
	ErrEmptyDataset = sentinel.ErrEmptyDataset
	ErrOutOfRange   = sentinel.ErrOutOfRange
	ErrNilView      = sentinel.ErrNilView
)

// Operation name constants for unified error wrapping.
const (
	opMean        = "stats.Mean"
	opMedian      = "stats.Median"
	opDispersion  = "stats.Dispersion"
	opStdDev      = "stats.StdDev"
	opDescribe    = "stats.Describe"
	opDescribeAll = "stats.DescribeAll"
)

// statsErrorf wraps an underlying error with the given operation tag.
func statsErrorf(tag string, err error) error {
	return ewrap.Wrap(err, tag)
}
