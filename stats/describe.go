// SPDX-License-Identifier: MIT

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/dml/frame"
)

// Summary is a one-shot description of a single column.
// Dispersion is the population variance; StdDev is its square root.
type Summary struct {
	Column     int     `json:"column" msgpack:"column"`
	Name       string  `json:"name,omitempty" msgpack:"name"`
	Count      int     `json:"count" msgpack:"count"`
	Mean       float64 `json:"mean" msgpack:"mean"`
	Median     float64 `json:"median" msgpack:"median"`
	Dispersion float64 `json:"dispersion" msgpack:"dispersion"`
	StdDev     float64 `json:"std_dev" msgpack:"std_dev"`
	Min        float64 `json:"min" msgpack:"min"`
	Max        float64 `json:"max" msgpack:"max"`
}

// Describe computes every statistic of column col from a single column read.
// Same validation and errors as Mean.
func Describe(v frame.View, col int) (Summary, error) {
	xs, err := column(opDescribe, v, col)
	if err != nil {
		return Summary{}, err
	}

	mu := mean(xs)
	disp := dispersion(xs, mu)
	s := Summary{
		Column:     col,
		Count:      len(xs),
		Mean:       mu,
		Dispersion: disp,
		StdDev:     math.Sqrt(disp),
		Min:        floats.Min(xs),
		Max:        floats.Max(xs),
	}
	s.Median = medianInPlace(xs) // sorts the scratch copy; keep last

	return s, nil
}

// DescribeAll runs Describe on every column in ascending order.
// An empty view fails with ErrEmptyDataset; a view with rows but no columns
// returns an empty slice.
func DescribeAll(v frame.View) ([]Summary, error) {
	if err := frame.ValidateNotNil(v); err != nil {
		return nil, statsErrorf(opDescribeAll, err)
	}
	if err := frame.ValidateNonEmpty(v); err != nil {
		return nil, statsErrorf(opDescribeAll, err)
	}

	out := make([]Summary, 0, v.Cols())
	for j := 0; j < v.Cols(); j++ {
		s, err := Describe(v, j)
		if err != nil {
			return nil, statsErrorf(opDescribeAll, err)
		}
		out = append(out, s)
	}

	return out, nil
}
