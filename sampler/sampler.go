// SPDX-License-Identifier: MIT

// Package sampler draws uniformly random cells from a frame.View.
//
// Each draw picks a row uniformly in [0, Rows()) and, independently, a column
// uniformly in [0, Cols()). Draws are with replacement, so one call may return
// the same cell twice and may mix values from different columns.
//
// Randomness:
//   - A Sampler owns one golang.org/x/exp/rand generator, seeded exactly once
//     at construction (WithSeed for reproducible runs, otherwise the clock).
//   - Draws are serialized by a mutex, so a Sampler is safe for concurrent use.
//   - The package-level Sample shares one process-wide Sampler, created lazily.
package sampler

import (
	"sync"
	"time"

	"github.com/hyp3rd/ewrap"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/dml/frame"
	"github.com/katalvlaran/dml/internal/sentinel"
	"github.com/katalvlaran/dml/vector"
)

// Re-exported sentinels; match with errors.Is.
var (
	ErrInvalidArgument = sentinel.ErrInvalidArgument
	ErrEmptyDataset    = sentinel.ErrEmptyDataset
	ErrNilView         = sentinel.ErrNilView
)

const opSample = "sampler.Sample"

// Option configures a Sampler.
type Option func(*options)

type options struct {
	seed    uint64
	seedSet bool
}

// WithSeed fixes the generator seed; two Samplers with the same seed produce
// the same stream of draws.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// Sampler draws random cells from a View. The zero value is not usable; call New.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Sampler seeded once, from WithSeed or from the clock.
func New(opts ...Option) *Sampler {
	var o options
	for _, set := range opts {
		set(&o)
	}
	if !o.seedSet {
		o.seed = uint64(time.Now().UnixNano())
	}

	return &Sampler{rng: rand.New(rand.NewSource(o.seed))}
}

// Sample returns count cells of v drawn uniformly with replacement.
//
// Behavior highlights:
//   - count == 0 returns an empty, non-nil Vector (even on an empty view).
//   - All validation happens before the first draw; no partial results.
//
// Errors:
//   - ErrNilView for a nil view.
//   - ErrInvalidArgument when count < 0.
//   - ErrEmptyDataset when count > 0 and the view has no rows or no columns.
//   - A wrapped At error from a misbehaving View.
//
// Complexity:
//   - Time O(count), Space O(count).
func (s *Sampler) Sample(v frame.View, count int) (vector.Vector, error) {
	if err := frame.ValidateNotNil(v); err != nil {
		return nil, ewrap.Wrap(err, opSample)
	}
	if count < 0 {
		return nil, ewrap.Wrapf(ErrInvalidArgument, "%s: count=%d", opSample, count)
	}
	out := make(vector.Vector, count)
	if count == 0 {
		return out, nil
	}
	rows, cols := v.Rows(), v.Cols()
	if rows == 0 || cols == 0 {
		return nil, ewrap.Wrapf(ErrEmptyDataset, "%s: shape %dx%d", opSample, rows, cols)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		i, j int
		x    float64
		err  error
	)
	for k := 0; k < count; k++ {
		i = s.rng.Intn(rows)
		j = s.rng.Intn(cols)
		if x, err = v.At(i, j); err != nil {
			return nil, ewrap.Wrap(err, opSample)
		}
		out[k] = x
	}

	return out, nil
}

var (
	defaultOnce    sync.Once
	defaultSampler *Sampler
)

// Default returns the process-wide Sampler, seeded once on first use.
func Default() *Sampler {
	defaultOnce.Do(func() { defaultSampler = New() })

	return defaultSampler
}

// Sample draws from the process-wide Sampler. See (*Sampler).Sample.
func Sample(v frame.View, count int) (vector.Vector, error) {
	return Default().Sample(v, count)
}
