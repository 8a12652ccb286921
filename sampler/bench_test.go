// SPDX-License-Identifier: MIT

package sampler_test

import (
	"testing"

	"github.com/katalvlaran/dml/frame"
	"github.com/katalvlaran/dml/sampler"
)

// BenchmarkSample_1k benchmarks 1000 draws from a 1000×16 view.
func BenchmarkSample_1k(b *testing.B) {
	d, err := frame.NewDense(1000, 16)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	s := sampler.New(sampler.WithSeed(1))

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = s.Sample(d, 1000); err != nil {
			b.Fatalf("Sample failed: %v", err)
		}
	}
}
