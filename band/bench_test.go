package band_test

import (
	"testing"

	"github.com/katalvlaran/scalekit/band"
)

var benchSink band.Geometry

// BenchmarkSolve measures one full geometry derivation, the cost paid per
// configuration change.
func BenchmarkSolve(b *testing.B) {
	opts := band.DefaultOptions()
	opts.Count = 64
	opts.Range = [2]float64{0, 1920}
	opts.PaddingInner = 0.2
	opts.PaddingOuter = 0.1
	opts.Round = true

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := band.Solve(opts)
		if err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
		benchSink = g
	}
}
