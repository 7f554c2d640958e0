package continuous_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/scalekit/continuous"
	"github.com/katalvlaran/scalekit/interpolate"
)

// benchSink defeats dead-code elimination of the mapped values.
var benchSink float64

// naiveMap re-examines every option on every call — exactly the per-call
// branching the compiled chain removes. Benchmark baseline only.
func naiveMap(o *continuous.Options, x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return o.Unknown
	}

	t := (x - o.Domain[0]) / (o.Domain[1] - o.Domain[0])
	if o.Clamp {
		t = interpolate.Clamp01(t)
	}
	if o.Transform == continuous.Pow && o.Exponent != 1 {
		t = math.Pow(t, o.Exponent)
	}
	factory := o.Interpolate
	if factory == nil {
		factory = interpolate.Number
	}
	y := factory(o.Range[0], o.Range[1])(t)
	if o.Round {
		y = math.Round(y)
	}

	return y
}

// benchmarkMap maps n pseudo-data points through s per iteration.
func benchmarkMap(b *testing.B, s *continuous.Scale) {
	b.Helper()

	xs := make([]float64, 1024)
	for i := range xs {
		xs[i] = float64(i) * 10 / float64(len(xs))
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		for _, x := range xs {
			benchSink = s.Map(x)
		}
	}
}

// BenchmarkMap_Bare benchmarks the minimal two-stage chain.
func BenchmarkMap_Bare(b *testing.B) {
	opts := continuous.DefaultOptions()
	opts.Domain = []float64{0, 10}
	opts.Range = []float64{0, 100}
	s, err := continuous.New(opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	benchmarkMap(b, s)
}

// BenchmarkMap_AllStages benchmarks clamp+pow+round composed in.
func BenchmarkMap_AllStages(b *testing.B) {
	opts := continuous.DefaultOptions()
	opts.Domain = []float64{0, 10}
	opts.Range = []float64{0, 100}
	opts.Clamp = true
	opts.Round = true
	opts.Transform = continuous.Pow
	opts.Exponent = 0.5
	s, err := continuous.New(opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	benchmarkMap(b, s)
}

// BenchmarkMap_NaiveBaseline benchmarks the per-call branching strategy the
// engine avoids, for comparison with BenchmarkMap_AllStages.
func BenchmarkMap_NaiveBaseline(b *testing.B) {
	opts := continuous.DefaultOptions()
	opts.Domain = []float64{0, 10}
	opts.Range = []float64{0, 100}
	opts.Clamp = true
	opts.Round = true
	opts.Transform = continuous.Pow
	opts.Exponent = 0.5

	xs := make([]float64, 1024)
	for i := range xs {
		xs[i] = float64(i) * 10 / float64(len(xs))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, x := range xs {
			benchSink = naiveMap(&opts, x)
		}
	}
}

// BenchmarkUpdate benchmarks full recomposition, the cold path.
func BenchmarkUpdate(b *testing.B) {
	opts := continuous.DefaultOptions()
	opts.Domain = []float64{0, 10}
	opts.Range = []float64{0, 100}
	s, err := continuous.New(opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clamp := i%2 == 0
		if err := s.Update(func(o *continuous.Options) { o.Clamp = clamp }); err != nil {
			b.Fatalf("Update failed: %v", err)
		}
	}
}
