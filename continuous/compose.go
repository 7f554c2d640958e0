package continuous

import (
	"math"

	"github.com/katalvlaran/scalekit/interpolate"
)

// mapper is one compiled stage: the whole pipeline is float64 → float64, so
// stages compose by plain function nesting.
type mapper = func(float64) float64

// fold collapses a stage list into one closure. The hot path pays only the
// nested calls; no loop, no flag checks.
func fold(chain []mapper) mapper {
	f := chain[0]
	for _, stage := range chain[1:] {
		inner, outer := f, stage
		f = func(x float64) float64 { return outer(inner(x)) }
	}

	return f
}

// compose compiles the forward chain, its stage count, and the inverse
// chain (nil when the configuration has no defined inverse). Called once
// per configuration change; options must already be merged and validated.
func compose(o *Options) (fwd, inv mapper, stages int) {
	factory := o.Interpolate
	custom := factory != nil
	if factory == nil {
		factory = interpolate.Number
	}

	if len(o.Domain) > 2 {
		return composePiecewise(o, factory, custom)
	}

	d0, d1 := o.Domain[0], o.Domain[1]
	r0, r1 := o.Range[0], o.Range[1]

	norm, denorm := normalize(d0, d1)
	if o.Transform == Log {
		norm, denorm = normalizeLog(d0, d1)
	}

	chain := []mapper{norm}
	if o.Clamp {
		chain = append(chain, interpolate.Clamp01)
	}
	// Pow with exponent 1 is the identity; keep it out of the chain.
	warped := o.Transform == Pow && o.Exponent != 1
	if warped {
		chain = append(chain, powWarp(o.Exponent))
	}
	chain = append(chain, mapper(factory(r0, r1)))
	if o.Round {
		chain = append(chain, math.Round)
	}

	fwd = fold(chain)
	stages = len(chain)

	// Inverse chain, outermost stage first undone: rounding has no inverse
	// and is skipped; a clamped scale inverts out-of-range output to the
	// nearest domain bound.
	if invInterp, ok := interpolate.InvertNumber(r0, r1); ok && !custom {
		ichain := []mapper{invInterp}
		if o.Clamp {
			ichain = append(ichain, interpolate.Clamp01)
		}
		if warped {
			ichain = append(ichain, powWarp(1/o.Exponent))
		}
		ichain = append(ichain, denorm)
		inv = fold(ichain)
	}

	return fwd, inv, stages
}

// composePiecewise compiles a multi-stop configuration: binary search for
// the bracketing domain segment, then that segment's precomputed normalizer
// and interpolator. Both stop lists are reversed up front when the domain
// descends, so the search always runs over ascending stops.
func composePiecewise(o *Options, factory interpolate.Factory, custom bool) (fwd, inv mapper, stages int) {
	d := append([]float64(nil), o.Domain...)
	r := append([]float64(nil), o.Range...)
	if d[0] > d[len(d)-1] {
		reverse(d)
		reverse(r)
	}

	n := len(d) - 1
	norms := make([]mapper, n)
	interps := make([]mapper, n)
	for i := 0; i < n; i++ {
		seg, _ := normalize(d[i], d[i+1])
		norms[i] = seg
		interps[i] = factory(r[i], r[i+1])
	}

	poly := func(x float64) float64 {
		i := bisect(d, x)

		return interps[i](norms[i](x))
	}

	chain := []mapper{}
	if o.Clamp {
		chain = append(chain, clampTo(d[0], d[n]))
	}
	chain = append(chain, poly)
	if o.Round {
		chain = append(chain, math.Round)
	}

	fwd = fold(chain)
	// The fused search+normalize+interpolate stage counts as the two base
	// stages of the simple path, keeping stage accounting uniform.
	stages = len(chain) + 1

	if !custom {
		inv = piecewiseInverse(o, d, r)
	}

	return fwd, inv, stages
}

// piecewiseInverse compiles the inverse of a multi-stop numeric mapping, or
// returns nil when the range is not strictly monotonic (no unique inverse).
func piecewiseInverse(o *Options, d, r []float64) mapper {
	rr := append([]float64(nil), r...)
	dd := append([]float64(nil), d...)
	if rr[0] > rr[len(rr)-1] {
		reverse(rr)
		reverse(dd)
	}

	n := len(rr) - 1
	invInterps := make([]mapper, n)
	denorms := make([]mapper, n)
	for i := 0; i < n; i++ {
		if rr[i] >= rr[i+1] {
			return nil
		}
		seg, ok := interpolate.InvertNumber(rr[i], rr[i+1])
		if !ok {
			return nil
		}
		invInterps[i] = seg
		_, denorms[i] = normalize(dd[i], dd[i+1])
	}

	clamp := o.Clamp

	return func(y float64) float64 {
		i := bisect(rr, y)
		t := invInterps[i](y)
		if clamp {
			t = interpolate.Clamp01(t)
		}

		return denorms[i](t)
	}
}

// bisect returns the index i of the segment [stops[i], stops[i+1]] that
// brackets x, clamping to the edge segments. stops must ascend and have at
// least two entries.
func bisect(stops []float64, x float64) int {
	lo, hi := 1, len(stops)-1
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if stops[mid] <= x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo - 1
}

// normalize returns the linear x → t ∈ [0,1] map for [d0, d1] and its
// inverse. A degenerate interval maps every x to 0.5 and every t back to d0.
func normalize(d0, d1 float64) (fwd, inv mapper) {
	span := d1 - d0
	if span == 0 {
		return func(float64) float64 { return 0.5 },
			func(float64) float64 { return d0 }
	}

	return func(x float64) float64 { return (x - d0) / span },
		func(t float64) float64 { return d0 + t*span }
}

// normalizeLog returns the logarithmic x → t map for the strictly positive
// interval [d0, d1] and its inverse. The log base cancels out of the ratio,
// so natural log serves for any base.
func normalizeLog(d0, d1 float64) (fwd, inv mapper) {
	l0 := math.Log(d0)
	span := math.Log(d1) - l0
	if span == 0 {
		return func(float64) float64 { return 0.5 },
			func(float64) float64 { return d0 }
	}

	return func(x float64) float64 { return (math.Log(x) - l0) / span },
		func(t float64) float64 { return math.Exp(l0 + t*span) }
}

// powWarp raises t to exp, preserving sign so unclamped extrapolation below
// zero stays defined.
func powWarp(exp float64) mapper {
	return func(t float64) float64 {
		if t < 0 {
			return -math.Pow(-t, exp)
		}

		return math.Pow(t, exp)
	}
}

// clampTo restricts x to [lo, hi].
func clampTo(lo, hi float64) mapper {
	return func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}

		return x
	}
}

func reverse(xs []float64) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
