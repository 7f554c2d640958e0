package interpolate

import (
	"errors"
	"math"
)

// ErrTooFewStops indicates Piecewise was given fewer than two stops.
var ErrTooFewStops = errors.New("interpolate: need at least two stops")

// Func maps a normalized parameter t ∈ [0,1] to an output value.
// Callers may pass t outside [0,1]; implementations extrapolate linearly
// unless documented otherwise.
type Func func(t float64) float64

// Factory produces a Func specialized for one start→stop output segment.
// The Factory call is the configurable, potentially expensive step; the
// returned Func must be cheap and branch-free.
type Factory func(start, stop float64) Func

// Number returns the standard numeric interpolator between start and stop:
//
//	f(t) = start + (stop-start)·t
//
// Number(a, a) returns a constant function yielding a.
func Number(start, stop float64) Func {
	span := stop - start

	return func(t float64) float64 { return start + span*t }
}

// InvertNumber returns the inverse of Number(start, stop): it maps an output
// value y back to its normalized parameter t. The second result is false
// when the segment is degenerate (start == stop), in which case no unique
// parameter exists.
func InvertNumber(start, stop float64) (Func, bool) {
	span := stop - start
	if span == 0 {
		return nil, false
	}

	return func(y float64) float64 { return (y - start) / span }, true
}

// Rounded returns a numeric interpolator whose output is snapped to the
// nearest integer. Useful when the consumer wants pixel-aligned values from
// the interpolator itself rather than from the engine's rounding stage.
func Rounded(start, stop float64) Func {
	lerp := Number(start, stop)

	return func(t float64) float64 { return math.Round(lerp(t)) }
}

// Clamp01 restricts t to the unit interval.
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}

	return t
}

// Piecewise composes factory over consecutive stop pairs, producing a single
// interpolator across len(stops)-1 segments. The global parameter t ∈ [0,1]
// is split uniformly: segment i covers [i/(n-1), (i+1)/(n-1)].
//
// All per-segment interpolators are built once, here; the returned Func only
// performs index arithmetic and one delegated call.
func Piecewise(factory Factory, stops []float64) (Func, error) {
	n := len(stops) - 1
	if n < 1 {
		return nil, ErrTooFewStops
	}

	segments := make([]Func, n)
	for i := 0; i < n; i++ {
		segments[i] = factory(stops[i], stops[i+1])
	}

	return func(t float64) float64 {
		// Scale t into segment space and clamp the index to a valid segment
		// so t=1 (and slight overshoot) lands in the last one.
		scaled := t * float64(n)
		i := int(math.Floor(scaled))
		if i < 0 {
			i = 0
		} else if i > n-1 {
			i = n - 1
		}

		return segments[i](scaled - float64(i))
	}, nil
}
