package tick

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// Thresholds between the 1-2-5 ladder rungs: a step ratio r picks factor 10
// when r ≥ √50, factor 5 when r ≥ √10, factor 2 when r ≥ √2, else factor 1.
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Method is a pluggable tick generator: it produces a finite, ascending
// sequence of representative values for the interval [min, max], aiming for
// roughly count entries. Implementations must be pure: identical inputs
// yield identical output.
type Method func(min, max float64, count int) []float64

// increment returns the tick step in dual form: a positive value is the
// step itself (step ≥ 1), a negative value is -1/step (step < 1). Keeping
// fractional steps as integer reciprocals lets callers multiply and divide
// instead of dividing by an inexact fraction, which keeps tick positions
// and niced bounds bit-stable.
func increment(min, max float64, count int) float64 {
	if count <= 0 || max <= min {
		return 0
	}

	raw := (max - min) / float64(count)
	power := math.Floor(math.Log10(raw))

	var factor float64
	switch ratio := raw / math.Pow(10, power); {
	case ratio >= e10:
		factor = 10
	case ratio >= e5:
		factor = 5
	case ratio >= e2:
		factor = 2
	default:
		factor = 1
	}

	if power >= 0 {
		return factor * math.Pow(10, power)
	}

	return -math.Pow(10, -power) / factor
}

// Step returns the tick spacing for [min, max] with roughly count ticks,
// chosen from {1, 2, 5} × 10^k. It returns 0 when count ≤ 0 or the interval
// is degenerate, and is insensitive to the order of min and max.
func Step(min, max float64, count int) float64 {
	if max < min {
		min, max = max, min
	}

	inc := increment(min, max, count)
	if inc < 0 {
		return -1 / inc
	}

	return inc
}

// Ticks returns ascending multiples of Step(min, max, count) that fall
// inside [min, max], inclusive. It is the default Method of the continuous
// scale engine.
//
// Degenerate cases: count ≤ 0 yields nil; min == max yields {min}. The
// order of min and max is irrelevant; output is always ascending.
func Ticks(min, max float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if max < min {
		min, max = max, min
	}
	if min == max {
		return []float64{min}
	}

	inc := increment(min, max, count)
	switch {
	case inc == 0 || math.IsInf(inc, 0):
		return []float64{min}

	case inc > 0:
		first := math.Ceil(min / inc)
		last := math.Floor(max / inc)
		n := int(last-first) + 1
		if n < 1 {
			return nil
		}

		return vec.Linspace(first*inc, last*inc, n)

	default: // fractional step, inc = -1/step
		inc = -inc
		first := math.Ceil(min * inc)
		last := math.Floor(max * inc)
		n := int(last-first) + 1
		if n < 1 {
			return nil
		}

		// Linspace over the integer multiples is exact; dividing each by
		// the integer reciprocal keeps every tick bit-stable.
		ticks := vec.Linspace(first, last, n)
		for i := range ticks {
			ticks[i] /= inc
		}

		return ticks
	}
}
