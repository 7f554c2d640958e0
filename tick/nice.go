package tick

import "math"

// niceRounds limits the step-stabilization loop; in practice the step
// settles after one or two passes.
const niceRounds = 10

// NiceDomain returns a copy of domain whose outer bounds are expanded to
// multiples of the tick step for the given count: the low bound is floored,
// the high bound is ceiled. Interior stops of a multi-stop domain are left
// untouched, as is a degenerate domain (equal bounds).
//
// The expansion reuses the same 1-2-5 heuristic as Ticks, so a niced domain
// begins and ends on a tick. The operation is idempotent:
// NiceDomain(NiceDomain(d, n), n) == NiceDomain(d, n).
//
// Descending domains are supported; the bound closer to -∞ is still floored.
func NiceDomain(domain []float64, count int) []float64 {
	out := append([]float64(nil), domain...)
	if len(out) < 2 || count <= 0 {
		return out
	}

	lo, hi := out[0], out[len(out)-1]
	descending := hi < lo
	if descending {
		lo, hi = hi, lo
	}

	// Expand, then recompute the step on the expanded bounds: widening the
	// interval can promote the step to the next ladder rung, which in turn
	// moves the bounds again. The loop exits at the fixed point, which is
	// what makes the operation idempotent.
	prev := 0.0
	for i := 0; i < niceRounds; i++ {
		inc := increment(lo, hi, count)
		if inc == prev || inc == 0 || math.IsInf(inc, 0) {
			break
		}
		if inc > 0 {
			lo = math.Floor(lo/inc) * inc
			hi = math.Ceil(hi/inc) * inc
		} else {
			lo = math.Ceil(lo*inc) / inc
			hi = math.Floor(hi*inc) / inc
		}
		prev = inc
	}

	if descending {
		lo, hi = hi, lo
	}
	out[0], out[len(out)-1] = lo, hi

	return out
}
