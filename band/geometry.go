package band

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// Solve derives the band geometry for o. Pure and stateless: call it as
// often as configuration changes demand, identical inputs give identical
// results.
func Solve(o Options) (Geometry, error) {
	if o.Count < 0 {
		return Geometry{}, ErrBadCount
	}

	inner, outer := o.PaddingInner, o.PaddingOuter
	if o.Padding > 0 {
		// Combined padding wins over the separate values, but only when
		// positive; an explicit 0 leaves them alone.
		inner, outer = o.Padding, o.Padding
	}
	if inner < 0 || inner > 1 || outer < 0 {
		return Geometry{}, ErrBadPadding
	}
	if o.Align < 0 || o.Align > 1 {
		return Geometry{}, ErrBadAlign
	}

	delta := o.Range[1] - o.Range[0]

	// max(1, ...) guards the degenerate counts (0 or 1 bands with nonzero
	// paddings) that would otherwise divide by zero or a negative slot sum.
	step := delta / math.Max(1, float64(o.Count)-inner+2*outer)
	if o.Round {
		// Truncated toward zero — floor for ascending ranges — never
		// rounded to nearest: a nearest-rounded step could push the last
		// band past the outer range bound.
		step = math.Trunc(step)
	}

	start := o.Range[0] + o.Align*(delta-step*(float64(o.Count)-inner))
	width := step * (1 - inner)
	if o.Round {
		// Start and width snap to nearest, unlike the step.
		start = math.Round(start)
		width = math.Round(width)
	}

	g := Geometry{Step: step, Width: width}
	if o.Count > 0 {
		g.Range = vec.Linspace(start, start+step*float64(o.Count-1), o.Count)
	}

	return g, nil
}
