package band

import "errors"

// Sentinel errors for geometry solving.
var (
	// ErrBadCount indicates a negative band count.
	ErrBadCount = errors.New("band: count must be non-negative")

	// ErrBadPadding indicates PaddingInner outside [0,1] or a negative
	// PaddingOuter. Paddings are fractions of the step size.
	ErrBadPadding = errors.New("band: padding inner must be within [0,1], outer must be non-negative")

	// ErrBadAlign indicates Align outside [0,1].
	ErrBadAlign = errors.New("band: align must be within [0,1]")
)

// DefaultAlign centers unused range space around the bands.
const DefaultAlign = 0.5

// Options configures the band geometry solver.
//
//   - Count        — number of bands (the discrete domain size), ≥ 0.
//   - Range        — output interval [start, end] (default [0,1]).
//   - Padding      — combined padding; when > 0 it overrides both
//     PaddingInner and PaddingOuter. An explicit 0 never overrides: the
//     zero value means "unset" here, a known surface ambiguity kept for
//     compatibility with the conventional precedence rule.
//   - PaddingInner — fraction of the step left blank between bands, [0,1].
//   - PaddingOuter — fraction of the step left blank before the first and
//     after the last band, ≥ 0.
//   - Round        — truncate the step and round band start/width to whole
//     units (pixel snapping). The step is truncated, never rounded to
//     nearest, so rounded bands cannot overflow the range.
//   - Align        — distribution of unused range space, one continuous
//     knob: 0 packs bands to the range start, 1 to the end, 0.5 centers
//     (default 0.5).
//
// All fields of the zero Options value are meaningful; start from
// DefaultOptions() to get the documented defaults.
type Options struct {
	Count        int
	Range        [2]float64
	Padding      float64
	PaddingInner float64
	PaddingOuter float64
	Round        bool
	Align        float64
}

// DefaultOptions returns the documented defaults: unit range, no padding,
// no rounding, centered alignment.
func DefaultOptions() Options {
	return Options{
		Range: [2]float64{0, 1},
		Align: DefaultAlign,
	}
}

// Geometry is the solved band layout.
//
// Range holds exactly Count band start positions spaced by Step, and
// |Width| ≤ |Step| always holds.
type Geometry struct {
	// Step is the distance between consecutive band starts.
	Step float64

	// Width is the visible width of one band: Step·(1-PaddingInner).
	Width float64

	// Range lists the band start positions, one per category.
	Range []float64
}
