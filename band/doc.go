// Package band derives the geometry of discrete-axis layouts: given a count
// of categories, an output range and fractional paddings, it solves for a
// uniform step, a band width, and the sequence of band start positions
// consumed by bar charts and similar categorical layouts.
//
// The solver (Solve) is a pure function: identical options always produce
// identical Geometry, and it is re-run wholesale whenever any geometric
// option changes — there is no incremental state to corrupt.
//
// Band positions come from a single invariant-preserving derivation:
//
//	step  = Δrange / max(1, count - paddingInner + 2·paddingOuter)
//	start = range₀ + align · (Δrange - step·(count - paddingInner))
//	width = step · (1 - paddingInner)
//
// The combined Padding option, when positive, overrides both PaddingInner
// and PaddingOuter. An explicit zero does not override — this preserves the
// conventional precedence rule even though it leaves "unset" and "zero"
// indistinguishable; see Options.
//
// The category-lookup half of a band scale is deliberately external: Band
// decorates any Discrete implementation, adding only the range-producing
// geometry.
//
// Errors:
//
//	ErrBadCount   - negative band count.
//	ErrBadPadding - PaddingInner outside [0,1] or negative PaddingOuter.
//	ErrBadAlign   - Align outside [0,1].
package band
