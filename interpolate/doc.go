// Package interpolate provides the value-interpolation primitives consumed
// by the continuous scale engine.
//
// An interpolator is a specialized closure mapping a normalized parameter
// t ∈ [0,1] onto a concrete output segment. The expensive part of
// interpolation — capturing the segment bounds, precomputing the span — is
// paid exactly once, when a Factory is invoked; the returned Func is then
// branch-free and safe to call millions of times on a rendering hot path.
//
// Provided factories:
//   - Number    — plain numeric lerp, invertible (see InvertNumber).
//   - Rounded   — numeric lerp snapped to the nearest integer.
//   - Piecewise — multi-stop composition of any base factory.
//
// Custom factories plug into the continuous engine through the same Factory
// signature; the engine never inspects them, it only calls them at
// composition time.
//
// Errors:
//
//	ErrTooFewStops - Piecewise needs at least two stops.
package interpolate
