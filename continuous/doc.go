// Package continuous implements the continuous scale engine: a configurable
// mapping y = interpolate(warp(normalize(x))) from a numeric domain onto an
// output range, used to position data points, axes and gradients.
//
// The engine is built for one access pattern: configure rarely, map
// millions of times. Every configuration change recompiles the forward (and,
// when possible, inverse) mapping into a single composed closure; enabled
// features (clamping, rounding, pow/log transforms) are baked into the
// closure chain at composition time and disabled features are simply absent.
// Map therefore performs no option checks at all — one finite-input guard,
// one closure call.
//
// Pipeline order, fixed at composition:
//
//	normalize → [clamp] → [warp] → interpolate → [round]
//
// Bracketed stages appear only when the corresponding option is enabled.
// The chain always carries the two base stages (normalize, interpolate)
// plus one per enabled option; a custom interpolator factory replaces the
// base interpolate stage rather than adding one, since the factory call is
// hoisted to composition time either way.
// Multi-stop domains (len > 2) normalize piecewise: a binary search locates
// the bracketing segment, each segment carrying its own precomputed
// normalizer and interpolator.
//
// Mapping never fails: a non-finite input degrades to the configured
// Unknown sentinel so one bad data point cannot abort a batch render.
// Construction and Update, by contrast, fail hard on invalid configuration.
//
// Concurrency: a Scale has no locks. Map and Invert are safe for any number
// of concurrent readers provided no Update is in flight; Update replaces the
// whole compiled state as a single visible unit and must come from a single
// configuration writer.
//
// Errors:
//
//	ErrShortDomain    - domain or range has fewer than two stops.
//	ErrStopMismatch   - multi-stop domain and range lengths differ.
//	ErrTransformStops - log/pow transform with a multi-stop domain.
//	ErrLogDomain      - log transform with a non-positive domain bound.
//	ErrNotInvertible  - Invert on a non-invertible configuration.
package continuous
