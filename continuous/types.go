package continuous

import (
	"errors"
	"math"

	"github.com/katalvlaran/scalekit/interpolate"
	"github.com/katalvlaran/scalekit/tick"
)

// Sentinel errors for scale construction and inversion.
var (
	// ErrShortDomain indicates a domain or range with fewer than two stops.
	ErrShortDomain = errors.New("continuous: domain and range need at least two stops")

	// ErrStopMismatch indicates a multi-stop domain whose range has a
	// different number of stops. Mismatched stop lists are never truncated.
	ErrStopMismatch = errors.New("continuous: multi-stop domain and range must have the same length")

	// ErrTransformStops indicates a log/pow transform combined with a
	// multi-stop domain; transforms support exactly two stops.
	ErrTransformStops = errors.New("continuous: log/pow transforms need a two-stop domain")

	// ErrLogDomain indicates a log transform over a domain that touches or
	// crosses zero.
	ErrLogDomain = errors.New("continuous: log transform needs a strictly positive domain")

	// ErrNotInvertible indicates Invert was called on a configuration with
	// no defined inverse (custom interpolator, degenerate or non-monotonic
	// range).
	ErrNotInvertible = errors.New("continuous: configuration is not invertible")
)

// Transform selects the optional warp applied to the normalized parameter.
type Transform int

const (
	// Linear applies no warp; the scale maps proportionally.
	Linear Transform = iota

	// Log normalizes the domain logarithmically. Requires a strictly
	// positive two-stop domain.
	Log

	// Pow raises the normalized parameter to Options.Exponent, preserving
	// sign for negative parameters (unclamped extrapolation).
	Pow
)

// DEFAULTS - single source of truth for DefaultOptions.
const (
	// DefaultTickCount is the tick count used for Ticks and Nice.
	DefaultTickCount = 5

	// DefaultExponent makes a Pow transform the identity until configured.
	DefaultExponent = 1.0
)

// Options configures a continuous Scale.
//
// Fields left at a "missing" value (nil slices and funcs, non-positive
// TickCount, zero Exponent) fall back to the documented defaults at
// construction. Unknown has no detectable missing value: start from
// DefaultOptions(), which sets it to NaN, and override fields from there.
//
//   - Domain      — input stops, len ≥ 2 (default [0,1]). More than two
//     stops selects piecewise mapping and requires len(Domain)==len(Range).
//   - Range       — output stops, len ≥ 2 (default [0,1]).
//   - Clamp       — restrict the normalized parameter to [0,1] instead of
//     extrapolating (default false).
//   - Round       — round mapped output to the nearest integer (default false).
//   - Nice        — expand domain bounds to tick-step multiples (default false).
//   - TickCount   — requested tick count for Ticks and Nice (default 5).
//   - Unknown     — sentinel returned by Map for non-finite input
//     (DefaultOptions: NaN).
//   - Transform   — Linear, Log or Pow (default Linear).
//   - Exponent    — Pow exponent (default 1, i.e. no-op).
//   - Interpolate — interpolator factory; nil means interpolate.Number.
//     A non-nil custom factory makes the scale non-invertible.
//   - TickMethod  — tick generator; nil means tick.Ticks.
//   - Formatter   — tick label formatter; nil means strconv 'g' formatting.
type Options struct {
	Domain      []float64
	Range       []float64
	Clamp       bool
	Round       bool
	Nice        bool
	TickCount   int
	Unknown     float64
	Transform   Transform
	Exponent    float64
	Interpolate interpolate.Factory
	TickMethod  tick.Method
	Formatter   func(float64) string
}

// DefaultOptions returns the documented defaults: identity mapping of [0,1]
// onto [0,1], no clamping, no rounding, five ticks, NaN as the Unknown
// sentinel.
func DefaultOptions() Options {
	return Options{
		Domain:    []float64{0, 1},
		Range:     []float64{0, 1},
		TickCount: DefaultTickCount,
		Unknown:   math.NaN(),
		Exponent:  DefaultExponent,
	}
}

// merge fills missing fields from DefaultOptions. Boolean flags and Unknown
// are taken as given.
func (o *Options) merge() {
	def := DefaultOptions()
	if o.Domain == nil {
		o.Domain = def.Domain
	}
	if o.Range == nil {
		o.Range = def.Range
	}
	if o.TickCount <= 0 {
		o.TickCount = def.TickCount
	}
	if o.Exponent == 0 {
		o.Exponent = def.Exponent
	}
}

// validate enforces the construction-time invariants. It never mutates o.
func (o *Options) validate() error {
	nd, nr := len(o.Domain), len(o.Range)
	if nd < 2 || nr < 2 {
		return ErrShortDomain
	}
	if (nd > 2 || nr > 2) && nd != nr {
		return ErrStopMismatch
	}
	if o.Transform != Linear && nd != 2 {
		return ErrTransformStops
	}
	if o.Transform == Log && (o.Domain[0] <= 0 || o.Domain[1] <= 0) {
		return ErrLogDomain
	}

	return nil
}
