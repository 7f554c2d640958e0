// Package scalekit maps data values onto visual values — positions, sizes,
// axis coordinates — for chart rendering.
//
// 🚀 What is scalekit?
//
//	A small, pure-Go scale library built around one idea: configure rarely,
//	map millions of times. Every configuration change compiles the mapping
//	into a single closure chain; the per-point hot path carries no option
//	checks at all.
//
// ✨ Why choose scalekit?
//
//   - Hot-path discipline – disabled features are absent from the compiled
//     chain, not branched around
//   - Hard validation, soft mapping – bad configs fail construction, bad
//     data points degrade to a sentinel instead of aborting a render
//   - Pure Go – no cgo, no rendering, no hidden state
//   - Pluggable – interpolator factories, tick methods and formatters slot
//     in without touching the engine
//
// Everything is organized under four subpackages:
//
//	continuous/  — the continuous scale engine: compose, map, invert, ticks
//	band/        — band geometry for categorical layouts (bar slots)
//	interpolate/ — interpolator factories consumed by the engine
//	tick/        — nice numbers: 1-2-5 tick placement and domain rounding
//
// Quick ASCII example:
//
//	domain [0──────────10]      range [0────────────────100]
//	            5   ────map──▶   50
//
// Dive into the package docs for contracts, invariants and error lists.
//
//	go get github.com/katalvlaran/scalekit
package scalekit
