// Package tick computes "nice" numbers: human-friendly tick positions and
// domain bounds for axis labeling.
//
// The heuristic is the classic 1-2-5 ladder: candidate steps are
// {1, 2, 5} × 10^k, and the step closest to span/count is chosen. The same
// ladder drives both tick placement (Ticks) and domain rounding
// (NiceDomain), so a niced domain always starts and ends on a tick.
//
// NiceDomain is idempotent: applying it to an already-nice domain returns
// the domain unchanged.
//
// Tick generation is exposed to the continuous scale engine through the
// Method type, so alternative heuristics (time ticks, log ticks, ...) can be
// plugged in without touching the engine.
package tick
