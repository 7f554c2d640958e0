package continuous

import (
	"math"
	"strconv"

	"github.com/katalvlaran/scalekit/tick"
)

// Scale maps a numeric domain onto an output range through a compiled
// closure chain. Zero value is not usable; construct with New or NewDefault.
//
// A Scale is owned by one configuration writer; any number of readers may
// call Map/Invert/Ticks between (never during) Update calls.
type Scale struct {
	opts   Options
	fwd    mapper
	inv    mapper // nil when not invertible
	stages int
}

// New merges opts over DefaultOptions' fallbacks, validates the result,
// applies Nice when enabled, and compiles the mapping. Invalid
// configurations fail construction; a Scale is never half-valid.
func New(opts Options) (*Scale, error) {
	s := &Scale{}
	if err := s.apply(opts); err != nil {
		return nil, err
	}

	return s, nil
}

// NewDefault returns the identity scale of [0,1] onto [0,1].
func NewDefault() *Scale {
	s, err := New(DefaultOptions())
	if err != nil {
		// DefaultOptions is valid by construction.
		panic(err)
	}

	return s
}

// apply merges, validates, nices and recompiles into s. On error s is left
// untouched.
func (s *Scale) apply(opts Options) error {
	opts.merge()
	if err := opts.validate(); err != nil {
		return err
	}

	// Private copies: callers keep ownership of their slices.
	opts.Domain = append([]float64(nil), opts.Domain...)
	opts.Range = append([]float64(nil), opts.Range...)
	if opts.Nice {
		opts.Domain = tick.NiceDomain(opts.Domain, opts.TickCount)
	}

	fwd, inv, stages := compose(&opts)
	s.opts, s.fwd, s.inv, s.stages = opts, fwd, inv, stages

	return nil
}

// Map maps one domain value to its output. O(1): a finite-input guard and
// the compiled closure; no option is re-examined per call. Non-finite input
// yields the Unknown sentinel, never an error or panic.
func (s *Scale) Map(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return s.opts.Unknown
	}

	return s.fwd(x)
}

// Invert maps an output value back to the domain. It reports
// ErrNotInvertible (with a NaN value) when the configuration has no defined
// inverse: a custom interpolator factory, a degenerate range, or a
// non-monotonic multi-stop range.
func (s *Scale) Invert(y float64) (float64, error) {
	if s.inv == nil {
		return math.NaN(), ErrNotInvertible
	}

	return s.inv(y), nil
}

// Update lets apply mutate a copy of the current options, then re-merges,
// re-validates, re-nices and recompiles. On error the scale keeps its
// previous configuration and compiled chain; on success the whole compiled
// state is replaced as a single unit.
func (s *Scale) Update(apply func(*Options)) error {
	next := s.opts
	next.Domain = append([]float64(nil), next.Domain...)
	next.Range = append([]float64(nil), next.Range...)
	apply(&next)

	var tmp Scale
	if err := tmp.apply(next); err != nil {
		return err
	}
	*s = tmp

	return nil
}

// Ticks returns representative domain values for axis labeling, delegating
// to the configured tick method over the (possibly niced) domain bounds.
// Same configuration, same ticks.
func (s *Scale) Ticks() []float64 {
	method := s.opts.TickMethod
	if method == nil {
		method = tick.Ticks
	}
	d := s.opts.Domain

	return method(d[0], d[len(d)-1], s.opts.TickCount)
}

// TickFormat returns Ticks rendered through the configured formatter.
func (s *Scale) TickFormat() []string {
	format := s.opts.Formatter
	if format == nil {
		format = defaultFormat
	}

	ticks := s.Ticks()
	out := make([]string, len(ticks))
	for i, v := range ticks {
		out[i] = format(v)
	}

	return out
}

// Domain returns a copy of the active (possibly niced) domain stops.
func (s *Scale) Domain() []float64 {
	return append([]float64(nil), s.opts.Domain...)
}

// Range returns a copy of the output stops.
func (s *Scale) Range() []float64 {
	return append([]float64(nil), s.opts.Range...)
}

// Unknown returns the sentinel produced for non-finite input.
func (s *Scale) Unknown() float64 {
	return s.opts.Unknown
}

func defaultFormat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
