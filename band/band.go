package band

// Discrete is the category-lookup collaborator a Band decorates: anything
// that maps category keys to dense indexes. Implementations live outside
// this package (ordinal scales, string tables).
type Discrete interface {
	// Index returns the dense index of key, or false for unknown keys.
	Index(key string) (int, bool)

	// Len returns the number of categories.
	Len() int
}

// Band decorates a Discrete scale with solved geometry: the base supplies
// the key → index mapping, Band supplies the index → position mapping. No
// inheritance, just composition.
type Band struct {
	base Discrete
	opts Options
	geom Geometry
}

// New solves the geometry for base's current category count and wraps it.
// Options.Count is ignored; the count always comes from base.Len().
func New(base Discrete, opts Options) (*Band, error) {
	b := &Band{base: base}
	if err := b.apply(opts); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Band) apply(opts Options) error {
	opts.Count = b.base.Len()
	geom, err := Solve(opts)
	if err != nil {
		return err
	}
	b.opts, b.geom = opts, geom

	return nil
}

// Map returns the band start position of key, or false for keys the base
// scale does not know.
func (b *Band) Map(key string) (float64, bool) {
	i, ok := b.base.Index(key)
	if !ok || i < 0 || i >= len(b.geom.Range) {
		return 0, false
	}

	return b.geom.Range[i], true
}

// Update lets apply mutate a copy of the current options, then re-solves.
// On error the previous geometry is kept. Call it after the base scale's
// category set changes, too: the count is re-read from the base.
func (b *Band) Update(apply func(*Options)) error {
	next := b.opts
	apply(&next)

	return b.apply(next)
}

// Step returns the distance between consecutive band starts.
func (b *Band) Step() float64 { return b.geom.Step }

// Bandwidth returns the visible width of one band.
func (b *Band) Bandwidth() float64 { return b.geom.Width }

// Range returns a copy of the band start positions.
func (b *Band) Range() []float64 {
	return append([]float64(nil), b.geom.Range...)
}
