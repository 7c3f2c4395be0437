package compose

// Breakpoint is one (time, value) pair of an Envelope. Time is measured in
// frames of the owning composition.
type Breakpoint struct {
	Time  float64
	Value float64
}

// Envelope is a piecewise-linear scalar over time, clamped to its first
// and last breakpoint values outside the defined span. Its main use is
// shaping audio gain, such as the fade-out at the end of a soundtrack.
type Envelope struct {
	times  []float64
	values []float64
}

// NewEnvelope validates and builds an Envelope. At least two breakpoints
// are required and their times must be strictly increasing.
func NewEnvelope(points []Breakpoint) (*Envelope, error) {
	if len(points) < 2 {
		return nil, configErrorf("envelope needs at least 2 breakpoints, got %d", len(points))
	}
	e := &Envelope{
		times:  make([]float64, len(points)),
		values: make([]float64, len(points)),
	}
	for i, p := range points {
		if i > 0 && p.Time <= points[i-1].Time {
			return nil, configErrorf("envelope breakpoint times must be strictly increasing, got %v after %v",
				p.Time, points[i-1].Time)
		}
		e.times[i] = p.Time
		e.values[i] = p.Value
	}
	return e, nil
}

// FadeOut builds the envelope that holds 1 until fadeStart, then ramps
// linearly to 0 at fadeEnd.
func FadeOut(fadeStart, fadeEnd float64) (*Envelope, error) {
	return NewEnvelope([]Breakpoint{{Time: fadeStart, Value: 1}, {Time: fadeEnd, Value: 0}})
}

// ValueAt evaluates the envelope at time t.
func (e *Envelope) ValueAt(t float64) float64 {
	// Ranges were validated at construction, so Interp cannot fail here.
	v, _ := Interp(t, e.times, e.values, Clamp, Clamp)
	return v
}
