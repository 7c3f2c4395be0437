package compose

import "math"

// SpringSpec parameterizes a damped harmonic oscillator. The oscillator is
// released at rest, displaced one unit from its target, so the normalized
// position travels from 0 towards 1.
type SpringSpec struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// SpringValue is the state of a spring at one instant.
type SpringValue struct {
	Value float64
	// Settled becomes true once the displacement from target and the
	// velocity magnitude both drop under the settle tolerance. Callers use
	// it to stop transient effects that accompany in-progress motion.
	Settled bool
}

const settleTolerance = 1e-3

// Smooth is the house motion curve: overdamped, so it approaches its
// target monotonically with no overshoot.
func Smooth() SpringSpec {
	return SpringSpec{Mass: 1, Stiffness: 100, Damping: 26}
}

// Bouncy overshoots once before settling; used for playful entrances.
func Bouncy() SpringSpec {
	return SpringSpec{Mass: 1, Stiffness: 170, Damping: 14}
}

// Spring evaluates the normalized position of the oscillator at continuous
// time frameOffset/fps. frameOffset may be fractional; a negative offset
// returns the rest position with Settled false. The computation is closed
// form with no carried state, so identical arguments always produce
// bit-identical results regardless of call order.
func Spring(frameOffset, fps float64, spec SpringSpec) (SpringValue, error) {
	if spec.Mass <= 0 {
		return SpringValue{}, configErrorf("spring mass must be positive, got %v", spec.Mass)
	}
	if spec.Stiffness <= 0 {
		return SpringValue{}, configErrorf("spring stiffness must be positive, got %v", spec.Stiffness)
	}
	if spec.Damping < 0 {
		return SpringValue{}, configErrorf("spring damping must be non-negative, got %v", spec.Damping)
	}
	if frameOffset < 0 {
		return SpringValue{Value: 0, Settled: false}, nil
	}

	t := frameOffset / fps
	pos, vel := oscillate(t, spec)
	settled := math.Abs(1-pos) < settleTolerance && math.Abs(vel) < settleTolerance

	return SpringValue{Value: pos, Settled: settled}, nil
}

// SpringBetween maps the normalized spring position into [from, to]. When
// from equals to the spring is trivially settled at every offset,
// including negative ones.
func SpringBetween(frameOffset, fps float64, spec SpringSpec, from, to float64) (SpringValue, error) {
	if from == to {
		return SpringValue{Value: from, Settled: true}, nil
	}
	sv, err := Spring(frameOffset, fps, spec)
	if err != nil {
		return SpringValue{}, err
	}
	// Extend on both sides so an overshooting spring maps past the target
	// instead of clipping against it.
	v, err := Interp(sv.Value, []float64{0, 1}, []float64{from, to}, Extend, Extend)
	if err != nil {
		return SpringValue{}, err
	}
	return SpringValue{Value: v, Settled: sv.Settled}, nil
}

// oscillate solves m*x'' + c*x' + k*x = 0 with x(0) = -1, x'(0) = 0 and
// returns position 1+x(t) and velocity x'(t). The three damping regimes
// each have a standard closed-form solution.
func oscillate(t float64, spec SpringSpec) (pos, vel float64) {
	w0 := math.Sqrt(spec.Stiffness / spec.Mass)
	zeta := spec.Damping / (2 * math.Sqrt(spec.Stiffness*spec.Mass))

	switch {
	case zeta < 1:
		// Underdamped: decaying sinusoid.
		wd := w0 * math.Sqrt(1-zeta*zeta)
		decay := math.Exp(-zeta * w0 * t)
		pos = 1 - decay*(math.Cos(wd*t)+(zeta*w0/wd)*math.Sin(wd*t))
		vel = decay * (w0 * w0 / wd) * math.Sin(wd*t)
	case zeta == 1:
		// Critically damped.
		decay := math.Exp(-w0 * t)
		pos = 1 - decay*(1+w0*t)
		vel = w0 * w0 * t * decay
	default:
		// Overdamped: two real decay rates.
		s := w0 * math.Sqrt(zeta*zeta-1)
		r1 := -zeta*w0 + s
		r2 := -zeta*w0 - s
		pos = 1 + (r2*math.Exp(r1*t)-r1*math.Exp(r2*t))/(r1-r2)
		vel = r1 * r2 * (math.Exp(r1*t) - math.Exp(r2*t)) / (r1 - r2)
	}

	return pos, vel
}
