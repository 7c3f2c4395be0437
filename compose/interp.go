package compose

// EdgePolicy selects how Interp maps values beyond an input range.
type EdgePolicy int

const (
	// Clamp holds the nearest endpoint's output value.
	Clamp EdgePolicy = iota
	// Extend continues the slope of the nearest segment.
	Extend
)

// Interp maps x from inRange to outRange piecewise-linearly. The ranges
// must have equal length of at least 2 and inRange must be strictly
// increasing. The left and right policies independently control behaviour
// below the first and above the last input value.
func Interp(x float64, inRange, outRange []float64, left, right EdgePolicy) (float64, error) {
	if len(inRange) < 2 || len(inRange) != len(outRange) {
		return 0, configErrorf("interpolation ranges must have equal length >= 2, got %d and %d",
			len(inRange), len(outRange))
	}
	for i := 1; i < len(inRange); i++ {
		if inRange[i] <= inRange[i-1] {
			return 0, configErrorf("interpolation input range must be strictly increasing, got %v after %v",
				inRange[i], inRange[i-1])
		}
	}

	n := len(inRange)
	if x < inRange[0] {
		if left == Clamp {
			return outRange[0], nil
		}
		return segment(x, inRange[0], inRange[1], outRange[0], outRange[1]), nil
	}
	if x > inRange[n-1] {
		if right == Clamp {
			return outRange[n-1], nil
		}
		return segment(x, inRange[n-2], inRange[n-1], outRange[n-2], outRange[n-1]), nil
	}
	for i := 1; i < n; i++ {
		if x <= inRange[i] {
			return segment(x, inRange[i-1], inRange[i], outRange[i-1], outRange[i]), nil
		}
	}

	return outRange[n-1], nil
}

func segment(x, x0, x1, y0, y1 float64) float64 {
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
