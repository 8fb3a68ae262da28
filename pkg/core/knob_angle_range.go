package core

// Default knob sweep of 30 to 330 degrees. The halfway Normal points
// straight up.
const (
	DefaultAngleMin float32 = 30.0 * PiOver180
	DefaultAngleMax float32 = 330.0 * PiOver180
)

// KnobAngleRange is the range of angles a rotary knob rotates through,
// in radians measured clockwise from straight-down.
//
// The invariant is 0 <= min <= max < 2*pi. Arguments violating it
// collapse both angles to 0: the knob still renders at Normal 0 but its
// sweep is empty.
type KnobAngleRange struct {
	min float32
	max float32
}

// DefaultKnobAngleRange returns the default 300 degree sweep.
func DefaultKnobAngleRange() KnobAngleRange {
	return KnobAngleRange{min: DefaultAngleMin, max: DefaultAngleMax}
}

// KnobAngleRangeFromDeg builds a KnobAngleRange from degrees.
func KnobAngleRangeFromDeg(minDeg, maxDeg float32) KnobAngleRange {
	return KnobAngleRangeFromRad(minDeg*PiOver180, maxDeg*PiOver180)
}

// KnobAngleRangeFromRad builds a KnobAngleRange from radians.
func KnobAngleRangeFromRad(minRad, maxRad float32) KnobAngleRange {
	if !(minRad >= 0.0) || !(maxRad >= minRad) || maxRad >= TwoPi {
		return KnobAngleRange{}
	}
	return KnobAngleRange{min: minRad, max: maxRad}
}

// Min returns the angle of the minimum (Normal 0) position.
func (r KnobAngleRange) Min() float32 {
	return r.min
}

// Max returns the angle of the maximum (Normal 1) position.
func (r KnobAngleRange) Max() float32 {
	return r.max
}

// Span returns the swept angle, max - min.
func (r KnobAngleRange) Span() float32 {
	return r.max - r.min
}

// NormalToAngle maps a Normal onto the sweep: min + n * (max - min).
func (r KnobAngleRange) NormalToAngle(n Normal) float32 {
	return r.min + n.Scale(r.max-r.min)
}
