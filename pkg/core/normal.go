package core

import "math"

// Normal is a value clamped to the range [0.0, 1.0].
//
// The zero value is a Normal of 0. Construction goes through NewNormal so
// a stored Normal is always in range; comparison with == is bit-exact on
// the inner float.
type Normal struct {
	v float32
}

// NewNormal returns a Normal clamped into [0, 1]. NaN becomes 0 and
// infinities clamp per sign.
func NewNormal(v float32) Normal {
	return Normal{clampUnit(v)}
}

// NormalMin returns a Normal of 0.
func NormalMin() Normal {
	return Normal{0.0}
}

// NormalCenter returns a Normal of 0.5.
func NormalCenter() Normal {
	return Normal{0.5}
}

// NormalMax returns a Normal of 1.
func NormalMax() Normal {
	return Normal{1.0}
}

// Value returns the inner float in [0, 1].
func (n Normal) Value() float32 {
	return n.v
}

// Inverse returns 1 - value.
func (n Normal) Inverse() float32 {
	return 1.0 - n.v
}

// Scale returns value * scalar.
func (n Normal) Scale(scalar float32) float32 {
	return n.v * scalar
}

// ScaleInv returns (1 - value) * scalar.
func (n Normal) ScaleInv(scalar float32) float32 {
	return (1.0 - n.v) * scalar
}

func clampUnit(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return 0.0
	}
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
