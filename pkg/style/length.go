package style

// Length sizes a style feature either relative to the widget diameter
// or as a fixed pixel count.
type Length struct {
	value float32
	fixed bool
}

// Scaled returns a length resolved as scale * diameter.
func Scaled(scale float32) Length {
	return Length{value: scale}
}

// Fixed returns a length resolved as a constant pixel count.
func Fixed(px float32) Length {
	return Length{value: px, fixed: true}
}

// Of resolves the length against the given diameter.
func (l Length) Of(diameter float32) float32 {
	if l.fixed {
		return l.value
	}
	return l.value * diameter
}

// LineCap selects the stroke cap for lines and arcs.
type LineCap uint8

const (
	// CapButt ends the stroke exactly at the endpoint.
	CapButt LineCap = iota
	// CapRound extends the stroke with a half circle.
	CapRound
	// CapSquare extends the stroke with a half square.
	CapSquare
)
