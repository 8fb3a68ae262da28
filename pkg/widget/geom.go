package widget

import (
	"math"

	"github.com/justyntemme/audioui/pkg/core"
)

func round32(v float32) float32 {
	return float32(math.Round(float64(v)))
}

func floor32(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

func sin32(v float32) float32 {
	return float32(math.Sin(float64(v)))
}

func cos32(v float32) float32 {
	return float32(math.Cos(float64(v)))
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func signOf(v float32) float32 {
	if v > 0.0 {
		return 1.0
	}
	if v < 0.0 {
		return -1.0
	}
	return 0.0
}

func distance(a, b core.Point) float32 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// roundBounds aligns the bounds to the pixel grid by rounding every
// component.
func roundBounds(bounds core.Rectangle) core.Rectangle {
	return core.Rectangle{
		X:      round32(bounds.X),
		Y:      round32(bounds.Y),
		Width:  round32(bounds.Width),
		Height: round32(bounds.Height),
	}
}

// floorBounds aligns the bounds to the pixel grid by flooring every
// component.
func floorBounds(bounds core.Rectangle) core.Rectangle {
	return core.Rectangle{
		X:      floor32(bounds.X),
		Y:      floor32(bounds.Y),
		Width:  floor32(bounds.Width),
		Height: floor32(bounds.Height),
	}
}

// squareBounds rounds the bounds and centers a square of the shorter
// side within them, the footprint a knob draws into.
func squareBounds(bounds core.Rectangle) core.Rectangle {
	b := roundBounds(bounds)
	switch {
	case b.Width > b.Height:
		b.X = round32(b.X + (b.Width-b.Height)/2.0)
		b.Width = b.Height
	case b.Height > b.Width:
		b.Y = round32(b.Y + (b.Height-b.Width)/2.0)
		b.Height = b.Width
	}
	return b
}
