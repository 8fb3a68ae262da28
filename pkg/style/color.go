// Package style defines colors, per-widget appearances and the style
// sheets that resolve them. Widgets read appearances through a sheet
// interface so hosts can restyle every state without touching widget
// code.
package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with float32 components in [0, 1].
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// Transparent is the zero Color.
var Transparent = Color{}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Gray returns an opaque color with all three channels set to v.
func Gray(v float32) Color {
	return Color{R: v, G: v, B: v, A: 1.0}
}

// Hex parses a color from a "#rrggbb" string.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return FromColorful(c, 1.0), nil
}

// MustHex is Hex for compile-time constants, panicking on bad input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsTransparent reports whether the color draws nothing.
func (c Color) IsTransparent() bool {
	return c.A == 0.0
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Colorful converts to a go-colorful color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// FromColorful converts from a go-colorful color.
func FromColorful(c colorful.Color, alpha float32) Color {
	return Color{
		R: float32(c.R),
		G: float32(c.G),
		B: float32(c.B),
		A: alpha,
	}
}

// Hex formats the color as "#rrggbb", clamping out-of-gamut channels.
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// Lighten moves the color toward white by amount in [0, 1], keeping
// alpha.
func (c Color) Lighten(amount float32) Color {
	blended := c.Colorful().BlendLab(colorful.Color{R: 1, G: 1, B: 1}, float64(amount))
	return FromColorful(blended.Clamped(), c.A)
}

// Darken moves the color toward black by amount in [0, 1], keeping
// alpha.
func (c Color) Darken(amount float32) Color {
	blended := c.Colorful().BlendLab(colorful.Color{}, float64(amount))
	return FromColorful(blended.Clamped(), c.A)
}

// Lerp blends toward other by t in [0, 1], interpolating alpha
// linearly.
func (c Color) Lerp(other Color, t float32) Color {
	blended := c.Colorful().BlendRgb(other.Colorful(), float64(t))
	return FromColorful(blended, c.A+(other.A-c.A)*t)
}
