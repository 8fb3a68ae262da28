// Package draw flattens widget state and style into drawing
// primitives. Every renderer is a pure function of its inputs so
// hosts can paint the result with any backend and tests can compare
// primitive lists directly.
package draw

import (
	"math"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/style"
)

// Primitive is one drawing command. The concrete types are Quad,
// ArcStroke, Line, Text and ImageQuad.
type Primitive interface {
	isPrimitive()
}

// Quad is an axis-aligned rectangle with optional rounded corners and
// border. A Quad with all corner radii at half its size draws a
// circle.
type Quad struct {
	Bounds     core.Rectangle
	Background style.Color

	// BorderRadius holds the corner radii clockwise from the top
	// left.
	BorderRadius [4]float32
	BorderWidth  float32
	BorderColor  style.Color
}

func (Quad) isPrimitive() {}

// CornerRadius returns four equal corner radii.
func CornerRadius(r float32) [4]float32 {
	return [4]float32{r, r, r, r}
}

// ArcStroke is a stroked circular arc. Angles are in radians, zero
// pointing right of center, sweeping clockwise.
type ArcStroke struct {
	Center     core.Point
	Radius     float32
	StartAngle float32
	Sweep      float32
	Width      float32
	Cap        style.LineCap
	Color      style.Color
}

func (ArcStroke) isPrimitive() {}

// Line is a stroked line segment.
type Line struct {
	From  core.Point
	To    core.Point
	Width float32
	Cap   style.LineCap
	Color style.Color
}

func (Line) isPrimitive() {}

// Text is a text label anchored at a point. The alignment places the
// layout box of BoundsWidth by BoundsHeight relative to the anchor.
type Text struct {
	Content string
	Size    float32
	Anchor  core.Point

	BoundsWidth  float32
	BoundsHeight float32

	Color  style.Color
	Font   string
	HAlign HAlign
	VAlign VAlign
}

func (Text) isPrimitive() {}

// ImageQuad draws a host-registered texture into a rectangle.
type ImageQuad struct {
	Handle uint64
	Bounds core.Rectangle
}

func (ImageQuad) isPrimitive() {}

// HAlign places text horizontally relative to its anchor.
type HAlign uint8

const (
	// HCenter centers the text on the anchor.
	HCenter HAlign = iota
	// HLeft starts the text at the anchor.
	HLeft
	// HRight ends the text at the anchor.
	HRight
)

// VAlign places text vertically relative to its anchor.
type VAlign uint8

const (
	// VCenter centers the text on the anchor.
	VCenter VAlign = iota
	// VTop hangs the text below the anchor.
	VTop
	// VBottom raises the text above the anchor.
	VBottom
)

func round32(v float32) float32 {
	return float32(math.Round(float64(v)))
}

func sin32(v float32) float32 {
	return float32(math.Sin(float64(v)))
}

func cos32(v float32) float32 {
	return float32(math.Cos(float64(v)))
}

// circleQuad draws a filled circle as a fully rounded quad.
func circleQuad(x, y, diameter float32, color style.Color) Quad {
	return Quad{
		Bounds: core.Rectangle{
			X:      x,
			Y:      y,
			Width:  diameter,
			Height: diameter,
		},
		Background:   color,
		BorderRadius: CornerRadius(diameter / 2.0),
	}
}
