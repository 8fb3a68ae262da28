package core

// Point is a position in host pixel space.
type Point struct {
	X float32
	Y float32
}

// Size is a width and height in pixels.
type Size struct {
	Width  float32
	Height float32
}

// Rectangle is an axis-aligned rectangle in host pixel space.
type Rectangle struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Contains reports whether the point lies within the rectangle, boundary
// included.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2.0, Y: r.Y + r.Height/2.0}
}

// Size returns the rectangle's dimensions.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}
