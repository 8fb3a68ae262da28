package core

// Offset is a 2D offset vector with a horizontal and vertical offset in
// pixels. Mark placement uses it to nudge tick and text marks away from
// the widget body.
type Offset struct {
	X float32
	Y float32
}

// NewOffset builds an Offset.
func NewOffset(x, y float32) Offset {
	return Offset{X: x, Y: y}
}

// OffsetRect returns rect translated by the offset.
func (o Offset) OffsetRect(rect Rectangle) Rectangle {
	rect.X += o.X
	rect.Y += o.Y
	return rect
}

// OffsetPoint returns p translated by the offset.
func (o Offset) OffsetPoint(p Point) Point {
	p.X += o.X
	p.Y += o.Y
	return p
}
