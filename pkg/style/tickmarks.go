package style

import "github.com/justyntemme/audioui/pkg/core"

// TickShapeKind selects how a single tick mark tier is drawn.
type TickShapeKind uint8

const (
	// TickShapeNone hides the tier.
	TickShapeNone TickShapeKind = iota
	// TickShapeLine draws each mark as a short line.
	TickShapeLine
	// TickShapeCircle draws each mark as a filled circle.
	TickShapeCircle
)

// TickShape is the drawing style of one tick mark tier.
type TickShape struct {
	Kind TickShapeKind

	// Length and Width size line marks. Length runs across the
	// widget, width along it.
	Length float32
	Width  float32

	// Diameter sizes circle marks.
	Diameter float32

	Color Color
}

// TickLine returns a line tick shape.
func TickLine(length, width float32, color Color) TickShape {
	return TickShape{Kind: TickShapeLine, Length: length, Width: width, Color: color}
}

// TickCircle returns a circle tick shape.
func TickCircle(diameter float32, color Color) TickShape {
	return TickShape{Kind: TickShapeCircle, Diameter: diameter, Color: color}
}

// TickMarks styles the three tick mark tiers of a widget.
type TickMarks struct {
	Tier1 TickShape
	Tier2 TickShape
	Tier3 TickShape
}

// DefaultTickMarks returns the stock line tiers used by bar widgets.
func DefaultTickMarks(p Palette) TickMarks {
	return TickMarks{
		Tier1: TickLine(4.0, 2.0, p.TickTier1),
		Tier2: TickLine(3.0, 2.0, p.TickTier2),
		Tier3: TickLine(2.0, 1.0, p.TickTier3),
	}
}

// TickPlacementKind positions tick marks relative to the widget
// bounds.
type TickPlacementKind uint8

const (
	// TickBothSides mirrors the marks on both edges.
	TickBothSides TickPlacementKind = iota
	// TickLeftOrTop places marks on the left or top edge.
	TickLeftOrTop
	// TickRightOrBottom places marks on the right or bottom edge.
	TickRightOrBottom
	// TickCenter centers marks across the bounds.
	TickCenter
	// TickCenterSplit centers marks split into two halves around the
	// middle.
	TickCenterSplit
)

// TickPlacement positions a widget's tick marks.
type TickPlacement struct {
	Kind   TickPlacementKind
	Offset core.Offset

	// Inside draws edge placements within the bounds instead of
	// hanging off them.
	Inside bool

	// FillLength stretches center placements to span the bounds.
	FillLength bool

	// Gap separates the two halves of a center split.
	Gap float32
}

// DefaultTickPlacement returns marks mirrored outside both edges.
func DefaultTickPlacement() TickPlacement {
	return TickPlacement{Kind: TickBothSides}
}
