package style

import "github.com/justyntemme/audioui/pkg/core"

// TextAlign aligns center-placed text marks along the cross axis.
type TextAlign uint8

const (
	// AlignCenter centers the text on the axis.
	AlignCenter TextAlign = iota
	// AlignStart aligns the text toward the left or top edge.
	AlignStart
	// AlignEnd aligns the text toward the right or bottom edge.
	AlignEnd
)

// TextMarks styles a widget's text labels.
type TextMarks struct {
	Color Color

	// Size is the font size in points.
	Size float32

	// Font names the typeface. Empty selects the host default.
	Font string

	// BoundsWidth and BoundsHeight size the layout box around each
	// label's anchor point.
	BoundsWidth  float32
	BoundsHeight float32
}

// DefaultTextMarks returns the stock label style.
func DefaultTextMarks(p Palette) TextMarks {
	return TextMarks{
		Color:        p.TextMark,
		Size:         12.0,
		BoundsWidth:  30.0,
		BoundsHeight: 14.0,
	}
}

// TextPlacementKind positions text marks relative to the widget
// bounds.
type TextPlacementKind uint8

const (
	// TextLeftOrTop places labels past the left or top edge.
	TextLeftOrTop TextPlacementKind = iota
	// TextRightOrBottom places labels past the right or bottom edge.
	TextRightOrBottom
	// TextBothSides places labels on both edges.
	TextBothSides
	// TextCenter centers labels across the bounds.
	TextCenter
)

// TextPlacement positions a widget's text marks.
type TextPlacement struct {
	Kind   TextPlacementKind
	Offset core.Offset

	// Inside draws edge placements within the bounds instead of past
	// them.
	Inside bool

	// Align applies to center placement only.
	Align TextAlign
}

// DefaultTextPlacement returns labels outside the left or top edge.
func DefaultTextPlacement() TextPlacement {
	return TextPlacement{Kind: TextLeftOrTop}
}
