package draw

import (
	"math"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/marks"
	"github.com/justyntemme/audioui/pkg/style"
)

// Bar marks hang tick and text marks off the long edges of a meter
// bar. Unlike the slider marks they take the bar rectangle itself, not
// a placement-offset rectangle, and only line ticks are drawn.

func vBarTickTier(prims []Primitive, positions []core.Normal, shape style.TickShape, bounds core.Rectangle, placement style.MeterPlacement, offset float32, inverse bool) []Primitive {
	if shape.Kind != style.TickShapeLine || len(positions) == 0 {
		return prims
	}
	startY := bounds.Y + bounds.Height - shape.Width/2.0
	for _, p := range positions {
		y := floor32(startY - p.Scale(bounds.Height))
		if inverse {
			y = floor32(startY - p.ScaleInv(bounds.Height))
		}
		if placement != style.MeterRightOrBottom {
			prims = append(prims, Quad{
				Bounds: core.Rectangle{
					X:      bounds.X - offset - shape.Length,
					Y:      y,
					Width:  shape.Length,
					Height: shape.Width,
				},
				Background: shape.Color,
			})
		}
		if placement != style.MeterLeftOrTop {
			prims = append(prims, Quad{
				Bounds: core.Rectangle{
					X:      bounds.X + bounds.Width + offset,
					Y:      y,
					Width:  shape.Length,
					Height: shape.Width,
				},
				Background: shape.Color,
			})
		}
	}
	return prims
}

// VBarTickMarks lays out a group's tick marks beside a vertical bar.
func VBarTickMarks(bounds core.Rectangle, group *marks.Group, appearance style.MeterTickMarks, inverse bool) []Primitive {
	if group == nil || group.Len() == 0 {
		return nil
	}
	prims := make([]Primitive, 0, group.Len()*2)
	prims = vBarTickTier(prims, group.Tier1(), appearance.Style.Tier1, bounds, appearance.Placement, appearance.Offset, inverse)
	prims = vBarTickTier(prims, group.Tier2(), appearance.Style.Tier2, bounds, appearance.Placement, appearance.Offset, inverse)
	prims = vBarTickTier(prims, group.Tier3(), appearance.Style.Tier3, bounds, appearance.Placement, appearance.Offset, inverse)
	return prims
}

func hBarTickTier(prims []Primitive, positions []core.Normal, shape style.TickShape, bounds core.Rectangle, placement style.MeterPlacement, offset float32, inverse bool) []Primitive {
	if shape.Kind != style.TickShapeLine || len(positions) == 0 {
		return prims
	}
	startX := bounds.X - shape.Width/2.0
	for _, p := range positions {
		x := floor32(startX + p.Scale(bounds.Width))
		if inverse {
			x = floor32(startX + p.ScaleInv(bounds.Width))
		}
		if placement != style.MeterRightOrBottom {
			prims = append(prims, Quad{
				Bounds: core.Rectangle{
					X:      x,
					Y:      bounds.Y - offset - shape.Length,
					Width:  shape.Width,
					Height: shape.Length,
				},
				Background: shape.Color,
			})
		}
		if placement != style.MeterLeftOrTop {
			prims = append(prims, Quad{
				Bounds: core.Rectangle{
					X:      x,
					Y:      bounds.Y + bounds.Height + offset,
					Width:  shape.Width,
					Height: shape.Length,
				},
				Background: shape.Color,
			})
		}
	}
	return prims
}

// HBarTickMarks lays out a group's tick marks above and below a
// horizontal bar.
func HBarTickMarks(bounds core.Rectangle, group *marks.Group, appearance style.MeterTickMarks, inverse bool) []Primitive {
	if group == nil || group.Len() == 0 {
		return nil
	}
	prims := make([]Primitive, 0, group.Len()*2)
	prims = hBarTickTier(prims, group.Tier1(), appearance.Style.Tier1, bounds, appearance.Placement, appearance.Offset, inverse)
	prims = hBarTickTier(prims, group.Tier2(), appearance.Style.Tier2, bounds, appearance.Placement, appearance.Offset, inverse)
	prims = hBarTickTier(prims, group.Tier3(), appearance.Style.Tier3, bounds, appearance.Placement, appearance.Offset, inverse)
	return prims
}

// VBarTextMarks lays out a group's text marks beside a vertical bar,
// centered on their positions.
func VBarTextMarks(bounds core.Rectangle, group *marks.TextGroup, appearance style.MeterTextMarks, inverse bool) []Primitive {
	if group == nil || group.Len() == 0 {
		return nil
	}
	startY := bounds.Y + bounds.Height
	prims := make([]Primitive, 0, group.Len()*2)
	for _, mark := range group.Marks() {
		y := floor32(startY - mark.Position.Scale(bounds.Height))
		if inverse {
			y = floor32(startY - mark.Position.ScaleInv(bounds.Height))
		}
		if appearance.Placement != style.MeterRightOrBottom {
			prims = append(prims, barText(mark.Text, appearance.Style, core.Point{X: bounds.X - appearance.Offset, Y: y}, HRight, VCenter))
		}
		if appearance.Placement != style.MeterLeftOrTop {
			prims = append(prims, barText(mark.Text, appearance.Style, core.Point{X: bounds.X + bounds.Width + appearance.Offset, Y: y}, HLeft, VCenter))
		}
	}
	return prims
}

// HBarTextMarks lays out a group's text marks above and below a
// horizontal bar.
func HBarTextMarks(bounds core.Rectangle, group *marks.TextGroup, appearance style.MeterTextMarks, inverse bool) []Primitive {
	if group == nil || group.Len() == 0 {
		return nil
	}
	prims := make([]Primitive, 0, group.Len()*2)
	for _, mark := range group.Marks() {
		x := floor32(bounds.X + mark.Position.Scale(bounds.Width))
		if inverse {
			x = floor32(bounds.X + mark.Position.ScaleInv(bounds.Width))
		}
		if appearance.Placement != style.MeterRightOrBottom {
			prims = append(prims, barText(mark.Text, appearance.Style, core.Point{X: x, Y: bounds.Y - appearance.Offset}, HCenter, VBottom))
		}
		if appearance.Placement != style.MeterLeftOrTop {
			prims = append(prims, barText(mark.Text, appearance.Style, core.Point{X: x, Y: bounds.Y + bounds.Height + appearance.Offset}, HCenter, VTop))
		}
	}
	return prims
}

func barText(content string, appearance style.TextMarks, anchor core.Point, halign HAlign, valign VAlign) Text {
	return Text{
		Content:      content,
		Size:         appearance.Size,
		Anchor:       anchor,
		BoundsWidth:  appearance.BoundsWidth,
		BoundsHeight: appearance.BoundsHeight,
		Color:        appearance.Color,
		Font:         appearance.Font,
		HAlign:       halign,
		VAlign:       valign,
	}
}

func floor32(v float32) float32 {
	return float32(math.Floor(float64(v)))
}
