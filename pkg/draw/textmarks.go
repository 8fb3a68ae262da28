package draw

import (
	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/marks"
	"github.com/justyntemme/audioui/pkg/style"
)

func hTextAligned(prims []Primitive, group *marks.TextGroup, appearance style.TextMarks, bounds core.Rectangle, y float32, valign VAlign, inverse bool) []Primitive {
	for _, mark := range group.Marks() {
		x := bounds.X + mark.Position.Scale(bounds.Width)
		if inverse {
			x = bounds.X + mark.Position.ScaleInv(bounds.Width)
		}
		prims = append(prims, Text{
			Content:      mark.Text,
			Size:         appearance.Size,
			Anchor:       core.Point{X: round32(x), Y: y},
			BoundsWidth:  appearance.BoundsWidth,
			BoundsHeight: appearance.BoundsHeight,
			Color:        appearance.Color,
			Font:         appearance.Font,
			HAlign:       HCenter,
			VAlign:       valign,
		})
	}
	return prims
}

// HTextMarks lays out a group's text marks along a horizontal axis.
func HTextMarks(bounds core.Rectangle, group *marks.TextGroup, appearance style.TextMarks, placement style.TextPlacement, inverse bool) []Primitive {
	if group == nil || group.Len() == 0 {
		return nil
	}

	bounds = placement.Offset.OffsetRect(bounds)
	prims := make([]Primitive, 0, group.Len()*2)

	switch placement.Kind {
	case style.TextBothSides:
		if placement.Inside {
			prims = hTextAligned(prims, group, appearance, bounds, bounds.Y, VTop, inverse)
			prims = hTextAligned(prims, group, appearance, bounds, bounds.Y+bounds.Height, VBottom, inverse)
		} else {
			prims = hTextAligned(prims, group, appearance, bounds, bounds.Y, VBottom, inverse)
			prims = hTextAligned(prims, group, appearance, bounds, bounds.Y+bounds.Height, VTop, inverse)
		}
	case style.TextLeftOrTop:
		valign := VBottom
		if placement.Inside {
			valign = VTop
		}
		prims = hTextAligned(prims, group, appearance, bounds, bounds.Y, valign, inverse)
	case style.TextRightOrBottom:
		valign := VTop
		if placement.Inside {
			valign = VBottom
		}
		prims = hTextAligned(prims, group, appearance, bounds, bounds.Y+bounds.Height, valign, inverse)
	case style.TextCenter:
		valign := VCenter
		switch placement.Align {
		case style.AlignStart:
			valign = VTop
		case style.AlignEnd:
			valign = VBottom
		}
		prims = hTextAligned(prims, group, appearance, bounds, bounds.Center().Y, valign, inverse)
	}
	return prims
}

func vTextAligned(prims []Primitive, group *marks.TextGroup, appearance style.TextMarks, bounds core.Rectangle, x float32, halign HAlign, inverse bool) []Primitive {
	for _, mark := range group.Marks() {
		y := bounds.Y + mark.Position.ScaleInv(bounds.Height)
		if inverse {
			y = bounds.Y + mark.Position.Scale(bounds.Height)
		}
		prims = append(prims, Text{
			Content:      mark.Text,
			Size:         appearance.Size,
			Anchor:       core.Point{X: x, Y: round32(y)},
			BoundsWidth:  appearance.BoundsWidth,
			BoundsHeight: appearance.BoundsHeight,
			Color:        appearance.Color,
			Font:         appearance.Font,
			HAlign:       halign,
			VAlign:       VCenter,
		})
	}
	return prims
}

// VTextMarks lays out a group's text marks along a vertical axis.
// Normal zero sits at the bottom edge unless inverse is set.
func VTextMarks(bounds core.Rectangle, group *marks.TextGroup, appearance style.TextMarks, placement style.TextPlacement, inverse bool) []Primitive {
	if group == nil || group.Len() == 0 {
		return nil
	}

	bounds = placement.Offset.OffsetRect(bounds)
	prims := make([]Primitive, 0, group.Len()*2)

	switch placement.Kind {
	case style.TextBothSides:
		if placement.Inside {
			prims = vTextAligned(prims, group, appearance, bounds, bounds.X, HLeft, inverse)
			prims = vTextAligned(prims, group, appearance, bounds, bounds.X+bounds.Width, HRight, inverse)
		} else {
			prims = vTextAligned(prims, group, appearance, bounds, bounds.X, HRight, inverse)
			prims = vTextAligned(prims, group, appearance, bounds, bounds.X+bounds.Width, HLeft, inverse)
		}
	case style.TextLeftOrTop:
		halign := HRight
		if placement.Inside {
			halign = HLeft
		}
		prims = vTextAligned(prims, group, appearance, bounds, bounds.X, halign, inverse)
	case style.TextRightOrBottom:
		halign := HLeft
		if placement.Inside {
			halign = HRight
		}
		prims = vTextAligned(prims, group, appearance, bounds, bounds.X+bounds.Width, halign, inverse)
	case style.TextCenter:
		halign := HCenter
		switch placement.Align {
		case style.AlignStart:
			halign = HLeft
		case style.AlignEnd:
			halign = HRight
		}
		prims = vTextAligned(prims, group, appearance, bounds, bounds.Center().X, halign, inverse)
	}
	return prims
}

// RadialTextMarks lays out a group's text marks around an arc.
// hCharOffset pushes longer labels on the sides further from the arc
// per extra character.
func RadialTextMarks(center core.Point, radius, startAngle, angleSpan float32, group *marks.TextGroup, appearance style.TextMarks, hCharOffset float32, inverse bool) []Primitive {
	if group == nil || group.Len() == 0 {
		return nil
	}

	startAngle += core.HalfPi
	prims := make([]Primitive, 0, group.Len())

	for _, mark := range group.Marks() {
		angle := startAngle + mark.Position.Scale(angleSpan)
		if inverse {
			angle = startAngle + mark.Position.ScaleInv(angleSpan)
		}

		dx, dy := radialDirection(angle)

		offsetX := dx * radius
		if offsetX < -0.001 {
			offsetX -= float32(len(mark.Text)-1) * hCharOffset
		} else if offsetX > 0.001 {
			offsetX += float32(len(mark.Text)-1) * hCharOffset
		}

		prims = append(prims, Text{
			Content:      mark.Text,
			Size:         appearance.Size,
			Anchor:       core.Point{X: round32(center.X + offsetX), Y: round32(center.Y + dy*radius)},
			BoundsWidth:  appearance.BoundsWidth,
			BoundsHeight: appearance.BoundsHeight,
			Color:        appearance.Color,
			Font:         appearance.Font,
			HAlign:       HCenter,
			VAlign:       VCenter,
		})
	}
	return prims
}
