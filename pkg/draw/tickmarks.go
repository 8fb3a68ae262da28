package draw

import (
	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/marks"
	"github.com/justyntemme/audioui/pkg/style"
)

func hTickLines(prims []Primitive, positions []core.Normal, boundsX, boundsWidth, y, width, length float32, color style.Color, inverse bool) []Primitive {
	startX := boundsX - width/2.0
	for _, p := range positions {
		x := startX + p.Scale(boundsWidth)
		if inverse {
			x = startX + p.ScaleInv(boundsWidth)
		}
		prims = append(prims, Quad{
			Bounds:     core.Rectangle{X: x, Y: y, Width: width, Height: length},
			Background: color,
		})
	}
	return prims
}

func hTickCircles(prims []Primitive, positions []core.Normal, boundsX, boundsWidth, y, diameter float32, color style.Color, inverse bool) []Primitive {
	startX := boundsX - diameter/2.0
	for _, p := range positions {
		x := startX + p.Scale(boundsWidth)
		if inverse {
			x = startX + p.ScaleInv(boundsWidth)
		}
		prims = append(prims, circleQuad(x, y, diameter, color))
	}
	return prims
}

// hTickTier draws one tier aligned at y. alignEnd pulls the marks up
// so they end at y instead of starting there.
func hTickTier(prims []Primitive, positions []core.Normal, shape style.TickShape, bounds core.Rectangle, y float32, alignEnd, inverse bool) []Primitive {
	if len(positions) == 0 {
		return prims
	}
	switch shape.Kind {
	case style.TickShapeLine:
		if alignEnd {
			y -= shape.Length
		}
		return hTickLines(prims, positions, bounds.X, bounds.Width, y, shape.Width, shape.Length, shape.Color, inverse)
	case style.TickShapeCircle:
		if alignEnd {
			y -= shape.Diameter
		}
		return hTickCircles(prims, positions, bounds.X, bounds.Width, y, shape.Diameter, shape.Color, inverse)
	}
	return prims
}

func hTickAligned(prims []Primitive, group *marks.Group, appearance style.TickMarks, bounds core.Rectangle, y float32, alignEnd, inverse bool) []Primitive {
	prims = hTickTier(prims, group.Tier1(), appearance.Tier1, bounds, y, alignEnd, inverse)
	prims = hTickTier(prims, group.Tier2(), appearance.Tier2, bounds, y, alignEnd, inverse)
	prims = hTickTier(prims, group.Tier3(), appearance.Tier3, bounds, y, alignEnd, inverse)
	return prims
}

func hTickCenterTier(prims []Primitive, positions []core.Normal, shape style.TickShape, bounds core.Rectangle, centerY float32, fill, inverse bool) []Primitive {
	if len(positions) == 0 {
		return prims
	}
	switch shape.Kind {
	case style.TickShapeLine:
		y, length := centerY-shape.Length/2.0, shape.Length
		if fill {
			y, length = bounds.Y+shape.Length, bounds.Height-shape.Length*2.0
		}
		return hTickLines(prims, positions, bounds.X, bounds.Width, y, shape.Width, length, shape.Color, inverse)
	case style.TickShapeCircle:
		y, diameter := centerY-shape.Diameter/2.0, shape.Diameter
		if fill {
			y, diameter = bounds.Y+shape.Diameter, bounds.Height-shape.Diameter*2.0
		}
		return hTickCircles(prims, positions, bounds.X, bounds.Width, y, diameter, shape.Color, inverse)
	}
	return prims
}

func hTickCenterSplitTier(prims []Primitive, positions []core.Normal, shape style.TickShape, bounds core.Rectangle, centerY float32, fill bool, gap float32, inverse bool) []Primitive {
	if len(positions) == 0 {
		return prims
	}
	switch shape.Kind {
	case style.TickShapeLine:
		length := shape.Length
		if fill {
			length += (bounds.Height + gap) / 2.0
		}
		firstY := centerY - length - gap/2.0
		secondY := centerY + gap/2.0
		prims = hTickLines(prims, positions, bounds.X, bounds.Width, firstY, shape.Width, length, shape.Color, inverse)
		return hTickLines(prims, positions, bounds.X, bounds.Width, secondY, shape.Width, length, shape.Color, inverse)
	case style.TickShapeCircle:
		firstY, diameter := centerY-shape.Diameter-gap/2.0, shape.Diameter
		if fill {
			firstY = bounds.Y - shape.Diameter
			diameter = shape.Diameter + (bounds.Height+gap)/2.0
		}
		secondY := centerY + gap/2.0
		prims = hTickCircles(prims, positions, bounds.X, bounds.Width, firstY, diameter, shape.Color, inverse)
		return hTickCircles(prims, positions, bounds.X, bounds.Width, secondY, diameter, shape.Color, inverse)
	}
	return prims
}

// HTickMarks lays out a group's tick marks along a horizontal axis.
func HTickMarks(bounds core.Rectangle, group *marks.Group, appearance style.TickMarks, placement style.TickPlacement, inverse bool) []Primitive {
	if group == nil || group.Len() == 0 {
		return nil
	}

	bounds = placement.Offset.OffsetRect(bounds)
	prims := make([]Primitive, 0, group.Len()*2)

	switch placement.Kind {
	case style.TickBothSides:
		if placement.Inside {
			prims = hTickAligned(prims, group, appearance, bounds, bounds.Y, false, inverse)
			prims = hTickAligned(prims, group, appearance, bounds, bounds.Y+bounds.Height, true, inverse)
		} else {
			prims = hTickAligned(prims, group, appearance, bounds, bounds.Y, true, inverse)
			prims = hTickAligned(prims, group, appearance, bounds, bounds.Y+bounds.Height, false, inverse)
		}
	case style.TickLeftOrTop:
		prims = hTickAligned(prims, group, appearance, bounds, bounds.Y, !placement.Inside, inverse)
	case style.TickRightOrBottom:
		prims = hTickAligned(prims, group, appearance, bounds, bounds.Y+bounds.Height, placement.Inside, inverse)
	case style.TickCenter:
		centerY := bounds.Center().Y
		prims = hTickCenterTier(prims, group.Tier1(), appearance.Tier1, bounds, centerY, placement.FillLength, inverse)
		prims = hTickCenterTier(prims, group.Tier2(), appearance.Tier2, bounds, centerY, placement.FillLength, inverse)
		prims = hTickCenterTier(prims, group.Tier3(), appearance.Tier3, bounds, centerY, placement.FillLength, inverse)
	case style.TickCenterSplit:
		centerY := bounds.Center().Y
		prims = hTickCenterSplitTier(prims, group.Tier1(), appearance.Tier1, bounds, centerY, placement.FillLength, placement.Gap, inverse)
		prims = hTickCenterSplitTier(prims, group.Tier2(), appearance.Tier2, bounds, centerY, placement.FillLength, placement.Gap, inverse)
		prims = hTickCenterSplitTier(prims, group.Tier3(), appearance.Tier3, bounds, centerY, placement.FillLength, placement.Gap, inverse)
	}
	return prims
}

func vTickLines(prims []Primitive, positions []core.Normal, boundsY, boundsHeight, x, width, length float32, color style.Color, inverse bool) []Primitive {
	startY := boundsY - width/2.0
	for _, p := range positions {
		y := startY + p.ScaleInv(boundsHeight)
		if inverse {
			y = startY + p.Scale(boundsHeight)
		}
		prims = append(prims, Quad{
			Bounds:     core.Rectangle{X: x, Y: y, Width: length, Height: width},
			Background: color,
		})
	}
	return prims
}

func vTickCircles(prims []Primitive, positions []core.Normal, boundsY, boundsHeight, x, diameter float32, color style.Color, inverse bool) []Primitive {
	startY := boundsY - diameter/2.0
	for _, p := range positions {
		y := startY + p.ScaleInv(boundsHeight)
		if inverse {
			y = startY + p.Scale(boundsHeight)
		}
		prims = append(prims, circleQuad(x, y, diameter, color))
	}
	return prims
}

func vTickTier(prims []Primitive, positions []core.Normal, shape style.TickShape, bounds core.Rectangle, x float32, alignEnd, inverse bool) []Primitive {
	if len(positions) == 0 {
		return prims
	}
	switch shape.Kind {
	case style.TickShapeLine:
		if alignEnd {
			x -= shape.Length
		}
		return vTickLines(prims, positions, bounds.Y, bounds.Height, x, shape.Width, shape.Length, shape.Color, inverse)
	case style.TickShapeCircle:
		if alignEnd {
			x -= shape.Diameter
		}
		return vTickCircles(prims, positions, bounds.Y, bounds.Height, x, shape.Diameter, shape.Color, inverse)
	}
	return prims
}

func vTickAligned(prims []Primitive, group *marks.Group, appearance style.TickMarks, bounds core.Rectangle, x float32, alignEnd, inverse bool) []Primitive {
	prims = vTickTier(prims, group.Tier1(), appearance.Tier1, bounds, x, alignEnd, inverse)
	prims = vTickTier(prims, group.Tier2(), appearance.Tier2, bounds, x, alignEnd, inverse)
	prims = vTickTier(prims, group.Tier3(), appearance.Tier3, bounds, x, alignEnd, inverse)
	return prims
}

func vTickCenterTier(prims []Primitive, positions []core.Normal, shape style.TickShape, bounds core.Rectangle, centerX float32, fill, inverse bool) []Primitive {
	if len(positions) == 0 {
		return prims
	}
	switch shape.Kind {
	case style.TickShapeLine:
		x, length := centerX-shape.Length/2.0, shape.Length
		if fill {
			x, length = bounds.X+shape.Length, bounds.Width-shape.Length*2.0
		}
		return vTickLines(prims, positions, bounds.Y, bounds.Height, x, shape.Width, length, shape.Color, inverse)
	case style.TickShapeCircle:
		x, diameter := centerX-shape.Diameter/2.0, shape.Diameter
		if fill {
			x, diameter = bounds.X+shape.Diameter, bounds.Width-shape.Diameter*2.0
		}
		return vTickCircles(prims, positions, bounds.Y, bounds.Height, x, diameter, shape.Color, inverse)
	}
	return prims
}

func vTickCenterSplitTier(prims []Primitive, positions []core.Normal, shape style.TickShape, bounds core.Rectangle, centerX float32, fill bool, gap float32, inverse bool) []Primitive {
	if len(positions) == 0 {
		return prims
	}
	switch shape.Kind {
	case style.TickShapeLine:
		length := shape.Length
		if fill {
			length += (bounds.Width + gap) / 2.0
		}
		firstX := centerX - length - gap/2.0
		secondX := centerX + gap/2.0
		prims = vTickLines(prims, positions, bounds.Y, bounds.Height, firstX, shape.Width, length, shape.Color, inverse)
		return vTickLines(prims, positions, bounds.Y, bounds.Height, secondX, shape.Width, length, shape.Color, inverse)
	case style.TickShapeCircle:
		firstX, diameter := centerX-shape.Diameter-gap/2.0, shape.Diameter
		if fill {
			firstX = bounds.X - shape.Diameter
			diameter = shape.Diameter + (bounds.Width+gap)/2.0
		}
		secondX := centerX + gap/2.0
		prims = vTickCircles(prims, positions, bounds.Y, bounds.Height, firstX, diameter, shape.Color, inverse)
		return vTickCircles(prims, positions, bounds.Y, bounds.Height, secondX, diameter, shape.Color, inverse)
	}
	return prims
}

// VTickMarks lays out a group's tick marks along a vertical axis.
// Normal zero sits at the bottom edge unless inverse is set.
func VTickMarks(bounds core.Rectangle, group *marks.Group, appearance style.TickMarks, placement style.TickPlacement, inverse bool) []Primitive {
	if group == nil || group.Len() == 0 {
		return nil
	}

	bounds = placement.Offset.OffsetRect(bounds)
	prims := make([]Primitive, 0, group.Len()*2)

	switch placement.Kind {
	case style.TickBothSides:
		if placement.Inside {
			prims = vTickAligned(prims, group, appearance, bounds, bounds.X, false, inverse)
			prims = vTickAligned(prims, group, appearance, bounds, bounds.X+bounds.Width, true, inverse)
		} else {
			prims = vTickAligned(prims, group, appearance, bounds, bounds.X, true, inverse)
			prims = vTickAligned(prims, group, appearance, bounds, bounds.X+bounds.Width, false, inverse)
		}
	case style.TickLeftOrTop:
		prims = vTickAligned(prims, group, appearance, bounds, bounds.X, !placement.Inside, inverse)
	case style.TickRightOrBottom:
		prims = vTickAligned(prims, group, appearance, bounds, bounds.X+bounds.Width, placement.Inside, inverse)
	case style.TickCenter:
		centerX := bounds.Center().X
		prims = vTickCenterTier(prims, group.Tier1(), appearance.Tier1, bounds, centerX, placement.FillLength, inverse)
		prims = vTickCenterTier(prims, group.Tier2(), appearance.Tier2, bounds, centerX, placement.FillLength, inverse)
		prims = vTickCenterTier(prims, group.Tier3(), appearance.Tier3, bounds, centerX, placement.FillLength, inverse)
	case style.TickCenterSplit:
		centerX := bounds.Center().X
		prims = vTickCenterSplitTier(prims, group.Tier1(), appearance.Tier1, bounds, centerX, placement.FillLength, placement.Gap, inverse)
		prims = vTickCenterSplitTier(prims, group.Tier2(), appearance.Tier2, bounds, centerX, placement.FillLength, placement.Gap, inverse)
		prims = vTickCenterSplitTier(prims, group.Tier3(), appearance.Tier3, bounds, centerX, placement.FillLength, placement.Gap, inverse)
	}
	return prims
}

// radialDirection returns the unit vector pointing from the center at
// the given angle, zero pointing straight up.
func radialDirection(angle float32) (float32, float32) {
	if angle >= -0.001 && angle <= 0.001 {
		return 0.0, -1.0
	}
	return sin32(angle), -cos32(angle)
}

func radialTickTier(prims []Primitive, positions []core.Normal, shape style.TickShape, center core.Point, radius, startAngle, angleSpan float32, inside, inverse bool) []Primitive {
	if len(positions) == 0 {
		return prims
	}
	switch shape.Kind {
	case style.TickShapeLine:
		offsetRadius := radius
		if inside {
			offsetRadius -= shape.Length
		}
		for _, p := range positions {
			angle := startAngle + p.Scale(angleSpan)
			if inverse {
				angle = startAngle + p.ScaleInv(angleSpan)
			}
			dx, dy := radialDirection(angle)
			prims = append(prims, Line{
				From:  core.Point{X: center.X + dx*offsetRadius, Y: center.Y + dy*offsetRadius},
				To:    core.Point{X: center.X + dx*(offsetRadius+shape.Length), Y: center.Y + dy*(offsetRadius+shape.Length)},
				Width: shape.Width,
				Cap:   style.CapButt,
				Color: shape.Color,
			})
		}
	case style.TickShapeCircle:
		r := shape.Diameter / 2.0
		offsetRadius := radius + r
		if inside {
			offsetRadius = radius - r
		}
		for _, p := range positions {
			angle := startAngle + p.Scale(angleSpan)
			if inverse {
				angle = startAngle + p.ScaleInv(angleSpan)
			}
			dx, dy := radialDirection(angle)
			prims = append(prims, circleQuad(
				center.X+dx*offsetRadius-r,
				center.Y+dy*offsetRadius-r,
				shape.Diameter,
				shape.Color,
			))
		}
	}
	return prims
}

// RadialTickMarks lays out a group's tick marks around an arc.
// startAngle is in radians clockwise from straight-up; inside pulls
// the marks within the radius instead of outside it.
func RadialTickMarks(center core.Point, radius, startAngle, angleSpan float32, inside bool, group *marks.Group, appearance style.TickMarks, inverse bool) []Primitive {
	if group == nil || group.Len() == 0 {
		return nil
	}

	prims := make([]Primitive, 0, group.Len())
	prims = radialTickTier(prims, group.Tier1(), appearance.Tier1, center, radius, startAngle, angleSpan, inside, inverse)
	prims = radialTickTier(prims, group.Tier2(), appearance.Tier2, center, radius, startAngle, angleSpan, inside, inverse)
	prims = radialTickTier(prims, group.Tier3(), appearance.Tier3, center, radius, startAngle, angleSpan, inside, inverse)
	return prims
}
