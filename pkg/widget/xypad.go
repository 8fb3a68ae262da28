package widget

import (
	"k8s.io/utils/clock"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/event"
	"github.com/justyntemme/audioui/pkg/style"
)

// XYPad drives two parameters from one square surface. X grows to the
// right and Y grows upward. It runs its own copy of the pointer state
// machine because every gesture moves both axes at once.
type XYPad struct {
	paramX *core.NormalParam
	paramY *core.NormalParam

	snapX func(core.Normal) core.Normal
	snapY func(core.Normal) core.Normal

	// onChange fires once per event that changed either axis.
	onChange func(x, y core.Normal)

	wheel       bool
	doubleClick bool

	state tracker

	// contX and contY accumulate unsnapped drag movement per axis,
	// unclamped while dragging so overshoot is replayed on the way
	// back.
	contX float32
	contY float32

	sheet style.XYPadStyleSheet
}

// NewXYPad builds a pad bound to an X and a Y parameter with the
// default style.
func NewXYPad(paramX, paramY *core.NormalParam) *XYPad {
	p := &XYPad{
		paramX:      paramX,
		paramY:      paramY,
		wheel:       true,
		doubleClick: true,
		state:       newTracker(),
		sheet:       style.DefaultXYPad(),
	}
	p.syncContinuous()
	return p
}

// Sheet sets the style sheet.
func (p *XYPad) Sheet(sheet style.XYPadStyleSheet) *XYPad {
	p.sheet = sheet
	return p
}

// SnapX applies a snapping function to the visible X value.
func (p *XYPad) SnapX(snap func(core.Normal) core.Normal) *XYPad {
	p.snapX = snap
	return p
}

// SnapY applies a snapping function to the visible Y value.
func (p *XYPad) SnapY(snap func(core.Normal) core.Normal) *XYPad {
	p.snapY = snap
	return p
}

// OnChange registers the callback fired once per event that changed
// either axis.
func (p *XYPad) OnChange(fn func(x, y core.Normal)) *XYPad {
	p.onChange = fn
	return p
}

// DisableWheel turns off scroll wheel input.
func (p *XYPad) DisableWheel() *XYPad {
	p.wheel = false
	return p
}

// DisableDoubleClick turns off the double-click reset to the defaults.
func (p *XYPad) DisableDoubleClick() *XYPad {
	p.doubleClick = false
	return p
}

// Clock substitutes the clock used for double-click timing.
func (p *XYPad) Clock(c clock.PassiveClock) *XYPad {
	p.state.clock = c
	return p
}

// ValueX returns the visible X value.
func (p *XYPad) ValueX() core.Normal {
	return p.paramX.Value
}

// ValueY returns the visible Y value.
func (p *XYPad) ValueY() core.Normal {
	return p.paramY.Value
}

// SetValue moves both axes from the host without firing the change
// callback.
func (p *XYPad) SetValue(x, y core.Normal) {
	if p.snapX != nil {
		x = p.snapX(x)
	}
	if p.snapY != nil {
		y = p.snapY(y)
	}
	p.paramX.Update(x)
	p.paramY.Update(y)
	if !p.state.dragging {
		p.syncContinuous()
	}
}

// Dragging reports whether the pad has captured the pointer.
func (p *XYPad) Dragging() bool {
	return p.state.dragging
}

// Hovered reports whether the pointer is over the pad.
func (p *XYPad) Hovered() bool {
	return p.state.hovered
}

// PreferredSize returns zero on both axes. The pad fills whatever
// square the host gives it.
func (p *XYPad) PreferredSize() core.Size {
	return core.Size{}
}

func (p *XYPad) syncContinuous() {
	p.contX = p.paramX.Value.Value()
	p.contY = p.paramY.Value.Value()
}

// setVisible snaps and stores both axes, firing the change callback
// once if either moved.
func (p *XYPad) setVisible(x, y core.Normal) bool {
	if p.snapX != nil {
		x = p.snapX(x)
	}
	if p.snapY != nil {
		y = p.snapY(y)
	}
	changed := false
	if x != p.paramX.Value {
		p.paramX.Update(x)
		changed = true
	}
	if y != p.paramY.Value {
		p.paramY.Update(y)
		changed = true
	}
	if changed && p.onChange != nil {
		p.onChange(x, y)
	}
	return changed
}

// OnEvent ingests one host event. Drag distance maps onto the pad's
// shorter side so both axes move at the same pixel rate.
func (p *XYPad) OnEvent(bounds core.Rectangle, cursor core.Point, ev event.Event) (event.Status, bool) {
	switch e := ev.(type) {
	case event.PointerMoved:
		p.state.hovered = bounds.Contains(cursor)
		if !p.state.dragging {
			return event.Ignored, false
		}
		size := min(bounds.Width, bounds.Height)
		if size <= 0.0 {
			return event.Ignored, false
		}
		dx := (cursor.X - p.state.prev.X) / size
		dy := (p.state.prev.Y - cursor.Y) / size
		if p.state.fine {
			dx /= fineDivisor
			dy /= fineDivisor
		}
		p.state.prev = cursor
		p.contX += dx
		p.contY += dy
		return event.Captured, p.setVisible(core.NewNormal(p.contX), core.NewNormal(p.contY))

	case event.PointerPressed:
		if !bounds.Contains(cursor) {
			return event.Ignored, false
		}
		if p.state.repeatClick(cursor) && p.doubleClick {
			changed := p.setVisible(p.paramX.Default, p.paramY.Default)
			p.state.dragging = false
			p.syncContinuous()
			return event.Captured, changed
		}
		p.state.dragging = true
		p.state.prev = cursor
		p.syncContinuous()
		return event.Captured, false

	case event.PointerReleased:
		if !p.state.dragging {
			return event.Ignored, false
		}
		p.state.dragging = false
		p.syncContinuous()
		return event.Captured, false

	case event.PointerLeft:
		p.state.hovered = false
		return event.Ignored, false

	case event.ScrollLine:
		return p.scroll(bounds, cursor, e.DeltaY)

	case event.ScrollPixel:
		return p.scroll(bounds, cursor, signOf(e.DeltaY))

	case event.KeyPressed:
		if !e.Fine {
			return event.Ignored, false
		}
		p.state.fine = true
		return event.Captured, false

	case event.KeyReleased:
		if !e.Fine {
			return event.Ignored, false
		}
		p.state.fine = false
		return event.Captured, false
	}
	return event.Ignored, false
}

// scroll steps the Y axis only.
func (p *XYPad) scroll(bounds core.Rectangle, cursor core.Point, lines float32) (event.Status, bool) {
	if !p.wheel || lines == 0.0 || !bounds.Contains(cursor) {
		return event.Ignored, false
	}
	step := scrollStep
	if p.state.fine {
		step = scrollFineStep
	}
	y := core.NewNormal(p.contY + lines*step)
	p.contY = y.Value()
	return event.Captured, p.setVisible(core.NewNormal(p.contX), y)
}

func (p *XYPad) appearance(bounds core.Rectangle, cursor core.Point) style.XYPadAppearance {
	if p.state.dragging {
		return p.sheet.Dragging()
	}
	if bounds.Contains(cursor) {
		return p.sheet.Hovered()
	}
	return p.sheet.Active()
}

// Draw renders the pad into the largest square that fits the bounds.
func (p *XYPad) Draw(bounds core.Rectangle, cursor core.Point) []draw.Primitive {
	appearance := p.appearance(bounds, cursor)

	x := floor32(bounds.X)
	y := floor32(bounds.Y)
	size := floor32(min(bounds.Width, bounds.Height))

	handleX := round32(x + p.paramX.Value.Scale(size))
	handleY := round32(y + p.paramY.Value.ScaleInv(size))

	prims := make([]draw.Primitive, 0, 6)
	prims = append(prims, draw.Quad{
		Bounds:      core.Rectangle{X: x, Y: y, Width: size, Height: size},
		Background:  appearance.BackColor,
		BorderWidth: appearance.BorderWidth,
		BorderColor: appearance.BorderColor,
	})

	if appearance.CenterLineWidth != 0.0 && !appearance.CenterLineColor.IsTransparent() {
		center := round32(size / 2.0)
		half := floor32(appearance.CenterLineWidth / 2.0)
		prims = append(prims,
			draw.Quad{
				Bounds: core.Rectangle{
					X:      x,
					Y:      y + center - half,
					Width:  size,
					Height: appearance.CenterLineWidth,
				},
				Background: appearance.CenterLineColor,
			},
			draw.Quad{
				Bounds: core.Rectangle{
					X:      x + center - half,
					Y:      y,
					Width:  appearance.CenterLineWidth,
					Height: size,
				},
				Background: appearance.CenterLineColor,
			},
		)
	}

	if appearance.RailWidth != 0.0 {
		halfRail := floor32(appearance.RailWidth / 2.0)
		prims = append(prims,
			draw.Quad{
				Bounds: core.Rectangle{
					X:      x,
					Y:      handleY - halfRail,
					Width:  size,
					Height: appearance.RailWidth,
				},
				Background: appearance.HRailColor,
			},
			draw.Quad{
				Bounds: core.Rectangle{
					X:      handleX - halfRail,
					Y:      y,
					Width:  appearance.RailWidth,
					Height: size,
				},
				Background: appearance.VRailColor,
			},
		)
	}

	prims = append(prims, xyPadHandle(handleX, handleY, appearance.Handle))
	return prims
}

func xyPadHandle(x, y float32, handle style.XYPadHandle) draw.Primitive {
	if handle.Kind == style.XYPadHandleSquare {
		half := round32(handle.Size / 2.0)
		return draw.Quad{
			Bounds: core.Rectangle{
				X:      x - half + 1.0,
				Y:      y - half + 1.0,
				Width:  handle.Size,
				Height: handle.Size,
			},
			Background:   handle.Color,
			BorderRadius: draw.CornerRadius(handle.BorderRadius),
			BorderWidth:  handle.BorderWidth,
			BorderColor:  handle.BorderColor,
		}
	}
	radius := round32(handle.Diameter / 2.0)
	return draw.Quad{
		Bounds: core.Rectangle{
			X:      x - radius + 1.0,
			Y:      y - radius + 1.0,
			Width:  handle.Diameter,
			Height: handle.Diameter,
		},
		Background:   handle.Color,
		BorderRadius: draw.CornerRadius(radius),
		BorderWidth:  handle.BorderWidth,
		BorderColor:  handle.BorderColor,
	}
}
