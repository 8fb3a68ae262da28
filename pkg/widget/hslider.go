package widget

import (
	"k8s.io/utils/clock"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/event"
	"github.com/justyntemme/audioui/pkg/marks"
	"github.com/justyntemme/audioui/pkg/style"
)

const defaultSliderThickness float32 = 14.0

// HSlider is a horizontal slider. The handle jumps to the cursor on
// press and the full widget width sweeps the value range.
type HSlider struct {
	control

	sheet  style.SliderStyleSheet
	height float32

	ticks *marks.Group
	texts *marks.TextGroup

	modRange  *core.ModulationRange
	modRange2 *core.ModulationRange
}

// NewHSlider builds a horizontal slider bound to param with the
// default style.
func NewHSlider(param *core.NormalParam) *HSlider {
	return &HSlider{
		control: newControl(param),
		sheet:   style.DefaultHSlider(),
		height:  defaultSliderThickness,
	}
}

// Sheet sets the style sheet.
func (s *HSlider) Sheet(sheet style.SliderStyleSheet) *HSlider {
	s.sheet = sheet
	return s
}

// Height sets the slider height in pixels.
func (s *HSlider) Height(height float32) *HSlider {
	s.height = height
	return s
}

// TickMarks sets the tick marks along the slider.
func (s *HSlider) TickMarks(group marks.Group) *HSlider {
	s.ticks = &group
	return s
}

// TextMarks sets the text labels along the slider.
func (s *HSlider) TextMarks(group marks.TextGroup) *HSlider {
	s.texts = &group
	return s
}

// ModRange attaches the first modulation range overlay. The widget
// reads it at draw time, so the host may update it in place.
func (s *HSlider) ModRange(rng *core.ModulationRange) *HSlider {
	s.modRange = rng
	return s
}

// ModRange2 attaches the second modulation range overlay.
func (s *HSlider) ModRange2(rng *core.ModulationRange) *HSlider {
	s.modRange2 = rng
	return s
}

// Snap applies a snapping function, usually an IntRange's
// SnappedNormal, to every visible value.
func (s *HSlider) Snap(snap func(core.Normal) core.Normal) *HSlider {
	s.snap = snap
	return s
}

// OnChange registers the callback fired once per visible value change.
func (s *HSlider) OnChange(fn func(core.Normal)) *HSlider {
	s.onChange = fn
	return s
}

// DisableWheel turns off scroll wheel input.
func (s *HSlider) DisableWheel() *HSlider {
	s.wheel = false
	return s
}

// DisableDoubleClick turns off the double-click reset to the default.
func (s *HSlider) DisableDoubleClick() *HSlider {
	s.doubleClick = false
	return s
}

// Clock substitutes the clock used for double-click timing.
func (s *HSlider) Clock(c clock.PassiveClock) *HSlider {
	s.state.clock = c
	return s
}

// PreferredSize returns the advertised size. Zero means fill.
func (s *HSlider) PreferredSize() core.Size {
	return core.Size{Width: 0.0, Height: s.height}
}

// OnEvent ingests one host event.
func (s *HSlider) OnEvent(bounds core.Rectangle, cursor core.Point, ev event.Event) (event.Status, bool) {
	drag := func(prev, cur core.Point) (float32, core.Point, bool) {
		if bounds.Width <= 0.0 {
			return 0.0, prev, false
		}
		next := core.Point{X: clamp32(cur.X, bounds.X, bounds.X+bounds.Width), Y: cur.Y}
		return (cur.X - prev.X) / bounds.Width, next, true
	}
	jump := func(cur core.Point) (core.Normal, bool) {
		if bounds.Width <= 0.0 {
			return core.Normal{}, false
		}
		return core.NewNormal((cur.X - bounds.X) / bounds.Width), true
	}
	return s.handle(bounds, cursor, ev, drag, jump)
}

func (s *HSlider) appearance(bounds core.Rectangle, cursor core.Point) style.SliderAppearance {
	if s.state.dragging {
		return s.sheet.Dragging()
	}
	if bounds.Contains(cursor) {
		return s.sheet.Hovered()
	}
	return s.sheet.Active()
}

// Draw renders the slider. The handle travels within the value bounds,
// the widget bounds inset by half the handle width on each end so the
// handle never overhangs.
func (s *HSlider) Draw(bounds core.Rectangle, cursor core.Point) []draw.Primitive {
	appearance := s.appearance(bounds, cursor)
	b := roundBounds(bounds)

	handleWidth := appearance.HandleWidth()
	vb := core.Rectangle{
		X:      round32(b.X + handleWidth/2.0),
		Y:      b.Y,
		Width:  b.Width - handleWidth,
		Height: b.Height,
	}

	switch appearance.Kind {
	case style.SliderStyleRect:
		return s.drawRect(b, vb, appearance.Rect)
	case style.SliderStyleRectBipolar:
		return s.drawRectBipolar(b, vb, appearance.RectBipolar)
	case style.SliderStyleTexture:
		return s.drawTexture(b, vb, appearance.Texture)
	default:
		return s.drawClassic(b, vb, appearance.Classic)
	}
}

// markers renders the ticks, texts and modulation ranges. Marks always
// align to the value bounds; the rect styles stretch their mod ranges
// across the full bounds instead.
func (s *HSlider) markers(markBounds, modBounds core.Rectangle) ([]draw.Primitive, []draw.Primitive, []draw.Primitive, []draw.Primitive) {
	var ticks, texts, mod1, mod2 []draw.Primitive
	if s.ticks != nil {
		if st, ok := s.sheet.TickMarks(); ok {
			ticks = draw.HTickMarks(markBounds, s.ticks, st.Style, st.Placement, false)
		}
	}
	if s.texts != nil {
		if st, ok := s.sheet.TextMarks(); ok {
			texts = draw.HTextMarks(markBounds, s.texts, st.Style, st.Placement, false)
		}
	}
	if st, ok := s.sheet.ModRange(); ok {
		mod1 = hSliderModRange(modBounds, s.modRange, st)
	}
	if st, ok := s.sheet.ModRange2(); ok {
		mod2 = hSliderModRange(modBounds, s.modRange2, st)
	}
	return ticks, texts, mod1, mod2
}

func (s *HSlider) drawClassic(b, vb core.Rectangle, st style.SliderClassic) []draw.Primitive {
	ticks, texts, mod1, mod2 := s.markers(vb, vb)
	topRail, bottomRail := hClassicRail(b, st.Rail)

	handleOffset := round32(s.Value().Scale(vb.Width))

	prims := make([]draw.Primitive, 0, len(ticks)+len(texts)+len(mod1)+len(mod2)+4)
	prims = append(prims, ticks...)
	prims = append(prims, texts...)
	prims = append(prims, topRail, bottomRail)
	prims = append(prims, draw.Quad{
		Bounds: core.Rectangle{
			X:      b.X + handleOffset,
			Y:      b.Y,
			Width:  st.Handle.Width,
			Height: b.Height,
		},
		Background:   st.Handle.Color,
		BorderRadius: draw.CornerRadius(st.Handle.BorderRadius),
		BorderWidth:  st.Handle.BorderWidth,
		BorderColor:  st.Handle.BorderColor,
	})
	if st.Handle.NotchWidth != 0.0 {
		prims = append(prims, draw.Quad{
			Bounds: core.Rectangle{
				X:      round32(b.X + handleOffset + st.Handle.Width/2.0 - st.Handle.NotchWidth/2.0),
				Y:      b.Y,
				Width:  st.Handle.NotchWidth,
				Height: b.Height,
			},
			Background: st.Handle.NotchColor,
		})
	}
	prims = append(prims, mod1...)
	prims = append(prims, mod2...)
	return prims
}

func (s *HSlider) drawRect(b, vb core.Rectangle, st style.SliderRect) []draw.Primitive {
	ticks, texts, mod1, mod2 := s.markers(vb, b)

	twiceBorder := st.BackBorderWidth * 2.0
	handleOffset := round32(s.Value().Scale(vb.Width - twiceBorder))

	prims := make([]draw.Primitive, 0, len(ticks)+len(texts)+len(mod1)+len(mod2)+3)
	prims = append(prims, draw.Quad{
		Bounds:       b,
		Background:   st.BackColor,
		BorderRadius: draw.CornerRadius(st.BackBorderRadius),
		BorderWidth:  st.BackBorderWidth,
		BorderColor:  st.BackBorderColor,
	})
	prims = append(prims, ticks...)
	prims = append(prims, texts...)
	prims = append(prims,
		draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X,
				Y:      b.Y,
				Width:  handleOffset + twiceBorder - st.HandleFilledGap,
				Height: b.Height,
			},
			Background:   st.FilledColor,
			BorderRadius: draw.CornerRadius(st.BackBorderRadius),
			BorderWidth:  st.BackBorderWidth,
			BorderColor:  style.Transparent,
		},
		draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X + handleOffset,
				Y:      b.Y,
				Width:  st.HandleWidth + twiceBorder,
				Height: b.Height,
			},
			Background:   st.HandleColor,
			BorderRadius: draw.CornerRadius(st.BackBorderRadius),
			BorderWidth:  st.BackBorderWidth,
			BorderColor:  style.Transparent,
		},
	)
	prims = append(prims, mod1...)
	prims = append(prims, mod2...)
	return prims
}

func (s *HSlider) drawRectBipolar(b, vb core.Rectangle, st style.SliderRectBipolar) []draw.Primitive {
	ticks, texts, mod1, mod2 := s.markers(vb, b)

	twiceBorder := st.BackBorderWidth * 2.0
	handleOffset := round32(s.Value().Scale(vb.Width - twiceBorder))
	v := s.Value().Value()

	handleColor := st.HandleCenterColor
	var filled []draw.Primitive
	switch {
	case v > 0.499 && v < 0.501:
	case v < 0.5:
		handleColor = st.HandleLowColor
		filledOffset := handleOffset + st.HandleWidth + st.HandleFilledGap
		filled = append(filled, draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X + filledOffset,
				Y:      b.Y,
				Width:  round32(b.Width/2.0 - filledOffset + twiceBorder),
				Height: b.Height,
			},
			Background:   st.LowFilledColor,
			BorderRadius: draw.CornerRadius(st.BackBorderRadius),
			BorderWidth:  st.BackBorderWidth,
			BorderColor:  style.Transparent,
		})
	default:
		handleColor = st.HandleHighColor
		filledOffset := round32(b.Width/2.0) - st.BackBorderWidth
		filled = append(filled, draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X + filledOffset,
				Y:      b.Y,
				Width:  handleOffset - filledOffset + twiceBorder - st.HandleFilledGap,
				Height: b.Height,
			},
			Background:   st.HighFilledColor,
			BorderRadius: draw.CornerRadius(st.BackBorderRadius),
			BorderWidth:  st.BackBorderWidth,
			BorderColor:  style.Transparent,
		})
	}

	prims := make([]draw.Primitive, 0, len(ticks)+len(texts)+len(mod1)+len(mod2)+3)
	prims = append(prims, draw.Quad{
		Bounds:       b,
		Background:   st.BackColor,
		BorderRadius: draw.CornerRadius(st.BackBorderRadius),
		BorderWidth:  st.BackBorderWidth,
		BorderColor:  st.BackBorderColor,
	})
	prims = append(prims, ticks...)
	prims = append(prims, texts...)
	prims = append(prims, filled...)
	prims = append(prims, draw.Quad{
		Bounds: core.Rectangle{
			X:      b.X + handleOffset,
			Y:      b.Y,
			Width:  st.HandleWidth + twiceBorder,
			Height: b.Height,
		},
		Background:   handleColor,
		BorderRadius: draw.CornerRadius(st.BackBorderRadius),
		BorderWidth:  st.BackBorderWidth,
		BorderColor:  style.Transparent,
	})
	prims = append(prims, mod1...)
	prims = append(prims, mod2...)
	return prims
}

func (s *HSlider) drawTexture(b, vb core.Rectangle, st style.SliderTexture) []draw.Primitive {
	ticks, texts, mod1, mod2 := s.markers(vb, vb)
	topRail, bottomRail := hClassicRail(b, st.Rail)

	prims := make([]draw.Primitive, 0, len(ticks)+len(texts)+len(mod1)+len(mod2)+3)
	prims = append(prims, ticks...)
	prims = append(prims, texts...)
	prims = append(prims, topRail, bottomRail)
	prims = append(prims, draw.ImageQuad{
		Handle: st.Image,
		Bounds: core.Rectangle{
			X:      round32(vb.X + st.ImageBounds.X + s.Value().Scale(vb.Width)),
			Y:      round32(b.Center().Y + st.ImageBounds.Y),
			Width:  st.ImageBounds.Width,
			Height: st.ImageBounds.Height,
		},
	})
	prims = append(prims, mod1...)
	prims = append(prims, mod2...)
	return prims
}

// hClassicRail draws the two rail stripes stacked across the slider
// center.
func hClassicRail(b core.Rectangle, rail style.ClassicRail) (draw.Primitive, draw.Primitive) {
	topWidth, bottomWidth := rail.Widths[0], rail.Widths[1]
	x := b.X + rail.Padding
	width := b.Width - rail.Padding*2.0
	startY := round32(b.Y + (b.Height-(topWidth+bottomWidth))/2.0)

	top := draw.Quad{
		Bounds:     core.Rectangle{X: x, Y: startY, Width: width, Height: topWidth},
		Background: rail.Colors[0],
	}
	bottom := draw.Quad{
		Bounds:     core.Rectangle{X: x, Y: startY + topWidth, Width: width, Height: bottomWidth},
		Background: rail.Colors[1],
	}
	return top, bottom
}

// hSliderModRange draws one modulation range bar across a horizontal
// axis.
func hSliderModRange(bounds core.Rectangle, rng *core.ModulationRange, st style.SliderModRange) []draw.Primitive {
	if rng == nil {
		return nil
	}

	y, height := bounds.Y, st.Placement.Thickness
	switch st.Placement.Kind {
	case style.ModRangeCenter:
		y = bounds.Y + st.Placement.Offset + (bounds.Height-height)/2.0
	case style.ModRangeCenterFilled:
		y = bounds.Y + st.Placement.EdgePadding
		height = bounds.Height - st.Placement.EdgePadding*2.0
	case style.ModRangeStart:
		y = bounds.Y + st.Placement.Offset - height
	case style.ModRangeEnd:
		y = bounds.Y + bounds.Height + st.Placement.Offset
	}

	prims := make([]draw.Primitive, 0, 2)
	if !st.BackColor.IsTransparent() {
		prims = append(prims, draw.Quad{
			Bounds:       core.Rectangle{X: bounds.X, Y: y, Width: bounds.Width, Height: height},
			Background:   st.BackColor,
			BorderRadius: draw.CornerRadius(st.BackBorderRadius),
			BorderWidth:  st.BackBorderWidth,
			BorderColor:  st.BackBorderColor,
		})
	}
	if rng.FilledVisible && rng.Start != rng.End {
		lo, hi := rng.Start.Value(), rng.End.Value()
		color := st.FilledColor
		if lo > hi {
			lo, hi = hi, lo
			color = st.FilledInverseColor
		}
		startOffset := bounds.Width * lo
		prims = append(prims, draw.Quad{
			Bounds: core.Rectangle{
				X:      bounds.X + startOffset,
				Y:      y,
				Width:  bounds.Width*hi - startOffset,
				Height: height,
			},
			Background:   color,
			BorderRadius: draw.CornerRadius(st.BackBorderRadius),
			BorderWidth:  st.BackBorderWidth,
			BorderColor:  style.Transparent,
		})
	}
	return prims
}
