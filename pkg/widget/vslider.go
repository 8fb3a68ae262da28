package widget

import (
	"k8s.io/utils/clock"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/event"
	"github.com/justyntemme/audioui/pkg/marks"
	"github.com/justyntemme/audioui/pkg/style"
)

// VSlider is a vertical slider. The maximum sits at the top, so screen
// offsets grow as the value falls.
type VSlider struct {
	control

	sheet style.SliderStyleSheet
	width float32

	ticks *marks.Group
	texts *marks.TextGroup

	modRange  *core.ModulationRange
	modRange2 *core.ModulationRange
}

// NewVSlider builds a vertical slider bound to param with the default
// style.
func NewVSlider(param *core.NormalParam) *VSlider {
	return &VSlider{
		control: newControl(param),
		sheet:   style.DefaultVSlider(),
		width:   defaultSliderThickness,
	}
}

// Sheet sets the style sheet.
func (s *VSlider) Sheet(sheet style.SliderStyleSheet) *VSlider {
	s.sheet = sheet
	return s
}

// Width sets the slider width in pixels.
func (s *VSlider) Width(width float32) *VSlider {
	s.width = width
	return s
}

// TickMarks sets the tick marks along the slider.
func (s *VSlider) TickMarks(group marks.Group) *VSlider {
	s.ticks = &group
	return s
}

// TextMarks sets the text labels along the slider.
func (s *VSlider) TextMarks(group marks.TextGroup) *VSlider {
	s.texts = &group
	return s
}

// ModRange attaches the first modulation range overlay. The widget
// reads it at draw time, so the host may update it in place.
func (s *VSlider) ModRange(rng *core.ModulationRange) *VSlider {
	s.modRange = rng
	return s
}

// ModRange2 attaches the second modulation range overlay.
func (s *VSlider) ModRange2(rng *core.ModulationRange) *VSlider {
	s.modRange2 = rng
	return s
}

// Snap applies a snapping function to every visible value.
func (s *VSlider) Snap(snap func(core.Normal) core.Normal) *VSlider {
	s.snap = snap
	return s
}

// OnChange registers the callback fired once per visible value change.
func (s *VSlider) OnChange(fn func(core.Normal)) *VSlider {
	s.onChange = fn
	return s
}

// DisableWheel turns off scroll wheel input.
func (s *VSlider) DisableWheel() *VSlider {
	s.wheel = false
	return s
}

// DisableDoubleClick turns off the double-click reset to the default.
func (s *VSlider) DisableDoubleClick() *VSlider {
	s.doubleClick = false
	return s
}

// Clock substitutes the clock used for double-click timing.
func (s *VSlider) Clock(c clock.PassiveClock) *VSlider {
	s.state.clock = c
	return s
}

// PreferredSize returns the advertised size. Zero means fill.
func (s *VSlider) PreferredSize() core.Size {
	return core.Size{Width: s.width, Height: 0.0}
}

// OnEvent ingests one host event.
func (s *VSlider) OnEvent(bounds core.Rectangle, cursor core.Point, ev event.Event) (event.Status, bool) {
	drag := func(prev, cur core.Point) (float32, core.Point, bool) {
		if bounds.Height <= 0.0 {
			return 0.0, prev, false
		}
		next := core.Point{X: cur.X, Y: clamp32(cur.Y, bounds.Y, bounds.Y+bounds.Height)}
		return (prev.Y - cur.Y) / bounds.Height, next, true
	}
	jump := func(cur core.Point) (core.Normal, bool) {
		if bounds.Height <= 0.0 {
			return core.Normal{}, false
		}
		return core.NewNormal(1.0 - (cur.Y-bounds.Y)/bounds.Height), true
	}
	return s.handle(bounds, cursor, ev, drag, jump)
}

func (s *VSlider) appearance(bounds core.Rectangle, cursor core.Point) style.SliderAppearance {
	if s.state.dragging {
		return s.sheet.Dragging()
	}
	if bounds.Contains(cursor) {
		return s.sheet.Hovered()
	}
	return s.sheet.Active()
}

// Draw renders the slider.
func (s *VSlider) Draw(bounds core.Rectangle, cursor core.Point) []draw.Primitive {
	appearance := s.appearance(bounds, cursor)
	b := roundBounds(bounds)

	handleHeight := appearance.HandleWidth()
	vb := core.Rectangle{
		X:      b.X,
		Y:      round32(b.Y + handleHeight/2.0),
		Width:  b.Width,
		Height: b.Height - handleHeight,
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

func (s *VSlider) markers(markBounds, modBounds core.Rectangle) ([]draw.Primitive, []draw.Primitive, []draw.Primitive, []draw.Primitive) {
	var ticks, texts, mod1, mod2 []draw.Primitive
	if s.ticks != nil {
		if st, ok := s.sheet.TickMarks(); ok {
			ticks = draw.VTickMarks(markBounds, s.ticks, st.Style, st.Placement, false)
		}
	}
	if s.texts != nil {
		if st, ok := s.sheet.TextMarks(); ok {
			texts = draw.VTextMarks(markBounds, s.texts, st.Style, st.Placement, false)
		}
	}
	if st, ok := s.sheet.ModRange(); ok {
		mod1 = vSliderModRange(modBounds, s.modRange, st)
	}
	if st, ok := s.sheet.ModRange2(); ok {
		mod2 = vSliderModRange(modBounds, s.modRange2, st)
	}
	return ticks, texts, mod1, mod2
}

func (s *VSlider) drawClassic(b, vb core.Rectangle, st style.SliderClassic) []draw.Primitive {
	ticks, texts, mod1, mod2 := s.markers(vb, vb)
	leftRail, rightRail := vClassicRail(b, st.Rail)

	handleOffset := round32(s.Value().ScaleInv(vb.Height))

	prims := make([]draw.Primitive, 0, len(ticks)+len(texts)+len(mod1)+len(mod2)+4)
	prims = append(prims, ticks...)
	prims = append(prims, texts...)
	prims = append(prims, leftRail, rightRail)
	prims = append(prims, draw.Quad{
		Bounds: core.Rectangle{
			X:      b.X,
			Y:      b.Y + handleOffset,
			Width:  b.Width,
			Height: st.Handle.Width,
		},
		Background:   st.Handle.Color,
		BorderRadius: draw.CornerRadius(st.Handle.BorderRadius),
		BorderWidth:  st.Handle.BorderWidth,
		BorderColor:  st.Handle.BorderColor,
	})
	if st.Handle.NotchWidth != 0.0 {
		prims = append(prims, draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X,
				Y:      round32(b.Y + handleOffset + st.Handle.Width/2.0 - st.Handle.NotchWidth/2.0),
				Width:  b.Width,
				Height: st.Handle.NotchWidth,
			},
			Background: st.Handle.NotchColor,
		})
	}
	prims = append(prims, mod1...)
	prims = append(prims, mod2...)
	return prims
}

func (s *VSlider) drawRect(b, vb core.Rectangle, st style.SliderRect) []draw.Primitive {
	ticks, texts, mod1, mod2 := s.markers(vb, b)

	twiceBorder := st.BackBorderWidth * 2.0
	handleOffset := round32(s.Value().ScaleInv(vb.Height - twiceBorder))
	filledOffset := handleOffset + st.HandleWidth + st.HandleFilledGap

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
				Y:      b.Y + filledOffset,
				Width:  b.Width,
				Height: b.Height - filledOffset,
			},
			Background:   st.FilledColor,
			BorderRadius: draw.CornerRadius(st.BackBorderRadius),
			BorderWidth:  st.BackBorderWidth,
			BorderColor:  style.Transparent,
		},
		draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X,
				Y:      b.Y + handleOffset,
				Width:  b.Width,
				Height: st.HandleWidth + twiceBorder,
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

func (s *VSlider) drawRectBipolar(b, vb core.Rectangle, st style.SliderRectBipolar) []draw.Primitive {
	ticks, texts, mod1, mod2 := s.markers(vb, b)

	twiceBorder := st.BackBorderWidth * 2.0
	handleOffset := round32(s.Value().ScaleInv(vb.Height - twiceBorder))
	v := s.Value().Value()

	handleColor := st.HandleCenterColor
	var filled []draw.Primitive
	switch {
	case v > 0.499 && v < 0.501:
	case v > 0.5:
		handleColor = st.HandleHighColor
		filledOffset := handleOffset + st.HandleWidth + st.HandleFilledGap
		filled = append(filled, draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X,
				Y:      b.Y + filledOffset,
				Width:  b.Width,
				Height: round32(b.Height/2.0 - filledOffset + twiceBorder),
			},
			Background:   st.HighFilledColor,
			BorderRadius: draw.CornerRadius(st.BackBorderRadius),
			BorderWidth:  st.BackBorderWidth,
			BorderColor:  style.Transparent,
		})
	default:
		handleColor = st.HandleLowColor
		filledOffset := round32(b.Height/2.0) - st.BackBorderWidth
		filled = append(filled, draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X,
				Y:      b.Y + filledOffset,
				Width:  b.Width,
				Height: handleOffset - filledOffset + twiceBorder - st.HandleFilledGap,
			},
			Background:   st.LowFilledColor,
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
			X:      b.X,
			Y:      b.Y + handleOffset,
			Width:  b.Width,
			Height: st.HandleWidth + twiceBorder,
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

func (s *VSlider) drawTexture(b, vb core.Rectangle, st style.SliderTexture) []draw.Primitive {
	ticks, texts, mod1, mod2 := s.markers(vb, vb)
	leftRail, rightRail := vClassicRail(b, st.Rail)

	prims := make([]draw.Primitive, 0, len(ticks)+len(texts)+len(mod1)+len(mod2)+3)
	prims = append(prims, ticks...)
	prims = append(prims, texts...)
	prims = append(prims, leftRail, rightRail)
	prims = append(prims, draw.ImageQuad{
		Handle: st.Image,
		Bounds: core.Rectangle{
			X:      round32(b.Center().X + st.ImageBounds.X),
			Y:      round32(vb.Y + st.ImageBounds.Y + s.Value().ScaleInv(vb.Height)),
			Width:  st.ImageBounds.Width,
			Height: st.ImageBounds.Height,
		},
	})
	prims = append(prims, mod1...)
	prims = append(prims, mod2...)
	return prims
}

// vClassicRail draws the two rail stripes stacked across the slider
// center.
func vClassicRail(b core.Rectangle, rail style.ClassicRail) (draw.Primitive, draw.Primitive) {
	leftWidth, rightWidth := rail.Widths[0], rail.Widths[1]
	y := b.Y + rail.Padding
	height := b.Height - rail.Padding*2.0
	startX := round32(b.X + (b.Width-(leftWidth+rightWidth))/2.0)

	left := draw.Quad{
		Bounds:     core.Rectangle{X: startX, Y: y, Width: leftWidth, Height: height},
		Background: rail.Colors[0],
	}
	right := draw.Quad{
		Bounds:     core.Rectangle{X: startX + leftWidth, Y: y, Width: rightWidth, Height: height},
		Background: rail.Colors[1],
	}
	return left, right
}

// vSliderModRange draws one modulation range bar along a vertical
// axis. The larger normal maps to the smaller screen offset.
func vSliderModRange(bounds core.Rectangle, rng *core.ModulationRange, st style.SliderModRange) []draw.Primitive {
	if rng == nil {
		return nil
	}

	x, width := bounds.X, st.Placement.Thickness
	switch st.Placement.Kind {
	case style.ModRangeCenter:
		x = bounds.X + st.Placement.Offset + (bounds.Width-width)/2.0
	case style.ModRangeCenterFilled:
		x = bounds.X + st.Placement.EdgePadding
		width = bounds.Width - st.Placement.EdgePadding*2.0
	case style.ModRangeStart:
		x = bounds.X + st.Placement.Offset - width
	case style.ModRangeEnd:
		x = bounds.X + bounds.Width + st.Placement.Offset
	}

	prims := make([]draw.Primitive, 0, 2)
	if !st.BackColor.IsTransparent() {
		prims = append(prims, draw.Quad{
			Bounds:       core.Rectangle{X: x, Y: bounds.Y, Width: width, Height: bounds.Height},
			Background:   st.BackColor,
			BorderRadius: draw.CornerRadius(st.BackBorderRadius),
			BorderWidth:  st.BackBorderWidth,
			BorderColor:  st.BackBorderColor,
		})
	}
	if rng.FilledVisible && rng.Start != rng.End {
		top, bottom := rng.End.Inverse(), rng.Start.Inverse()
		color := st.FilledColor
		if top > bottom {
			top, bottom = bottom, top
			color = st.FilledInverseColor
		}
		startOffset := bounds.Height * top
		prims = append(prims, draw.Quad{
			Bounds: core.Rectangle{
				X:      x,
				Y:      bounds.Y + startOffset,
				Width:  width,
				Height: bounds.Height*bottom - startOffset,
			},
			Background:   color,
			BorderRadius: draw.CornerRadius(st.BackBorderRadius),
			BorderWidth:  st.BackBorderWidth,
			BorderColor:  style.Transparent,
		})
	}
	return prims
}
