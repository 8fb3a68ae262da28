package widget

import (
	"k8s.io/utils/clock"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/event"
	"github.com/justyntemme/audioui/pkg/marks"
	"github.com/justyntemme/audioui/pkg/style"
)

const defaultKnobSize float32 = 30.0

// Knob is a rotary control. Dragging vertically sweeps the value
// across a fixed 200 px travel; the rendered angle follows the style
// sheet's angle range.
type Knob struct {
	control

	sheet style.KnobStyleSheet
	size  float32

	ticks *marks.Group
	texts *marks.TextGroup

	modRange  *core.ModulationRange
	modRange2 *core.ModulationRange

	// bipolarCenter overrides the 0.5 split of an arc bipolar
	// appearance.
	bipolarCenter *core.Normal
}

// NewKnob builds a knob bound to param with the default style.
func NewKnob(param *core.NormalParam) *Knob {
	return &Knob{
		control: newControl(param),
		sheet:   style.DefaultKnob(),
		size:    defaultKnobSize,
	}
}

// Sheet sets the style sheet.
func (k *Knob) Sheet(sheet style.KnobStyleSheet) *Knob {
	k.sheet = sheet
	return k
}

// Size sets the knob diameter in pixels.
func (k *Knob) Size(size float32) *Knob {
	k.size = size
	return k
}

// TickMarks sets the tick marks ringing the knob.
func (k *Knob) TickMarks(group marks.Group) *Knob {
	k.ticks = &group
	return k
}

// TextMarks sets the text labels ringing the knob.
func (k *Knob) TextMarks(group marks.TextGroup) *Knob {
	k.texts = &group
	return k
}

// ModRange attaches the first modulation range overlay. The widget
// reads it at draw time, so the host may update it in place.
func (k *Knob) ModRange(rng *core.ModulationRange) *Knob {
	k.modRange = rng
	return k
}

// ModRange2 attaches the second modulation range overlay.
func (k *Knob) ModRange2(rng *core.ModulationRange) *Knob {
	k.modRange2 = rng
	return k
}

// BipolarCenter sets the value an arc bipolar appearance fills from
// instead of 0.5.
func (k *Knob) BipolarCenter(center core.Normal) *Knob {
	k.bipolarCenter = &center
	return k
}

// Snap applies a snapping function, usually an IntRange's
// SnappedNormal, to every visible value.
func (k *Knob) Snap(snap func(core.Normal) core.Normal) *Knob {
	k.snap = snap
	return k
}

// OnChange registers the callback fired once per visible value change.
func (k *Knob) OnChange(fn func(core.Normal)) *Knob {
	k.onChange = fn
	return k
}

// DisableWheel turns off scroll wheel input.
func (k *Knob) DisableWheel() *Knob {
	k.wheel = false
	return k
}

// DisableDoubleClick turns off the double-click reset to the default.
func (k *Knob) DisableDoubleClick() *Knob {
	k.doubleClick = false
	return k
}

// Clock substitutes the clock used for double-click timing.
func (k *Knob) Clock(c clock.PassiveClock) *Knob {
	k.state.clock = c
	return k
}

// PreferredSize returns the advertised size. Zero means fill.
func (k *Knob) PreferredSize() core.Size {
	return core.Size{Width: k.size, Height: k.size}
}

// OnEvent ingests one host event. A knob whose angle range collapsed
// tracks hover but never changes its value.
func (k *Knob) OnEvent(bounds core.Rectangle, cursor core.Point, ev event.Event) (event.Status, bool) {
	if k.sheet.AngleRange().Span() <= 0.0 {
		switch ev.Type() {
		case event.TypePointerMoved:
			k.state.hovered = bounds.Contains(cursor)
		case event.TypePointerLeft:
			k.state.hovered = false
		}
		return event.Ignored, false
	}
	return k.handle(bounds, cursor, ev, dragByY(knobDragLength), nil)
}

func (k *Knob) appearance(bounds core.Rectangle, cursor core.Point) style.KnobAppearance {
	if k.state.dragging {
		return k.sheet.Dragging()
	}
	if bounds.Contains(cursor) {
		return k.sheet.Hovered()
	}
	return k.sheet.Active()
}

// arcSide is the half an arc bipolar knob's value sits in.
type arcSide uint8

const (
	sideCenter arcSide = iota
	sideLeft
	sideRight
)

func (k *Knob) side() arcSide {
	v := k.Value().Value()
	if k.bipolarCenter != nil {
		c := k.bipolarCenter.Value()
		switch {
		case v < c:
			return sideLeft
		case v > c:
			return sideRight
		}
		return sideCenter
	}
	switch {
	case v < 0.499:
		return sideLeft
	case v > 0.501:
		return sideRight
	}
	return sideCenter
}

// Draw renders the knob for the given bounds, which are squared to the
// shorter side before any geometry is derived.
func (k *Knob) Draw(bounds core.Rectangle, cursor core.Point) []draw.Primitive {
	appearance := k.appearance(bounds, cursor)

	b := squareBounds(bounds)
	radius := b.Width / 2.0
	center := b.Center()

	angleRange := k.sheet.AngleRange()
	startAngle := angleRange.Min() + core.HalfPi
	if angleRange.Min() >= core.ThreeHalvesPi {
		startAngle = angleRange.Min() - core.ThreeHalvesPi
	}
	angleSpan := angleRange.Span()
	valueAngle := startAngle + k.Value().Scale(angleSpan)

	prims := make([]draw.Primitive, 0, 16)
	if k.ticks != nil {
		if st, ok := k.sheet.TickMarks(); ok {
			prims = append(prims, draw.RadialTickMarks(
				center, radius+st.Offset, startAngle+core.HalfPi, angleSpan,
				false, k.ticks, st.Style, false,
			)...)
		}
	}
	if k.texts != nil {
		if st, ok := k.sheet.TextMarks(); ok {
			anchor := core.Point{X: center.X, Y: center.Y + st.VOffset}
			prims = append(prims, draw.RadialTextMarks(
				anchor, radius+st.Offset, startAngle, angleSpan,
				k.texts, st.Style, st.HCharOffset, false,
			)...)
		}
	}

	valueArc := k.valueArc(center, radius, startAngle, angleSpan, valueAngle)
	modStyle1, modOK1 := k.sheet.ModRangeArc()
	mod1 := modRangeArc(center, radius, startAngle, angleSpan, k.modRange, modStyle1, modOK1)
	modStyle2, modOK2 := k.sheet.ModRangeArc2()
	mod2 := modRangeArc(center, radius, startAngle, angleSpan, k.modRange2, modStyle2, modOK2)

	switch appearance.Kind {
	case style.KnobStyleArc:
		a := appearance.Arc
		width := a.Width.Of(b.Width)
		arcRadius := radius - width/2.0
		prims = append(prims,
			draw.ArcStroke{
				Center: center, Radius: arcRadius,
				StartAngle: startAngle, Sweep: angleSpan,
				Width: width, Cap: a.Cap, Color: a.EmptyColor,
			},
			draw.ArcStroke{
				Center: center, Radius: arcRadius,
				StartAngle: startAngle, Sweep: valueAngle - startAngle,
				Width: width, Cap: a.Cap, Color: a.FilledColor,
			},
		)
		if notch, ok := knobNotch(b, radius, valueAngle, a.Notch); ok {
			prims = append(prims, notch)
		}
		prims = append(prims, valueArc...)
		prims = append(prims, mod1...)
		prims = append(prims, mod2...)

	case style.KnobStyleArcBipolar:
		a := appearance.ArcBipolar
		width := a.Width.Of(b.Width)
		arcRadius := radius - width/2.0
		prims = append(prims, draw.ArcStroke{
			Center: center, Radius: arcRadius,
			StartAngle: startAngle, Sweep: angleSpan,
			Width: width, Cap: a.Cap, Color: a.EmptyColor,
		})

		side := k.side()
		centerNormal := core.NormalCenter()
		if k.bipolarCenter != nil {
			centerNormal = *k.bipolarCenter
		}
		centerAngle := startAngle + centerNormal.Scale(angleSpan)
		switch side {
		case sideLeft:
			prims = append(prims, draw.ArcStroke{
				Center: center, Radius: arcRadius,
				StartAngle: valueAngle, Sweep: centerAngle - valueAngle,
				Width: width, Cap: a.Cap, Color: a.LeftFilledColor,
			})
		case sideRight:
			prims = append(prims, draw.ArcStroke{
				Center: center, Radius: arcRadius,
				StartAngle: centerAngle, Sweep: valueAngle - centerAngle,
				Width: width, Cap: a.Cap, Color: a.RightFilledColor,
			})
		}

		notchShape := a.NotchCenter
		if a.HasSideNotches {
			switch side {
			case sideLeft:
				notchShape = a.NotchLeft
			case sideRight:
				notchShape = a.NotchRight
			}
		}
		if notch, ok := knobNotch(b, radius, valueAngle, notchShape); ok {
			prims = append(prims, notch)
		}
		prims = append(prims, valueArc...)
		prims = append(prims, mod1...)
		prims = append(prims, mod2...)

	default:
		c := appearance.Circle
		prims = append(prims, valueArc...)
		prims = append(prims, mod1...)
		prims = append(prims, mod2...)
		prims = append(prims, draw.Quad{
			Bounds:       b,
			Background:   c.Color,
			BorderRadius: draw.CornerRadius(radius),
			BorderWidth:  c.BorderWidth,
			BorderColor:  c.BorderColor,
		})
		if notch, ok := knobNotch(b, radius, valueAngle, c.Notch); ok {
			prims = append(prims, notch)
		}
	}
	return prims
}

func (k *Knob) valueArc(center core.Point, radius, startAngle, angleSpan, valueAngle float32) []draw.Primitive {
	st, ok := k.sheet.ValueArc()
	if !ok {
		return nil
	}
	arcRadius := radius + st.Offset + st.Width/2.0
	prims := make([]draw.Primitive, 0, 2)
	if !st.EmptyColor.IsTransparent() {
		prims = append(prims, draw.ArcStroke{
			Center: center, Radius: arcRadius,
			StartAngle: startAngle, Sweep: angleSpan,
			Width: st.Width, Cap: st.Cap, Color: st.EmptyColor,
		})
	}
	v := k.Value().Value()
	switch {
	case st.Bipolar:
		if v < 0.499 || v > 0.501 {
			halfAngle := startAngle + angleSpan/2.0
			if v < 0.5 {
				prims = append(prims, draw.ArcStroke{
					Center: center, Radius: arcRadius,
					StartAngle: valueAngle, Sweep: halfAngle - valueAngle,
					Width: st.Width, Cap: st.Cap, Color: st.FilledColor,
				})
			} else {
				prims = append(prims, draw.ArcStroke{
					Center: center, Radius: arcRadius,
					StartAngle: halfAngle, Sweep: valueAngle - halfAngle,
					Width: st.Width, Cap: st.Cap, Color: st.RightFilledColor,
				})
			}
		}
	case k.Value() != core.NormalMin():
		prims = append(prims, draw.ArcStroke{
			Center: center, Radius: arcRadius,
			StartAngle: startAngle, Sweep: valueAngle - startAngle,
			Width: st.Width, Cap: st.Cap, Color: st.FilledColor,
		})
	}
	return prims
}

func modRangeArc(center core.Point, radius, startAngle, angleSpan float32, rng *core.ModulationRange, st style.ModRangeArc, styled bool) []draw.Primitive {
	if rng == nil || !styled {
		return nil
	}
	arcRadius := radius + st.Offset + st.Width/2.0
	prims := make([]draw.Primitive, 0, 2)
	if !st.EmptyColor.IsTransparent() {
		prims = append(prims, draw.ArcStroke{
			Center: center, Radius: arcRadius,
			StartAngle: startAngle, Sweep: angleSpan,
			Width: st.Width, Cap: st.Cap, Color: st.EmptyColor,
		})
	}
	if rng.FilledVisible && rng.Start != rng.End {
		lo, hi := rng.Start.Value(), rng.End.Value()
		color := st.FilledColor
		if lo > hi {
			lo, hi = hi, lo
			color = st.FilledInverseColor
		}
		prims = append(prims, draw.ArcStroke{
			Center: center, Radius: arcRadius,
			StartAngle: startAngle + angleSpan*lo, Sweep: angleSpan * (hi - lo),
			Width: st.Width, Cap: st.Cap, Color: color,
		})
	}
	return prims
}

func knobNotch(b core.Rectangle, radius, valueAngle float32, notch style.NotchShape) (draw.Primitive, bool) {
	switch notch.Kind {
	case style.NotchCircle:
		return circleNotch(b, radius, valueAngle, notch.Circle), true
	case style.NotchLine:
		return lineNotch(b, radius, valueAngle, notch.Line), true
	}
	return nil, false
}

func circleNotch(b core.Rectangle, radius, valueAngle float32, st style.CircleNotch) draw.Primitive {
	angle := valueAngle + core.HalfPi

	dx, dy := float32(0.0), float32(-1.0)
	if angle < -0.001 || angle > 0.001 {
		dx, dy = sin32(angle), cos32(angle)
	}

	diameter := st.Diameter.Of(b.Width)
	r := diameter / 2.0
	offsetRadius := radius - st.Offset.Of(b.Width)
	center := b.Center()

	return draw.Quad{
		Bounds: core.Rectangle{
			X:      center.X + dx*offsetRadius - r,
			Y:      center.Y - dy*offsetRadius - r,
			Width:  diameter,
			Height: diameter,
		},
		Background:   st.Color,
		BorderRadius: draw.CornerRadius(r),
		BorderWidth:  st.BorderWidth,
		BorderColor:  st.BorderColor,
	}
}

func lineNotch(b core.Rectangle, radius, valueAngle float32, st style.LineNotch) draw.Primitive {
	angle := valueAngle + core.HalfPi

	length := st.Length.Of(b.Width)
	offsetRadius := radius - st.Offset.Of(b.Width)
	center := b.Center()

	from := core.Point{X: center.X, Y: center.Y - offsetRadius}
	to := core.Point{X: center.X, Y: center.Y - (offsetRadius - length)}
	if angle < -0.001 || angle > 0.001 {
		sa, ca := sin32(angle), cos32(angle)
		from = core.Point{X: center.X + offsetRadius*sa, Y: center.Y - offsetRadius*ca}
		to = core.Point{X: center.X + (offsetRadius-length)*sa, Y: center.Y - (offsetRadius-length)*ca}
	}

	return draw.Line{
		From:  from,
		To:    to,
		Width: st.Width.Of(b.Width),
		Cap:   st.Cap,
		Color: st.Color,
	}
}
