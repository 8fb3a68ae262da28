package widget

import (
	"k8s.io/utils/clock"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/event"
	"github.com/justyntemme/audioui/pkg/style"
)

// RampDirection orients the curve. RampUp rises from left to right,
// RampDown falls.
type RampDirection uint8

const (
	RampUp RampDirection = iota
	RampDown
)

const (
	defaultRampWidth  float32 = 40.0
	defaultRampHeight float32 = 20.0

	// rampSegments is the polyline resolution of the curved states.
	rampSegments = 16
)

// Ramp edits a curvature parameter and draws it as an envelope
// segment. Below center the curve bows toward the floor, above center
// toward the ceiling, and the middle is a straight line.
type Ramp struct {
	control

	sheet     style.RampStyleSheet
	direction RampDirection
	width     float32
	height    float32
}

// NewRamp builds a rising ramp bound to param with the default style.
func NewRamp(param *core.NormalParam) *Ramp {
	return &Ramp{
		control: newControl(param),
		sheet:   style.DefaultRamp(),
		width:   defaultRampWidth,
		height:  defaultRampHeight,
	}
}

// Sheet sets the style sheet.
func (r *Ramp) Sheet(sheet style.RampStyleSheet) *Ramp {
	r.sheet = sheet
	return r
}

// Direction sets the curve orientation.
func (r *Ramp) Direction(direction RampDirection) *Ramp {
	r.direction = direction
	return r
}

// Size sets the widget size in pixels.
func (r *Ramp) Size(width, height float32) *Ramp {
	r.width = width
	r.height = height
	return r
}

// Snap applies a snapping function to every visible value.
func (r *Ramp) Snap(snap func(core.Normal) core.Normal) *Ramp {
	r.snap = snap
	return r
}

// OnChange registers the callback fired once per visible value change.
func (r *Ramp) OnChange(fn func(core.Normal)) *Ramp {
	r.onChange = fn
	return r
}

// DisableWheel turns off scroll wheel input.
func (r *Ramp) DisableWheel() *Ramp {
	r.wheel = false
	return r
}

// DisableDoubleClick turns off the double-click reset to the default.
func (r *Ramp) DisableDoubleClick() *Ramp {
	r.doubleClick = false
	return r
}

// Clock substitutes the clock used for double-click timing.
func (r *Ramp) Clock(c clock.PassiveClock) *Ramp {
	r.state.clock = c
	return r
}

// PreferredSize returns the advertised size.
func (r *Ramp) PreferredSize() core.Size {
	return core.Size{Width: r.width, Height: r.height}
}

// OnEvent ingests one host event. The ramp has no travel axis of its
// own, so vertical drags map a full sweep onto the reference length.
func (r *Ramp) OnEvent(bounds core.Rectangle, cursor core.Point, ev event.Event) (event.Status, bool) {
	return r.handle(bounds, cursor, ev, dragByY(knobDragLength), nil)
}

func (r *Ramp) appearance(bounds core.Rectangle, cursor core.Point) style.RampAppearance {
	if r.state.dragging {
		return r.sheet.Dragging()
	}
	if bounds.Contains(cursor) {
		return r.sheet.Hovered()
	}
	return r.sheet.Active()
}

// Draw renders the ramp. Curve coordinates are relative to the
// bottom-left corner inside the border, with y growing upward.
func (r *Ramp) Draw(bounds core.Rectangle, cursor core.Point) []draw.Primitive {
	appearance := r.appearance(bounds, cursor)
	b := floorBounds(bounds)

	prims := make([]draw.Primitive, 0, rampSegments+1)
	prims = append(prims, draw.Quad{
		Bounds:      b,
		Background:  appearance.BackColor,
		BorderWidth: appearance.BackBorderWidth,
		BorderColor: appearance.BackBorderColor,
	})

	borderWidth := appearance.BackBorderWidth
	width := b.Width - borderWidth*2.0
	height := b.Height - borderWidth*2.0
	origin := core.Point{X: b.X + borderWidth, Y: b.Y + b.Height - borderWidth}

	v := r.Value().Value()
	var from, control, to core.Point
	var color style.Color
	curved := true
	if r.direction == RampDown {
		switch {
		case v < 0.449:
			from = core.Point{X: 0.0, Y: -height}
			control = core.Point{X: width * (2.0 * v), Y: 0.0}
			to = core.Point{X: width, Y: 0.0}
			color = appearance.LineDownColor
		case v > 0.501:
			from = core.Point{X: width, Y: 0.0}
			control = core.Point{X: width * (2.0 * (v - 0.5)), Y: -height}
			to = core.Point{X: 0.0, Y: -height}
			color = appearance.LineUpColor
		default:
			from = core.Point{X: 0.0, Y: -height}
			to = core.Point{X: width, Y: 0.0}
			color = appearance.LineCenterColor
			curved = false
		}
	} else {
		switch {
		case v < 0.449:
			control = core.Point{X: width * (1.0 - 2.0*v), Y: 0.0}
			to = core.Point{X: width, Y: -height}
			color = appearance.LineDownColor
		case v > 0.501:
			from = core.Point{X: width, Y: -height}
			control = core.Point{X: width * (1.0 - 2.0*(v-0.5)), Y: -height}
			color = appearance.LineUpColor
		default:
			to = core.Point{X: width, Y: -height}
			color = appearance.LineCenterColor
			curved = false
		}
	}

	if !curved {
		return append(prims, draw.Line{
			From:  core.Point{X: origin.X + from.X, Y: origin.Y + from.Y},
			To:    core.Point{X: origin.X + to.X, Y: origin.Y + to.Y},
			Width: appearance.LineWidth,
			Cap:   style.CapSquare,
			Color: color,
		})
	}
	return append(prims, rampCurve(origin, from, control, to, appearance.LineWidth, color)...)
}

// rampCurve flattens one quadratic bezier into a fixed polyline.
func rampCurve(origin, from, control, to core.Point, width float32, color style.Color) []draw.Primitive {
	at := func(t float32) core.Point {
		u := 1.0 - t
		return core.Point{
			X: origin.X + u*u*from.X + 2.0*u*t*control.X + t*t*to.X,
			Y: origin.Y + u*u*from.Y + 2.0*u*t*control.Y + t*t*to.Y,
		}
	}

	segments := make([]draw.Primitive, 0, rampSegments)
	prev := at(0.0)
	for i := 1; i <= rampSegments; i++ {
		next := at(float32(i) / rampSegments)
		segments = append(segments, draw.Line{
			From:  prev,
			To:    next,
			Width: width,
			Cap:   style.CapSquare,
			Color: color,
		})
		prev = next
	}
	return segments
}
