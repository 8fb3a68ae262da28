package widget

import (
	"time"

	"k8s.io/utils/clock"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/event"
)

// Reference drag lengths. Widgets without a usable travel axis map a
// full sweep onto a fixed pixel distance instead of their own size.
const (
	knobDragLength     float32 = 200.0
	modRangeDragLength float32 = 400.0
)

// Wheel steps per scrolled line.
const (
	scrollStep     float32 = 1.0 / 256.0
	scrollFineStep float32 = 1.0 / 2048.0
)

// fineDivisor slows pointer drags while the fine-adjust modifier is
// held.
const fineDivisor float32 = 4.0

// Double-click window and jitter radius.
const (
	doubleClickWindow         = 500 * time.Millisecond
	doubleClickRadius float32 = 4.0
)

// tracker is the pointer state every interactive widget carries:
// capture, hover, the fine-adjust modifier, double-click detection and
// the continuous value drags accumulate into.
type tracker struct {
	clock clock.PassiveClock

	dragging bool
	hovered  bool
	fine     bool

	// prev is the pointer position the next drag delta is measured
	// from.
	prev core.Point

	// continuous accumulates drag and wheel movement unsnapped. While
	// dragging it is also unclamped, so travel past an end is dead and
	// gets replayed before the value moves back.
	continuous float32

	lastClickAt  time.Time
	lastClickPos core.Point
	clicked      bool
}

func newTracker() tracker {
	return tracker{clock: clock.RealClock{}}
}

// repeatClick reports whether a press at cursor falls within the
// double-click window and radius of the previous press. The press is
// recorded either way, so a triple click resets twice.
func (t *tracker) repeatClick(cursor core.Point) bool {
	now := t.clock.Now()
	repeat := t.clicked &&
		now.Sub(t.lastClickAt) <= doubleClickWindow &&
		distance(t.lastClickPos, cursor) <= doubleClickRadius
	t.clicked = true
	t.lastClickAt = now
	t.lastClickPos = cursor
	return repeat
}

// beginDrag captures the pointer and seeds the continuous value from
// the visible one.
func (t *tracker) beginDrag(cursor core.Point, visible core.Normal) {
	t.dragging = true
	t.prev = cursor
	t.continuous = visible.Value()
}

// endDrag releases capture and re-syncs the continuous value to the
// visible one.
func (t *tracker) endDrag(visible core.Normal) {
	t.dragging = false
	t.continuous = visible.Value()
}

// dragTo folds one pointer move into the continuous value and returns
// the clamped result. The accumulator itself stays unclamped until
// endDrag. next becomes the reference point for the following move.
func (t *tracker) dragTo(next core.Point, delta float32) core.Normal {
	if t.fine {
		delta /= fineDivisor
	}
	t.continuous += delta
	t.prev = next
	return core.NewNormal(t.continuous)
}

// scrollBy steps the continuous value by the scrolled lines.
func (t *tracker) scrollBy(lines float32) core.Normal {
	step := scrollStep
	if t.fine {
		step = scrollFineStep
	}
	n := core.NewNormal(t.continuous + lines*step)
	t.continuous = n.Value()
	return n
}

// dragFunc converts one pointer move into a value delta along the
// widget's drag axis. next is stored as the reference point for the
// following move; ok is false when the widget has no usable axis.
type dragFunc func(prev, cursor core.Point) (delta float32, next core.Point, ok bool)

// jumpFunc maps a press position straight onto a value for the
// jump-to-cursor widgets. Widgets that grab from the current value
// pass nil.
type jumpFunc func(cursor core.Point) (core.Normal, bool)

// dragByY sweeps the full value range across a fixed vertical travel,
// upward drags increasing the value.
func dragByY(length float32) dragFunc {
	return func(prev, cursor core.Point) (float32, core.Point, bool) {
		return (prev.Y - cursor.Y) / length, cursor, true
	}
}

// control binds a widget to its parameter: optional snapping, the
// change callback, the wheel and double-click switches and the shared
// pointer state machine.
type control struct {
	param    *core.NormalParam
	snap     func(core.Normal) core.Normal
	onChange func(core.Normal)

	wheel       bool
	doubleClick bool

	state tracker
}

func newControl(param *core.NormalParam) control {
	c := control{
		param:       param,
		wheel:       true,
		doubleClick: true,
		state:       newTracker(),
	}
	c.state.continuous = param.Value.Value()
	return c
}

// Value returns the parameter's current value.
func (c *control) Value() core.Normal {
	return c.param.Value
}

// SetValue writes a value from the host side without firing the
// change callback.
func (c *control) SetValue(n core.Normal) {
	if c.snap != nil {
		n = c.snap(n)
	}
	c.param.Update(n)
	if !c.state.dragging {
		c.state.continuous = n.Value()
	}
}

// Dragging reports whether the widget holds pointer capture.
func (c *control) Dragging() bool {
	return c.state.dragging
}

// Hovered reports whether the pointer was inside the bounds at the
// last pointer event.
func (c *control) Hovered() bool {
	return c.state.hovered
}

// setVisible snaps a candidate value, writes it through and fires the
// change callback. It reports whether the visible value changed.
func (c *control) setVisible(n core.Normal) bool {
	if c.snap != nil {
		n = c.snap(n)
	}
	if n == c.param.Value {
		return false
	}
	c.param.Update(n)
	if c.onChange != nil {
		c.onChange(n)
	}
	return true
}

// handle runs the shared state machine, reporting the event status and
// whether the visible value changed.
func (c *control) handle(bounds core.Rectangle, cursor core.Point, ev event.Event, drag dragFunc, jump jumpFunc) (event.Status, bool) {
	switch e := ev.(type) {
	case event.PointerMoved:
		c.state.hovered = bounds.Contains(cursor)
		if !c.state.dragging {
			return event.Ignored, false
		}
		delta, next, ok := drag(c.state.prev, cursor)
		if !ok {
			return event.Ignored, false
		}
		return event.Captured, c.setVisible(c.state.dragTo(next, delta))

	case event.PointerPressed:
		if !bounds.Contains(cursor) {
			return event.Ignored, false
		}
		if c.state.repeatClick(cursor) && c.doubleClick {
			changed := c.setVisible(c.param.Default)
			c.state.endDrag(c.param.Value)
			return event.Captured, changed
		}
		c.state.beginDrag(cursor, c.param.Value)
		if jump != nil {
			if target, ok := jump(cursor); ok {
				c.state.continuous = target.Value()
				return event.Captured, c.setVisible(target)
			}
		}
		return event.Captured, false

	case event.PointerReleased:
		if !c.state.dragging {
			return event.Ignored, false
		}
		c.state.endDrag(c.param.Value)
		return event.Captured, false

	case event.PointerLeft:
		c.state.hovered = false
		return event.Ignored, false

	case event.ScrollLine:
		return c.scroll(bounds, cursor, e.DeltaY)

	case event.ScrollPixel:
		return c.scroll(bounds, cursor, signOf(e.DeltaY))

	case event.KeyPressed:
		if !e.Fine {
			return event.Ignored, false
		}
		c.state.fine = true
		return event.Captured, false

	case event.KeyReleased:
		if !e.Fine {
			return event.Ignored, false
		}
		c.state.fine = false
		return event.Captured, false
	}
	return event.Ignored, false
}

func (c *control) scroll(bounds core.Rectangle, cursor core.Point, lines float32) (event.Status, bool) {
	if !c.wheel || lines == 0.0 || !bounds.Contains(cursor) {
		return event.Ignored, false
	}
	return event.Captured, c.setVisible(c.state.scrollBy(lines))
}
