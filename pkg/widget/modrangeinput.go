package widget

import (
	"k8s.io/utils/clock"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/event"
	"github.com/justyntemme/audioui/pkg/style"
)

const defaultModRangeInputSize float32 = 10.0

// ModRangeInput is the small dot that edits one end of a modulation
// range. It drags at half the usual rate so range edges can be placed
// precisely, and it is often layered invisibly over the widget owning
// the range.
type ModRangeInput struct {
	control

	sheet style.ModRangeInputStyleSheet
	size  float32
}

// NewModRangeInput builds a dot bound to param with the default style.
func NewModRangeInput(param *core.NormalParam) *ModRangeInput {
	return &ModRangeInput{
		control: newControl(param),
		sheet:   style.DefaultModRangeInput(),
		size:    defaultModRangeInputSize,
	}
}

// Sheet sets the style sheet.
func (m *ModRangeInput) Sheet(sheet style.ModRangeInputStyleSheet) *ModRangeInput {
	m.sheet = sheet
	return m
}

// Size sets the dot diameter in pixels.
func (m *ModRangeInput) Size(size float32) *ModRangeInput {
	m.size = size
	return m
}

// Snap applies a snapping function to every visible value.
func (m *ModRangeInput) Snap(snap func(core.Normal) core.Normal) *ModRangeInput {
	m.snap = snap
	return m
}

// OnChange registers the callback fired once per visible value change.
func (m *ModRangeInput) OnChange(fn func(core.Normal)) *ModRangeInput {
	m.onChange = fn
	return m
}

// DisableWheel turns off scroll wheel input.
func (m *ModRangeInput) DisableWheel() *ModRangeInput {
	m.wheel = false
	return m
}

// DisableDoubleClick turns off the double-click reset to the default.
func (m *ModRangeInput) DisableDoubleClick() *ModRangeInput {
	m.doubleClick = false
	return m
}

// Clock substitutes the clock used for double-click timing.
func (m *ModRangeInput) Clock(c clock.PassiveClock) *ModRangeInput {
	m.state.clock = c
	return m
}

// PreferredSize returns the advertised size.
func (m *ModRangeInput) PreferredSize() core.Size {
	return core.Size{Width: m.size, Height: m.size}
}

// OnEvent ingests one host event.
func (m *ModRangeInput) OnEvent(bounds core.Rectangle, cursor core.Point, ev event.Event) (event.Status, bool) {
	return m.handle(bounds, cursor, ev, dragByY(modRangeDragLength), nil)
}

func (m *ModRangeInput) appearance(bounds core.Rectangle, cursor core.Point) style.ModRangeInputAppearance {
	if m.state.dragging {
		return m.sheet.Dragging()
	}
	if bounds.Contains(cursor) {
		return m.sheet.Hovered()
	}
	return m.sheet.Active()
}

// Draw renders the dot.
func (m *ModRangeInput) Draw(bounds core.Rectangle, cursor core.Point) []draw.Primitive {
	appearance := m.appearance(bounds, cursor)
	if appearance.Kind == style.ModRangeInputInvisible {
		return nil
	}

	size := floor32(bounds.Width)
	quad := draw.Quad{
		Bounds: core.Rectangle{
			X:      floor32(bounds.X),
			Y:      floor32(bounds.Y),
			Width:  size,
			Height: size,
		},
		Background:  appearance.Color,
		BorderWidth: appearance.BorderWidth,
		BorderColor: appearance.BorderColor,
	}
	if appearance.Kind == style.ModRangeInputSquare {
		quad.BorderRadius = draw.CornerRadius(appearance.BorderRadius)
	} else {
		quad.BorderRadius = draw.CornerRadius(size / 2.0)
	}
	return []draw.Primitive{quad}
}
