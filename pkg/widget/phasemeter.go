package widget

import (
	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/marks"
	"github.com/justyntemme/audioui/pkg/style"
)

const (
	defaultPhaseMeterThickness float32 = 8.0

	// Tier widths of the phase scale. Poor spans the lower half
	// below center, good the upper stretch near full correlation.
	defaultPhasePoor float32 = 0.55
	defaultPhaseGood float32 = 0.45
)

type phaseTier uint8

const (
	phaseBad phaseTier = iota
	phasePoor
	phaseOkay
	phaseGood
)

// PhaseMeter displays a stereo correlation value centered at 0.5. The
// bar extends from the center line toward the value and is split at
// the tier boundaries. It is passive; the host pushes values through
// SetValue.
type PhaseMeter struct {
	sheet       style.PhaseMeterStyleSheet
	orientation Orientation
	thickness   float32

	value core.Normal
	poor  float32
	good  float32

	ticks *marks.Group
	texts *marks.TextGroup
}

// NewPhaseMeter builds a horizontal phase meter with the default
// style.
func NewPhaseMeter() *PhaseMeter {
	return &PhaseMeter{
		sheet:       style.DefaultPhaseMeter(),
		orientation: Horizontal,
		thickness:   defaultPhaseMeterThickness,
		value:       core.NormalCenter(),
		poor:        defaultPhasePoor,
		good:        defaultPhaseGood,
	}
}

// Sheet sets the style sheet.
func (m *PhaseMeter) Sheet(sheet style.PhaseMeterStyleSheet) *PhaseMeter {
	m.sheet = sheet
	return m
}

// Orientation sets the bar direction.
func (m *PhaseMeter) Orientation(orientation Orientation) *PhaseMeter {
	m.orientation = orientation
	return m
}

// Thickness sets the cross-axis size in pixels.
func (m *PhaseMeter) Thickness(thickness float32) *PhaseMeter {
	m.thickness = thickness
	return m
}

// Thresholds overrides the tier widths. poor is the span of the bad
// and poor tiers together below center, good the width of the good
// tier under full correlation.
func (m *PhaseMeter) Thresholds(poor, good float32) *PhaseMeter {
	m.poor = poor
	m.good = good
	return m
}

// TickMarks sets the tick marks along the meter.
func (m *PhaseMeter) TickMarks(group marks.Group) *PhaseMeter {
	m.ticks = &group
	return m
}

// TextMarks sets the text labels along the meter.
func (m *PhaseMeter) TextMarks(group marks.TextGroup) *PhaseMeter {
	m.texts = &group
	return m
}

// SetValue updates the displayed correlation.
func (m *PhaseMeter) SetValue(n core.Normal) {
	m.value = n
}

// Value returns the displayed correlation.
func (m *PhaseMeter) Value() core.Normal {
	return m.value
}

// PreferredSize returns the advertised size. The travel axis fills.
func (m *PhaseMeter) PreferredSize() core.Size {
	if m.orientation == Horizontal {
		return core.Size{Width: 0.0, Height: m.thickness}
	}
	return core.Size{Width: m.thickness, Height: 0.0}
}

func (m *PhaseMeter) tier(v float32) phaseTier {
	switch {
	case v >= 0.5+m.good/2.0:
		return phaseGood
	case v >= 0.5:
		return phaseOkay
	case v >= m.poor/2.0:
		return phasePoor
	default:
		return phaseBad
	}
}

func (m *PhaseMeter) marks(markBounds core.Rectangle) []draw.Primitive {
	var prims []draw.Primitive
	if m.ticks != nil {
		if st, ok := m.sheet.TickMarks(); ok {
			if m.orientation == Horizontal {
				prims = append(prims, draw.HBarTickMarks(markBounds, m.ticks, st, false)...)
			} else {
				prims = append(prims, draw.VBarTickMarks(markBounds, m.ticks, st, false)...)
			}
		}
	}
	if m.texts != nil {
		if st, ok := m.sheet.TextMarks(); ok {
			if m.orientation == Horizontal {
				prims = append(prims, draw.HBarTextMarks(markBounds, m.texts, st, false)...)
			} else {
				prims = append(prims, draw.VBarTextMarks(markBounds, m.texts, st, false)...)
			}
		}
	}
	return prims
}

// Draw renders the meter.
func (m *PhaseMeter) Draw(bounds core.Rectangle) []draw.Primitive {
	appearance := m.sheet.Appearance()
	b := floorBounds(bounds)
	if m.orientation == Horizontal {
		return m.drawHorizontal(b, appearance)
	}
	return m.drawVertical(b, appearance)
}

func (m *PhaseMeter) drawHorizontal(b core.Rectangle, appearance style.PhaseMeterAppearance) []draw.Primitive {
	borderWidth := appearance.BackBorderWidth
	barX := b.X + borderWidth
	barY := b.Y + borderWidth
	barWidth := b.Width - borderWidth*2.0
	barHeight := b.Height - borderWidth*2.0
	center := floor32(b.Width / 2.0)

	prims := m.marks(core.Rectangle{X: barX, Y: b.Y, Width: barWidth, Height: b.Height})
	prims = append(prims, draw.Quad{
		Bounds:      b,
		Background:  appearance.BackColor,
		BorderWidth: appearance.BackBorderWidth,
		BorderColor: appearance.BackBorderColor,
	})

	centerLine := draw.Quad{
		Bounds: core.Rectangle{
			X:      floor32(b.X + center - appearance.CenterLineWidth/2.0),
			Y:      barY,
			Width:  appearance.CenterLineWidth,
			Height: barHeight,
		},
		Background: appearance.CenterLineColor,
	}

	v := m.value.Value()
	if v > 0.499 && v < 0.501 {
		return append(prims, centerLine)
	}

	span := b.Width - borderWidth*2.0
	normalOffset := floor32(v*span + borderWidth)

	segment := func(from, to float32, color style.Color) draw.Quad {
		return draw.Quad{
			Bounds:     core.Rectangle{X: b.X + from, Y: barY, Width: to - from, Height: barHeight},
			Background: color,
		}
	}

	switch m.tier(v) {
	case phaseBad:
		poorOffset := floor32(span*(m.poor/2.0) + borderWidth)
		prims = append(prims,
			segment(normalOffset, poorOffset, appearance.BadColor),
			segment(poorOffset, center, appearance.PoorColor),
		)
	case phasePoor:
		prims = append(prims, segment(normalOffset, center, appearance.PoorColor))
	case phaseOkay:
		prims = append(prims, segment(center, normalOffset, appearance.OkayColor))
	case phaseGood:
		goodOffset := floor32(span*(0.5+m.good/2.0) + borderWidth)
		prims = append(prims,
			segment(center, goodOffset, appearance.OkayColor),
			segment(goodOffset, normalOffset, appearance.GoodColor),
		)
	}
	return append(prims, centerLine)
}

func (m *PhaseMeter) drawVertical(b core.Rectangle, appearance style.PhaseMeterAppearance) []draw.Primitive {
	borderWidth := appearance.BackBorderWidth
	barX := b.X + borderWidth
	barY := b.Y + borderWidth
	barWidth := b.Width - borderWidth*2.0
	barHeight := b.Height - borderWidth*2.0
	center := floor32(b.Height / 2.0)

	prims := m.marks(core.Rectangle{X: b.X, Y: barY, Width: b.Width, Height: barHeight})
	prims = append(prims, draw.Quad{
		Bounds:      b,
		Background:  appearance.BackColor,
		BorderWidth: appearance.BackBorderWidth,
		BorderColor: appearance.BackBorderColor,
	})

	centerLine := draw.Quad{
		Bounds: core.Rectangle{
			X:      barX,
			Y:      floor32(b.Y + center - appearance.CenterLineWidth/2.0),
			Width:  barWidth,
			Height: appearance.CenterLineWidth,
		},
		Background: appearance.CenterLineColor,
	}

	v := m.value.Value()
	if v > 0.499 && v < 0.501 {
		return append(prims, centerLine)
	}

	span := b.Height - borderWidth*2.0
	normalOffset := floor32((1.0-v)*span + borderWidth)

	segment := func(from, to float32, color style.Color) draw.Quad {
		return draw.Quad{
			Bounds:     core.Rectangle{X: barX, Y: b.Y + from, Width: barWidth, Height: to - from},
			Background: color,
		}
	}

	switch m.tier(v) {
	case phaseBad:
		poorOffset := floor32(span*(1.0-m.poor/2.0) + borderWidth)
		prims = append(prims,
			segment(center, poorOffset, appearance.PoorColor),
			segment(poorOffset, normalOffset, appearance.BadColor),
		)
	case phasePoor:
		prims = append(prims, segment(center, normalOffset, appearance.PoorColor))
	case phaseOkay:
		prims = append(prims, segment(normalOffset, center, appearance.OkayColor))
	case phaseGood:
		goodOffset := floor32(span*(1.0-(0.5+m.good/2.0)) + borderWidth)
		prims = append(prims,
			segment(goodOffset, center, appearance.OkayColor),
			segment(normalOffset, goodOffset, appearance.GoodColor),
		)
	}
	return append(prims, centerLine)
}
