package widget

import (
	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/marks"
	"github.com/justyntemme/audioui/pkg/style"
)

const defaultReductionMeterThickness float32 = 10.0

// ReductionMeter displays applied gain reduction. The bar hangs from
// the top of a vertical meter or grows leftward from the right edge of
// a horizontal one, so more reduction means a longer bar. Passive; the
// host pushes values through the setters.
type ReductionMeter struct {
	sheet       style.ReductionMeterStyleSheet
	orientation Orientation
	thickness   float32

	value core.Normal
	peak  *core.Normal

	ticks *marks.Group
	texts *marks.TextGroup
}

// NewReductionMeter builds a vertical reduction meter with the
// default style.
func NewReductionMeter() *ReductionMeter {
	return &ReductionMeter{
		sheet:     style.DefaultReductionMeter(),
		thickness: defaultReductionMeterThickness,
	}
}

// Sheet sets the style sheet.
func (m *ReductionMeter) Sheet(sheet style.ReductionMeterStyleSheet) *ReductionMeter {
	m.sheet = sheet
	return m
}

// Orientation sets the bar direction.
func (m *ReductionMeter) Orientation(orientation Orientation) *ReductionMeter {
	m.orientation = orientation
	return m
}

// Thickness sets the cross-axis size in pixels.
func (m *ReductionMeter) Thickness(thickness float32) *ReductionMeter {
	m.thickness = thickness
	return m
}

// TickMarks sets the tick marks along the meter.
func (m *ReductionMeter) TickMarks(group marks.Group) *ReductionMeter {
	m.ticks = &group
	return m
}

// TextMarks sets the text labels along the meter.
func (m *ReductionMeter) TextMarks(group marks.TextGroup) *ReductionMeter {
	m.texts = &group
	return m
}

// SetBar updates the displayed reduction.
func (m *ReductionMeter) SetBar(n core.Normal) {
	m.value = n
}

// SetPeak updates the held reduction peak. Nil clears it.
func (m *ReductionMeter) SetPeak(peak *core.Normal) {
	m.peak = peak
}

// PreferredSize returns the advertised size. The travel axis fills.
func (m *ReductionMeter) PreferredSize() core.Size {
	if m.orientation == Horizontal {
		return core.Size{Width: 0.0, Height: m.thickness}
	}
	return core.Size{Width: m.thickness, Height: 0.0}
}

func (m *ReductionMeter) marks(markBounds core.Rectangle) []draw.Primitive {
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
func (m *ReductionMeter) Draw(bounds core.Rectangle) []draw.Primitive {
	appearance := m.sheet.Appearance()
	b := floorBounds(bounds)
	if m.orientation == Horizontal {
		return m.drawHorizontal(b, appearance)
	}
	return m.drawVertical(b, appearance)
}

func (m *ReductionMeter) drawVertical(b core.Rectangle, appearance style.ReductionMeterAppearance) []draw.Primitive {
	borderWidth := appearance.BackBorderWidth
	markBounds := core.Rectangle{
		X:      b.X,
		Y:      b.Y + borderWidth,
		Width:  b.Width,
		Height: b.Height - borderWidth*2.0,
	}

	prims := m.marks(markBounds)
	prims = append(prims, draw.Quad{
		Bounds:       b,
		Background:   appearance.BackColor,
		BorderRadius: draw.CornerRadius(appearance.BackBorderRadius),
		BorderWidth:  appearance.BackBorderWidth,
		BorderColor:  appearance.BackBorderColor,
	})

	if m.value != core.NormalMin() {
		prims = append(prims, draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X,
				Y:      b.Y,
				Width:  b.Width,
				Height: b.Height * m.value.Value(),
			},
			Background:   appearance.Color,
			BorderRadius: draw.CornerRadius(appearance.BackBorderRadius),
			BorderWidth:  appearance.BackBorderWidth,
			BorderColor:  style.Transparent,
		})
	}
	if m.peak != nil && *m.peak != core.NormalMin() {
		peakWidth := appearance.PeakLineWidth + borderWidth*2.0
		prims = append(prims, draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X,
				Y:      round32(b.Y + b.Height*m.peak.Value() - peakWidth/2.0),
				Width:  b.Width,
				Height: peakWidth,
			},
			Background:   appearance.PeakLineColor,
			BorderRadius: draw.CornerRadius(appearance.BackBorderRadius),
			BorderWidth:  appearance.BackBorderWidth,
			BorderColor:  style.Transparent,
		})
	}
	return prims
}

func (m *ReductionMeter) drawHorizontal(b core.Rectangle, appearance style.ReductionMeterAppearance) []draw.Primitive {
	borderWidth := appearance.BackBorderWidth
	markBounds := core.Rectangle{
		X:      b.X + borderWidth,
		Y:      b.Y,
		Width:  b.Width - borderWidth*2.0,
		Height: b.Height,
	}

	prims := m.marks(markBounds)
	prims = append(prims, draw.Quad{
		Bounds:       b,
		Background:   appearance.BackColor,
		BorderRadius: draw.CornerRadius(appearance.BackBorderRadius),
		BorderWidth:  appearance.BackBorderWidth,
		BorderColor:  appearance.BackBorderColor,
	})

	if m.value != core.NormalMin() {
		barOffset := round32(b.Width * m.value.Inverse())
		prims = append(prims, draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X + barOffset,
				Y:      b.Y,
				Width:  b.Width - barOffset,
				Height: b.Height,
			},
			Background:   appearance.Color,
			BorderRadius: draw.CornerRadius(appearance.BackBorderRadius),
			BorderWidth:  appearance.BackBorderWidth,
			BorderColor:  style.Transparent,
		})
	}
	if m.peak != nil && *m.peak != core.NormalMin() {
		peakWidth := appearance.PeakLineWidth + borderWidth*2.0
		peakOffset := round32((b.Width - peakWidth) * m.peak.Inverse())
		prims = append(prims, draw.Quad{
			Bounds: core.Rectangle{
				X:      b.X + peakOffset,
				Y:      b.Y,
				Width:  peakWidth,
				Height: b.Height,
			},
			Background:   appearance.PeakLineColor,
			BorderRadius: draw.CornerRadius(appearance.BackBorderRadius),
			BorderWidth:  appearance.BackBorderWidth,
			BorderColor:  style.Transparent,
		})
	}
	return prims
}
