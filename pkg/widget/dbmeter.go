package widget

import (
	"math"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/marks"
	"github.com/justyntemme/audioui/pkg/style"
)

// Orientation lays a meter bar out along one screen axis.
type Orientation uint8

const (
	// Vertical grows upward.
	Vertical Orientation = iota
	// Horizontal grows to the right.
	Horizontal
)

const defaultDBMeterThickness float32 = 20.0

// BarState is one meter bar: the lit level plus an optional held
// peak.
type BarState struct {
	Normal core.Normal
	Peak   *core.Normal
}

// TierPositions places the color thresholds along a dB meter bar. Med
// and High are optional; the bar below an unset threshold stays in
// the tier beneath it.
type TierPositions struct {
	Clipping core.Normal
	Med      *core.Normal
	High     *core.Normal
}

type meterTier uint8

const (
	tierLow meterTier = iota
	tierMed
	tierHigh
	tierClip
)

func (t TierPositions) tier(n core.Normal) meterTier {
	if n.Value() >= t.Clipping.Value() {
		return tierClip
	}
	if t.High != nil {
		if n.Value() >= t.High.Value() {
			return tierHigh
		}
		if t.Med != nil && n.Value() >= t.Med.Value() {
			return tierMed
		}
	}
	return tierLow
}

// DBMeter displays one or two level bars split into tier-colored
// segments, with held peak lines and a marker at the clipping
// position. It is passive; the host pushes values through the
// setters.
type DBMeter struct {
	sheet       style.DBMeterStyleSheet
	orientation Orientation
	thickness   float32

	bar   BarState
	right *BarState
	tiers TierPositions

	ticks *marks.Group
	texts *marks.TextGroup
}

// NewDBMeter builds a vertical mono meter with the default style.
func NewDBMeter(tiers TierPositions) *DBMeter {
	return &DBMeter{
		sheet:     style.DefaultDBMeter(),
		thickness: defaultDBMeterThickness,
		tiers:     tiers,
	}
}

// Sheet sets the style sheet.
func (m *DBMeter) Sheet(sheet style.DBMeterStyleSheet) *DBMeter {
	m.sheet = sheet
	return m
}

// Orientation sets the bar direction.
func (m *DBMeter) Orientation(orientation Orientation) *DBMeter {
	m.orientation = orientation
	return m
}

// Thickness sets the cross-axis size in pixels.
func (m *DBMeter) Thickness(thickness float32) *DBMeter {
	m.thickness = thickness
	return m
}

// Dual splits the meter into two bars sharing the tier positions.
func (m *DBMeter) Dual() *DBMeter {
	m.right = &BarState{}
	return m
}

// TickMarks sets the tick marks along the meter.
func (m *DBMeter) TickMarks(group marks.Group) *DBMeter {
	m.ticks = &group
	return m
}

// TextMarks sets the text labels along the meter.
func (m *DBMeter) TextMarks(group marks.TextGroup) *DBMeter {
	m.texts = &group
	return m
}

// SetBar updates the lit level of the left or mono bar.
func (m *DBMeter) SetBar(n core.Normal) {
	m.bar.Normal = n
}

// SetPeak updates the held peak of the left or mono bar. Nil clears
// it.
func (m *DBMeter) SetPeak(peak *core.Normal) {
	m.bar.Peak = peak
}

// SetRightBar updates the lit level of the right bar of a dual meter.
func (m *DBMeter) SetRightBar(n core.Normal) {
	if m.right != nil {
		m.right.Normal = n
	}
}

// SetRightPeak updates the held peak of the right bar. Nil clears it.
func (m *DBMeter) SetRightPeak(peak *core.Normal) {
	if m.right != nil {
		m.right.Peak = peak
	}
}

// PreferredSize returns the advertised size. The travel axis fills.
func (m *DBMeter) PreferredSize() core.Size {
	if m.orientation == Horizontal {
		return core.Size{Width: 0.0, Height: m.thickness}
	}
	return core.Size{Width: m.thickness, Height: 0.0}
}

// Draw renders the meter.
func (m *DBMeter) Draw(bounds core.Rectangle) []draw.Primitive {
	appearance := m.sheet.Appearance()
	b := floorBounds(bounds)
	if m.orientation == Horizontal {
		return m.drawHorizontal(b, appearance)
	}
	return m.drawVertical(b, appearance)
}

func (m *DBMeter) drawVertical(b core.Rectangle, appearance style.DBMeterAppearance) []draw.Primitive {
	borderWidth := appearance.BackBorderWidth
	barY := b.Y + borderWidth
	barHeight := b.Height - borderWidth*2.0
	markBounds := core.Rectangle{X: b.X, Y: barY, Width: b.Width, Height: barHeight}

	prims := m.marks(markBounds)
	prims = append(prims, draw.Quad{
		Bounds:      b,
		Background:  appearance.BackColor,
		BorderWidth: appearance.BackBorderWidth,
		BorderColor: appearance.BackBorderColor,
	})

	markerHeight := appearance.ClipMarkerWidth
	markerY := clipMarkerOrigin(barY, barHeight, m.tiers.Clipping.Inverse(), markerHeight)
	prims = append(prims, draw.Quad{
		Bounds: core.Rectangle{
			X:      b.X + borderWidth,
			Y:      markerY,
			Width:  b.Width - borderWidth*2.0,
			Height: markerHeight,
		},
		Background: appearance.ClipMarkerColor,
	})

	if m.right == nil {
		inner := core.Rectangle{
			X:      b.X + borderWidth,
			Y:      barY,
			Width:  b.Width - borderWidth*2.0,
			Height: barHeight,
		}
		return append(prims, m.vBar(inner, m.bar, appearance)...)
	}

	barWidth := floor32((b.Width - borderWidth*2.0 - appearance.InnerGap) * 0.5)
	leftX := b.X + borderWidth
	rightX := b.X + b.Width - borderWidth - barWidth
	prims = append(prims, draw.Quad{
		Bounds: core.Rectangle{
			X:      leftX + barWidth,
			Y:      b.Y,
			Width:  rightX - (leftX + barWidth),
			Height: b.Height,
		},
		Background: appearance.InnerGapColor,
	})
	prims = append(prims, m.vBar(core.Rectangle{X: leftX, Y: barY, Width: barWidth, Height: barHeight}, m.bar, appearance)...)
	prims = append(prims, m.vBar(core.Rectangle{X: rightX, Y: barY, Width: barWidth, Height: barHeight}, *m.right, appearance)...)
	return prims
}

func (m *DBMeter) drawHorizontal(b core.Rectangle, appearance style.DBMeterAppearance) []draw.Primitive {
	borderWidth := appearance.BackBorderWidth
	barX := b.X + borderWidth
	barWidth := b.Width - borderWidth*2.0
	markBounds := core.Rectangle{X: barX, Y: b.Y, Width: barWidth, Height: b.Height}

	prims := m.marks(markBounds)
	prims = append(prims, draw.Quad{
		Bounds:      b,
		Background:  appearance.BackColor,
		BorderWidth: appearance.BackBorderWidth,
		BorderColor: appearance.BackBorderColor,
	})

	markerWidth := appearance.ClipMarkerWidth
	markerX := clipMarkerOrigin(barX, barWidth, m.tiers.Clipping.Value(), markerWidth)
	prims = append(prims, draw.Quad{
		Bounds: core.Rectangle{
			X:      markerX,
			Y:      b.Y + borderWidth,
			Width:  markerWidth,
			Height: b.Height - borderWidth*2.0,
		},
		Background: appearance.ClipMarkerColor,
	})

	if m.right == nil {
		inner := core.Rectangle{
			X:      barX,
			Y:      b.Y + borderWidth,
			Width:  barWidth,
			Height: b.Height - borderWidth*2.0,
		}
		return append(prims, m.hBar(inner, m.bar, appearance)...)
	}

	barHeight := floor32((b.Height - borderWidth*2.0 - appearance.InnerGap) * 0.5)
	topY := b.Y + borderWidth
	bottomY := b.Y + b.Height - borderWidth - barHeight
	prims = append(prims, draw.Quad{
		Bounds: core.Rectangle{
			X:      b.X,
			Y:      topY + barHeight,
			Width:  b.Width,
			Height: bottomY - (topY + barHeight),
		},
		Background: appearance.InnerGapColor,
	})
	prims = append(prims, m.hBar(core.Rectangle{X: barX, Y: topY, Width: barWidth, Height: barHeight}, m.bar, appearance)...)
	prims = append(prims, m.hBar(core.Rectangle{X: barX, Y: bottomY, Width: barWidth, Height: barHeight}, *m.right, appearance)...)
	return prims
}

func (m *DBMeter) marks(markBounds core.Rectangle) []draw.Primitive {
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

// barColors resolves the segment colors, flooding everything with the
// clip color once the bar or its peak clips.
func (m *DBMeter) barColors(bar BarState, appearance style.DBMeterAppearance) (low, med, high style.Color) {
	low, med, high = appearance.LowColor, appearance.MedColor, appearance.HighColor
	if !appearance.ColorAllClip {
		return low, med, high
	}
	clipping := m.tiers.tier(bar.Normal) == tierClip
	if bar.Peak != nil && m.tiers.tier(*bar.Peak) == tierClip {
		clipping = true
	}
	if clipping {
		low, med, high = appearance.ClipColor, appearance.ClipColor, appearance.ClipColor
	}
	return low, med, high
}

func (m *DBMeter) peakColor(tier meterTier, low, med, high style.Color, appearance style.DBMeterAppearance) style.Color {
	if tier == tierClip {
		return appearance.ClipColor
	}
	if appearance.PeakLineColor != nil {
		return *appearance.PeakLineColor
	}
	switch tier {
	case tierMed:
		return med
	case tierHigh:
		return high
	default:
		return low
	}
}

// clipMarkerOrigin places the near edge of the clip marker along one
// axis, centered on the clipping position. The position math runs in
// float64: at float32 a position a hair under a pixel boundary rounds
// onto it before the floor.
func clipMarkerOrigin(start, span, frac, markerWidth float32) float32 {
	pos := float64(start) + float64(span)*float64(frac)
	return float32(math.Floor(pos - math.Round(float64(markerWidth)*0.5)))
}

// vBar renders one vertical bar into its inner bounds, bottom up.
func (m *DBMeter) vBar(b core.Rectangle, bar BarState, appearance style.DBMeterAppearance) []draw.Primitive {
	low, med, high := m.barColors(bar, appearance)
	barTier := m.tiers.tier(bar.Normal)

	var peak []draw.Primitive
	if bar.Peak != nil && *bar.Peak != core.NormalMin() {
		peakHeight := appearance.PeakLineWidth
		offset := round32((b.Height - peakHeight) * bar.Peak.Inverse())
		peak = append(peak, draw.Quad{
			Bounds:     core.Rectangle{X: b.X, Y: b.Y + offset, Width: b.Width, Height: peakHeight},
			Background: m.peakColor(m.tiers.tier(*bar.Peak), low, med, high, appearance),
		})
	}
	if bar.Normal == core.NormalMin() {
		return peak
	}

	normalOff := b.Height * bar.Normal.Inverse()
	clipOff := b.Height * m.tiers.Clipping.Inverse()
	highOff := clipOff
	if m.tiers.High != nil {
		highOff = b.Height * m.tiers.High.Inverse()
	}
	medOff := highOff
	if m.tiers.Med != nil {
		medOff = b.Height * m.tiers.Med.Inverse()
	}

	lowY := b.Y + medOff
	if barTier == tierLow {
		lowY = b.Y + normalOff
	}
	medY := b.Y + highOff
	if barTier == tierMed {
		medY = b.Y + normalOff
	}
	highY := b.Y + clipOff
	if barTier == tierHigh {
		highY = b.Y + normalOff
	}
	clipY := b.Y
	if barTier == tierClip {
		clipY = b.Y + normalOff
	}

	prims := make([]draw.Primitive, 0, 5)
	prims = append(prims, draw.Quad{
		Bounds:     core.Rectangle{X: b.X, Y: lowY, Width: b.Width, Height: b.Y + b.Height - lowY},
		Background: low,
	})
	if barTier != tierLow && medOff != highOff {
		prims = append(prims, draw.Quad{
			Bounds:     core.Rectangle{X: b.X, Y: medY, Width: b.Width, Height: lowY - medY},
			Background: med,
		})
	}
	if barTier != tierLow && barTier != tierMed && highOff != clipOff {
		prims = append(prims, draw.Quad{
			Bounds:     core.Rectangle{X: b.X, Y: highY, Width: b.Width, Height: medY - highY},
			Background: high,
		})
	}
	if barTier == tierClip {
		prims = append(prims, draw.Quad{
			Bounds:     core.Rectangle{X: b.X, Y: clipY, Width: b.Width, Height: highY - clipY},
			Background: appearance.ClipColor,
		})
	}
	return append(prims, peak...)
}

// hBar renders one horizontal bar into its inner bounds, left to
// right.
func (m *DBMeter) hBar(b core.Rectangle, bar BarState, appearance style.DBMeterAppearance) []draw.Primitive {
	low, med, high := m.barColors(bar, appearance)
	barTier := m.tiers.tier(bar.Normal)

	var peak []draw.Primitive
	if bar.Peak != nil && *bar.Peak != core.NormalMin() {
		peakWidth := appearance.PeakLineWidth
		offset := round32((b.Width - peakWidth) * bar.Peak.Value())
		peak = append(peak, draw.Quad{
			Bounds:     core.Rectangle{X: b.X + offset, Y: b.Y, Width: peakWidth, Height: b.Height},
			Background: m.peakColor(m.tiers.tier(*bar.Peak), low, med, high, appearance),
		})
	}
	if bar.Normal == core.NormalMin() {
		return peak
	}

	normalOff := b.Width * bar.Normal.Value()
	clipOff := b.Width * m.tiers.Clipping.Value()
	highOff := clipOff
	if m.tiers.High != nil {
		highOff = b.Width * m.tiers.High.Value()
	}
	medOff := highOff
	if m.tiers.Med != nil {
		medOff = b.Width * m.tiers.Med.Value()
	}

	lowEnd := b.X + medOff
	if barTier == tierLow {
		lowEnd = b.X + normalOff
	}
	medEnd := b.X + highOff
	if barTier == tierMed {
		medEnd = b.X + normalOff
	}
	highEnd := b.X + clipOff
	if barTier == tierHigh {
		highEnd = b.X + normalOff
	}
	clipEnd := b.X
	if barTier == tierClip {
		clipEnd = b.X + normalOff
	}

	prims := make([]draw.Primitive, 0, 5)
	prims = append(prims, draw.Quad{
		Bounds:     core.Rectangle{X: b.X, Y: b.Y, Width: lowEnd - b.X, Height: b.Height},
		Background: low,
	})
	if barTier != tierLow && medOff != highOff {
		prims = append(prims, draw.Quad{
			Bounds:     core.Rectangle{X: lowEnd, Y: b.Y, Width: medEnd - lowEnd, Height: b.Height},
			Background: med,
		})
	}
	if barTier != tierLow && barTier != tierMed && highOff != clipOff {
		prims = append(prims, draw.Quad{
			Bounds:     core.Rectangle{X: medEnd, Y: b.Y, Width: highEnd - medEnd, Height: b.Height},
			Background: high,
		})
	}
	if barTier == tierClip {
		prims = append(prims, draw.Quad{
			Bounds:     core.Rectangle{X: highEnd, Y: b.Y, Width: clipEnd - highEnd, Height: b.Height},
			Background: appearance.ClipColor,
		})
	}
	return append(prims, peak...)
}
