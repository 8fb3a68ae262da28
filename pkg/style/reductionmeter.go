package style

// ReductionMeterAppearance is the resolved look of a gain reduction
// meter.
type ReductionMeterAppearance struct {
	BackColor        Color
	BackBorderWidth  float32
	BackBorderRadius float32
	BackBorderColor  Color

	// Color fills the reduction bar.
	Color Color

	PeakLineColor Color
	PeakLineWidth float32
}

// ReductionMeterStyleSheet resolves the reduction meter look.
type ReductionMeterStyleSheet interface {
	Appearance() ReductionMeterAppearance
	TickMarks() (MeterTickMarks, bool)
	TextMarks() (MeterTextMarks, bool)
}

// DefaultReductionMeterSheet is the stock reduction meter look built
// from a palette.
type DefaultReductionMeterSheet struct {
	Palette Palette
}

// DefaultReductionMeter returns the stock reduction meter sheet.
func DefaultReductionMeter() DefaultReductionMeterSheet {
	return DefaultReductionMeterSheet{Palette: DefaultPalette()}
}

// Appearance returns the meter colors.
func (s DefaultReductionMeterSheet) Appearance() ReductionMeterAppearance {
	return ReductionMeterAppearance{
		BackColor:       s.Palette.DBMeterBack,
		BackBorderWidth: 1.0,
		BackBorderColor: s.Palette.DBMeterBorder,
		Color:           s.Palette.DBMeterLow,
		PeakLineColor:   s.Palette.DBMeterLow,
		PeakLineWidth:   2.0,
	}
}

// TickMarks returns the dimmed meter tiers.
func (s DefaultReductionMeterSheet) TickMarks() (MeterTickMarks, bool) {
	return DefaultDBMeterTicks(s.Palette), true
}

// TextMarks is omitted by default.
func (s DefaultReductionMeterSheet) TextMarks() (MeterTextMarks, bool) {
	return MeterTextMarks{}, false
}
