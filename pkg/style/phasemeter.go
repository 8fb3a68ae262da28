package style

// PhaseMeterAppearance is the resolved look of a phase correlation
// meter.
type PhaseMeterAppearance struct {
	BackColor       Color
	BackBorderWidth float32
	BackBorderColor Color

	// BadColor through GoodColor fill the bar from full cancellation
	// to full correlation.
	BadColor  Color
	PoorColor Color
	OkayColor Color
	GoodColor Color

	CenterLineWidth float32
	CenterLineColor Color
}

// PhaseMeterStyleSheet resolves the phase meter look.
type PhaseMeterStyleSheet interface {
	Appearance() PhaseMeterAppearance
	TickMarks() (MeterTickMarks, bool)
	TextMarks() (MeterTextMarks, bool)
}

// DefaultPhaseMeterSheet is the stock phase meter look built from a
// palette.
type DefaultPhaseMeterSheet struct {
	Palette Palette
}

// DefaultPhaseMeter returns the stock phase meter sheet.
func DefaultPhaseMeter() DefaultPhaseMeterSheet {
	return DefaultPhaseMeterSheet{Palette: DefaultPalette()}
}

// Appearance returns the meter colors.
func (s DefaultPhaseMeterSheet) Appearance() PhaseMeterAppearance {
	return PhaseMeterAppearance{
		BackColor:       s.Palette.DBMeterBack,
		BackBorderWidth: 1.0,
		BackBorderColor: s.Palette.DBMeterBorder,
		BadColor:        s.Palette.DBMeterClip,
		PoorColor:       s.Palette.DBMeterHigh,
		OkayColor:       s.Palette.DBMeterMed,
		GoodColor:       s.Palette.DBMeterLow,
		CenterLineWidth: 1.0,
		CenterLineColor: s.Palette.PhaseMeterCenterLine,
	}
}

// TickMarks returns the standard bar tiers.
func (s DefaultPhaseMeterSheet) TickMarks() (MeterTickMarks, bool) {
	return DefaultBarTicks(s.Palette), true
}

// TextMarks is omitted by default.
func (s DefaultPhaseMeterSheet) TextMarks() (MeterTextMarks, bool) {
	return MeterTextMarks{}, false
}
