package style

// DBMeterAppearance is the resolved look of a dB level meter.
type DBMeterAppearance struct {
	BackColor       Color
	BackBorderWidth float32
	BackBorderColor Color

	// LowColor, MedColor and HighColor fill the bar segments below
	// the clipping point. ClipColor fills the clipping segment.
	LowColor  Color
	MedColor  Color
	HighColor Color
	ClipColor Color

	// PeakLineColor overrides the peak line color. Nil takes the
	// color of the segment the peak sits in.
	PeakLineColor *Color
	PeakLineWidth float32

	// ColorAllClip floods the whole bar with ClipColor once the value
	// clips.
	ColorAllClip bool

	// ClipMarkerWidth draws a faint marker at the clipping position.
	ClipMarkerWidth float32
	ClipMarkerColor Color

	// InnerGap separates the two bars of a stereo meter.
	InnerGap      float32
	InnerGapColor Color
}

// DBMeterStyleSheet resolves the dB meter look. TickMarks and
// TextMarks report false to omit the marks.
type DBMeterStyleSheet interface {
	Appearance() DBMeterAppearance
	TickMarks() (MeterTickMarks, bool)
	TextMarks() (MeterTextMarks, bool)
}

// DefaultDBMeterSheet is the stock dB meter look built from a
// palette.
type DefaultDBMeterSheet struct {
	Palette Palette
}

// DefaultDBMeter returns the stock dB meter sheet.
func DefaultDBMeter() DefaultDBMeterSheet {
	return DefaultDBMeterSheet{Palette: DefaultPalette()}
}

// Appearance returns the meter colors and bar layout.
func (s DefaultDBMeterSheet) Appearance() DBMeterAppearance {
	return DBMeterAppearance{
		BackColor:       s.Palette.DBMeterBack,
		BackBorderWidth: 1.0,
		BackBorderColor: s.Palette.DBMeterBorder,
		LowColor:        s.Palette.DBMeterLow,
		MedColor:        s.Palette.DBMeterMed,
		HighColor:       s.Palette.DBMeterHigh,
		ClipColor:       s.Palette.DBMeterClip,
		PeakLineWidth:   2.0,
		ColorAllClip:    true,
		ClipMarkerWidth: 2.0,
		ClipMarkerColor: s.Palette.DBMeterClipMarker,
		InnerGap:        2.0,
		InnerGapColor:   s.Palette.DBMeterGap,
	}
}

// TickMarks returns the dimmed meter tiers.
func (s DefaultDBMeterSheet) TickMarks() (MeterTickMarks, bool) {
	return DefaultDBMeterTicks(s.Palette), true
}

// TextMarks is omitted by default.
func (s DefaultDBMeterSheet) TextMarks() (MeterTextMarks, bool) {
	return MeterTextMarks{}, false
}
