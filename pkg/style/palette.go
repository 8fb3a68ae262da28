package style

// Palette holds the colors the default style sheets are built from.
// Replacing entries and rebuilding a Theme restyles every widget at
// once.
type Palette struct {
	Border         Color
	LightBack      Color
	LightBackHover Color
	LightBackDrag  Color

	KnobBackHover Color
	RampBackHover Color

	SliderRailTop    Color
	SliderRailBottom Color

	TickTier1 Color
	TickTier2 Color
	TickTier3 Color
	TextMark  Color

	XYPadRail       Color
	XYPadCenterLine Color

	DBMeterBack       Color
	DBMeterBorder     Color
	DBMeterLow        Color
	DBMeterMed        Color
	DBMeterHigh       Color
	DBMeterClip       Color
	DBMeterClipMarker Color
	DBMeterGap        Color
	DBMeterTickTier1  Color
	DBMeterTickTier2  Color
	DBMeterTickTier3  Color

	PhaseMeterCenterLine Color
}

// DefaultPalette returns the stock light palette.
func DefaultPalette() Palette {
	return Palette{
		Border:         Gray(0.315),
		LightBack:      Gray(0.97),
		LightBackHover: Gray(0.93),
		LightBackDrag:  Gray(0.92),

		KnobBackHover: Gray(0.96),
		RampBackHover: Gray(0.95),

		SliderRailTop:    Gray(0.26).WithAlpha(0.75),
		SliderRailBottom: Gray(0.56).WithAlpha(0.75),

		TickTier1: Gray(0.56).WithAlpha(0.93),
		TickTier2: Gray(0.56).WithAlpha(0.83),
		TickTier3: Gray(0.56).WithAlpha(0.65),
		TextMark:  Gray(0.16),

		XYPadRail:       Gray(0.56).WithAlpha(0.9),
		XYPadCenterLine: Gray(0.56).WithAlpha(0.5),

		DBMeterBack:       Gray(0.45),
		DBMeterBorder:     Gray(0.2),
		DBMeterLow:        RGB(0.435, 0.886, 0.11),
		DBMeterMed:        RGB(0.737, 1.0, 0.145),
		DBMeterHigh:       RGB(1.0, 0.945, 0.0),
		DBMeterClip:       RGB(1.0, 0.071, 0.071),
		DBMeterClipMarker: Gray(0.78).WithAlpha(0.28),
		DBMeterGap:        Gray(0.25),
		DBMeterTickTier1:  Gray(0.56).WithAlpha(0.85),
		DBMeterTickTier2:  Gray(0.56).WithAlpha(0.73),
		DBMeterTickTier3:  Gray(0.56).WithAlpha(0.63),

		PhaseMeterCenterLine: Gray(0.92),
	}
}

// WithHoverShades fills the hover and drag entries derived from
// LightBack when a custom palette leaves them transparent.
func (p Palette) WithHoverShades() Palette {
	if p.LightBackHover.IsTransparent() {
		p.LightBackHover = p.LightBack.Darken(0.05)
	}
	if p.LightBackDrag.IsTransparent() {
		p.LightBackDrag = p.LightBack.Darken(0.06)
	}
	if p.KnobBackHover.IsTransparent() {
		p.KnobBackHover = p.LightBack.Darken(0.012)
	}
	if p.RampBackHover.IsTransparent() {
		p.RampBackHover = p.LightBack.Darken(0.025)
	}
	return p
}
