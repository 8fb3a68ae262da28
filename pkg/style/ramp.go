package style

// RampAppearance is the resolved look of a ramp for one interaction
// state.
type RampAppearance struct {
	BackColor       Color
	BackBorderWidth float32
	BackBorderColor Color

	// LineWidth strokes the envelope curve.
	LineWidth float32

	// LineCenterColor draws the flat line at center, LineUpColor and
	// LineDownColor the curved ends.
	LineCenterColor Color
	LineUpColor     Color
	LineDownColor   Color
}

// RampStyleSheet resolves ramp appearances per interaction state.
type RampStyleSheet interface {
	Active() RampAppearance
	Hovered() RampAppearance
	Dragging() RampAppearance
}

// DefaultRampSheet is the stock ramp look built from a palette.
type DefaultRampSheet struct {
	Palette Palette
}

// DefaultRamp returns the stock ramp sheet.
func DefaultRamp() DefaultRampSheet {
	return DefaultRampSheet{Palette: DefaultPalette()}
}

func (s DefaultRampSheet) appearance(back Color) RampAppearance {
	return RampAppearance{
		BackColor:       back,
		BackBorderWidth: 1.0,
		BackBorderColor: s.Palette.Border,
		LineWidth:       2.0,
		LineCenterColor: s.Palette.Border,
		LineUpColor:     s.Palette.Border,
		LineDownColor:   s.Palette.Border,
	}
}

// Active returns the resting appearance.
func (s DefaultRampSheet) Active() RampAppearance {
	return s.appearance(s.Palette.LightBack)
}

// Hovered returns the appearance under the pointer.
func (s DefaultRampSheet) Hovered() RampAppearance {
	return s.appearance(s.Palette.RampBackHover)
}

// Dragging returns the appearance while captured.
func (s DefaultRampSheet) Dragging() RampAppearance {
	return s.Hovered()
}
