package style

import "github.com/justyntemme/audioui/pkg/core"

// Theme bundles a style sheet for every widget class. Widgets built
// without an explicit sheet take theirs from a theme.
type Theme struct {
	Knob           KnobStyleSheet
	HSlider        SliderStyleSheet
	VSlider        SliderStyleSheet
	XYPad          XYPadStyleSheet
	Ramp           RampStyleSheet
	ModRangeInput  ModRangeInputStyleSheet
	DBMeter        DBMeterStyleSheet
	PhaseMeter     PhaseMeterStyleSheet
	ReductionMeter ReductionMeterStyleSheet
}

// NewTheme builds a theme from a palette. Transparent hover shades
// are derived from the base colors.
func NewTheme(p Palette) *Theme {
	p = p.WithHoverShades()
	return &Theme{
		Knob:           DefaultKnobSheet{Palette: p},
		HSlider:        DefaultSliderSheet{Palette: p},
		VSlider:        DefaultSliderSheet{Palette: p, Vertical: true},
		XYPad:          DefaultXYPadSheet{Palette: p},
		Ramp:           DefaultRampSheet{Palette: p},
		ModRangeInput:  DefaultModRangeInputSheet{Palette: p},
		DBMeter:        DefaultDBMeterSheet{Palette: p},
		PhaseMeter:     DefaultPhaseMeterSheet{Palette: p},
		ReductionMeter: DefaultReductionMeterSheet{Palette: p},
	}
}

// DefaultTheme returns the stock light theme.
func DefaultTheme() *Theme {
	return NewTheme(DefaultPalette())
}

// themedKnobSheet overrides the angle range of a knob sheet.
type themedKnobSheet struct {
	DefaultKnobSheet
	angles core.KnobAngleRange
}

func (s themedKnobSheet) AngleRange() core.KnobAngleRange {
	return s.angles
}
