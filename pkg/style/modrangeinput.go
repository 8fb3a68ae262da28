package style

// ModRangeInputKind selects how a modulation range input dot is
// drawn.
type ModRangeInputKind uint8

const (
	// ModRangeInputCircle draws a filled circle.
	ModRangeInputCircle ModRangeInputKind = iota
	// ModRangeInputSquare draws a rounded square.
	ModRangeInputSquare
	// ModRangeInputInvisible draws nothing but keeps the hit area.
	ModRangeInputInvisible
)

// ModRangeInputAppearance is the resolved look of a modulation range
// input for one interaction state.
type ModRangeInputAppearance struct {
	Kind  ModRangeInputKind
	Color Color

	BorderWidth  float32
	BorderRadius float32
	BorderColor  Color
}

// ModRangeInputStyleSheet resolves modulation range input appearances
// per interaction state.
type ModRangeInputStyleSheet interface {
	Active() ModRangeInputAppearance
	Hovered() ModRangeInputAppearance
	Dragging() ModRangeInputAppearance
}

// DefaultModRangeInputSheet is the stock dot look built from a
// palette.
type DefaultModRangeInputSheet struct {
	Palette Palette

	// Invisible hides the dot in every state.
	Invisible bool
}

// DefaultModRangeInput returns the stock dot sheet.
func DefaultModRangeInput() DefaultModRangeInputSheet {
	return DefaultModRangeInputSheet{Palette: DefaultPalette()}
}

// InvisibleModRangeInput returns a sheet that hides the dot, for
// inputs layered over another widget.
func InvisibleModRangeInput() DefaultModRangeInputSheet {
	return DefaultModRangeInputSheet{Palette: DefaultPalette(), Invisible: true}
}

func (s DefaultModRangeInputSheet) circle(color Color) ModRangeInputAppearance {
	if s.Invisible {
		return ModRangeInputAppearance{Kind: ModRangeInputInvisible}
	}
	return ModRangeInputAppearance{
		Kind:        ModRangeInputCircle,
		Color:       color,
		BorderWidth: 1.0,
		BorderColor: s.Palette.Border,
	}
}

// Active returns the resting appearance.
func (s DefaultModRangeInputSheet) Active() ModRangeInputAppearance {
	return s.circle(s.Palette.LightBack)
}

// Hovered returns the appearance under the pointer.
func (s DefaultModRangeInputSheet) Hovered() ModRangeInputAppearance {
	return s.circle(s.Palette.KnobBackHover)
}

// Dragging returns the appearance while captured.
func (s DefaultModRangeInputSheet) Dragging() ModRangeInputAppearance {
	return s.Hovered()
}
