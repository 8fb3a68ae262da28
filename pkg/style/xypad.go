package style

// XYPadHandleKind selects the handle shape of an XY pad.
type XYPadHandleKind uint8

const (
	// XYPadHandleCircle draws a circular handle.
	XYPadHandleCircle XYPadHandleKind = iota
	// XYPadHandleSquare draws a square handle.
	XYPadHandleSquare
)

// XYPadHandle styles the handle at the pad's value position.
type XYPadHandle struct {
	Kind  XYPadHandleKind
	Color Color

	// Diameter sizes circle handles, Size square ones.
	Diameter float32
	Size     float32

	BorderWidth  float32
	BorderRadius float32
	BorderColor  Color
}

// XYPadAppearance is the resolved look of an XY pad for one
// interaction state.
type XYPadAppearance struct {
	// RailWidth is the thickness of the crosshair rails through the
	// handle.
	RailWidth  float32
	HRailColor Color
	VRailColor Color

	Handle XYPadHandle

	BackColor   Color
	BorderWidth float32
	BorderColor Color

	// CenterLineWidth is the thickness of the fixed center crosshair.
	// Zero hides it.
	CenterLineWidth float32
	CenterLineColor Color
}

// XYPadStyleSheet resolves XY pad appearances per interaction state.
type XYPadStyleSheet interface {
	Active() XYPadAppearance
	Hovered() XYPadAppearance
	Dragging() XYPadAppearance
}

// DefaultXYPadSheet is the stock XY pad look built from a palette.
type DefaultXYPadSheet struct {
	Palette Palette
}

// DefaultXYPad returns the stock XY pad sheet.
func DefaultXYPad() DefaultXYPadSheet {
	return DefaultXYPadSheet{Palette: DefaultPalette()}
}

func (s DefaultXYPadSheet) appearance(handle Color, diameter float32) XYPadAppearance {
	return XYPadAppearance{
		RailWidth:  2.0,
		HRailColor: s.Palette.XYPadRail,
		VRailColor: s.Palette.XYPadRail,
		Handle: XYPadHandle{
			Kind:        XYPadHandleCircle,
			Color:       handle,
			Diameter:    diameter,
			BorderWidth: 2.0,
			BorderColor: s.Palette.Border,
		},
		BackColor:       s.Palette.LightBack,
		BorderWidth:     1.0,
		BorderColor:     s.Palette.Border,
		CenterLineWidth: 1.0,
		CenterLineColor: s.Palette.XYPadCenterLine,
	}
}

// Active returns the resting appearance.
func (s DefaultXYPadSheet) Active() XYPadAppearance {
	return s.appearance(s.Palette.LightBack, 11.0)
}

// Hovered returns the appearance under the pointer.
func (s DefaultXYPadSheet) Hovered() XYPadAppearance {
	return s.appearance(s.Palette.LightBackHover, 11.0)
}

// Dragging returns the appearance while captured. The handle shrinks
// to expose the crosshair.
func (s DefaultXYPadSheet) Dragging() XYPadAppearance {
	return s.appearance(s.Palette.LightBackDrag, 9.0)
}
