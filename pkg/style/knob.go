package style

import "github.com/justyntemme/audioui/pkg/core"

// NotchKind selects the value notch drawn on a knob.
type NotchKind uint8

const (
	// NotchNone hides the notch.
	NotchNone NotchKind = iota
	// NotchCircle draws the notch as a filled circle.
	NotchCircle
	// NotchLine draws the notch as a line pointing at the center.
	NotchLine
)

// CircleNotch is a circular value notch.
type CircleNotch struct {
	Color       Color
	BorderWidth float32
	BorderColor Color

	// Diameter sizes the notch against the knob diameter.
	Diameter Length

	// Offset moves the notch inward from the knob edge.
	Offset Length
}

// LineNotch is a line value notch.
type LineNotch struct {
	Color Color
	Width Length

	// Length is the notch length toward the knob center.
	Length Length

	Cap LineCap

	// Offset moves the notch inward from the knob edge.
	Offset Length
}

// NotchShape is the notch variant a knob appearance draws.
type NotchShape struct {
	Kind   NotchKind
	Circle CircleNotch
	Line   LineNotch
}

// CircleNotchShape wraps a circle notch.
func CircleNotchShape(n CircleNotch) NotchShape {
	return NotchShape{Kind: NotchCircle, Circle: n}
}

// LineNotchShape wraps a line notch.
func LineNotchShape(n LineNotch) NotchShape {
	return NotchShape{Kind: NotchLine, Line: n}
}

// KnobCircle renders the knob as a bordered circle with a notch.
type KnobCircle struct {
	Color       Color
	BorderWidth float32
	BorderColor Color
	Notch       NotchShape
}

// KnobArc renders the knob as a stroked arc that fills up to the
// value.
type KnobArc struct {
	Width       Length
	EmptyColor  Color
	FilledColor Color
	Notch       NotchShape
	Cap         LineCap
}

// KnobArcBipolar renders the knob as a stroked arc that fills from a
// center point toward the value.
type KnobArcBipolar struct {
	Width            Length
	EmptyColor       Color
	LeftFilledColor  Color
	RightFilledColor Color

	NotchCenter NotchShape

	// NotchLeft and NotchRight replace the center notch on either
	// side of center when HasSideNotches is set.
	HasSideNotches bool
	NotchLeft      NotchShape
	NotchRight     NotchShape

	Cap LineCap
}

// KnobKind selects the knob appearance variant.
type KnobKind uint8

const (
	// KnobStyleCircle is the classic circle with a notch.
	KnobStyleCircle KnobKind = iota
	// KnobStyleArc is the modern stroked arc.
	KnobStyleArc
	// KnobStyleArcBipolar is a stroked arc filling from the center.
	KnobStyleArcBipolar
)

// KnobAppearance is the resolved look of a knob for one interaction
// state.
type KnobAppearance struct {
	Kind       KnobKind
	Circle     KnobCircle
	Arc        KnobArc
	ArcBipolar KnobArcBipolar
}

// KnobCircleAppearance wraps a circle appearance.
func KnobCircleAppearance(c KnobCircle) KnobAppearance {
	return KnobAppearance{Kind: KnobStyleCircle, Circle: c}
}

// KnobArcAppearance wraps an arc appearance.
func KnobArcAppearance(a KnobArc) KnobAppearance {
	return KnobAppearance{Kind: KnobStyleArc, Arc: a}
}

// KnobArcBipolarAppearance wraps a bipolar arc appearance.
func KnobArcBipolarAppearance(a KnobArcBipolar) KnobAppearance {
	return KnobAppearance{Kind: KnobStyleArcBipolar, ArcBipolar: a}
}

// ValueArc styles the value readout arc drawn around a knob.
type ValueArc struct {
	Width float32

	// Offset moves the arc outward from the knob edge.
	Offset float32

	// EmptyColor strokes the full span behind the fill. Transparent
	// skips it.
	EmptyColor Color

	// FilledColor strokes from the start of the span, or from the
	// center leftward when Bipolar is set.
	FilledColor Color

	// RightFilledColor strokes from the center rightward when Bipolar
	// is set.
	RightFilledColor Color
	Bipolar          bool

	Cap LineCap
}

// ModRangeArc styles a modulation range arc drawn around a knob.
type ModRangeArc struct {
	Width float32

	// Offset moves the arc outward from the knob edge.
	Offset float32

	// EmptyColor strokes the full span behind the fill. Transparent
	// skips it.
	EmptyColor Color

	// FilledColor strokes forward ranges, FilledInverseColor reversed
	// ones.
	FilledColor        Color
	FilledInverseColor Color

	Cap LineCap
}

// KnobTickMarks styles the tick marks around a knob.
type KnobTickMarks struct {
	Style TickMarks

	// Offset moves the marks outward from the knob edge.
	Offset float32
}

// KnobTextMarks styles the text labels around a knob.
type KnobTextMarks struct {
	Style TextMarks

	// Offset moves the labels outward from the knob edge.
	Offset float32

	// HCharOffset nudges multi-character labels away from the knob
	// per extra character.
	HCharOffset float32

	// VOffset nudges all labels vertically.
	VOffset float32
}

// KnobStyleSheet resolves knob appearances per interaction state. The
// optional accessors report false to omit the feature.
type KnobStyleSheet interface {
	Active() KnobAppearance
	Hovered() KnobAppearance
	Dragging() KnobAppearance
	AngleRange() core.KnobAngleRange
	TickMarks() (KnobTickMarks, bool)
	TextMarks() (KnobTextMarks, bool)
	ValueArc() (ValueArc, bool)
	ModRangeArc() (ModRangeArc, bool)
	ModRangeArc2() (ModRangeArc, bool)
}

// DefaultKnobSheet is the stock circle knob look built from a
// palette.
type DefaultKnobSheet struct {
	Palette Palette
}

// DefaultKnob returns the stock knob sheet.
func DefaultKnob() DefaultKnobSheet {
	return DefaultKnobSheet{Palette: DefaultPalette()}
}

func (s DefaultKnobSheet) circle(back Color) KnobAppearance {
	return KnobCircleAppearance(KnobCircle{
		Color:       back,
		BorderWidth: 1.0,
		BorderColor: s.Palette.Border,
		Notch: CircleNotchShape(CircleNotch{
			Color:       s.Palette.Border,
			BorderWidth: 0.0,
			BorderColor: Transparent,
			Diameter:    Scaled(0.17),
			Offset:      Scaled(0.15),
		}),
	})
}

// Active returns the resting appearance.
func (s DefaultKnobSheet) Active() KnobAppearance {
	return s.circle(s.Palette.LightBack)
}

// Hovered returns the appearance under the pointer.
func (s DefaultKnobSheet) Hovered() KnobAppearance {
	return s.circle(s.Palette.KnobBackHover)
}

// Dragging returns the appearance while captured.
func (s DefaultKnobSheet) Dragging() KnobAppearance {
	return s.Hovered()
}

// AngleRange returns the rotation span.
func (s DefaultKnobSheet) AngleRange() core.KnobAngleRange {
	return core.DefaultKnobAngleRange()
}

// TickMarks returns circle marks hugging the knob edge.
func (s DefaultKnobSheet) TickMarks() (KnobTickMarks, bool) {
	return KnobTickMarks{
		Style: TickMarks{
			Tier1: TickCircle(4.0, s.Palette.TickTier1),
			Tier2: TickCircle(2.0, s.Palette.TickTier2),
			Tier3: TickCircle(2.0, s.Palette.TickTier3),
		},
		Offset: 3.5,
	}, true
}

// TextMarks returns labels ringing the knob.
func (s DefaultKnobSheet) TextMarks() (KnobTextMarks, bool) {
	return KnobTextMarks{
		Style:       DefaultTextMarks(s.Palette),
		Offset:      14.0,
		HCharOffset: 3.0,
		VOffset:     -0.75,
	}, true
}

// ValueArc is omitted by default.
func (s DefaultKnobSheet) ValueArc() (ValueArc, bool) {
	return ValueArc{}, false
}

// ModRangeArc is omitted by default.
func (s DefaultKnobSheet) ModRangeArc() (ModRangeArc, bool) {
	return ModRangeArc{}, false
}

// ModRangeArc2 is omitted by default.
func (s DefaultKnobSheet) ModRangeArc2() (ModRangeArc, bool) {
	return ModRangeArc{}, false
}
