package style

import "github.com/justyntemme/audioui/pkg/core"

// ClassicRail styles the two rail stripes behind a classic slider
// handle.
type ClassicRail struct {
	// Colors and Widths style the stripes. The first stripe runs
	// along the top or left edge, the second along the bottom or
	// right.
	Colors [2]Color
	Widths [2]float32

	// Padding insets the rail from both travel ends.
	Padding float32
}

// ClassicHandle styles the rectangular handle of a classic slider.
type ClassicHandle struct {
	Color Color

	// Width is the handle size along the travel axis.
	Width float32

	// NotchWidth sizes the line through the handle center. Zero hides
	// it.
	NotchWidth float32
	NotchColor Color

	BorderRadius float32
	BorderColor  Color
	BorderWidth  float32
}

// SliderClassic renders a slider as a rail with a notched handle.
type SliderClassic struct {
	Rail   ClassicRail
	Handle ClassicHandle
}

// SliderRect renders a slider as a filled bar behind a flat handle.
type SliderRect struct {
	BackColor        Color
	BackBorderColor  Color
	BackBorderRadius float32
	BackBorderWidth  float32

	FilledColor Color
	HandleColor Color

	// HandleWidth is the handle size along the travel axis.
	HandleWidth float32

	// HandleFilledGap separates the fill from the handle.
	HandleFilledGap float32
}

// SliderRectBipolar renders a slider as a bar filling from the center
// toward the handle.
type SliderRectBipolar struct {
	BackColor        Color
	BackBorderColor  Color
	BackBorderRadius float32
	BackBorderWidth  float32

	// Low colors apply when the value sits below center, on the left
	// or bottom half. High colors apply above center.
	LowFilledColor    Color
	HighFilledColor   Color
	HandleLowColor    Color
	HandleHighColor   Color
	HandleCenterColor Color

	// HandleWidth is the handle size along the travel axis.
	HandleWidth float32

	// HandleFilledGap separates the fill from the handle.
	HandleFilledGap float32
}

// SliderTexture renders a slider as a rail with an image handle.
type SliderTexture struct {
	Rail ClassicRail

	// Image is the host-registered texture handle.
	Image uint64

	// ImageBounds sizes the handle image. X and Y offset it from the
	// computed handle position.
	ImageBounds core.Rectangle

	// HandleWidth is the handle size along the travel axis.
	HandleWidth float32
}

// SliderKind selects the slider appearance variant.
type SliderKind uint8

const (
	// SliderStyleClassic is the rail and notched handle look.
	SliderStyleClassic SliderKind = iota
	// SliderStyleRect is the flat filled bar look.
	SliderStyleRect
	// SliderStyleRectBipolar fills from the center of the bar.
	SliderStyleRectBipolar
	// SliderStyleTexture uses an image for the handle.
	SliderStyleTexture
)

// SliderAppearance is the resolved look of a slider for one
// interaction state.
type SliderAppearance struct {
	Kind        SliderKind
	Classic     SliderClassic
	Rect        SliderRect
	RectBipolar SliderRectBipolar
	Texture     SliderTexture
}

// SliderClassicAppearance wraps a classic appearance.
func SliderClassicAppearance(c SliderClassic) SliderAppearance {
	return SliderAppearance{Kind: SliderStyleClassic, Classic: c}
}

// SliderRectAppearance wraps a rect appearance.
func SliderRectAppearance(r SliderRect) SliderAppearance {
	return SliderAppearance{Kind: SliderStyleRect, Rect: r}
}

// SliderRectBipolarAppearance wraps a bipolar rect appearance.
func SliderRectBipolarAppearance(r SliderRectBipolar) SliderAppearance {
	return SliderAppearance{Kind: SliderStyleRectBipolar, RectBipolar: r}
}

// SliderTextureAppearance wraps a texture appearance.
func SliderTextureAppearance(t SliderTexture) SliderAppearance {
	return SliderAppearance{Kind: SliderStyleTexture, Texture: t}
}

// HandleWidth returns the handle size along the travel axis for the
// active variant.
func (a SliderAppearance) HandleWidth() float32 {
	switch a.Kind {
	case SliderStyleRect:
		return a.Rect.HandleWidth
	case SliderStyleRectBipolar:
		return a.RectBipolar.HandleWidth
	case SliderStyleTexture:
		return a.Texture.HandleWidth
	default:
		return a.Classic.Handle.Width
	}
}

// ModRangePlacementKind positions a slider's modulation range bar.
type ModRangePlacementKind uint8

const (
	// ModRangeCenter floats the bar across the widget center.
	ModRangeCenter ModRangePlacementKind = iota
	// ModRangeCenterFilled stretches the bar across the widget with
	// edge padding.
	ModRangeCenterFilled
	// ModRangeStart hangs the bar off the top or left edge.
	ModRangeStart
	// ModRangeEnd hangs the bar off the bottom or right edge.
	ModRangeEnd
)

// ModRangePlacement positions a slider's modulation range bar.
type ModRangePlacement struct {
	Kind ModRangePlacementKind

	// Thickness is the bar size across the travel axis. Center and
	// edge placements use it.
	Thickness float32

	// Offset moves center placements across the travel axis and edge
	// placements away from their edge.
	Offset float32

	// EdgePadding insets a center filled bar from both cross edges.
	EdgePadding float32
}

// SliderModRange styles a modulation range bar on a slider.
type SliderModRange struct {
	Placement ModRangePlacement

	// BackColor fills the full span behind the range. Transparent
	// skips it.
	BackColor        Color
	BackBorderColor  Color
	BackBorderRadius float32
	BackBorderWidth  float32

	// FilledColor fills forward ranges, FilledInverseColor reversed
	// ones.
	FilledColor        Color
	FilledInverseColor Color
}

// SliderTickMarks styles the tick marks along a slider.
type SliderTickMarks struct {
	Style     TickMarks
	Placement TickPlacement
}

// SliderTextMarks styles the text labels along a slider.
type SliderTextMarks struct {
	Style     TextMarks
	Placement TextPlacement
}

// SliderStyleSheet resolves slider appearances per interaction state.
// The optional accessors report false to omit the feature.
type SliderStyleSheet interface {
	Active() SliderAppearance
	Hovered() SliderAppearance
	Dragging() SliderAppearance
	TickMarks() (SliderTickMarks, bool)
	TextMarks() (SliderTextMarks, bool)
	ModRange() (SliderModRange, bool)
	ModRange2() (SliderModRange, bool)
}

// DefaultSliderSheet is the stock classic slider look built from a
// palette.
type DefaultSliderSheet struct {
	Palette Palette

	// Vertical flips the text mark edge for vertical sliders.
	Vertical bool
}

// DefaultHSlider returns the stock horizontal slider sheet.
func DefaultHSlider() DefaultSliderSheet {
	return DefaultSliderSheet{Palette: DefaultPalette()}
}

// DefaultVSlider returns the stock vertical slider sheet.
func DefaultVSlider() DefaultSliderSheet {
	return DefaultSliderSheet{Palette: DefaultPalette(), Vertical: true}
}

func (s DefaultSliderSheet) classic(handle Color) SliderAppearance {
	return SliderClassicAppearance(SliderClassic{
		Rail: ClassicRail{
			Colors: [2]Color{s.Palette.SliderRailTop, s.Palette.SliderRailBottom},
			Widths: [2]float32{1.0, 1.0},
		},
		Handle: ClassicHandle{
			Color:        handle,
			Width:        34.0,
			NotchWidth:   4.0,
			NotchColor:   s.Palette.Border,
			BorderRadius: 2.0,
			BorderColor:  s.Palette.Border,
			BorderWidth:  1.0,
		},
	})
}

// Active returns the resting appearance.
func (s DefaultSliderSheet) Active() SliderAppearance {
	return s.classic(s.Palette.LightBack)
}

// Hovered returns the appearance under the pointer.
func (s DefaultSliderSheet) Hovered() SliderAppearance {
	return s.classic(s.Palette.LightBackHover)
}

// Dragging returns the appearance while captured.
func (s DefaultSliderSheet) Dragging() SliderAppearance {
	return s.classic(s.Palette.LightBackDrag)
}

// TickMarks returns line marks centered on the rail.
func (s DefaultSliderSheet) TickMarks() (SliderTickMarks, bool) {
	return SliderTickMarks{
		Style: TickMarks{
			Tier1: TickLine(24.0, 2.0, s.Palette.TickTier1),
			Tier2: TickLine(22.0, 1.0, s.Palette.TickTier2),
			Tier3: TickLine(18.0, 1.0, s.Palette.TickTier3),
		},
		Placement: TickPlacement{Kind: TickCenter},
	}, true
}

// TextMarks returns labels beside the rail.
func (s DefaultSliderSheet) TextMarks() (SliderTextMarks, bool) {
	marks := SliderTextMarks{Style: DefaultTextMarks(s.Palette)}
	if s.Vertical {
		marks.Placement = TextPlacement{
			Kind:   TextLeftOrTop,
			Offset: core.Offset{X: -7.0},
		}
	} else {
		marks.Placement = TextPlacement{
			Kind:   TextRightOrBottom,
			Offset: core.Offset{Y: 7.0},
		}
	}
	return marks, true
}

// ModRange is omitted by default.
func (s DefaultSliderSheet) ModRange() (SliderModRange, bool) {
	return SliderModRange{}, false
}

// ModRange2 is omitted by default.
func (s DefaultSliderSheet) ModRange2() (SliderModRange, bool) {
	return SliderModRange{}, false
}
