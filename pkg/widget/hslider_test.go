package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/style"
)

// sliderTestSheet pins one appearance for every interaction state and
// optionally styles the first modulation range slot.
type sliderTestSheet struct {
	style.DefaultSliderSheet
	app style.SliderAppearance
	mod *style.SliderModRange
}

func (s sliderTestSheet) Active() style.SliderAppearance   { return s.app }
func (s sliderTestSheet) Hovered() style.SliderAppearance  { return s.app }
func (s sliderTestSheet) Dragging() style.SliderAppearance { return s.app }

func (s sliderTestSheet) ModRange() (style.SliderModRange, bool) {
	if s.mod == nil {
		return style.SliderModRange{}, false
	}
	return *s.mod, true
}

func rectSliderAppearance() style.SliderAppearance {
	return style.SliderRectAppearance(style.SliderRect{
		BackColor:        gray(0.9),
		BackBorderColor:  gray(0.3),
		BackBorderRadius: 2.0,
		BackBorderWidth:  1.0,
		FilledColor:      gray(0.6),
		HandleColor:      gray(0.2),
		HandleWidth:      4.0,
		HandleFilledGap:  1.0,
	})
}

func bipolarSliderAppearance() style.SliderAppearance {
	return style.SliderRectBipolarAppearance(style.SliderRectBipolar{
		BackColor:         gray(0.9),
		BackBorderColor:   gray(0.3),
		BackBorderRadius:  2.0,
		BackBorderWidth:   1.0,
		LowFilledColor:    gray(0.4),
		HighFilledColor:   gray(0.7),
		HandleLowColor:    gray(0.35),
		HandleHighColor:   gray(0.75),
		HandleCenterColor: gray(0.5),
		HandleWidth:       4.0,
		HandleFilledGap:   1.0,
	})
}

func TestHSliderDrawClassicDefault(t *testing.T) {
	slider := NewHSlider(centeredParam())
	bounds := core.Rectangle{X: 0, Y: 0, Width: 200, Height: 14}

	got := slider.Draw(bounds, knobOutside)

	palette := style.DefaultPalette()
	want := []draw.Primitive{
		draw.Quad{
			Bounds:     core.Rectangle{X: 0, Y: 6, Width: 200, Height: 1},
			Background: palette.SliderRailTop,
		},
		draw.Quad{
			Bounds:     core.Rectangle{X: 0, Y: 7, Width: 200, Height: 1},
			Background: palette.SliderRailBottom,
		},
		draw.Quad{
			Bounds:       core.Rectangle{X: 83, Y: 0, Width: 34, Height: 14},
			Background:   palette.LightBack,
			BorderRadius: draw.CornerRadius(2.0),
			BorderWidth:  1.0,
			BorderColor:  palette.Border,
		},
		draw.Quad{
			Bounds:     core.Rectangle{X: 98, Y: 0, Width: 4, Height: 14},
			Background: palette.Border,
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("primitives mismatch (-want +got):\n%s", diff)
	}
}

func TestHSliderDrawRect(t *testing.T) {
	sheet := sliderTestSheet{DefaultSliderSheet: style.DefaultHSlider(), app: rectSliderAppearance()}
	slider := NewHSlider(centeredParam()).Sheet(sheet)
	bounds := core.Rectangle{X: 0, Y: 0, Width: 104, Height: 14}

	got := slider.Draw(bounds, knobOutside)

	want := []draw.Primitive{
		draw.Quad{
			Bounds:       bounds,
			Background:   gray(0.9),
			BorderRadius: draw.CornerRadius(2.0),
			BorderWidth:  1.0,
			BorderColor:  gray(0.3),
		},
		draw.Quad{
			Bounds:       core.Rectangle{X: 0, Y: 0, Width: 50, Height: 14},
			Background:   gray(0.6),
			BorderRadius: draw.CornerRadius(2.0),
			BorderWidth:  1.0,
			BorderColor:  style.Transparent,
		},
		draw.Quad{
			Bounds:       core.Rectangle{X: 49, Y: 0, Width: 6, Height: 14},
			Background:   gray(0.2),
			BorderRadius: draw.CornerRadius(2.0),
			BorderWidth:  1.0,
			BorderColor:  style.Transparent,
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("primitives mismatch (-want +got):\n%s", diff)
	}
}

func TestHSliderDrawRectBipolar(t *testing.T) {
	sheet := sliderTestSheet{DefaultSliderSheet: style.DefaultHSlider(), app: bipolarSliderAppearance()}
	bounds := core.Rectangle{X: 0, Y: 0, Width: 104, Height: 14}
	back := draw.Quad{
		Bounds:       bounds,
		Background:   gray(0.9),
		BorderRadius: draw.CornerRadius(2.0),
		BorderWidth:  1.0,
		BorderColor:  gray(0.3),
	}
	handle := func(x float32, color style.Color) draw.Quad {
		return draw.Quad{
			Bounds:       core.Rectangle{X: x, Y: 0, Width: 6, Height: 14},
			Background:   color,
			BorderRadius: draw.CornerRadius(2.0),
			BorderWidth:  1.0,
			BorderColor:  style.Transparent,
		}
	}
	fill := func(x, width float32, color style.Color) draw.Quad {
		return draw.Quad{
			Bounds:       core.Rectangle{X: x, Y: 0, Width: width, Height: 14},
			Background:   color,
			BorderRadius: draw.CornerRadius(2.0),
			BorderWidth:  1.0,
			BorderColor:  style.Transparent,
		}
	}

	tests := []struct {
		name  string
		value float32
		want  []draw.Primitive
	}{
		{
			name:  "below center fills toward center",
			value: 0.2,
			want:  []draw.Primitive{back, fill(25, 29, gray(0.4)), handle(20, gray(0.35))},
		},
		{
			name:  "above center fills from center",
			value: 0.8,
			want:  []draw.Primitive{back, fill(51, 28, gray(0.7)), handle(78, gray(0.75))},
		},
		{
			name:  "at center draws no fill",
			value: 0.5,
			want:  []draw.Primitive{back, handle(49, gray(0.5))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slider := NewHSlider(paramAt(tt.value)).Sheet(sheet)

			got := slider.Draw(bounds, knobOutside)

			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("primitives mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHSliderModRangePlacement(t *testing.T) {
	rng := &core.ModulationRange{Start: core.NewNormal(0.25), End: core.NewNormal(0.75), FilledVisible: true}

	t.Run("end placement hangs below the value bounds", func(t *testing.T) {
		mod := style.SliderModRange{
			Placement:   style.ModRangePlacement{Kind: style.ModRangeEnd, Thickness: 2.0, Offset: 1.0},
			BackColor:   gray(0.8),
			FilledColor: gray(0.5),
		}
		sheet := sliderTestSheet{
			DefaultSliderSheet: style.DefaultHSlider(),
			app:                style.DefaultHSlider().Active(),
			mod:                &mod,
		}
		slider := NewHSlider(centeredParam()).Sheet(sheet).ModRange(rng)
		bounds := core.Rectangle{X: 0, Y: 0, Width: 200, Height: 14}

		got := slider.Draw(bounds, knobOutside)

		if len(got) != 6 {
			t.Fatalf("len(primitives) = %d, want 6", len(got))
		}
		wantBack := draw.Quad{
			Bounds:     core.Rectangle{X: 17, Y: 15, Width: 166, Height: 2},
			Background: gray(0.8),
		}
		if diff := cmp.Diff(wantBack, got[4], approx); diff != "" {
			t.Errorf("range back mismatch (-want +got):\n%s", diff)
		}
		wantFilled := draw.Quad{
			Bounds:       core.Rectangle{X: 58.5, Y: 15, Width: 83, Height: 2},
			Background:   gray(0.5),
			BorderColor:  style.Transparent,
			BorderRadius: draw.CornerRadius(0.0),
		}
		if diff := cmp.Diff(wantFilled, got[5], approx); diff != "" {
			t.Errorf("range fill mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("center placement floats across the rail", func(t *testing.T) {
		mod := style.SliderModRange{
			Placement:   style.ModRangePlacement{Kind: style.ModRangeCenter, Thickness: 2.0},
			FilledColor: gray(0.5),
		}
		sheet := sliderTestSheet{
			DefaultSliderSheet: style.DefaultHSlider(),
			app:                style.DefaultHSlider().Active(),
			mod:                &mod,
		}
		slider := NewHSlider(centeredParam()).Sheet(sheet).ModRange(rng)
		bounds := core.Rectangle{X: 0, Y: 0, Width: 200, Height: 14}

		got := slider.Draw(bounds, knobOutside)

		if len(got) != 5 {
			t.Fatalf("len(primitives) = %d, want 5", len(got))
		}
		want := core.Rectangle{X: 58.5, Y: 6, Width: 83, Height: 2}
		quad, ok := got[4].(draw.Quad)
		if !ok {
			t.Fatalf("last primitive = %T, want draw.Quad", got[4])
		}
		if diff := cmp.Diff(want, quad.Bounds, approx); diff != "" {
			t.Errorf("range fill bounds mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rect style stretches ranges across the widget", func(t *testing.T) {
		mod := style.SliderModRange{
			Placement:   style.ModRangePlacement{Kind: style.ModRangeEnd, Thickness: 2.0, Offset: 1.0},
			FilledColor: gray(0.5),
		}
		sheet := sliderTestSheet{
			DefaultSliderSheet: style.DefaultHSlider(),
			app:                rectSliderAppearance(),
			mod:                &mod,
		}
		slider := NewHSlider(centeredParam()).Sheet(sheet).ModRange(rng)
		bounds := core.Rectangle{X: 0, Y: 0, Width: 104, Height: 14}

		got := slider.Draw(bounds, knobOutside)

		if len(got) != 4 {
			t.Fatalf("len(primitives) = %d, want 4", len(got))
		}
		want := core.Rectangle{X: 26, Y: 15, Width: 52, Height: 2}
		quad, ok := got[3].(draw.Quad)
		if !ok {
			t.Fatalf("last primitive = %T, want draw.Quad", got[3])
		}
		if diff := cmp.Diff(want, quad.Bounds, approx); diff != "" {
			t.Errorf("range fill bounds mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestHSliderDrawTexture(t *testing.T) {
	app := style.SliderTextureAppearance(style.SliderTexture{
		Rail: style.ClassicRail{
			Colors: [2]style.Color{gray(0.7), gray(0.6)},
			Widths: [2]float32{1.0, 1.0},
		},
		Image:       7,
		ImageBounds: core.Rectangle{X: -8, Y: -10, Width: 16, Height: 20},
		HandleWidth: 16.0,
	})
	sheet := sliderTestSheet{DefaultSliderSheet: style.DefaultHSlider(), app: app}
	slider := NewHSlider(centeredParam()).Sheet(sheet)
	bounds := core.Rectangle{X: 0, Y: 0, Width: 116, Height: 14}

	got := slider.Draw(bounds, knobOutside)

	want := []draw.Primitive{
		draw.Quad{
			Bounds:     core.Rectangle{X: 0, Y: 6, Width: 116, Height: 1},
			Background: gray(0.7),
		},
		draw.Quad{
			Bounds:     core.Rectangle{X: 0, Y: 7, Width: 116, Height: 1},
			Background: gray(0.6),
		},
		draw.ImageQuad{
			Handle: 7,
			Bounds: core.Rectangle{X: 50, Y: -3, Width: 16, Height: 20},
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("primitives mismatch (-want +got):\n%s", diff)
	}
}
