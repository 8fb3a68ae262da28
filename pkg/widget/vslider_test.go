package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/style"
)

func TestVSliderDrawClassicDefault(t *testing.T) {
	slider := NewVSlider(paramAt(0.25))
	bounds := core.Rectangle{X: 0, Y: 0, Width: 14, Height: 214}

	got := slider.Draw(bounds, knobOutside)

	palette := style.DefaultPalette()
	want := []draw.Primitive{
		draw.Quad{
			Bounds:     core.Rectangle{X: 6, Y: 0, Width: 1, Height: 214},
			Background: palette.SliderRailTop,
		},
		draw.Quad{
			Bounds:     core.Rectangle{X: 7, Y: 0, Width: 1, Height: 214},
			Background: palette.SliderRailBottom,
		},
		draw.Quad{
			Bounds:       core.Rectangle{X: 0, Y: 135, Width: 14, Height: 34},
			Background:   palette.LightBack,
			BorderRadius: draw.CornerRadius(2.0),
			BorderWidth:  1.0,
			BorderColor:  palette.Border,
		},
		draw.Quad{
			Bounds:     core.Rectangle{X: 0, Y: 150, Width: 14, Height: 4},
			Background: palette.Border,
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("primitives mismatch (-want +got):\n%s", diff)
	}
}

func TestVSliderDrawRect(t *testing.T) {
	sheet := sliderTestSheet{DefaultSliderSheet: style.DefaultVSlider(), app: rectSliderAppearance()}
	slider := NewVSlider(paramAt(0.25)).Sheet(sheet)
	bounds := core.Rectangle{X: 0, Y: 0, Width: 14, Height: 110}

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
			Bounds:       core.Rectangle{X: 0, Y: 83, Width: 14, Height: 27},
			Background:   gray(0.6),
			BorderRadius: draw.CornerRadius(2.0),
			BorderWidth:  1.0,
			BorderColor:  style.Transparent,
		},
		draw.Quad{
			Bounds:       core.Rectangle{X: 0, Y: 78, Width: 14, Height: 6},
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

func TestVSliderDrawRectBipolar(t *testing.T) {
	sheet := sliderTestSheet{DefaultSliderSheet: style.DefaultVSlider(), app: bipolarSliderAppearance()}
	bounds := core.Rectangle{X: 0, Y: 0, Width: 14, Height: 104}
	back := draw.Quad{
		Bounds:       bounds,
		Background:   gray(0.9),
		BorderRadius: draw.CornerRadius(2.0),
		BorderWidth:  1.0,
		BorderColor:  gray(0.3),
	}
	handle := func(y float32, color style.Color) draw.Quad {
		return draw.Quad{
			Bounds:       core.Rectangle{X: 0, Y: y, Width: 14, Height: 6},
			Background:   color,
			BorderRadius: draw.CornerRadius(2.0),
			BorderWidth:  1.0,
			BorderColor:  style.Transparent,
		}
	}
	fill := func(y, height float32, color style.Color) draw.Quad {
		return draw.Quad{
			Bounds:       core.Rectangle{X: 0, Y: y, Width: 14, Height: height},
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
			name:  "above center fills downward to center",
			value: 0.8,
			want:  []draw.Primitive{back, fill(25, 29, gray(0.7)), handle(20, gray(0.75))},
		},
		{
			name:  "below center fills upward to the handle",
			value: 0.2,
			want:  []draw.Primitive{back, fill(51, 28, gray(0.4)), handle(78, gray(0.35))},
		},
		{
			name:  "at center draws no fill",
			value: 0.5,
			want:  []draw.Primitive{back, handle(49, gray(0.5))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slider := NewVSlider(paramAt(tt.value)).Sheet(sheet)

			got := slider.Draw(bounds, knobOutside)

			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("primitives mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// A range whose start sits below its end reads bottom-up on screen and
// keeps the forward fill color; only a reversed range flips to the
// inverse color.
func TestVSliderModRangeColors(t *testing.T) {
	mod := style.SliderModRange{
		Placement:          style.ModRangePlacement{Kind: style.ModRangeEnd, Thickness: 2.0, Offset: 1.0},
		BackColor:          gray(0.8),
		FilledColor:        gray(0.5),
		FilledInverseColor: gray(0.2),
	}
	sheet := sliderTestSheet{
		DefaultSliderSheet: style.DefaultVSlider(),
		app:                style.DefaultVSlider().Active(),
		mod:                &mod,
	}
	bounds := core.Rectangle{X: 0, Y: 0, Width: 14, Height: 200}

	tests := []struct {
		name      string
		rng       core.ModulationRange
		wantColor style.Color
	}{
		{
			name:      "forward range",
			rng:       core.ModulationRange{Start: core.NewNormal(0.25), End: core.NewNormal(0.75), FilledVisible: true},
			wantColor: gray(0.5),
		},
		{
			name:      "reversed range uses inverse color",
			rng:       core.ModulationRange{Start: core.NewNormal(0.75), End: core.NewNormal(0.25), FilledVisible: true},
			wantColor: gray(0.2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := tt.rng
			slider := NewVSlider(centeredParam()).Sheet(sheet).ModRange(&rng)

			got := slider.Draw(bounds, knobOutside)

			if len(got) != 6 {
				t.Fatalf("len(primitives) = %d, want 6", len(got))
			}
			wantBack := draw.Quad{
				Bounds:     core.Rectangle{X: 15, Y: 17, Width: 2, Height: 166},
				Background: gray(0.8),
			}
			if diff := cmp.Diff(wantBack, got[4], approx); diff != "" {
				t.Errorf("range back mismatch (-want +got):\n%s", diff)
			}
			wantFilled := draw.Quad{
				Bounds:      core.Rectangle{X: 15, Y: 58.5, Width: 2, Height: 83},
				Background:  tt.wantColor,
				BorderColor: style.Transparent,
			}
			if diff := cmp.Diff(wantFilled, got[5], approx); diff != "" {
				t.Errorf("range fill mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
