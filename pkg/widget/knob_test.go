package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/marks"
	"github.com/justyntemme/audioui/pkg/style"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func gray(v float32) style.Color {
	return style.Gray(v)
}

// The default 30..330 degree range lands at these screen-space angles
// once the quarter-turn rotation is applied.
const (
	knobStart float32 = 2.0943951
	knobSpan  float32 = 5.2359877
)

var (
	knobBounds  = core.Rectangle{X: 0, Y: 0, Width: 30, Height: 30}
	knobCenter  = core.Point{X: 15, Y: 15}
	knobOutside = core.Point{X: -50, Y: -50}
)

func paramAt(value float32) *core.NormalParam {
	p := core.NewNormalParam(value, 0.5)
	return &p
}

func centeredParam() *core.NormalParam {
	return paramAt(0.5)
}

func TestKnobDrawDefaultCircle(t *testing.T) {
	knob := NewKnob(centeredParam())

	got := knob.Draw(knobBounds, knobOutside)

	palette := style.DefaultPalette()
	want := []draw.Primitive{
		draw.Quad{
			Bounds:       knobBounds,
			Background:   palette.LightBack,
			BorderRadius: draw.CornerRadius(15.0),
			BorderWidth:  1.0,
			BorderColor:  palette.Border,
		},
		// The notch for a centered value sits straight up from the
		// center, inset from the edge.
		draw.Quad{
			Bounds:       core.Rectangle{X: 12.45, Y: 1.95, Width: 5.1, Height: 5.1},
			Background:   palette.Border,
			BorderRadius: draw.CornerRadius(2.55),
			BorderColor:  style.Transparent,
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("primitives mismatch (-want +got):\n%s", diff)
	}
}

func TestKnobDrawSquaresBounds(t *testing.T) {
	knob := NewKnob(centeredParam())

	got := knob.Draw(core.Rectangle{X: 0, Y: 0, Width: 50, Height: 30}, knobOutside)

	if len(got) == 0 {
		t.Fatal("no primitives")
	}
	quad, ok := got[0].(draw.Quad)
	if !ok {
		t.Fatalf("first primitive = %T, want draw.Quad", got[0])
	}
	want := core.Rectangle{X: 10, Y: 0, Width: 30, Height: 30}
	if diff := cmp.Diff(want, quad.Bounds, approx); diff != "" {
		t.Errorf("squared bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestKnobHoverAppearance(t *testing.T) {
	knob := NewKnob(centeredParam())

	got := knob.Draw(knobBounds, knobCenter)

	quad, ok := got[0].(draw.Quad)
	if !ok {
		t.Fatalf("first primitive = %T, want draw.Quad", got[0])
	}
	if want := style.DefaultPalette().KnobBackHover; quad.Background != want {
		t.Errorf("hovered background = %v, want %v", quad.Background, want)
	}
}

// arcKnobSheet swaps every interaction state for one fixed appearance
// while inheriting the default angle range and marks.
type arcKnobSheet struct {
	style.DefaultKnobSheet
	app style.KnobAppearance
}

func (s arcKnobSheet) Active() style.KnobAppearance   { return s.app }
func (s arcKnobSheet) Hovered() style.KnobAppearance  { return s.app }
func (s arcKnobSheet) Dragging() style.KnobAppearance { return s.app }

func TestKnobDrawArc(t *testing.T) {
	sheet := arcKnobSheet{
		DefaultKnobSheet: style.DefaultKnob(),
		app: style.KnobArcAppearance(style.KnobArc{
			Width:       style.Fixed(4.0),
			EmptyColor:  gray(0.2),
			FilledColor: gray(0.8),
			Cap:         style.CapRound,
		}),
	}
	knob := NewKnob(paramAt(0.25)).Sheet(sheet)

	got := knob.Draw(knobBounds, knobOutside)

	want := []draw.Primitive{
		draw.ArcStroke{
			Center: knobCenter, Radius: 13.0,
			StartAngle: knobStart, Sweep: knobSpan,
			Width: 4.0, Cap: style.CapRound, Color: gray(0.2),
		},
		draw.ArcStroke{
			Center: knobCenter, Radius: 13.0,
			StartAngle: knobStart, Sweep: 1.3089969,
			Width: 4.0, Cap: style.CapRound, Color: gray(0.8),
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("primitives mismatch (-want +got):\n%s", diff)
	}
}

func TestKnobDrawArcBipolar(t *testing.T) {
	app := style.KnobArcBipolarAppearance(style.KnobArcBipolar{
		Width:            style.Fixed(4.0),
		EmptyColor:       gray(0.2),
		LeftFilledColor:  gray(0.6),
		RightFilledColor: gray(0.9),
	})
	empty := draw.ArcStroke{
		Center: knobCenter, Radius: 13.0,
		StartAngle: knobStart, Sweep: knobSpan,
		Width: 4.0, Color: gray(0.2),
	}

	tests := []struct {
		name  string
		value float32
		want  []draw.Primitive
	}{
		{
			name:  "left of center",
			value: 0.25,
			want: []draw.Primitive{empty, draw.ArcStroke{
				Center: knobCenter, Radius: 13.0,
				StartAngle: 3.4033920, Sweep: 1.3089969,
				Width: 4.0, Color: gray(0.6),
			}},
		},
		{
			name:  "right of center",
			value: 0.75,
			want: []draw.Primitive{empty, draw.ArcStroke{
				Center: knobCenter, Radius: 13.0,
				StartAngle: 4.7123890, Sweep: 1.3089969,
				Width: 4.0, Color: gray(0.9),
			}},
		},
		{
			name:  "at center",
			value: 0.5,
			want:  []draw.Primitive{empty},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			knob := NewKnob(paramAt(tt.value)).Sheet(arcKnobSheet{DefaultKnobSheet: style.DefaultKnob(), app: app})

			got := knob.Draw(knobBounds, knobOutside)

			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("primitives mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKnobBipolarCenterOverride(t *testing.T) {
	app := style.KnobArcBipolarAppearance(style.KnobArcBipolar{
		Width:            style.Fixed(4.0),
		EmptyColor:       gray(0.2),
		LeftFilledColor:  gray(0.6),
		RightFilledColor: gray(0.9),
	})
	empty := draw.ArcStroke{
		Center: knobCenter, Radius: 13.0,
		StartAngle: knobStart, Sweep: knobSpan,
		Width: 4.0, Color: gray(0.2),
	}
	knob := NewKnob(centeredParam()).
		Sheet(arcKnobSheet{DefaultKnobSheet: style.DefaultKnob(), app: app}).
		BipolarCenter(core.NewNormal(0.25))

	got := knob.Draw(knobBounds, knobOutside)

	want := []draw.Primitive{empty, draw.ArcStroke{
		Center: knobCenter, Radius: 13.0,
		StartAngle: 3.4033920, Sweep: 1.3089969,
		Width: 4.0, Color: gray(0.9),
	}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("fill right of custom center mismatch (-want +got):\n%s", diff)
	}

	knob.SetValue(core.NewNormal(0.25))
	got = knob.Draw(knobBounds, knobOutside)
	if diff := cmp.Diff([]draw.Primitive{empty}, got, approx); diff != "" {
		t.Errorf("value at custom center mismatch (-want +got):\n%s", diff)
	}
}

// valueArcKnobSheet rings the default circle knob with a value arc.
type valueArcKnobSheet struct {
	style.DefaultKnobSheet
}

func (s valueArcKnobSheet) ValueArc() (style.ValueArc, bool) {
	return style.ValueArc{
		Width:       2.0,
		Offset:      1.0,
		EmptyColor:  style.Transparent,
		FilledColor: gray(0.4),
	}, true
}

func TestKnobValueArc(t *testing.T) {
	knob := NewKnob(paramAt(0.25)).Sheet(valueArcKnobSheet{style.DefaultKnob()})

	got := knob.Draw(knobBounds, knobOutside)

	if len(got) != 3 {
		t.Fatalf("len(primitives) = %d, want 3", len(got))
	}
	want := draw.ArcStroke{
		Center: knobCenter, Radius: 17.0,
		StartAngle: knobStart, Sweep: 1.3089969,
		Width: 2.0, Color: gray(0.4),
	}
	if diff := cmp.Diff(want, got[0], approx); diff != "" {
		t.Errorf("value arc mismatch (-want +got):\n%s", diff)
	}

	knob.SetValue(core.NormalMin())
	if got := knob.Draw(knobBounds, knobOutside); len(got) != 2 {
		t.Errorf("len(primitives) at minimum = %d, want 2", len(got))
	}
}

// modArcKnobSheet styles both modulation range slots.
type modArcKnobSheet struct {
	style.DefaultKnobSheet
	first  style.ModRangeArc
	second style.ModRangeArc
}

func (s modArcKnobSheet) ModRangeArc() (style.ModRangeArc, bool)  { return s.first, true }
func (s modArcKnobSheet) ModRangeArc2() (style.ModRangeArc, bool) { return s.second, true }

func TestKnobModRangeArcs(t *testing.T) {
	sheet := modArcKnobSheet{
		DefaultKnobSheet: style.DefaultKnob(),
		first:            style.ModRangeArc{Width: 2.0, Offset: 4.0, FilledColor: gray(0.7), FilledInverseColor: gray(0.3)},
		second:           style.ModRangeArc{Width: 2.0, Offset: 8.0, FilledColor: gray(0.55), FilledInverseColor: gray(0.45)},
	}

	t.Run("forward range", func(t *testing.T) {
		rng := &core.ModulationRange{Start: core.NewNormal(0.25), End: core.NewNormal(0.75), FilledVisible: true}
		knob := NewKnob(centeredParam()).Sheet(sheet).ModRange(rng)

		got := knob.Draw(knobBounds, knobOutside)

		if len(got) != 3 {
			t.Fatalf("len(primitives) = %d, want 3", len(got))
		}
		want := draw.ArcStroke{
			Center: knobCenter, Radius: 20.0,
			StartAngle: 3.4033920, Sweep: 2.6179939,
			Width: 2.0, Color: gray(0.7),
		}
		if diff := cmp.Diff(want, got[0], approx); diff != "" {
			t.Errorf("mod arc mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reversed range uses inverse color", func(t *testing.T) {
		rng := &core.ModulationRange{Start: core.NewNormal(0.75), End: core.NewNormal(0.25), FilledVisible: true}
		knob := NewKnob(centeredParam()).Sheet(sheet).ModRange(rng)

		got := knob.Draw(knobBounds, knobOutside)

		if len(got) != 3 {
			t.Fatalf("len(primitives) = %d, want 3", len(got))
		}
		want := draw.ArcStroke{
			Center: knobCenter, Radius: 20.0,
			StartAngle: 3.4033920, Sweep: 2.6179939,
			Width: 2.0, Color: gray(0.3),
		}
		if diff := cmp.Diff(want, got[0], approx); diff != "" {
			t.Errorf("mod arc mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("second slot keeps its own style", func(t *testing.T) {
		rng := &core.ModulationRange{Start: core.NewNormal(0.25), End: core.NewNormal(0.75), FilledVisible: true}
		knob := NewKnob(centeredParam()).Sheet(sheet).ModRange2(rng)

		got := knob.Draw(knobBounds, knobOutside)

		if len(got) != 3 {
			t.Fatalf("len(primitives) = %d, want 3", len(got))
		}
		want := draw.ArcStroke{
			Center: knobCenter, Radius: 24.0,
			StartAngle: 3.4033920, Sweep: 2.6179939,
			Width: 2.0, Color: gray(0.55),
		}
		if diff := cmp.Diff(want, got[0], approx); diff != "" {
			t.Errorf("second mod arc mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("hidden range draws nothing", func(t *testing.T) {
		rng := &core.ModulationRange{Start: core.NewNormal(0.25), End: core.NewNormal(0.75)}
		knob := NewKnob(centeredParam()).Sheet(sheet).ModRange(rng)

		if got := knob.Draw(knobBounds, knobOutside); len(got) != 2 {
			t.Errorf("len(primitives) = %d, want 2", len(got))
		}
	})
}

func TestKnobMarksWiring(t *testing.T) {
	ticks := marks.Center(marks.TierOne)
	texts := marks.FromTextMarks([]marks.TextMark{{Position: core.NormalCenter(), Text: "0 dB"}})
	knob := NewKnob(centeredParam()).TickMarks(ticks).TextMarks(texts)

	got := knob.Draw(knobBounds, knobOutside)

	if len(got) != 4 {
		t.Fatalf("len(primitives) = %d, want 4", len(got))
	}
	tick, ok := got[0].(draw.Quad)
	if !ok {
		t.Fatalf("first primitive = %T, want draw.Quad", got[0])
	}
	if want := style.DefaultPalette().TickTier1; tick.Background != want {
		t.Errorf("tick color = %v, want %v", tick.Background, want)
	}
	text, ok := got[1].(draw.Text)
	if !ok {
		t.Fatalf("second primitive = %T, want draw.Text", got[1])
	}
	if text.Content != "0 dB" {
		t.Errorf("text content = %q, want %q", text.Content, "0 dB")
	}
}
