package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/event"
	"github.com/justyntemme/audioui/pkg/style"
)

func TestModRangeInputDrawDot(t *testing.T) {
	input := NewModRangeInput(centeredParam())
	bounds := core.Rectangle{X: 3, Y: 3, Width: 10, Height: 10}

	got := input.Draw(bounds, knobOutside)

	palette := style.DefaultPalette()
	want := []draw.Primitive{
		draw.Quad{
			Bounds:       core.Rectangle{X: 3, Y: 3, Width: 10, Height: 10},
			Background:   palette.LightBack,
			BorderRadius: draw.CornerRadius(5.0),
			BorderWidth:  1.0,
			BorderColor:  palette.Border,
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("primitives mismatch (-want +got):\n%s", diff)
	}
}

func TestModRangeInputInvisibleDrawsNothing(t *testing.T) {
	input := NewModRangeInput(centeredParam()).Sheet(style.InvisibleModRangeInput())
	bounds := core.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}

	if got := input.Draw(bounds, knobOutside); got != nil {
		t.Errorf("primitives = %v, want none", got)
	}
}

// The dot uses the longer mod range travel, half the sweep rate of a
// knob drag.
func TestModRangeInputDragRate(t *testing.T) {
	p := core.NewNormalParam(0.5, 0.5)
	input := NewModRangeInput(&p)
	bounds := core.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}

	sendCaptured(t, input, bounds, core.Point{X: 5, Y: 5}, event.PointerPressed{})
	sendCaptured(t, input, bounds, core.Point{X: 5, Y: -35}, event.PointerMoved{})

	if got := input.Value().Value(); !closeTo(got, 0.6) {
		t.Errorf("value after 40px drag = %v, want 0.6", got)
	}
}
