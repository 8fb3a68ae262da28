package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/draw"
	"github.com/justyntemme/audioui/pkg/marks"
	"github.com/justyntemme/audioui/pkg/style"
)

func phaseBack(bounds core.Rectangle) draw.Quad {
	palette := style.DefaultPalette()
	return draw.Quad{
		Bounds:      bounds,
		Background:  palette.DBMeterBack,
		BorderWidth: 1.0,
		BorderColor: palette.DBMeterBorder,
	}
}

func TestPhaseMeterCenterDeadzone(t *testing.T) {
	meter := NewPhaseMeter()
	if meter.Value() != core.NormalCenter() {
		t.Fatalf("Value() = %v, want center", meter.Value())
	}
	bounds := core.Rectangle{X: 0, Y: 0, Width: 102, Height: 10}

	got := meter.Draw(bounds)

	want := []draw.Primitive{
		phaseBack(bounds),
		draw.Quad{
			Bounds:     core.Rectangle{X: 50, Y: 1, Width: 1, Height: 8},
			Background: style.DefaultPalette().PhaseMeterCenterLine,
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("primitives mismatch (-want +got):\n%s", diff)
	}
}

func TestPhaseMeterDrawHorizontalTiers(t *testing.T) {
	palette := style.DefaultPalette()
	bounds := core.Rectangle{X: 0, Y: 0, Width: 102, Height: 10}
	centerLine := draw.Quad{
		Bounds:     core.Rectangle{X: 50, Y: 1, Width: 1, Height: 8},
		Background: palette.PhaseMeterCenterLine,
	}

	tests := []struct {
		name     string
		value    float32
		segments []draw.Primitive
	}{
		{
			name:  "bad splits at the poor boundary",
			value: 0.1,
			segments: []draw.Primitive{
				draw.Quad{Bounds: core.Rectangle{X: 11, Y: 1, Width: 17, Height: 8}, Background: palette.DBMeterClip},
				draw.Quad{Bounds: core.Rectangle{X: 28, Y: 1, Width: 23, Height: 8}, Background: palette.DBMeterHigh},
			},
		},
		{
			name:  "poor reaches the center",
			value: 0.4,
			segments: []draw.Primitive{
				draw.Quad{Bounds: core.Rectangle{X: 41, Y: 1, Width: 10, Height: 8}, Background: palette.DBMeterHigh},
			},
		},
		{
			name:  "okay grows from the center",
			value: 0.6,
			segments: []draw.Primitive{
				draw.Quad{Bounds: core.Rectangle{X: 51, Y: 1, Width: 10, Height: 8}, Background: palette.DBMeterMed},
			},
		},
		{
			name:  "good splits at the good boundary",
			value: 0.92,
			segments: []draw.Primitive{
				draw.Quad{Bounds: core.Rectangle{X: 51, Y: 1, Width: 22, Height: 8}, Background: palette.DBMeterMed},
				draw.Quad{Bounds: core.Rectangle{X: 73, Y: 1, Width: 20, Height: 8}, Background: palette.DBMeterLow},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			meter := NewPhaseMeter()
			meter.SetValue(core.NewNormal(test.value))

			got := meter.Draw(bounds)

			want := []draw.Primitive{phaseBack(bounds)}
			want = append(want, test.segments...)
			want = append(want, centerLine)
			if diff := cmp.Diff(want, got, approx); diff != "" {
				t.Errorf("primitives mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPhaseMeterDrawVertical(t *testing.T) {
	meter := NewPhaseMeter().Orientation(Vertical)
	meter.SetValue(core.NewNormal(0.92))
	bounds := core.Rectangle{X: 0, Y: 0, Width: 10, Height: 102}

	got := meter.Draw(bounds)

	palette := style.DefaultPalette()
	want := []draw.Primitive{
		phaseBack(bounds),
		draw.Quad{Bounds: core.Rectangle{X: 1, Y: 28, Width: 8, Height: 23}, Background: palette.DBMeterMed},
		draw.Quad{Bounds: core.Rectangle{X: 1, Y: 8, Width: 8, Height: 20}, Background: palette.DBMeterLow},
		draw.Quad{
			Bounds:     core.Rectangle{X: 1, Y: 50, Width: 8, Height: 1},
			Background: palette.PhaseMeterCenterLine,
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("primitives mismatch (-want +got):\n%s", diff)
	}
}

// Narrower thresholds pull a value out of the bad tier.
func TestPhaseMeterThresholds(t *testing.T) {
	meter := NewPhaseMeter().Thresholds(0.3, 0.2)
	meter.SetValue(core.NewNormal(0.2))
	bounds := core.Rectangle{X: 0, Y: 0, Width: 102, Height: 10}

	got := meter.Draw(bounds)

	if len(got) != 3 {
		t.Fatalf("len(primitives) = %d, want 3", len(got))
	}
	want := draw.Quad{
		Bounds:     core.Rectangle{X: 21, Y: 1, Width: 30, Height: 8},
		Background: style.DefaultPalette().DBMeterHigh,
	}
	if diff := cmp.Diff(want, got[1], approx); diff != "" {
		t.Errorf("segment mismatch (-want +got):\n%s", diff)
	}
}

func TestPhaseMeterTickMarks(t *testing.T) {
	meter := NewPhaseMeter().TickMarks(marks.Center(marks.TierOne))
	bounds := core.Rectangle{X: 0, Y: 0, Width: 102, Height: 10}

	got := meter.Draw(bounds)

	if len(got) != 4 {
		t.Fatalf("len(primitives) = %d, want 4", len(got))
	}
	tier1 := style.DefaultPalette().TickTier1
	want := []draw.Primitive{
		draw.Quad{
			Bounds:     core.Rectangle{X: 50, Y: -6, Width: 2, Height: 4},
			Background: tier1,
		},
		draw.Quad{
			Bounds:     core.Rectangle{X: 50, Y: 12, Width: 2, Height: 4},
			Background: tier1,
		},
	}
	if diff := cmp.Diff(want, got[:2], approx); diff != "" {
		t.Errorf("tick marks mismatch (-want +got):\n%s", diff)
	}
}
