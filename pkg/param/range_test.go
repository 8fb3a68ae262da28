package param

import (
	"math"
	"testing"

	"github.com/justyntemme/audioui/pkg/core"
)

func TestFloatRangeMapping(t *testing.T) {
	r := NewFloatRange(-50.0, 50.0)

	tests := []struct {
		value float32
		want  float32
	}{
		{-50.0, 0.0},
		{50.0, 1.0},
		{0.0, 0.5},
		{-75.0, 0.0}, // constrained
		{75.0, 1.0},  // constrained
	}

	for _, tt := range tests {
		if got := r.ToNormal(tt.value).Value(); got != tt.want {
			t.Errorf("ToNormal(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}

	if got := r.ToValue(core.NewNormal(0.75)); got != 25.0 {
		t.Errorf("ToValue(0.75) = %v, want 25", got)
	}
}

func TestFloatRangeRoundTrip(t *testing.T) {
	r := NewFloatRange(20.0, 20000.0)

	for _, v := range []float32{20.0, 440.0, 1000.0, 12345.0, 20000.0} {
		rt := r.ToValue(r.ToNormal(v))
		if math.Abs(float64(rt-v)) > 1e-2 {
			t.Errorf("round trip of %v = %v", v, rt)
		}
	}
}

func TestFloatRangeInvertedIsEmpty(t *testing.T) {
	r := NewFloatRange(10.0, -10.0)

	if got := r.ToNormal(5.0).Value(); got != 0.0 {
		t.Errorf("inverted range ToNormal = %v, want 0", got)
	}
	if got := r.ToValue(core.NormalMax()); got != 0.0 {
		t.Errorf("inverted range ToValue = %v, want 0", got)
	}
}

func TestFloatRangeNaN(t *testing.T) {
	r := NewFloatRange(0.0, 10.0)
	if got := r.ToNormal(float32(math.NaN())).Value(); got != 0.0 {
		t.Errorf("ToNormal(NaN) = %v, want 0", got)
	}
}

// Scenario: IntRange(0, 5) behind a 200 px slider. Pointer positions map
// linearly to Normals; x=80 lands in bucket 2 of 6 and snaps to 2/5.
func TestIntRangeSnapScenario(t *testing.T) {
	r := NewIntRange(0, 5)

	tests := []struct {
		name   string
		normal float32
		want   float32
	}{
		{"left edge", 0.0, 0.0},
		{"right edge", 1.0, 1.0},
		{"x=80 of 200", 0.4, 0.4}, // 0.4*6 = 2.4, floor 2, 2/5
		{"just below bucket 3", 0.49, 0.4},
		{"bucket 3", 0.5, 0.6}, // 0.5*6 = 3, 3/5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.SnappedNormal(core.NewNormal(tt.normal)).Value()
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("SnappedNormal(%v) = %v, want %v", tt.normal, got, tt.want)
			}
		})
	}
}

func TestIntRangeSnapLandsOnGrid(t *testing.T) {
	r := NewIntRange(0, 5)

	for i := 0; i <= 100; i++ {
		n := core.NewNormal(float32(i) / 100.0)
		snapped := r.SnappedNormal(n).Value()

		onGrid := false
		for k := 0; k <= 5; k++ {
			if snapped == float32(k)/5.0 {
				onGrid = true
				break
			}
		}
		if !onGrid {
			t.Fatalf("SnappedNormal(%v) = %v is not on the 6 step grid", n.Value(), snapped)
		}
	}
}

func TestIntRangeValues(t *testing.T) {
	r := NewIntRange(-2, 2)

	if got := r.IntValue(core.NormalMin()); got != -2 {
		t.Errorf("IntValue(0) = %v, want -2", got)
	}
	if got := r.IntValue(core.NormalMax()); got != 2 {
		t.Errorf("IntValue(1) = %v, want 2", got)
	}
	if got := r.IntValue(core.NormalCenter()); got != 0 {
		t.Errorf("IntValue(0.5) = %v, want 0", got)
	}

	// Round trip every integer in the range.
	for v := -2; v <= 2; v++ {
		if got := r.IntValue(r.IntToNormal(v)); got != v {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}

func TestIntRangeDegenerate(t *testing.T) {
	r := NewIntRange(3, 3)

	if got := r.SnappedNormal(core.NewNormal(0.7)).Value(); got != 0.0 {
		t.Errorf("single step SnappedNormal = %v, want 0", got)
	}
	if got := r.IntValue(core.NormalMax()); got != 3 {
		t.Errorf("single step IntValue = %v, want 3", got)
	}

	empty := NewIntRange(5, 0)
	if got := empty.ToValue(core.NormalMax()); got != 0.0 {
		t.Errorf("inverted range ToValue = %v, want 0", got)
	}
}

// Scenario: LogDB(-12, +12, zero at 0.5). The zero position maps exactly
// to 0 dB and round trips stay within 1e-4.
func TestLogDBRangeScenario(t *testing.T) {
	r := NewLogDBRange(-12.0, 12.0, core.NormalCenter())

	if got := r.ToValue(r.ToNormal(0.0)); got != 0.0 {
		t.Errorf("round trip of 0 dB = %v, want exactly 0", got)
	}
	if got := r.ToValue(r.ToNormal(6.0)); math.Abs(float64(got)-6.0) > 1e-4 {
		t.Errorf("round trip of 6 dB = %v", got)
	}
	if got := r.ToValue(core.NormalMin()); got != -12.0 {
		t.Errorf("ToValue(0) = %v, want -12", got)
	}
	if got := r.ToValue(core.NormalMax()); got != 12.0 {
		t.Errorf("ToValue(1) = %v, want 12", got)
	}
	if got := r.ToNormal(0.0); got != core.NormalCenter() {
		t.Errorf("ToNormal(0 dB) = %v, want 0.5", got.Value())
	}
}

func TestLogDBRangeRoundTrips(t *testing.T) {
	r := NewLogDBRange(-64.0, 6.0, core.NewNormal(0.8))

	for _, v := range []float32{-64.0, -32.5, -12.0, -0.1, 0.0, 0.1, 3.0, 6.0} {
		rt := r.ToValue(r.ToNormal(v))
		if math.Abs(float64(rt-v)) > 1e-4 {
			t.Errorf("round trip of %v dB = %v", v, rt)
		}
	}
}

func TestLogDBRangeUnipolarLinear(t *testing.T) {
	// Ranges entirely on one side of 0 dB collapse to linear.
	r := NewLogDBRange(3.0, 12.0, core.NormalCenter())

	if got := r.ToNormal(3.0).Value(); got != 0.0 {
		t.Errorf("ToNormal(min) = %v, want 0", got)
	}
	if got := r.ToNormal(12.0).Value(); got != 1.0 {
		t.Errorf("ToNormal(max) = %v, want 1", got)
	}
	if got := r.ToNormal(7.5).Value(); got != 0.5 {
		t.Errorf("ToNormal(7.5) = %v, want 0.5", got)
	}

	neg := NewLogDBRange(-24.0, -6.0, core.NormalCenter())
	if got := neg.ToValue(core.NormalCenter()); got != -15.0 {
		t.Errorf("negative unipolar ToValue(0.5) = %v, want -15", got)
	}
}

func TestLogDBRangeZeroPositionEdges(t *testing.T) {
	// A zero position clamped to an endpoint must stay total.
	r := NewLogDBRange(-12.0, 12.0, core.NormalMin())

	if got := r.ToValue(core.NormalMin()); got != 0.0 {
		t.Errorf("ToValue(0) with zero at 0 = %v, want 0 dB", got)
	}
	if got := r.ToValue(core.NormalMax()); got != 12.0 {
		t.Errorf("ToValue(1) = %v, want 12", got)
	}
}

// Scenario: the default spectrum is exactly 10 octaves, so 640 Hz
// (5 octaves above 20 Hz) sits at the center.
func TestFreqRangeOctaveScenario(t *testing.T) {
	r := NewFreqRange(20.0, 20480.0)

	tests := []struct {
		hz   float32
		want float32
	}{
		{20.0, 0.0},
		{20480.0, 1.0},
		{640.0, 0.5},
		{40.0, 0.1},
		{80.0, 0.2},
	}

	for _, tt := range tests {
		got := r.ToNormal(tt.hz).Value()
		if math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("ToNormal(%v Hz) = %v, want %v", tt.hz, got, tt.want)
		}
	}
}

func TestFreqRangeClampsToSpectrum(t *testing.T) {
	r := NewFreqRange(5.0, 50000.0)

	if r.Min() != 20.0 {
		t.Errorf("Min() = %v, want 20", r.Min())
	}
	if r.Max() != 20480.0 {
		t.Errorf("Max() = %v, want 20480", r.Max())
	}
}

func TestFreqRangeRoundTrips(t *testing.T) {
	r := NewFreqRange(100.0, 10000.0)

	for _, v := range []float32{100.0, 440.0, 1000.0, 2500.0, 10000.0} {
		rt := r.ToValue(r.ToNormal(v))
		if math.Abs(float64(rt-v)) > float64(v)*1e-4 {
			t.Errorf("round trip of %v Hz = %v", v, rt)
		}
	}
}

func TestNormalParamConstructors(t *testing.T) {
	p := NewFloatRange(0.0, 10.0).NormalParam(5.0, 2.5)

	if p.Value.Value() != 0.5 {
		t.Errorf("Value = %v, want 0.5", p.Value.Value())
	}
	if p.Default.Value() != 0.25 {
		t.Errorf("Default = %v, want 0.25", p.Default.Value())
	}

	ip := NewIntRange(0, 4).NormalParam(2, 0)
	if ip.Value.Value() != 0.5 {
		t.Errorf("int Value = %v, want 0.5", ip.Value.Value())
	}
}
