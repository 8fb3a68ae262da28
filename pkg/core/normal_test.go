package core

import (
	"math"
	"testing"
)

func TestNewNormalClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"zero", 0.0, 0.0},
		{"one", 1.0, 1.0},
		{"inside", 0.25, 0.25},
		{"below", -0.5, 0.0},
		{"above", 1.5, 1.0},
		{"nan", float32(math.NaN()), 0.0},
		{"negative infinity", float32(math.Inf(-1)), 0.0},
		{"positive infinity", float32(math.Inf(1)), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewNormal(tt.in).Value()
			if got != tt.want {
				t.Errorf("NewNormal(%v).Value() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalZeroValue(t *testing.T) {
	var n Normal
	if n.Value() != 0.0 {
		t.Errorf("zero value Normal = %v, want 0", n.Value())
	}
	if n != NormalMin() {
		t.Error("zero value Normal should equal NormalMin()")
	}
}

func TestNormalHelpers(t *testing.T) {
	n := NewNormal(0.25)

	if got := n.Inverse(); got != 0.75 {
		t.Errorf("Inverse() = %v, want 0.75", got)
	}
	if got := n.Scale(200.0); got != 50.0 {
		t.Errorf("Scale(200) = %v, want 50", got)
	}
	if got := n.ScaleInv(200.0); got != 150.0 {
		t.Errorf("ScaleInv(200) = %v, want 150", got)
	}
}

func TestNormalConstants(t *testing.T) {
	if NormalMin().Value() != 0.0 {
		t.Error("NormalMin should be 0")
	}
	if NormalCenter().Value() != 0.5 {
		t.Error("NormalCenter should be 0.5")
	}
	if NormalMax().Value() != 1.0 {
		t.Error("NormalMax should be 1")
	}
}

func TestNormalEquality(t *testing.T) {
	if NewNormal(0.3) != NewNormal(0.3) {
		t.Error("equal values should compare equal")
	}
	if NewNormal(0.3) == NewNormal(0.3000001) {
		t.Error("distinct bit patterns should compare unequal")
	}
}

func TestNormalParamUpdate(t *testing.T) {
	p := NewNormalParam(0.9, 0.25)

	if p.Default.Value() != 0.25 {
		t.Errorf("Default = %v, want 0.25", p.Default.Value())
	}

	p.Update(NewNormal(0.5))

	if p.Value.Value() != 0.5 {
		t.Errorf("Value after Update = %v, want 0.5", p.Value.Value())
	}
	if p.Default.Value() != 0.25 {
		t.Error("Update must not touch Default")
	}
}

func TestModulationRangeDefaults(t *testing.T) {
	m := NewModulationRange(NewNormal(0.2), NewNormal(0.8))

	if !m.FilledVisible {
		t.Error("new ModulationRange should be visible")
	}

	// Reversed ranges are legal.
	r := NewModulationRange(NewNormal(0.8), NewNormal(0.2))
	if r.Start.Value() != 0.8 || r.End.Value() != 0.2 {
		t.Errorf("reversed range got (%v, %v), want (0.8, 0.2)",
			r.Start.Value(), r.End.Value())
	}
}
