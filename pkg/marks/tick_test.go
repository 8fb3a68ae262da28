package marks

import (
	"testing"

	"github.com/justyntemme/audioui/pkg/core"
)

func normals(vs ...float32) []core.Normal {
	ns := make([]core.Normal, len(vs))
	for i, v := range vs {
		ns[i] = core.NewNormal(v)
	}
	return ns
}

func equalNormals(a, b []core.Normal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCenterMinMax(t *testing.T) {
	g := Center(TierOne)
	if g.Len() != 1 {
		t.Errorf("Center: len = %d, want 1", g.Len())
	}
	if !equalNormals(g.Tier1(), normals(0.5)) {
		t.Errorf("Center: tier 1 = %v, want [0.5]", g.Tier1())
	}

	g = MinMax(TierTwo)
	if !equalNormals(g.Tier2(), normals(0.0, 1.0)) {
		t.Errorf("MinMax: tier 2 = %v, want [0 1]", g.Tier2())
	}

	g = MinMaxAndCenter(TierOne, TierTwo)
	if !equalNormals(g.Tier1(), normals(0.0, 1.0)) {
		t.Errorf("MinMaxAndCenter: tier 1 = %v, want [0 1]", g.Tier1())
	}
	if !equalNormals(g.Tier2(), normals(0.5)) {
		t.Errorf("MinMaxAndCenter: tier 2 = %v, want [0.5]", g.Tier2())
	}
}

func TestEvenlySpaced(t *testing.T) {
	tests := []struct {
		n    int
		want []core.Normal
	}{
		{0, nil},
		{1, normals(0.0)},
		{2, normals(0.0, 1.0)},
		{3, normals(0.0, 0.5, 1.0)},
		{5, normals(0.0, 0.25, 0.5, 0.75, 1.0)},
	}

	for _, tt := range tests {
		g := EvenlySpaced(tt.n, TierOne)
		if g.Len() != len(tt.want) {
			t.Errorf("EvenlySpaced(%d): len = %d, want %d", tt.n, g.Len(), len(tt.want))
		}
		if !equalNormals(g.Tier1(), tt.want) {
			t.Errorf("EvenlySpaced(%d) = %v, want %v", tt.n, g.Tier1(), tt.want)
		}
	}
}

func TestSubdivided(t *testing.T) {
	g := Subdivided(1, 1, 1)

	if g.Len() != 7 {
		t.Fatalf("len = %d, want 7", g.Len())
	}
	if !equalNormals(g.Tier1(), normals(0.5)) {
		t.Errorf("tier 1 = %v, want [0.5]", g.Tier1())
	}
	if !equalNormals(g.Tier2(), normals(0.25, 0.75)) {
		t.Errorf("tier 2 = %v, want [0.25 0.75]", g.Tier2())
	}
	if !equalNormals(g.Tier3(), normals(0.375, 0.125, 0.875, 0.625)) {
		t.Errorf("tier 3 = %v, want [0.375 0.125 0.875 0.625]", g.Tier3())
	}
}

func TestSubdividedTierOneOnly(t *testing.T) {
	g := Subdivided(3, 0, 0)

	if !equalNormals(g.Tier1(), normals(0.25, 0.5, 0.75)) {
		t.Errorf("tier 1 = %v, want [0.25 0.5 0.75]", g.Tier1())
	}
	if g.Tier2() != nil || g.Tier3() != nil {
		t.Errorf("tier 2 = %v, tier 3 = %v, want none", g.Tier2(), g.Tier3())
	}
}

func TestSubdividedWithSides(t *testing.T) {
	g := SubdividedWithSides(1, 0, 0, TierTwo)

	if !equalNormals(g.Tier1(), normals(0.5)) {
		t.Errorf("tier 1 = %v, want [0.5]", g.Tier1())
	}
	if !equalNormals(g.Tier2(), normals(0.0, 1.0)) {
		t.Errorf("tier 2 = %v, want [0 1]", g.Tier2())
	}
}

func TestSubdividedNegativeCounts(t *testing.T) {
	g := Subdivided(-1, -2, -3)

	if !equalNormals(g.Tier1(), normals(0.5)) {
		t.Errorf("tier 1 = %v, want [0.5]", g.Tier1())
	}
	if g.Len() != 1 {
		t.Errorf("len = %d, want 1", g.Len())
	}
}

func TestPositionsSorted(t *testing.T) {
	got := Subdivided(1, 1, 1).Positions()
	want := normals(0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875)

	if !equalNormals(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
}

func TestFromTicksBuckets(t *testing.T) {
	g := FromTicks([]Tick{
		{Position: core.NewNormal(0.1), Tier: TierThree},
		{Position: core.NewNormal(0.2), Tier: TierOne},
		{Position: core.NewNormal(0.3), Tier: TierTwo},
		{Position: core.NewNormal(0.4), Tier: TierOne},
	})

	if g.Len() != 4 {
		t.Errorf("len = %d, want 4", g.Len())
	}
	if len(g.Tier1()) != 2 || len(g.Tier2()) != 1 || len(g.Tier3()) != 1 {
		t.Errorf("bucket sizes = %d/%d/%d, want 2/1/1",
			len(g.Tier1()), len(g.Tier2()), len(g.Tier3()))
	}
}
