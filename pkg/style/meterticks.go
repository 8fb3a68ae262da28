package style

// MeterPlacement positions marks on the edges of a meter bar.
type MeterPlacement uint8

const (
	// MeterBothSides places marks on both long edges.
	MeterBothSides MeterPlacement = iota
	// MeterLeftOrTop places marks on the left or top edge only.
	MeterLeftOrTop
	// MeterRightOrBottom places marks on the right or bottom edge
	// only.
	MeterRightOrBottom
)

// MeterTickMarks styles the tick marks hanging off a meter bar.
type MeterTickMarks struct {
	Style     TickMarks
	Placement MeterPlacement

	// Offset separates the marks from the meter edge.
	Offset float32
}

// DefaultDBMeterTicks returns the dimmed tiers used by level meters.
func DefaultDBMeterTicks(p Palette) MeterTickMarks {
	return MeterTickMarks{
		Style: TickMarks{
			Tier1: TickLine(4.0, 2.0, p.DBMeterTickTier1),
			Tier2: TickLine(3.0, 2.0, p.DBMeterTickTier2),
			Tier3: TickLine(2.0, 1.0, p.DBMeterTickTier3),
		},
		Placement: MeterBothSides,
		Offset:    2.0,
	}
}

// DefaultBarTicks returns the standard tiers used by the phase meter.
func DefaultBarTicks(p Palette) MeterTickMarks {
	return MeterTickMarks{
		Style: TickMarks{
			Tier1: TickLine(4.0, 2.0, p.TickTier1),
			Tier2: TickLine(3.0, 2.0, p.TickTier2),
			Tier3: TickLine(2.0, 1.0, p.TickTier3),
		},
		Placement: MeterBothSides,
		Offset:    2.0,
	}
}

// MeterTextMarks styles the text labels hanging off a meter bar.
type MeterTextMarks struct {
	Style     TextMarks
	Placement MeterPlacement

	// Offset separates the labels from the meter edge.
	Offset float32
}

// DefaultMeterTextMarks returns labels off the left or top edge.
func DefaultMeterTextMarks(p Palette) MeterTextMarks {
	return MeterTextMarks{
		Style:     DefaultTextMarks(p),
		Placement: MeterLeftOrTop,
		Offset:    8.0,
	}
}
