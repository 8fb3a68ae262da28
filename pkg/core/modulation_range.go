package core

// ModulationRange is a band between two Normals drawn over a widget,
// commonly used to visualize an automation or modulation envelope.
// Start may exceed End; a reversed band renders in the inverse color.
type ModulationRange struct {
	Start Normal
	End   Normal

	// FilledVisible hides the band when false while keeping the range
	// attached to the widget.
	FilledVisible bool
}

// NewModulationRange builds a visible ModulationRange.
func NewModulationRange(start, end Normal) ModulationRange {
	return ModulationRange{
		Start:         start,
		End:           end,
		FilledVisible: true,
	}
}
