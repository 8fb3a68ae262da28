package core

// NormalParam is the logical state of one scalar parameter: the current
// value plus the default value targeted by a double-click. The default is
// immutable across all state transitions.
type NormalParam struct {
	Value   Normal
	Default Normal
}

// NewNormalParam builds a NormalParam with both values clamped.
func NewNormalParam(value, defaultValue float32) NormalParam {
	return NormalParam{
		Value:   NewNormal(value),
		Default: NewNormal(defaultValue),
	}
}

// Update sets the current value, leaving the default untouched.
func (p *NormalParam) Update(value Normal) {
	p.Value = value
}
