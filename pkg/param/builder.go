package param

import "github.com/justyntemme/audioui/pkg/core"

// Builder provides a fluent API for creating parameters
type Builder struct {
	param     *Param
	defaultIn float32
}

// New creates a new parameter builder over the unit range
func New(name string) *Builder {
	return &Builder{
		param: &Param{
			Name:      name,
			ShortName: name,
			rng:       DefaultFloatRange(),
		},
	}
}

// ShortName sets the short name
func (b *Builder) ShortName(name string) *Builder {
	b.param.ShortName = name
	return b
}

// Unit sets the unit string
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Range sets the value range
func (b *Builder) Range(r Range) *Builder {
	b.param.rng = r
	return b
}

// Default sets the default value (in plain range, not normalized)
func (b *Builder) Default(value float32) *Builder {
	b.defaultIn = value
	return b
}

// Formatter sets custom value formatting and parsing
func (b *Builder) Formatter(format func(float32) string, parse func(string) (float32, error)) *Builder {
	b.param.formatFunc = format
	b.param.parseFunc = parse
	return b
}

// Build returns the configured parameter, initialized to its default
func (b *Builder) Build() *Param {
	b.param.defaultN = b.param.rng.ToNormal(b.defaultIn)
	b.param.SetNormal(b.param.defaultN)
	return b.param
}

// Common parameter helpers

// Gain creates a decibel gain parameter defaulting to 0 dB
func Gain(name string, minDB, maxDB float32) *Param {
	return New(name).
		Range(NewLogDBRange(minDB, maxDB, zeroDBPosition(minDB, maxDB))).
		Default(0.0).
		Unit("dB").
		Formatter(DecibelFormatter, DecibelParser).
		Build()
}

// Frequency creates a frequency parameter with an octave taper
func Frequency(name string, minHz, maxHz, defaultHz float32) *Param {
	return New(name).
		Range(NewFreqRange(minHz, maxHz)).
		Default(defaultHz).
		Unit("Hz").
		Formatter(FrequencyFormatter, FrequencyParser).
		Build()
}

// Pan creates a stereo pan parameter from -1 (left) to +1 (right)
func Pan(name string) *Param {
	return New(name).
		Range(NewFloatRange(-1.0, 1.0)).
		Default(0.0).
		Formatter(PanFormatter, PanParser).
		Build()
}

// Percent creates a percentage parameter from 0 to 100
func Percent(name string, defaultPct float32) *Param {
	return New(name).
		Range(NewFloatRange(0.0, 100.0)).
		Default(defaultPct).
		Unit("%").
		Formatter(PercentFormatter, PercentParser).
		Build()
}

// Steps creates a discrete stepped parameter
func Steps(name string, min, max, defaultValue int) *Param {
	return New(name).
		Range(NewIntRange(min, max)).
		Default(float32(defaultValue)).
		Build()
}

// BypassSwitch creates an on/off switch parameter defaulting to off
func BypassSwitch(name string) *Param {
	return New(name).
		Range(NewIntRange(0, 1)).
		Default(0.0).
		Formatter(OnOffFormatter, OnOffParser).
		Build()
}

// zeroDBPosition places 0 dB proportionally within [minDB, maxDB] so
// bipolar gain ranges stay tapered on both sides.
func zeroDBPosition(minDB, maxDB float32) core.Normal {
	if minDB < 0.0 && maxDB > 0.0 {
		return core.NewNormal(-minDB / (maxDB - minDB))
	}
	return core.NormalCenter()
}
