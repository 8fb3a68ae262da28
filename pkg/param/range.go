package param

import (
	"math"

	"github.com/justyntemme/audioui/pkg/core"
)

// Range maps bidirectionally between a float domain value and a Normal.
// Implementations are total: out-of-range values constrain to the range
// and NaN behaves as 0.
type Range interface {
	// ToNormal maps a domain value to a Normal.
	ToNormal(value float32) core.Normal
	// ToValue maps a Normal back to a domain value.
	ToValue(n core.Normal) float32
}

// FloatRange is a continuous linear range of values.
//
// The zero value is an empty range whose maps return 0, which is also
// what a constructor call with min > max produces.
type FloatRange struct {
	min       float32
	max       float32
	span      float32
	spanRecip float32
}

// NewFloatRange builds a linear range over [min, max].
func NewFloatRange(min, max float32) FloatRange {
	if !(min <= max) {
		return FloatRange{}
	}
	r := FloatRange{min: min, max: max, span: max - min}
	if r.span > 0.0 {
		r.spanRecip = 1.0 / r.span
	}
	return r
}

// DefaultFloatRange returns the unit range [0, 1].
func DefaultFloatRange() FloatRange {
	return NewFloatRange(0.0, 1.0)
}

// Min returns the minimum value.
func (r FloatRange) Min() float32 { return r.min }

// Max returns the maximum value.
func (r FloatRange) Max() float32 { return r.max }

// ToNormal maps a value to a Normal, constraining it into the range.
func (r FloatRange) ToNormal(value float32) core.Normal {
	return core.NewNormal((r.constrain(value) - r.min) * r.spanRecip)
}

// ToValue maps a Normal back to a value by linear interpolation.
func (r FloatRange) ToValue(n core.Normal) float32 {
	return n.Scale(r.span) + r.min
}

// NormalParam builds parameter state with both values mapped through the
// range.
func (r FloatRange) NormalParam(value, defaultValue float32) core.NormalParam {
	return core.NormalParam{
		Value:   r.ToNormal(value),
		Default: r.ToNormal(defaultValue),
	}
}

func (r FloatRange) constrain(value float32) float32 {
	if math.IsNaN(float64(value)) || value <= r.min {
		return r.min
	}
	if value >= r.max {
		return r.max
	}
	return value
}

// IntRange is a discrete range of integer steps. A Normal maps onto the
// half-open partition of [0, 1] into max-min+1 equal buckets; snapping
// moves a Normal to its bucket's grid position.
type IntRange struct {
	min   int
	max   int
	steps int
}

// NewIntRange builds a discrete range over [min, max]. min > max
// produces an empty range whose maps return 0.
func NewIntRange(min, max int) IntRange {
	if min > max {
		return IntRange{}
	}
	return IntRange{min: min, max: max, steps: max - min}
}

// Min returns the minimum value.
func (r IntRange) Min() int { return r.min }

// Max returns the maximum value.
func (r IntRange) Max() int { return r.max }

// Steps returns the number of steps above the minimum (max - min).
func (r IntRange) Steps() int { return r.steps }

// step buckets a Normal: floor(n * (steps+1)) clamped to [0, steps].
func (r IntRange) step(n core.Normal) int {
	if r.steps <= 0 {
		return 0
	}
	k := int(math.Floor(float64(n.Value()) * float64(r.steps+1)))
	if k < 0 {
		k = 0
	}
	if k > r.steps {
		k = r.steps
	}
	return k
}

// SnappedNormal rounds a Normal to the grid position of its bucket,
// one of {0, 1/steps, ..., 1}.
func (r IntRange) SnappedNormal(n core.Normal) core.Normal {
	if r.steps <= 0 {
		return core.NormalMin()
	}
	return core.NewNormal(float32(r.step(n)) / float32(r.steps))
}

// IntToNormal maps an integer value to its exact grid Normal.
func (r IntRange) IntToNormal(value int) core.Normal {
	if r.steps <= 0 {
		return core.NormalMin()
	}
	if value < r.min {
		value = r.min
	}
	if value > r.max {
		value = r.max
	}
	return core.NewNormal(float32(value-r.min) / float32(r.steps))
}

// IntValue maps a Normal to the integer value of its bucket.
func (r IntRange) IntValue(n core.Normal) int {
	return r.min + r.step(n)
}

// ToNormal maps a float value to a grid Normal by rounding to the
// nearest step.
func (r IntRange) ToNormal(value float32) core.Normal {
	if math.IsNaN(float64(value)) {
		value = 0.0
	}
	return r.IntToNormal(int(math.Round(float64(value))))
}

// ToValue maps a Normal to the float form of its bucket's value.
func (r IntRange) ToValue(n core.Normal) float32 {
	return float32(r.IntValue(n))
}

// NormalParam builds parameter state with both values snapped to the
// grid.
func (r IntRange) NormalParam(value, defaultValue int) core.NormalParam {
	return core.NormalParam{
		Value:   r.IntToNormal(value),
		Default: r.IntToNormal(defaultValue),
	}
}

// LogDBRange is a decibel range with a square-law taper on each side of
// 0 dB. The zero position is the Normal that maps exactly to 0 dB.
//
// A range lying entirely on one side of 0 dB has no meaningful zero
// position and degrades to a plain linear map.
type LogDBRange struct {
	minDB   float32
	maxDB   float32
	zeroPos core.Normal
	lin     FloatRange
	bipolar bool
}

// NewLogDBRange builds a decibel range over [minDB, maxDB] with the
// given 0 dB position. minDB > maxDB produces an empty range.
func NewLogDBRange(minDB, maxDB float32, zeroPosition core.Normal) LogDBRange {
	if !(minDB <= maxDB) {
		return LogDBRange{}
	}
	r := LogDBRange{
		minDB:   minDB,
		maxDB:   maxDB,
		zeroPos: zeroPosition,
	}
	if minDB < 0.0 && maxDB > 0.0 {
		r.bipolar = true
	} else {
		r.lin = NewFloatRange(minDB, maxDB)
	}
	return r
}

// DefaultLogDBRange returns the range [-12 dB, +12 dB] with 0 dB at the
// center.
func DefaultLogDBRange() LogDBRange {
	return NewLogDBRange(-12.0, 12.0, core.NormalCenter())
}

// Min returns the minimum value in dB.
func (r LogDBRange) Min() float32 { return r.minDB }

// Max returns the maximum value in dB.
func (r LogDBRange) Max() float32 { return r.maxDB }

// ZeroPosition returns the Normal that maps to 0 dB.
func (r LogDBRange) ZeroPosition() core.Normal { return r.zeroPos }

// ToNormal maps a dB value to a Normal.
func (r LogDBRange) ToNormal(value float32) core.Normal {
	if !r.bipolar {
		return r.lin.ToNormal(value)
	}

	value = r.constrain(value)
	zero := r.zeroPos.Value()

	switch {
	case value == 0.0:
		return r.zeroPos
	case value < 0.0:
		neg := sqrt32(value / r.minDB)
		return core.NewNormal((1.0 - neg) * zero)
	default:
		pos := sqrt32(value / r.maxDB)
		return core.NewNormal(pos*(1.0-zero) + zero)
	}
}

// ToValue maps a Normal back to dB. The zero position maps to exactly
// 0 dB.
func (r LogDBRange) ToValue(n core.Normal) float32 {
	if !r.bipolar {
		return r.lin.ToValue(n)
	}

	zero := r.zeroPos.Value()
	v := n.Value()

	switch {
	case v == zero:
		return 0.0
	case v < zero:
		neg := 1.0 - v/zero
		return neg * neg * r.minDB
	default:
		pos := (v - zero) / (1.0 - zero)
		return pos * pos * r.maxDB
	}
}

// NormalParam builds parameter state with both values mapped through the
// range.
func (r LogDBRange) NormalParam(value, defaultValue float32) core.NormalParam {
	return core.NormalParam{
		Value:   r.ToNormal(value),
		Default: r.ToNormal(defaultValue),
	}
}

func (r LogDBRange) constrain(value float32) float32 {
	if math.IsNaN(float64(value)) || value <= r.minDB {
		return r.minDB
	}
	if value >= r.maxDB {
		return r.maxDB
	}
	return value
}

// The audible spectrum covered by FreqRange, exactly 10 octaves.
const (
	MinSpectrumHz float32 = 20.0
	MaxSpectrumHz float32 = 20480.0
)

// FreqRange is a frequency range with an octave taper: equal spans of
// the Normal cover equal pitch intervals.
type FreqRange struct {
	min         float32
	max         float32
	minSpectrum core.Normal
	spread      float32
	spreadRecip float32
}

// NewFreqRange builds a frequency range over [minHz, maxHz], both
// clamped into the audible spectrum. minHz > maxHz produces an empty
// range.
func NewFreqRange(minHz, maxHz float32) FreqRange {
	if !(minHz <= maxHz) {
		return FreqRange{}
	}
	minHz = clampSpectrum(minHz)
	maxHz = clampSpectrum(maxHz)

	minSpectrum := spectrumNormal(minHz)
	maxSpectrum := spectrumNormal(maxHz)

	r := FreqRange{
		min:         minHz,
		max:         maxHz,
		minSpectrum: minSpectrum,
		spread:      maxSpectrum.Value() - minSpectrum.Value(),
	}
	if r.spread > 0.0 {
		r.spreadRecip = 1.0 / r.spread
	}
	return r
}

// DefaultFreqRange returns the full 20 Hz to 20.48 kHz spectrum.
func DefaultFreqRange() FreqRange {
	return NewFreqRange(MinSpectrumHz, MaxSpectrumHz)
}

// Min returns the minimum frequency in Hz.
func (r FreqRange) Min() float32 { return r.min }

// Max returns the maximum frequency in Hz.
func (r FreqRange) Max() float32 { return r.max }

// ToNormal maps a frequency in Hz to a Normal.
func (r FreqRange) ToNormal(value float32) core.Normal {
	value = r.constrain(value)
	sn := spectrumNormal(value)
	return core.NewNormal((sn.Value() - r.minSpectrum.Value()) * r.spreadRecip)
}

// ToValue maps a Normal back to a frequency in Hz.
func (r FreqRange) ToValue(n core.Normal) float32 {
	if r.max <= 0.0 {
		return 0.0
	}
	sn := core.NewNormal(n.Scale(r.spread) + r.minSpectrum.Value())
	return spectrumFreq(sn)
}

// NormalParam builds parameter state with both values mapped through the
// range.
func (r FreqRange) NormalParam(value, defaultValue float32) core.NormalParam {
	return core.NormalParam{
		Value:   r.ToNormal(value),
		Default: r.ToNormal(defaultValue),
	}
}

func (r FreqRange) constrain(value float32) float32 {
	if math.IsNaN(float64(value)) || value <= r.min {
		return r.min
	}
	if value >= r.max {
		return r.max
	}
	return value
}

// spectrumNormal maps a frequency to its position in the 10 octave
// spectrum: (log2(hz/40) + 1) / 10, so 20 Hz -> 0 and 20480 Hz -> 1.
func spectrumNormal(hz float32) core.Normal {
	return core.NewNormal((log2f(hz/40.0) + 1.0) * 0.1)
}

// spectrumFreq is the inverse of spectrumNormal: 40 * 2^(10n - 1).
func spectrumFreq(n core.Normal) float32 {
	return 40.0 * exp2f(n.Scale(10.0)-1.0)
}

func clampSpectrum(hz float32) float32 {
	if hz < MinSpectrumHz {
		return MinSpectrumHz
	}
	if hz > MaxSpectrumHz {
		return MaxSpectrumHz
	}
	return hz
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func log2f(v float32) float32 {
	return float32(math.Log2(float64(v)))
}

func exp2f(v float32) float32 {
	return float32(math.Exp2(float64(v)))
}
