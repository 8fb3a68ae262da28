package meter

import (
	"math"
	"sync/atomic"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/debug"
	"github.com/justyntemme/audioui/pkg/param"
)

// Reduction tracks how much gain a dynamics stage is removing, in dB,
// from matched input/output blocks. Rising reduction is followed
// instantly, falling reduction is smoothed by the release rate, and a
// held maximum feeds the reduction meter's peak line.
type Reduction struct {
	sampleRate float64
	release    float64 // dB per second
	holdTime   float64 // seconds

	reduction float64 // dB, writer side
	held      float64
	holdLeft  int

	reductionBits uint32
	heldBits      uint32
}

// NewReduction builds a reduction source with the default ballistics.
func NewReduction(sampleRate float64) *Reduction {
	debug.Debugf("meter: reduction source, sample rate %v", sampleRate)
	return &Reduction{
		sampleRate: sampleRate,
		release:    defaultReleaseDBPerS,
		holdTime:   defaultHoldSeconds,
	}
}

// SetRelease sets the release rate in dB per second.
func (m *Reduction) SetRelease(dbPerSecond float64) {
	m.release = dbPerSecond
}

// SetHoldTime sets the held-maximum time in seconds.
func (m *Reduction) SetHoldTime(seconds float64) {
	m.holdTime = seconds
}

// Process compares one block before and after the dynamics stage.
// Blocks of unequal length are ignored. Audio goroutine only.
func (m *Reduction) Process(input, output []float32) {
	if len(input) != len(output) || len(input) == 0 {
		return
	}
	inPeak, outPeak := 0.0, 0.0
	for i := range input {
		if abs := math.Abs(float64(input[i])); abs > inPeak {
			inPeak = abs
		}
		if abs := math.Abs(float64(output[i])); abs > outPeak {
			outPeak = abs
		}
	}

	raw := 0.0
	if inPeak > 0 && outPeak > 0 {
		raw = 20.0 * math.Log10(inPeak/outPeak)
		if raw < 0 {
			raw = 0
		}
	}

	dt := float64(len(input)) / m.sampleRate
	released := m.reduction - m.release*dt
	if released < 0 {
		released = 0
	}
	if raw > released {
		m.reduction = raw
	} else {
		m.reduction = released
	}

	if m.reduction >= m.held {
		m.held = m.reduction
		m.holdLeft = int(m.holdTime * m.sampleRate)
	} else {
		m.holdLeft -= len(input)
		if m.holdLeft <= 0 {
			m.held = m.reduction
			m.holdLeft = 0
		}
	}

	atomic.StoreUint32(&m.reductionBits, math.Float32bits(float32(m.reduction)))
	atomic.StoreUint32(&m.heldBits, math.Float32bits(float32(m.held)))
}

// Reduction returns the current gain reduction in dB (>= 0).
func (m *Reduction) Reduction() float32 {
	return math.Float32frombits(atomic.LoadUint32(&m.reductionBits))
}

// Held returns the held maximum reduction in dB.
func (m *Reduction) Held() float32 {
	return math.Float32frombits(atomic.LoadUint32(&m.heldBits))
}

// Bar maps the current reduction onto the meter's dB span.
func (m *Reduction) Bar(r param.FloatRange) core.Normal {
	return r.ToNormal(m.Reduction())
}

// HeldBar maps the held maximum onto the meter's dB span.
func (m *Reduction) HeldBar(r param.FloatRange) core.Normal {
	return r.ToNormal(m.Held())
}

// Reset clears the tracker.
func (m *Reduction) Reset() {
	m.reduction = 0
	m.held = 0
	m.holdLeft = 0
	atomic.StoreUint32(&m.reductionBits, 0)
	atomic.StoreUint32(&m.heldBits, 0)
}
