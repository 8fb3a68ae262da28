package meter

import (
	"math"
	"sync/atomic"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/debug"
	"github.com/justyntemme/audioui/pkg/param"
)

// Ballistics defaults.
const (
	defaultHoldSeconds    = 3.0
	defaultReleaseDBPerS  = 20.0
	defaultRMSWindowMilli = 300.0
)

// Peak tracks the absolute peak of a signal with instant attack, an
// exponential release and a held peak. Crossing 0 dBFS latches the
// clip indicator until ResetClip.
type Peak struct {
	sampleRate float64
	release    float64 // dB per second
	holdTime   float64 // seconds

	level    float64 // linear, writer side
	hold     float64
	holdLeft int

	levelBits uint32
	holdBits  uint32
	clipBits  uint32
}

// NewPeak builds a peak source with the default ballistics (20 dB/s
// release, 3 s hold).
func NewPeak(sampleRate float64) *Peak {
	debug.Debugf("meter: peak source, sample rate %v", sampleRate)
	return &Peak{
		sampleRate: sampleRate,
		release:    defaultReleaseDBPerS,
		holdTime:   defaultHoldSeconds,
	}
}

// SetRelease sets the release rate in dB per second.
func (m *Peak) SetRelease(dbPerSecond float64) {
	m.release = dbPerSecond
}

// SetHoldTime sets the held-peak time in seconds.
func (m *Peak) SetHoldTime(seconds float64) {
	m.holdTime = seconds
}

// Process folds one block of samples into the meter. Audio goroutine
// only.
func (m *Peak) Process(block []float32) {
	if len(block) == 0 {
		return
	}
	blockPeak := 0.0
	for _, s := range block {
		if abs := math.Abs(float64(s)); abs > blockPeak {
			blockPeak = abs
		}
	}

	dt := float64(len(block)) / m.sampleRate
	m.level *= math.Pow(10.0, -m.release*dt/20.0)
	if blockPeak > m.level {
		m.level = blockPeak
	}

	if blockPeak >= m.hold {
		m.hold = blockPeak
		m.holdLeft = int(m.holdTime * m.sampleRate)
	} else {
		m.holdLeft -= len(block)
		if m.holdLeft <= 0 {
			m.hold = m.level
			m.holdLeft = 0
		}
	}

	if blockPeak >= 1.0 {
		atomic.StoreUint32(&m.clipBits, 1)
	}
	atomic.StoreUint32(&m.levelBits, math.Float32bits(float32(m.level)))
	atomic.StoreUint32(&m.holdBits, math.Float32bits(float32(m.hold)))
}

// Level returns the current peak level in dBFS. Silence reads as -Inf.
func (m *Peak) Level() float32 {
	return amplitudeDB(math.Float32frombits(atomic.LoadUint32(&m.levelBits)))
}

// Hold returns the held peak level in dBFS.
func (m *Peak) Hold() float32 {
	return amplitudeDB(math.Float32frombits(atomic.LoadUint32(&m.holdBits)))
}

// Clipped reports whether the signal reached 0 dBFS since the last
// ResetClip.
func (m *Peak) Clipped() bool {
	return atomic.LoadUint32(&m.clipBits) != 0
}

// ResetClip clears the clip latch.
func (m *Peak) ResetClip() {
	atomic.StoreUint32(&m.clipBits, 0)
}

// Reset clears the meter state.
func (m *Peak) Reset() {
	m.level = 0
	m.hold = 0
	m.holdLeft = 0
	atomic.StoreUint32(&m.levelBits, 0)
	atomic.StoreUint32(&m.holdBits, 0)
	atomic.StoreUint32(&m.clipBits, 0)
}

// Bar maps the current level onto the dB meter's range.
func (m *Peak) Bar(r param.LogDBRange) core.Normal {
	return r.ToNormal(m.Level())
}

// HoldBar maps the held peak onto the dB meter's range.
func (m *Peak) HoldBar(r param.LogDBRange) core.Normal {
	return r.ToNormal(m.Hold())
}

// PeakRMS pairs the peak tracker with a windowed RMS level, the
// two-value display the dB meter draws as bar plus peak line.
type PeakRMS struct {
	Peak

	window  []float64
	pos     int
	count   int
	sum     float64
	rmsBits uint32
}

// NewPeakRMS builds a combined source with the given RMS window. A
// window of zero samples gets the 300 ms default.
func NewPeakRMS(sampleRate float64, windowSamples int) *PeakRMS {
	if windowSamples <= 0 {
		windowSamples = int(defaultRMSWindowMilli / 1000.0 * sampleRate)
	}
	m := &PeakRMS{
		Peak:   *NewPeak(sampleRate),
		window: make([]float64, windowSamples),
	}
	return m
}

// Process folds one block into both the peak and the RMS window.
func (m *PeakRMS) Process(block []float32) {
	m.Peak.Process(block)
	for _, s := range block {
		old := m.window[m.pos]
		m.sum -= old * old
		v := float64(s)
		m.window[m.pos] = v
		m.sum += v * v
		m.pos = (m.pos + 1) % len(m.window)
		if m.count < len(m.window) {
			m.count++
		}
	}
	rms := 0.0
	// The running sum can drift slightly negative on silence.
	if s := m.sum / float64(max(m.count, 1)); s > 0 {
		rms = math.Sqrt(s)
	}
	atomic.StoreUint32(&m.rmsBits, math.Float32bits(float32(rms)))
}

// RMS returns the windowed RMS level in dBFS.
func (m *PeakRMS) RMS() float32 {
	return amplitudeDB(math.Float32frombits(atomic.LoadUint32(&m.rmsBits)))
}

// Reset clears both trackers.
func (m *PeakRMS) Reset() {
	m.Peak.Reset()
	for i := range m.window {
		m.window[i] = 0
	}
	m.pos = 0
	m.count = 0
	m.sum = 0
	atomic.StoreUint32(&m.rmsBits, 0)
}

// Bar maps the RMS level onto the dB meter's range.
func (m *PeakRMS) Bar(r param.LogDBRange) core.Normal {
	return r.ToNormal(m.RMS())
}

// PeakBar maps the held peak onto the dB meter's range, for the peak
// line above the RMS bar.
func (m *PeakRMS) PeakBar(r param.LogDBRange) core.Normal {
	return r.ToNormal(m.Hold())
}

// amplitudeDB converts a linear amplitude to dBFS, with silence
// reading as -Inf rather than NaN.
func amplitudeDB(amp float32) float32 {
	if amp <= 0 {
		return float32(math.Inf(-1))
	}
	return core.AmplitudeToDB(amp)
}
