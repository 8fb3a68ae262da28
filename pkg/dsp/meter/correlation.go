package meter

import (
	"math"
	"sync/atomic"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/debug"
)

// Status is the qualitative reading of a stereo correlation.
type Status uint8

const (
	// StatusOutOfPhase means the channels mostly cancel in mono.
	StatusOutOfPhase Status = iota
	// StatusPoor means significant cancellation.
	StatusPoor
	// StatusAcceptable means wide but mono-safe material.
	StatusAcceptable
	// StatusGood means mostly correlated channels.
	StatusGood
	// StatusExcellent means near-mono correlation.
	StatusExcellent
)

// String returns a display name for the status.
func (s Status) String() string {
	switch s {
	case StatusOutOfPhase:
		return "out of phase"
	case StatusPoor:
		return "poor"
	case StatusAcceptable:
		return "acceptable"
	case StatusGood:
		return "good"
	case StatusExcellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// classify buckets a correlation coefficient.
func classify(phase float64) Status {
	switch {
	case phase > 0.9:
		return StatusExcellent
	case phase > 0.5:
		return StatusGood
	case phase > -0.5:
		return StatusAcceptable
	case phase > -0.9:
		return StatusPoor
	default:
		return StatusOutOfPhase
	}
}

// Correlation measures the zero-lag normalized cross-correlation of a
// stereo signal over a sliding window, smoothed exponentially, for
// the phase meter.
type Correlation struct {
	left      []float64
	right     []float64
	pos       int
	count     int
	smoothing float64

	phase     float64 // writer side
	phaseBits uint32
}

// NewCorrelation builds a correlation source over the given window.
func NewCorrelation(windowSamples int) *Correlation {
	if windowSamples <= 0 {
		windowSamples = 1024
	}
	debug.Debugf("meter: correlation source, window %d", windowSamples)
	return &Correlation{
		left:      make([]float64, windowSamples),
		right:     make([]float64, windowSamples),
		smoothing: 0.9,
	}
}

// SetSmoothing sets the exponential averaging factor in [0, 1); 0
// follows each window instantly.
func (m *Correlation) SetSmoothing(factor float64) {
	if factor >= 0 && factor < 1 {
		m.smoothing = factor
	}
}

// Process folds one stereo block into the window. Blocks of unequal
// channel length are ignored. Audio goroutine only.
func (m *Correlation) Process(left, right []float32) {
	if len(left) != len(right) || len(left) == 0 {
		return
	}
	for i := range left {
		m.left[m.pos] = float64(left[i])
		m.right[m.pos] = float64(right[i])
		m.pos = (m.pos + 1) % len(m.left)
		if m.count < len(m.left) {
			m.count++
		}
	}
	if m.count < len(m.left) {
		return
	}
	corr := m.correlate()
	m.phase = m.phase*m.smoothing + corr*(1.0-m.smoothing)
	atomic.StoreUint32(&m.phaseBits, math.Float32bits(float32(m.phase)))
}

// correlate computes the Pearson coefficient over the full window.
func (m *Correlation) correlate() float64 {
	n := float64(m.count)
	meanL, meanR := 0.0, 0.0
	for i := 0; i < m.count; i++ {
		meanL += m.left[i]
		meanR += m.right[i]
	}
	meanL /= n
	meanR /= n

	num, varL, varR := 0.0, 0.0, 0.0
	for i := 0; i < m.count; i++ {
		dl := m.left[i] - meanL
		dr := m.right[i] - meanR
		num += dl * dr
		varL += dl * dl
		varR += dr * dr
	}

	if varL == 0 || varR == 0 {
		if varL == 0 && varR == 0 {
			// Both channels silent counts as correlated.
			return 1.0
		}
		return 0.0
	}
	corr := num / (math.Sqrt(varL) * math.Sqrt(varR))
	return math.Max(-1.0, math.Min(1.0, corr))
}

// Phase returns the smoothed correlation in [-1, 1].
func (m *Correlation) Phase() float32 {
	return math.Float32frombits(atomic.LoadUint32(&m.phaseBits))
}

// Bar maps the phase onto the meter axis: -1 at 0, +1 at 1.
func (m *Correlation) Bar() core.Normal {
	return core.NewNormal((m.Phase() + 1.0) / 2.0)
}

// Status returns the qualitative reading of the current phase.
func (m *Correlation) Status() Status {
	return classify(float64(m.Phase()))
}

// Reset clears the window and the smoothed phase.
func (m *Correlation) Reset() {
	for i := range m.left {
		m.left[i] = 0
		m.right[i] = 0
	}
	m.pos = 0
	m.count = 0
	m.phase = 0
	atomic.StoreUint32(&m.phaseBits, 0)
}
