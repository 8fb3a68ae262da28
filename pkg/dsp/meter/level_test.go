package meter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/audioui/pkg/core"
	"github.com/justyntemme/audioui/pkg/param"
)

func constBlock(value float32, n int) []float32 {
	block := make([]float32, n)
	for i := range block {
		block[i] = value
	}
	return block
}

func TestPeakLevel(t *testing.T) {
	m := NewPeak(48000)
	m.Process(constBlock(0.5, 512))

	assert.InDelta(t, -6.0206, m.Level(), 0.01, "half scale is -6 dBFS")
	assert.False(t, m.Clipped())
}

func TestPeakRelease(t *testing.T) {
	m := NewPeak(48000)
	m.SetRelease(20.0)
	m.SetHoldTime(0.0)
	m.Process(constBlock(1.0, 480))

	require.InDelta(t, 0.0, m.Level(), 0.01)

	// One second of silence at 20 dB/s.
	for i := 0; i < 100; i++ {
		m.Process(constBlock(0.0, 480))
	}
	assert.InDelta(t, -20.0, m.Level(), 0.5)
}

func TestPeakHold(t *testing.T) {
	m := NewPeak(48000)
	m.SetHoldTime(1.0)
	m.Process(constBlock(0.8, 480))

	// Half the hold time in silence: the held peak must survive.
	for i := 0; i < 50; i++ {
		m.Process(constBlock(0.0, 480))
	}
	assert.InDelta(t, -1.938, m.Hold(), 0.01, "hold keeps the 0.8 peak")
	assert.Less(t, m.Level(), m.Hold())

	// Past the hold time it falls back to the released level.
	for i := 0; i < 60; i++ {
		m.Process(constBlock(0.0, 480))
	}
	assert.InDelta(t, float64(m.Level()), float64(m.Hold()), 0.01)
}

func TestPeakClipLatch(t *testing.T) {
	m := NewPeak(48000)
	m.Process(constBlock(1.2, 64))
	assert.True(t, m.Clipped())

	m.Process(constBlock(0.1, 64))
	assert.True(t, m.Clipped(), "clip stays latched")

	m.ResetClip()
	assert.False(t, m.Clipped())
}

func TestPeakBarSilence(t *testing.T) {
	m := NewPeak(48000)
	r := param.NewLogDBRange(-64, 3, core.NewNormal(0.9))

	assert.True(t, math.IsInf(float64(m.Level()), -1))
	assert.Equal(t, float32(0), m.Bar(r).Value(), "silence pins the bar at 0")
}

func TestPeakRMSSine(t *testing.T) {
	const sr = 48000
	m := NewPeakRMS(sr, 4800)

	block := make([]float32, 4800)
	for i := range block {
		block[i] = float32(0.5 * math.Sin(2*math.Pi*1000*float64(i)/sr))
	}
	m.Process(block)

	// RMS of a 0.5 sine is 0.5/sqrt(2), about -9 dBFS.
	assert.InDelta(t, -9.03, m.RMS(), 0.05)
	assert.InDelta(t, -6.02, m.Hold(), 0.05)
	assert.Less(t, m.RMS(), m.Hold(), "peak line sits above the RMS bar")
}

func TestPeakRMSReset(t *testing.T) {
	m := NewPeakRMS(48000, 512)
	m.Process(constBlock(0.7, 512))
	require.False(t, math.IsInf(float64(m.RMS()), -1))

	m.Reset()
	assert.True(t, math.IsInf(float64(m.RMS()), -1))
	assert.True(t, math.IsInf(float64(m.Level()), -1))
}
