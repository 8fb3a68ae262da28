package core

import "math"

// Angle constants shared by the knob and mark geometry.
const (
	PiOver180     float32 = math.Pi / 180.0
	HalfPi        float32 = math.Pi / 2.0
	TwoPi         float32 = math.Pi * 2.0
	ThreeHalvesPi float32 = math.Pi * 3.0 / 2.0
)

// DBToAmplitude converts decibels to linear amplitude.
func DBToAmplitude(db float32) float32 {
	return float32(math.Pow(10.0, float64(db)*(1.0/20.0)))
}

// AmplitudeToDB converts linear amplitude to decibels.
func AmplitudeToDB(amp float32) float32 {
	return 20.0 * float32(math.Log10(float64(amp)))
}
