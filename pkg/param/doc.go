// Package param maps domain values to the unit-interval Normal and back.
//
// Four range shapes cover the usual audio parameters:
//
//   - FloatRange: continuous linear values
//   - IntRange: discrete steps with snap-to-step
//   - LogDBRange: decibel taper with an exact 0 dB position
//   - FreqRange: octave taper over the audible spectrum
//
// All maps are total. Inverted constructor arguments produce an empty
// range whose maps return 0; NaN behaves as 0.
//
// Param wraps a range with a name, atomically stored state and text
// formatting, built through a fluent Builder:
//
//	gain := param.New("Gain").
//		Range(param.DefaultLogDBRange()).
//		Default(0).
//		Formatter(param.DecibelFormatter, param.DecibelParser).
//		Build()
//
// Widgets never see a Param. They hold a core.NormalParam view and the
// host writes changes back through SetNormal.
package param
