// Package core provides the shared value model of the widget toolkit.
//
// Every widget consumes and produces a single canonical representation of
// a parameter value: the unit-interval Normal. The package also carries
// the small value types the widgets share:
//
//   - Normal: a float clamped to [0, 1]
//   - NormalParam: a (current, default) Normal pair
//   - ModulationRange: a band of Normals drawn as an overlay
//   - KnobAngleRange: the sweep of a rotary knob in radians
//   - Point, Size, Rectangle, Offset: pixel-space geometry
//
// Mapping between domain values (Hz, dB, integers) and Normals lives in
// the param package.
package core
