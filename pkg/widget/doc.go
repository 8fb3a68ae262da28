// Package widget implements the control widgets: interactive knobs,
// sliders, pads and range inputs plus the passive level meters. Each
// widget owns its interaction state, ingests host events through
// OnEvent and renders itself as an ordered primitive list through
// Draw. Widgets never touch the host windowing system; bounds and
// cursor positions arrive with every call.
package widget
