// Package meter derives the Normals the display meters consume from
// audio-rate sample blocks: peak and RMS levels for the dB meter,
// stereo correlation for the phase meter and gain reduction for the
// reduction meter.
//
// Every source is a single-writer struct: the audio goroutine advances
// it through Process and the GUI reads the latest published values
// through atomic snapshots. No locks are taken on either side.
package meter
