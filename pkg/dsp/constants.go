// Package dsp provides signal processing constants shared by the
// engine and its components.
package dsp

// Common audio constants.
const (
	// Gain/Level constants
	UnityGain = 1.0

	// Channel counts
	Mono   = 1
	Stereo = 2

	// Common sample rates
	SampleRate44k1 = 44100.0
	SampleRate48k  = 48000.0
	SampleRate96k  = 96000.0

	// Buffer sizes
	MinBufferSize     = 32
	DefaultBufferSize = 512
	MaxBufferSize     = 8192

	// Parameter smoothing times in seconds
	FastSmoothing   = 0.001
	MediumSmoothing = 0.010
	SlowSmoothing   = 0.050

	// Mix range
	MinMix = 0.0
	MaxMix = 1.0
)
