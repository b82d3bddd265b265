// Package lfo provides the low-frequency oscillator driving the
// tremolo's time-varying gain.
package lfo

import "math"

// Waveform represents the LFO waveform shape
type Waveform int

const (
	// WaveformSine produces a sine wave
	WaveformSine Waveform = iota
	// WaveformSquare produces a square wave
	WaveformSquare
)

// Frequency limits for the modulation range.
const (
	MinFrequency = 0.01
	MaxFrequency = 20.0
)

// LFO generates a periodic control signal in [-1, 1]. Phase is a 0-1
// accumulator advanced by frequency/sampleRate on every processed
// sample and wrapped modulo 1.
type LFO struct {
	sampleRate float64
	frequency  float64
	phase      float64
	phaseInc   float64
	depth      float64
	waveform   Waveform
}

// New creates an LFO at the given sample rate
func New(sampleRate float64) *LFO {
	l := &LFO{
		sampleRate: sampleRate,
		frequency:  1.0,
		depth:      1.0,
		waveform:   WaveformSine,
	}
	l.updatePhaseIncrement()
	return l
}

// SetFrequency sets the LFO frequency in Hz, limited to the modulation
// range
func (l *LFO) SetFrequency(hz float64) {
	l.frequency = math.Max(MinFrequency, math.Min(MaxFrequency, hz))
	l.updatePhaseIncrement()
}

// Frequency returns the current frequency in Hz
func (l *LFO) Frequency() float64 {
	return l.frequency
}

// SetWaveform sets the waveform shape
func (l *LFO) SetWaveform(waveform Waveform) {
	l.waveform = waveform
}

// SetDepth sets the output amplitude scale (0-1)
func (l *LFO) SetDepth(depth float64) {
	l.depth = math.Max(0.0, math.Min(1.0, depth))
}

// SetPhase sets the current phase (0-1), wrapping out-of-range values
func (l *LFO) SetPhase(phase float64) {
	l.phase = phase - math.Floor(phase)
}

// Phase returns the current phase (0-1)
func (l *LFO) Phase() float64 {
	return l.phase
}

// SetSampleRate changes the sample rate, preserving phase so the
// oscillator stays continuous across a reconfiguration
func (l *LFO) SetSampleRate(sampleRate float64) {
	if sampleRate <= 0 {
		return
	}
	l.sampleRate = sampleRate
	l.updatePhaseIncrement()
}

func (l *LFO) updatePhaseIncrement() {
	l.phaseInc = l.frequency / l.sampleRate
}

// Process computes the output for the current phase, then advances and
// wraps the phase. Output is in [-1, 1].
func (l *LFO) Process() float64 {
	var wave float64
	switch l.waveform {
	case WaveformSquare:
		if l.phase < 0.5 {
			wave = 1.0
		} else {
			wave = -1.0
		}
	default:
		wave = math.Sin(2.0 * math.Pi * l.phase)
	}

	l.phase += l.phaseInc
	if l.phase >= 1.0 {
		l.phase -= 1.0
	}

	out := wave * l.depth
	return math.Max(-1.0, math.Min(1.0, out))
}

// Reset returns the phase to zero
func (l *LFO) Reset() {
	l.phase = 0.0
}
