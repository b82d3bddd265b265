package lfo

// quadraturePhase is the 90 degree offset applied to the secondary
// oscillator.
const quadraturePhase = 0.25

// QuadPair runs a primary oscillator and a secondary one offset by 90
// degrees. When the offset is disabled both outputs are the primary's;
// the secondary keeps advancing so enabling the offset later does not
// glitch the phase relationship.
type QuadPair struct {
	primary    *LFO
	quadrature *LFO
	offset     bool
}

// NewQuadPair creates a quadrature pair at the given sample rate
func NewQuadPair(sampleRate float64) *QuadPair {
	q := &QuadPair{
		primary:    New(sampleRate),
		quadrature: New(sampleRate),
	}
	q.quadrature.SetPhase(quadraturePhase)
	return q
}

// SetFrequency sets both oscillators' frequency in Hz
func (q *QuadPair) SetFrequency(hz float64) {
	q.primary.SetFrequency(hz)
	q.quadrature.SetFrequency(hz)
}

// SetWaveform sets both oscillators' waveform
func (q *QuadPair) SetWaveform(waveform Waveform) {
	q.primary.SetWaveform(waveform)
	q.quadrature.SetWaveform(waveform)
}

// SetDepth sets both oscillators' depth
func (q *QuadPair) SetDepth(depth float64) {
	q.primary.SetDepth(depth)
	q.quadrature.SetDepth(depth)
}

// SetSampleRate reconfigures both oscillators
func (q *QuadPair) SetSampleRate(sampleRate float64) {
	q.primary.SetSampleRate(sampleRate)
	q.quadrature.SetSampleRate(sampleRate)
}

// SetQuadrature enables or disables the 90 degree offset output
func (q *QuadPair) SetQuadrature(enabled bool) {
	q.offset = enabled
}

// Quadrature reports whether the offset output is enabled
func (q *QuadPair) Quadrature() bool {
	return q.offset
}

// Process advances both oscillators by one sample. even is the primary
// output; odd is the quadrature output when enabled, otherwise equal to
// even.
func (q *QuadPair) Process() (even, odd float64) {
	even = q.primary.Process()
	quad := q.quadrature.Process()
	if q.offset {
		return even, quad
	}
	return even, even
}

// Reset returns both oscillators to their quiescent phases
func (q *QuadPair) Reset() {
	q.primary.Reset()
	q.quadrature.Reset()
	q.quadrature.SetPhase(quadraturePhase)
}
