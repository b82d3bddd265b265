package lfo

import (
	"math"
	"testing"
)

func TestLFODefaults(t *testing.T) {
	l := New(48000.0)

	if l.Frequency() != 1.0 {
		t.Errorf("default frequency = %f, want 1.0", l.Frequency())
	}
	if l.Phase() != 0.0 {
		t.Errorf("default phase = %f, want 0", l.Phase())
	}
}

func TestLFOWaveformValues(t *testing.T) {
	l := New(48000.0)

	testCases := []struct {
		waveform Waveform
		name     string
		phase    float64
		expected float64
	}{
		{WaveformSine, "sine at 0", 0.0, 0.0},
		{WaveformSine, "sine at 0.25", 0.25, 1.0},
		{WaveformSine, "sine at 0.5", 0.5, 0.0},
		{WaveformSine, "sine at 0.75", 0.75, -1.0},
		{WaveformSquare, "square at 0", 0.0, 1.0},
		{WaveformSquare, "square at 0.25", 0.25, 1.0},
		{WaveformSquare, "square at 0.5", 0.5, -1.0},
		{WaveformSquare, "square at 0.75", 0.75, -1.0},
	}

	for _, tc := range testCases {
		l.SetWaveform(tc.waveform)
		l.SetPhase(tc.phase)
		output := l.Process()
		if math.Abs(output-tc.expected) > 0.001 {
			t.Errorf("%s: got %f, want %f", tc.name, output, tc.expected)
		}
	}
}

// After sampleRate/frequency advances the phase must return to its
// starting value.
func TestLFOPeriodicity(t *testing.T) {
	sampleRate := 48000.0
	for _, freq := range []float64{0.5, 2.0, 12.0} {
		l := New(sampleRate)
		l.SetFrequency(freq)

		start := l.Phase()
		period := int(math.Round(sampleRate / freq))
		for i := 0; i < period; i++ {
			l.Process()
		}

		diff := math.Abs(l.Phase() - start)
		if diff > 0.5 {
			diff = 1.0 - diff // wrap distance
		}
		if diff > 1e-6 {
			t.Errorf("%.1f Hz: phase after one period = %f, want %f", freq, l.Phase(), start)
		}
	}
}

func TestLFOPhaseStaysNormalized(t *testing.T) {
	l := New(1000.0)
	l.SetFrequency(19.7)

	for i := 0; i < 100000; i++ {
		l.Process()
		if p := l.Phase(); p < 0.0 || p >= 1.0 {
			t.Fatalf("sample %d: phase %f outside [0,1)", i, p)
		}
	}
}

func TestLFODepthScalesOutput(t *testing.T) {
	l := New(48000.0)
	l.SetWaveform(WaveformSquare)
	l.SetDepth(0.5)
	l.SetPhase(0.0)

	if got := l.Process(); math.Abs(got-0.5) > 0.001 {
		t.Errorf("got %f, want 0.5", got)
	}
}

func TestLFOFrequencyClamped(t *testing.T) {
	l := New(48000.0)

	l.SetFrequency(0.0001)
	if l.Frequency() != MinFrequency {
		t.Errorf("frequency below range = %f, want %f", l.Frequency(), MinFrequency)
	}

	l.SetFrequency(500.0)
	if l.Frequency() != MaxFrequency {
		t.Errorf("frequency above range = %f, want %f", l.Frequency(), MaxFrequency)
	}
}

func TestLFOOutputRange(t *testing.T) {
	l := New(8000.0)
	l.SetFrequency(3.3)

	for i := 0; i < 50000; i++ {
		if v := l.Process(); v < -1.0 || v > 1.0 {
			t.Fatalf("sample %d: output %f outside [-1,1]", i, v)
		}
	}
}

func TestLFOSampleRateChangeKeepsPhase(t *testing.T) {
	l := New(48000.0)
	l.SetFrequency(2.0)
	for i := 0; i < 6000; i++ {
		l.Process()
	}
	phase := l.Phase()

	l.SetSampleRate(96000.0)
	if l.Phase() != phase {
		t.Errorf("phase changed on sample rate change: %f -> %f", phase, l.Phase())
	}

	// Period in samples doubles at twice the rate
	before := l.Phase()
	l.Process()
	inc := l.Phase() - before
	if math.Abs(inc-2.0/96000.0) > 1e-12 {
		t.Errorf("phase increment = %g, want %g", inc, 2.0/96000.0)
	}
}
