package lfo

import (
	"math"
	"testing"
)

func TestQuadPairOffsetDisabled(t *testing.T) {
	q := NewQuadPair(48000.0)
	q.SetFrequency(2.0)

	for i := 0; i < 1000; i++ {
		even, odd := q.Process()
		if even != odd {
			t.Fatalf("sample %d: outputs differ with offset disabled: %f vs %f", i, even, odd)
		}
	}
}

// With the offset enabled the odd output must lead by 90 degrees:
// sin(2pi(p + 0.25)) = cos(2pi p).
func TestQuadPairQuadrature(t *testing.T) {
	q := NewQuadPair(48000.0)
	q.SetFrequency(1.0)
	q.SetQuadrature(true)

	phase := 0.0
	inc := 1.0 / 48000.0
	for i := 0; i < 2000; i++ {
		even, odd := q.Process()

		wantEven := math.Sin(2 * math.Pi * phase)
		wantOdd := math.Cos(2 * math.Pi * phase)
		if math.Abs(even-wantEven) > 1e-9 {
			t.Fatalf("sample %d: even = %f, want %f", i, even, wantEven)
		}
		if math.Abs(odd-wantOdd) > 1e-9 {
			t.Fatalf("sample %d: odd = %f, want %f", i, odd, wantOdd)
		}
		phase += inc
	}
}

func TestQuadPairEnableMidStream(t *testing.T) {
	q := NewQuadPair(48000.0)
	q.SetFrequency(2.0)

	// The secondary keeps running while disabled, so enabling the
	// offset later still yields a clean 90 degree relationship.
	for i := 0; i < 12345; i++ {
		q.Process()
	}
	q.SetQuadrature(true)

	even, odd := q.Process()
	pe := q.primary.Phase() - 2.0/48000.0
	wantEven := math.Sin(2 * math.Pi * pe)
	wantOdd := math.Sin(2 * math.Pi * (pe + quadraturePhase))
	if math.Abs(even-wantEven) > 1e-6 {
		t.Errorf("even = %f, want %f", even, wantEven)
	}
	if math.Abs(odd-wantOdd) > 1e-6 {
		t.Errorf("odd = %f, want %f", odd, wantOdd)
	}
}

func TestQuadPairReset(t *testing.T) {
	q := NewQuadPair(48000.0)
	q.SetFrequency(5.0)
	q.SetQuadrature(true)

	for i := 0; i < 777; i++ {
		q.Process()
	}
	q.Reset()

	if got := q.primary.Phase(); got != 0.0 {
		t.Errorf("primary phase after reset = %f, want 0", got)
	}
	if got := q.quadrature.Phase(); got != quadraturePhase {
		t.Errorf("quadrature phase after reset = %f, want %f", got, quadraturePhase)
	}
}

func TestQuadPairSquare(t *testing.T) {
	q := NewQuadPair(48000.0)
	q.SetFrequency(1.0)
	q.SetWaveform(WaveformSquare)
	q.SetQuadrature(true)

	// At phase 0 the primary square is high and the quadrature (phase
	// 0.25) is still high; by phase 0.3 the quadrature has flipped.
	even, odd := q.Process()
	if even != 1.0 || odd != 1.0 {
		t.Errorf("at phase 0: even %f odd %f, want 1 1", even, odd)
	}

	steps := int(0.3 * 48000.0)
	for i := 1; i < steps; i++ {
		q.Process()
	}
	even, odd = q.Process()
	if even != 1.0 {
		t.Errorf("at phase 0.3: even = %f, want 1", even)
	}
	if odd != -1.0 {
		t.Errorf("at phase 0.3: odd = %f, want -1", odd)
	}
}
