package param

import (
	"math"
	"testing"
)

func TestRateToHzEndpoints(t *testing.T) {
	if got := RateToHz(RateControlMin); math.Abs(got-MinRateHz) > 1e-12 {
		t.Errorf("control 0 = %f Hz, want %f", got, MinRateHz)
	}
	if got := RateToHz(RateControlMax); math.Abs(got-MaxRateHz) > 1e-9 {
		t.Errorf("control 9 = %f Hz, want %f", got, MaxRateHz)
	}
}

func TestRateToHzClampsControl(t *testing.T) {
	if got := RateToHz(-2); got != RateToHz(RateControlMin) {
		t.Errorf("control below range = %f, want %f", got, MinRateHz)
	}
	if got := RateToHz(20); got != RateToHz(RateControlMax) {
		t.Errorf("control above range = %f, want %f", got, MaxRateHz)
	}
}

func TestRateToHzMonotonic(t *testing.T) {
	prev := RateToHz(0)
	for c := 0.1; c <= 9.0; c += 0.1 {
		hz := RateToHz(c)
		if hz <= prev {
			t.Fatalf("curve not monotonic at control %f: %f <= %f", c, hz, prev)
		}
		prev = hz
	}
}

// The exponential law: halfway up the knob should be far below half of
// the frequency range.
func TestRateToHzExponentialShape(t *testing.T) {
	mid := RateToHz(4.5)
	linear := MinRateHz + 0.5*(MaxRateHz-MinRateHz)
	if mid >= linear {
		t.Errorf("control 4.5 = %f Hz, expected below the linear midpoint %f", mid, linear)
	}
	// 2^4.5 - 1 over 2^9 - 1 of the range
	want := MinRateHz + (math.Exp2(4.5)-1)/511.0*(MaxRateHz-MinRateHz)
	if math.Abs(mid-want) > 1e-9 {
		t.Errorf("control 4.5 = %f Hz, want %f", mid, want)
	}
}

func TestHzToRateRoundTrip(t *testing.T) {
	for _, c := range []float64{0, 0.5, 1, 2.5, 4, 6.75, 9} {
		hz := RateToHz(c)
		back := HzToRate(hz)
		if math.Abs(back-c) > 1e-9 {
			t.Errorf("round trip control %f -> %f Hz -> %f", c, hz, back)
		}
	}
}
