package param

import "math"

// Rate control law. The knob travels 0-9 and maps onto the LFO
// frequency range through a 2^x - 1 curve, so equal knob movement feels
// like equal musical change. Control 0 lands on MinRateHz, control 9 on
// MaxRateHz (the full 2^9 - 1 scaling factor).
const (
	RateControlMin = 0.0
	RateControlMax = 9.0

	MinRateHz = 0.01
	MaxRateHz = 20.0

	rateCurveSpan = 511.0 // 2^9 - 1
)

// RateToHz maps a rate control value (0-9) to an LFO frequency in Hz.
func RateToHz(control float64) float64 {
	if control < RateControlMin {
		control = RateControlMin
	}
	if control > RateControlMax {
		control = RateControlMax
	}
	scaled := (math.Exp2(control) - 1.0) / rateCurveSpan
	return MinRateHz + scaled*(MaxRateHz-MinRateHz)
}

// HzToRate is the inverse of RateToHz.
func HzToRate(hz float64) float64 {
	if hz < MinRateHz {
		hz = MinRateHz
	}
	if hz > MaxRateHz {
		hz = MaxRateHz
	}
	scaled := (hz - MinRateHz) / (MaxRateHz - MinRateHz)
	return math.Log2(scaled*rateCurveSpan + 1.0)
}
