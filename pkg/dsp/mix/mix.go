// Package mix provides audio mixing and crossfading operations.
package mix

import "math"

// DryWet performs a dry/wet mix between two signals.
// amount parameter: 0.0 = 100% dry, 1.0 = 100% wet
func DryWet(dry, wet, amount float32) float32 {
	return dry*(1.0-amount) + wet*amount
}

// Parallel mixes a dry and a wet signal with independent gains, the way
// the tremolo's Dry and Wet controls work.
func Parallel(dry, wet, dryGain, wetGain float32) float32 {
	return dry*dryGain + wet*wetGain
}

// ParallelBufferTo mixes dry and wet buffers with independent gains into
// a destination buffer.
func ParallelBufferTo(dry, wet []float32, dryGain, wetGain float32, dst []float32) {
	length := len(dry)
	if len(wet) < length {
		length = len(wet)
	}
	if len(dst) < length {
		length = len(dst)
	}

	for i := 0; i < length; i++ {
		dst[i] = dry[i]*dryGain + wet[i]*wetGain
	}
}

// CrossfadeLinear performs a linear crossfade.
// position: 0.0 = 100% a, 1.0 = 100% b
func CrossfadeLinear(a, b, position float32) float32 {
	return a*(1.0-position) + b*position
}

// CrossfadeCosine performs an equal-power cosine crossfade.
// position: 0.0 = 100% a, 1.0 = 100% b
func CrossfadeCosine(a, b, position float32) float32 {
	angle := position * math.Pi / 2.0
	gainA := float32(math.Cos(float64(angle)))
	gainB := float32(math.Sin(float64(angle)))
	return a*gainA + b*gainB
}
