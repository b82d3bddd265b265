// Package analysis provides offline measurements over rendered audio.
// Nothing here runs on the real-time path.
package analysis

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ModulationRate estimates the dominant modulation frequency of an
// amplitude-modulated signal, in Hz. It rectifies the signal into an
// envelope, removes the DC component, applies a Hann window and scans
// the magnitude spectrum up to maxHz for the strongest bin.
//
// Frequency resolution is sampleRate/fftSize; pass enough samples to
// resolve the rate you expect (a few seconds for sub-Hz rates).
func ModulationRate(samples []float64, sampleRate, maxHz float64) (float64, error) {
	if len(samples) < 2 {
		return 0, fmt.Errorf("need at least 2 samples, got %d", len(samples))
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("invalid sample rate %f", sampleRate)
	}
	if maxHz <= 0 || maxHz > sampleRate/2 {
		maxHz = sampleRate / 2
	}

	env := make([]float64, len(samples))
	mean := 0.0
	for i, s := range samples {
		env[i] = math.Abs(s)
		mean += env[i]
	}
	mean /= float64(len(env))
	for i := range env {
		env[i] -= mean
	}

	applyHann(env)

	fftSize := nextPow2(len(env))
	in := make([]complex128, fftSize)
	for i, v := range env {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("fft forward: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	binHz := sampleRate / float64(fftSize)
	maxBin := int(maxHz / binHz)
	if maxBin >= binCount {
		maxBin = binCount - 1
	}

	// Skip DC and the first bin, which carry windowing leakage
	if maxBin < 2 {
		return 0, fmt.Errorf("no bins below %f Hz at resolution %f Hz", maxHz, binHz)
	}
	best := 2
	for i := 3; i <= maxBin; i++ {
		if mag[i] > mag[best] {
			best = i
		}
	}

	return float64(best) * binHz, nil
}

func applyHann(buf []float64) {
	n := len(buf)
	if n < 2 {
		return
	}
	for i := range buf {
		w := 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(n-1)))
		buf[i] *= w
	}
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
