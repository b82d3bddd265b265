// Package engine implements the tremolo effect kernel: the real-time
// processing loop consuming ramped parameters and the modulation
// oscillator.
package engine

import (
	"fmt"

	"github.com/soundfold/tremgo/pkg/dsp"
	"github.com/soundfold/tremgo/pkg/dsp/lfo"
	"github.com/soundfold/tremgo/pkg/dsp/mix"
	"github.com/soundfold/tremgo/pkg/framework/debug"
	"github.com/soundfold/tremgo/pkg/framework/param"
	"github.com/soundfold/tremgo/pkg/framework/process"
)

// rampTime is how long a parameter change takes to settle. Short enough
// to feel immediate, long enough to avoid zipper noise.
const rampTime = dsp.MediumSmoothing

// Engine owns the audio-context state: ramps and oscillator phase. The
// control context only ever writes targets into the parameter store;
// the engine picks them up at block boundaries.
type Engine struct {
	store *param.Store
	sink  *debug.RTSink

	sampleRate  float64
	rampSamples int

	ramps param.RampSet
	lfos  *lfo.QuadPair
}

// New creates an engine reading from store at the given sample rate.
// The sink may be nil; faults are then dropped silently.
func New(store *param.Store, sampleRate float64, sink *debug.RTSink) (*Engine, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %f", sampleRate)
	}
	e := &Engine{
		store:      store,
		sink:       sink,
		sampleRate: sampleRate,
		lfos:       lfo.NewQuadPair(sampleRate),
	}
	e.rampSamples = int(rampTime * sampleRate)
	e.Reset()
	return e, nil
}

// SampleRate returns the current sample rate.
func (e *Engine) SampleRate() float64 {
	return e.sampleRate
}

// SetSampleRate reconfigures timing constants for a new sample rate:
// ramp durations stay constant in time units and the oscillator keeps
// its phase. Non-positive rates are ignored and noted.
func (e *Engine) SetSampleRate(sampleRate float64) {
	if sampleRate <= 0 {
		e.note(debug.LogLevelWarn, "ignored non-positive sample rate")
		return
	}
	e.sampleRate = sampleRate
	e.rampSamples = int(rampTime * sampleRate)
	e.lfos.SetSampleRate(sampleRate)
}

// Reset returns all ramp and phase state to quiescent values: ramps
// jump to the stored targets and the oscillator phase rewinds. Called
// on session start/stop transitions.
func (e *Engine) Reset() {
	snap := e.store.Snapshot()
	e.ramps.Reset(snap)
	e.lfos.Reset()
	e.lfos.SetFrequency(param.RateToHz(snap[param.Rate]))
	e.lfos.SetWaveform(waveformFor(snap))
	e.lfos.SetQuadrature(snap[param.Odd90] >= 0.5)
}

// Process transforms one audio block. Runs on the real-time thread: no
// locks, no allocation, no I/O. Ramped dry/wet/depth values and the
// modulation signal are combined per sample; odd channels use the 90
// degree offset oscillator when enabled.
func (e *Engine) Process(ctx *process.Context) {
	n := ctx.NumSamples()
	if n == 0 {
		return
	}
	if ctx.NumInputChannels() == 0 {
		ctx.Clear()
		e.note(debug.LogLevelWarn, "no input channels")
		return
	}

	// Pull the latest committed batch once per block; a preset apply is
	// either fully visible here or not at all.
	snap := e.store.Snapshot()
	e.ramps.SetTarget(param.Depth, snap[param.Depth], e.rampSamples)
	e.ramps.SetTarget(param.Dry, snap[param.Dry], e.rampSamples)
	e.ramps.SetTarget(param.Wet, snap[param.Wet], e.rampSamples)

	// Stepped parameters switch at block boundaries
	e.lfos.SetFrequency(param.RateToHz(snap[param.Rate]))
	e.lfos.SetWaveform(waveformFor(snap))
	e.lfos.SetQuadrature(snap[param.Odd90] >= 0.5)

	channels := ctx.NumInputChannels()
	if ctx.NumOutputChannels() < channels {
		channels = ctx.NumOutputChannels()
	}

	for i := 0; i < n; i++ {
		depth := e.ramps.Next(param.Depth) * 0.01
		dry := e.ramps.Next(param.Dry) * 0.01
		wet := e.ramps.Next(param.Wet) * 0.01

		even, odd := e.lfos.Process()
		gainEven := dsp.UnityGain - depth*(1.0-even)/2.0
		gainOdd := dsp.UnityGain - depth*(1.0-odd)/2.0

		for ch := 0; ch < channels; ch++ {
			gain := gainEven
			if ch&1 == 1 {
				gain = gainOdd
			}
			in := ctx.Input[ch][i]
			ctx.Output[ch][i] = mix.Parallel(in, in*float32(gain), float32(dry), float32(wet))
		}
	}

	// Outputs beyond the input channel count are silenced
	for ch := channels; ch < ctx.NumOutputChannels(); ch++ {
		out := ctx.Output[ch]
		for i := range out {
			out[i] = 0
		}
	}
}

func (e *Engine) note(level debug.LogLevel, msg string) {
	if e.sink != nil {
		e.sink.Note(level, msg)
	}
}

func waveformFor(snap *param.Snapshot) lfo.Waveform {
	if snap[param.SquareWave] >= 0.5 {
		return lfo.WaveformSquare
	}
	return lfo.WaveformSine
}
