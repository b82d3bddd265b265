package main

import (
	"context"
	"encoding/binary"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/soundfold/tremgo/pkg/dsp"
	"github.com/soundfold/tremgo/pkg/engine"
	"github.com/soundfold/tremgo/pkg/framework/debug"
	"github.com/soundfold/tremgo/pkg/framework/process"
)

// carrierSource feeds a sine carrier through the engine. It doubles as
// the oto player's io.Reader; Read runs on the audio output thread and
// stays allocation-free after construction.
type carrierSource struct {
	eng      *engine.Engine
	channels int
	phase    float64
	phaseInc float64
	ctx      *process.Context
}

func newCarrierSource(eng *engine.Engine, carrierHz float64, sampleRate, channels int) *carrierSource {
	ctx := process.NewContext(dsp.DefaultBufferSize, float64(sampleRate))
	ctx.Input = make([][]float32, channels)
	ctx.Output = make([][]float32, channels)
	for ch := 0; ch < channels; ch++ {
		ctx.Input[ch] = make([]float32, dsp.DefaultBufferSize)
		ctx.Output[ch] = make([]float32, dsp.DefaultBufferSize)
	}
	return &carrierSource{
		eng:      eng,
		channels: channels,
		phaseInc: carrierHz / float64(sampleRate),
		ctx:      ctx,
	}
}

// NextBlock renders one full block and returns the output channels.
func (s *carrierSource) NextBlock() [][]float32 {
	s.fill(dsp.DefaultBufferSize)
	s.eng.Process(s.ctx)
	return s.ctx.Output
}

// Read renders interleaved float32 little-endian frames for oto.
func (s *carrierSource) Read(p []byte) (int, error) {
	frameBytes := 4 * s.channels
	frames := len(p) / frameBytes
	if frames == 0 {
		return 0, nil
	}
	if frames > dsp.DefaultBufferSize {
		frames = dsp.DefaultBufferSize
	}

	s.fill(frames)
	s.eng.Process(s.ctx)

	for i := 0; i < frames; i++ {
		for ch := 0; ch < s.channels; ch++ {
			bits := math.Float32bits(s.ctx.Output[ch][i])
			binary.LittleEndian.PutUint32(p[(i*s.channels+ch)*4:], bits)
		}
	}
	return frames * frameBytes, nil
}

// fill writes n carrier samples into every input channel and resizes
// the block accordingly.
func (s *carrierSource) fill(n int) {
	for ch := 0; ch < s.channels; ch++ {
		s.ctx.Input[ch] = s.ctx.Input[ch][:n]
		s.ctx.Output[ch] = s.ctx.Output[ch][:n]
	}
	for i := 0; i < n; i++ {
		v := float32(math.Sin(2 * math.Pi * s.phase))
		for ch := 0; ch < s.channels; ch++ {
			s.ctx.Input[ch][i] = v
		}
		s.phase += s.phaseInc
		if s.phase >= 1.0 {
			s.phase -= 1.0
		}
	}
}

// play streams the effect to the default audio output until the
// duration elapses or the context is canceled.
func play(ctx context.Context, cli *CLI, eng *engine.Engine, logger *debug.Logger) error {
	op := &oto.NewContextOptions{
		SampleRate:   cli.SampleRate,
		ChannelCount: cli.Channels,
		Format:       oto.FormatFloat32LE,
	}
	octx, ready, err := oto.NewContext(op)
	if err != nil {
		return err
	}
	<-ready

	src := newCarrierSource(eng, cli.Carrier, cli.SampleRate, cli.Channels)
	player := octx.NewPlayer(src)
	player.Play()
	defer player.Close()

	logger.Infof("playing %v at %d Hz, %d channels", cli.Duration, cli.SampleRate, cli.Channels)

	select {
	case <-ctx.Done():
	case <-time.After(cli.Duration):
	}
	return nil
}
