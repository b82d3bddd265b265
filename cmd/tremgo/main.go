// Command tremgo runs the tremolo engine against a sine carrier, either
// rendering offline and reporting the measured modulation rate, or
// streaming to the default audio output. Incoming MIDI CC messages can
// drive the parameters as host automation.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/soundfold/tremgo/pkg/analysis"
	"github.com/soundfold/tremgo/pkg/engine"
	"github.com/soundfold/tremgo/pkg/framework/debug"
	"github.com/soundfold/tremgo/pkg/framework/param"
	"github.com/soundfold/tremgo/pkg/framework/preset"
)

// CLI defines the command-line interface
type CLI struct {
	Rate   float64 `help:"Rate control (0-9, exponential law)." default:"2"`
	Depth  float64 `help:"Modulation depth in percent." default:"50"`
	Dry    float64 `help:"Dry level in percent." default:"0"`
	Wet    float64 `help:"Wet level in percent." default:"100"`
	Square bool    `help:"Use the square LFO shape."`
	Odd90  bool    `help:"Offset odd channels by 90 degrees."`

	Preset      int  `default:"-1" help:"Apply a factory preset instead of the knob flags."`
	ListPresets bool `help:"List factory presets and exit."`

	Carrier    float64       `default:"220" help:"Carrier tone frequency in Hz."`
	Duration   time.Duration `default:"5s" help:"How long to render or play."`
	SampleRate int           `default:"48000" help:"Sample rate in Hz."`
	Channels   int           `default:"2" help:"Output channel count."`

	Play    bool `help:"Stream to the default audio output instead of rendering offline."`
	Midi    bool `help:"Accept MIDI CC automation (CC1 depth, CC12 rate, CC13 dry, CC14 wet, CC80 square, CC81 odd90)."`
	Verbose bool `short:"v" help:"Verbose logging."`
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("tremgo"),
		kong.Description("Tremolo effect engine demo host"),
		kong.UsageOnError(),
	)

	kctx.FatalIfErrorf(run(cli))
}

func run(cli *CLI) error {
	logger := debug.New(os.Stderr, "tremgo")
	if cli.Verbose {
		logger.SetLevel(debug.LogLevelDebug)
	}

	store := param.NewStore()
	bridge := preset.NewBridge(store, nil)

	if cli.ListPresets {
		for id := 0; id < bridge.Count(); id++ {
			p, err := bridge.Preset(id)
			if err != nil {
				return err
			}
			rate := store.Info(param.Rate)
			fmt.Printf("%2d  %-16s rate %s, depth %.0f%%, dry %.0f%%, wet %.0f%%\n",
				id, p.Name,
				rate.FormatValue(p.Values[param.Rate]),
				p.Values[param.Depth], p.Values[param.Dry], p.Values[param.Wet])
		}
		return nil
	}

	if cli.Preset >= 0 {
		if err := bridge.ApplyPreset(cli.Preset); err != nil {
			return err
		}
		logger.Infof("applied preset %d", cli.Preset)
	} else {
		values := store.Defaults()
		values[param.Rate] = cli.Rate
		values[param.Depth] = cli.Depth
		values[param.Dry] = cli.Dry
		values[param.Wet] = cli.Wet
		values[param.SquareWave] = boolValue(cli.Square)
		values[param.Odd90] = boolValue(cli.Odd90)
		store.SetAll(values)
	}

	if cli.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", cli.SampleRate)
	}
	if cli.Channels <= 0 {
		return fmt.Errorf("invalid channel count %d", cli.Channels)
	}

	sink := debug.NewRTSink(256)
	eng, err := engine.New(store, float64(cli.SampleRate), sink)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if cli.Midi {
		g.Go(func() error {
			return listenMidi(ctx, bridge, logger)
		})
	}

	// Forward audio-thread fault notes to the logger off the deadline
	// path
	g.Go(func() error {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				sink.Drain(logger)
				return nil
			case <-ticker.C:
				sink.Drain(logger)
			}
		}
	})

	if cli.Play {
		g.Go(func() error {
			defer stop()
			return play(ctx, cli, eng, logger)
		})
	} else {
		g.Go(func() error {
			defer stop()
			return renderOffline(cli, eng, store, logger)
		})
	}

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// renderOffline renders the configured duration and reports the
// modulation rate measured from the output.
func renderOffline(cli *CLI, eng *engine.Engine, store *param.Store, logger *debug.Logger) error {
	src := newCarrierSource(eng, cli.Carrier, cli.SampleRate, cli.Channels)

	total := int(cli.Duration.Seconds() * float64(cli.SampleRate))
	samples := make([]float64, 0, total)
	for len(samples) < total {
		block := src.NextBlock()
		for _, v := range block[0] {
			samples = append(samples, float64(v))
		}
	}
	samples = samples[:total]

	configured := param.RateToHz(store.Get(param.Rate))
	measured, err := analysis.ModulationRate(samples, float64(cli.SampleRate), param.MaxRateHz*1.25)
	if err != nil {
		return fmt.Errorf("analysis: %w", err)
	}

	logger.Debugf("rendered %d samples at %d Hz", total, cli.SampleRate)
	fmt.Printf("configured rate: %s\n", param.FrequencyFormatter(configured))
	fmt.Printf("measured rate:   %s\n", param.FrequencyFormatter(measured))
	return nil
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
