package main

import (
	"context"
	"fmt"

	"gitlab.com/gomidi/rtmididrv"

	"github.com/soundfold/tremgo/pkg/framework/debug"
	"github.com/soundfold/tremgo/pkg/framework/param"
	"github.com/soundfold/tremgo/pkg/framework/preset"
)

const ccStatus = 0xB0

// ccBinding maps a MIDI controller number onto a parameter address and
// the plain range the 0-127 controller value scales into.
type ccBinding struct {
	addr param.Address
	min  float64
	max  float64
}

// Control-change map. Resolved statically, like the parameter table.
var ccBindings = map[byte]ccBinding{
	1:  {param.Depth, 0, 100},
	12: {param.Rate, param.RateControlMin, param.RateControlMax},
	13: {param.Dry, 0, 100},
	14: {param.Wet, 0, 100},
	80: {param.SquareWave, 0, 1},
	81: {param.Odd90, 0, 1},
}

// listenMidi forwards incoming CC messages to the bridge as host
// automation (so they never clear the active preset), until the context
// is canceled.
func listenMidi(ctx context.Context, bridge *preset.Bridge, logger *debug.Logger) error {
	drv, err := rtmididrv.New()
	if err != nil {
		return fmt.Errorf("midi driver: %w", err)
	}
	defer drv.Close()

	ins, err := drv.Ins()
	if err != nil {
		return fmt.Errorf("midi inputs: %w", err)
	}
	if len(ins) == 0 {
		logger.Warnf("no MIDI inputs found")
		<-ctx.Done()
		return nil
	}

	in := ins[0]
	if err := in.Open(); err != nil {
		return fmt.Errorf("open %s: %w", in.String(), err)
	}
	defer in.Close()

	logger.Infof("listening on %s", in.String())

	err = in.SetListener(func(data []byte, deltaMicroseconds int64) {
		if len(data) < 3 || data[0]&0xF0 != ccStatus {
			return
		}
		binding, ok := ccBindings[data[1]]
		if !ok {
			return
		}
		value := binding.min + float64(data[2])/127.0*(binding.max-binding.min)
		bridge.OnAutomation(binding.addr, value)
		logger.Debugf("cc%d -> %s = %.2f", data[1], binding.addr, value)
	})
	if err != nil {
		return fmt.Errorf("midi listener: %w", err)
	}
	defer in.StopListening()

	<-ctx.Done()
	return nil
}
