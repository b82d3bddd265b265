package preset

import (
	"errors"

	"github.com/soundfold/tremgo/pkg/framework/param"
)

// ErrUnknownPreset is returned for preset ids outside the bank.
var ErrUnknownPreset = errors.New("unknown preset")

// FactoryBank returns the built-in presets. Values are plain parameter
// units: rate is the 0-9 control, mixes and depth are percent.
func FactoryBank() []Preset {
	return []Preset{
		{
			Name: "Gentle Wobble",
			Values: param.Snapshot{
				param.Rate:       2.0,
				param.Depth:      35,
				param.Dry:        0,
				param.Wet:        100,
				param.SquareWave: 0,
				param.Odd90:      0,
			},
		},
		{
			Name: "Helicopter",
			Values: param.Snapshot{
				param.Rate:       6.5,
				param.Depth:      100,
				param.Dry:        0,
				param.Wet:        100,
				param.SquareWave: 1,
				param.Odd90:      0,
			},
		},
		{
			Name: "Wide Shimmer",
			Values: param.Snapshot{
				param.Rate:       3.5,
				param.Depth:      60,
				param.Dry:        20,
				param.Wet:        80,
				param.SquareWave: 0,
				param.Odd90:      1,
			},
		},
		{
			Name: "Chopped Stereo",
			Values: param.Snapshot{
				param.Rate:       5.0,
				param.Depth:      85,
				param.Dry:        10,
				param.Wet:        90,
				param.SquareWave: 1,
				param.Odd90:      1,
			},
		},
	}
}
