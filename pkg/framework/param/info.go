package param

import (
	"fmt"
	"strconv"
)

// Info describes a parameter: its range, default and display behavior.
// Live values are owned by the Store; Info is immutable after Build.
type Info struct {
	Address   Address
	Name      string
	ShortName string
	Unit      string
	Min       float64
	Max       float64
	Default   float64
	Stepped   bool

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// Clamp returns value limited to the parameter's declared range.
// Clamping is silent; the real-time path must never error.
func (in *Info) Clamp(value float64) float64 {
	if value < in.Min {
		return in.Min
	}
	if value > in.Max {
		return in.Max
	}
	return value
}

// Normalize converts a plain value to normalized (0-1).
func (in *Info) Normalize(plain float64) float64 {
	if in.Max <= in.Min {
		return 0
	}
	normalized := (plain - in.Min) / (in.Max - in.Min)
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// Denormalize converts a normalized (0-1) value to plain.
func (in *Info) Denormalize(normalized float64) float64 {
	return in.Min + normalized*(in.Max-in.Min)
}

// FormatValue returns the display string for a plain value.
func (in *Info) FormatValue(plain float64) string {
	if in.formatFunc != nil {
		return in.formatFunc(plain)
	}
	if in.Stepped {
		return fmt.Sprintf("%.0f", plain)
	}
	return fmt.Sprintf("%.2f", plain)
}

// ParseValue parses a display string to a plain value.
func (in *Info) ParseValue(str string) (float64, error) {
	if in.parseFunc != nil {
		plain, err := in.parseFunc(str)
		if err != nil {
			return 0, err
		}
		return in.Clamp(plain), nil
	}
	plain, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	return in.Clamp(plain), nil
}

// Table returns the static parameter table, indexed by Address.
// The control-to-parameter mapping is resolved here once, at
// initialization, rather than through any dynamic lookup.
func Table() [NumAddresses]Info {
	return [NumAddresses]Info{
		Rate: New(Rate, "Rate").
			Range(RateControlMin, RateControlMax).
			Default(2.0).
			Formatter(RateFormatter, RateParser).
			Build(),
		Depth: New(Depth, "Depth").
			Range(0, 100).
			Default(50).
			Unit("%").
			Formatter(PercentFormatter, PercentParser).
			Build(),
		Dry: New(Dry, "Dry").
			Range(0, 100).
			Default(0).
			Unit("%").
			Formatter(PercentFormatter, PercentParser).
			Build(),
		Wet: New(Wet, "Wet").
			Range(0, 100).
			Default(100).
			Unit("%").
			Formatter(PercentFormatter, PercentParser).
			Build(),
		SquareWave: New(SquareWave, "Square Wave").
			ShortName("Square").
			Toggle().
			Build(),
		Odd90: New(Odd90, "Odd 90°").
			ShortName("Odd90").
			Toggle().
			Build(),
	}
}
