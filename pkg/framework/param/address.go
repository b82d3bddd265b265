// Package param provides parameter management for the tremolo engine.
package param

// Address identifies a parameter. Addresses are stable across the UI,
// host automation and the audio kernel.
type Address int

const (
	// Rate is the LFO rate control (0-9, exponential law).
	Rate Address = iota
	// Depth is the modulation depth in percent.
	Depth
	// Dry is the unprocessed signal level in percent.
	Dry
	// Wet is the processed signal level in percent.
	Wet
	// SquareWave selects the square LFO shape instead of sine.
	SquareWave
	// Odd90 offsets odd channels by 90 degrees for stereo width.
	Odd90

	// NumAddresses is the size of the address space.
	NumAddresses
)

// String returns the canonical parameter name.
func (a Address) String() string {
	switch a {
	case Rate:
		return "rate"
	case Depth:
		return "depth"
	case Dry:
		return "dry"
	case Wet:
		return "wet"
	case SquareWave:
		return "squareWave"
	case Odd90:
		return "odd90"
	default:
		return "unknown"
	}
}

// Valid reports whether the address is within the address space.
func (a Address) Valid() bool {
	return a >= 0 && a < NumAddresses
}
