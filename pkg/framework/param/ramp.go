package param

// Ramp interpolates a parameter linearly from its current value to a
// target over a fixed number of samples, to avoid zipper noise when a
// control changes mid-buffer. All methods are audio-thread safe in the
// single-owner sense: the ramp belongs to the audio context once a
// processing session starts.
type Ramp struct {
	current   float64
	target    float64
	step      float64
	remaining int
}

// SetTarget starts a ramp towards target over durationSamples. A ramp
// already in flight restarts from the current interpolated value, never
// from its original start. A non-positive duration jumps immediately;
// real-time code never errors.
func (r *Ramp) SetTarget(target float64, durationSamples int) {
	if target == r.target && (r.remaining > 0 || r.current == target) {
		return
	}
	r.target = target
	if durationSamples <= 0 {
		r.current = target
		r.remaining = 0
		r.step = 0
		return
	}
	r.step = (target - r.current) / float64(durationSamples)
	r.remaining = durationSamples
}

// Next advances the ramp by one sample and returns the interpolated
// value. Once the target is reached it returns the target directly.
func (r *Ramp) Next() float64 {
	if r.remaining == 0 {
		return r.target
	}
	r.remaining--
	if r.remaining == 0 {
		r.current = r.target
	} else {
		r.current += r.step
	}
	return r.current
}

// Value returns the current value without advancing.
func (r *Ramp) Value() float64 {
	if r.remaining == 0 {
		return r.target
	}
	return r.current
}

// Done reports whether the ramp has reached its target.
func (r *Ramp) Done() bool {
	return r.remaining == 0
}

// Reset jumps the ramp to value with no interpolation.
func (r *Ramp) Reset(value float64) {
	r.current = value
	r.target = value
	r.step = 0
	r.remaining = 0
}

// RampSet manages one ramp per address as a static table. Only the
// continuous addresses are usually ramped; stepped ones switch at block
// boundaries.
type RampSet struct {
	ramps [NumAddresses]Ramp
}

// SetTarget re-targets the ramp for addr.
func (rs *RampSet) SetTarget(addr Address, target float64, durationSamples int) {
	if !addr.Valid() {
		return
	}
	rs.ramps[addr].SetTarget(target, durationSamples)
}

// Next advances the ramp for addr by one sample.
func (rs *RampSet) Next(addr Address) float64 {
	return rs.ramps[addr].Next()
}

// Ramp returns the ramp for addr.
func (rs *RampSet) Ramp(addr Address) *Ramp {
	return &rs.ramps[addr]
}

// Reset jumps every ramp to the values in snap.
func (rs *RampSet) Reset(snap *Snapshot) {
	for addr := Address(0); addr < NumAddresses; addr++ {
		rs.ramps[addr].Reset(snap[addr])
	}
}
