package param

import (
	"sync"
	"sync/atomic"
)

// Snapshot holds one committed plain value per address. A snapshot is
// immutable once published; the audio thread reads whole snapshots so a
// single block can never observe values from two different batches.
type Snapshot [NumAddresses]float64

// Store holds the canonical parameter values. Writes come from the
// control context (UI, host automation, presets) and are serialized by
// a mutex; the audio thread reads the latest snapshot through a single
// atomic pointer load, with no locks and no allocation.
type Store struct {
	infos [NumAddresses]Info

	mu        sync.Mutex
	snap      atomic.Pointer[Snapshot]
	observers [NumAddresses][]func(old, value float64)
}

// NewStore creates a store initialized to the parameter defaults.
func NewStore() *Store {
	s := &Store{infos: Table()}
	snap := &Snapshot{}
	for addr := Address(0); addr < NumAddresses; addr++ {
		snap[addr] = s.infos[addr].Default
	}
	s.snap.Store(snap)
	return s
}

// Info returns the descriptor for an address.
func (s *Store) Info(addr Address) Info {
	if !addr.Valid() {
		return Info{}
	}
	return s.infos[addr]
}

// Get returns the current committed value for an address.
func (s *Store) Get(addr Address) float64 {
	if !addr.Valid() {
		return 0
	}
	return s.snap.Load()[addr]
}

// Set commits a single value, clamped to the parameter's range, and
// returns the previous value. Control context only.
func (s *Store) Set(addr Address, value float64) float64 {
	if !addr.Valid() {
		return 0
	}
	value = s.infos[addr].Clamp(value)

	s.mu.Lock()
	old := *s.snap.Load()
	next := old
	next[addr] = value
	s.snap.Store(&next)
	fns := s.observers[addr]
	s.mu.Unlock()

	if old[addr] != value {
		for _, fn := range fns {
			fn(old[addr], value)
		}
	}
	return old[addr]
}

// SetAll commits a full value set as one batch. The audio thread sees
// either the whole batch or none of it. Control context only.
func (s *Store) SetAll(values Snapshot) {
	for addr := Address(0); addr < NumAddresses; addr++ {
		values[addr] = s.infos[addr].Clamp(values[addr])
	}

	s.mu.Lock()
	old := *s.snap.Load()
	s.snap.Store(&values)
	observers := s.observers
	s.mu.Unlock()

	for addr := Address(0); addr < NumAddresses; addr++ {
		if old[addr] == values[addr] {
			continue
		}
		for _, fn := range observers[addr] {
			fn(old[addr], values[addr])
		}
	}
}

// Snapshot returns the latest committed batch. Safe to call from the
// audio thread; the returned snapshot must be treated as read-only.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

// Observe registers a callback invoked on the control context after a
// write changes the value at addr. Callbacks never run on the audio
// thread.
func (s *Store) Observe(addr Address, fn func(old, value float64)) {
	if !addr.Valid() || fn == nil {
		return
	}
	s.mu.Lock()
	s.observers[addr] = append(s.observers[addr], fn)
	s.mu.Unlock()
}

// Defaults returns the default value set from the parameter table.
func (s *Store) Defaults() Snapshot {
	var snap Snapshot
	for addr := Address(0); addr < NumAddresses; addr++ {
		snap[addr] = s.infos[addr].Default
	}
	return snap
}
