// Package preset maps host automation events and stored presets onto
// parameter store writes.
package preset

import (
	"fmt"
	"sync/atomic"

	"github.com/soundfold/tremgo/pkg/framework/param"
)

// NoPreset is the sentinel id meaning no preset is active because the
// user has customized the parameters.
const NoPreset = -1

// Preset is a named full snapshot of all parameter values.
type Preset struct {
	Name   string
	Values param.Snapshot
}

// Bridge routes preset and automation writes to the parameter store,
// enforcing the edit-clears-preset contract: a direct user edit clears
// the active preset, an automation- or preset-driven write does not.
type Bridge struct {
	store  *param.Store
	bank   []Preset
	active atomic.Int32
}

// NewBridge creates a bridge over store using the given preset bank.
// A nil bank installs the factory bank.
func NewBridge(store *param.Store, bank []Preset) *Bridge {
	if bank == nil {
		bank = FactoryBank()
	}
	b := &Bridge{store: store, bank: bank}
	b.active.Store(NoPreset)
	return b
}

// Count returns the number of presets in the bank.
func (b *Bridge) Count() int {
	return len(b.bank)
}

// Preset returns the preset stored at id.
func (b *Bridge) Preset(id int) (Preset, error) {
	if id < 0 || id >= len(b.bank) {
		return Preset{}, fmt.Errorf("preset %d: %w", id, ErrUnknownPreset)
	}
	return b.bank[id], nil
}

// ApplyPreset writes a preset's full parameter set as one atomic batch
// and records the preset as active. An unknown id is rejected with an
// error and leaves the current parameters unchanged.
func (b *Bridge) ApplyPreset(id int) error {
	if id < 0 || id >= len(b.bank) {
		return fmt.Errorf("preset %d: %w", id, ErrUnknownPreset)
	}
	b.store.SetAll(b.bank[id].Values)
	b.active.Store(int32(id))
	return nil
}

// OnUserEdit writes a direct control edit through to the store and
// clears the active preset. Every direct edit must come through here.
func (b *Bridge) OnUserEdit(addr param.Address, value float64) {
	b.store.Set(addr, value)
	b.active.Store(NoPreset)
}

// OnAutomation writes a host automation value through to the store
// without touching the active preset.
func (b *Bridge) OnAutomation(addr param.Address, value float64) {
	b.store.Set(addr, value)
}

// Active returns the active preset id, or NoPreset.
func (b *Bridge) Active() int {
	return int(b.active.Load())
}

// Restore sets the active preset id without writing any parameters.
// Used when reloading saved host state; out-of-range ids collapse to
// NoPreset.
func (b *Bridge) Restore(id int) {
	if id < 0 || id >= len(b.bank) {
		id = NoPreset
	}
	b.active.Store(int32(id))
}
