// Package state handles saving and loading the engine's host state.
package state

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/soundfold/tremgo/pkg/framework/param"
	"github.com/soundfold/tremgo/pkg/framework/preset"
)

const magic = "TREMGO"

// Manager serializes parameter values and the active preset id.
type Manager struct {
	version uint32
	store   *param.Store
	bridge  *preset.Bridge
}

// NewManager creates a state manager over store and bridge.
func NewManager(store *param.Store, bridge *preset.Bridge) *Manager {
	return &Manager{
		version: 1,
		store:   store,
		bridge:  bridge,
	}
}

// Save writes the host state to a writer.
func (m *Manager) Save(w io.Writer) error {
	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, m.version); err != nil {
		return err
	}

	// Active preset id (NoPreset when the user has customized)
	if err := binary.Write(w, binary.LittleEndian, int32(m.bridge.Active())); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, int32(param.NumAddresses)); err != nil {
		return err
	}

	snap := m.store.Snapshot()
	for addr := param.Address(0); addr < param.NumAddresses; addr++ {
		if err := binary.Write(w, binary.LittleEndian, uint32(addr)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, snap[addr]); err != nil {
			return err
		}
	}

	return nil
}

// Load reads host state from a reader. Parameters are applied as one
// atomic batch; unknown addresses are skipped for forward
// compatibility.
func (m *Manager) Load(r io.Reader) error {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return err
	}
	if string(header) != magic {
		return fmt.Errorf("invalid state format")
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return err
	}
	if version > m.version {
		return fmt.Errorf("state version %d is newer than supported version %d", version, m.version)
	}

	var active int32
	if err := binary.Read(r, binary.LittleEndian, &active); err != nil {
		return err
	}

	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return err
	}

	values := *m.store.Snapshot()
	for i := int32(0); i < count; i++ {
		var addr uint32
		if err := binary.Read(r, binary.LittleEndian, &addr); err != nil {
			return err
		}
		var value float64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		if param.Address(addr).Valid() {
			values[addr] = value
		}
		// Unknown addresses are ignored
	}

	m.store.SetAll(values)
	m.bridge.Restore(int(active))
	return nil
}
