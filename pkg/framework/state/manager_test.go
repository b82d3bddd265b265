package state

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/soundfold/tremgo/pkg/framework/param"
	"github.com/soundfold/tremgo/pkg/framework/preset"
)

func newFixture() (*param.Store, *preset.Bridge, *Manager) {
	store := param.NewStore()
	bridge := preset.NewBridge(store, nil)
	return store, bridge, NewManager(store, bridge)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, bridge, m := newFixture()

	bridge.OnAutomation(param.Rate, 6.5)
	bridge.OnAutomation(param.Depth, 80)
	bridge.OnAutomation(param.SquareWave, 1)
	bridge.Restore(1)

	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	store2, bridge2, m2 := newFixture()
	if err := m2.Load(&buf); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	for addr := param.Address(0); addr < param.NumAddresses; addr++ {
		if got, want := store2.Get(addr), store.Get(addr); got != want {
			t.Errorf("%s = %f, want %f", addr, got, want)
		}
	}
	if bridge2.Active() != 1 {
		t.Errorf("active preset = %d, want 1", bridge2.Active())
	}
}

func TestSavePreservesNoPreset(t *testing.T) {
	_, bridge, m := newFixture()
	bridge.OnUserEdit(param.Wet, 55)

	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	_, bridge2, m2 := newFixture()
	if err := m2.Load(&buf); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if bridge2.Active() != preset.NoPreset {
		t.Errorf("active preset = %d, want NoPreset", bridge2.Active())
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	_, _, m := newFixture()

	err := m.Load(strings.NewReader("NOTAST4TE.............."))
	if err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestLoadRejectsNewerVersion(t *testing.T) {
	_, _, m := newFixture()

	var buf bytes.Buffer
	buf.WriteString("TREMGO")
	binary.Write(&buf, binary.LittleEndian, uint32(99))
	binary.Write(&buf, binary.LittleEndian, int32(-1))
	binary.Write(&buf, binary.LittleEndian, int32(0))

	if err := m.Load(&buf); err == nil {
		t.Fatal("expected error for newer version")
	}
}

func TestLoadSkipsUnknownAddresses(t *testing.T) {
	store, _, m := newFixture()

	var buf bytes.Buffer
	buf.WriteString("TREMGO")
	binary.Write(&buf, binary.LittleEndian, uint32(1))
	binary.Write(&buf, binary.LittleEndian, int32(-1))
	binary.Write(&buf, binary.LittleEndian, int32(2))
	// One known address, one from a future version
	binary.Write(&buf, binary.LittleEndian, uint32(param.Depth))
	binary.Write(&buf, binary.LittleEndian, float64(65))
	binary.Write(&buf, binary.LittleEndian, uint32(200))
	binary.Write(&buf, binary.LittleEndian, float64(1.0))

	if err := m.Load(&buf); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := store.Get(param.Depth); got != 65 {
		t.Errorf("depth = %f, want 65", got)
	}
}

func TestLoadTruncated(t *testing.T) {
	_, _, m := newFixture()

	var buf bytes.Buffer
	buf.WriteString("TREMGO")
	binary.Write(&buf, binary.LittleEndian, uint32(1))

	if err := m.Load(&buf); err == nil {
		t.Fatal("expected error for truncated state")
	}
}
