package ram

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/types"
)

func TestRAM(t *testing.T) {
	r := NewRAM(0xC000, 0x2000)
	r.Write(0xC000, 0x42)
	r.Write(0xDFFF, 0x24)
	if v := r.Read(0xC000); v != 0x42 {
		t.Errorf("expected 0x42, got 0x%02X", v)
	}
	if v := r.Read(0xDFFF); v != 0x24 {
		t.Errorf("expected 0x24, got 0x%02X", v)
	}
	// addresses past the block wrap around
	if v := r.Read(0xE000); v != 0x42 {
		t.Errorf("expected mirrored 0x42, got 0x%02X", v)
	}
	if r.Size() != 0x2000 {
		t.Errorf("expected size 0x2000, got 0x%X", r.Size())
	}
}

func TestROM(t *testing.T) {
	r := NewROM(0x0100, []byte{0x01, 0xFE, 0xBE})
	r.Write(0x0100, 0x00)
	if v := r.Read(0x0100); v != 0x01 {
		t.Errorf("expected 0x01, got 0x%02X", v)
	}
	if v := r.Read(0x0102); v != 0xBE {
		t.Errorf("expected 0xBE, got 0x%02X", v)
	}
	if v := r.Read(0x0103); v != 0xFF {
		t.Errorf("expected open bus 0xFF, got 0x%02X", v)
	}
}

func TestRAM_State(t *testing.T) {
	r := NewRAM(0xFF80, 0x7F)
	r.Write(0xFF80, 0x11)
	r.Write(0xFFFE, 0x22)

	st := types.NewState()
	r.Save(st)

	restored := NewRAM(0xFF80, 0x7F)
	restored.Load(types.StateFromBytes(st.Bytes()))
	if restored.Read(0xFF80) != 0x11 || restored.Read(0xFFFE) != 0x22 {
		t.Errorf("expected restored RAM to hold 0x11 and 0x22")
	}
}
