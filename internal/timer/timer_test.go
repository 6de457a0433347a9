package timer

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
)

func newTestController() (*Controller, *interrupts.Service) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.Write(types.DIV, 0)
	return c, irq
}

func TestController_PowerOn(t *testing.T) {
	c := NewController(interrupts.NewService())
	if c.Read(types.DIV) != 0xAB {
		t.Errorf("expected DIV to be 0xAB, got 0x%02X", c.Read(types.DIV))
	}
	if c.Read(types.TAC) != 0xF8 {
		t.Errorf("expected TAC to be 0xF8, got 0x%02X", c.Read(types.TAC))
	}
}

func TestController_Divider(t *testing.T) {
	c, _ := newTestController()

	for i := 0; i < 64; i++ {
		c.TickM()
	}
	if c.Read(types.DIV) != 0x01 {
		t.Errorf("expected DIV to be 0x01, got 0x%02X", c.Read(types.DIV))
	}

	c.Write(types.DIV, 0x42)
	if c.Read(types.DIV) != 0x00 || c.Divider() != 0 {
		t.Errorf("expected a write to reset the divider, got 0x%04X", c.Divider())
	}
}

func TestController_TIMA(t *testing.T) {
	for _, tt := range []struct {
		tac    uint8
		cycles int // M-cycles per increment
	}{
		{0x04, 256},
		{0x05, 4},
		{0x06, 16},
		{0x07, 64},
	} {
		c, _ := newTestController()
		c.Write(types.TAC, tt.tac)

		for i := 0; i < tt.cycles-1; i++ {
			c.TickM()
		}
		if c.Read(types.TIMA) != 0 {
			t.Errorf("TAC %02X: expected TIMA not to increment before %d cycles", tt.tac, tt.cycles)
		}
		c.TickM()
		if c.Read(types.TIMA) != 1 {
			t.Errorf("TAC %02X: expected TIMA to be 1, got %d", tt.tac, c.Read(types.TIMA))
		}
	}
}

func TestController_Disabled(t *testing.T) {
	c, _ := newTestController()
	c.Write(types.TAC, 0x01)

	for i := 0; i < 1024; i++ {
		c.TickM()
	}
	if c.Read(types.TIMA) != 0 {
		t.Errorf("expected a disabled timer not to count, got %d", c.Read(types.TIMA))
	}
}

func TestController_Overflow(t *testing.T) {
	c, irq := newTestController()
	irq.Enable = interrupts.TimerFlag
	c.Write(types.TMA, 0x42)
	c.Write(types.TIMA, 0xFF)
	c.Write(types.TAC, 0x05)

	for i := 0; i < 4; i++ {
		c.TickM()
	}
	if c.Read(types.TIMA) != 0x00 {
		t.Errorf("expected TIMA to read 0 during the reload delay, got 0x%02X", c.Read(types.TIMA))
	}
	if irq.HasInterrupts() {
		t.Errorf("expected no interrupt before the reload")
	}

	c.TickM()
	if c.Read(types.TIMA) != 0x42 {
		t.Errorf("expected TIMA to be reloaded with 0x42, got 0x%02X", c.Read(types.TIMA))
	}
	if irq.Flag&interrupts.TimerFlag == 0 {
		t.Errorf("expected a timer interrupt to be requested")
	}
}

func TestController_CancelReload(t *testing.T) {
	c, irq := newTestController()
	c.Write(types.TMA, 0x42)
	c.Write(types.TIMA, 0xFF)
	c.Write(types.TAC, 0x05)

	for i := 0; i < 4; i++ {
		c.TickM()
	}
	c.Write(types.TIMA, 0x10)
	c.TickM()
	if c.Read(types.TIMA) != 0x10 || irq.Flag != 0 {
		t.Errorf("expected the reload to be cancelled, got TIMA=0x%02X IF=%08b", c.Read(types.TIMA), irq.Flag)
	}
}

func TestController_DividerResetEdge(t *testing.T) {
	c, _ := newTestController()
	c.Write(types.TAC, 0x05)

	// two M-cycles set bit 3 of the divider
	c.TickM()
	c.TickM()
	c.Write(types.DIV, 0)
	if c.Read(types.TIMA) != 1 {
		t.Errorf("expected resetting DIV with the selected bit set to increment TIMA, got %d", c.Read(types.TIMA))
	}
}

func TestController_State(t *testing.T) {
	c, _ := newTestController()
	c.Write(types.TAC, 0x05)
	c.Write(types.TMA, 0x80)
	for i := 0; i < 10; i++ {
		c.TickM()
	}

	fingerprint := types.Fingerprint(c)
	st := types.NewState()
	c.Save(st)

	restored := NewController(interrupts.NewService())
	restored.Load(types.StateFromBytes(st.Bytes()))
	if types.Fingerprint(restored) != fingerprint {
		t.Errorf("expected the restored timer to match")
	}
	if restored.Read(types.TIMA) != c.Read(types.TIMA) {
		t.Errorf("expected TIMA %d, got %d", c.Read(types.TIMA), restored.Read(types.TIMA))
	}
}
