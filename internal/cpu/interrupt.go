package cpu

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
)

// RequestInterrupt requests the given interrupt source.
func (c *CPU) RequestInterrupt(src interrupts.Source) {
	c.irq.Request(src)
}

// executeInterrupt services the highest priority interrupt that
// is both requested and enabled. IME is cleared, the request is
// acknowledged, and the current PC is pushed before jumping to
// the source's vector. It returns the cycles taken.
func (c *CPU) executeInterrupt() uint8 {
	src, ok := c.irq.Next()
	if !ok {
		return 0
	}
	c.IME = false
	c.irq.Acknowledge(src)
	c.pushStack(c.PC)
	c.PC = src.Vector()
	c.mode = ModeNormal
	return InterruptCycles
}

// halt suspends instruction fetch until an interrupt is both
// requested and enabled. With an interrupt already pending the
// CPU does not halt: if IME is disabled the next opcode is read
// twice, and if IME was just enabled by EI the interrupt returns
// to the HALT itself.
//
//	HALT
func (c *CPU) halt() {
	if c.irq.HasInterrupts() {
		switch {
		case !c.IME:
			c.mode = ModeHaltBug
			return
		case c.eiApplied:
			c.PC--
			return
		}
	}
	c.mode = ModeHalt
}

// stop enters stop mode and resets the divider of the timer.
// The second byte of the opcode is skipped.
//
//	STOP 0
func (c *CPU) stop() {
	c.readOperand()
	c.writeByte(types.DIV, 0)
	c.mode = ModeStop
}

// enableInterrupts enables the IME after the next instruction.
//
//	EI
func (c *CPU) enableInterrupts() {
	if !c.IME {
		c.eiPending = true
	}
}

// disableInterrupts disables the IME immediately, cancelling a
// preceding EI.
//
//	DI
func (c *CPU) disableInterrupts() {
	c.IME = false
	c.eiPending = false
}
