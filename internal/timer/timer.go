// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
)

// overflowDelay is the number of T-cycles TIMA reads 0 after
// overflowing, before it is reloaded from TMA.
const overflowDelay = 4

// bits holds the bit of the internal divider that clocks TIMA
// for each frequency selected by TAC.
//
//	00 = 4096 Hz   (bit 9)
//	01 = 262144 Hz (bit 3)
//	10 = 65536 Hz  (bit 5)
//	11 = 16384 Hz  (bit 7)
var bits = [4]uint16{512, 8, 32, 128}

// Controller is a timer controller. It owns the internal
// divider, increments TIMA on the falling edge of the divider
// bit selected by TAC, and requests a timer interrupt when
// TIMA overflows.
type Controller struct {
	div  uint16 // internal divider, DIV is the upper 8 bits
	tima uint8
	tma  uint8
	tac  uint8

	lastBit          bool
	ticksUntilReload uint8
	irq              *interrupts.Service
}

// NewController returns a new timer controller, in the state
// left by the boot ROM.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		irq: irq,
		div: 0xABCC,
	}
}

// Enabled returns true if TIMA is counting.
func (c *Controller) Enabled() bool {
	return c.tac&types.Bit2 != 0
}

// Divider returns the internal 16-bit divider.
func (c *Controller) Divider() uint16 {
	return c.div
}

// TickM ticks the timer controller by 1 M-Cycle (4 T-Cycles).
func (c *Controller) TickM() {
	for i := 0; i < 4; i++ {
		if c.ticksUntilReload > 0 {
			c.ticksUntilReload--
			if c.ticksUntilReload == 0 {
				c.tima = c.tma
				c.irq.Request(interrupts.Timer)
			}
		}
		c.setDivider(c.div + 1)
	}
}

// setDivider updates the internal divider, and increments TIMA
// if the selected bit saw a falling edge.
func (c *Controller) setDivider(div uint16) {
	c.div = div
	c.update()
}

// update samples the timer signal. Changing the divider, the
// selected frequency or the enable bit can all produce a
// falling edge.
func (c *Controller) update() {
	newBit := c.Enabled() && c.div&bits[c.tac&0b11] != 0
	if c.lastBit && !newBit {
		c.tima++
		if c.tima == 0 {
			c.ticksUntilReload = overflowDelay
		}
	}
	c.lastBit = newBit
}

// Read implements the bus device interface for types.DIV,
// types.TIMA, types.TMA and types.TAC.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return uint8(c.div >> 8)
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		return c.tac | 0b1111_1000
	}
	return 0xFF
}

// Write implements the bus device interface for types.DIV,
// types.TIMA, types.TMA and types.TAC.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		// any write resets the whole divider
		c.setDivider(0)
	case types.TIMA:
		// writing TIMA during the reload delay cancels the reload
		c.tima = value
		c.ticksUntilReload = 0
	case types.TMA:
		c.tma = value
	case types.TAC:
		c.tac = value & 0b111
		c.update()
	}
}

var _ types.Stater = (*Controller)(nil)

// Load loads the state of the controller.
func (c *Controller) Load(s *types.State) {
	c.div = s.Read16()
	c.tima = s.Read8()
	c.tma = s.Read8()
	c.tac = s.Read8()
	c.lastBit = s.ReadBool()
	c.ticksUntilReload = s.Read8()
}

// Save saves the state of the controller.
func (c *Controller) Save(s *types.State) {
	s.Write16(c.div)
	s.Write8(c.tima)
	s.Write8(c.tma)
	s.Write8(c.tac)
	s.WriteBool(c.lastBit)
	s.Write8(c.ticksUntilReload)
}
