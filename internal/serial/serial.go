// Package serial provides the serial port of the Game Boy. A
// transfer is started by writing SC, and shifts the 8 bits of
// SB out to the attached Device while shifting 8 bits in,
// raising a serial interrupt once complete.
package serial

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ticksPerBit is the number of M-cycles taken to transfer
	// a single bit with the internal clock (8192 Hz).
	ticksPerBit = 128
)

// Controller is the serial controller. It is responsible for sending and
// receiving data to and from devices.
// Before a transfer, data holds the next byte to be sent. AKA types.SB
// During a transfer, it has a mix of the outgoing and the incoming data:
// each bit period, the leftmost bit of data is sent to the attached
// device and shifted out, and the incoming bit is shifted in.
//
//	Before : data = o7 o6 o5 o4 o3 o2 o1 o0
//	Bit 1  : data = o6 o5 o4 o3 o2 o1 o0 i0
//	...
//	Bit 8  : data = i0 i1 i2 i3 i4 i5 i6 i7
type Controller struct {
	data            uint8 // types.SB
	count           uint8 // the number of bits that have been transferred.
	ticks           uint8 // M-cycles until the next bit is transferred.
	InternalClock   bool  // if true, this controller is the master.
	TransferRequest bool  // if true, a transfer has been requested.

	AttachedDevice Device // the device that is attached to this controller.

	irq *interrupts.Service
	log log.Logger
}

// NewController creates a new Controller. By default, the
// Controller is attached to a nullDevice, which acts as if there
// is no device attached. Use Controller.Attach to attach one.
func NewController(irq *interrupts.Service, l log.Logger) *Controller {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &Controller{
		irq:            irq,
		log:            l,
		AttachedDevice: nullDevice{},
	}
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// Read implements the bus device interface for types.SB and
// types.SC.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.SB:
		return c.data
	case types.SC:
		value := uint8(0x7E) // bits 1-6 are unused
		if c.TransferRequest {
			value |= types.Bit7
		}
		if c.InternalClock {
			value |= types.Bit0
		}
		return value
	}
	return 0xFF
}

// Write implements the bus device interface for types.SB and
// types.SC.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.SB:
		c.data = value
	case types.SC:
		c.InternalClock = value&types.Bit0 == types.Bit0
		c.TransferRequest = value&types.Bit7 == types.Bit7
		if c.TransferRequest && c.InternalClock {
			c.count = 0
			c.ticks = ticksPerBit
			c.log.Debugf("serial: transfer started with SB=0x%02X", c.data)
		}
	}
}

// TickM ticks the serial controller by 1 M-Cycle. Only transfers
// clocked by this controller make progress, an external clock
// is never driven.
func (c *Controller) TickM() {
	if !c.TransferRequest || !c.InternalClock {
		return
	}
	if c.ticks--; c.ticks > 0 {
		return
	}

	bit := c.AttachedDevice.Send()
	c.AttachedDevice.Receive(c.data&types.Bit7 == types.Bit7)
	c.data <<= 1
	if bit {
		c.data |= 1
	}

	if c.count++; c.count == 8 {
		c.count = 0
		c.TransferRequest = false
		c.irq.Request(interrupts.Serial)
		c.log.Debugf("serial: transfer complete, SB=0x%02X", c.data)
		return
	}
	c.ticks = ticksPerBit
}

var _ types.Stater = (*Controller)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - data (uint8)
//   - count (uint8)
//   - ticks (uint8)
//   - TransferRequest (bool)
//   - InternalClock (bool)
func (c *Controller) Load(s *types.State) {
	c.data = s.Read8()
	c.count = s.Read8()
	c.ticks = s.Read8()
	c.TransferRequest = s.ReadBool()
	c.InternalClock = s.ReadBool()
}

// Save implements the types.Stater interface.
//
// The values are saved in the following order:
//   - data (uint8)
//   - count (uint8)
//   - ticks (uint8)
//   - TransferRequest (bool)
//   - InternalClock (bool)
func (c *Controller) Save(s *types.State) {
	s.Write8(c.data)
	s.Write8(c.count)
	s.Write8(c.ticks)
	s.WriteBool(c.TransferRequest)
	s.WriteBool(c.InternalClock)
}
