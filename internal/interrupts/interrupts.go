// Package interrupts provides the interrupt enable (IE) and
// interrupt flag (IF) registers, and the fixed, ordered set of
// interrupt sources that can be requested through them.
package interrupts

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Source identifies one of the five interrupt sources. The
// value of a Source is its bit index in both IE and IF, and
// also its priority: lower values are serviced first.
type Source uint8

const (
	// VBlank is requested every time the PPU enters VBlank.
	VBlank Source = iota
	// LCD is requested by the LCD STAT register when certain
	// conditions are met.
	LCD
	// Timer is requested when TIMA overflows.
	Timer
	// Serial is requested when a serial transfer completes.
	Serial
	// Joypad is requested when a selected joypad line goes
	// from high to low.
	Joypad
)

// Sources lists every interrupt source in priority order.
var Sources = [5]Source{VBlank, LCD, Timer, Serial, Joypad}

const (
	VBlankFlag = types.Bit0
	LCDFlag    = types.Bit1
	TimerFlag  = types.Bit2
	SerialFlag = types.Bit3
	JoypadFlag = types.Bit4

	// mask covers the bits of IE and IF used by a source.
	mask = 0x1F
)

// Flag returns the bit mask of the source in IE and IF.
func (s Source) Flag() uint8 {
	return 1 << s
}

// Vector returns the address of the source's service handler.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*8
}

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case LCD:
		return "LCD"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return fmt.Sprintf("Source(%d)", uint8(s))
}

// Service holds the interrupt Flag (IF) and Enable (IE)
// registers. It is mapped onto the memory bus, so both
// registers may also be changed by the running program, and
// peripherals request interrupts through it between CPU ticks.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// Read implements the bus device interface for types.IF and
// types.IE.
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case types.IF:
		return s.Flag | 0xE0 // the upper 3 bits are always set
	case types.IE:
		return s.Enable
	}
	return 0xFF
}

// Write implements the bus device interface for types.IF and
// types.IE.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case types.IF:
		s.Flag = value & mask // only the first 5 bits are used
	case types.IE:
		s.Enable = value
	}
}

// Request requests the given interrupt by setting the
// corresponding bit in the Flag register.
func (s *Service) Request(src Source) {
	s.Flag |= src.Flag()
}

// HasInterrupts returns true if there are any interrupts
// that are both requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&mask != 0
}

// Next returns the highest priority source that is both
// requested and enabled, without acknowledging it.
func (s *Service) Next() (Source, bool) {
	pending := s.Enable & s.Flag
	for _, src := range Sources {
		if pending&src.Flag() != 0 {
			return src, true
		}
	}
	return 0, false
}

// Acknowledge clears the request bit of the given source.
func (s *Service) Acknowledge(src Source) {
	s.Flag &^= src.Flag()
}

// Vector returns the vector of the highest priority pending
// and enabled interrupt, clearing its request bit, or 0 if no
// interrupt is pending.
func (s *Service) Vector() uint16 {
	src, ok := s.Next()
	if !ok {
		return 0
	}
	s.Acknowledge(src)
	return src.Vector()
}

var _ types.Stater = (*Service)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - Flag (uint8)
//   - Enable (uint8)
func (s *Service) Load(st *types.State) {
	s.Flag = st.Read8()
	s.Enable = st.Read8()
}

// Save implements the types.Stater interface.
//
// The values are saved in the following order:
//   - Flag (uint8)
//   - Enable (uint8)
func (s *Service) Save(st *types.State) {
	st.Write8(s.Flag)
	st.Write8(s.Enable)
}
