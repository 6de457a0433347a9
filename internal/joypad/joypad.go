// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// Pressed holds a bit per Button, set while the button is
	// held down. The lower 4 bits are the action buttons and
	// the upper 4 bits are the direction buttons.
	Pressed uint8

	selection uint8 // bits 4-5 of P1
	irq       *interrupts.Service
}

// New returns a new joypad state with both button groups
// selected, as left by the boot ROM.
func New(irq *interrupts.Service) *State {
	return &State{irq: irq}
}

// Read implements the bus device interface for types.P1.
func (s *State) Read(address uint16) uint8 {
	if address != types.P1 {
		return 0xFF
	}
	var lines uint8
	if s.selection&types.Bit4 == 0 {
		lines |= s.Pressed >> 4 & 0xF
	}
	if s.selection&types.Bit5 == 0 {
		lines |= s.Pressed & 0xF
	}
	return 0xC0 | s.selection | (lines ^ 0xF)
}

// Write implements the bus device interface for types.P1. Only
// the selection bits are writable.
func (s *State) Write(address uint16, value uint8) {
	if address == types.P1 {
		s.selection = value & (types.Bit4 | types.Bit5)
	}
}

// Press presses a button, requesting a joypad interrupt if it
// was not already held.
func (s *State) Press(button Button) {
	if bits.Test(s.Pressed, button) {
		return
	}
	s.Pressed = bits.Set(s.Pressed, button)
	s.irq.Request(interrupts.Joypad)
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.Pressed = bits.Reset(s.Pressed, button)
}

var _ types.Stater = (*State)(nil)

// Load implements the types.Stater interface.
func (s *State) Load(st *types.State) {
	s.Pressed = st.Read8()
	s.selection = st.Read8()
}

// Save implements the types.Stater interface.
func (s *State) Save(st *types.State) {
	st.Write8(s.Pressed)
	st.Write8(s.selection)
}
