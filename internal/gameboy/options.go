package gameboy

import (
	"io"

	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance before it is built.
type Opt func(gb *GameBoy)

// WithLogger sets the logger used by the machine and its
// components.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithSerialOutput writes every byte sent over the serial port
// to w. Test programs commonly report their results this way.
func WithSerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOutput = w
	}
}

// WithState restores the machine from a snapshot returned by
// GameBoy.State.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.state = b
	}
}

// WithProgramAt places the program at the given address of the
// ROM region, instead of 0x0000. A program placed at 0x0100 is
// executed from its first byte.
func WithProgramAt(address uint16) Opt {
	return func(gb *GameBoy) {
		gb.programBase = address
	}
}
