package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Register represents a CPU Register which is used to hold an 8-bit value.
type Register = uint8

// Registers holds the register file of the CPU: the accumulator,
// the flags, the six general purpose registers, and the stack
// pointer and program counter.
//
// The general purpose registers form the register pairs BC, DE
// and HL, and the accumulator and flags form AF. In every pair
// the first-named register is the high byte.
//
// The flags register is only reachable through the flag
// accessors and SetAF, which keeps its lower nibble zero.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register
	f Register

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next byte to be fetched.
	PC uint16
}

// BC returns the value of the BC register pair.
func (r *Registers) BC() uint16 { return bits.Join(r.B, r.C) }

// SetBC sets the value of the BC register pair.
func (r *Registers) SetBC(v uint16) { r.B, r.C = bits.Split(v) }

// DE returns the value of the DE register pair.
func (r *Registers) DE() uint16 { return bits.Join(r.D, r.E) }

// SetDE sets the value of the DE register pair.
func (r *Registers) SetDE(v uint16) { r.D, r.E = bits.Split(v) }

// HL returns the value of the HL register pair.
func (r *Registers) HL() uint16 { return bits.Join(r.H, r.L) }

// SetHL sets the value of the HL register pair.
func (r *Registers) SetHL(v uint16) { r.H, r.L = bits.Split(v) }

// AF returns the value of the AF register pair.
func (r *Registers) AF() uint16 { return bits.Join(r.A, r.f) }

// SetAF sets the value of the AF register pair. The lower
// nibble of F is always zero.
func (r *Registers) SetAF(v uint16) {
	var f uint8
	r.A, f = bits.Split(v)
	r.f = f & flagMask
}

// Flags returns the value of the F register.
func (r *Registers) Flags() uint8 { return r.f }

// String formats the register file for diagnostics.
func (r Registers) String() string {
	return fmt.Sprintf("AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X",
		r.AF(), r.BC(), r.DE(), r.HL(), r.SP, r.PC)
}

// Pair selects one of the 16-bit register pairs in an opcode.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairSP
	PairAF
)

func (p Pair) String() string {
	switch p {
	case PairBC:
		return "BC"
	case PairDE:
		return "DE"
	case PairHL:
		return "HL"
	case PairSP:
		return "SP"
	case PairAF:
		return "AF"
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// pair returns the value of the given register pair.
func (r *Registers) pair(p Pair) uint16 {
	switch p {
	case PairBC:
		return r.BC()
	case PairDE:
		return r.DE()
	case PairHL:
		return r.HL()
	case PairSP:
		return r.SP
	case PairAF:
		return r.AF()
	}
	panic(&InvalidIndexError{What: "register pair", Index: uint8(p)})
}

// setPair sets the value of the given register pair.
func (r *Registers) setPair(p Pair, v uint16) {
	switch p {
	case PairBC:
		r.SetBC(v)
	case PairDE:
		r.SetDE(v)
	case PairHL:
		r.SetHL(v)
	case PairSP:
		r.SP = v
	case PairAF:
		r.SetAF(v)
	default:
		panic(&InvalidIndexError{What: "register pair", Index: uint8(p)})
	}
}
