package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// Flag is the bit index of a flag in the F register.
type Flag uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4

	// flagMask covers the bits of F that hold flags.
	flagMask = 0xF0
)

// clearFlag clears a flag from the F register.
func (r *Registers) clearFlag(flag Flag) {
	r.f = bits.Reset(r.f, uint8(flag))
}

// setFlag sets a flag in the F register.
func (r *Registers) setFlag(flag Flag) {
	r.f = bits.Set(r.f, uint8(flag))
}

// setFlagTo sets or clears a flag depending on v.
func (r *Registers) setFlagTo(flag Flag, v bool) {
	r.f = bits.SetTo(r.f, uint8(flag), v)
}

// isFlagSet returns true if the given flag is set.
func (r *Registers) isFlagSet(flag Flag) bool {
	return bits.Test(r.f, uint8(flag))
}

// isFlagsSet returns true if all the given flags are set.
func (r *Registers) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !r.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// isFlagsNotSet returns true if none of the given flags are set.
func (r *Registers) isFlagsNotSet(flags ...Flag) bool {
	for _, flag := range flags {
		if r.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// setFlags sets all four flags at once.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.setFlagTo(FlagZero, zero)
	r.setFlagTo(FlagSubtract, subtract)
	r.setFlagTo(FlagHalfCarry, halfCarry)
	r.setFlagTo(FlagCarry, carry)
}

// Zero reports the Z flag.
func (r *Registers) Zero() bool { return r.isFlagSet(FlagZero) }

// SetZero sets or clears the Z flag.
func (r *Registers) SetZero(v bool) { r.setFlagTo(FlagZero, v) }

// Subtract reports the N flag.
func (r *Registers) Subtract() bool { return r.isFlagSet(FlagSubtract) }

// SetSubtract sets or clears the N flag.
func (r *Registers) SetSubtract(v bool) { r.setFlagTo(FlagSubtract, v) }

// HalfCarry reports the H flag.
func (r *Registers) HalfCarry() bool { return r.isFlagSet(FlagHalfCarry) }

// SetHalfCarry sets or clears the H flag.
func (r *Registers) SetHalfCarry(v bool) { r.setFlagTo(FlagHalfCarry, v) }

// Carry reports the C flag.
func (r *Registers) Carry() bool { return r.isFlagSet(FlagCarry) }

// SetCarry sets or clears the C flag.
func (r *Registers) SetCarry(v bool) { r.setFlagTo(FlagCarry, v) }

// carryBit returns the C flag as 0 or 1.
func (r *Registers) carryBit() uint8 {
	return bits.Val(r.f, uint8(FlagCarry))
}
