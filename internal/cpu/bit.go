package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// checkBit panics if position is not a bit index of a byte.
func checkBit(position uint8) {
	if position > 7 {
		panic(&InvalidIndexError{What: "bit", Index: position})
	}
}

// testBit tests the bit at the given position in value.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	checkBit(position)
	c.SetZero(!bits.Test(value, position))
	c.SetSubtract(false)
	c.SetHalfCarry(true)
}

// setBit sets the bit at the given position in value. No flags
// are affected.
//
//	SET n, r
func (c *CPU) setBit(value uint8, position uint8) uint8 {
	checkBit(position)
	return bits.Set(value, position)
}

// resetBit resets the bit at the given position in value. No
// flags are affected.
//
//	RES n, r
func (c *CPU) resetBit(value uint8, position uint8) uint8 {
	checkBit(position)
	return bits.Reset(value, position)
}
