package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// increment increments n by 1.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.SetZero(result == 0)
	c.SetSubtract(false)
	c.SetHalfCarry(bits.HalfCarryAdd(n, 1, 0))
	return result
}

// decrement decrements n by 1.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.SetZero(result == 0)
	c.SetSubtract(true)
	c.SetHalfCarry(bits.HalfBorrowSub(n, 1, 0))
	return result
}

// add adds n to the A Register, plus the carry flag when
// carry is true.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, carry bool) {
	var in uint8
	if carry {
		in = c.carryBit()
	}
	sum := uint16(c.A) + uint16(n) + uint16(in)
	result := uint8(sum)
	c.setFlags(result == 0, false, bits.HalfCarryAdd(c.A, n, in), sum > 0xFF)
	c.A = result
}

// sub subtracts n from the A Register, plus the carry flag
// when carry is true.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, carry bool) {
	c.A = c.subtract(n, carry)
}

// compare compares n to the A Register, setting the flags as
// sub would without storing the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) compare(n uint8) {
	c.subtract(n, false)
}

func (c *CPU) subtract(n uint8, carry bool) uint8 {
	var in uint8
	if carry {
		in = c.carryBit()
	}
	diff := int16(c.A) - int16(n) - int16(in)
	result := uint8(diff)
	c.setFlags(result == 0, true, bits.HalfBorrowSub(c.A, n, in), diff < 0)
	return result
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// addUint16 adds n to the HL register pair.
//
//	ADD HL, n
//	n = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(n uint16) {
	hl := c.HL()
	sum := uint32(hl) + uint32(n)
	c.SetSubtract(false)
	c.SetHalfCarry((hl&0x0FFF)+(n&0x0FFF) > 0x0FFF)
	c.SetCarry(sum > 0xFFFF)
	c.SetHL(uint16(sum))
}

// addSPSigned returns SP plus the signed offset e. The flags
// are computed from the unsigned addition of e to the low byte
// of SP.
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	low := uint8(c.SP)
	c.setFlags(false, false, bits.HalfCarryAdd(low, e, 0), uint16(low)+uint16(e) > 0xFF)
	return uint16(int32(c.SP) + int32(int8(e)))
}

// decimalAdjust adjusts the A Register so that the result of
// the previous addition or subtraction is correct packed BCD.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	if !c.Subtract() {
		if c.Carry() || c.A > 0x99 {
			c.A += 0x60
			c.SetCarry(true)
		}
		if c.HalfCarry() || c.A&0x0F > 0x09 {
			c.A += 0x06
		}
	} else {
		if c.Carry() {
			c.A -= 0x60
		}
		if c.HalfCarry() {
			c.A -= 0x06
		}
	}
	c.SetZero(c.A == 0)
	c.SetHalfCarry(false)
}

// complement flips every bit of the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.SetSubtract(true)
	c.SetHalfCarry(true)
}

// setCarryFlag sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) setCarryFlag() {
	c.SetSubtract(false)
	c.SetHalfCarry(false)
	c.SetCarry(true)
}

// complementCarryFlag flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) complementCarryFlag() {
	c.SetSubtract(false)
	c.SetHalfCarry(false)
	c.SetCarry(!c.Carry())
}
