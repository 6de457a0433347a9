package cpu

import "fmt"

// Condition selects the flag test of a conditional jump, call
// or return, using the encoding of bits 3-4 of the opcode.
type Condition uint8

const (
	ConditionNZ Condition = iota
	ConditionZ
	ConditionNC
	ConditionC
)

var conditions = [4]Condition{ConditionNZ, ConditionZ, ConditionNC, ConditionC}

func (cc Condition) String() string {
	switch cc {
	case ConditionNZ:
		return "NZ"
	case ConditionZ:
		return "Z"
	case ConditionNC:
		return "NC"
	case ConditionC:
		return "C"
	}
	return fmt.Sprintf("Condition(%d)", uint8(cc))
}

// test returns true if the condition holds for the current flags.
func (c *CPU) test(cc Condition) bool {
	switch cc {
	case ConditionNZ:
		return c.isFlagsNotSet(FlagZero)
	case ConditionZ:
		return c.isFlagsSet(FlagZero)
	case ConditionNC:
		return c.isFlagsNotSet(FlagCarry)
	case ConditionC:
		return c.isFlagsSet(FlagCarry)
	}
	panic(&InvalidIndexError{What: "condition", Index: uint8(cc)})
}

// taken tests the condition and records the result, so that the
// dispatcher charges the taken cost.
func (c *CPU) taken(cc Condition) bool {
	if c.test(cc) {
		c.branched = true
		return true
	}
	return false
}

// push8 pushes a single byte onto the stack.
func (c *CPU) push8(value uint8) {
	c.SP--
	c.writeByte(c.SP, value)
}

// pop8 pops a single byte off the stack.
func (c *CPU) pop8() uint8 {
	value := c.readByte(c.SP)
	c.SP++
	return value
}

// pushStack pushes a 16 bit value onto the stack, the high byte
// first so that it ends up at the higher address.
func (c *CPU) pushStack(value uint16) {
	c.push8(uint8(value >> 8))
	c.push8(uint8(value))
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	low := c.pop8()
	high := c.pop8()
	return uint16(high)<<8 | uint16(low)
}

// jumpAbsolute jumps to the given address.
//
//	JP nn
//	JP HL
func (c *CPU) jumpAbsolute(address uint16) {
	c.PC = address
}

// jumpRelative jumps to the address relative to the PC of the
// next instruction.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// call pushes the address of the next instruction onto the stack
// and jumps to the given address.
//
//	CALL nn
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// ret pops the return address off the stack and jumps to it.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// rst pushes the address of the next instruction onto the stack
// and jumps to one of the fixed addresses 0x00-0x38.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) rst(vector uint8) {
	c.call(uint16(vector))
}

// generateJumpInstructions defines the control flow instructions
// of the primary table.
func generateJumpInstructions() {
	DefineInstruction(0x18, "JR r8", 3, func(c *CPU) {
		c.jumpRelative(c.readOperand())
	})
	DefineInstruction(0xC3, "JP a16", 4, func(c *CPU) {
		c.jumpAbsolute(c.readOperand16())
	})
	DefineInstruction(0xE9, "JP HL", 1, func(c *CPU) {
		c.jumpAbsolute(c.HL())
	})
	DefineInstruction(0xCD, "CALL a16", 6, func(c *CPU) {
		c.call(c.readOperand16())
	})
	DefineInstruction(0xC9, "RET", 4, func(c *CPU) {
		c.ret()
	})
	DefineInstruction(0xD9, "RETI", 4, func(c *CPU) {
		c.ret()
		c.IME = true
	})

	for i, cc := range conditions {
		cc := cc
		offset := uint8(i) << 3

		// 0x20, 0x28, 0x30, 0x38 - JR cc, e
		DefineInstruction(0x20+offset, fmt.Sprintf("JR %s,r8", cc), 2, func(c *CPU) {
			e := c.readOperand()
			if c.taken(cc) {
				c.jumpRelative(e)
			}
		}, 3)

		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, nn
		DefineInstruction(0xC2+offset, fmt.Sprintf("JP %s,a16", cc), 3, func(c *CPU) {
			address := c.readOperand16()
			if c.taken(cc) {
				c.jumpAbsolute(address)
			}
		}, 4)

		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, nn
		DefineInstruction(0xC4+offset, fmt.Sprintf("CALL %s,a16", cc), 3, func(c *CPU) {
			address := c.readOperand16()
			if c.taken(cc) {
				c.call(address)
			}
		}, 6)

		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		DefineInstruction(0xC0+offset, fmt.Sprintf("RET %s", cc), 2, func(c *CPU) {
			if c.taken(cc) {
				c.ret()
			}
		}, 5)
	}

	// 0xC7, 0xCF, ..., 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		vector := i * 8
		DefineInstruction(0xC7+vector, fmt.Sprintf("RST %02XH", vector), 4, func(c *CPU) {
			c.rst(vector)
		})
	}

	// 0xC1, 0xD1, 0xE1, 0xF1 - POP rr
	// 0xC5, 0xD5, 0xE5, 0xF5 - PUSH rr
	for i, p := range [4]Pair{PairBC, PairDE, PairHL, PairAF} {
		p := p
		offset := uint8(i) << 4
		DefineInstruction(0xC1+offset, fmt.Sprintf("POP %s", p), 3, func(c *CPU) {
			c.setPair(p, c.popStack())
		})
		DefineInstruction(0xC5+offset, fmt.Sprintf("PUSH %s", p), 4, func(c *CPU) {
			c.pushStack(c.pair(p))
		})
	}
}
