package cpu

import "fmt"

// cbOperations lists the rotate, shift and swap operations of the
// extended table in the order of bits 3-5 of their opcodes.
var cbOperations = [8]struct {
	name string
	fn   func(c *CPU, n uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

// generateCBInstructions defines the 256 instructions of the
// extended table. Costs include the fetch of the prefix.
func generateCBInstructions() {
	// 0x00 - 0x3F - rotates, shifts and swap
	for opcode := 0x00; opcode < 0x40; opcode++ {
		op := cbOperations[opcode>>3]
		fn := op.fn
		o := operandIndex(uint8(opcode) & 0b111)
		DefineInstructionCB(uint8(opcode), fmt.Sprintf("%s %s", op.name, o), cost(o, 2, 4), func(c *CPU) {
			c.write8(o, fn(c, c.read8(o)))
		})
	}

	for bit := uint8(0); bit < 8; bit++ {
		bit := bit
		for j := uint8(0); j < 8; j++ {
			o := operandIndex(j)
			offset := bit<<3 + j

			// 0x40 - 0x7F - BIT b, r
			DefineInstructionCB(0x40+offset, fmt.Sprintf("BIT %d,%s", bit, o), cost(o, 2, 3), func(c *CPU) {
				c.testBit(c.read8(o), bit)
			})
			// 0x80 - 0xBF - RES b, r
			DefineInstructionCB(0x80+offset, fmt.Sprintf("RES %d,%s", bit, o), cost(o, 2, 4), func(c *CPU) {
				c.write8(o, c.resetBit(c.read8(o), bit))
			})
			// 0xC0 - 0xFF - SET b, r
			DefineInstructionCB(0xC0+offset, fmt.Sprintf("SET %d,%s", bit, o), cost(o, 2, 4), func(c *CPU) {
				c.write8(o, c.setBit(c.read8(o), bit))
			})
		}
	}
}
