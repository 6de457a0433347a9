package cpu

import (
	"fmt"
	"strings"
)

func init() {
	DefineInstruction(0x00, "NOP", 1, func(c *CPU) {})
	DefineInstruction(0x10, "STOP 0", 1, func(c *CPU) { c.stop() })
	DefineInstruction(0x76, "HALT", 1, func(c *CPU) { c.halt() })
	DefineInstruction(0xF3, "DI", 1, func(c *CPU) { c.disableInterrupts() })
	DefineInstruction(0xFB, "EI", 1, func(c *CPU) { c.enableInterrupts() })

	DefineInstruction(0x07, "RLCA", 1, func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeftCarry) })
	DefineInstruction(0x0F, "RRCA", 1, func(c *CPU) { c.rotateAccumulator((*CPU).rotateRightCarry) })
	DefineInstruction(0x17, "RLA", 1, func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeftThroughCarry) })
	DefineInstruction(0x1F, "RRA", 1, func(c *CPU) { c.rotateAccumulator((*CPU).rotateRightThroughCarry) })

	DefineInstruction(0x27, "DAA", 1, func(c *CPU) { c.decimalAdjust() })
	DefineInstruction(0x2F, "CPL", 1, func(c *CPU) { c.complement() })
	DefineInstruction(0x37, "SCF", 1, func(c *CPU) { c.setCarryFlag() })
	DefineInstruction(0x3F, "CCF", 1, func(c *CPU) { c.complementCarryFlag() })

	// the prefix has no handler of its own, the dispatcher reads
	// the extended table instead
	InstructionSet[0xCB] = Instruction{name: "PREFIX CB", cycles: 1, branchCycles: 1}

	generateLoadInstructions()
	generateLoadInstructions16()
	generateArithmeticInstructions()
	generateJumpInstructions()
	generateCBInstructions()

	for opcode, instruction := range InstructionSet {
		instructionLength[opcode] = encodedLength(uint8(opcode), instruction.name)
	}
}

// encodedLength derives the length of a primary instruction from
// the immediate operands named in its mnemonic.
func encodedLength(opcode uint8, name string) uint8 {
	switch {
	case opcode == 0x10 || opcode == 0xCB:
		return 2
	case strings.Contains(name, "16"):
		return 3
	case strings.Contains(name, "d8"), strings.Contains(name, "a8"), strings.Contains(name, "r8"):
		return 2
	}
	return 1
}

// cost returns base for register operands and memory for (HL).
func cost(o Operand, base, memory uint8) uint8 {
	if o.IsMemory() {
		return memory
	}
	return base
}

// generateLoadInstructions defines the 8-bit loads.
func generateLoadInstructions() {
	// 0x40 - 0x7F - LD r, r'
	for opcode := uint8(0x40); opcode < 0x80; opcode++ {
		if opcode == 0x76 {
			// LD (HL),(HL) is HALT
			continue
		}
		dst, src := operandIndex(opcode>>3&0b111), operandIndex(opcode&0b111)
		DefineInstruction(opcode, fmt.Sprintf("LD %s,%s", dst, src), cost(dst, cost(src, 1, 2), 2), func(c *CPU) {
			c.write8(dst, c.read8(src))
		})
	}

	// 0x06, 0x0E, ..., 0x3E - LD r, d8
	for i, dst := range operands {
		dst := dst
		DefineInstruction(0x06+uint8(i)<<3, fmt.Sprintf("LD %s,d8", dst), cost(dst, 2, 3), func(c *CPU) {
			c.write8(dst, c.readOperand())
		})
	}

	// indirect loads through BC, DE and HL
	DefineInstruction(0x02, "LD (BC),A", 2, func(c *CPU) { c.writeByte(c.BC(), c.A) })
	DefineInstruction(0x12, "LD (DE),A", 2, func(c *CPU) { c.writeByte(c.DE(), c.A) })
	DefineInstruction(0x22, "LD (HL+),A", 2, func(c *CPU) {
		c.writeByte(c.HL(), c.A)
		c.SetHL(c.HL() + 1)
	})
	DefineInstruction(0x32, "LD (HL-),A", 2, func(c *CPU) {
		c.writeByte(c.HL(), c.A)
		c.SetHL(c.HL() - 1)
	})
	DefineInstruction(0x0A, "LD A,(BC)", 2, func(c *CPU) { c.A = c.readByte(c.BC()) })
	DefineInstruction(0x1A, "LD A,(DE)", 2, func(c *CPU) { c.A = c.readByte(c.DE()) })
	DefineInstruction(0x2A, "LD A,(HL+)", 2, func(c *CPU) {
		c.A = c.readByte(c.HL())
		c.SetHL(c.HL() + 1)
	})
	DefineInstruction(0x3A, "LD A,(HL-)", 2, func(c *CPU) {
		c.A = c.readByte(c.HL())
		c.SetHL(c.HL() - 1)
	})

	// high page loads, 0xFF00 + n
	DefineInstruction(0xE0, "LDH (a8),A", 3, func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.A)
	})
	DefineInstruction(0xF0, "LDH A,(a8)", 3, func(c *CPU) {
		c.A = c.readByte(0xFF00 + uint16(c.readOperand()))
	})
	DefineInstruction(0xE2, "LD (C),A", 2, func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.C), c.A)
	})
	DefineInstruction(0xF2, "LD A,(C)", 2, func(c *CPU) {
		c.A = c.readByte(0xFF00 + uint16(c.C))
	})

	// absolute loads
	DefineInstruction(0xEA, "LD (a16),A", 4, func(c *CPU) {
		c.writeByte(c.readOperand16(), c.A)
	})
	DefineInstruction(0xFA, "LD A,(a16)", 4, func(c *CPU) {
		c.A = c.readByte(c.readOperand16())
	})
}

// generateLoadInstructions16 defines the 16-bit loads and the
// 16-bit arithmetic on register pairs.
func generateLoadInstructions16() {
	for i, p := range [4]Pair{PairBC, PairDE, PairHL, PairSP} {
		p := p
		offset := uint8(i) << 4

		// 0x01, 0x11, 0x21, 0x31 - LD rr, d16
		DefineInstruction(0x01+offset, fmt.Sprintf("LD %s,d16", p), 3, func(c *CPU) {
			c.setPair(p, c.readOperand16())
		})
		// 0x03, 0x13, 0x23, 0x33 - INC rr
		DefineInstruction(0x03+offset, fmt.Sprintf("INC %s", p), 2, func(c *CPU) {
			c.setPair(p, c.pair(p)+1)
		})
		// 0x0B, 0x1B, 0x2B, 0x3B - DEC rr
		DefineInstruction(0x0B+offset, fmt.Sprintf("DEC %s", p), 2, func(c *CPU) {
			c.setPair(p, c.pair(p)-1)
		})
		// 0x09, 0x19, 0x29, 0x39 - ADD HL, rr
		DefineInstruction(0x09+offset, fmt.Sprintf("ADD HL,%s", p), 2, func(c *CPU) {
			c.addUint16(c.pair(p))
		})
	}

	DefineInstruction(0x08, "LD (a16),SP", 5, func(c *CPU) {
		c.writeWord(c.readOperand16(), c.SP)
	})
	DefineInstruction(0xE8, "ADD SP,r8", 4, func(c *CPU) {
		c.SP = c.addSPSigned(c.readOperand())
	})
	DefineInstruction(0xF8, "LD HL,SP+r8", 3, func(c *CPU) {
		c.SetHL(c.addSPSigned(c.readOperand()))
	})
	DefineInstruction(0xF9, "LD SP,HL", 2, func(c *CPU) {
		c.SP = c.HL()
	})
}

// aluOperations lists the eight accumulator operations in the
// order of bits 3-5 of their opcodes.
var aluOperations = [8]struct {
	name string
	fn   func(c *CPU, n uint8)
}{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB ", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND ", (*CPU).and},
	{"XOR ", (*CPU).xor},
	{"OR ", (*CPU).or},
	{"CP ", (*CPU).compare},
}

// generateArithmeticInstructions defines the 8-bit arithmetic
// and logic instructions.
func generateArithmeticInstructions() {
	for i, op := range aluOperations {
		fn := op.fn
		offset := uint8(i) << 3

		// 0x80 - 0xBF - op A, r
		for j, src := range operands {
			src := src
			DefineInstruction(0x80+offset+uint8(j), op.name+src.String(), cost(src, 1, 2), func(c *CPU) {
				fn(c, c.read8(src))
			})
		}

		// 0xC6, 0xCE, ..., 0xFE - op A, d8
		DefineInstruction(0xC6+offset, op.name+"d8", 2, func(c *CPU) {
			fn(c, c.readOperand())
		})
	}

	// 0x04, 0x0C, ..., 0x3C - INC r
	// 0x05, 0x0D, ..., 0x3D - DEC r
	for i, o := range operands {
		o := o
		offset := uint8(i) << 3
		DefineInstruction(0x04+offset, fmt.Sprintf("INC %s", o), cost(o, 1, 3), func(c *CPU) {
			c.modify(o, c.increment)
		})
		DefineInstruction(0x05+offset, fmt.Sprintf("DEC %s", o), cost(o, 1, 3), func(c *CPU) {
			c.modify(o, c.decrement)
		})
	}
}
