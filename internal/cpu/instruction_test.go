package cpu

import (
	"fmt"
	"testing"
)

// primaryCycles holds the cost of every primary opcode, and the
// taken cost of conditionals in primaryBranchCycles. Reserved
// opcodes and the prefix are 0.
var primaryCycles = [256]uint8{
	//  0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1, // 0x00
	1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1, // 0x10
	2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1, // 0x20
	2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1, // 0x30
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x40
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x50
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x60
	2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1, // 0x70
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x80
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x90
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0xA0
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0xB0
	2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4, // 0xC0
	2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4, // 0xD0
	3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4, // 0xE0
	3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4, // 0xF0
}

var primaryBranchCycles = map[uint8]uint8{
	0x20: 3, 0x28: 3, 0x30: 3, 0x38: 3,
	0xC0: 5, 0xC8: 5, 0xD0: 5, 0xD8: 5,
	0xC2: 4, 0xCA: 4, 0xD2: 4, 0xDA: 4,
	0xC4: 6, 0xCC: 6, 0xD4: 6, 0xDC: 6,
}

func TestInstructionSet_Cycles(t *testing.T) {
	for i, instruction := range InstructionSet {
		opcode := uint8(i)
		if !instruction.Defined() {
			if primaryCycles[opcode] != 0 {
				t.Errorf("0x%02X: expected instruction to be defined", opcode)
			}
			continue
		}
		if instruction.Cycles() != primaryCycles[opcode] {
			t.Errorf("0x%02X %s: expected %d cycles, got %d", opcode, instruction.Name(), primaryCycles[opcode], instruction.Cycles())
		}
		branch, ok := primaryBranchCycles[opcode]
		if !ok {
			branch = primaryCycles[opcode]
		}
		if instruction.BranchCycles() != branch {
			t.Errorf("0x%02X %s: expected %d branch cycles, got %d", opcode, instruction.Name(), branch, instruction.BranchCycles())
		}
	}
}

func TestInstructionSetCB_Cycles(t *testing.T) {
	for i, instruction := range InstructionSetCB {
		opcode := uint8(i)
		expected := uint8(2)
		if opcode&0x07 == 0x06 {
			expected = 4
			if opcode >= 0x40 && opcode < 0x80 {
				expected = 3
			}
		}
		if instruction.Cycles() != expected {
			t.Errorf("CB 0x%02X %s: expected %d cycles, got %d", opcode, instruction.Name(), expected, instruction.Cycles())
		}
	}
}

func TestInstructionSet_Defined(t *testing.T) {
	defined := 0
	for i := range InstructionSet {
		if InstructionSet[i].Defined() {
			defined++
		}
		if InstructionSetCB[i].Defined() {
			defined++
		}
		if IsReserved(uint8(i)) && InstructionSet[i].Defined() {
			t.Errorf("0x%02X: expected reserved opcode to have no handler", i)
		}
	}
	if defined != 500 {
		t.Errorf("expected 500 defined opcodes, got %d", defined)
	}

	for opcode, name := range map[uint8]string{
		0x00: "NOP",
		0x36: "LD (HL),d8",
		0x41: "LD B,C",
		0x70: "LD (HL),B",
		0x76: "HALT",
		0x7E: "LD A,(HL)",
		0x9E: "SBC A,(HL)",
		0xE8: "ADD SP,r8",
		0xF1: "POP AF",
		0xFF: "RST 38H",
	} {
		if InstructionSet[opcode].Name() != name {
			t.Errorf("0x%02X: expected %s, got %s", opcode, name, InstructionSet[opcode].Name())
		}
	}
	for opcode, name := range map[uint8]string{
		0x00: "RLC B",
		0x11: "RL C",
		0x2C: "SRA H",
		0x36: "SWAP (HL)",
		0x3F: "SRL A",
		0x7E: "BIT 7,(HL)",
		0x87: "RES 0,A",
		0xFE: "SET 7,(HL)",
	} {
		if InstructionSetCB[opcode].Name() != name {
			t.Errorf("CB 0x%02X: expected %s, got %s", opcode, name, InstructionSetCB[opcode].Name())
		}
	}
}

// TestInstruction_Ticks runs every defined opcode from a fresh
// CPU, and checks it occupies exactly as many ticks as its cost.
func TestInstruction_Ticks(t *testing.T) {
	run := func(t *testing.T, instruction Instruction, program ...uint8) {
		c, _ := newTestCPU(program...)
		c.SetHL(0xC000)
		ticks := step(t, c)
		if ticks != instruction.Cycles() && ticks != instruction.BranchCycles() {
			t.Errorf("expected %d or %d cycles, got %d", instruction.Cycles(), instruction.BranchCycles(), ticks)
		}
	}

	for i, instruction := range InstructionSet {
		if !instruction.Defined() {
			continue
		}
		opcode := uint8(i)
		t.Run(fmt.Sprintf("0x%02X %s", opcode, instruction.Name()), func(t *testing.T) {
			run(t, instruction, opcode, 0x00, 0x00)
		})
	}
	for i, instruction := range InstructionSetCB {
		opcode := uint8(i)
		t.Run(fmt.Sprintf("CB 0x%02X %s", opcode, instruction.Name()), func(t *testing.T) {
			run(t, instruction, 0xCB, opcode)
		})
	}
}

func TestInstruction_Conditional(t *testing.T) {
	for _, tt := range []struct {
		name    string
		program []uint8
		zero    bool
		ticks   uint8
		pc      uint16
	}{
		{"JR NZ taken", []uint8{0x20, 0xFE}, false, 3, 0x0100},
		{"JR NZ not taken", []uint8{0x20, 0xFE}, true, 2, 0x0102},
		{"JP Z taken", []uint8{0xCA, 0x00, 0x20}, true, 4, 0x2000},
		{"JP Z not taken", []uint8{0xCA, 0x00, 0x20}, false, 3, 0x0103},
		{"CALL NZ taken", []uint8{0xC4, 0x00, 0x20}, false, 6, 0x2000},
		{"CALL NZ not taken", []uint8{0xC4, 0x00, 0x20}, true, 3, 0x0103},
		{"RET Z taken", []uint8{0xC8}, true, 5, 0x1234},
		{"RET Z not taken", []uint8{0xC8}, false, 2, 0x0101},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, b := newTestCPU(tt.program...)
			c.SP = 0xFFFC
			b.mem[0xFFFC] = 0x34
			b.mem[0xFFFD] = 0x12
			c.SetZero(tt.zero)

			if ticks := step(t, c); ticks != tt.ticks {
				t.Errorf("expected %d cycles, got %d", tt.ticks, ticks)
			}
			if c.PC != tt.pc {
				t.Errorf("expected PC to be 0x%04X, got 0x%04X", tt.pc, c.PC)
			}
		})
	}
}

func TestInstruction_Stack(t *testing.T) {
	// LD BC,0x1234 ; PUSH BC ; POP DE
	c, b := newTestCPU(0x01, 0x34, 0x12, 0xC5, 0xD1)
	c.SP = 0xD000
	step(t, c)
	step(t, c)
	if c.SP != 0xCFFE || b.mem[0xCFFF] != 0x12 || b.mem[0xCFFE] != 0x34 {
		t.Errorf("expected high byte at SP-1 and low byte at SP-2, got SP=0x%04X %02X %02X", c.SP, b.mem[0xCFFF], b.mem[0xCFFE])
	}
	step(t, c)
	if c.DE() != 0x1234 || c.SP != 0xD000 {
		t.Errorf("expected DE=0x1234 SP=0xD000, got DE=0x%04X SP=0x%04X", c.DE(), c.SP)
	}

	// POP AF masks the low nibble of F
	c, b = newTestCPU(0xF1)
	c.SP = 0xD000
	b.mem[0xD000] = 0xFF
	b.mem[0xD001] = 0x12
	step(t, c)
	if c.AF() != 0x12F0 {
		t.Errorf("expected AF to be 0x12F0, got 0x%04X", c.AF())
	}

	// CALL 0x2000 ; then RET
	c, b = newTestCPU(0xCD, 0x00, 0x20)
	b.mem[0x2000] = 0xC9
	step(t, c)
	if c.PC != 0x2000 || c.SP != 0xFFFC {
		t.Errorf("expected PC=0x2000 SP=0xFFFC, got PC=0x%04X SP=0x%04X", c.PC, c.SP)
	}
	step(t, c)
	if c.PC != 0x0103 || c.SP != 0xFFFE {
		t.Errorf("expected PC=0x0103 SP=0xFFFE, got PC=0x%04X SP=0x%04X", c.PC, c.SP)
	}

	// RST 28H
	c, _ = newTestCPU(0xEF)
	step(t, c)
	if c.PC != 0x0028 {
		t.Errorf("expected PC to be 0x0028, got 0x%04X", c.PC)
	}

	// LD (a16),SP
	c, b = newTestCPU(0x08, 0x00, 0xC0)
	c.SP = 0xBEEF
	step(t, c)
	if b.mem[0xC000] != 0xEF || b.mem[0xC001] != 0xBE {
		t.Errorf("expected SP stored little-endian, got %02X %02X", b.mem[0xC000], b.mem[0xC001])
	}

	// JP HL
	c, _ = newTestCPU(0xE9)
	c.SetHL(0x4321)
	if ticks := step(t, c); ticks != 1 || c.PC != 0x4321 {
		t.Errorf("expected 1 cycle jump to 0x4321, got %d cycles PC=0x%04X", ticks, c.PC)
	}
}

func TestInstruction_Loads(t *testing.T) {
	// LD (HL+),A ; LD A,(HL-) ; LDH (a8),A ; LD A,(C)
	c, b := newTestCPU(0x22, 0x3A, 0xE0, 0x80, 0xF2)
	c.SetHL(0xC000)
	c.A = 0x42
	step(t, c)
	if b.mem[0xC000] != 0x42 || c.HL() != 0xC001 {
		t.Errorf("expected (HL+) store, got mem=0x%02X HL=0x%04X", b.mem[0xC000], c.HL())
	}
	b.mem[0xC001] = 0x99
	step(t, c)
	if c.A != 0x99 || c.HL() != 0xC000 {
		t.Errorf("expected (HL-) load, got A=0x%02X HL=0x%04X", c.A, c.HL())
	}
	step(t, c)
	if b.mem[0xFF80] != 0x99 {
		t.Errorf("expected high page store at 0xFF80, got 0x%02X", b.mem[0xFF80])
	}
	c.C = 0x80
	b.mem[0xFF80] = 0x11
	step(t, c)
	if c.A != 0x11 {
		t.Errorf("expected A to be 0x11, got 0x%02X", c.A)
	}

	// LD (HL),d8 ; INC (HL) ; LD B,(HL)
	c, b = newTestCPU(0x36, 0x7F, 0x34, 0x46)
	c.SetHL(0xC010)
	if ticks := step(t, c); ticks != 3 {
		t.Errorf("expected 3 cycles, got %d", ticks)
	}
	step(t, c)
	step(t, c)
	if b.mem[0xC010] != 0x80 || c.B != 0x80 || !c.HalfCarry() {
		t.Errorf("expected 0x80 with half carry, got mem=0x%02X B=0x%02X", b.mem[0xC010], c.B)
	}
}
