package cpu

import "fmt"

// Instruction represents a single instruction of the CPU.
type Instruction struct {
	name         string     // name of the instruction
	cycles       uint8      // machine cycles taken
	branchCycles uint8      // machine cycles taken when a condition holds
	fn           func(*CPU) // fn called when executing the instruction
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string { return i.name }

// Cycles returns the number of machine cycles the instruction
// takes, or takes when its condition does not hold.
func (i Instruction) Cycles() uint8 { return i.cycles }

// BranchCycles returns the number of machine cycles taken by a
// conditional instruction when its condition holds. It equals
// Cycles for unconditional instructions.
func (i Instruction) BranchCycles() uint8 { return i.branchCycles }

// Defined returns true if the instruction can be executed.
func (i Instruction) Defined() bool { return i.fn != nil }

func (i Instruction) String() string { return i.name }

// InstructionSet holds the first 256 instructions.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 instructions reached through
// the 0xCB prefix. Their cycles include the prefix fetch.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction in the InstructionSet
// with the provided opcode. An optional branch cost may be given
// for conditional instructions.
func DefineInstruction(opcode uint8, name string, cycles uint8, fn func(*CPU), branchCycles ...uint8) {
	InstructionSet[opcode] = newInstruction(name, cycles, fn, branchCycles)
}

// DefineInstructionCB defines the instruction in the
// InstructionSetCB with the provided opcode.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSetCB[opcode] = newInstruction(name, cycles, fn, nil)
}

func newInstruction(name string, cycles uint8, fn func(*CPU), branchCycles []uint8) Instruction {
	instruction := Instruction{
		name:         name,
		cycles:       cycles,
		branchCycles: cycles,
		fn:           fn,
	}
	if len(branchCycles) > 0 {
		instruction.branchCycles = branchCycles[0]
	}
	return instruction
}

// reservedOpcodes are the opcodes the hardware leaves undefined.
// Executing one is a fatal error.
var reservedOpcodes = [256]bool{
	0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true, 0xEB: true,
	0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

// IsReserved returns true if the primary opcode is reserved.
func IsReserved(opcode uint8) bool {
	return reservedOpcodes[opcode]
}

// Disassemble returns the mnemonic of the instruction at addr on
// the given bus, and the length of its encoding in bytes.
func Disassemble(b Bus, addr uint16) (string, uint8) {
	opcode := b.Read(addr)
	if opcode == 0xCB {
		cb := b.Read(addr + 1)
		if !InstructionSetCB[cb].Defined() {
			return fmt.Sprintf("DB CB,%02X", cb), 2
		}
		return InstructionSetCB[cb].name, 2
	}
	if !InstructionSet[opcode].Defined() {
		return fmt.Sprintf("DB %02X", opcode), 1
	}
	return InstructionSet[opcode].name, instructionLength[opcode]
}

// instructionLength holds the encoded length of each primary
// instruction, filled in by init from the operand placeholders
// of its name.
var instructionLength [256]uint8
