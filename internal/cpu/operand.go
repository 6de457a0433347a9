package cpu

import "fmt"

// Operand selects the 8-bit operand of an instruction, using
// the encoding of the 3-bit register field of an opcode. The
// OperandHL designator is not a register, but the byte in
// memory addressed by HL, which costs an extra bus access.
type Operand uint8

const (
	OperandB Operand = iota
	OperandC
	OperandD
	OperandE
	OperandH
	OperandL
	OperandHL
	OperandA
)

// operands lists every Operand in encoding order.
var operands = [8]Operand{OperandB, OperandC, OperandD, OperandE, OperandH, OperandL, OperandHL, OperandA}

// operandIndex returns the Operand for a 3-bit register field.
func operandIndex(index uint8) Operand {
	if index > 7 {
		panic(&InvalidIndexError{What: "register", Index: index})
	}
	return Operand(index)
}

// IsMemory returns true if the operand is the byte addressed by HL.
func (o Operand) IsMemory() bool {
	return o == OperandHL
}

func (o Operand) String() string {
	switch o {
	case OperandB:
		return "B"
	case OperandC:
		return "C"
	case OperandD:
		return "D"
	case OperandE:
		return "E"
	case OperandH:
		return "H"
	case OperandL:
		return "L"
	case OperandHL:
		return "(HL)"
	case OperandA:
		return "A"
	}
	return fmt.Sprintf("Operand(%d)", uint8(o))
}

// read8 reads the value of the given operand.
func (c *CPU) read8(o Operand) uint8 {
	switch o {
	case OperandB:
		return c.B
	case OperandC:
		return c.C
	case OperandD:
		return c.D
	case OperandE:
		return c.E
	case OperandH:
		return c.H
	case OperandL:
		return c.L
	case OperandHL:
		return c.readByte(c.HL())
	case OperandA:
		return c.A
	}
	panic(&InvalidIndexError{What: "register", Index: uint8(o)})
}

// write8 writes value to the given operand.
func (c *CPU) write8(o Operand, value uint8) {
	switch o {
	case OperandB:
		c.B = value
	case OperandC:
		c.C = value
	case OperandD:
		c.D = value
	case OperandE:
		c.E = value
	case OperandH:
		c.H = value
	case OperandL:
		c.L = value
	case OperandHL:
		c.writeByte(c.HL(), value)
	case OperandA:
		c.A = value
	default:
		panic(&InvalidIndexError{What: "register", Index: uint8(o)})
	}
}

// modify reads the operand, applies fn and writes the result back.
func (c *CPU) modify(o Operand, fn func(uint8) uint8) {
	c.write8(o, fn(c.read8(o)))
}
