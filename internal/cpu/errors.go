package cpu

import (
	"errors"
	"fmt"
)

// OpcodeErrorKind classifies a fatal dispatch error.
type OpcodeErrorKind uint8

const (
	// IllegalOpcode is an opcode with no handler in either table.
	IllegalOpcode OpcodeErrorKind = iota
	// ReservedOpcode is one of the byte values the hardware does
	// not define, which lock up the real CPU.
	ReservedOpcode
)

func (k OpcodeErrorKind) String() string {
	switch k {
	case IllegalOpcode:
		return "illegal opcode"
	case ReservedOpcode:
		return "reserved opcode"
	}
	return fmt.Sprintf("OpcodeErrorKind(%d)", uint8(k))
}

var (
	// ErrIllegalOpcode matches any OpcodeError of kind IllegalOpcode.
	ErrIllegalOpcode = errors.New("cpu: illegal opcode")
	// ErrReservedOpcode matches any OpcodeError of kind ReservedOpcode.
	ErrReservedOpcode = errors.New("cpu: reserved opcode")
)

// OpcodeError is returned by CPU.Tick when the fetched opcode
// cannot be executed. It is fatal: the CPU stops, and every
// later Tick returns the same error.
type OpcodeError struct {
	Kind      OpcodeErrorKind
	Opcode    uint8
	Prefixed  bool      // the opcode was read from the extended table
	PC        uint16    // address of the opcode
	Registers Registers // register file when the opcode was fetched
}

func (e *OpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: %s CB %02X at %04X (%s)", e.Kind, e.Opcode, e.PC, e.Registers)
	}
	return fmt.Sprintf("cpu: %s %02X at %04X (%s)", e.Kind, e.Opcode, e.PC, e.Registers)
}

// Is reports whether target is the sentinel for the error's kind.
func (e *OpcodeError) Is(target error) bool {
	switch e.Kind {
	case IllegalOpcode:
		return target == ErrIllegalOpcode
	case ReservedOpcode:
		return target == ErrReservedOpcode
	}
	return false
}

// InvalidIndexError is raised with panic when a register, pair
// or bit index outside its encoding is used. It indicates a bug
// in the instruction tables, not in the emulated program.
type InvalidIndexError struct {
	What  string
	Index uint8
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("cpu: invalid %s index %d", e.What, e.Index)
}
