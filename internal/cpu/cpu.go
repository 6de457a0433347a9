// Package cpu provides the instruction execution engine of the
// LR35902 core: the register file, the primary and CB-prefixed
// opcode tables, the ALU, stack and control flow operations,
// interrupt servicing and the owed-cycle clock.
package cpu

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// ClockSpeed is the base clock speed of the CPU in Hz. A
	// machine cycle is four base clock ticks.
	ClockSpeed = 4194304
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode, entered by HALT.
	ModeHalt
	// ModeStop is the stop CPU mode, entered by STOP.
	ModeStop
	// ModeHaltBug is entered when HALT is executed with IME
	// disabled and an interrupt already pending. The next
	// fetch does not increment PC.
	ModeHaltBug
)

// Bus is the memory bus consumed by the CPU.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the LR35902 CPU. It owns the register file and
// the cycle clock, and borrows the memory bus and the interrupt
// service.
type CPU struct {
	Registers

	// IME is the interrupt master enable flag.
	IME bool

	b   Bus
	irq *interrupts.Service

	clock
	mode      mode
	eiPending bool // EI executed, IME is set before the next dispatch
	eiApplied bool // IME was set by EI at the start of this dispatch
	branched  bool // the current conditional instruction took its branch
	err       error
}

// NewCPU creates a new CPU with the given bus and interrupt
// service, in the state the boot ROM hands over to a program.
func NewCPU(b Bus, irq *interrupts.Service) *CPU {
	c := &CPU{
		b:   b,
		irq: irq,
	}
	c.Reset()
	return c
}

// Reset puts the CPU in the power-on state, as left by the
// boot ROM.
func (c *CPU) Reset() {
	c.Registers = Registers{
		A:  0x01,
		B:  0x00,
		C:  0x13,
		D:  0x00,
		E:  0xD8,
		H:  0x01,
		L:  0x4D,
		SP: 0xFFFE,
		PC: 0x0100,
	}
	c.SetAF(0x01B0)
	c.IME = false
	c.clock = clock{}
	c.mode = ModeNormal
	c.eiPending = false
	c.eiApplied = false
	c.err = nil
}

// Tick advances the CPU by one machine cycle. If the previous
// instruction still owes cycles, one is consumed. Otherwise the
// next instruction is fetched, executed and charged, and a
// pending interrupt may be dispatched.
//
// An error returned by Tick is fatal, and the CPU will return
// it from every following call.
func (c *CPU) Tick() error {
	if c.err != nil {
		return c.err
	}
	c.cycles++

	if !c.ready() {
		c.consume()
		return nil
	}

	switch c.mode {
	case ModeHalt, ModeStop:
		// the CPU is woken by any requested and enabled interrupt,
		// regardless of IME
		if !c.irq.HasInterrupts() {
			return nil
		}
		c.mode = ModeNormal
		if c.IME {
			c.charge(c.executeInterrupt())
			return nil
		}
	}

	cost, err := c.step()
	if err != nil {
		c.err = err
		return err
	}

	// check for interrupts, this requires the IME to be enabled
	if c.IME && c.irq.HasInterrupts() {
		cost += c.executeInterrupt()
	}
	c.charge(cost)

	return nil
}

// Step runs the CPU until the next instruction boundary, and
// returns the number of machine cycles ticked.
func (c *CPU) Step() (uint8, error) {
	var ticked uint8
	for {
		if err := c.Tick(); err != nil {
			return ticked, err
		}
		ticked++
		if c.ready() {
			return ticked, nil
		}
	}
}

// step fetches, decodes and executes a single instruction,
// returning its cost in machine cycles.
func (c *CPU) step() (uint8, error) {
	// IME is enabled one instruction after EI
	c.eiApplied = c.eiPending
	if c.eiPending {
		c.eiPending = false
		c.IME = true
	}

	pc := c.PC
	regs := c.Registers
	opcode := c.readInstruction()

	instruction := InstructionSet[opcode]
	prefixed := opcode == 0xCB
	if prefixed {
		opcode = c.readOperand()
		instruction = InstructionSetCB[opcode]
	}

	if instruction.fn == nil {
		kind := IllegalOpcode
		if !prefixed && reservedOpcodes[opcode] {
			kind = ReservedOpcode
		}
		return 0, &OpcodeError{
			Kind:      kind,
			Opcode:    opcode,
			Prefixed:  prefixed,
			PC:        pc,
			Registers: regs,
		}
	}

	c.branched = false
	instruction.fn(c)
	if c.branched {
		return instruction.branchCycles, nil
	}
	return instruction.cycles, nil
}

// Err returns the fatal error that stopped the CPU, if any.
func (c *CPU) Err() error {
	return c.err
}

// Halted returns true if the CPU is in halt or stop mode.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt || c.mode == ModeStop
}

// Mode returns the current CPU mode.
func (c *CPU) Mode() uint8 {
	return c.mode
}

// readInstruction reads the next opcode from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.b.Read(c.PC)
	if c.mode == ModeHaltBug {
		// the PC fails to increment, so this byte is read again
		c.mode = ModeNormal
		return value
	}
	c.PC++
	return value
}

// readOperand reads the next operand from memory.
func (c *CPU) readOperand() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the next two operands from memory as a
// little-endian 16-bit value.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.b.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.b.Write(addr, val)
}

// readWord reads a little-endian 16-bit value from memory.
func (c *CPU) readWord(addr uint16) uint16 {
	return uint16(c.b.Read(addr)) | uint16(c.b.Read(addr+1))<<8
}

// writeWord writes a little-endian 16-bit value to memory.
func (c *CPU) writeWord(addr uint16, val uint16) {
	c.b.Write(addr, uint8(val))
	c.b.Write(addr+1, uint8(val>>8))
}

var _ types.Stater = (*CPU)(nil)

// Load implements the types.Stater interface. A loaded CPU
// clears any fatal error.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.f = s.Read8() & flagMask
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.IME = s.ReadBool()
	c.eiPending = s.ReadBool()
	c.mode = s.Read8()
	c.owed = s.Read8()
	c.cycles = s.Read64()
	c.err = nil
}

// Save implements the types.Stater interface.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.f)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.IME)
	s.WriteBool(c.eiPending)
	s.Write8(c.mode)
	s.Write8(c.owed)
	s.Write64(c.cycles)
}

// Fingerprint returns a hash of the CPU state.
func (c *CPU) Fingerprint() uint64 {
	return types.Fingerprint(c)
}
