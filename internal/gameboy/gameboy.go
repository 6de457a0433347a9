// Package gameboy provides the machine that drives the CPU. It
// wires the memory map out of range bindings, and ticks the CPU
// and the peripherals once per machine cycle, in a fixed order.
package gameboy

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/joypad"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of machine cycles per frame.
	CyclesPerFrame = 70224 / 4
)

// ErrProgramTooLarge is returned by NewGameBoy when the program
// does not fit in the ROM region at the requested address.
var ErrProgramTooLarge = errors.New("gameboy: program does not fit in ROM")

// GameBoy represents a Game Boy. It contains the CPU, the
// memory bus and the peripherals that raise interrupts.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	Interrupts *interrupts.Service
	Joypad     *joypad.State
	Timer      *timer.Controller
	Serial     *serial.Controller

	log.Logger

	rom  *ram.ROM
	vram ram.RAM
	eram ram.RAM
	wram ram.RAM
	oam  ram.RAM
	hram ram.RAM

	programBase  uint16
	serialOutput io.Writer
	serialDevice *serial.WriterDevice
	state        []byte
}

// NewGameBoy returns a new GameBoy running program, in the state
// left by the boot ROM. By default the program is an image of
// the ROM region starting at 0x0000, so execution begins at
// offset 0x0100 of the program.
func NewGameBoy(program []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Logger == nil {
		g.Logger = log.NewNullLogger()
	}

	if int(g.programBase)+len(program) > int(types.ROMEnd)+1 {
		return nil, fmt.Errorf("%w: %d bytes at %04X", ErrProgramTooLarge, len(program), g.programBase)
	}
	image := make([]byte, int(g.programBase)+len(program))
	copy(image[g.programBase:], program)

	g.Interrupts = interrupts.NewService()
	g.Joypad = joypad.New(g.Interrupts)
	g.Timer = timer.NewController(g.Interrupts)
	g.Serial = serial.NewController(g.Interrupts, g.Logger)
	if g.serialOutput != nil {
		g.serialDevice = serial.NewWriterDevice(g.serialOutput)
		g.Serial.Attach(g.serialDevice)
	}

	g.rom = ram.NewROM(types.ROMStart, image)
	g.vram = ram.NewRAM(types.VRAMStart, 0x2000)
	g.eram = ram.NewRAM(types.ExtRAMStart, 0x2000)
	g.wram = ram.NewRAM(types.WRAMStart, 0x2000)
	g.oam = ram.NewRAM(types.OAMStart, 0xA0)
	g.hram = ram.NewRAM(types.HRAMStart, 0x7F)

	g.MMU = mmu.NewMMU(g.Logger)
	g.mapMemory()

	g.CPU = cpu.NewCPU(g.MMU, g.Interrupts)

	// IO registers as left by the boot ROM
	g.MMU.Write(types.IF, 0xE1)

	if g.state != nil {
		st := types.StateFromBytes(g.state)
		g.Load(st)
		if err := st.Err(); err != nil {
			return nil, fmt.Errorf("gameboy: loading state: %w", err)
		}
	}

	return g, nil
}

// mapMemory binds every device to its address range. The
// address space is
//
//	0000-7FFF program ROM
//	8000-9FFF video RAM
//	A000-BFFF external RAM
//	C000-DFFF work RAM
//	E000-FDFF echo of C000-DDFF
//	FE00-FE9F OAM
//	FF00      joypad
//	FF01-FF02 serial
//	FF04-FF07 timer
//	FF0F      interrupt flag
//	FF80-FFFE high RAM
//	FFFF      interrupt enable
//
// Anything else is unmapped.
func (g *GameBoy) mapMemory() {
	g.MMU.Map("rom", types.ROMStart, types.ROMEnd, g.rom)
	g.MMU.Map("vram", types.VRAMStart, types.VRAMEnd, g.vram)
	g.MMU.Map("eram", types.ExtRAMStart, types.ExtRAMEnd, g.eram)
	g.MMU.Map("wram", types.WRAMStart, types.WRAMEnd, g.wram)
	g.MMU.Map("echo", types.EchoStart, types.EchoEnd, mmu.Mirror(g.wram, types.EchoStart-types.WRAMStart))
	g.MMU.Map("oam", types.OAMStart, types.OAMEnd, g.oam)
	g.MMU.Map("joypad", types.P1, types.P1, g.Joypad)
	g.MMU.Map("serial", types.SB, types.SC, g.Serial)
	g.MMU.Map("timer", types.DIV, types.TAC, g.Timer)
	g.MMU.Map("interrupts", types.IF, types.IF, g.Interrupts)
	g.MMU.Map("hram", types.HRAMStart, types.HRAMEnd, g.hram)
	g.MMU.Map("interrupts", types.IE, types.IE, g.Interrupts)
}

// Tick advances the machine by one machine cycle. The CPU is
// ticked first, then the timer, then the serial port, so an
// interrupt raised by a peripheral is seen by the CPU on the
// next cycle.
func (g *GameBoy) Tick() error {
	if err := g.CPU.Tick(); err != nil {
		return err
	}
	g.Timer.TickM()
	g.Serial.TickM()
	return nil
}

// Run ticks the machine for the given number of machine cycles,
// stopping early if the CPU hits a fatal error.
func (g *GameBoy) Run(cycles uint64) error {
	return g.RunUntil(func() bool { return false }, cycles)
}

// RunUntil ticks the machine until done returns true, checking
// it at every instruction boundary, or until limit machine
// cycles have been ticked. A failed write to the serial output
// also stops the machine.
func (g *GameBoy) RunUntil(done func() bool, limit uint64) error {
	for i := uint64(0); i < limit; i++ {
		if err := g.Tick(); err != nil {
			g.reportError(err)
			return fmt.Errorf("gameboy: %w", err)
		}
		if g.serialDevice != nil && g.serialDevice.Err() != nil {
			g.Errorf("serial output failed: %v", g.serialDevice.Err())
			return fmt.Errorf("gameboy: serial output: %w", g.serialDevice.Err())
		}
		if g.CPU.Owed() == 0 && done() {
			return nil
		}
	}
	return nil
}

// reportError logs a fatal CPU error with the failing opcode
// and the register file.
func (g *GameBoy) reportError(err error) {
	var opErr *cpu.OpcodeError
	if !errors.As(err, &opErr) {
		g.Errorf("cpu stopped: %v", err)
		return
	}
	log.Fields(g.Logger, logrus.Fields{
		"opcode":    fmt.Sprintf("%02X", opErr.Opcode),
		"prefixed":  opErr.Prefixed,
		"pc":        fmt.Sprintf("%04X", opErr.PC),
		"registers": opErr.Registers.String(),
		"cycles":    g.CPU.Cycles(),
	}, "cpu stopped: %s", opErr.Kind)
}

var _ types.Stater = (*GameBoy)(nil)

// Load loads the state of every component, in the order they
// were saved.
func (g *GameBoy) Load(s *types.State) {
	for _, st := range g.staters() {
		st.Load(s)
	}
}

// Save saves the state of every component.
func (g *GameBoy) Save(s *types.State) {
	for _, st := range g.staters() {
		st.Save(s)
	}
}

func (g *GameBoy) staters() []types.Stater {
	return []types.Stater{
		g.CPU,
		g.Interrupts,
		g.Joypad,
		g.Timer,
		g.Serial,
		g.vram,
		g.eram,
		g.wram,
		g.oam,
		g.hram,
	}
}

// State returns a snapshot of the machine, which can be restored
// with WithState.
func (g *GameBoy) State() []byte {
	st := types.NewState()
	g.Save(st)
	return st.Bytes()
}

// Fingerprint returns a hash of the machine state. Two machines
// running the same program for the same number of cycles have
// the same fingerprint.
func (g *GameBoy) Fingerprint() uint64 {
	return types.Fingerprint(g)
}
