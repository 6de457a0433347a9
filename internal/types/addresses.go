package types

// HardwareAddress represents the address of a hardware
// register. The hardware registers are mapped to memory
// addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register. Bits 4-5
	// select the direction or action keys, and bits 0-3 read
	// the selected keys (0 = pressed).
	P1 HardwareAddress = 0xFF00
	// SB is the address of the SB hardware register. The SB
	// hardware register holds the byte being shifted in and
	// out of the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. Bit 7
	// requests a transfer, bit 0 selects the internal clock.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. Internally
	// it is a 16-bit counter, but only the upper 8 bits may be read.
	// Any write resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. It is
	// incremented at the rate selected by TAC, and reloaded from
	// TMA when it overflows, requesting a timer interrupt.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register, the value
	// loaded into TIMA on overflow.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. Bit 2
	// enables the timer, bits 0-1 select the frequency.
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. Each of the
	// lower 5 bits records a pending interrupt request.
	IF HardwareAddress = 0xFF0F
	// IE is the address of the IE hardware register. Each of the
	// lower 5 bits enables the corresponding interrupt.
	IE HardwareAddress = 0xFFFF
)

// Memory regions of the 64kB address space.
const (
	ROMStart    uint16 = 0x0000
	ROMEnd      uint16 = 0x7FFF
	VRAMStart   uint16 = 0x8000
	VRAMEnd     uint16 = 0x9FFF
	ExtRAMStart uint16 = 0xA000
	ExtRAMEnd   uint16 = 0xBFFF
	WRAMStart   uint16 = 0xC000
	WRAMEnd     uint16 = 0xDFFF
	EchoStart   uint16 = 0xE000
	EchoEnd     uint16 = 0xFDFF
	OAMStart    uint16 = 0xFE00
	OAMEnd      uint16 = 0xFE9F
	IOStart     uint16 = 0xFF00
	IOEnd       uint16 = 0xFF7F
	HRAMStart   uint16 = 0xFF80
	HRAMEnd     uint16 = 0xFFFE
)
