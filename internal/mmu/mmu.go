// Package mmu provides the memory bus. The MMU is unaware of
// the components behind it, and resolves every access against
// an ordered list of address range bindings.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/log"
)

// IOBus is the interface implemented by every device that
// can be mapped onto the MMU. Devices receive the absolute
// address of the access.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// binding maps an inclusive address range to a device.
type binding struct {
	start, end uint16
	name       string
	device     IOBus
}

func (b binding) contains(address uint16) bool {
	return address >= b.start && address <= b.end
}

// MMU is the memory management unit. It delegates reads and
// writes to the first binding whose range contains the
// address. Unmapped reads return 0xFF and unmapped writes are
// dropped.
type MMU struct {
	bindings []binding

	Log log.Logger
}

// NewMMU returns a new MMU with no bindings.
func NewMMU(l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &MMU{Log: l}
}

// Map binds the inclusive range start-end to device. Bindings
// are resolved in the order they were mapped, so a narrower
// range must be mapped before a wider range that overlaps it.
func (m *MMU) Map(name string, start, end uint16, device IOBus) {
	if end < start {
		panic(fmt.Sprintf("mmu: invalid range %04X-%04X for %s", start, end, name))
	}
	m.bindings = append(m.bindings, binding{start: start, end: end, name: name, device: device})
}

// resolve returns the binding responsible for address.
func (m *MMU) resolve(address uint16) (binding, bool) {
	for _, b := range m.bindings {
		if b.contains(address) {
			return b, true
		}
	}
	return binding{}, false
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	if b, ok := m.resolve(address); ok {
		return b.device.Read(address)
	}
	m.Log.Debugf("mmu: unmapped read from %04X", address)
	return 0xFF
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	if b, ok := m.resolve(address); ok {
		b.device.Write(address, value)
		return
	}
	m.Log.Debugf("mmu: unmapped write of %02X to %04X", value, address)
}

// ReadWord reads a little-endian 16-bit value from address.
func (m *MMU) ReadWord(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// WriteWord writes a little-endian 16-bit value to address.
func (m *MMU) WriteWord(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

// Owner returns the name of the binding responsible for
// address, or an empty string if it is unmapped.
func (m *MMU) Owner(address uint16) string {
	b, _ := m.resolve(address)
	return b.name
}

// Mirror returns a device that forwards accesses to device,
// with offset subtracted from the address, such as the echo
// of work RAM.
func Mirror(device IOBus, offset uint16) IOBus {
	return mirror{device: device, offset: offset}
}

type mirror struct {
	device IOBus
	offset uint16
}

func (m mirror) Read(address uint16) uint8 {
	return m.device.Read(address - m.offset)
}

func (m mirror) Write(address uint16, value uint8) {
	m.device.Write(address-m.offset, value)
}
