// Package ram provides basic memory devices: a block of
// read/write RAM, and a read-only program image.
package ram

import "github.com/thelolagemann/gbcore/internal/types"

// RAM represents a block of memory mapped at a base address.
type RAM interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Size() int
	types.Stater
}

type ram struct {
	base uint16
	data []uint8
}

// NewRAM returns a new RAM of the given size, mapped at
// base. Addresses are translated relative to base and wrap
// around the size of the block.
func NewRAM(base uint16, size uint32) RAM {
	return &ram{
		base: base,
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *ram) Read(address uint16) uint8 {
	return r.data[int(address-r.base)%len(r.data)]
}

// Write writes the value to the given address.
func (r *ram) Write(address uint16, value uint8) {
	r.data[int(address-r.base)%len(r.data)] = value
}

// Size returns the size of the block in bytes.
func (r *ram) Size() int {
	return len(r.data)
}

// Load implements the types.Stater interface.
func (r *ram) Load(s *types.State) {
	for i := range r.data {
		r.data[i] = s.Read8()
	}
}

// Save implements the types.Stater interface.
func (r *ram) Save(s *types.State) {
	for _, v := range r.data {
		s.Write8(v)
	}
}

// ROM is a read-only program image mapped at a base address.
// Writes are ignored, reads past the end of the image return
// 0xFF, like an open bus.
type ROM struct {
	base uint16
	data []uint8
}

// NewROM returns a new ROM holding a copy of data, mapped at
// base.
func NewROM(base uint16, data []byte) *ROM {
	r := &ROM{base: base, data: make([]uint8, len(data))}
	copy(r.data, data)
	return r
}

// Read returns the value at the given address.
func (r *ROM) Read(address uint16) uint8 {
	offset := int(address - r.base)
	if offset >= len(r.data) {
		return 0xFF
	}
	return r.data[offset]
}

// Write is a no-op, the image is read-only.
func (r *ROM) Write(uint16, uint8) {}

// Size returns the size of the image in bytes.
func (r *ROM) Size() int {
	return len(r.data)
}
