package serial

import "io"

// Device is a device that can be attached to the Controller.
// During a transfer the Controller exchanges one bit with the
// Device every bit period: Send is the bit shifted into SB,
// and Receive is given the bit shifted out of it.
type Device interface {
	Receive(bool)
	Send() bool
}

// nullDevice is an implementation of Device that
// simply returns true on Send and does nothing on
// Receive. This is the same as if no cable is plugged
// in, so every received byte reads 0xFF.
type nullDevice struct{}

// Receive does nothing.
func (n nullDevice) Receive(bool) {}

// Send always returns true.
func (n nullDevice) Send() bool { return true }

// WriterDevice is a Device that assembles the bits sent by the
// Controller into bytes, most significant bit first, and writes
// every completed byte to an io.Writer. It behaves as an
// unplugged cable towards the Controller.
type WriterDevice struct {
	w     io.Writer
	value uint8
	count uint8
	err   error
}

// NewWriterDevice returns a WriterDevice writing to w.
func NewWriterDevice(w io.Writer) *WriterDevice {
	return &WriterDevice{w: w}
}

// Receive shifts in a bit, writing the byte once 8 bits have
// been received.
func (d *WriterDevice) Receive(bit bool) {
	d.value <<= 1
	if bit {
		d.value |= 1
	}
	if d.count++; d.count == 8 {
		if _, err := d.w.Write([]byte{d.value}); err != nil && d.err == nil {
			d.err = err
		}
		d.value, d.count = 0, 0
	}
}

// Send always returns true.
func (d *WriterDevice) Send() bool { return true }

// Err returns the first error returned by the io.Writer.
func (d *WriterDevice) Err() error { return d.err }
