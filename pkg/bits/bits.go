// Package bits provides small helpers for testing and
// modifying individual bits of unsigned integers.
package bits

import "golang.org/x/exp/constraints"

// Val returns the value of the bit at the given index.
func Val[T constraints.Unsigned](b T, i uint8) T {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// SetTo sets or resets the bit at the given index depending on v.
func SetTo[T constraints.Unsigned](b T, i uint8, v bool) T {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}

// HalfCarryAdd returns true if adding a and b (plus an optional
// carry in) carries out of bit 3.
func HalfCarryAdd(a, b, carry uint8) bool {
	return (a&0xF)+(b&0xF)+carry > 0xF
}

// HalfBorrowSub returns true if subtracting b (and an optional
// borrow) from a borrows into bit 4.
func HalfBorrowSub(a, b, borrow uint8) bool {
	return int16(a&0xF)-int16(b&0xF)-int16(borrow) < 0
}

// Join packs a high and low byte into a 16-bit value.
func Join(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split unpacks a 16-bit value into its high and low bytes.
func Split(v uint16) (high, low uint8) {
	return uint8(v >> 8), uint8(v)
}
