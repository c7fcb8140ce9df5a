package width

import "math/bits"

// Word is the set of register types a CRC can be computed in.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Policy describes the arithmetic of one register width.
type Policy[T Word] struct {
	// Bits is the register size (8, 16, 32 or 64).
	Bits uint
	// Top is the shift that moves the most significant byte down to bit 0.
	Top uint
	// Mask has every register bit set.
	Mask T
	// High has only the most significant bit set.
	High T
}

// Of returns the policy for T.
func Of[T Word]() Policy[T] {
	mask := ^T(0)
	n := uint(bits.Len64(uint64(mask)))
	return Policy[T]{
		Bits: n,
		Top:  n - 8,
		Mask: mask,
		High: T(1) << (n - 1),
	}
}

// Bytes returns the register size in bytes.
func (p Policy[T]) Bytes() int {
	return int(p.Bits / 8)
}

// Reverse mirrors the bits of v within the register.
func (p Policy[T]) Reverse(v T) T {
	return T(bits.Reverse64(uint64(v)) >> (64 - p.Bits))
}

// ShiftRightByte shifts v right by one byte. An 8-bit register becomes zero.
func (p Policy[T]) ShiftRightByte(v T) T {
	return T(uint64(v) >> 8)
}

// ShiftLeftByte shifts v left by one byte, discarding bits above the
// register. An 8-bit register becomes zero.
func (p Policy[T]) ShiftLeftByte(v T) T {
	return T(uint64(v) << 8)
}

// TopByte returns the most significant byte of v.
func (p Policy[T]) TopByte(v T) byte {
	return byte(v >> p.Top)
}

// MSB reports whether the most significant bit of v is set.
func (p Policy[T]) MSB(v T) bool {
	return v&p.High != 0
}
