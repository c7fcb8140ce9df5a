package hash

import (
	"github.com/klauspost/crc32"
)

// Tables are pre-computed for every polynomial the accelerated backend
// serves. Computing them once avoids repeated MakeTable calls.
var (
	ieeeTable       = crc32.MakeTable(crc32.IEEE)
	castagnoliTable = crc32.MakeTable(crc32.Castagnoli)
	koopmanTable    = crc32.MakeTable(crc32.Koopman)
)

// Normal-form polynomials of the supported reversed constants.
const (
	IEEE       uint32 = 0x04C11DB7
	Castagnoli uint32 = 0x1EDC6F41
	Koopman    uint32 = 0x741B8CD7
)

// Table returns the accelerated table for a normal-form polynomial, or nil
// when the polynomial has no accelerated implementation.
func Table(normal uint32) *crc32.Table {
	switch normal {
	case IEEE:
		return ieeeTable
	case Castagnoli:
		return castagnoliTable
	case Koopman:
		return koopmanTable
	default:
		return nil
	}
}

// Update advances a raw reflected CRC register over p.
//
// crc32.Update pre- and post-inverts its argument, so the register is
// inverted on the way in and out to keep the caller's initial value and
// final XOR independent of the library's conditioning.
func Update(crc uint32, tab *crc32.Table, p []byte) uint32 {
	if len(p) == 0 {
		return crc
	}
	return ^crc32.Update(^crc, tab, p)
}
