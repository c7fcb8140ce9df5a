package crcgo

import "strings"

// BitOrder selects the direction in which register bits are processed.
type BitOrder uint8

const (
	// NonReflected processes the most significant bit first and uses the
	// polynomial as written (Normal form).
	NonReflected BitOrder = iota
	// Reflected processes the least significant bit first and uses the
	// bit-reversed polynomial (Reverse form).
	Reflected
)

// String returns the string representation of a BitOrder.
func (o BitOrder) String() string {
	switch o {
	case NonReflected:
		return "non-reflected"
	case Reflected:
		return "reflected"
	default:
		return "unknown"
	}
}

// ParseBitOrder parses a string into a BitOrder value.
func ParseBitOrder(s string) (BitOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "non-reflected", "nonreflected", "msb", "msb-first":
		return NonReflected, true
	case "reflected", "lsb", "lsb-first":
		return Reflected, true
	default:
		return NonReflected, false
	}
}
