package crcgo

import (
	"fmt"

	"github.com/hupe1980/crcgo/internal/width"
)

// checkMessage is the input every check value is computed over.
const checkMessage = "123456789"

// Params fully defines one CRC algorithm.
//
// Builtin Params are shared process-wide and must not be modified. Engines keep
// a pointer to the Params they were built from.
type Params[T Word] struct {
	// Name is the catalog name, e.g. "CRC-32C".
	Name string
	// Initial is the register value before any input.
	Initial T
	// Poly is the generator polynomial in Normal form.
	Poly Normal[T]
	// XorOut is XORed into the register by Finalize.
	XorOut T
	// Check is the expected CRC of "123456789".
	Check T
	// Order selects reflected or non-reflected processing.
	Order BitOrder
}

// InitialValue returns the register value before any input.
func (p *Params[T]) InitialValue() T {
	return p.Initial
}

// Polynomial returns the generator polynomial in Normal form.
func (p *Params[T]) Polynomial() T {
	return p.Poly.Value()
}

// Finalize applies the output XOR.
func (p *Params[T]) Finalize(crc T) T {
	return crc ^ p.XorOut
}

// CheckVector returns the check message and the expected CRC over it.
// The returned slice is a fresh copy.
func (p *Params[T]) CheckVector() ([]byte, T) {
	return []byte(checkMessage), p.Check
}

// Width returns the register width in bits.
func (p *Params[T]) Width() int {
	return int(width.Of[T]().Bits)
}

// Validate reports whether the parameters describe a well-formed CRC.
func (p *Params[T]) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil parameters", ErrInvalidPolynomial)
	}
	if p.Order != Reflected && p.Order != NonReflected {
		return fmt.Errorf("%s: %w %d", p.Name, ErrInvalidBitOrder, p.Order)
	}
	if !p.Poly.Valid() {
		return fmt.Errorf("%s: %w", p.Name, polynomialError[T]("normal", p.Poly.Value()))
	}
	return nil
}

// String returns a compact description, e.g.
// "CRC-32 width=32 poly=0x04c11db7 init=0xffffffff xorout=0xffffffff reflected".
func (p *Params[T]) String() string {
	digits := p.Width() / 4
	return fmt.Sprintf("%s width=%d poly=0x%0*x init=0x%0*x xorout=0x%0*x %s",
		p.Name, p.Width(),
		digits, uint64(p.Poly.Value()),
		digits, uint64(p.Initial),
		digits, uint64(p.XorOut),
		p.Order)
}
