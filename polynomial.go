package crcgo

import "github.com/hupe1980/crcgo/internal/width"

// Word is the set of register types a CRC can be computed in:
// uint8, uint16, uint32 and uint64.
type Word = width.Word

// Normal holds a polynomial in most-significant-bit order.
//
// The 0th degree term is the lowest bit and must be set. The highest degree is
// implied: a 32-degree polynomial keeps +1 in bit 0 and x^32 just above bit 31.
type Normal[T Word] struct{ v T }

// Reverse holds a polynomial in least-significant-bit order.
//
// It is the bit-reversed Normal form: the 0th degree term is the highest bit
// and must be set, and the highest degree is implied below bit 0.
type Reverse[T Word] struct{ v T }

// Koopman holds a polynomial in most-significant-bit order with the highest
// degree explicit.
//
// The highest degree is the top bit and must be set; the 0th degree term is
// implied below bit 0.
type Koopman[T Word] struct{ v T }

// NewNormal validates poly as a Normal-form polynomial.
func NewNormal[T Word](poly T) (Normal[T], error) {
	if poly&1 == 0 {
		return Normal[T]{}, polynomialError[T]("normal", poly)
	}
	return Normal[T]{v: poly}, nil
}

// MustNormal is like NewNormal but panics on an invalid polynomial.
// It is meant for package-level definitions.
func MustNormal[T Word](poly T) Normal[T] {
	n, err := NewNormal(poly)
	if err != nil {
		panic(err)
	}
	return n
}

// NewReverse validates poly as a Reverse-form polynomial.
func NewReverse[T Word](poly T) (Reverse[T], error) {
	if !width.Of[T]().MSB(poly) {
		return Reverse[T]{}, polynomialError[T]("reverse", poly)
	}
	return Reverse[T]{v: poly}, nil
}

// NewKoopman validates poly as a Koopman-form polynomial.
func NewKoopman[T Word](poly T) (Koopman[T], error) {
	if !width.Of[T]().MSB(poly) {
		return Koopman[T]{}, polynomialError[T]("koopman", poly)
	}
	return Koopman[T]{v: poly}, nil
}

func polynomialError[T Word](form string, poly T) error {
	return &PolynomialError{
		Form:  form,
		Bits:  int(width.Of[T]().Bits),
		Value: uint64(poly),
	}
}

// Value returns the raw bits.
func (n Normal[T]) Value() T { return n.v }

// Valid reports whether the defining bit is set. The zero value is invalid.
func (n Normal[T]) Valid() bool { return n.v&1 != 0 }

// Reverse converts to Reverse form.
func (n Normal[T]) Reverse() Reverse[T] {
	return Reverse[T]{v: width.Of[T]().Reverse(n.v)}
}

// Koopman converts to Koopman form.
func (n Normal[T]) Koopman() Koopman[T] {
	return Koopman[T]{v: n.v>>1 | width.Of[T]().High}
}

// Value returns the raw bits.
func (r Reverse[T]) Value() T { return r.v }

// Normal converts to Normal form.
func (r Reverse[T]) Normal() Normal[T] {
	return Normal[T]{v: width.Of[T]().Reverse(r.v)}
}

// Koopman converts to Koopman form.
func (r Reverse[T]) Koopman() Koopman[T] {
	return r.Normal().Koopman()
}

// Value returns the raw bits.
func (k Koopman[T]) Value() T { return k.v }

// Normal converts to Normal form.
func (k Koopman[T]) Normal() Normal[T] {
	return Normal[T]{v: k.v<<1 | 1}
}

// Reverse converts to Reverse form.
func (k Koopman[T]) Reverse() Reverse[T] {
	return k.Normal().Reverse()
}
