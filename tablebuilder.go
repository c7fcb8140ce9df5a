package crcgo

import (
	"fmt"

	"github.com/hupe1980/crcgo/internal/width"
)

// LookupTable maps a byte to its CRC contribution for one polynomial and bit
// order. Entry b equals the bitwise CRC of the single byte b from a zero
// register.
type LookupTable[T Word] [256]T

// BuildTable returns the base lookup table for p.
//
// Only the power-of-two entries are derived by shifting; every other entry is
// the XOR of two already known ones, since a byte's contribution is linear in
// its bits.
func BuildTable[T Word](p *Params[T]) (*LookupTable[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	t := new(LookupTable[T])
	fillTable(t, p)
	return t, nil
}

// BuildSlicedTables returns k chained tables for slicing-by-k.
//
// tables[0] is the base table. tables[i][v] is the CRC contribution of byte v
// followed by i zero bytes, so a block of k bytes can be folded with one
// lookup per byte.
func BuildSlicedTables[T Word](p *Params[T], k int) ([]LookupTable[T], error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlices, k)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	tables := make([]LookupTable[T], k)
	fillTable(&tables[0], p)
	chainTables(tables, p.Order)
	return tables, nil
}

func fillTable[T Word](t *LookupTable[T], p *Params[T]) {
	w := width.Of[T]()
	t[0] = 0

	if p.Order == Reflected {
		poly := p.Poly.Reverse().Value()
		value := poly
		t[128] = value
		for i := 64; i > 0; i >>= 1 {
			value = value>>1 ^ (-(value & 1) & poly)
			t[i] = value
		}
	} else {
		poly := p.Poly.Value()
		value := poly
		t[1] = value
		for i := 2; i < 256; i <<= 1 {
			value = value<<1 ^ (-(value >> (w.Bits - 1)) & poly)
			t[i] = value
		}
	}

	for i := 2; i < 256; i <<= 1 {
		ti := t[i]
		for j := 1; j < i; j++ {
			t[i+j] = ti ^ t[j]
		}
	}
}

func chainTables[T Word](tables []LookupTable[T], order BitOrder) {
	w := width.Of[T]()
	base := &tables[0]
	for k := 1; k < len(tables); k++ {
		prev, cur := &tables[k-1], &tables[k]
		for v := range 256 {
			c := prev[v]
			if order == Reflected {
				cur[v] = w.ShiftRightByte(c) ^ base[byte(c)]
			} else {
				cur[v] = w.ShiftLeftByte(c) ^ base[w.TopByte(c)]
			}
		}
	}
}
