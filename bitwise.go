package crcgo

import "github.com/hupe1980/crcgo/internal/width"

// BitwiseEngine computes CRCs one bit at a time.
//
// It needs no tables and serves as the reference every other engine and every
// generated table is validated against.
type BitwiseEngine[T Word] struct {
	params *Params[T]
	w      width.Policy[T]
	poly   T // Normal form, or Reverse form when reflected
}

// NewBitwise returns a bitwise engine for p.
func NewBitwise[T Word](p *Params[T]) (*BitwiseEngine[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	poly := p.Poly.Value()
	if p.Order == Reflected {
		poly = p.Poly.Reverse().Value()
	}
	return &BitwiseEngine[T]{
		params: p,
		w:      width.Of[T](),
		poly:   poly,
	}, nil
}

// Params returns the parameters the engine was built from.
func (b *BitwiseEngine[T]) Params() *Params[T] { return b.params }

// Strategy returns Bitwise.
func (b *BitwiseEngine[T]) Strategy() Strategy { return Bitwise }

// InitialValue returns the stored initial value unmodified.
func (b *BitwiseEngine[T]) InitialValue() T { return b.params.Initial }

// Finalize applies the output XOR.
func (b *BitwiseEngine[T]) Finalize(crc T) T { return b.params.Finalize(crc) }

// Update advances crc over p.
func (b *BitwiseEngine[T]) Update(crc T, p []byte) T {
	poly := b.poly

	if b.params.Order == Reflected {
		for _, v := range p {
			crc ^= T(v)
			for range 8 {
				crc = crc>>1 ^ (-(crc & 1) & poly)
			}
		}
		return crc
	}

	top, msb := b.w.Top, b.w.Bits-1
	for _, v := range p {
		crc ^= T(v) << top
		for range 8 {
			crc = crc<<1 ^ (-(crc >> msb) & poly)
		}
	}
	return crc
}
