package crcgo

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/crcgo/internal/width"
)

// Slicing computes CRCs k bytes per step with k chained tables.
//
// Each block folds the leading register bytes into the first input bytes and
// looks every byte up in the table for its distance from the end of the
// block. Because a CRC is linear over XOR, the XOR of those lookups equals
// advancing the register over the whole block. The last len(p)%k bytes go
// through the single-table loop on tables[0].
type Slicing[T Word] struct {
	params *Params[T]
	w      width.Policy[T]
	shift  uint // aligns the register to the top of a uint64
	tables []LookupTable[T]
}

// NewSliceBy4 returns a slicing-by-4 engine for p.
func NewSliceBy4[T Word](p *Params[T]) (*Slicing[T], error) {
	return NewSlicing(p, 4)
}

// NewSlicing returns a slicing-by-k engine for p. k must be 4, 8 or 16.
func NewSlicing[T Word](p *Params[T], k int) (*Slicing[T], error) {
	switch k {
	case 4, 8, 16:
	default:
		return nil, fmt.Errorf("%w: %d (want 4, 8 or 16)", ErrInvalidSlices, k)
	}
	tables, err := BuildSlicedTables(p, k)
	if err != nil {
		return nil, err
	}
	w := width.Of[T]()
	return &Slicing[T]{
		params: p,
		w:      w,
		shift:  64 - w.Bits,
		tables: tables,
	}, nil
}

// Params returns the parameters the engine was built from.
func (s *Slicing[T]) Params() *Params[T] { return s.params }

// Strategy returns Slice4, Slice8 or Slice16.
func (s *Slicing[T]) Strategy() Strategy {
	switch len(s.tables) {
	case 8:
		return Slice8
	case 16:
		return Slice16
	default:
		return Slice4
	}
}

// Slices returns the number of bytes consumed per step.
func (s *Slicing[T]) Slices() int { return len(s.tables) }

// Tables returns the chained tables. They must not be modified.
func (s *Slicing[T]) Tables() []LookupTable[T] { return s.tables }

// InitialValue returns the register value before any input.
func (s *Slicing[T]) InitialValue() T { return s.params.Initial }

// Finalize applies the output XOR.
func (s *Slicing[T]) Finalize(crc T) T { return s.params.Finalize(crc) }

// Update advances crc over p.
func (s *Slicing[T]) Update(crc T, p []byte) T {
	reflected := s.params.Order == Reflected

	switch len(s.tables) {
	case 4:
		if reflected {
			crc, p = s.update4Reflected(crc, p)
		} else {
			crc, p = s.update4(crc, p)
		}
	case 8:
		for len(p) >= 8 {
			if reflected {
				crc = fold8LE(s.tables, 7, uint64(crc)^binary.LittleEndian.Uint64(p))
			} else {
				crc = fold8BE(s.tables, 7, uint64(crc)<<s.shift^binary.BigEndian.Uint64(p))
			}
			p = p[8:]
		}
	case 16:
		for len(p) >= 16 {
			if reflected {
				crc = fold8LE(s.tables, 15, uint64(crc)^binary.LittleEndian.Uint64(p)) ^
					fold8LE(s.tables, 7, binary.LittleEndian.Uint64(p[8:]))
			} else {
				crc = fold8BE(s.tables, 15, uint64(crc)<<s.shift^binary.BigEndian.Uint64(p)) ^
					fold8BE(s.tables, 7, binary.BigEndian.Uint64(p[8:]))
			}
			p = p[16:]
		}
	}

	return updateTable(&s.tables[0], s.params.Order, s.w, crc, p)
}

// update4Reflected folds 4-byte blocks of a reflected CRC. The register's
// low bytes meet the first input bytes; whatever lies above bit 32 simply
// shifts down.
func (s *Slicing[T]) update4Reflected(crc T, p []byte) (T, []byte) {
	t0, t1, t2, t3 := &s.tables[0], &s.tables[1], &s.tables[2], &s.tables[3]
	c := uint64(crc)
	for len(p) >= 4 {
		x := c ^ uint64(binary.LittleEndian.Uint32(p))
		c = c>>32 ^
			uint64(t3[byte(x)]^t2[byte(x>>8)]^t1[byte(x>>16)]^t0[byte(x>>24)])
		p = p[4:]
	}
	return T(c), p
}

// update4 folds 4-byte blocks of a non-reflected CRC. The register is kept
// aligned to the top of a uint64 so its leading bytes meet the first input
// bytes regardless of width.
func (s *Slicing[T]) update4(crc T, p []byte) (T, []byte) {
	t0, t1, t2, t3 := &s.tables[0], &s.tables[1], &s.tables[2], &s.tables[3]
	shift := s.shift
	a := uint64(crc) << shift
	for len(p) >= 4 {
		x := a ^ uint64(binary.BigEndian.Uint32(p))<<32
		a = a<<32 ^
			uint64(t3[byte(x>>56)]^t2[byte(x>>48)]^t1[byte(x>>40)]^t0[byte(x>>32)])<<shift
		p = p[4:]
	}
	return T(a >> shift), p
}

// fold8LE looks up the eight bytes of x, least significant first, in tables
// hi down to hi-7.
func fold8LE[T Word](t []LookupTable[T], hi int, x uint64) T {
	_ = t[hi-7]
	return t[hi][byte(x)] ^
		t[hi-1][byte(x>>8)] ^
		t[hi-2][byte(x>>16)] ^
		t[hi-3][byte(x>>24)] ^
		t[hi-4][byte(x>>32)] ^
		t[hi-5][byte(x>>40)] ^
		t[hi-6][byte(x>>48)] ^
		t[hi-7][byte(x>>56)]
}

// fold8BE looks up the eight bytes of x, most significant first, in tables
// hi down to hi-7.
func fold8BE[T Word](t []LookupTable[T], hi int, x uint64) T {
	_ = t[hi-7]
	return t[hi][byte(x>>56)] ^
		t[hi-1][byte(x>>48)] ^
		t[hi-2][byte(x>>40)] ^
		t[hi-3][byte(x>>32)] ^
		t[hi-4][byte(x>>24)] ^
		t[hi-5][byte(x>>16)] ^
		t[hi-6][byte(x>>8)] ^
		t[hi-7][byte(x)]
}
