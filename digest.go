package crcgo

import (
	"encoding/binary"
	"hash"

	"github.com/hupe1980/crcgo/internal/width"
)

// Digest adapts an Engine to hash.Hash.
//
// Sum appends the finalized CRC in big-endian order, like hash/crc32 and
// hash/crc64. A Digest is not safe for concurrent use; the engine behind it
// may be shared.
type Digest[T Word] struct {
	engine Engine[T]
	crc    T
}

// NewDigest returns a Digest positioned at the engine's initial value.
func NewDigest[T Word](e Engine[T]) *Digest[T] {
	return &Digest[T]{engine: e, crc: e.InitialValue()}
}

// Write implements io.Writer. It never returns an error.
func (d *Digest[T]) Write(p []byte) (int, error) {
	d.crc = d.engine.Update(d.crc, p)
	return len(p), nil
}

// Value returns the finalized CRC of everything written so far.
func (d *Digest[T]) Value() T {
	return d.engine.Finalize(d.crc)
}

// Sum appends the big-endian finalized CRC to in.
func (d *Digest[T]) Sum(in []byte) []byte {
	v := uint64(d.Value())
	switch d.Size() {
	case 1:
		return append(in, byte(v))
	case 2:
		return binary.BigEndian.AppendUint16(in, uint16(v))
	case 4:
		return binary.BigEndian.AppendUint32(in, uint32(v))
	default:
		return binary.BigEndian.AppendUint64(in, v)
	}
}

// Reset restores the initial value.
func (d *Digest[T]) Reset() {
	d.crc = d.engine.InitialValue()
}

// Size returns the CRC size in bytes.
func (d *Digest[T]) Size() int {
	return width.Of[T]().Bytes()
}

// BlockSize returns 1; a CRC accepts input of any length.
func (d *Digest[T]) BlockSize() int {
	return 1
}

type digest32 struct{ *Digest[uint32] }

func (d digest32) Sum32() uint32 { return d.Value() }

type digest64 struct{ *Digest[uint64] }

func (d digest64) Sum64() uint64 { return d.Value() }

// NewHash32 returns a hash.Hash32 computing the CRC of e.
func NewHash32(e Engine[uint32]) hash.Hash32 {
	return digest32{NewDigest(e)}
}

// NewHash64 returns a hash.Hash64 computing the CRC of e.
func NewHash64(e Engine[uint64]) hash.Hash64 {
	return digest64{NewDigest(e)}
}
