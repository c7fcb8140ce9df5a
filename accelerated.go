package crcgo

import (
	"github.com/klauspost/crc32"

	"github.com/hupe1980/crcgo/internal/hash"
)

// acceleratedEngine serves reflected 32-bit CRCs whose polynomial has a
// hardware kernel. Initial value and output XOR come from the parameters, so
// CRC-32, CRC-32C and custom conditionings of the same polynomials all work.
type acceleratedEngine struct {
	params *Params[uint32]
	table  *crc32.Table
}

func newAccelerated[T Word](p *Params[T]) (Engine[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p32, ok := any(p).(*Params[uint32])
	if !ok {
		return nil, unsupported(Accelerated, "requires a 32-bit register")
	}
	if p32.Order != Reflected {
		return nil, unsupported(Accelerated, "requires reflected bit order")
	}
	tab := hash.Table(p32.Poly.Value())
	if tab == nil {
		return nil, unsupported(Accelerated, "polynomial has no hardware kernel")
	}

	var e Engine[uint32] = &acceleratedEngine{params: p32, table: tab}
	return e.(Engine[T]), nil
}

func (e *acceleratedEngine) Params() *Params[uint32] { return e.params }

func (e *acceleratedEngine) Strategy() Strategy { return Accelerated }

func (e *acceleratedEngine) InitialValue() uint32 { return e.params.Initial }

func (e *acceleratedEngine) Finalize(crc uint32) uint32 { return e.params.Finalize(crc) }

func (e *acceleratedEngine) Update(crc uint32, p []byte) uint32 {
	return hash.Update(crc, e.table, p)
}
