package crcgo

import "github.com/hupe1980/crcgo/internal/width"

// TableDriven computes CRCs one byte per step with a single 256-entry table.
type TableDriven[T Word] struct {
	params *Params[T]
	w      width.Policy[T]
	table  *LookupTable[T]
}

// NewTableDriven returns a table-driven engine for p.
func NewTableDriven[T Word](p *Params[T]) (*TableDriven[T], error) {
	t, err := BuildTable(p)
	if err != nil {
		return nil, err
	}
	return &TableDriven[T]{
		params: p,
		w:      width.Of[T](),
		table:  t,
	}, nil
}

// Params returns the parameters the engine was built from.
func (e *TableDriven[T]) Params() *Params[T] { return e.params }

// Strategy returns Table.
func (e *TableDriven[T]) Strategy() Strategy { return Table }

// InitialValue returns the register value before any input.
func (e *TableDriven[T]) InitialValue() T { return e.params.Initial }

// Finalize applies the output XOR.
func (e *TableDriven[T]) Finalize(crc T) T { return e.params.Finalize(crc) }

// Table returns the engine's lookup table. It must not be modified.
func (e *TableDriven[T]) Table() *LookupTable[T] { return e.table }

// Update advances crc over p.
func (e *TableDriven[T]) Update(crc T, p []byte) T {
	return updateTable(e.table, e.params.Order, e.w, crc, p)
}

// updateTable is the one-byte-per-step loop shared with the slicing engines.
// For 8-bit registers both byte shifts clear the register and the top byte is
// the register itself, so the loop degenerates to crc = t[crc^b].
func updateTable[T Word](t *LookupTable[T], order BitOrder, w width.Policy[T], crc T, p []byte) T {
	if order == Reflected {
		for _, v := range p {
			crc = w.ShiftRightByte(crc) ^ t[byte(crc)^v]
		}
		return crc
	}
	for _, v := range p {
		crc = w.ShiftLeftByte(crc) ^ t[w.TopByte(crc)^v]
	}
	return crc
}
