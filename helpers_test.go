package crcgo

import "testing"

var (
	params8  = []*Params[uint8]{CRC8, CRC8Maxim}
	params16 = []*Params[uint16]{CRC16ARC, CRC16XModem}
	params32 = []*Params[uint32]{CRC32, CRC32C, CRC32MPEG2, CRC32Q}
	params64 = []*Params[uint64]{CRC64ECMA, CRC64XZ}
)

// tableStrategies are the strategies every Params supports.
var tableStrategies = []Strategy{Bitwise, Table, Slice4, Slice8, Slice16}

// forAll runs one subtest per builtin, dispatching on register width.
func forAll(t *testing.T,
	f8 func(*testing.T, *Params[uint8]),
	f16 func(*testing.T, *Params[uint16]),
	f32 func(*testing.T, *Params[uint32]),
	f64 func(*testing.T, *Params[uint64]),
) {
	t.Helper()
	for _, p := range params8 {
		t.Run(p.Name, func(t *testing.T) { f8(t, p) })
	}
	for _, p := range params16 {
		t.Run(p.Name, func(t *testing.T) { f16(t, p) })
	}
	for _, p := range params32 {
		t.Run(p.Name, func(t *testing.T) { f32(t, p) })
	}
	for _, p := range params64 {
		t.Run(p.Name, func(t *testing.T) { f64(t, p) })
	}
}

// mustEngine builds an engine or fails the test.
func mustEngine[T Word](t testing.TB, p *Params[T], s Strategy) Engine[T] {
	t.Helper()
	e, err := New(p, WithStrategy(s))
	if err != nil {
		t.Fatalf("New(%s, %s): %v", p.Name, s, err)
	}
	return e
}

// mustBitwise builds the reference engine or fails the test.
func mustBitwise[T Word](t testing.TB, p *Params[T]) *BitwiseEngine[T] {
	t.Helper()
	e, err := NewBitwise(p)
	if err != nil {
		t.Fatalf("NewBitwise(%s): %v", p.Name, err)
	}
	return e
}
