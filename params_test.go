package crcgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	t.Run("accessors", func(t *testing.T) {
		assert.Equal(t, uint32(0xFFFFFFFF), CRC32.InitialValue())
		assert.Equal(t, uint32(0x04C11DB7), CRC32.Polynomial())
		assert.Equal(t, uint32(0x12345678^0xFFFFFFFF), CRC32.Finalize(0x12345678))
		assert.Equal(t, uint32(0x12345678), CRC32MPEG2.Finalize(0x12345678))
		assert.Equal(t, 32, CRC32.Width())
		assert.Equal(t, 8, CRC8.Width())
		assert.Equal(t, 64, CRC64XZ.Width())
	})

	t.Run("check vector", func(t *testing.T) {
		msg, check := CRC16XModem.CheckVector()
		assert.Equal(t, []byte("123456789"), msg)
		assert.Equal(t, uint16(0x31C3), check)

		msg[0] = 'x'
		again, _ := CRC16XModem.CheckVector()
		assert.Equal(t, byte('1'), again[0], "check vector must be a fresh copy")
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t,
			"CRC-32 width=32 poly=0x04c11db7 init=0xffffffff xorout=0xffffffff reflected",
			CRC32.String())
		assert.Equal(t,
			"CRC-8 width=8 poly=0x07 init=0x00 xorout=0x00 non-reflected",
			CRC8.String())
	})
}

func TestParamsValidate(t *testing.T) {
	t.Run("builtins", func(t *testing.T) {
		forAll(t,
			func(t *testing.T, p *Params[uint8]) { assert.NoError(t, p.Validate()) },
			func(t *testing.T, p *Params[uint16]) { assert.NoError(t, p.Validate()) },
			func(t *testing.T, p *Params[uint32]) { assert.NoError(t, p.Validate()) },
			func(t *testing.T, p *Params[uint64]) { assert.NoError(t, p.Validate()) },
		)
	})

	t.Run("zero polynomial", func(t *testing.T) {
		p := &Params[uint16]{Name: "broken"}
		assert.ErrorIs(t, p.Validate(), ErrInvalidPolynomial)
	})

	t.Run("nil", func(t *testing.T) {
		var p *Params[uint32]
		assert.ErrorIs(t, p.Validate(), ErrInvalidPolynomial)
	})

	t.Run("bad bit order", func(t *testing.T) {
		p := &Params[uint8]{Name: "odd", Poly: MustNormal[uint8](0x07), Order: BitOrder(7)}
		err := p.Validate()
		assert.ErrorIs(t, err, ErrInvalidBitOrder)
		assert.EqualError(t, err, "odd: invalid bit order 7")

		for _, s := range append(tableStrategies, Accelerated) {
			_, err := New(p, WithStrategy(s))
			assert.ErrorIs(t, err, ErrInvalidBitOrder, s.String())
		}
	})
}

func TestCatalog(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		assert.Equal(t, []string{
			"CRC-8", "CRC-8/MAXIM",
			"CRC-16/ARC", "CRC-16/XMODEM",
			"CRC-32", "CRC-32C", "CRC-32/MPEG-2", "CRC-32Q",
			"CRC-64", "CRC-64/XZ",
		}, Names())
	})

	t.Run("lookup", func(t *testing.T) {
		p, err := Lookup[uint32]("crc-32c")
		require.NoError(t, err)
		assert.Same(t, CRC32C, p)

		p64, err := Lookup[uint64]("CRC-64/XZ")
		require.NoError(t, err)
		assert.Same(t, CRC64XZ, p64)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Lookup[uint32]("CRC-31")
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	})

	t.Run("wrong width", func(t *testing.T) {
		_, err := Lookup[uint16]("CRC-32")
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
		assert.Contains(t, err.Error(), "different register width")
	})
}

func TestBitOrder(t *testing.T) {
	assert.Equal(t, "reflected", Reflected.String())
	assert.Equal(t, "non-reflected", NonReflected.String())
	assert.Equal(t, "unknown", BitOrder(9).String())

	for _, o := range []BitOrder{Reflected, NonReflected} {
		got, ok := ParseBitOrder(o.String())
		assert.True(t, ok)
		assert.Equal(t, o, got)
	}

	got, ok := ParseBitOrder("LSB")
	assert.True(t, ok)
	assert.Equal(t, Reflected, got)

	_, ok = ParseBitOrder("sideways")
	assert.False(t, ok)
}
