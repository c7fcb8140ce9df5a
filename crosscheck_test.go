package crcgo

import (
	stdcrc32 "hash/crc32"
	stdcrc64 "hash/crc64"
	"testing"

	"github.com/sigurn/crc16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/crcgo/testutil"
)

// Independent implementations agree with every strategy on random input.

func TestCrossCheckStdlib(t *testing.T) {
	rng := testutil.NewRNG(2024)
	ieee := stdcrc32.MakeTable(stdcrc32.IEEE)
	castagnoli := stdcrc32.MakeTable(stdcrc32.Castagnoli)
	ecma := stdcrc64.MakeTable(stdcrc64.ECMA)

	for _, s := range append(tableStrategies, Auto) {
		t.Run(s.String(), func(t *testing.T) {
			e32 := mustEngine(t, CRC32, s)
			e32c := mustEngine(t, CRC32C, s)
			e64 := mustEngine(t, CRC64XZ, s)

			for range 25 {
				data := rng.Bytes(rng.Intn(1024))
				require.Equal(t, stdcrc32.Checksum(data, ieee), Checksum(e32, data))
				require.Equal(t, stdcrc32.Checksum(data, castagnoli), Checksum(e32c, data))
				require.Equal(t, stdcrc64.Checksum(data, ecma), Checksum(e64, data))
			}
		})
	}
}

func TestCrossCheckCRC16(t *testing.T) {
	cases := []struct {
		ours   *Params[uint16]
		theirs crc16.Params
	}{
		{
			ours:   CRC16ARC,
			theirs: crc16.Params{Poly: 0x8005, Init: 0x0000, RefIn: true, RefOut: true, Check: 0xBB3D, Name: "CRC-16/ARC"},
		},
		{
			ours:   CRC16XModem,
			theirs: crc16.Params{Poly: 0x1021, Init: 0x0000, Check: 0x31C3, Name: "CRC-16/XMODEM"},
		},
		{
			ours: &Params[uint16]{
				Name:    "CRC-16/MODBUS",
				Initial: 0xFFFF,
				Poly:    MustNormal[uint16](0x8005),
				Check:   0x4B37,
				Order:   Reflected,
			},
			theirs: crc16.Params{Poly: 0x8005, Init: 0xFFFF, RefIn: true, RefOut: true, Check: 0x4B37, Name: "CRC-16/MODBUS"},
		},
		{
			ours: &Params[uint16]{
				Name:  "CRC-16/KERMIT",
				Poly:  MustNormal[uint16](0x1021),
				Check: 0x2189,
				Order: Reflected,
			},
			theirs: crc16.Params{Poly: 0x1021, RefIn: true, RefOut: true, Check: 0x2189, Name: "CRC-16/KERMIT"},
		},
		{
			ours: &Params[uint16]{
				Name:    "CRC-16/CCITT-FALSE",
				Initial: 0xFFFF,
				Poly:    MustNormal[uint16](0x1021),
				Check:   0x29B1,
				Order:   NonReflected,
			},
			theirs: crc16.Params{Poly: 0x1021, Init: 0xFFFF, Check: 0x29B1, Name: "CRC-16/CCITT-FALSE"},
		},
	}

	rng := testutil.NewRNG(16)
	for _, tc := range cases {
		t.Run(tc.ours.Name, func(t *testing.T) {
			table := crc16.MakeTable(tc.theirs)

			for _, s := range tableStrategies {
				e := mustEngine(t, tc.ours, s)
				assert.NoError(t, SelfTest(e), s.String())

				for range 10 {
					data := rng.Bytes(rng.Intn(300))
					require.Equal(t, crc16.Checksum(data, table), Checksum(e, data), s.String())
				}
			}
		})
	}
}
