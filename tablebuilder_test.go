package crcgo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/crcgo/testutil"
)

func TestBuildTable(t *testing.T) {
	forAll(t,
		testBuildTable[uint8],
		testBuildTable[uint16],
		testBuildTable[uint32],
		testBuildTable[uint64],
	)
}

func testBuildTable[T Word](t *testing.T, p *Params[T]) {
	oracle := mustBitwise(t, p)

	table, err := BuildTable(p)
	require.NoError(t, err)

	for b := range 256 {
		want := oracle.Update(0, []byte{byte(b)})
		if !assert.Equal(t, want, table[b], "entry %d", b) {
			return
		}
	}
}

func TestBuildSlicedTables(t *testing.T) {
	forAll(t,
		testBuildSlicedTables[uint8],
		testBuildSlicedTables[uint16],
		testBuildSlicedTables[uint32],
		testBuildSlicedTables[uint64],
	)
}

func testBuildSlicedTables[T Word](t *testing.T, p *Params[T]) {
	oracle := mustBitwise(t, p)

	for _, k := range []int{4, 8, 16} {
		t.Run(fmt.Sprintf("x%d", k), func(t *testing.T) {
			tables, err := BuildSlicedTables(p, k)
			require.NoError(t, err)
			require.Len(t, tables, k)

			for i := range k {
				for v := range 256 {
					buf := testutil.WithByteAt(k, k-1-i, byte(v))
					want := oracle.Update(0, buf)
					if !assert.Equal(t, want, tables[i][v], "table %d entry %d", i, v) {
						return
					}
				}
			}
		})
	}
}

func TestBuildSlicedTablesBaseMatchesBuildTable(t *testing.T) {
	base, err := BuildTable(CRC32Q)
	require.NoError(t, err)

	tables, err := BuildSlicedTables(CRC32Q, 1)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, *base, tables[0])
}

func TestBuildTableErrors(t *testing.T) {
	t.Run("invalid polynomial", func(t *testing.T) {
		_, err := BuildTable(&Params[uint32]{Name: "zero"})
		assert.ErrorIs(t, err, ErrInvalidPolynomial)

		_, err = BuildSlicedTables(&Params[uint32]{Name: "zero"}, 4)
		assert.ErrorIs(t, err, ErrInvalidPolynomial)
	})

	t.Run("invalid slice count", func(t *testing.T) {
		_, err := BuildSlicedTables(CRC32, 0)
		assert.ErrorIs(t, err, ErrInvalidSlices)
	})
}

func TestKnownTableEntries(t *testing.T) {
	// Spot checks against the classic published tables.
	ieee, err := BuildTable(CRC32)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x77073096), ieee[1])
	assert.Equal(t, uint32(0xEDB88320), ieee[128])
	assert.Equal(t, uint32(0x2D02EF8D), ieee[255])

	xmodem, err := BuildTable(CRC16XModem)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1021), xmodem[1])
	assert.Equal(t, uint16(0x1EF0), xmodem[255])

	arc, err := BuildTable(CRC16ARC)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xC0C1), arc[1])
	assert.Equal(t, uint16(0x4040), arc[255])
}
