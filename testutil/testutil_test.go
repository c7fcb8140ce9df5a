package testutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	rng := NewRNG(4711)

	a := rng.Bytes(64)
	assert.Len(t, a, 64)

	rng.Reset()
	b := rng.Bytes(64)
	assert.Equal(t, a, b, "same seed must reproduce the same bytes")
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestSplit(t *testing.T) {
	rng := NewRNG(4711)
	data := rng.Bytes(100)

	for _, parts := range []int{0, 1, 2, 7, 200} {
		chunks := rng.Split(data, parts)
		if parts < 1 {
			require.Len(t, chunks, 1)
		} else {
			require.Len(t, chunks, parts)
		}
		assert.Equal(t, data, bytes.Join(chunks, nil))
	}

	chunks := rng.Split(nil, 3)
	assert.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.Empty(t, c)
	}
}

func TestRepeat(t *testing.T) {
	b := Repeat(0xAA, 16)
	assert.Len(t, b, 16)
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 16), b)
}

func TestWithByteAt(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 7, 0}, WithByteAt(4, 2, 7))
}
