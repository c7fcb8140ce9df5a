package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// FillBytes fills dst with random bytes.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.rand.Read(dst)
}

// Bytes returns n random bytes.
func (r *RNG) Bytes(n int) []byte {
	b := make([]byte, n)
	r.FillBytes(b)
	return b
}

// Split cuts data into at most parts contiguous chunks at random offsets.
// Chunks may be empty; concatenating them yields data.
func (r *RNG) Split(data []byte, parts int) [][]byte {
	if parts < 1 {
		parts = 1
	}

	r.mu.Lock()
	cuts := make([]int, parts-1)
	for i := range cuts {
		cuts[i] = r.rand.Intn(len(data) + 1)
	}
	r.mu.Unlock()

	sort.Ints(cuts)

	chunks := make([][]byte, 0, parts)
	prev := 0
	for _, c := range cuts {
		chunks = append(chunks, data[prev:c])
		prev = c
	}
	return append(chunks, data[prev:])
}

// Repeat returns n copies of b, the fixed pattern used by throughput
// benchmarks.
func Repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

// WithByteAt returns an n-byte zero buffer with v at position pos.
func WithByteAt(n, pos int, v byte) []byte {
	out := make([]byte, n)
	out[pos] = v
	return out
}
